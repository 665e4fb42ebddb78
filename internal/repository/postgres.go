package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	_ "github.com/lib/pq"
)

const postgresPingTimeout = 5 * time.Second

// NewPostgresDB opens the snapshot database and checks it answers before the
// migrations run against it.
func NewPostgresDB(cfg *Config) (*sql.DB, error) {
	db, err := sql.Open(DriverPostgres, postgresDSN(cfg))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(2)
	db.SetConnMaxIdleTime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), postgresPingTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// postgresDSN builds a libpq keyword/value string. Empty settings are left
// out so the driver defaults apply, and values are quoted when needed.
func postgresDSN(cfg *Config) string {
	pairs := []struct{ key, value string }{
		{"host", cfg.Host},
		{"port", cfg.Port},
		{"user", cfg.Username},
		{"dbname", cfg.DBName},
		{"password", cfg.Password},
		{"sslmode", cfg.SSLMode},
	}

	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		if p.value == "" {
			continue
		}
		parts = append(parts, p.key+"="+quoteDSNValue(p.value))
	}
	return strings.Join(parts, " ")
}

func quoteDSNValue(v string) string {
	if !strings.ContainsAny(v, ` '\`) {
		return v
	}
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `'`, `\'`)
	return "'" + v + "'"
}
