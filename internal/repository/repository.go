package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"

	"github.com/redis/go-redis/v9"
)

const (
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
	DriverFile     = "file"
	DriverMemory   = "memory"
)

var ErrSnapshotNotFound = errors.New("snapshot not found")

type Snapshot interface {
	Save(key string, data []byte) error
	Load(key string) ([]byte, error)
	Delete(key string) error
}

type Config struct {
	Driver      string `env:"DRIVER" envDefault:"file"`
	SnapshotKey string `env:"SNAPSHOT_KEY" envDefault:"basket-tracker-current-game"`
	FileDir     string `env:"FILE_DIR" envDefault:".basket-tracker"`

	Host     string `env:"DB_HOST" envDefault:"localhost"`
	Port     string `env:"DB_PORT" envDefault:"5432"`
	Username string `env:"DB_USERNAME"`
	Password string `env:"DB_PASSWORD"`
	DBName   string `env:"DB_NAME"`
	SSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`

	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
}

type Repository struct {
	Snapshot
	db    *sql.DB
	redis *redis.Client
}

// NewRepository opens the snapshot store selected by cfg.Driver. Postgres
// stores are migrated from migrationFS before use.
func NewRepository(cfg *Config, migrationFS fs.FS) (*Repository, error) {
	switch cfg.Driver {
	case DriverPostgres:
		db, err := NewPostgresDB(cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to open postgres: %w", err)
		}
		if err := RunMigrations(db, migrationFS); err != nil {
			db.Close()
			return nil, err
		}
		return &Repository{Snapshot: NewSnapshotPostgres(db), db: db}, nil
	case DriverRedis:
		client, err := NewRedisClient(cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to open redis: %w", err)
		}
		return &Repository{Snapshot: NewSnapshotRedis(client), redis: client}, nil
	case DriverFile, "":
		store, err := NewSnapshotFile(cfg.FileDir)
		if err != nil {
			return nil, err
		}
		return &Repository{Snapshot: store}, nil
	case DriverMemory:
		return &Repository{Snapshot: NewSnapshotMemory()}, nil
	default:
		return nil, fmt.Errorf("unknown snapshot driver %q", cfg.Driver)
	}
}

func (r *Repository) Close() error {
	var errs []error
	if r.db != nil {
		errs = append(errs, r.db.Close())
	}
	if r.redis != nil {
		errs = append(errs, r.redis.Close())
	}
	return errors.Join(errs...)
}
