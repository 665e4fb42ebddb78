package repository

import (
	"database/sql"
	"errors"
	"fmt"
)

type SnapshotPostgres struct {
	db *sql.DB
}

func NewSnapshotPostgres(db *sql.DB) *SnapshotPostgres {
	return &SnapshotPostgres{db: db}
}

func (r *SnapshotPostgres) Save(key string, data []byte) error {
	_, err := r.db.Exec(`
		INSERT INTO session_snapshots (key, value, updated_at) VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = $2, updated_at = NOW()
	`, key, string(data))
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}

func (r *SnapshotPostgres) Load(key string) ([]byte, error) {
	var val string
	err := r.db.QueryRow("SELECT value FROM session_snapshots WHERE key = $1", key).Scan(&val)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSnapshotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}
	return []byte(val), nil
}

func (r *SnapshotPostgres) Delete(key string) error {
	if _, err := r.db.Exec("DELETE FROM session_snapshots WHERE key = $1", key); err != nil {
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}
	return nil
}
