package repository

import (
	"errors"
	"testing"
)

func exerciseSnapshot(t *testing.T, store Snapshot) {
	t.Helper()

	if _, err := store.Load("game"); !errors.Is(err, ErrSnapshotNotFound) {
		t.Fatalf("expected ErrSnapshotNotFound, got %v", err)
	}

	if err := store.Save("game", []byte(`{"players":[]}`)); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Save("game", []byte(`{"players":[],"quarter":2}`)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	got, err := store.Load("game")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(got) != `{"players":[],"quarter":2}` {
		t.Fatalf("unexpected snapshot %s", got)
	}

	if err := store.Delete("game"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := store.Delete("game"); err != nil {
		t.Fatalf("second delete should be a no-op, got %v", err)
	}
	if _, err := store.Load("game"); !errors.Is(err, ErrSnapshotNotFound) {
		t.Fatalf("expected ErrSnapshotNotFound after delete, got %v", err)
	}
}

func TestSnapshotMemory(t *testing.T) {
	exerciseSnapshot(t, NewSnapshotMemory())
}

func TestSnapshotFile(t *testing.T) {
	store, err := NewSnapshotFile(t.TempDir())
	if err != nil {
		t.Fatalf("new file store: %v", err)
	}
	exerciseSnapshot(t, store)
}

func TestNewRepositoryDrivers(t *testing.T) {
	repo, err := NewRepository(&Config{Driver: DriverMemory}, nil)
	if err != nil {
		t.Fatalf("memory driver: %v", err)
	}
	if err := repo.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	repo, err = NewRepository(&Config{Driver: DriverFile, FileDir: t.TempDir()}, nil)
	if err != nil {
		t.Fatalf("file driver: %v", err)
	}
	exerciseSnapshot(t, repo)

	if _, err := NewRepository(&Config{Driver: "sqlite"}, nil); err == nil {
		t.Fatalf("expected unknown driver error")
	}
}
