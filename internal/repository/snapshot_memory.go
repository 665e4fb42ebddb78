package repository

import "sync"

type SnapshotMemory struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewSnapshotMemory() *SnapshotMemory {
	return &SnapshotMemory{data: make(map[string][]byte)}
}

func (r *SnapshotMemory) Save(key string, data []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[key] = append([]byte(nil), data...)
	return nil
}

func (r *SnapshotMemory) Load(key string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	data, ok := r.data[key]
	if !ok {
		return nil, ErrSnapshotNotFound
	}
	return append([]byte(nil), data...), nil
}

func (r *SnapshotMemory) Delete(key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.data, key)
	return nil
}
