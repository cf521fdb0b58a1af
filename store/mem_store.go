package store

import (
	"encoding/json"
	"fmt"
	"sync"
)

// MemStore is a process-local store with the same JSON value semantics
// as FileStore. It backs the per-run configuration cache of the preview
// server.
type MemStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemStore() *MemStore {
	return &MemStore{
		data: make(map[string][]byte),
	}
}

func (ms *MemStore) Read(bucket, key string, buff any) (bool, error) {
	ms.mu.RLock()
	b, ok := ms.data[bucket+"/"+key]
	ms.mu.RUnlock()

	if !ok {
		return false, nil
	}

	if err := json.Unmarshal(b, buff); err != nil {
		return false, fmt.Errorf("error while unmarshalling %s/%s: %w", bucket, key, err)
	}

	return true, nil
}

func (ms *MemStore) Write(bucket, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("json marshal error: %w", err)
	}

	ms.mu.Lock()
	ms.data[bucket+"/"+key] = b
	ms.mu.Unlock()

	return nil
}

func (ms *MemStore) Delete(bucket, key string) error {
	ms.mu.Lock()
	delete(ms.data, bucket+"/"+key)
	ms.mu.Unlock()

	return nil
}
