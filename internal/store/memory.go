package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore is an in-process Favorites implementation used by tests.
// Documents keep insertion order, matching the storage-native ordering the
// listing endpoints expose.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string][]map[string]any
	name        string
}

func NewMemoryStore(name string) *MemoryStore {
	return &MemoryStore{
		collections: make(map[string][]map[string]any),
		name:        name,
	}
}

func (m *MemoryStore) InsertOne(ctx context.Context, collection string, doc any) (string, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("encoding document: %w", err)
	}
	var stored map[string]any
	if err := json.Unmarshal(raw, &stored); err != nil {
		return "", fmt.Errorf("decoding document: %w", err)
	}

	id := fmt.Sprintf("%s:%s", collection, uuid.NewString())
	stored["id"] = id

	m.mu.Lock()
	m.collections[collection] = append(m.collections[collection], stored)
	m.mu.Unlock()

	return id, nil
}

func (m *MemoryStore) ListAll(ctx context.Context, collection string) ([]map[string]any, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	docs := m.collections[collection]
	out := make([]map[string]any, 0, len(docs))
	for _, doc := range docs {
		copied := make(map[string]any, len(doc))
		for k, v := range doc {
			copied[k] = v
		}
		out = append(out, copied)
	}
	return out, nil
}

func (m *MemoryStore) Name() string { return m.name }

func (m *MemoryStore) Collections(ctx context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.collections))
	for name := range m.collections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
