package recordstore

import (
	"context"
	"sync"

	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

var _ repository.DocumentStore = (*MemoryStore)(nil)

// MemoryStore guarda los recursos en memoria del proceso (tests y STORAGE_DRIVER=memory).
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

// NewMemoryStore crea un store vacío.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string][]byte)}
}

// Read devuelve una copia del recurso.
func (s *MemoryStore) Read(_ context.Context, name string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.docs[name]
	if !ok {
		return nil, missing(name)
	}
	return append([]byte(nil), data...), nil
}

// Write guarda una copia de data.
func (s *MemoryStore) Write(_ context.Context, name string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[name] = append([]byte(nil), data...)
	return nil
}
