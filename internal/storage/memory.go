package storage

import (
	"sync"

	"github.com/aerotools/catalogd/internal/domain"
)

// MemoryStore is a volatile adapter for tests and dry runs. It honors
// the same contract as the durable ones: Load falls back to the seed
// until something has been saved.
type MemoryStore struct {
	mu    sync.Mutex
	items []domain.Product
	saved bool
}

func NewMemoryStore(items []domain.Product) *MemoryStore {
	s := &MemoryStore{}
	if items != nil {
		s.items = domain.CloneCatalog(items)
		s.saved = true
	}
	return s
}

func (s *MemoryStore) Load() ([]domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.saved {
		return domain.DefaultCatalog(), nil
	}
	return domain.CloneCatalog(s.items), nil
}

func (s *MemoryStore) Save(items []domain.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = domain.CloneCatalog(items)
	s.saved = true
	return nil
}
