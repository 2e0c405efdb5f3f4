package storage

import (
	"fmt"

	"github.com/aerotools/catalogd/config"
	"github.com/aerotools/catalogd/internal/catalog"
)

// Open builds the persistence adapter selected by configuration.
// Supported types: file (JSON document on disk), bolt (bbolt bucket),
// postgres (single-row document table), memory (volatile, for tests
// and dry runs).
func Open(cfg config.StorageConfig) (catalog.Store, error) {
	switch cfg.Type {
	case "", "file":
		return NewFileStore(cfg.Path), nil
	case "bolt":
		return NewBoltStore(cfg.Path)
	case "postgres":
		return NewGormStore(cfg.DSN)
	case "memory":
		return NewMemoryStore(nil), nil
	default:
		return nil, fmt.Errorf("unknown storage type %q", cfg.Type)
	}
}
