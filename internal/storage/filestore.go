package storage

import (
	"os"
	"path/filepath"

	"github.com/aerotools/catalogd/internal/catalog"
	"github.com/aerotools/catalogd/internal/domain"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// FileStore keeps the catalog as one JSON document on disk, the same
// medium the legacy admin used for its dev override file. Writes are
// whole-document overwrites through a temp file and rename.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the document, falling back to the built-in seed when the
// file is missing, empty or fails the document shape check.
func (s *FileStore) Load() ([]domain.Product, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.DefaultCatalog(), nil
		}
		return nil, errors.Wrapf(err, "read catalog file %s", s.path)
	}
	if len(data) == 0 {
		return domain.DefaultCatalog(), nil
	}

	items, err := catalog.DecodeDocument(data)
	if err != nil {
		zap.L().Warn("catalog file is malformed, using defaults",
			zap.String("path", s.path), zap.Error(err))
		return domain.DefaultCatalog(), nil
	}
	return items, nil
}

// Save overwrites the whole document.
func (s *FileStore) Save(items []domain.Product) error {
	data, err := catalog.ExportDocument(items)
	if err != nil {
		return errors.Wrap(err, "encode catalog document")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "create catalog dir %s", dir)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return errors.Wrapf(err, "write catalog file %s", tmp)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return errors.Wrapf(err, "replace catalog file %s", s.path)
	}
	return nil
}
