package storage

import (
	"time"

	"github.com/aerotools/catalogd/internal/catalog"
	"github.com/aerotools/catalogd/internal/domain"
	"github.com/pkg/errors"
	bolt "go.etcd.io/bbolt"
	"go.uber.org/zap"
)

var (
	boltBucket = []byte("catalog")
	boltKey    = []byte("products")
)

// BoltStore keeps the catalog document under a single key in a bbolt
// bucket. Same overwrite-all policy as the file store, with the write
// durability of a real transaction log underneath.
type BoltStore struct {
	db *bolt.DB
}

func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, errors.Wrapf(err, "open bolt store %s", path)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(boltBucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "create catalog bucket")
	}
	return &BoltStore{db: db}, nil
}

func (s *BoltStore) Load() ([]domain.Product, error) {
	var data []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(boltBucket).Get(boltKey); v != nil {
			data = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "read catalog bucket")
	}
	if len(data) == 0 {
		return domain.DefaultCatalog(), nil
	}

	items, err := catalog.DecodeDocument(data)
	if err != nil {
		zap.L().Warn("stored catalog document is malformed, using defaults", zap.Error(err))
		return domain.DefaultCatalog(), nil
	}
	return items, nil
}

func (s *BoltStore) Save(items []domain.Product) error {
	data, err := catalog.ExportDocument(items)
	if err != nil {
		return errors.Wrap(err, "encode catalog document")
	}
	err = s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(boltBucket).Put(boltKey, data)
	})
	return errors.Wrap(err, "write catalog bucket")
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}
