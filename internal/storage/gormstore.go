package storage

import (
	"time"

	"github.com/aerotools/catalogd/internal/catalog"
	"github.com/aerotools/catalogd/internal/domain"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// CatalogDocument is the single-row table holding the serialized
// catalog, the SQL equivalent of the hosted blob slot the legacy admin
// pushed to. The record list stays a document; there is no per-product
// table and no query surface.
type CatalogDocument struct {
	ID        uint   `gorm:"primaryKey"`
	Payload   string `gorm:"type:text"`
	UpdatedAt time.Time
}

func (CatalogDocument) TableName() string { return "catalog_documents" }

// GormStore persists the catalog document in PostgreSQL.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(dsn string) (*GormStore, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, errors.Wrap(err, "open postgres store")
	}
	if err := db.AutoMigrate(&CatalogDocument{}); err != nil {
		return nil, errors.Wrap(err, "migrate catalog_documents")
	}
	return &GormStore{db: db}, nil
}

func (s *GormStore) Load() ([]domain.Product, error) {
	var doc CatalogDocument
	err := s.db.First(&doc, 1).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.DefaultCatalog(), nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "read catalog document row")
	}
	if doc.Payload == "" {
		return domain.DefaultCatalog(), nil
	}

	items, err := catalog.DecodeDocument([]byte(doc.Payload))
	if err != nil {
		zap.L().Warn("stored catalog document is malformed, using defaults", zap.Error(err))
		return domain.DefaultCatalog(), nil
	}
	return items, nil
}

func (s *GormStore) Save(items []domain.Product) error {
	data, err := catalog.ExportDocument(items)
	if err != nil {
		return errors.Wrap(err, "encode catalog document")
	}
	doc := CatalogDocument{ID: 1, Payload: string(data), UpdatedAt: time.Now()}
	err = s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&doc).Error
	return errors.Wrap(err, "write catalog document row")
}
