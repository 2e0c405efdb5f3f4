package storage

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/aerotools/catalogd/internal/domain"
)

func TestBoltStoreEmptyBucketSeedsDefaults(t *testing.T) {
	s, err := NewBoltStore(filepath.Join(t.TempDir(), "catalog.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	items, err := s.Load()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(items, domain.DefaultCatalog()) {
		t.Error("empty bucket did not seed the default catalog")
	}
}

func TestBoltStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.db")

	s, err := NewBoltStore(path)
	if err != nil {
		t.Fatal(err)
	}
	items := domain.DefaultCatalog()[:2]
	if err := s.Save(items); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	s, err = NewBoltStore(path)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	back, err := s.Load()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(items, back) {
		t.Error("reloaded catalog differs from saved catalog")
	}
}
