package domain

import (
	"reflect"
	"testing"
)

func TestCloneIsDeep(t *testing.T) {
	src := DefaultCatalog()[0]
	c := src.Clone()
	if !reflect.DeepEqual(src, c) {
		t.Fatal("clone differs from source")
	}

	c.Features = append(c.Features, "mutated")
	c.Specs["mutated"] = "yes"
	c.Gallery = append(c.Gallery, "extra.webp")

	orig := DefaultCatalog()[0]
	if !reflect.DeepEqual(src, orig) {
		t.Error("mutating a clone leaked into the source")
	}
}

func TestDefaultCatalogIsIsolated(t *testing.T) {
	a := DefaultCatalog()
	a[0].Name = "mutated"
	b := DefaultCatalog()
	if b[0].Name == "mutated" {
		t.Error("DefaultCatalog shares state between calls")
	}
}

func TestDefaultCatalogKeysUnique(t *testing.T) {
	ids := map[string]bool{}
	slugs := map[string]bool{}
	for _, p := range DefaultCatalog() {
		if ids[p.ID] {
			t.Errorf("duplicate seed id %q", p.ID)
		}
		if slugs[p.Slug] {
			t.Errorf("duplicate seed slug %q", p.Slug)
		}
		ids[p.ID] = true
		slugs[p.Slug] = true
	}
}

func TestEnumHelpers(t *testing.T) {
	if !ValidCategory(CategoryTowing) || ValidCategory("spares") {
		t.Error("ValidCategory")
	}
	if !ValidPriceRange("medium") || ValidPriceRange("premium") {
		t.Error("ValidPriceRange")
	}
	if !ValidUsageTag("offshore") || ValidUsageTag("space") {
		t.Error("ValidUsageTag")
	}
}
