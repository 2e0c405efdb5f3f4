package catalog

import (
	"strings"
	"testing"

	"github.com/aerotools/catalogd/internal/domain"
)

func validDraft() domain.Product {
	return domain.Product{
		ID:          "BR-H160",
		Slug:        "barre-h160",
		Name:        "Barre de manutention H160",
		Category:    domain.CategoryTowing,
		Description: "Barre de remorquage pour Airbus H160.",
		PriceRange:  "medium",
	}
}

func TestValidateAcceptsValidRecord(t *testing.T) {
	if errs := Validate(validDraft()); len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
}

func TestValidateRequiredFields(t *testing.T) {
	p := domain.Product{PriceRange: "medium"}
	errs := Validate(p)
	for _, field := range []string{"name", "description", "category", "slug"} {
		if errs[field] != "required" {
			t.Errorf("errs[%q] = %q, want \"required\"", field, errs[field])
		}
	}
}

func TestValidateFieldRules(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*domain.Product)
		field  string
	}{
		{"long name", func(p *domain.Product) { p.Name = strings.Repeat("x", 121) }, "name"},
		{"bad category", func(p *domain.Product) { p.Category = "spares" }, "category"},
		{"uppercase slug", func(p *domain.Product) { p.Slug = "Barre-H160" }, "slug"},
		{"trailing hyphen", func(p *domain.Product) { p.Slug = "barre-" }, "slug"},
		{"double hyphen", func(p *domain.Product) { p.Slug = "barre--h160" }, "slug"},
		{"bad price range", func(p *domain.Product) { p.PriceRange = "premium" }, "priceRange"},
		{"empty price range", func(p *domain.Product) { p.PriceRange = "" }, "priceRange"},
		{"bad usage tag", func(p *domain.Product) { p.Usage = []string{"civil", "space"} }, "usage"},
		{"negative min order", func(p *domain.Product) { p.MinOrder = -1 }, "minOrder"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := validDraft()
			c.mutate(&p)
			errs := Validate(p)
			if _, ok := errs[c.field]; !ok {
				t.Errorf("expected an error on %q, got %v", c.field, errs)
			}
			if len(errs) != 1 {
				t.Errorf("expected exactly one error, got %v", errs)
			}
		})
	}
}

func TestValidateWhitespaceOnlyIsRequired(t *testing.T) {
	p := validDraft()
	p.Name = "   "
	if errs := Validate(p); errs["name"] != "required" {
		t.Errorf("whitespace-only name: %v", errs)
	}
}
