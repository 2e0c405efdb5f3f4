package catalog

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/aerotools/catalogd/internal/domain"
)

// slugPattern is the canonical slug form: lowercase ascii and digits,
// single hyphens, no leading or trailing hyphen.
var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

const maxNameLength = 120

// Validate checks a draft record and returns a field→message map.
// An empty map means the draft is valid. It never returns an error and
// touches no external state, so callers can always re-render a form
// with inline errors.
func Validate(p domain.Product) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(p.Name) == "" {
		errs["name"] = "required"
	} else if utf8.RuneCountInString(p.Name) > maxNameLength {
		errs["name"] = "too long (max 120 characters)"
	}

	if strings.TrimSpace(p.Description) == "" {
		errs["description"] = "required"
	}

	if strings.TrimSpace(p.Category) == "" {
		errs["category"] = "required"
	} else if !domain.ValidCategory(p.Category) {
		errs["category"] = "must be one of " + strings.Join(domain.Categories, "|")
	}

	if strings.TrimSpace(p.Slug) == "" {
		errs["slug"] = "required"
	} else if !slugPattern.MatchString(p.Slug) {
		errs["slug"] = "invalid (lowercase letters, digits and hyphens only)"
	}

	if !domain.ValidPriceRange(p.PriceRange) {
		errs["priceRange"] = "must be one of " + strings.Join(domain.PriceRanges, "|")
	}

	for _, tag := range p.Usage {
		if !domain.ValidUsageTag(tag) {
			errs["usage"] = "unknown tag " + tag
			break
		}
	}

	if p.MinOrder < 0 {
		errs["minOrder"] = "must be >= 0"
	}

	return errs
}

// ValidSlug reports whether s already is a canonical slug.
func ValidSlug(s string) bool {
	return slugPattern.MatchString(s)
}
