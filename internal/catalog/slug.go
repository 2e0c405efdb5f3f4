package catalog

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/aerotools/catalogd/internal/domain"
	"github.com/labstack/gommon/random"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// idPrefixes maps a category to its historical reference prefix
// (BR = barre, RL = rollers, MT = maintenance).
var idPrefixes = map[string]string{
	domain.CategoryTowing:      "BR",
	domain.CategoryHandling:    "RL",
	domain.CategoryMaintenance: "MT",
	domain.CategoryGSE:         "GSE",
}

const fallbackPrefix = "PRD"

// deaccent strips combining marks after NFD decomposition, so
// "Écureuil" slugifies to "ecureuil".
var deaccent = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slugify derives a canonical slug candidate from a display name:
// strip diacritics, lowercase, collapse every run of non-alphanumeric
// characters to a single hyphen, trim leading/trailing hyphens.
func Slugify(name string) string {
	s, _, err := transform.String(deaccent, name)
	if err != nil {
		s = name
	}
	s = strings.ToLower(s)

	var b strings.Builder
	lastHyphen := false
	for _, r := range s {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen && b.Len() > 0 {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// UniqueSlug returns candidate if free, otherwise candidate-2,
// candidate-3, ... until a free slug is found.
func UniqueSlug(candidate string, taken map[string]bool) string {
	return bumpUntilFree(candidate, taken)
}

// UniqueID applies the same collision-avoidance to an explicit or
// duplicated id: BR-B332 duplicates to BR-B332-2.
func UniqueID(candidate string, taken map[string]bool) string {
	return bumpUntilFree(candidate, taken)
}

// NewProductID builds an id for a brand-new record without an explicit
// one: category prefix plus the next catalog sequence number, bumped
// past collisions. A random reference suffix is the last resort if the
// sequence space is somehow exhausted.
func NewProductID(category string, taken map[string]bool) string {
	prefix, ok := idPrefixes[category]
	if !ok {
		prefix = fallbackPrefix
	}
	for seq := len(taken) + 1; seq <= len(taken)+10000; seq++ {
		id := fmt.Sprintf("%s-%03d", prefix, seq)
		if !taken[id] {
			return id
		}
	}
	return prefix + "-" + random.String(4, random.Uppercase, random.Numeric)
}

func bumpUntilFree(candidate string, taken map[string]bool) string {
	if !taken[candidate] {
		return candidate
	}
	for n := 2; ; n++ {
		next := fmt.Sprintf("%s-%d", candidate, n)
		if !taken[next] {
			return next
		}
	}
}
