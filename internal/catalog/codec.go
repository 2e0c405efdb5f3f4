package catalog

import (
	"fmt"
	"strings"

	"github.com/aerotools/catalogd/internal/domain"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// shapeFields are the keys every record of a portable catalog document
// must carry. The document has no version field, so the importer
// validates shape instead of trusting a schema version.
var shapeFields = []string{"id", "slug", "name", "category"}

// ExportDocument serializes the ordered catalog to the portable
// document format: a pretty-printed JSON array of product objects,
// round-trip safe including all map-valued fields.
func ExportDocument(items []domain.Product) ([]byte, error) {
	return json.MarshalIndent(items, "", "  ")
}

// DecodeDocument parses and shape-checks a portable document without
// applying field validation. It returns an *ImportError with reason
// ReasonParse or ReasonShape on failure. Persistence adapters use this
// lenient path so a loadable-but-imperfect document is not lost.
func DecodeDocument(data []byte) ([]domain.Product, error) {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &ImportError{Reason: ReasonParse, Detail: err.Error()}
	}

	list, ok := raw.([]interface{})
	if !ok {
		return nil, &ImportError{Reason: ReasonShape, Detail: "top-level value must be an array of product objects"}
	}

	for i, el := range list {
		obj, ok := el.(map[string]interface{})
		if !ok {
			return nil, &ImportError{Reason: ReasonShape, Detail: fmt.Sprintf("record %d is not an object", i)}
		}
		for _, f := range shapeFields {
			v, present := obj[f]
			s, isString := v.(string)
			if !present || !isString || strings.TrimSpace(s) == "" {
				return nil, &ImportError{
					Reason: ReasonShape,
					Detail: fmt.Sprintf("record %d is missing required field %q", i, f),
				}
			}
		}
	}

	var items []domain.Product
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, &ImportError{Reason: ReasonShape, Detail: err.Error()}
	}
	return items, nil
}

// ImportDocument fully rehydrates a portable document: parse, shape
// check, then field validation plus id/slug uniqueness across the
// document. The whole document is rejected if any record is invalid, so
// an import never silently drops data the user expects to see.
func ImportDocument(data []byte) ([]domain.Product, error) {
	items, err := DecodeDocument(data)
	if err != nil {
		return nil, err
	}

	invalid := make(map[int]map[string]string)
	ids := make(map[string]bool, len(items))
	slugs := make(map[string]bool, len(items))

	for i, p := range items {
		errs := Validate(p)
		if ids[p.ID] {
			errs["id"] = "duplicate id " + p.ID
		}
		if slugs[p.Slug] {
			errs["slug"] = "duplicate slug " + p.Slug
		}
		ids[p.ID] = true
		slugs[p.Slug] = true
		if len(errs) > 0 {
			invalid[i] = errs
		}
	}

	if len(invalid) > 0 {
		return nil, &ImportError{
			Reason:  ReasonInvalid,
			Detail:  fmt.Sprintf("%d of %d records failed validation", len(invalid), len(items)),
			Records: invalid,
		}
	}
	return items, nil
}
