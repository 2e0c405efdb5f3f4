package domain

// Product categories. The category drives the id prefix and which spec
// keys the admin UI proposes, nothing else.
const (
	CategoryTowing      = "towing"
	CategoryHandling    = "handling"
	CategoryMaintenance = "maintenance"
	CategoryGSE         = "gse"
)

// Categories lists the valid product categories in display order.
var Categories = []string{CategoryTowing, CategoryHandling, CategoryMaintenance, CategoryGSE}

// PriceRanges lists the valid coarse price bands.
var PriceRanges = []string{"low", "medium", "high"}

// UsageTags lists the valid operational usage tags.
var UsageTags = []string{"civil", "military", "offshore", "sar", "naval"}

// Product is one catalog record. ID is stable and unique; Slug is the
// unique URL-safe secondary key. Field names in JSON match the portable
// catalog document format, so exports from the legacy admin import cleanly.
type Product struct {
	ID               string            `json:"id"`
	Slug             string            `json:"slug"`
	Name             string            `json:"name"`
	Category         string            `json:"category"`
	Description      string            `json:"description"`
	ShortDescription string            `json:"shortDescription,omitempty"`
	Features         []string          `json:"features"`
	Specs            map[string]string `json:"specs"`
	Image            string            `json:"image"`
	Gallery          []string          `json:"gallery"`
	PriceDisplay     string            `json:"priceDisplay"`
	PriceRange       string            `json:"priceRange"`
	Compatibility    []string          `json:"compatibility"`
	Usage            []string          `json:"usage"`
	Material         string            `json:"material"`
	InStock          bool              `json:"inStock"`
	IsNew            bool              `json:"isNew"`
	IsFeatured       bool              `json:"isFeatured"`
	DatasheetURL     string            `json:"datasheetUrl,omitempty"`
	Certifications   []string          `json:"certifications,omitempty"`
	Standards        []string          `json:"standards,omitempty"`
	Applications     []string          `json:"applications,omitempty"`
	Tolerances       map[string]string `json:"tolerances,omitempty"`
	Materials        map[string]string `json:"materials,omitempty"`
	LeadTime         string            `json:"leadTime,omitempty"`
	MinOrder         int               `json:"minOrder,omitempty"`
	Warranty         string            `json:"warranty,omitempty"`
}

// ValidCategory reports whether cat is a known category.
func ValidCategory(cat string) bool {
	for _, c := range Categories {
		if c == cat {
			return true
		}
	}
	return false
}

// ValidPriceRange reports whether pr is a known price band.
func ValidPriceRange(pr string) bool {
	for _, p := range PriceRanges {
		if p == pr {
			return true
		}
	}
	return false
}

// ValidUsageTag reports whether tag is a known usage tag.
func ValidUsageTag(tag string) bool {
	for _, u := range UsageTags {
		if u == tag {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so callers can never alias the engine's
// slices or maps through a returned record.
func (p Product) Clone() Product {
	out := p
	out.Features = cloneStrings(p.Features)
	out.Gallery = cloneStrings(p.Gallery)
	out.Compatibility = cloneStrings(p.Compatibility)
	out.Usage = cloneStrings(p.Usage)
	out.Certifications = cloneStrings(p.Certifications)
	out.Standards = cloneStrings(p.Standards)
	out.Applications = cloneStrings(p.Applications)
	out.Specs = cloneMap(p.Specs)
	out.Tolerances = cloneMap(p.Tolerances)
	out.Materials = cloneMap(p.Materials)
	return out
}

// CloneCatalog deep-copies an ordered product list.
func CloneCatalog(items []Product) []Product {
	if items == nil {
		return nil
	}
	out := make([]Product, len(items))
	for i, p := range items {
		out[i] = p.Clone()
	}
	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func cloneMap(in map[string]string) map[string]string {
	if in == nil {
		return nil
	}
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
