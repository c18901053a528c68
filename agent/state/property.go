package state

import "strings"

// FeatureDelimiter separates feature tags inside a Property.Features string.
const FeatureDelimiter = "،"

// Property is one inventory record from the external catalog. Price and
// Bedrooms stay as raw strings: catalog sources are tabular text and a value
// that does not parse must degrade a single filter, never the whole record.
type Property struct {
	Type     string `json:"type" bun:"type"`
	Location string `json:"location" bun:"location"`
	Price    string `json:"price" bun:"price"`
	Bedrooms string `json:"bedrooms" bun:"bedrooms"`
	Features string `json:"features" bun:"features"`
}

// FeatureList splits the delimiter-separated feature tags, trimming spaces.
// Empty tags are dropped.
func (p Property) FeatureList() []string {
	if strings.TrimSpace(p.Features) == "" {
		return nil
	}
	parts := strings.Split(p.Features, FeatureDelimiter)
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
