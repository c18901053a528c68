// Package catalog provides the property inventory: loaders for tabular
// sources and a deterministic matcher over the loaded records.
package catalog

import (
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	statex "github.com/semsarlabs/semsar/agent/state"
)

// maxResults caps how many records a search returns; ranking is catalog
// order, no scoring.
const maxResults = 3

// Filters are applied conjunctively; the zero value of each field
// disables that filter.
type Filters struct {
	Location     string
	PropertyType string
	// Budget accepts a scalar or a one-element list; only the first
	// element is consulted.
	Budget   []string
	Bedrooms string
}

// Catalog is an immutable in-memory inventory snapshot.
type Catalog struct {
	properties []statex.Property
}

func New(properties []statex.Property) *Catalog {
	return &Catalog{properties: properties}
}

func (c *Catalog) Len() int {
	return len(c.properties)
}

// Search filters the inventory and returns at most maxResults records in
// their original order. An empty catalog always yields an empty result.
func (c *Catalog) Search(f Filters) []statex.Property {
	if c == nil || len(c.properties) == 0 {
		return nil
	}

	budget, budgetActive := parseBudgetFilter(f.Budget)
	bedrooms, bedroomsActive := parseBedroomsFilter(f.Bedrooms)

	var matched []statex.Property
	for _, p := range c.properties {
		if f.Location != "" && !containsFold(p.Location, f.Location) {
			continue
		}
		if f.PropertyType != "" && !containsFold(p.Type, f.PropertyType) {
			continue
		}
		if budgetActive {
			price, ok := parsePrice(p.Price)
			if !ok || price > float64(budget) {
				continue
			}
		}
		if bedroomsActive {
			count, err := strconv.Atoi(strings.TrimSpace(p.Bedrooms))
			if err != nil || count != bedrooms {
				continue
			}
		}
		matched = append(matched, p)
		if len(matched) == maxResults {
			break
		}
	}
	return matched
}

// parseBudgetFilter normalizes the scalar-or-list budget value. A value
// that fails to parse disables the budget filter for this call.
func parseBudgetFilter(budget []string) (int, bool) {
	if len(budget) == 0 {
		return 0, false
	}
	raw := strings.TrimSpace(budget[0])
	raw = strings.ReplaceAll(raw, ",", "")
	raw = strings.Join(strings.Fields(raw), "")
	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Warn().Str("budget", budget[0]).Msg("budget filter not numeric, ignoring it")
		return 0, false
	}
	return value, true
}

func parseBedroomsFilter(bedrooms string) (int, bool) {
	if strings.TrimSpace(bedrooms) == "" {
		return 0, false
	}
	value, err := strconv.Atoi(strings.TrimSpace(bedrooms))
	if err != nil {
		return 0, false
	}
	return value, true
}

// parsePrice coerces a price cell to a number; non-numeric prices never
// satisfy a budget filter.
func parsePrice(raw string) (float64, bool) {
	value, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(raw), ",", ""), 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
