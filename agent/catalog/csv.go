package catalog

import (
	"encoding/csv"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	statex "github.com/semsarlabs/semsar/agent/state"
)

// LoadCSV reads the inventory from a CSV file with a header row naming at
// least type, location, price, bedrooms and features. A missing or
// malformed file degrades to an empty catalog with a logged warning.
func LoadCSV(path string) *Catalog {
	f, err := os.Open(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("property catalog unavailable, starting empty")
		return New(nil)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("property catalog malformed, starting empty")
		return New(nil)
	}
	if len(rows) < 2 {
		return New(nil)
	}

	columns := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}

	cell := func(row []string, name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	properties := make([]statex.Property, 0, len(rows)-1)
	for _, row := range rows[1:] {
		properties = append(properties, statex.Property{
			Type:     cell(row, "type"),
			Location: cell(row, "location"),
			Price:    cell(row, "price"),
			Bedrooms: cell(row, "bedrooms"),
			Features: cell(row, "features"),
		})
	}
	return New(properties)
}
