// Package knowledge implements the default KnowledgeRetriever: embedded
// per-phase question banks plus inventory lookups derived from the known
// slots.
package knowledge

import (
	"context"
	_ "embed"
	"regexp"
	"strconv"
	"strings"

	"github.com/semsarlabs/semsar/agent/catalog"
	contractx "github.com/semsarlabs/semsar/agent/contract"
	statex "github.com/semsarlabs/semsar/agent/state"
)

var (
	//go:embed questions/discovery.txt
	discoveryRaw string

	//go:embed questions/summary.txt
	summaryRaw string

	//go:embed questions/suggestion.txt
	suggestionRaw string

	//go:embed questions/persuasion.txt
	persuasionRaw string
)

var phaseQuestions = map[statex.Phase][]string{
	statex.PhaseDiscovery:  splitLines(discoveryRaw),
	statex.PhaseSummary:    splitLines(summaryRaw),
	statex.PhaseSuggestion: splitLines(suggestionRaw),
	statex.PhasePersuasion: splitLines(persuasionRaw),
}

func splitLines(raw string) []string {
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}

var budgetAmount = regexp.MustCompile(`\d+`)

// Retriever serves suggested questions and, for suggestion turns,
// matching inventory.
type Retriever struct {
	catalog *catalog.Catalog
}

var _ contractx.KnowledgeRetriever = (*Retriever)(nil)

func NewRetriever(c *catalog.Catalog) *Retriever {
	return &Retriever{catalog: c}
}

func (r *Retriever) Retrieve(_ context.Context, _ string, phase statex.Phase, slots *statex.Slots) (contractx.Knowledge, error) {
	know := contractx.Knowledge{
		SuggestedQuestions: phaseQuestions[phase],
	}

	if phase == statex.PhaseSuggestion || phase == statex.PhaseAlternative {
		know.RelevantProperties = r.catalog.Search(filtersFromSlots(slots))
	}
	return know, nil
}

func filtersFromSlots(slots *statex.Slots) catalog.Filters {
	if slots == nil {
		return catalog.Filters{}
	}
	f := catalog.Filters{
		Location:     slots.Location,
		PropertyType: slots.PropertyType,
	}
	if budget, ok := budgetInPounds(slots.Budget); ok {
		f.Budget = []string{strconv.Itoa(budget)}
	}
	return f
}

// budgetInPounds scales the normalized budget slot ("500 ألف جنيه") to a
// plain pound amount for price comparison.
func budgetInPounds(budget string) (int, bool) {
	raw := budgetAmount.FindString(budget)
	if raw == "" {
		return 0, false
	}
	amount, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	switch {
	case strings.Contains(budget, "مليون"):
		return amount * 1_000_000, true
	case strings.Contains(budget, "ألف"):
		return amount * 1_000, true
	default:
		return amount, true
	}
}
