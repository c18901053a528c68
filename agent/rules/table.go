// Package rules implements the declarative advisory engine: a rule table
// loaded once at startup and a pure matcher that turns slot values and
// property features into advice strings.
package rules

import (
	"encoding/json"
	"os"

	"github.com/rs/zerolog/log"
)

// BudgetCondition keys the budget_advice rule group.
type BudgetCondition string

const (
	BudgetHigh BudgetCondition = "budget_high"
	BudgetMid  BudgetCondition = "budget_mid"
	BudgetLow  BudgetCondition = "budget_low"
)

// BudgetRule fires when the buyer's budget falls in the condition's band.
type BudgetRule struct {
	Condition BudgetCondition `json:"condition"`
	Response  string          `json:"response"`
}

// PriorityRule fires when its feature is a substring of a property
// feature tag.
type PriorityRule struct {
	Feature  string `json:"feature"`
	Response string `json:"response"`
}

// Table is the full rule set, loaded once and immutable afterwards. The
// two groups are independently shaped, so they stay two typed slices.
type Table struct {
	BudgetAdvice     []BudgetRule   `json:"budget_advice"`
	PropertyPriority []PriorityRule `json:"property_priority"`
}

// LoadTable reads the rule file. A missing or unreadable file is not
// fatal: the engine runs with an empty table and a warning is logged.
func LoadTable(path string) *Table {
	raw, err := os.ReadFile(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("rule table unavailable, advice disabled")
		return &Table{}
	}

	var table Table
	if err := json.Unmarshal(raw, &table); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("rule table malformed, advice disabled")
		return &Table{}
	}
	return &table
}
