package rules

import (
	"regexp"
	"strconv"
	"strings"

	statex "github.com/semsarlabs/semsar/agent/state"
)

// DefaultMidThreshold splits budget_low from budget_mid advice, in
// thousand-pound units.
const DefaultMidThreshold = 500

var leadingDigits = regexp.MustCompile(`[0-9٠-٩]+`)

func asciiDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '٠' && r <= '٩' {
			return '0' + (r - '٠')
		}
		return r
	}, s)
}

// Engine matches slot values and property features against the rule
// table. Advise is a pure function; the engine carries no per-turn state
// and is safe for concurrent use.
type Engine struct {
	table        *Table
	midThreshold int
}

// NewEngine wraps a loaded table. A non-positive midThreshold falls back
// to DefaultMidThreshold.
func NewEngine(table *Table, midThreshold int) *Engine {
	if table == nil {
		table = &Table{}
	}
	if midThreshold <= 0 {
		midThreshold = DefaultMidThreshold
	}
	return &Engine{table: table, midThreshold: midThreshold}
}

// Advise returns budget advice followed by feature advice, in rule-table
// order. Feature tags come from the supplied property when present, else
// from the slots. Duplicate responses are preserved.
func (e *Engine) Advise(slots *statex.Slots, prop *statex.Property) []string {
	var advice []string
	advice = append(advice, e.budgetAdvice(slots)...)
	advice = append(advice, e.featureAdvice(featureTags(slots, prop))...)
	return advice
}

func (e *Engine) budgetAdvice(slots *statex.Slots) []string {
	if slots == nil {
		return nil
	}
	budget := slots.Budget
	switch {
	case strings.Contains(budget, "مليون"):
		return e.byCondition(BudgetHigh)
	case strings.Contains(budget, "ألف"):
		raw := asciiDigits(leadingDigits.FindString(budget))
		if raw == "" {
			return nil
		}
		amount, err := strconv.Atoi(raw)
		if err != nil {
			return nil
		}
		if amount < e.midThreshold {
			return e.byCondition(BudgetLow)
		}
		return e.byCondition(BudgetMid)
	default:
		return nil
	}
}

func (e *Engine) byCondition(cond BudgetCondition) []string {
	var responses []string
	for _, rule := range e.table.BudgetAdvice {
		if rule.Condition == cond {
			responses = append(responses, rule.Response)
		}
	}
	return responses
}

func (e *Engine) featureAdvice(tags []string) []string {
	var responses []string
	for _, tag := range tags {
		for _, rule := range e.table.PropertyPriority {
			if rule.Feature != "" && strings.Contains(tag, rule.Feature) {
				responses = append(responses, rule.Response)
			}
		}
	}
	return responses
}

func featureTags(slots *statex.Slots, prop *statex.Property) []string {
	if prop != nil && strings.TrimSpace(prop.Features) != "" {
		return prop.FeatureList()
	}
	if slots != nil {
		return slots.Features
	}
	return nil
}
