// Package extract holds the deterministic fact extraction that runs before
// any phase reasoning: gazetteer and pattern scans that populate unset
// slots from the raw user message.
package extract

import (
	"regexp"
	"strings"

	statex "github.com/semsarlabs/semsar/agent/state"
)

// locations is the area gazetteer, scanned in order; when a message names
// several areas the earliest entry in this list wins.
var locations = []string{
	"القاهرة", "الاسكندرية", "الجيزة", "المعادي", "مدينة نصر", "6 أكتوبر", "التجمع",
	"الشروق", "العبور", "الرحاب", "مدينتي", "الشيخ زايد", "المهندسين", "الدقي",
	"الزمالك", "وسط البلد", "مصر الجديدة", "حلوان",
}

// budgetPattern matches an amount (thousands separators allowed) followed
// by a currency or magnitude token. Arabic-Indic digits count too. Only
// the first match in a message is used.
var budgetPattern = regexp.MustCompile(`([0-9٠-٩][0-9٠-٩,]*)\s*(جنيه|الف|مليون|k|m)`)

const (
	unitThousand = "ألف جنيه"
	unitMillion  = "مليون جنيه"
	unitPound    = "جنيه"
)

type typeSynonyms struct {
	canonical string
	keywords  []string
}

// propertyTypes maps each canonical type to its spoken variants, both
// native script and transliterated. Declaration order is the tie-break.
var propertyTypes = []typeSynonyms{
	{"شقة", []string{"شقة", "شقه", "apartment"}},
	{"فيلا", []string{"فيلا", "فيلات", "villa"}},
	{"دوبلكس", []string{"دوبلكس", "duplex"}},
	{"ستوديو", []string{"ستوديو", "studio"}},
	{"محل", []string{"محل", "محلات", "shop"}},
	{"مكتب", []string{"مكتب", "مكاتب", "office"}},
}

// Facts scans the message and fills any still-unset slots in place. Slots
// already set are left alone; a value that fails to parse is skipped for
// that fact only. Facts never fails.
func Facts(message string, slots *statex.Slots) {
	extractLocation(message, slots)
	extractBudget(message, slots)
	extractPropertyType(message, slots)
}

func extractLocation(message string, slots *statex.Slots) {
	if slots.Location != "" {
		return
	}
	for _, location := range locations {
		if strings.Contains(message, location) {
			slots.SetLocation(location)
			return
		}
	}
}

func extractBudget(message string, slots *statex.Slots) {
	if slots.Budget != "" {
		return
	}
	match := budgetPattern.FindStringSubmatch(message)
	if match == nil {
		return
	}
	amount := asciiDigits(strings.ReplaceAll(match[1], ",", ""))
	slots.SetBudget(amount + " " + budgetUnitLabel(match[2]))
}

// asciiDigits maps Arabic-Indic digits to their ASCII equivalents so the
// stored slot value parses with strconv downstream.
func asciiDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '٠' && r <= '٩' {
			return '0' + (r - '٠')
		}
		return r
	}, s)
}

func budgetUnitLabel(unit string) string {
	switch unit {
	case "k", "الف":
		return unitThousand
	case "m", "مليون":
		return unitMillion
	default:
		return unitPound
	}
}

func extractPropertyType(message string, slots *statex.Slots) {
	if slots.PropertyType != "" {
		return
	}
	lower := strings.ToLower(message)
	for _, entry := range propertyTypes {
		for _, keyword := range entry.keywords {
			if strings.Contains(lower, keyword) {
				slots.SetPropertyType(entry.canonical)
				return
			}
		}
	}
}
