package prompt

import (
	_ "embed"
	"strings"
)

//go:embed template/phase_decider.txt
var phaseDeciderRaw string

// PromptSet holds loaded prompt content.
type PromptSet struct {
	PhaseDecider string
}

// LoadPromptSet returns a PromptSet with trimmed prompt strings. Safe to
// call concurrently; the embed is compile-time and trimming is cheap.
func LoadPromptSet() PromptSet {
	return PromptSet{
		PhaseDecider: strings.TrimSpace(phaseDeciderRaw),
	}
}
