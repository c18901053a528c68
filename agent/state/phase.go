package state

import "fmt"

// Phase is one stage of the fixed sales funnel a conversation moves through.
// Transitions are decided by a PhaseDecider collaborator; the renderer only
// consumes the current value.
type Phase int

const (
	PhaseDiscovery Phase = iota + 1 // initial client qualification
	PhaseSummary                    // confirm collected info
	PhaseSuggestion                 // present matching properties
	PhasePersuasion                 // build value for the shown property
	PhaseAlternative                // address concerns with alternatives
	PhaseUrgency                    // create urgency
	PhaseClosing                    // facilitate next steps
)

var phaseNames = map[Phase]string{
	PhaseDiscovery:   "discovery",
	PhaseSummary:     "summary",
	PhaseSuggestion:  "suggestion",
	PhasePersuasion:  "persuasion",
	PhaseAlternative: "alternative",
	PhaseUrgency:     "urgency",
	PhaseClosing:     "closing",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

func (p Phase) Valid() bool {
	_, ok := phaseNames[p]
	return ok
}

// ParsePhase maps a phase name back to its Phase value.
func ParsePhase(name string) (Phase, bool) {
	for p, n := range phaseNames {
		if n == name {
			return p, true
		}
	}
	return 0, false
}

func (p Phase) MarshalText() ([]byte, error) {
	name, ok := phaseNames[p]
	if !ok {
		return nil, fmt.Errorf("unknown phase %d", int(p))
	}
	return []byte(name), nil
}

func (p *Phase) UnmarshalText(text []byte) error {
	parsed, ok := ParsePhase(string(text))
	if !ok {
		return fmt.Errorf("unknown phase %q", string(text))
	}
	*p = parsed
	return nil
}
