// Package funnel holds the default, fully deterministic phase-decision
// policy. It advances the fixed sales funnel on slot completeness and a
// small closed set of affirmation/rejection cues; an LLM-backed decider
// can replace it without touching the rendering path.
package funnel

import (
	"context"
	"strings"
	"unicode"
	"unicode/utf8"

	contractx "github.com/semsarlabs/semsar/agent/contract"
	"github.com/semsarlabs/semsar/agent/extract"
	statex "github.com/semsarlabs/semsar/agent/state"
)

var affirmations = []string{
	"تمام", "ايوه", "أيوه", "اه", "أه", "ماشي", "موافق", "اوك", "yes", "ok",
}

var rejections = []string{
	"لا", "مش", "ما عجبني", "ما عجباني", "no",
}

// Policy is the deterministic PhaseDecider.
type Policy struct{}

var _ contractx.PhaseDecider = Policy{}

func NewPolicy() Policy {
	return Policy{}
}

func (Policy) Decide(_ context.Context, req contractx.DecisionRequest) (statex.Phase, error) {
	current := req.Current
	if !current.Valid() {
		current = statex.PhaseDiscovery
	}

	message := strings.ToLower(req.Message)
	agreed := containsAny(message, affirmations)
	rejected := containsAny(message, rejections)
	// The refers_to slot persists across turns; only a reference in the
	// current message routes to persuasion.
	referred := extract.RefersToPrevious(req.Message)

	switch current {
	case statex.PhaseDiscovery:
		if req.Slots != nil && req.Slots.Complete() {
			return statex.PhaseSummary, nil
		}
		return statex.PhaseDiscovery, nil

	case statex.PhaseSummary:
		if agreed {
			return statex.PhaseSuggestion, nil
		}
		return statex.PhaseSummary, nil

	case statex.PhaseSuggestion:
		if referred {
			return statex.PhasePersuasion, nil
		}
		if rejected {
			return statex.PhaseAlternative, nil
		}
		if agreed {
			return statex.PhaseUrgency, nil
		}
		return statex.PhaseSuggestion, nil

	case statex.PhasePersuasion:
		if agreed {
			return statex.PhaseUrgency, nil
		}
		if rejected {
			return statex.PhaseAlternative, nil
		}
		return statex.PhasePersuasion, nil

	case statex.PhaseAlternative:
		if agreed {
			return statex.PhaseSuggestion, nil
		}
		return statex.PhaseAlternative, nil

	case statex.PhaseUrgency:
		if agreed {
			return statex.PhaseClosing, nil
		}
		return statex.PhaseUrgency, nil

	case statex.PhaseClosing:
		return statex.PhaseClosing, nil
	}

	return current, nil
}

func containsAny(message string, cues []string) bool {
	for _, cue := range cues {
		if containsWord(message, cue) {
			return true
		}
	}
	return false
}

// containsWord reports whether cue occurs in message bounded by
// non-letter runes, so a short cue like "لا" cannot fire inside a longer
// word like "فيلا".
func containsWord(message, cue string) bool {
	for offset := 0; offset+len(cue) <= len(message); {
		idx := strings.Index(message[offset:], cue)
		if idx < 0 {
			return false
		}
		idx += offset
		end := idx + len(cue)

		before, _ := utf8.DecodeLastRuneInString(message[:idx])
		after, _ := utf8.DecodeRuneInString(message[end:])
		if !unicode.IsLetter(before) && !unicode.IsLetter(after) {
			return true
		}
		offset = idx + 1
	}
	return false
}
