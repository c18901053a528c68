package contract

import (
	"context"

	statex "github.com/semsarlabs/semsar/agent/state"
)

// PhaseDecider picks the funnel phase the next reply should be rendered
// in. Returning the current phase leaves the funnel where it is.
type PhaseDecider interface {
	Decide(ctx context.Context, req DecisionRequest) (statex.Phase, error)
}

// KnowledgeRetriever supplies per-turn knowledge: suggested questions for
// the current phase and inventory matching the known slots.
type KnowledgeRetriever interface {
	Retrieve(ctx context.Context, query string, phase statex.Phase, slots *statex.Slots) (Knowledge, error)
}

// LeadPublisher hands a closing-phase lead off to an external system.
type LeadPublisher interface {
	Publish(ctx context.Context, lead Lead) error
}

// Lead is the payload published when a conversation reaches closing.
type Lead struct {
	SessionID string            `json:"session_id"`
	Slots     statex.Slots      `json:"slots"`
	Selected  []statex.Property `json:"selected,omitempty"`
}
