package turnnode

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	contractx "github.com/semsarlabs/semsar/agent/contract"
)

// DecidePhase lets the decider advance the funnel. A decider failure or
// an invalid phase keeps the conversation where it is.
func DecidePhase(ctx context.Context, in *GraphState, decider contractx.PhaseDecider) (*GraphState, error) {
	if in == nil || in.Session == nil {
		return nil, fmt.Errorf("%w: graph session is nil", contractx.ErrValidation)
	}
	if decider == nil {
		return in, nil
	}

	next, err := decider.Decide(ctx, contractx.DecisionRequest{
		Message: in.Text,
		Current: in.Session.Phase,
		Slots:   &in.Session.Slots,
		History: in.Session.History,
	})
	if err != nil {
		log.Warn().Err(err).Str("session_id", in.SessionID).Msg("phase decision failed, keeping current phase")
		return in, nil
	}
	if !next.Valid() {
		log.Warn().Stringer("phase", next).Str("session_id", in.SessionID).Msg("decider returned unknown phase, keeping current phase")
		return in, nil
	}

	if next != in.Session.Phase {
		log.Info().
			Stringer("from", in.Session.Phase).
			Stringer("to", next).
			Str("session_id", in.SessionID).
			Msg("funnel phase advanced")
		in.Session.Phase = next
	}
	return in, nil
}
