package turnnode

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	contractx "github.com/semsarlabs/semsar/agent/contract"
)

// RetrieveKnowledge asks the retriever for this turn's knowledge. A
// retriever failure degrades the turn to empty knowledge instead of
// failing it.
func RetrieveKnowledge(ctx context.Context, in *GraphState, retriever contractx.KnowledgeRetriever) (*GraphState, error) {
	if in == nil || in.Session == nil {
		return nil, fmt.Errorf("%w: graph session is nil", contractx.ErrValidation)
	}
	if retriever == nil {
		return in, nil
	}

	know, err := retriever.Retrieve(ctx, in.Text, in.Session.Phase, &in.Session.Slots)
	if err != nil {
		log.Warn().Err(err).Str("session_id", in.SessionID).Msg("knowledge retrieval failed, continuing without it")
		return in, nil
	}
	in.Knowledge = know
	return in, nil
}
