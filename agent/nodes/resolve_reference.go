package turnnode

import (
	"fmt"

	"github.com/rs/zerolog/log"

	contractx "github.com/semsarlabs/semsar/agent/contract"
	"github.com/semsarlabs/semsar/agent/extract"
)

// ResolveReference binds vague complaints ("it doesn't please me") to the
// last shown property, or to the unresolved sentinel when nothing was
// shown yet.
func ResolveReference(in *GraphState) (*GraphState, error) {
	if in == nil || in.Session == nil {
		return nil, fmt.Errorf("%w: graph session is nil", contractx.ErrValidation)
	}

	if !extract.RefersToPrevious(in.Text) {
		return in, nil
	}

	log.Debug().Str("session_id", in.SessionID).Msg("message refers to a previously shown property")
	in.Session.Slots.SetRefersTo(in.Session.LastMentioned)
	return in, nil
}
