package turnnode

import (
	"fmt"

	contractx "github.com/semsarlabs/semsar/agent/contract"
	"github.com/semsarlabs/semsar/agent/extract"
)

// ExtractFacts runs the deterministic slot extraction over the incoming
// message. Already-set slots are never overwritten.
func ExtractFacts(in *GraphState) (*GraphState, error) {
	if in == nil || in.Session == nil {
		return nil, fmt.Errorf("%w: graph session is nil", contractx.ErrValidation)
	}

	extract.Facts(in.Text, &in.Session.Slots)
	return in, nil
}
