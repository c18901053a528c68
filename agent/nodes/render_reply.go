package turnnode

import (
	"fmt"

	contractx "github.com/semsarlabs/semsar/agent/contract"
	"github.com/semsarlabs/semsar/agent/respond"
	"github.com/semsarlabs/semsar/agent/rules"
)

// RenderReply renders the utterance for the decided phase. Rendering is
// pure; the declared side effects are applied by ApplyEffects.
func RenderReply(in *GraphState, engine *rules.Engine) (*GraphState, error) {
	if in == nil || in.Session == nil {
		return nil, fmt.Errorf("%w: graph session is nil", contractx.ErrValidation)
	}

	in.Reply = respond.Render(in.Session.Phase, &in.Session.Slots, in.Knowledge, engine)
	return in, nil
}

// ApplyEffects applies the side effects a suggestion turn declared:
// the shown list and the last mentioned property.
func ApplyEffects(in *GraphState) (*GraphState, error) {
	if in == nil || in.Session == nil {
		return nil, fmt.Errorf("%w: graph session is nil", contractx.ErrValidation)
	}

	if len(in.Reply.Selected) > 0 {
		in.Session.Selected = in.Reply.Selected
		in.Session.SetLastMentioned(in.Reply.LastMentioned)
	}
	return in, nil
}
