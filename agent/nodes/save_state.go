package turnnode

import (
	"context"
	"fmt"
	"strings"

	contractx "github.com/semsarlabs/semsar/agent/contract"
	statex "github.com/semsarlabs/semsar/agent/state"
)

// SaveState records the assistant reply in the transcript and persists
// the session.
func SaveState(ctx context.Context, in *GraphState, store statex.Store) (*GraphState, error) {
	if in == nil || in.Session == nil {
		return nil, fmt.Errorf("%w: graph session is nil", contractx.ErrValidation)
	}

	in.Session.AppendAssistantMessage(in.Reply.Text, in.Now)
	in.Session.Touch(in.Now)

	if err := store.Save(ctx, in.Session); err != nil {
		return nil, fmt.Errorf("save session state: %w", err)
	}
	return in, nil
}

// FinalizeReply shapes the graph output for the host.
func FinalizeReply(in *GraphState) (GraphOutput, error) {
	if in == nil || in.Session == nil {
		return GraphOutput{}, fmt.Errorf("%w: graph state is incomplete", contractx.ErrValidation)
	}

	reply := strings.TrimSpace(in.Reply.Text)
	if reply == "" {
		return GraphOutput{}, fmt.Errorf("%w: rendered reply is empty", contractx.ErrValidation)
	}

	return GraphOutput{
		Reply:    reply,
		Phase:    in.Session.Phase,
		Slots:    in.Session.Slots,
		Selected: in.Session.Selected,
	}, nil
}
