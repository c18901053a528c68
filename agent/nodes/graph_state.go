// Package turnnode contains the per-turn pipeline steps the orchestrator
// composes into its message-handling graph. Each node takes the shared
// GraphState, does one thing, and hands the state on.
package turnnode

import (
	"errors"
	"strings"
	"time"

	contractx "github.com/semsarlabs/semsar/agent/contract"
	"github.com/semsarlabs/semsar/agent/respond"
	statex "github.com/semsarlabs/semsar/agent/state"
)

var (
	ErrInvalidMessage = errors.New("message is empty")
	ErrInvalidSession = errors.New("session id is empty")
)

type GraphInput struct {
	SessionID string
	Text      string
}

type GraphOutput struct {
	Reply    string
	Phase    statex.Phase
	Slots    statex.Slots
	Selected []statex.Property
}

type GraphState struct {
	SessionID string
	Text      string
	Now       time.Time

	Session   *statex.SessionState
	Knowledge contractx.Knowledge
	Reply     respond.Reply
}

func ValidateRequest(in GraphInput, nowFn func() time.Time) (*GraphState, error) {
	sessionID := strings.TrimSpace(in.SessionID)
	if sessionID == "" {
		return nil, ErrInvalidSession
	}

	text := strings.TrimSpace(in.Text)
	if text == "" {
		return nil, ErrInvalidMessage
	}

	return &GraphState{
		SessionID: sessionID,
		Text:      text,
		Now:       nowFn().UTC(),
	}, nil
}
