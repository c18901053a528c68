// Package orchestrator wires the per-turn pipeline into a runnable agent:
// one HandleMessage call processes one user message end to end.
package orchestrator

import (
	"context"
	"errors"
	"time"

	"github.com/cloudwego/eino/compose"

	contractx "github.com/semsarlabs/semsar/agent/contract"
	turnnode "github.com/semsarlabs/semsar/agent/nodes"
	"github.com/semsarlabs/semsar/agent/rules"
	statex "github.com/semsarlabs/semsar/agent/state"
)

var (
	ErrInvalidMessage = turnnode.ErrInvalidMessage
	ErrInvalidSession = turnnode.ErrInvalidSession
)

// Result is what one processed turn hands back to the host.
type Result struct {
	Reply    string
	Phase    statex.Phase
	Slots    statex.Slots
	Selected []statex.Property
}

// Service drives one conversation turn at a time. Each session's state is
// owned by at most one in-flight turn; the service itself holds no
// per-conversation state.
type Service struct {
	store     statex.Store
	retriever contractx.KnowledgeRetriever
	decider   contractx.PhaseDecider
	engine    *rules.Engine

	graphRunner compose.Runnable[turnnode.GraphInput, turnnode.GraphOutput]

	now func() time.Time
}

func New(
	store statex.Store,
	retriever contractx.KnowledgeRetriever,
	decider contractx.PhaseDecider,
	engine *rules.Engine,
) (*Service, error) {
	if store == nil {
		return nil, errors.New("session store is required")
	}
	if decider == nil {
		return nil, errors.New("phase decider is required")
	}
	if engine == nil {
		engine = rules.NewEngine(nil, 0)
	}

	s := &Service{
		store:     store,
		retriever: retriever,
		decider:   decider,
		engine:    engine,
		now:       time.Now,
	}

	graphRunner, err := s.compileTurnGraph(context.Background())
	if err != nil {
		return nil, err
	}
	s.graphRunner = graphRunner

	return s, nil
}

// HandleMessage processes one user message and returns the rendered
// reply together with the post-turn session snapshot.
func (s *Service) HandleMessage(ctx context.Context, sessionID string, text string) (Result, error) {
	out, err := s.graphRunner.Invoke(ctx, turnnode.GraphInput{
		SessionID: sessionID,
		Text:      text,
	})
	if err != nil {
		return Result{}, err
	}
	return Result{
		Reply:    out.Reply,
		Phase:    out.Phase,
		Slots:    out.Slots,
		Selected: out.Selected,
	}, nil
}
