package orchestrator

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/compose"

	turnnode "github.com/semsarlabs/semsar/agent/nodes"
)

func (s *Service) compileTurnGraph(
	ctx context.Context,
) (compose.Runnable[turnnode.GraphInput, turnnode.GraphOutput], error) {
	graph := compose.NewGraph[turnnode.GraphInput, turnnode.GraphOutput]()

	if err := graph.AddLambdaNode("validate_request",
		compose.InvokableLambda(func(ctx context.Context, in turnnode.GraphInput) (*turnnode.GraphState, error) {
			return turnnode.ValidateRequest(in, s.now)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node validate_request: %w", err)
	}

	if err := graph.AddLambdaNode("load_or_create_state",
		compose.InvokableLambda(func(ctx context.Context, in *turnnode.GraphState) (*turnnode.GraphState, error) {
			return turnnode.LoadOrCreateState(ctx, in, s.store)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node load_or_create_state: %w", err)
	}

	if err := graph.AddLambdaNode("extract_facts",
		compose.InvokableLambda(func(ctx context.Context, in *turnnode.GraphState) (*turnnode.GraphState, error) {
			return turnnode.ExtractFacts(in)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node extract_facts: %w", err)
	}

	if err := graph.AddLambdaNode("resolve_reference",
		compose.InvokableLambda(func(ctx context.Context, in *turnnode.GraphState) (*turnnode.GraphState, error) {
			return turnnode.ResolveReference(in)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node resolve_reference: %w", err)
	}

	if err := graph.AddLambdaNode("decide_phase",
		compose.InvokableLambda(func(ctx context.Context, in *turnnode.GraphState) (*turnnode.GraphState, error) {
			return turnnode.DecidePhase(ctx, in, s.decider)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node decide_phase: %w", err)
	}

	if err := graph.AddLambdaNode("retrieve_knowledge",
		compose.InvokableLambda(func(ctx context.Context, in *turnnode.GraphState) (*turnnode.GraphState, error) {
			return turnnode.RetrieveKnowledge(ctx, in, s.retriever)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node retrieve_knowledge: %w", err)
	}

	if err := graph.AddLambdaNode("render_reply",
		compose.InvokableLambda(func(ctx context.Context, in *turnnode.GraphState) (*turnnode.GraphState, error) {
			return turnnode.RenderReply(in, s.engine)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node render_reply: %w", err)
	}

	if err := graph.AddLambdaNode("apply_effects",
		compose.InvokableLambda(func(ctx context.Context, in *turnnode.GraphState) (*turnnode.GraphState, error) {
			return turnnode.ApplyEffects(in)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node apply_effects: %w", err)
	}

	if err := graph.AddLambdaNode("save_state",
		compose.InvokableLambda(func(ctx context.Context, in *turnnode.GraphState) (*turnnode.GraphState, error) {
			return turnnode.SaveState(ctx, in, s.store)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node save_state: %w", err)
	}

	if err := graph.AddLambdaNode("finalize_reply",
		compose.InvokableLambda(func(ctx context.Context, in *turnnode.GraphState) (turnnode.GraphOutput, error) {
			return turnnode.FinalizeReply(in)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node finalize_reply: %w", err)
	}

	edges := [][2]string{
		{compose.START, "validate_request"},
		{"validate_request", "load_or_create_state"},
		{"load_or_create_state", "extract_facts"},
		{"extract_facts", "resolve_reference"},
		{"resolve_reference", "decide_phase"},
		{"decide_phase", "retrieve_knowledge"},
		{"retrieve_knowledge", "render_reply"},
		{"render_reply", "apply_effects"},
		{"apply_effects", "save_state"},
		{"save_state", "finalize_reply"},
		{"finalize_reply", compose.END},
	}
	for _, edge := range edges {
		if err := graph.AddEdge(edge[0], edge[1]); err != nil {
			return nil, fmt.Errorf("add edge %s -> %s: %w", edge[0], edge[1], err)
		}
	}

	runner, err := graph.Compile(ctx, compose.WithGraphName("orchestrator.handle_turn"))
	if err != nil {
		return nil, fmt.Errorf("compile turn graph: %w", err)
	}
	return runner, nil
}
