// Package llm provides the optional model-backed phase decider. Any model
// failure falls back to the deterministic funnel policy so a broken or
// unconfigured model never takes a turn down.
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/rs/zerolog/log"

	contractx "github.com/semsarlabs/semsar/agent/contract"
	statex "github.com/semsarlabs/semsar/agent/state"
)

// Decider asks a chat model to pick the next funnel phase.
type Decider struct {
	model    einomodel.ToolCallingChatModel
	prompt   string
	fallback contractx.PhaseDecider
}

var _ contractx.PhaseDecider = (*Decider)(nil)

func NewDecider(model einomodel.ToolCallingChatModel, prompt string, fallback contractx.PhaseDecider) (*Decider, error) {
	if model == nil {
		return nil, fmt.Errorf("%w: chat model is required", contractx.ErrValidation)
	}
	if fallback == nil {
		return nil, fmt.Errorf("%w: fallback decider is required", contractx.ErrValidation)
	}
	return &Decider{
		model:    model,
		prompt:   strings.TrimSpace(prompt),
		fallback: fallback,
	}, nil
}

func (d *Decider) Decide(ctx context.Context, req contractx.DecisionRequest) (statex.Phase, error) {
	phase, err := d.decideWithModel(ctx, req)
	if err != nil {
		log.Warn().Err(err).Msg("model phase decision failed, using funnel policy")
		return d.fallback.Decide(ctx, req)
	}
	return phase, nil
}

func (d *Decider) decideWithModel(ctx context.Context, req contractx.DecisionRequest) (statex.Phase, error) {
	slotsJSON, err := json.Marshal(req.Slots)
	if err != nil {
		return 0, fmt.Errorf("%w: marshal slots: %v", contractx.ErrModelInvoke, err)
	}

	user := fmt.Sprintf(
		"current_phase: %s\nslots: %s\nuser_message: %s",
		req.Current, slotsJSON, req.Message,
	)

	out, err := d.model.Generate(ctx, []*schema.Message{
		schema.SystemMessage(d.prompt),
		schema.UserMessage(user),
	})
	if err != nil {
		return 0, fmt.Errorf("%w: %v", contractx.ErrModelInvoke, err)
	}

	name := strings.ToLower(strings.TrimSpace(out.Content))
	phase, ok := statex.ParsePhase(name)
	if !ok {
		return 0, fmt.Errorf("%w: model returned unknown phase %q", contractx.ErrSchemaViolation, name)
	}
	return phase, nil
}
