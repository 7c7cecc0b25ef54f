package pipeline

import (
	"context"

	"github.com/rahul/wodsmith/internal/llm"
	"github.com/rahul/wodsmith/internal/observability"
)

// Context is the auxiliary user-supplied input consumed by specific stages.
// Both fields are optional: the zero value means no injury and no goals.
type Context struct {
	Injury string   `json:"injury"`
	Goals  []string `json:"goals"`
}

// Result bundles every intermediate stage output plus the final plan, which
// is the headline result. Any of the four records may be a fallback record if
// its stage could not parse the model output.
type Result struct {
	Intent       map[string]any `json:"intent"`
	BaseWOD      map[string]any `json:"base_wod"`
	AnnotatedWOD map[string]any `json:"annotated_wod"`
	Plan         map[string]any `json:"plan"`
}

// Pipeline sequences the four stages: intent, architect, scaling, optimizer.
// Strictly sequential, no retries, no branching: a degraded record from an
// earlier stage is handed to the next stage as ordinary input.
type Pipeline struct {
	Intent    *IntentStage
	Architect *ArchitectStage
	Scaler    *ScalingStage
	Optimizer *OptimizerStage
}

func New(client llm.Client, logger *observability.Logger, contracts Contracts, debug bool) *Pipeline {
	return &Pipeline{
		Intent:    NewIntentStage(contracts.Intent, client, logger, debug),
		Architect: NewArchitectStage(contracts.Architect, client, logger, debug),
		Scaler:    NewScalingStage(contracts.Scaling, client, logger, debug),
		Optimizer: NewOptimizerStage(contracts.Optimizer, client, logger, debug),
	}
}

// Run executes the full pipeline for one request. It always reaches the
// terminal state and always returns a complete 4-field bundle; malformed
// model output degrades individual records, never the run.
func (p *Pipeline) Run(ctx context.Context, rawRequest string, pctx Context) *Result {
	intent := p.Intent.Run(ctx, rawRequest)
	baseWOD := p.Architect.Run(ctx, intent)
	annotated := p.Scaler.Run(ctx, baseWOD, pctx.Injury)
	plan := p.Optimizer.Run(ctx, annotated, pctx.Goals)

	return &Result{
		Intent:       intent,
		BaseWOD:      baseWOD,
		AnnotatedWOD: annotated,
		Plan:         plan,
	}
}
