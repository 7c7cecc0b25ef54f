package pipeline

import (
	"context"

	"github.com/rahul/wodsmith/internal/llm"
	"github.com/rahul/wodsmith/internal/observability"
)

// IntentStage normalizes a raw user request into a structured workout intent.
type IntentStage struct {
	Stage
}

func NewIntentStage(contract llm.Contract, client llm.Client, logger *observability.Logger, debug bool) *IntentStage {
	return &IntentStage{Stage{
		Contract: contract,
		Client:   client,
		Logger:   logger,
		Debug:    debug,
	}}
}

func (s *IntentStage) Run(ctx context.Context, rawRequest string) map[string]any {
	parsed, raw, ok := s.run(ctx, map[string]any{"raw_request": rawRequest})
	if ok {
		return parsed
	}
	return map[string]any{
		"raw_request":     rawRequest,
		"raw_intent_text": raw,
	}
}

// ArchitectStage generates the base workout from the intent. It accepts the
// previous stage's output verbatim, record or fallback alike.
type ArchitectStage struct {
	Stage
}

func NewArchitectStage(contract llm.Contract, client llm.Client, logger *observability.Logger, debug bool) *ArchitectStage {
	return &ArchitectStage{Stage{
		Contract: contract,
		Client:   client,
		Logger:   logger,
		Debug:    debug,
	}}
}

func (s *ArchitectStage) Run(ctx context.Context, request any) map[string]any {
	parsed, raw, ok := s.run(ctx, map[string]any{"request": request})
	if ok {
		return parsed
	}
	return map[string]any{
		"request":          request,
		"raw_workout_text": raw,
	}
}

// ScalingStage annotates the base workout with scaled, rx_plus, and
// injury_alts options. It requests explicit reasoning from the model; the
// reasoning text only feeds debug instrumentation.
type ScalingStage struct {
	Stage
}

func NewScalingStage(contract llm.Contract, client llm.Client, logger *observability.Logger, debug bool) *ScalingStage {
	return &ScalingStage{Stage{
		Contract:  contract,
		Client:    client,
		Logger:    logger,
		Debug:     debug,
		Reasoning: true,
	}}
}

func (s *ScalingStage) Run(ctx context.Context, baseWOD any, injury string) map[string]any {
	parsed, raw, ok := s.run(ctx, map[string]any{
		"base_workout": baseWOD,
		"injury":       injury,
	})
	if ok {
		return parsed
	}
	return map[string]any{
		"base_wod":           baseWOD,
		"injury":             injury,
		"raw_annotated_text": raw,
	}
}

// OptimizerStage wraps the annotated workout into the final plan: warm-up,
// cool-down, and two accessory sessions aligned to the user's goals. Runs in
// explicit-reasoning mode like the scaling stage.
type OptimizerStage struct {
	Stage
}

func NewOptimizerStage(contract llm.Contract, client llm.Client, logger *observability.Logger, debug bool) *OptimizerStage {
	return &OptimizerStage{Stage{
		Contract:  contract,
		Client:    client,
		Logger:    logger,
		Debug:     debug,
		Reasoning: true,
	}}
}

func (s *OptimizerStage) Run(ctx context.Context, modifiedWOD any, goals []string) map[string]any {
	if goals == nil {
		goals = []string{}
	}
	parsed, raw, ok := s.run(ctx, map[string]any{
		"modified_workout": modifiedWOD,
		"goals":            goals,
	})
	if ok {
		return parsed
	}
	return map[string]any{
		"modified_wod":  modifiedWOD,
		"goals":         goals,
		"raw_plan_text": raw,
	}
}
