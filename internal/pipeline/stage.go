package pipeline

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rahul/wodsmith/internal/llm"
	"github.com/rahul/wodsmith/internal/observability"
)

// Stage holds the mechanics shared by the four executors: serialize the
// inputs, invoke the model, extract a record from the raw output. Each
// executor owns its own fallback record shape.
type Stage struct {
	Contract  llm.Contract
	Client    llm.Client
	Logger    *observability.Logger
	Debug     bool
	Reasoning bool
}

// run executes one model invocation for the stage. It returns the parsed
// record, the raw model text, and whether extraction produced a record. It
// never returns an error: a transport failure is logged and reported as a
// failed extraction with empty raw text, so the caller degrades to its
// fallback the same way it does for malformed output.
func (s *Stage) run(ctx context.Context, inputs map[string]any) (map[string]any, string, bool) {
	serialized := make(map[string]string, len(inputs))
	for name, v := range inputs {
		serialized[name] = serializeInput(v)
	}

	if s.Debug {
		s.Logger.LogStageInput(s.Contract.Name, serialized)
	}

	resp, err := s.Client.Generate(ctx, llm.Request{
		Contract:  s.Contract,
		Inputs:    serialized,
		Reasoning: s.Reasoning,
	})
	if err != nil {
		s.Logger.LogStageError(s.Contract.Name, err)
		return nil, "", false
	}

	if s.Debug {
		s.Logger.LogStageOutput(s.Contract.Name, resp.Output)
		if resp.Reasoning != "" {
			s.Logger.LogReasoning(s.Contract.Name, resp.Reasoning)
		}
	}

	parsed, ok := DecodeRecord(resp.Output, s.Logger)
	return parsed, resp.Output, ok
}

// serializeInput converts a stage input into the canonical text the model
// sees. Records and sequences marshal to JSON so the model always observes a
// consistent schema; strings pass through verbatim, which makes serialization
// idempotent for already-serialized payloads.
func serializeInput(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case map[string]any, []any, []string:
		data, err := json.Marshal(x)
		if err != nil {
			return fmt.Sprint(x)
		}
		return string(data)
	default:
		return fmt.Sprint(x)
	}
}
