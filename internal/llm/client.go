package llm

import (
	"context"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/schema"
)

// Field describes one named input or output slot of a stage contract.
type Field struct {
	Name string
	Desc string
}

// Contract is the declarative metadata for one pipeline stage: the task the
// model must perform, the named inputs it receives, and the single output
// field it must produce. Contracts carry no logic; they only constrain what
// is sent to and expected back from the model.
type Contract struct {
	Name   string
	Task   string
	Inputs []Field
	Output Field
}

// Request carries one stage invocation across the model boundary. Inputs are
// already serialized to text, keyed by contract input field name. When
// Reasoning is set the client asks the model to expose its working before the
// final answer; the reasoning text is diagnostic only.
type Request struct {
	Contract  Contract
	Inputs    map[string]string
	Reasoning bool
}

// Response is the raw text the model produced for the contract's output
// field, plus any reasoning text it exposed.
type Response struct {
	Output    string
	Reasoning string
}

// Client is the external model boundary. Authentication, model selection,
// retries, and transport all live behind this interface.
type Client interface {
	Generate(ctx context.Context, req Request) (*Response, error)
}

// LangchainClient implements Client on top of a langchaingo model.
type LangchainClient struct {
	Model llms.Model
}

func NewLangchainClient(model llms.Model) *LangchainClient {
	return &LangchainClient{Model: model}
}

func (c *LangchainClient) Generate(ctx context.Context, req Request) (*Response, error) {
	messages := []llms.MessageContent{
		{
			Role:  schema.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{llms.TextPart(SystemPrompt(req))},
		},
		{
			Role:  schema.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{llms.TextPart(UserPrompt(req))},
		},
	}

	resp, err := c.Model.GenerateContent(ctx, messages)
	if err != nil {
		return nil, err
	}
	if len(resp.Choices) == 0 {
		return &Response{}, nil
	}

	output, reasoning := splitReasoning(resp.Choices[0].Content, req.Reasoning)
	return &Response{Output: stripFences(output), Reasoning: reasoning}, nil
}

// splitReasoning separates an explicit-reasoning answer into its reasoning
// and output parts. Without the answer marker the whole text is the output.
func splitReasoning(text string, reasoning bool) (string, string) {
	text = strings.TrimSpace(text)
	if !reasoning {
		return text, ""
	}

	idx := strings.LastIndex(text, answerMarker)
	if idx < 0 {
		return text, ""
	}

	head := strings.TrimSpace(text[:idx])
	head = strings.TrimSpace(strings.TrimPrefix(head, reasoningMarker))
	return strings.TrimSpace(text[idx+len(answerMarker):]), head
}

// stripFences removes a markdown code fence wrapping, which chat models add
// around JSON despite instructions not to.
func stripFences(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return text
	}

	trimmed = strings.TrimPrefix(trimmed, "```")
	if nl := strings.Index(trimmed, "\n"); nl >= 0 {
		// Drop the language tag line (```json).
		if lang := strings.TrimSpace(trimmed[:nl]); lang == "" || !strings.ContainsAny(lang, " \t{[") {
			trimmed = trimmed[nl+1:]
		}
	}
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
