package llm

import (
	"strings"
	"testing"
)

func testContract() Contract {
	return Contract{
		Name: "intent",
		Task: "Normalize a vague user request into a structured workout intent.",
		Inputs: []Field{
			{Name: "raw_request", Desc: "Free-text user input."},
		},
		Output: Field{Name: "intent", Desc: "JSON describing the intent."},
	}
}

func TestSystemPrompt(t *testing.T) {
	req := Request{Contract: testContract()}
	prompt := SystemPrompt(req)

	for _, want := range []string{
		"Normalize a vague user request",
		"raw_request",
		"Free-text user input.",
		"`intent`",
		"strict JSON",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("system prompt missing %q:\n%s", want, prompt)
		}
	}
	if strings.Contains(prompt, reasoningMarker) {
		t.Error("reasoning instructions present without reasoning mode")
	}
}

func TestSystemPrompt_ReasoningMode(t *testing.T) {
	req := Request{Contract: testContract(), Reasoning: true}
	prompt := SystemPrompt(req)

	if !strings.Contains(prompt, reasoningMarker) || !strings.Contains(prompt, answerMarker) {
		t.Errorf("reasoning instructions missing:\n%s", prompt)
	}
}

func TestUserPrompt(t *testing.T) {
	req := Request{
		Contract: testContract(),
		Inputs:   map[string]string{"raw_request": "I want a heavy lifting day"},
	}

	prompt := UserPrompt(req)
	if !strings.Contains(prompt, "raw_request:") {
		t.Errorf("user prompt missing field name:\n%s", prompt)
	}
	if !strings.Contains(prompt, "I want a heavy lifting day") {
		t.Errorf("user prompt missing input value:\n%s", prompt)
	}
}

func TestSplitReasoning(t *testing.T) {
	text := "Reasoning:\nThe user has back pain, swap deadlifts.\nAnswer:\n{\"name\": \"Safe Day\"}"

	output, reasoning := splitReasoning(text, true)
	if output != `{"name": "Safe Day"}` {
		t.Errorf("unexpected output: %q", output)
	}
	if !strings.Contains(reasoning, "back pain") {
		t.Errorf("unexpected reasoning: %q", reasoning)
	}

	// Without the marker the whole text is the output.
	output, reasoning = splitReasoning(`{"name": "Safe Day"}`, true)
	if output != `{"name": "Safe Day"}` || reasoning != "" {
		t.Errorf("unexpected split without marker: %q / %q", output, reasoning)
	}

	// Reasoning disabled: text passes through untouched.
	output, reasoning = splitReasoning(text, false)
	if output != text || reasoning != "" {
		t.Errorf("unexpected split with reasoning disabled: %q / %q", output, reasoning)
	}
}

func TestStripFences(t *testing.T) {
	fenced := "```json\n{\"a\": 1}\n```"
	if got := stripFences(fenced); got != `{"a": 1}` {
		t.Errorf("fenced: got %q", got)
	}

	plain := `{"a": 1}`
	if got := stripFences(plain); got != plain {
		t.Errorf("plain: got %q", got)
	}

	bare := "```\n{\"a\": 1}\n```"
	if got := stripFences(bare); got != `{"a": 1}` {
		t.Errorf("bare fence: got %q", got)
	}
}
