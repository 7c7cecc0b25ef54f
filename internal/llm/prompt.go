package llm

import (
	"fmt"
	"strings"
)

const (
	reasoningMarker = "Reasoning:"
	answerMarker    = "Answer:"
)

// SystemPrompt renders a contract into the system instruction for the model:
// the task, the documented input and output fields, and the format rules.
func SystemPrompt(req Request) string {
	var b strings.Builder

	b.WriteString(req.Contract.Task)
	b.WriteString("\n\nYou receive the following input fields:\n")
	for _, f := range req.Contract.Inputs {
		fmt.Fprintf(&b, "- %s: %s\n", f.Name, f.Desc)
	}

	fmt.Fprintf(&b, "\nYou must produce the field `%s`: %s\n", req.Contract.Output.Name, req.Contract.Output.Desc)

	if req.Reasoning {
		fmt.Fprintf(&b, "\nFirst write your step-by-step reasoning after a line starting with `%s`. Then write the final value of `%s` after a line starting with `%s`. After `%s`, output strict JSON only.\n",
			reasoningMarker, req.Contract.Output.Name, answerMarker, answerMarker)
	} else {
		fmt.Fprintf(&b, "\nRespond with the value of `%s` only. Output strict JSON, with no code fences and no commentary.\n", req.Contract.Output.Name)
	}

	return b.String()
}

// UserPrompt renders the serialized input values in contract order.
func UserPrompt(req Request) string {
	var b strings.Builder
	for _, f := range req.Contract.Inputs {
		fmt.Fprintf(&b, "%s:\n%s\n\n", f.Name, req.Inputs[f.Name])
	}
	return strings.TrimSpace(b.String())
}
