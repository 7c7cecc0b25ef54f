package pipeline

import "testing"

func TestSerializeInput(t *testing.T) {
	record := map[string]any{"type": "EMOM"}
	got := serializeInput(record)
	if got != `{"type":"EMOM"}` {
		t.Errorf("record: expected JSON object, got %q", got)
	}

	goals := []string{"improve cardio", "build leg strength"}
	got = serializeInput(goals)
	if got != `["improve cardio","build leg strength"]` {
		t.Errorf("sequence: expected JSON array, got %q", got)
	}

	if got := serializeInput(nil); got != "" {
		t.Errorf("nil: expected empty string, got %q", got)
	}

	if got := serializeInput(45); got != "45" {
		t.Errorf("scalar: expected plain text, got %q", got)
	}
}

func TestSerializeInput_IdempotentForStrings(t *testing.T) {
	payload := `{"type": "Strength", "duration": 45}`

	once := serializeInput(payload)
	twice := serializeInput(once)
	if once != payload || twice != payload {
		t.Errorf("string input was rewritten: %q -> %q -> %q", payload, once, twice)
	}
}
