package pipeline

import (
	"encoding/json"
	"fmt"

	"github.com/rahul/wodsmith/internal/observability"
)

// previewLimit bounds diagnostic previews so a huge model response cannot
// flood the log.
const previewLimit = 200

// DecodeRecord is the single point where untrusted model text becomes typed
// data. It attempts to decode text as a JSON object and returns the resulting
// record. Anything else — invalid JSON, or JSON that is a list, number, or
// string — yields (nil, false) and exactly one decode_warning event. It never
// panics and never returns an error, which is what keeps every downstream
// stage fallback-safe.
func DecodeRecord(text string, logger *observability.Logger) (map[string]any, bool) {
	var val any
	if err := json.Unmarshal([]byte(text), &val); err != nil {
		logger.LogDecodeWarning(
			fmt.Sprintf("failed to parse JSON: %v", err),
			truncate(text),
		)
		return nil, false
	}

	record, ok := val.(map[string]any)
	if !ok {
		logger.LogDecodeWarning(
			"JSON parsed but is not an object; expected a record",
			truncate(fmt.Sprint(val)),
		)
		return nil, false
	}

	return record, true
}

func truncate(s string) string {
	if len(s) <= previewLimit {
		return s
	}
	return s[:previewLimit]
}
