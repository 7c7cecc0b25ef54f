package pipeline

import (
	"encoding/json"
	"fmt"
	"strings"
)

// FormatPlan renders a plan record as readable text for chat gateways. Known
// sections come out in a fixed order with headers; anything else (including
// fallback records) is rendered as indented JSON so no information is lost.
func FormatPlan(plan map[string]any) string {
	sections := []string{"warmup", "wod", "cooldown", "accessories"}

	known := 0
	for _, s := range sections {
		if _, ok := plan[s]; ok {
			known++
		}
	}
	if known == 0 {
		return indentJSON(plan)
	}

	var b strings.Builder
	for _, s := range sections {
		v, ok := plan[s]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "*%s*\n%s\n\n", strings.ToUpper(s), renderValue(v))
	}
	return strings.TrimSpace(b.String())
}

func renderValue(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case []any:
		var lines []string
		for _, item := range x {
			lines = append(lines, "- "+renderValue(item))
		}
		return strings.Join(lines, "\n")
	default:
		return indentJSON(v)
	}
}

func indentJSON(v any) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(data)
}
