package pipeline

import "github.com/rahul/wodsmith/internal/llm"

// Stage names, used for contract lookup, prompt overrides, and log events.
const (
	StageIntent    = "intent"
	StageArchitect = "architect"
	StageScaling   = "scaling"
	StageOptimizer = "optimizer"
)

// Contracts bundles the four stage contracts the pipeline runs with. Task
// descriptions can be overridden per stage (see prompts.go); field layouts
// cannot.
type Contracts struct {
	Intent    llm.Contract
	Architect llm.Contract
	Scaling   llm.Contract
	Optimizer llm.Contract
}

// DefaultContracts returns the built-in stage contracts.
func DefaultContracts() Contracts {
	return Contracts{
		Intent: llm.Contract{
			Name: StageIntent,
			Task: "Normalize a vague user request into a structured workout intent.",
			Inputs: []llm.Field{
				{
					Name: "raw_request",
					Desc: "Free-text user input such as 'I feel tired but want to move', " +
						"'I want a heavy lifting day', or 'something light for 15 minutes'.",
				},
			},
			Output: llm.Field{
				Name: "intent",
				Desc: `JSON describing the intent, e.g. {"type": "Light-duty", "duration": 15, "style": "EMOM"} ` +
					`or {"type": "Heavy lifting", "duration": 45, "style": "Strength"}.`,
			},
		},
		Architect: llm.Contract{
			Name: StageArchitect,
			Task: "Generate a structured workout of the day from a structured intent. " +
				"Output strict JSON with fields: name, type, movements (list of objects with an exercise " +
				"and a unit like reps, time, or calories).",
			Inputs: []llm.Field{
				{
					Name: "request",
					Desc: `Structured intent from the intent stage (JSON text) such as ` +
						`{"type": "Light-duty", "duration": 15, "style": "EMOM"}.`,
				},
			},
			Output: llm.Field{
				Name: "workout",
				Desc: "JSON with fields: name, type, movements (list of {exercise, reps|time|calories}).",
			},
		},
		Scaling: llm.Contract{
			Name: StageScaling,
			Task: "Annotate a base workout with scaled and rx_plus options and safe alternatives for injuries.",
			Inputs: []llm.Field{
				{
					Name: "base_workout",
					Desc: "JSON from the architect stage: {name, type, movements}.",
				},
				{
					Name: "injury",
					Desc: "Free-text injury description like 'right shoulder pain' (may be empty).",
				},
			},
			Output: llm.Field{
				Name: "annotated_workout",
				Desc: "JSON of the same workout plus, for each movement: scaled, rx_plus, injury_alts when needed.",
			},
		},
		Optimizer: llm.Contract{
			Name: StageOptimizer,
			Task: "Provide a warm-up, a cool-down, and two accessory sessions aligned to the user's goals.",
			Inputs: []llm.Field{
				{
					Name: "modified_workout",
					Desc: "JSON from the scaling stage.",
				},
				{
					Name: "goals",
					Desc: "List of user goals like ['improve cardio', 'build leg strength'] (as a JSON array).",
				},
			},
			Output: llm.Field{
				Name: "plan",
				Desc: "Strict JSON only: {warmup, wod, cooldown, accessories: [..]} with actionable details.",
			},
		},
	}
}
