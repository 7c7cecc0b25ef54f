package pipeline

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadTaskOverrides reads a YAML file mapping stage name to a replacement
// task description and applies it to the given contracts. Stage names that
// match nothing are skipped with a warning; field layouts are never touched,
// only the task text the model is instructed with.
func LoadTaskOverrides(path string, contracts Contracts) (Contracts, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return contracts, fmt.Errorf("failed to read prompt overrides: %v", err)
	}

	overrides := map[string]string{}
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return contracts, fmt.Errorf("failed to parse prompt overrides: %v", err)
	}

	for stage, task := range overrides {
		switch stage {
		case StageIntent:
			contracts.Intent.Task = task
		case StageArchitect:
			contracts.Architect.Task = task
		case StageScaling:
			contracts.Scaling.Task = task
		case StageOptimizer:
			contracts.Optimizer.Task = task
		default:
			log.Printf("Warning: unknown stage %q in prompt overrides %s", stage, path)
		}
	}

	return contracts, nil
}
