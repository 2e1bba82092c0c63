// pkg/registry/registry.go
package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"pitchdeck/internal/common/validation"
)

// LoadRegistry reads a registry file. An empty path yields the built-in
// catalog.
func LoadRegistry(path string) (*ActivityRegistry, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var reg ActivityRegistry
	if err := json.Unmarshal(data, &reg); err != nil {
		return nil, fmt.Errorf("parse registry %s: %w", path, err)
	}
	return &reg, nil
}

// Save writes the registry as indented JSON, stamping LastUpdated.
func (r *ActivityRegistry) Save(path string, now time.Time) error {
	r.LastUpdated = now.UTC().Format(time.RFC3339)
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Find returns the activity serving taskType.
func (r *ActivityRegistry) Find(taskType string) (Activity, bool) {
	for _, a := range r.Activities {
		if a.TaskType == taskType {
			return a, true
		}
	}
	return Activity{}, false
}

// Validate checks ids, task types and that every input schema compiles.
func (r *ActivityRegistry) Validate() error {
	ids := make(map[string]bool)
	taskTypes := make(map[string]bool)

	for _, a := range r.Activities {
		if err := validation.ValidateActivityNaming(a.ID); err != nil {
			return fmt.Errorf("activity %q: %w", a.ID, err)
		}
		if ids[a.ID] {
			return fmt.Errorf("duplicate activity ID: %s", a.ID)
		}
		ids[a.ID] = true

		if a.TaskType == "" {
			return fmt.Errorf("activity %s: taskType is required", a.ID)
		}
		if taskTypes[a.TaskType] {
			return fmt.Errorf("duplicate task type: %s", a.TaskType)
		}
		taskTypes[a.TaskType] = true

		if a.Timeout != "" {
			if _, err := time.ParseDuration(a.Timeout); err != nil {
				return fmt.Errorf("activity %s: invalid timeout %q", a.ID, a.Timeout)
			}
		}
		if len(a.InputSchema) > 0 {
			if _, err := validation.NewValidator(a.InputSchema); err != nil {
				return fmt.Errorf("activity %s: input schema: %w", a.ID, err)
			}
		}
	}
	return nil
}

// Validator compiles the input schema for taskType. A task with no schema
// gets nil and no error.
func (r *ActivityRegistry) Validator(taskType string) (*validation.Validator, error) {
	a, ok := r.Find(taskType)
	if !ok {
		return nil, fmt.Errorf("unknown task type: %s", taskType)
	}
	if len(a.InputSchema) == 0 {
		return nil, nil
	}
	return validation.NewValidator(a.InputSchema)
}
