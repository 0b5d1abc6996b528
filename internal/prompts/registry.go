// Package prompts holds the built-in extraction tasks: one instruction
// prompt and one response schema per category of datasheet information.
// Assets are embedded so the binary is self-contained.
package prompts

import (
	"embed"
	"encoding/json"
	"fmt"
	"path"
	"sort"
	"strings"
)

// TaskCustom is the escape hatch: the caller supplies the prompt, and
// optionally the schema, instead of relying on a built-in pair.
const TaskCustom = "custom"

// DefaultSchema accepts any JSON object. Tasks without a schema file of
// their own, the custom task among them, fall back to it.
var DefaultSchema = json.RawMessage(`{"type":"object","additionalProperties":true}`)

//go:embed prompts/*.md schemas/*.json
var assets embed.FS

// descriptions gives each task a one-line summary for help output.
var descriptions = map[string]string{
	"boot-config":        "Boot configuration requirements",
	"characteristics":    "Electrical/thermal characteristics",
	"custom":             "Custom extraction with user-provided prompt",
	"drc-rules":          "PCB design rule constraints",
	"feature-matrix":     "Feature matrix and part decoding",
	"footprint":          "PCB footprint extraction",
	"high-speed":         "High-speed interface routing constraints",
	"layout-constraints": "PCB layout constraints",
	"pinout":             "Pinout and configuration",
	"power":              "Power requirements",
	"reference-design":   "Reference design extraction",
}

// Task pairs an extraction prompt with the JSON schema constraining the
// model's answer.
type Task struct {
	// Name is the identifier used on the command line.
	Name string

	// Description is a one-line summary for help output.
	Description string

	// Prompt is the instruction text sent alongside the document.
	Prompt string

	// Schema constrains the response shape.
	Schema json.RawMessage
}

// Get returns the task registered under name. The error for an unknown name
// lists the valid tasks.
func Get(name string) (Task, error) {
	prompt, err := assets.ReadFile(path.Join("prompts", name+".md"))
	if err != nil {
		return Task{}, fmt.Errorf("unknown task %q (valid tasks: %s)", name, strings.Join(Names(), ", "))
	}

	schema := DefaultSchema
	if data, err := assets.ReadFile(path.Join("schemas", name+".json")); err == nil {
		schema = data
	}

	return Task{
		Name:        name,
		Description: descriptions[name],
		Prompt:      string(prompt),
		Schema:      schema,
	}, nil
}

// Names returns every task name in sorted order.
func Names() []string {
	entries, err := assets.ReadDir("prompts")
	if err != nil {
		return nil
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, strings.TrimSuffix(entry.Name(), ".md"))
	}
	sort.Strings(names)
	return names
}
