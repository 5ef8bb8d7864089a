// Package prompt provides a small prompt library for LLM interactions.
// Prompts ship with hardcoded defaults and can be overridden by JSON files
// loaded at startup, so wording changes need no recompilation.
package prompt

import (
	"bytes"
	"fmt"
	"text/template"
)

// PromptTemplate represents a reusable prompt with metadata
type PromptTemplate struct {
	ID             string `json:"id"`                   // Unique identifier (e.g., "resolution.siren_lookup")
	Name           string `json:"name"`                 // Human-readable name
	Description    string `json:"description"`          // Description of prompt purpose
	SystemPrompt   string `json:"system_prompt"`        // The system prompt content
	UserPromptTmpl string `json:"user_prompt_template"` // Go template for user prompt
	Version        string `json:"version"`              // Version for tracking changes
}

// Render executes the user prompt template against the given variables.
func (pt *PromptTemplate) Render(vars map[string]interface{}) (string, error) {
	tmpl, err := template.New(pt.ID).Parse(pt.UserPromptTmpl)
	if err != nil {
		return "", fmt.Errorf("failed to parse template %s: %w", pt.ID, err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, vars); err != nil {
		return "", fmt.Errorf("failed to render template %s: %w", pt.ID, err)
	}
	return buf.String(), nil
}
