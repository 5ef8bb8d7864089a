// Package analysis produces an AI commentary on an assembled company
// profile. The commentary is optional: any model failure degrades to an
// empty commentary, never to a failed profile.
package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"company_profiler/pkg/core/agent"
	"company_profiler/pkg/core/prompt"
	"company_profiler/pkg/core/utils"
	"company_profiler/pkg/models"
)

// Commentator asks the configured model for a short structured note on a
// profile and renders it to markdown.
type Commentator struct {
	manager *agent.Manager
}

func NewCommentator(manager *agent.Manager) *Commentator {
	return &Commentator{manager: manager}
}

// Comment generates the commentary for a profile. analysisText is optional
// free-text context supplied by the caller. Returns "" on any failure.
func (c *Commentator) Comment(ctx context.Context, profile *models.AggregatedCompanyProfile, analysisText string) string {
	if c == nil || c.manager == nil || profile == nil {
		return ""
	}

	tmpl, err := prompt.Get().GetPrompt(prompt.CommentaryID)
	if err != nil {
		fmt.Printf("[COMMENTARY] Prompt not found: %v\n", err)
		return ""
	}

	profileJSON, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		fmt.Printf("[COMMENTARY] Failed to serialize profile: %v\n", err)
		return ""
	}

	userPrompt, err := tmpl.Render(map[string]interface{}{
		"ProfileJSON":  string(profileJSON),
		"AnalysisText": analysisText,
	})
	if err != nil {
		fmt.Printf("[COMMENTARY] Failed to render prompt: %v\n", err)
		return ""
	}

	options := map[string]interface{}{
		"response_format": map[string]interface{}{"type": "json_object"},
	}

	answer, err := c.manager.ExecutePrompt(ctx, "commentary", userPrompt, tmpl.SystemPrompt, options)
	if err != nil {
		fmt.Printf("[COMMENTARY] Model call failed: %v\n", err)
		return ""
	}

	var commentary Commentary
	if _, err := utils.SmartParse(utils.CleanMarkdown(answer), &commentary); err != nil {
		fmt.Printf("[COMMENTARY] Failed to parse model output: %v\n", err)
		return ""
	}

	return renderMarkdown(&commentary)
}

// renderMarkdown flattens the structured commentary into the markdown block
// stored on the profile.
func renderMarkdown(c *Commentary) string {
	var b strings.Builder

	if s := strings.TrimSpace(c.Summary); s != "" {
		b.WriteString(s)
		b.WriteString("\n")
	}

	if len(c.Strengths) > 0 {
		b.WriteString("\n**Points forts**\n")
		for _, item := range c.Strengths {
			if item = strings.TrimSpace(item); item != "" {
				b.WriteString("- " + item + "\n")
			}
		}
	}

	if len(c.Risks) > 0 {
		b.WriteString("\n**Points de vigilance**\n")
		for _, item := range c.Risks {
			if item = strings.TrimSpace(item); item != "" {
				b.WriteString("- " + item + "\n")
			}
		}
	}

	return strings.TrimSpace(b.String())
}
