package analysis

import (
	"strings"
	"testing"

	"company_profiler/pkg/core/utils"
)

func TestRenderMarkdown(t *testing.T) {
	c := &Commentary{
		Summary:   "Banque universelle de premier plan.",
		Strengths: []string{"Position de marché solide", "Rentabilité stable"},
		Risks:     []string{"Exposition aux taux"},
	}

	out := renderMarkdown(c)

	if !strings.HasPrefix(out, "Banque universelle") {
		t.Errorf("expected summary first, got %q", out)
	}
	if !strings.Contains(out, "**Points forts**") || !strings.Contains(out, "- Position de marché solide") {
		t.Errorf("missing strengths section: %q", out)
	}
	if !strings.Contains(out, "**Points de vigilance**") || !strings.Contains(out, "- Exposition aux taux") {
		t.Errorf("missing risks section: %q", out)
	}
}

func TestRenderMarkdownEmpty(t *testing.T) {
	if out := renderMarkdown(&Commentary{}); out != "" {
		t.Errorf("expected empty output, got %q", out)
	}
}

// Model answers often arrive wrapped in a code block with sloppy JSON. The
// clean-then-parse path must still produce a usable commentary.
func TestParseMessyModelAnswer(t *testing.T) {
	answer := "```json\n{summary: 'Groupe de distribution.', strengths: ['Réseau dense',], risks: []}\n```"

	var c Commentary
	if _, err := utils.SmartParse(utils.CleanMarkdown(answer), &c); err != nil {
		t.Fatalf("SmartParse failed: %v", err)
	}

	if c.Summary != "Groupe de distribution." {
		t.Errorf("unexpected summary %q", c.Summary)
	}
	if len(c.Strengths) != 1 || c.Strengths[0] != "Réseau dense" {
		t.Errorf("unexpected strengths %v", c.Strengths)
	}
}
