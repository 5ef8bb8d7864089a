package resolve

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"company_profiler/pkg/core/llm"
	"company_profiler/pkg/core/prompt"
)

var embeddedSiren = regexp.MustCompile(`\d{9}`)

// IdentifierResolver is the AI-assisted fallback invoked when every cheaper
// source missed. It sends a single constrained completion request and
// validates the shape of the answer before trusting it. The model is
// probabilistic: a hit means "this source claims this SIREN", a miss only
// means "not found in this source".
type IdentifierResolver struct {
	provider llm.Provider
}

// NewIdentifierResolver wraps a provider. A nil provider yields a resolver
// that always answers "", which is how the pipeline runs without an AI key.
func NewIdentifierResolver(p llm.Provider) *IdentifierResolver {
	return &IdentifierResolver{provider: p}
}

// Resolve asks the model for the SIREN of companyName. Returns "" for every
// failure mode: unknown sentinel, ambiguous answer, missing credentials,
// transport error. None of these raise to the caller.
func (r *IdentifierResolver) Resolve(ctx context.Context, companyName string) string {
	if r == nil || r.provider == nil || companyName == "" {
		return ""
	}

	pt, err := prompt.Get().GetPrompt(prompt.SirenLookupID)
	if err != nil {
		fmt.Printf("[RESOLVER] prompt lookup failed: %v\n", err)
		return ""
	}
	userPrompt, err := pt.Render(map[string]interface{}{"CompanyName": companyName})
	if err != nil {
		fmt.Printf("[RESOLVER] prompt render failed: %v\n", err)
		return ""
	}

	raw, err := r.provider.GenerateResponse(ctx, userPrompt, pt.SystemPrompt, nil)
	if err != nil {
		fmt.Printf("[RESOLVER] completion failed for %q: %v\n", companyName, err)
		return ""
	}

	return validateAnswer(raw)
}

// validateAnswer applies the acceptance rules in order:
//  1. exactly 9 digits -> accept
//  2. the unknown sentinel -> legitimate "no answer"
//  3. exactly one embedded 9-digit run -> accept it
//  4. anything else -> no answer, no retry
func validateAnswer(raw string) string {
	answer := strings.TrimSpace(raw)

	if sirenPattern.MatchString(answer) {
		return answer
	}
	if strings.EqualFold(answer, prompt.UnknownSentinel) {
		return ""
	}
	if matches := embeddedSiren.FindAllString(answer, 2); len(matches) == 1 {
		return matches[0]
	}
	return ""
}
