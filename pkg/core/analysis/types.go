package analysis

// Commentary is the structured note the model produces about an assembled
// profile. It is rendered to markdown before being attached to the profile.
type Commentary struct {
	Summary   string   `json:"summary"`
	Strengths []string `json:"strengths"`
	Risks     []string `json:"risks"`
}
