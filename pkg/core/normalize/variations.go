package normalize

import "strings"

// Corporate qualifiers commonly prepended to a trade name. Stored in
// normalized (accent-folded, lowercase) form.
var qualifiers = []string{
	"groupe",
	"societe",
	"compagnie",
	"etablissements",
	"ets",
	"ste",
}

// Article prefixes stripped for the article-less variant.
var articlePrefixes = []string{"le ", "la ", "les ", "l "}

// MaxVariations bounds the output of Variations. This is a recall aid, not
// an exhaustive matcher.
const MaxVariations = 15

// Variations returns a deduplicated, bounded set of alternate spellings for
// a company name: the original, its normalized form, qualifier-prefixed and
// qualifier-stripped forms, an &/et swap and an article-stripped form.
// Ideally the input is the already-resolved legal name.
func Variations(name string) []string {
	name = strings.TrimSpace(name)
	norm := Normalize(name)

	out := make([]string, 0, MaxVariations)
	seen := make(map[string]bool)
	add := func(v string) {
		v = strings.TrimSpace(v)
		if v == "" || seen[v] || len(out) >= MaxVariations {
			return
		}
		seen[v] = true
		out = append(out, v)
	}

	add(name)
	add(norm)

	// Qualifier stripped first, so the bare trade name wins a slot before
	// the prefixed forms fill the budget.
	for _, q := range qualifiers {
		if strings.HasPrefix(norm, q+" ") {
			add(strings.TrimPrefix(norm, q+" "))
		}
	}
	for _, q := range qualifiers {
		if !strings.HasPrefix(norm, q+" ") {
			add(q + " " + norm)
		}
	}

	// &/et swap. The normalizer keeps ampersands, so both directions work on
	// the normalized form.
	if strings.Contains(norm, "&") {
		add(strings.Join(strings.Fields(strings.ReplaceAll(norm, "&", " et ")), " "))
	} else if strings.Contains(norm, " et ") {
		add(strings.Replace(norm, " et ", " & ", 1))
	}

	for _, art := range articlePrefixes {
		if strings.HasPrefix(norm, art) {
			add(strings.TrimPrefix(norm, art))
			break
		}
	}

	return out
}
