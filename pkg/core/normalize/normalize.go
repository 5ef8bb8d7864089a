// Package normalize turns free-form company names into canonical lookup keys
// and generates bounded spelling variations to widen recall.
package normalize

import (
	"regexp"
	"strings"
)

// Multi-word legal forms, removed as phrases before token filtering. Listed
// longest first so "société par actions simplifiée unipersonnelle" does not
// leave a dangling "unipersonnelle".
var legalFormPhrases = []string{
	"societe par actions simplifiee unipersonnelle",
	"societe par actions simplifiee",
	"societe a responsabilite limitee",
	"societe en nom collectif",
	"societe civile immobiliere",
	"societe anonyme",
}

// Single-token legal forms, removed wherever they appear as a whole word.
var legalFormTokens = map[string]bool{
	"sa":   true,
	"sas":  true,
	"sasu": true,
	"sarl": true,
	"eurl": true,
	"snc":  true,
	"sci":  true,
	"gie":  true,
}

// Dotted abbreviations ("S.A.", "S.A.S."), the usual written form. Removed
// before punctuation collapse, which would otherwise strand the letters as
// separate tokens. Longest first so "s.a.s" is not eaten by "s.a".
var dottedLegalForm = regexp.MustCompile(`\b(?:s\.a\.s\.u|s\.a\.r\.l|e\.u\.r\.l|s\.a\.s|s\.n\.c|s\.c\.i|g\.i\.e|s\.a)\.?(?:\b|$)`)

var accentFolder = strings.NewReplacer(
	"à", "a", "â", "a", "ä", "a",
	"é", "e", "è", "e", "ê", "e", "ë", "e",
	"î", "i", "ï", "i",
	"ô", "o", "ö", "o",
	"ù", "u", "û", "u", "ü", "u",
	"ç", "c", "œ", "oe", "æ", "ae",
)

// Normalize produces the canonical lowercase form of a company name: accents
// folded, legal-form tokens removed, special characters collapsed to spaces,
// whitespace collapsed and trimmed. It is idempotent and performs no I/O.
func Normalize(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = accentFolder.Replace(s)
	s = dottedLegalForm.ReplaceAllString(s, " ")

	// Collapse everything that is not a letter, digit or ampersand to a
	// space. The ampersand survives so the &/et variation stays possible.
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '&':
			b.WriteRune(r)
		default:
			b.WriteByte(' ')
		}
	}
	// Pad so phrase matches at the boundaries need no special-casing.
	s = " " + b.String() + " "
	for _, phrase := range legalFormPhrases {
		// Repeat until stable: adjacent occurrences share a separator space,
		// which a single ReplaceAll pass would leave behind.
		for {
			next := strings.ReplaceAll(s, " "+phrase+" ", " ")
			if next == s {
				break
			}
			s = next
		}
	}

	fields := strings.Fields(s)
	kept := fields[:0]
	for _, f := range fields {
		if legalFormTokens[f] {
			continue
		}
		kept = append(kept, f)
	}

	return strings.Join(kept, " ")
}
