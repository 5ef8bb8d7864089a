// Package resolve turns a free-form company query into a ResolvedIdentity:
// identifier derivation from explicit inputs, static-index lookup, registry
// search and the AI-assisted fallback.
package resolve

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	sirenPattern = regexp.MustCompile(`^\d{9}$`)
	siretPattern = regexp.MustCompile(`^\d{14}$`)
	vatPattern   = regexp.MustCompile(`^FR\d{11}$`)
)

// DeriveSIREN extracts the canonical 9-digit SIREN from any accepted
// identifier form: a SIREN as-is, the first 9 digits of a 14-digit SIRET, or
// digits 5-13 of a VAT identifier ("FR" + 2-digit key + SIREN). Reports
// false for anything else; a malformed identifier is not an error, the
// caller falls through to name-based resolution.
func DeriveSIREN(raw string) (string, bool) {
	s := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(raw), " ", ""))
	switch {
	case sirenPattern.MatchString(s):
		return s, true
	case siretPattern.MatchString(s):
		return s[:9], true
	case vatPattern.MatchString(s):
		return s[4:13], true
	default:
		return "", false
	}
}

// VATNumber computes the French intra-community VAT identifier for a SIREN:
// "FR" + control key + SIREN, key = (12 + 3*(SIREN mod 97)) mod 97.
func VATNumber(siren string) string {
	n, err := strconv.ParseInt(siren, 10, 64)
	if err != nil {
		return ""
	}
	key := (12 + 3*(n%97)) % 97
	return "FR" + pad2(key) + siren
}

func pad2(n int64) string {
	if n < 10 {
		return "0" + strconv.FormatInt(n, 10)
	}
	return strconv.FormatInt(n, 10)
}
