// Package assemble maps the heterogeneous upstream shapes into the stable
// AggregatedCompanyProfile and renders display values.
package assemble

import (
	"fmt"
	"strconv"
	"strings"
)

// NotAvailable is the explicit marker for a figure the upstream does not
// publish. Downstream consumers rely on it to tell "known absent" from "not
// yet fetched", so missing fields are never silently omitted.
const NotAvailable = "N/C"

// FormatEuros renders a monetary amount with a French-style magnitude
// suffix: 1 200 000 000 -> "1,2 Md€", 340 000 000 -> "340 M€",
// 25 400 -> "25,4 k€". nil renders the NotAvailable marker.
func FormatEuros(v *float64) string {
	if v == nil {
		return NotAvailable
	}

	val := *v
	neg := val < 0
	if neg {
		val = -val
	}

	var scaled float64
	var suffix string
	switch {
	case val >= 1e9:
		scaled, suffix = val/1e9, "Md€"
	case val >= 1e6:
		scaled, suffix = val/1e6, "M€"
	case val >= 1e3:
		scaled, suffix = val/1e3, "k€"
	default:
		scaled, suffix = val, "€"
	}

	s := strconv.FormatFloat(scaled, 'f', 1, 64)
	s = strings.TrimSuffix(s, ".0")
	s = strings.ReplaceAll(s, ".", ",")
	if neg {
		s = "-" + s
	}
	return s + " " + suffix
}

// FormatPercent renders a ratio with one decimal and a French comma:
// 12.5 -> "12,5 %".
func FormatPercent(v *float64) string {
	if v == nil {
		return NotAvailable
	}
	s := strconv.FormatFloat(*v, 'f', 1, 64)
	s = strings.TrimSuffix(s, ".0")
	return strings.ReplaceAll(s, ".", ",") + " %"
}

// FormatCount renders an integer count, NotAvailable when unknown.
func FormatCount(v *int) string {
	if v == nil {
		return NotAvailable
	}
	return strconv.Itoa(*v)
}

// FormatSiren groups a 9-digit SIREN by threes: "662 042 449".
func FormatSiren(siren string) string {
	if len(siren) != 9 {
		return siren
	}
	return fmt.Sprintf("%s %s %s", siren[0:3], siren[3:6], siren[6:9])
}
