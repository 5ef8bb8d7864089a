package normalize

import "testing"

func TestNormalizeBasic(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"BNP Paribas", "bnp paribas"},
		{"BNP Paribas SA", "bnp paribas"},
		{"SAS Dupont Frères", "dupont freres"},
		{"Carrefour S.A.", "carrefour"},
		{"Société Générale", "societe generale"},
		{"Compagnie de Saint-Gobain", "compagnie de saint gobain"},
		{"L'Oréal", "l oreal"},
		{"Boulangerie Martin, société à responsabilité limitée", "boulangerie martin"},
		{"  Fnac   Darty  ", "fnac darty"},
		{"", ""},
	}

	for _, c := range cases {
		if got := Normalize(c.in); got != c.want {
			t.Errorf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalizeRemovesLegalFormAnywhere(t *testing.T) {
	// Start, end and whole-word occurrences must all disappear.
	if got := Normalize("SARL Les Trois Moulins"); got != "les trois moulins" {
		t.Errorf("leading legal form: got %q", got)
	}
	if got := Normalize("Les Trois Moulins SARL"); got != "les trois moulins" {
		t.Errorf("trailing legal form: got %q", got)
	}
	if got := Normalize("Moulins SA de Provence"); got != "moulins de provence" {
		t.Errorf("inner legal form: got %q", got)
	}
}

func TestNormalizeDottedLegalForms(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Carrefour S.A.", "carrefour"},
		{"Acme S.A.S.", "acme"},
		{"Dupont S.A.R.L.", "dupont"},
		{"S.N.C. des Halles", "des halles"},
		{"Moulins S.A. de Provence", "moulins de provence"},
		{"Lafarge S.A", "lafarge"},
	}

	for _, c := range cases {
		if got := Normalize(c.in); got != c.want {
			t.Errorf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"BNP Paribas SA",
		"Carrefour S.A.",
		"Établissements Michelin S.A.S.U.",
		"Société Anonyme des Galeries Lafayette",
		"L'Air Liquide, société anonyme pour l'étude et l'exploitation",
		"Smith & Wesson SARL",
		"éàçù!!!",
		"",
	}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestVariationsContainExpectedForms(t *testing.T) {
	vars := Variations("Générale de Téléphone")

	want := map[string]bool{
		"Générale de Téléphone":        false, // original preserved
		"generale de telephone":        false, // normalized
		"groupe generale de telephone": false, // qualifier prefix
		"ste generale de telephone":    false,
	}
	for _, v := range vars {
		if _, ok := want[v]; ok {
			want[v] = true
		}
	}
	for form, found := range want {
		if !found {
			t.Errorf("expected variation %q in %v", form, vars)
		}
	}
}

func TestVariationsQualifierStripped(t *testing.T) {
	vars := Variations("Groupe Casino")
	found := false
	for _, v := range vars {
		if v == "casino" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected qualifier-stripped %q in %v", "casino", vars)
	}
}

func TestVariationsAmpersandSwap(t *testing.T) {
	hasVariation := func(name, want string) bool {
		for _, v := range Variations(name) {
			if v == want {
				return true
			}
		}
		return false
	}

	if !hasVariation("Smith & Wesson", "smith et wesson") {
		t.Error("expected & -> et variant")
	}
	if !hasVariation("Pierre et Vacances", "pierre & vacances") {
		t.Error("expected et -> & variant")
	}
}

func TestVariationsArticleStripped(t *testing.T) {
	vars := Variations("Les Échos")
	found := false
	for _, v := range vars {
		if v == "echos" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected article-stripped variant in %v", vars)
	}
}

func TestVariationsBoundedAndDeduplicated(t *testing.T) {
	vars := Variations("Compagnie Générale des Établissements Michelin")
	if len(vars) > MaxVariations {
		t.Errorf("got %d variations, bound is %d", len(vars), MaxVariations)
	}
	seen := map[string]bool{}
	for _, v := range vars {
		if seen[v] {
			t.Errorf("duplicate variation %q", v)
		}
		seen[v] = true
	}
}
