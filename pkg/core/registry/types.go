// Package registry is the HTTP client for the upstream company registry API.
// The types in this file mirror the upstream JSON as-is: partial, optionally
// nested, French field names. Nothing outside the aggregator and the
// assembler may read these shapes.
package registry

// SearchResponse wraps the free-text company search. Results come back in
// relevance order; the pipeline only ever uses the first candidate.
type SearchResponse struct {
	Resultats []SearchCandidate `json:"resultats"`
	Total     int               `json:"total"`
}

// SearchCandidate is one search hit.
type SearchCandidate struct {
	Siren         string `json:"siren"`
	NomEntreprise string `json:"nom_entreprise"`
	Denomination  string `json:"denomination"`
	Ville         string `json:"ville"`
	CodeNaf       string `json:"code_naf"`
}

// LegalName picks the best display name a candidate carries.
func (c *SearchCandidate) LegalName() string {
	if c.NomEntreprise != "" {
		return c.NomEntreprise
	}
	return c.Denomination
}

// Entity is the general entity record. Depending on the requested flags it
// may embed a coarse per-year financial summary, the management list, the
// beneficial owners and the filed documents.
type Entity struct {
	Siren          string `json:"siren"`
	SirenFormate   string `json:"siren_formate"`
	NomEntreprise  string `json:"nom_entreprise"`
	Denomination   string `json:"denomination"`
	FormeJuridique string `json:"forme_juridique"`
	DateCreation   string `json:"date_creation"`
	CodeNaf        string `json:"code_naf"`
	LibelleCodeNaf string `json:"libelle_code_naf"`
	NumeroTVA      string `json:"numero_tva_intracommunautaire"`

	Capital         *float64 `json:"capital"`
	Effectif        *int     `json:"effectif"`
	TrancheEffectif string   `json:"tranche_effectif"`

	EntrepriseCessee bool `json:"entreprise_cessee"`
	// Accounts filed under the confidentiality option: the entity is legally
	// exempt from publishing, which the aggregator reports as "exempt"
	// rather than "unavailable".
	PublicationComptesRefusee bool `json:"publication_comptes_refusee"`
	// Set when the entity files consolidated accounts (parent of a group).
	ComptesConsolides bool `json:"comptes_consolides"`

	Siege *Office `json:"siege"`

	Finances               []EntityFinance   `json:"finances"`
	Representants          []Representative  `json:"representants"`
	BeneficiairesEffectifs []BeneficialOwner `json:"beneficiaires_effectifs"`
	DepotsActes            []Document        `json:"depots_actes"`
}

// BestName picks the upstream display name.
func (e *Entity) BestName() string {
	if e.NomEntreprise != "" {
		return e.NomEntreprise
	}
	return e.Denomination
}

// Office is the registered office block.
type Office struct {
	AdresseLigne1 string `json:"adresse_ligne_1"`
	AdresseLigne2 string `json:"adresse_ligne_2"`
	CodePostal    string `json:"code_postal"`
	Ville         string `json:"ville"`
	Pays          string `json:"pays"`
}

// EntityFinance is the coarse per-year summary embedded in the entity
// record: year, closing date, revenue, net income, headcount and nothing
// else.
type EntityFinance struct {
	Annee               int      `json:"annee"`
	DateClotureExercice string   `json:"date_cloture_exercice"`
	ChiffreAffaires     *float64 `json:"chiffre_affaires"`
	Resultat            *float64 `json:"resultat"`
	Effectif            *int     `json:"effectif"`
}

// AccountsResponse wraps the annual-accounts endpoints, paginated upstream.
type AccountsResponse struct {
	Resultats []AnnualAccounts `json:"resultats"`
	Total     int              `json:"total"`
}

// AnnualAccounts is one fiscal year from the detailed accounts endpoints.
// The ratio fields only appear with the detailed flag; the plain social
// fallback yields the same shape with most pointers nil.
type AnnualAccounts struct {
	Annee               int    `json:"annee"`
	DateClotureExercice string `json:"date_cloture_exercice"`

	ChiffreAffaires          *float64 `json:"chiffre_affaires"`
	Resultat                 *float64 `json:"resultat"`
	Effectif                 *int     `json:"effectif"`
	MargeBrute               *float64 `json:"marge_brute"`
	ExcedentBrutExploitation *float64 `json:"excedent_brut_exploitation"`
	ResultatExploitation     *float64 `json:"resultat_exploitation"`

	TauxCroissanceChiffreAffaires *float64 `json:"taux_croissance_chiffre_affaires"`
	TauxMargeBrute                *float64 `json:"taux_marge_brute"`
	TauxMargeEBITDA               *float64 `json:"taux_marge_EBITDA"`

	BFR                            *float64 `json:"BFR"`
	BFRJours                       *float64 `json:"BFR_jours"`
	DelaiPaiementClientsJours      *float64 `json:"delai_paiement_clients_jours"`
	DelaiPaiementFournisseursJours *float64 `json:"delai_paiement_fournisseurs_jours"`
	CapaciteAutofinancement        *float64 `json:"capacite_autofinancement"`
}

// Representative is one entry of the upstream management list.
type Representative struct {
	NomComplet     string `json:"nom_complet"`
	Qualite        string `json:"qualite"`
	Age            *int   `json:"age"`
	PersonneMorale bool   `json:"personne_morale"`
	Siren          string `json:"siren"`
}

// BeneficialOwner is one registered ultimate beneficial owner.
type BeneficialOwner struct {
	NomComplet              string   `json:"nom_complet"`
	PourcentageParts        *float64 `json:"pourcentage_parts"`
	PourcentageVotes        *float64 `json:"pourcentage_votes"`
	DateDeNaissanceFormatee string   `json:"date_de_naissance_formatee"`
	Nationalite             string   `json:"nationalite"`
}

// Document is one filed corporate document.
type Document struct {
	Type          string `json:"type"`
	Date          string `json:"date_depot"`
	NomFichierPdf string `json:"nom_fichier_pdf"`
}
