package prompt

// Prompt IDs used by the pipeline.
const (
	SirenLookupID = "resolution.siren_lookup"
	CommentaryID  = "analysis.commentary"
)

// UnknownSentinel is the literal the model must return when it cannot name a
// SIREN. The resolver treats it as a legitimate "no answer", not an error.
const UnknownSentinel = "inconnu"

var defaults = []*PromptTemplate{
	{
		ID:           SirenLookupID,
		Name:         "SIREN lookup",
		Description:  "Constrained lookup of a French company identifier",
		SystemPrompt: "Tu es un annuaire d'entreprises françaises. Tu réponds uniquement par un numéro SIREN à 9 chiffres, sans espaces, ou par le mot \"inconnu\" si tu n'es pas certain. Aucun autre texte.",
		UserPromptTmpl: `Quel est le numéro SIREN de l'entreprise française "{{.CompanyName}}" ?
Réponds uniquement par les 9 chiffres du SIREN, ou "inconnu".`,
		Version: "1.0",
	},
	{
		ID:           CommentaryID,
		Name:         "Profile commentary",
		Description:  "Short structured commentary on an assembled company profile",
		SystemPrompt: "Tu es un analyste financier. Tu réponds uniquement en JSON valide, sans bloc de code, avec les clés: summary (string, 2-3 phrases), strengths (liste de strings), risks (liste de strings). Reste factuel, pas de spéculation.",
		UserPromptTmpl: `Voici le profil d'une entreprise au format JSON:

{{.ProfileJSON}}
{{if .AnalysisText}}
Contexte fourni par l'utilisateur:
{{.AnalysisText}}
{{end}}
Rédige le commentaire JSON demandé.`,
		Version: "1.0",
	},
}
