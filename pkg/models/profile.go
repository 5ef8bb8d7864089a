// Package models defines the stable shapes exchanged between the resolution
// pipeline, the financial aggregator and API consumers. Upstream registry
// shapes never leak past the assembler; everything here is fully owned.
package models

// ProfileStatus tags the outcome of a profile request.
type ProfileStatus string

const (
	StatusOK       ProfileStatus = "ok"
	StatusNotFound ProfileStatus = "not_found"
	StatusError    ProfileStatus = "error"
)

// Finance availability reasons when the cascade yields nothing.
const (
	FinancesExempt      = "exempt"      // entity legally exempt from filing
	FinancesUnavailable = "unavailable" // nothing published upstream
)

// CompanyQuery is the immutable input to a resolution request.
// ExplicitIdentifier accepts a 9-digit SIREN, a 14-digit SIRET or a
// VAT-style identifier ("FR" + 11 digits).
type CompanyQuery struct {
	RawName            string `json:"name"`
	ExplicitIdentifier string `json:"identifier,omitempty"`
	AnalysisText       string `json:"analysis_text,omitempty"`
}

// ResolvedIdentity anchors all financial lookups. It is created once per
// query and never mutated afterwards: a failed resolution yields a nil
// Identifier, never a partially filled object.
type ResolvedIdentity struct {
	InitialName    string   `json:"initial_name"`
	LegalName      string   `json:"legal_name"`
	NormalizedName string   `json:"normalized_name"`
	Identifier     *string  `json:"identifier"`
	VATNumber      *string  `json:"vat_number"`
	Variations     []string `json:"variations,omitempty"`
}

// FinancialRecord holds one fiscal year of figures. Upstream sparsity is the
// norm, so every value field is a pointer; nil means "not published".
type FinancialRecord struct {
	Year                  int      `json:"year"`
	ClosingDate           string   `json:"closing_date,omitempty"`
	Revenue               *float64 `json:"revenue,omitempty"`
	NetIncome             *float64 `json:"net_income,omitempty"`
	Headcount             *int     `json:"headcount,omitempty"`
	GrossMargin           *float64 `json:"gross_margin,omitempty"`
	EBITDA                *float64 `json:"ebitda,omitempty"`
	OperatingIncome       *float64 `json:"operating_income,omitempty"`
	GrowthRatePct         *float64 `json:"growth_rate_pct,omitempty"`
	GrossMarginPct        *float64 `json:"gross_margin_pct,omitempty"`
	EBITDAMarginPct       *float64 `json:"ebitda_margin_pct,omitempty"`
	WorkingCapital        *float64 `json:"working_capital,omitempty"`
	WorkingCapitalDays    *float64 `json:"working_capital_days,omitempty"`
	ReceivablesDays       *float64 `json:"receivables_days,omitempty"`
	PayablesDays          *float64 `json:"payables_days,omitempty"`
	SelfFinancingCapacity *float64 `json:"self_financing_capacity,omitempty"`
	Consolidated          bool     `json:"consolidated"`
}

// FinancialRecordView pairs the raw record with display strings for the
// monetary fields. Both forms are always produced; a missing figure renders
// as the explicit "N/C" marker so consumers can tell "known absent" from
// "not yet fetched".
type FinancialRecordView struct {
	FinancialRecord
	RevenueDisplay         string `json:"revenue_display"`
	NetIncomeDisplay       string `json:"net_income_display"`
	EBITDADisplay          string `json:"ebitda_display"`
	OperatingIncomeDisplay string `json:"operating_income_display"`
	WorkingCapitalDisplay  string `json:"working_capital_display"`
}

// Money carries a monetary amount in both machine and display form.
type Money struct {
	Raw     float64 `json:"raw"`
	Display string  `json:"display"`
}

// IdentityBlock is the legal identity section of a profile.
type IdentityBlock struct {
	Siren          string `json:"siren"`
	SirenFormatted string `json:"siren_formatted"`
	VATNumber      string `json:"vat_number,omitempty"`
	LegalName      string `json:"legal_name"`
	LegalForm      string `json:"legal_form,omitempty"`
	NAFCode        string `json:"naf_code,omitempty"`
	NAFLabel       string `json:"naf_label,omitempty"`
	CreationDate   string `json:"creation_date,omitempty"`
	Capital        *Money `json:"capital,omitempty"`
	Headcount      string `json:"headcount"`
	CeasedActivity bool   `json:"ceased_activity"`
}

// Address is the registered office address.
type Address struct {
	Line1      string `json:"line1,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
	City       string `json:"city,omitempty"`
	Country    string `json:"country,omitempty"`
}

// Officer is one entry of the management list.
type Officer struct {
	FullName string `json:"full_name"`
	Role     string `json:"role,omitempty"`
	Age      *int   `json:"age,omitempty"`
	Company  bool   `json:"company"`
	Siren    string `json:"siren,omitempty"`
}

// BeneficialOwner is one registered ultimate beneficial owner.
type BeneficialOwner struct {
	FullName    string   `json:"full_name"`
	SharesPct   *float64 `json:"shares_pct,omitempty"`
	VotesPct    *float64 `json:"votes_pct,omitempty"`
	BirthDate   string   `json:"birth_date,omitempty"`
	Nationality string   `json:"nationality,omitempty"`
}

// Document is one filed corporate document.
type Document struct {
	Type     string `json:"type"`
	Date     string `json:"date,omitempty"`
	FileName string `json:"file_name,omitempty"`
}

// AggregatedCompanyProfile is the single output shape of the pipeline.
// Status is always one of ok, not_found or error with a human-readable
// message; callers never see a bare error for ordinary "no data" conditions.
type AggregatedCompanyProfile struct {
	Status  ProfileStatus `json:"status"`
	Message string        `json:"message"`

	Identity *IdentityBlock `json:"identity,omitempty"`
	Address  *Address       `json:"address,omitempty"`

	// Social and consolidated accounts are kept separate: they represent
	// different reporting scopes and are never merged.
	SocialAccounts       []FinancialRecordView `json:"social_accounts"`
	ConsolidatedAccounts []FinancialRecordView `json:"consolidated_accounts,omitempty"`
	FinancesReason       string                `json:"finances_reason,omitempty"`

	Management       []Officer         `json:"management"`
	BeneficialOwners []BeneficialOwner `json:"beneficial_owners"`
	Documents        []Document        `json:"documents"`

	Commentary string `json:"commentary,omitempty"`
}
