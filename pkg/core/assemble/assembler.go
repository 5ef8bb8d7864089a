package assemble

import (
	"company_profiler/pkg/core/aggregate"
	"company_profiler/pkg/core/registry"
	"company_profiler/pkg/models"
)

// Inputs gathers everything the pipeline fetched for one resolved entity.
// Any field may be nil/empty; the assembler renders what it has and marks
// the rest.
type Inputs struct {
	Identity models.ResolvedIdentity
	Entity   *registry.Entity
	Finances aggregate.Result

	Management       []registry.Representative
	BeneficialOwners []registry.BeneficialOwner
	Documents        []registry.Document
}

// BuildProfile is the single place where upstream shapes become the stable
// profile. Slices are always non-nil so JSON consumers see [] instead of
// null.
func BuildProfile(in Inputs) *models.AggregatedCompanyProfile {
	profile := &models.AggregatedCompanyProfile{
		Status:               models.StatusOK,
		SocialAccounts:       recordViews(in.Finances.Social),
		ConsolidatedAccounts: recordViews(in.Finances.Consolidated),
		FinancesReason:       in.Finances.Reason,
		Management:           officers(in.Management),
		BeneficialOwners:     owners(in.BeneficialOwners),
		Documents:            documents(in.Documents),
	}

	profile.Identity = identityBlock(in.Identity, in.Entity)
	if in.Entity != nil && in.Entity.Siege != nil {
		profile.Address = &models.Address{
			Line1:      in.Entity.Siege.AdresseLigne1,
			PostalCode: in.Entity.Siege.CodePostal,
			City:       in.Entity.Siege.Ville,
			Country:    in.Entity.Siege.Pays,
		}
	}

	return profile
}

func identityBlock(id models.ResolvedIdentity, entity *registry.Entity) *models.IdentityBlock {
	if id.Identifier == nil {
		return nil
	}

	block := &models.IdentityBlock{
		Siren:          *id.Identifier,
		SirenFormatted: FormatSiren(*id.Identifier),
		LegalName:      id.LegalName,
		Headcount:      NotAvailable,
	}
	if id.VATNumber != nil {
		block.VATNumber = *id.VATNumber
	}

	if entity != nil {
		if name := entity.BestName(); name != "" {
			block.LegalName = name
		}
		// Upstream VAT number wins over the derived one when published.
		if entity.NumeroTVA != "" {
			block.VATNumber = entity.NumeroTVA
		}
		block.LegalForm = entity.FormeJuridique
		block.NAFCode = entity.CodeNaf
		block.NAFLabel = entity.LibelleCodeNaf
		block.CreationDate = entity.DateCreation
		block.CeasedActivity = entity.EntrepriseCessee
		if entity.Capital != nil {
			block.Capital = &models.Money{
				Raw:     *entity.Capital,
				Display: FormatEuros(entity.Capital),
			}
		}
		switch {
		case entity.Effectif != nil:
			block.Headcount = FormatCount(entity.Effectif)
		case entity.TrancheEffectif != "":
			block.Headcount = entity.TrancheEffectif
		}
	}

	return block
}

func recordViews(records []models.FinancialRecord) []models.FinancialRecordView {
	views := make([]models.FinancialRecordView, 0, len(records))
	for _, rec := range records {
		views = append(views, models.FinancialRecordView{
			FinancialRecord:        rec,
			RevenueDisplay:         FormatEuros(rec.Revenue),
			NetIncomeDisplay:       FormatEuros(rec.NetIncome),
			EBITDADisplay:          FormatEuros(rec.EBITDA),
			OperatingIncomeDisplay: FormatEuros(rec.OperatingIncome),
			WorkingCapitalDisplay:  FormatEuros(rec.WorkingCapital),
		})
	}
	return views
}

func officers(reps []registry.Representative) []models.Officer {
	out := make([]models.Officer, 0, len(reps))
	for _, r := range reps {
		out = append(out, models.Officer{
			FullName: r.NomComplet,
			Role:     r.Qualite,
			Age:      r.Age,
			Company:  r.PersonneMorale,
			Siren:    r.Siren,
		})
	}
	return out
}

func owners(list []registry.BeneficialOwner) []models.BeneficialOwner {
	out := make([]models.BeneficialOwner, 0, len(list))
	for _, o := range list {
		out = append(out, models.BeneficialOwner{
			FullName:    o.NomComplet,
			SharesPct:   o.PourcentageParts,
			VotesPct:    o.PourcentageVotes,
			BirthDate:   o.DateDeNaissanceFormatee,
			Nationality: o.Nationalite,
		})
	}
	return out
}

func documents(list []registry.Document) []models.Document {
	out := make([]models.Document, 0, len(list))
	for _, d := range list {
		out = append(out, models.Document{
			Type:     d.Type,
			Date:     d.Date,
			FileName: d.NomFichierPdf,
		})
	}
	return out
}
