// Package aggregate implements the cascading retrieval of financial records
// across the registry endpoints and the merge policy between them.
package aggregate

import (
	"sort"

	"company_profiler/pkg/core/registry"
	"company_profiler/pkg/models"
)

// fromEntityFinance converts the coarse summary embedded in the entity
// record.
func fromEntityFinance(f registry.EntityFinance) models.FinancialRecord {
	return models.FinancialRecord{
		Year:        f.Annee,
		ClosingDate: f.DateClotureExercice,
		Revenue:     f.ChiffreAffaires,
		NetIncome:   f.Resultat,
		Headcount:   f.Effectif,
	}
}

// fromAnnualAccounts converts one fiscal year from the accounts endpoints.
func fromAnnualAccounts(a registry.AnnualAccounts, consolidated bool) models.FinancialRecord {
	return models.FinancialRecord{
		Year:                  a.Annee,
		ClosingDate:           a.DateClotureExercice,
		Revenue:               a.ChiffreAffaires,
		NetIncome:             a.Resultat,
		Headcount:             a.Effectif,
		GrossMargin:           a.MargeBrute,
		EBITDA:                a.ExcedentBrutExploitation,
		OperatingIncome:       a.ResultatExploitation,
		GrowthRatePct:         a.TauxCroissanceChiffreAffaires,
		GrossMarginPct:        a.TauxMargeBrute,
		EBITDAMarginPct:       a.TauxMargeEBITDA,
		WorkingCapital:        a.BFR,
		WorkingCapitalDays:    a.BFRJours,
		ReceivablesDays:       a.DelaiPaiementClientsJours,
		PayablesDays:          a.DelaiPaiementFournisseursJours,
		SelfFinancingCapacity: a.CapaciteAutofinancement,
		Consolidated:          consolidated,
	}
}

// mergeRecord overlays src onto dst for the same year. Non-nil fields of src
// win; fields src does not carry keep their prior value. Later cascade steps
// therefore only add or override, they never null out earlier data.
func mergeRecord(dst *models.FinancialRecord, src models.FinancialRecord) {
	if src.ClosingDate != "" {
		dst.ClosingDate = src.ClosingDate
	}
	overlayF := func(d **float64, s *float64) {
		if s != nil {
			*d = s
		}
	}
	overlayF(&dst.Revenue, src.Revenue)
	overlayF(&dst.NetIncome, src.NetIncome)
	overlayF(&dst.GrossMargin, src.GrossMargin)
	overlayF(&dst.EBITDA, src.EBITDA)
	overlayF(&dst.OperatingIncome, src.OperatingIncome)
	overlayF(&dst.GrowthRatePct, src.GrowthRatePct)
	overlayF(&dst.GrossMarginPct, src.GrossMarginPct)
	overlayF(&dst.EBITDAMarginPct, src.EBITDAMarginPct)
	overlayF(&dst.WorkingCapital, src.WorkingCapital)
	overlayF(&dst.WorkingCapitalDays, src.WorkingCapitalDays)
	overlayF(&dst.ReceivablesDays, src.ReceivablesDays)
	overlayF(&dst.PayablesDays, src.PayablesDays)
	overlayF(&dst.SelfFinancingCapacity, src.SelfFinancingCapacity)
	if src.Headcount != nil {
		dst.Headcount = src.Headcount
	}
}

// yearMap indexes records by fiscal year during the cascade.
type yearMap map[int]*models.FinancialRecord

func (m yearMap) absorb(records []models.FinancialRecord) {
	for _, rec := range records {
		if rec.Year == 0 {
			continue
		}
		if existing, ok := m[rec.Year]; ok {
			mergeRecord(existing, rec)
			continue
		}
		cp := rec
		m[rec.Year] = &cp
	}
}

// sorted flattens the map year-descending, the ordering invariant callers
// rely on.
func (m yearMap) sorted() []models.FinancialRecord {
	out := make([]models.FinancialRecord, 0, len(m))
	for _, rec := range m {
		out = append(out, *rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year > out[j].Year })
	return out
}

// deriveGrowthRates fills missing growth rates where both the year's and the
// prior year's revenue are known. Runs once, after all cascade steps, over
// the year-sorted list.
func deriveGrowthRates(records []models.FinancialRecord) {
	byYear := make(map[int]*models.FinancialRecord, len(records))
	for i := range records {
		byYear[records[i].Year] = &records[i]
	}
	for i := range records {
		rec := &records[i]
		if rec.GrowthRatePct != nil || rec.Revenue == nil {
			continue
		}
		prev, ok := byYear[rec.Year-1]
		if !ok || prev.Revenue == nil || *prev.Revenue == 0 {
			continue
		}
		growth := (*rec.Revenue - *prev.Revenue) / *prev.Revenue * 100
		rec.GrowthRatePct = &growth
	}
}
