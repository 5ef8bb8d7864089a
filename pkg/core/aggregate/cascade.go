package aggregate

import (
	"context"
	"fmt"

	"company_profiler/pkg/core/registry"
	"company_profiler/pkg/models"
)

// Source is the slice of the registry client the cascade consumes. The real
// client and the test stubs both satisfy it.
type Source interface {
	FetchEntity(ctx context.Context, siren string) (*registry.Entity, error)
	FetchAnnualAccounts(ctx context.Context, siren string, detailed bool) ([]registry.AnnualAccounts, error)
	FetchConsolidatedAccounts(ctx context.Context, siren string) ([]registry.AnnualAccounts, error)
}

// Result carries the cascade output. Social and consolidated lists are kept
// separate: they represent different reporting scopes and are never merged.
type Result struct {
	Social       []models.FinancialRecord
	Consolidated []models.FinancialRecord
	// Reason explains an empty Social+Consolidated outcome: exempt or
	// unavailable. Empty when any records were found.
	Reason string
}

// Aggregator runs the ordered cascade of financial-data sources for a
// resolved SIREN. Each step's decision depends on what the previous steps
// yielded, so the cascade is inherently sequential and must not be
// parallelized.
type Aggregator struct {
	source Source
}

func NewAggregator(source Source) *Aggregator {
	return &Aggregator{source: source}
}

// Collect assembles the richest available record set:
//
//  1. general entity record with the embedded summary (cheapest, coarsest);
//  2. detailed annual accounts, which add or override same-year fields but
//     never remove what step 1 found;
//  3. consolidated accounts into their own list;
//  4. plain social accounts, only when step 2 yielded nothing.
//
// Every step failure is logged and treated as "this source returned
// nothing"; Collect itself never returns an error. entity may be passed in
// by a caller that already fetched it, or nil to let the cascade fetch it.
func (a *Aggregator) Collect(ctx context.Context, siren string, entity *registry.Entity) Result {
	social := make(yearMap)

	// Step 1: embedded summary from the entity record.
	if entity == nil {
		var err error
		entity, err = a.source.FetchEntity(ctx, siren)
		if err != nil {
			fmt.Printf("[CASCADE] entity record unavailable for %s: %v\n", siren, err)
			entity = nil
		}
	}
	if entity != nil {
		records := make([]models.FinancialRecord, 0, len(entity.Finances))
		for _, f := range entity.Finances {
			records = append(records, fromEntityFinance(f))
		}
		social.absorb(records)
	}

	// Step 2: detailed annual accounts, the richest field set.
	detailed, err := a.source.FetchAnnualAccounts(ctx, siren, true)
	if err != nil {
		fmt.Printf("[CASCADE] detailed accounts unavailable for %s: %v\n", siren, err)
	}
	social.absorb(convertAccounts(detailed, false))

	// Step 3: consolidated accounts, populated independently.
	consolidated := make(yearMap)
	consolidatedRaw, err := a.source.FetchConsolidatedAccounts(ctx, siren)
	if err != nil {
		fmt.Printf("[CASCADE] consolidated accounts unavailable for %s: %v\n", siren, err)
	}
	consolidated.absorb(convertAccounts(consolidatedRaw, true))

	// Step 4: plain social accounts, only when the detailed endpoint gave
	// nothing.
	if len(detailed) == 0 {
		fallback, err := a.source.FetchAnnualAccounts(ctx, siren, false)
		if err != nil {
			fmt.Printf("[CASCADE] social fallback unavailable for %s: %v\n", siren, err)
		}
		social.absorb(convertAccounts(fallback, false))
	}

	result := Result{
		Social:       social.sorted(),
		Consolidated: consolidated.sorted(),
	}
	deriveGrowthRates(result.Social)
	deriveGrowthRates(result.Consolidated)

	if len(result.Social) == 0 && len(result.Consolidated) == 0 {
		result.Reason = a.exhaustionReason(ctx, siren, entity)
	}
	return result
}

// exhaustionReason distinguishes an entity legally exempt from filing from
// one whose figures simply are not published. Uses the entity record already
// at hand when possible.
func (a *Aggregator) exhaustionReason(ctx context.Context, siren string, entity *registry.Entity) string {
	if entity == nil {
		var err error
		entity, err = a.source.FetchEntity(ctx, siren)
		if err != nil {
			return models.FinancesUnavailable
		}
	}
	if entity != nil && entity.PublicationComptesRefusee {
		return models.FinancesExempt
	}
	return models.FinancesUnavailable
}

func convertAccounts(accounts []registry.AnnualAccounts, consolidated bool) []models.FinancialRecord {
	out := make([]models.FinancialRecord, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, fromAnnualAccounts(a, consolidated))
	}
	return out
}
