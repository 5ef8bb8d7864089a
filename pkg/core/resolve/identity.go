package resolve

import (
	"context"
	"fmt"

	"company_profiler/pkg/core/known"
	"company_profiler/pkg/core/normalize"
	"company_profiler/pkg/core/registry"
	"company_profiler/pkg/models"
)

// Searcher is the slice of the registry client the resolver needs. nil
// candidate with nil error means the search came back empty.
type Searcher interface {
	SearchCompany(ctx context.Context, name string) (*registry.SearchCandidate, error)
}

// Resolver runs the resolution chain: explicit identifier, static index,
// registry search, AI fallback. Sources are ordered by cost; every miss
// falls through to the next one and a full miss yields a nil Identifier,
// never an error.
type Resolver struct {
	index  *known.Index
	search Searcher            // nil when no registry token is configured
	ai     *IdentifierResolver // nil when no AI key is configured
}

// NewResolver wires the three sources. index must not be nil; search and ai
// may be.
func NewResolver(index *known.Index, search Searcher, ai *IdentifierResolver) *Resolver {
	return &Resolver{index: index, search: search, ai: ai}
}

// ResolveQuery resolves a company query to an identity. The returned value
// is complete at creation: either Identifier is set along with the VAT
// number, or it is nil and the caller reports not_found.
func (r *Resolver) ResolveQuery(ctx context.Context, q models.CompanyQuery) models.ResolvedIdentity {
	initialName := q.RawName

	// 0. Explicit identifier wins when its shape is recognized. A malformed
	// identifier falls through to name-based resolution.
	if q.ExplicitIdentifier != "" {
		if siren, ok := DeriveSIREN(q.ExplicitIdentifier); ok {
			return r.identityFor(initialName, initialName, siren)
		}
		fmt.Printf("[RESOLVE] ignoring malformed identifier %q\n", q.ExplicitIdentifier)
	}

	normalized := normalize.Normalize(initialName)
	if normalized == "" {
		return missedIdentity(initialName, normalized)
	}
	variations := normalize.Variations(initialName)

	// 1. Static index: exact, then variations, then substring containment.
	// Always consulted before any paid or network call.
	if siren := r.index.Lookup(normalized, variations); siren != "" {
		return r.identityFor(initialName, initialName, siren)
	}

	// 2. Registry free-text search, first candidate only. Cheaper than the
	// AI call and authoritative when it hits.
	if r.search != nil {
		cand, err := r.search.SearchCompany(ctx, initialName)
		if err != nil {
			fmt.Printf("[RESOLVE] search failed for %q: %v\n", initialName, err)
		} else if cand != nil && cand.Siren != "" {
			return r.identityFor(initialName, cand.LegalName(), cand.Siren)
		}
	}

	// 3. AI fallback, shape-validated.
	if siren := r.ai.Resolve(ctx, initialName); siren != "" {
		return r.identityFor(initialName, initialName, siren)
	}

	return missedIdentity(initialName, normalized)
}

// identityFor builds the complete identity for a resolved SIREN. Variations
// are regenerated from the legal name, which widens recall for whoever
// consumes them next.
func (r *Resolver) identityFor(initialName, legalName, siren string) models.ResolvedIdentity {
	vat := VATNumber(siren)
	id := models.ResolvedIdentity{
		InitialName:    initialName,
		LegalName:      legalName,
		NormalizedName: normalize.Normalize(legalName),
		Identifier:     &siren,
		Variations:     normalize.Variations(legalName),
	}
	if vat != "" {
		id.VATNumber = &vat
	}
	return id
}

func missedIdentity(initialName, normalized string) models.ResolvedIdentity {
	return models.ResolvedIdentity{
		InitialName:    initialName,
		LegalName:      initialName,
		NormalizedName: normalized,
		Variations:     normalize.Variations(initialName),
	}
}
