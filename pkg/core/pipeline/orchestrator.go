// Package pipeline wires resolution, financial aggregation and assembly
// into the end-to-end profile flow.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"company_profiler/pkg/core/aggregate"
	"company_profiler/pkg/core/analysis"
	"company_profiler/pkg/core/assemble"
	"company_profiler/pkg/core/registry"
	"company_profiler/pkg/core/resolve"
	"company_profiler/pkg/models"
)

// DataSource is the slice of the registry client the pipeline consumes.
type DataSource interface {
	aggregate.Source
	FetchManagement(ctx context.Context, siren string) ([]registry.Representative, error)
	FetchBeneficialOwners(ctx context.Context, siren string) ([]registry.BeneficialOwner, error)
	FetchDocuments(ctx context.Context, siren string) ([]registry.Document, error)
}

// ProfileStore persists finished profiles. Optional.
type ProfileStore interface {
	Save(ctx context.Context, siren string, profile *models.AggregatedCompanyProfile) error
}

// Orchestrator manages the end-to-end flow:
// resolve -> entity fetch -> financial cascade -> parallel enrichment -> assembly.
type Orchestrator struct {
	resolver    *resolve.Resolver
	source      DataSource
	aggregator  *aggregate.Aggregator
	commentator *analysis.Commentator
	repo        ProfileStore
}

// NewOrchestrator creates an orchestrator around a resolver and a data
// source. Commentary and persistence are off until injected.
func NewOrchestrator(resolver *resolve.Resolver, source DataSource) *Orchestrator {
	return &Orchestrator{
		resolver:   resolver,
		source:     source,
		aggregator: aggregate.NewAggregator(source),
	}
}

// SetCommentator enables AI commentary on finished profiles.
func (o *Orchestrator) SetCommentator(c *analysis.Commentator) {
	o.commentator = c
}

// SetRepository enables persistence of finished profiles.
func (o *Orchestrator) SetRepository(repo ProfileStore) {
	o.repo = repo
}

// Run executes the full pipeline for one query. It always returns a
// profile; failures are reported through the profile status, never by a
// panic or a nil result.
func (o *Orchestrator) Run(ctx context.Context, q models.CompanyQuery) *models.AggregatedCompanyProfile {
	start := time.Now()
	fmt.Printf("[PIPELINE] Profiling %q...\n", q.RawName)

	identity := o.resolver.ResolveQuery(ctx, q)
	if identity.Identifier == nil {
		fmt.Printf("[PIPELINE] No identifier found for %q\n", q.RawName)
		return failedProfile(models.StatusNotFound,
			fmt.Sprintf("Aucun identifiant SIREN trouvé pour \"%s\"", q.RawName))
	}
	siren := *identity.Identifier

	// The entity record feeds both the cascade and the identity block, so
	// it is fetched once up front. A miss here means the SIREN does not
	// exist upstream, which is a not_found outcome, not an error.
	entity, err := o.source.FetchEntity(ctx, siren)
	if err != nil {
		if errors.Is(err, registry.ErrNotFound) {
			return failedProfile(models.StatusNotFound,
				fmt.Sprintf("Aucune entreprise enregistrée pour le SIREN %s", siren))
		}
		fmt.Printf("[PIPELINE] Entity fetch failed for %s: %v\n", siren, err)
		return failedProfile(models.StatusError,
			fmt.Sprintf("Erreur lors de la récupération des données pour le SIREN %s", siren))
	}
	if entity == nil {
		return failedProfile(models.StatusNotFound,
			fmt.Sprintf("Aucune entreprise enregistrée pour le SIREN %s", siren))
	}

	// The cascade is order-dependent and stays sequential.
	finances := o.aggregator.Collect(ctx, siren, entity)

	// The enrichment fetches are independent of each other and of the
	// cascade result, so they fan out. Each one degrades to an empty list
	// on failure.
	var (
		management []registry.Representative
		owners     []registry.BeneficialOwner
		documents  []registry.Document
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if management, err = o.source.FetchManagement(gctx, siren); err != nil {
			fmt.Printf("[PIPELINE] Management fetch failed for %s: %v\n", siren, err)
			management = nil
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if owners, err = o.source.FetchBeneficialOwners(gctx, siren); err != nil {
			fmt.Printf("[PIPELINE] Beneficial owners fetch failed for %s: %v\n", siren, err)
			owners = nil
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if documents, err = o.source.FetchDocuments(gctx, siren); err != nil {
			fmt.Printf("[PIPELINE] Documents fetch failed for %s: %v\n", siren, err)
			documents = nil
		}
		return nil
	})
	g.Wait()

	profile := assemble.BuildProfile(assemble.Inputs{
		Identity:         identity,
		Entity:           entity,
		Finances:         finances,
		Management:       management,
		BeneficialOwners: owners,
		Documents:        documents,
	})

	if o.commentator != nil {
		profile.Commentary = o.commentator.Comment(ctx, profile, q.AnalysisText)
	}

	if o.repo != nil {
		if err := o.repo.Save(ctx, siren, profile); err != nil {
			fmt.Printf("[PIPELINE] Failed to persist profile for %s: %v\n", siren, err)
		}
	}

	fmt.Printf("[PIPELINE] Profile for %s assembled in %v\n", siren, time.Since(start))
	return profile
}

// failedProfile builds a terminal profile with empty sections, so failure
// responses serialize with the same shape as successful ones.
func failedProfile(status models.ProfileStatus, message string) *models.AggregatedCompanyProfile {
	return &models.AggregatedCompanyProfile{
		Status:           status,
		Message:          message,
		SocialAccounts:   []models.FinancialRecordView{},
		Management:       []models.Officer{},
		BeneficialOwners: []models.BeneficialOwner{},
		Documents:        []models.Document{},
	}
}
