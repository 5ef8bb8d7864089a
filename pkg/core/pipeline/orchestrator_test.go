package pipeline

import (
	"context"
	"testing"

	"company_profiler/pkg/core/known"
	"company_profiler/pkg/core/registry"
	"company_profiler/pkg/core/resolve"
	"company_profiler/pkg/models"
)

func f(v float64) *float64 { return &v }

// fakeSource scripts the registry answers for one SIREN.
type fakeSource struct {
	entity    *registry.Entity
	detailed  []registry.AnnualAccounts
	entityErr error

	managementErr bool
	management    []registry.Representative
}

func (s *fakeSource) FetchEntity(ctx context.Context, siren string) (*registry.Entity, error) {
	return s.entity, s.entityErr
}

func (s *fakeSource) FetchAnnualAccounts(ctx context.Context, siren string, detailed bool) ([]registry.AnnualAccounts, error) {
	if detailed {
		return s.detailed, nil
	}
	return nil, nil
}

func (s *fakeSource) FetchConsolidatedAccounts(ctx context.Context, siren string) ([]registry.AnnualAccounts, error) {
	return nil, nil
}

func (s *fakeSource) FetchManagement(ctx context.Context, siren string) ([]registry.Representative, error) {
	if s.managementErr {
		return nil, context.DeadlineExceeded
	}
	return s.management, nil
}

func (s *fakeSource) FetchBeneficialOwners(ctx context.Context, siren string) ([]registry.BeneficialOwner, error) {
	return nil, nil
}

func (s *fakeSource) FetchDocuments(ctx context.Context, siren string) ([]registry.Document, error) {
	return nil, nil
}

type memStore struct {
	siren string
	saved *models.AggregatedCompanyProfile
}

func (m *memStore) Save(ctx context.Context, siren string, profile *models.AggregatedCompanyProfile) error {
	m.siren = siren
	m.saved = profile
	return nil
}

func newTestOrchestrator(source DataSource) *Orchestrator {
	index := known.NewIndex([]known.Entry{{Name: "BNP Paribas", Siren: "662042449"}})
	resolver := resolve.NewResolver(index, nil, nil)
	return NewOrchestrator(resolver, source)
}

func TestRunKnownCompany(t *testing.T) {
	source := &fakeSource{
		entity: &registry.Entity{
			Siren:          "662042449",
			NomEntreprise:  "BNP PARIBAS",
			FormeJuridique: "SA à conseil d'administration",
			Finances: []registry.EntityFinance{
				{Annee: 2023, ChiffreAffaires: f(50_400_000_000)},
			},
		},
		detailed: []registry.AnnualAccounts{
			{Annee: 2023, ChiffreAffaires: f(50_400_000_000), Resultat: f(10_975_000_000)},
		},
		management: []registry.Representative{
			{NomComplet: "Jean-Laurent Bonnafé", Qualite: "Directeur général"},
		},
	}
	store := &memStore{}

	orch := newTestOrchestrator(source)
	orch.SetRepository(store)

	profile := orch.Run(context.Background(), models.CompanyQuery{RawName: "BNP Paribas"})

	if profile.Status != models.StatusOK {
		t.Fatalf("expected ok status, got %s (%s)", profile.Status, profile.Message)
	}
	if profile.Identity == nil || profile.Identity.Siren != "662042449" {
		t.Fatalf("unexpected identity: %+v", profile.Identity)
	}
	if profile.Identity.LegalName != "BNP PARIBAS" {
		t.Errorf("expected upstream legal name, got %q", profile.Identity.LegalName)
	}
	if len(profile.SocialAccounts) != 1 {
		t.Fatalf("expected one social record, got %d", len(profile.SocialAccounts))
	}
	if profile.SocialAccounts[0].NetIncome == nil {
		t.Error("expected net income merged from detailed accounts")
	}
	if len(profile.Management) != 1 || profile.Management[0].FullName != "Jean-Laurent Bonnafé" {
		t.Errorf("unexpected management: %+v", profile.Management)
	}
	if store.siren != "662042449" || store.saved != profile {
		t.Error("expected profile persisted under its siren")
	}
}

func TestRunUnresolvedName(t *testing.T) {
	orch := newTestOrchestrator(&fakeSource{})

	profile := orch.Run(context.Background(), models.CompanyQuery{RawName: "Boulangerie Inconnue du Coin"})

	if profile.Status != models.StatusNotFound {
		t.Fatalf("expected not_found, got %s", profile.Status)
	}
	if profile.Identity != nil {
		t.Errorf("expected no identity block, got %+v", profile.Identity)
	}
}

func TestRunEntityFetchError(t *testing.T) {
	orch := newTestOrchestrator(&fakeSource{entityErr: context.DeadlineExceeded})

	profile := orch.Run(context.Background(), models.CompanyQuery{RawName: "BNP Paribas"})

	if profile.Status != models.StatusError {
		t.Fatalf("expected error status, got %s", profile.Status)
	}
}

func TestRunUnknownSiren(t *testing.T) {
	orch := newTestOrchestrator(&fakeSource{entityErr: registry.ErrNotFound})

	profile := orch.Run(context.Background(), models.CompanyQuery{ExplicitIdentifier: "123456789"})

	if profile.Status != models.StatusNotFound {
		t.Fatalf("expected not_found for unknown siren, got %s", profile.Status)
	}
}

// An enrichment failure degrades to an empty section, never to a failed
// profile.
func TestRunEnrichmentFailureDegrades(t *testing.T) {
	source := &fakeSource{
		entity:        &registry.Entity{Siren: "662042449", NomEntreprise: "BNP PARIBAS"},
		managementErr: true,
	}

	profile := newTestOrchestrator(source).Run(context.Background(), models.CompanyQuery{RawName: "BNP Paribas"})

	if profile.Status != models.StatusOK {
		t.Fatalf("expected ok status, got %s", profile.Status)
	}
	if profile.Management == nil || len(profile.Management) != 0 {
		t.Errorf("expected empty management list, got %v", profile.Management)
	}
}
