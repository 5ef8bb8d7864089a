package registry

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"company_profiler/pkg/core/cache"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClientWithBaseURL(server.URL, "test-token", cache.New(0)), server
}

func TestSearchCompanyFirstCandidate(t *testing.T) {
	calls := 0
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		if r.URL.Path != "/recherche-entreprises" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("api_token") != "test-token" {
			t.Error("missing api_token parameter")
		}
		if r.URL.Query().Get("q") != "bnp paribas" {
			t.Errorf("unexpected query %q", r.URL.Query().Get("q"))
		}
		w.Write([]byte(`{"resultats":[
			{"siren":"662042449","nom_entreprise":"BNP PARIBAS"},
			{"siren":"662018661","nom_entreprise":"BNP PARIBAS LEASE GROUP"}
		],"total":2}`))
	})

	cand, err := client.SearchCompany(context.Background(), "bnp paribas")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cand == nil || cand.Siren != "662042449" {
		t.Fatalf("expected first candidate, got %+v", cand)
	}

	// Second call must come from the cache.
	if _, err := client.SearchCompany(context.Background(), "BNP Paribas"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 1 {
		t.Errorf("expected 1 upstream call, got %d", calls)
	}
}

func TestSearchCompanyEmpty(t *testing.T) {
	calls := 0
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(`{"resultats":[],"total":0}`))
	})

	cand, err := client.SearchCompany(context.Background(), "aucune entreprise")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cand != nil {
		t.Errorf("expected nil candidate, got %+v", cand)
	}

	// The miss is cached: retrying the same name stays off the wire.
	cand, err = client.SearchCompany(context.Background(), "aucune entreprise")
	if err != nil || cand != nil {
		t.Fatalf("unexpected second result: %+v, %v", cand, err)
	}
	if calls != 1 {
		t.Errorf("expected 1 upstream call, got %d", calls)
	}
}

func TestFetchEntityNotFound(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.FetchEntity(context.Background(), "123456789")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFetchAnnualAccountsDetailFlag(t *testing.T) {
	var sawDetails []string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		sawDetails = append(sawDetails, r.URL.Query().Get("details"))
		w.Write([]byte(`{"resultats":[{"annee":2023,"chiffre_affaires":1000000}],"total":1}`))
	})

	accounts, err := client.FetchAnnualAccounts(context.Background(), "662042449", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(accounts) != 1 || accounts[0].Annee != 2023 {
		t.Fatalf("unexpected accounts %+v", accounts)
	}

	if _, err := client.FetchAnnualAccounts(context.Background(), "662042449", false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Detail levels are cached separately, so both requests went upstream.
	if len(sawDetails) != 2 || sawDetails[0] != "true" || sawDetails[1] != "" {
		t.Errorf("unexpected details params %v", sawDetails)
	}
}

func TestMissingTokenFailsFast(t *testing.T) {
	server := httptest.NewServer(func() http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			t.Error("no request should reach upstream without a token")
		}
	}())
	defer server.Close()

	client := NewClientWithBaseURL(server.URL, "", cache.New(0))
	if client.HasToken() {
		t.Error("expected HasToken to be false")
	}
	if _, err := client.FetchEntity(context.Background(), "662042449"); err == nil {
		t.Fatal("expected an error without a token")
	}
}

func TestFetchManagementUsesSupplementaryFields(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("champs_supplementaires"); got != "representants" {
			t.Errorf("unexpected champs_supplementaires %q", got)
		}
		w.Write([]byte(`{"siren":"662042449","representants":[{"nom_complet":"Jean-Laurent Bonnafé","qualite":"Directeur général"}]}`))
	})

	reps, err := client.FetchManagement(context.Background(), "662042449")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(reps) != 1 || reps[0].NomComplet != "Jean-Laurent Bonnafé" {
		t.Errorf("unexpected representatives %+v", reps)
	}
}
