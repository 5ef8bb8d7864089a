package registry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"company_profiler/pkg/core/cache"
)

// DefaultBaseURL points at the production registry API.
const DefaultBaseURL = "https://api.pappers.fr/v2"

// ErrNotFound marks a 404 from the registry: the SIREN or resource does not
// exist upstream. Callers distinguish it from transport failures.
var ErrNotFound = errors.New("REGISTRY_NOT_FOUND")

// requestTimeout bounds every upstream call. The cascade treats a timeout
// like an empty response and moves on to the next source.
const requestTimeout = 10 * time.Second

// Client wraps the registry API with the TTL cache interposed in front of
// every call site. All methods degrade the same way: a transport failure or
// non-200 status comes back as an error that callers log and treat as "this
// source returned nothing".
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	cache      *cache.Cache
}

// NewClient creates a registry client. The token comes from the environment
// (REGISTRY_API_TOKEN); an empty token is allowed and reported per call so
// the pipeline degrades instead of crashing.
func NewClient(token string, c *cache.Cache) *Client {
	return &Client{
		baseURL:    DefaultBaseURL,
		token:      token,
		httpClient: &http.Client{Timeout: requestTimeout},
		cache:      c,
	}
}

// NewClientWithBaseURL is used by tests to point at a stub server.
func NewClientWithBaseURL(baseURL, token string, c *cache.Cache) *Client {
	cl := NewClient(token, c)
	cl.baseURL = strings.TrimSuffix(baseURL, "/")
	return cl
}

// HasToken reports whether upstream calls are possible at all.
func (c *Client) HasToken() bool {
	return c.token != ""
}

// get performs one authenticated GET and decodes the JSON body into out.
func (c *Client) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	if c.token == "" {
		return fmt.Errorf("REGISTRY_TOKEN_MISSING: no api token configured")
	}

	if params == nil {
		params = url.Values{}
	}
	params.Set("api_token", c.token)

	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("registry request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %s returned 404", ErrNotFound, path)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("registry returned status %d for %s", resp.StatusCode, path)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read registry response: %w", err)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse registry response: %w", err)
	}
	return nil
}

// SearchCompany runs the free-text search and returns the first (highest
// relevance) candidate, or nil when the search comes back empty. Cached
// under the "companies" namespace keyed by the query string.
func (c *Client) SearchCompany(ctx context.Context, name string) (*SearchCandidate, error) {
	if cached, ok := c.cache.Get(cache.NamespaceCompanies, name); ok {
		if cand, ok := cached.(*SearchCandidate); ok {
			return cand, nil
		}
	}

	params := url.Values{}
	params.Set("q", name)
	params.Set("par_page", "5")

	var resp SearchResponse
	if err := c.get(ctx, "/recherche-entreprises", params, &resp); err != nil {
		return nil, err
	}
	if len(resp.Resultats) == 0 {
		// Misses are cached too: the endpoint is billed per call and the
		// same unknown name tends to be retried.
		c.cache.Set(cache.NamespaceCompanies, name, (*SearchCandidate)(nil))
		return nil, nil
	}

	cand := &resp.Resultats[0]
	c.cache.Set(cache.NamespaceCompanies, name, cand)
	return cand, nil
}

// FetchEntity retrieves the general entity record with the embedded
// financial summary. Cached under "details".
func (c *Client) FetchEntity(ctx context.Context, siren string) (*Entity, error) {
	if cached, ok := c.cache.Get(cache.NamespaceDetails, siren); ok {
		if e, ok := cached.(*Entity); ok {
			return e, nil
		}
	}

	params := url.Values{}
	params.Set("siren", siren)
	params.Set("extrait_financier", "true")

	var entity Entity
	if err := c.get(ctx, "/entreprise", params, &entity); err != nil {
		return nil, err
	}

	c.cache.Set(cache.NamespaceDetails, siren, &entity)
	return &entity, nil
}

// FetchAnnualAccounts retrieves the social annual accounts. With detailed
// set, the rich ratio fields (margins, working capital, payment delays) are
// requested; without it the endpoint yields the coarser fallback shape.
// Cached under "finances" with the detail level in the key.
func (c *Client) FetchAnnualAccounts(ctx context.Context, siren string, detailed bool) ([]AnnualAccounts, error) {
	key := siren + ":sociaux"
	if detailed {
		key = siren + ":sociaux:details"
	}
	if cached, ok := c.cache.Get(cache.NamespaceFinances, key); ok {
		if accounts, ok := cached.([]AnnualAccounts); ok {
			return accounts, nil
		}
	}

	params := url.Values{}
	if detailed {
		params.Set("details", "true")
	}

	var resp AccountsResponse
	if err := c.get(ctx, "/entreprise/"+siren+"/comptes-sociaux", params, &resp); err != nil {
		return nil, err
	}

	c.cache.Set(cache.NamespaceFinances, key, resp.Resultats)
	return resp.Resultats, nil
}

// FetchConsolidatedAccounts retrieves the consolidated accounts, same shape
// as the social endpoint but group scope. Cached under "finances".
func (c *Client) FetchConsolidatedAccounts(ctx context.Context, siren string) ([]AnnualAccounts, error) {
	key := siren + ":consolides"
	if cached, ok := c.cache.Get(cache.NamespaceFinances, key); ok {
		if accounts, ok := cached.([]AnnualAccounts); ok {
			return accounts, nil
		}
	}

	var resp AccountsResponse
	if err := c.get(ctx, "/entreprise/"+siren+"/comptes-consolides", nil, &resp); err != nil {
		return nil, err
	}

	c.cache.Set(cache.NamespaceFinances, key, resp.Resultats)
	return resp.Resultats, nil
}

// FetchManagement retrieves the management list. Cached under "management".
func (c *Client) FetchManagement(ctx context.Context, siren string) ([]Representative, error) {
	if cached, ok := c.cache.Get(cache.NamespaceManagement, siren); ok {
		if reps, ok := cached.([]Representative); ok {
			return reps, nil
		}
	}

	entity, err := c.fetchEntityFields(ctx, siren, "representants")
	if err != nil {
		return nil, err
	}

	c.cache.Set(cache.NamespaceManagement, siren, entity.Representants)
	return entity.Representants, nil
}

// FetchBeneficialOwners retrieves the registered beneficial owners. Cached
// under "beneficiaries".
func (c *Client) FetchBeneficialOwners(ctx context.Context, siren string) ([]BeneficialOwner, error) {
	if cached, ok := c.cache.Get(cache.NamespaceBeneficiaries, siren); ok {
		if owners, ok := cached.([]BeneficialOwner); ok {
			return owners, nil
		}
	}

	entity, err := c.fetchEntityFields(ctx, siren, "beneficiaires_effectifs")
	if err != nil {
		return nil, err
	}

	c.cache.Set(cache.NamespaceBeneficiaries, siren, entity.BeneficiairesEffectifs)
	return entity.BeneficiairesEffectifs, nil
}

// FetchDocuments retrieves the filed document list. Cached under "documents".
func (c *Client) FetchDocuments(ctx context.Context, siren string) ([]Document, error) {
	if cached, ok := c.cache.Get(cache.NamespaceDocuments, siren); ok {
		if docs, ok := cached.([]Document); ok {
			return docs, nil
		}
	}

	entity, err := c.fetchEntityFields(ctx, siren, "depots_actes")
	if err != nil {
		return nil, err
	}

	c.cache.Set(cache.NamespaceDocuments, siren, entity.DepotsActes)
	return entity.DepotsActes, nil
}

// fetchEntityFields asks the entity endpoint for one supplementary field
// set. The registry bills per field group, so these stay separate calls with
// separate cache namespaces instead of one fat request.
func (c *Client) fetchEntityFields(ctx context.Context, siren, fields string) (*Entity, error) {
	params := url.Values{}
	params.Set("siren", siren)
	params.Set("champs_supplementaires", fields)

	var entity Entity
	if err := c.get(ctx, "/entreprise", params, &entity); err != nil {
		return nil, err
	}
	return &entity, nil
}
