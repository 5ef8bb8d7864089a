package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"company_profiler/pkg/models"
)

// ProfileRepo handles the storage of aggregated company profiles.
type ProfileRepo struct{}

// NewProfileRepo creates a new repository instance.
func NewProfileRepo() *ProfileRepo {
	return &ProfileRepo{}
}

// Save persists an aggregated profile, keyed by SIREN.
// It uses an upsert strategy so a refreshed profile replaces the stale one.
func (r *ProfileRepo) Save(ctx context.Context, siren string, profile *models.AggregatedCompanyProfile) error {
	pool := GetPool()
	if pool == nil {
		return fmt.Errorf("database pool not initialized")
	}

	jsonData, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	// Schema assumption:
	// CREATE TABLE IF NOT EXISTS company_profiles (
	//   siren TEXT PRIMARY KEY,
	//   legal_name TEXT,
	//   profile_json JSONB,
	//   updated_at TIMESTAMPTZ
	// );

	legalName := ""
	if profile.Identity != nil {
		legalName = profile.Identity.LegalName
	}

	query := `
		INSERT INTO company_profiles (siren, legal_name, profile_json, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (siren)
		DO UPDATE SET
			legal_name = EXCLUDED.legal_name,
			profile_json = EXCLUDED.profile_json,
			updated_at = EXCLUDED.updated_at;
	`

	_, err = pool.Exec(ctx, query, siren, legalName, jsonData, time.Now())
	if err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}

	return nil
}

// Load retrieves a previously saved profile for a SIREN.
func (r *ProfileRepo) Load(ctx context.Context, siren string) (*models.AggregatedCompanyProfile, error) {
	pool := GetPool()
	if pool == nil {
		return nil, fmt.Errorf("database pool not initialized")
	}

	query := `SELECT profile_json FROM company_profiles WHERE siren = $1`

	var jsonData []byte
	err := pool.QueryRow(ctx, query, siren).Scan(&jsonData)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, fmt.Errorf("no profile found for siren %s", siren)
		}
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	var profile models.AggregatedCompanyProfile
	if err := json.Unmarshal(jsonData, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile data: %w", err)
	}

	return &profile, nil
}
