package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"

	"company_profiler/pkg/core/agent"
	"company_profiler/pkg/core/analysis"
	"company_profiler/pkg/core/cache"
	"company_profiler/pkg/core/known"
	"company_profiler/pkg/core/pipeline"
	"company_profiler/pkg/core/prompt"
	"company_profiler/pkg/core/registry"
	"company_profiler/pkg/core/resolve"
	"company_profiler/pkg/models"
)

// One-shot profiler: resolves a company, aggregates its data and prints the
// profile as JSON.
//
// Usage:
//
//	profiler -company "BNP Paribas"
//	profiler -identifier FR76662042449 -comment
func main() {
	company := flag.String("company", "", "company name to profile")
	identifier := flag.String("identifier", "", "explicit SIREN, SIRET or VAT number")
	comment := flag.Bool("comment", false, "generate AI commentary")
	flag.Parse()

	if *company == "" && *identifier == "" {
		fmt.Fprintln(os.Stderr, "usage: profiler -company <name> | -identifier <siren|siret|vat> [-comment]")
		os.Exit(2)
	}

	godotenv.Load()

	resourcesPath := "resources"
	if _, err := os.Stat(resourcesPath); os.IsNotExist(err) {
		exePath, _ := os.Executable()
		resourcesPath = filepath.Join(filepath.Dir(exePath), "resources")
	}
	prompt.LoadFromDirectory(resourcesPath)

	configData, _ := os.ReadFile("config/providers.yaml")
	var agentCfg agent.Config
	yaml.Unmarshal(configData, &agentCfg)
	agentMgr := agent.NewManager(agentCfg)

	index, err := known.Load(filepath.Join(resourcesPath, "known_entities.yaml"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load known-entity index: %v\n", err)
		os.Exit(1)
	}

	dataCache := cache.New(cache.DefaultTTL)
	client := registry.NewClient(os.Getenv("REGISTRY_API_TOKEN"), dataCache)

	var search resolve.Searcher
	if client.HasToken() {
		search = client
	}
	ai := resolve.NewIdentifierResolver(agentMgr.GetProvider("resolver"))
	resolver := resolve.NewResolver(index, search, ai)

	orch := pipeline.NewOrchestrator(resolver, client)
	if *comment {
		orch.SetCommentator(analysis.NewCommentator(agentMgr))
	}

	profile := orch.Run(context.Background(), models.CompanyQuery{
		RawName:            *company,
		ExplicitIdentifier: *identifier,
	})

	out, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to serialize profile: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))

	if profile.Status != models.StatusOK {
		os.Exit(1)
	}
}
