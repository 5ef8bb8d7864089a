package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"

	apiconfig "company_profiler/pkg/api/config"
	apiprofile "company_profiler/pkg/api/profile"
	"company_profiler/pkg/core/agent"
	"company_profiler/pkg/core/analysis"
	"company_profiler/pkg/core/cache"
	"company_profiler/pkg/core/known"
	"company_profiler/pkg/core/pipeline"
	"company_profiler/pkg/core/prompt"
	"company_profiler/pkg/core/registry"
	"company_profiler/pkg/core/resolve"
	"company_profiler/pkg/core/store"
)

func main() {
	// Load environment variables
	godotenv.Load()

	// Determine resources path (relative to executable or working directory)
	resourcesPath := "resources"
	if _, err := os.Stat(resourcesPath); os.IsNotExist(err) {
		exePath, _ := os.Executable()
		resourcesPath = filepath.Join(filepath.Dir(exePath), "resources")
	}
	if err := prompt.LoadFromDirectory(resourcesPath); err != nil {
		fmt.Printf("[WARNING] Failed to load prompt library: %v\n", err)
		fmt.Println("  Falling back to built-in prompts")
	} else {
		fmt.Printf("[PROMPT] Loaded %d prompts from %s\n", prompt.Get().Count(), resourcesPath)
	}

	// Initialize manager from config
	configData, _ := os.ReadFile("config/providers.yaml")
	var agentCfg agent.Config
	yaml.Unmarshal(configData, &agentCfg)
	agentMgr := agent.NewManager(agentCfg)

	// Known-entity index, with the built-in table as fallback
	index, err := known.Load(filepath.Join(resourcesPath, "known_entities.yaml"))
	if err != nil {
		fmt.Printf("[FATAL] Failed to load known-entity index: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("[KNOWN] Index ready (%d entries)\n", index.Size())

	// Shared cache and registry client
	dataCache := cache.New(cache.DefaultTTL)
	client := registry.NewClient(os.Getenv("REGISTRY_API_TOKEN"), dataCache)
	if !client.HasToken() {
		fmt.Println("[WARNING] REGISTRY_API_TOKEN not set; registry lookups will fail")
	}

	// Resolution chain: index -> registry search -> AI fallback
	var search resolve.Searcher
	if client.HasToken() {
		search = client
	}
	ai := resolve.NewIdentifierResolver(agentMgr.GetProvider("resolver"))
	resolver := resolve.NewResolver(index, search, ai)

	orch := pipeline.NewOrchestrator(resolver, client)
	orch.SetCommentator(analysis.NewCommentator(agentMgr))

	// Persistence is opt-in via DATABASE_URL
	if os.Getenv("DATABASE_URL") != "" {
		if err := store.InitDB(context.Background()); err != nil {
			fmt.Printf("[WARNING] Database unavailable: %v\n", err)
		} else {
			defer store.Close()
			orch.SetRepository(store.NewProfileRepo())
			fmt.Println("[STORE] Profile persistence enabled")
		}
	}

	// Config endpoints
	configHandler := apiconfig.NewHandler(agentMgr)
	http.HandleFunc("/api/config", configHandler.HandleConfig)
	http.HandleFunc("/api/config/switch", configHandler.HandleSwitch)

	// Profile endpoints
	profileHandler := apiprofile.NewHandler(orch, dataCache)
	http.HandleFunc("/api/profile", profileHandler.HandleProfile)
	http.HandleFunc("/api/cache/clear", profileHandler.HandleClearCache)

	fmt.Println("API server starting on :8080...")
	fmt.Println("  - GET  /api/config")
	fmt.Println("  - POST /api/config/switch")
	fmt.Println("  - POST /api/profile")
	fmt.Println("  - POST /api/cache/clear")

	if err := http.ListenAndServe(":8080", nil); err != nil {
		fmt.Printf("[FATAL] Server failed to start: %v\n", err)
		os.Exit(1)
	}
}
