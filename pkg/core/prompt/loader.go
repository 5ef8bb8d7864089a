package prompt

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LoadFromDirectory loads prompt overrides from a directory structure:
//
//	baseDir/
//	  prompts/
//	    resolution/
//	      siren_lookup.json
//
// Files override the built-in defaults by ID. A missing directory is an
// error so the caller can log the fallback; defaults stay registered either
// way.
func LoadFromDirectory(baseDir string) error {
	registry := Get()

	promptDir := filepath.Join(baseDir, "prompts")
	if _, err := os.Stat(promptDir); os.IsNotExist(err) {
		return fmt.Errorf("prompts directory not found: %s", promptDir)
	}

	loaded := 0
	err := filepath.Walk(promptDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || filepath.Ext(path) != ".json" {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		var pt PromptTemplate
		if err := json.Unmarshal(data, &pt); err != nil {
			return fmt.Errorf("failed to parse %s: %w", path, err)
		}
		if pt.ID == "" {
			// Derive from path: prompts/resolution/siren_lookup.json ->
			// resolution.siren_lookup
			rel, _ := filepath.Rel(promptDir, path)
			rel = strings.TrimSuffix(rel, ".json")
			pt.ID = strings.ReplaceAll(filepath.ToSlash(rel), "/", ".")
		}

		if err := registry.Register(&pt); err != nil {
			return err
		}
		loaded++
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to load prompts: %w", err)
	}

	fmt.Printf("[prompt.Loader] Loaded %d prompt overrides from %s\n", loaded, baseDir)
	return nil
}
