// Package known implements the static name→SIREN lookup checked before any
// network or paid call. The table is an external collaborator: loaded once at
// startup, read-only for the lifetime of the process.
package known

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v2"

	"company_profiler/pkg/core/normalize"
)

// Entry is one row of the static table.
type Entry struct {
	Name  string `yaml:"name"`
	Siren string `yaml:"siren"`
}

type tableFile struct {
	Entries []Entry `yaml:"entries"`
}

// Index is the in-memory dictionary. Lookup order is exact match, variation
// match, then a bidirectional substring-containment scan in table definition
// order. The substring scan is a documented heuristic: short names can match
// the wrong entry, and the first hit in definition order wins.
type Index struct {
	bySiren map[string]string // normalized name -> siren
	order   []string          // normalized names in definition order
}

// NewIndex builds an index from entries. Names are normalized before
// insertion; a later duplicate of the same normalized name is ignored so
// definition order stays meaningful.
func NewIndex(entries []Entry) *Index {
	ix := &Index{bySiren: make(map[string]string, len(entries))}
	for _, e := range entries {
		key := normalize.Normalize(e.Name)
		if key == "" || e.Siren == "" {
			continue
		}
		if _, dup := ix.bySiren[key]; dup {
			continue
		}
		ix.bySiren[key] = e.Siren
		ix.order = append(ix.order, key)
	}
	return ix
}

// Load reads the table from a YAML file. A missing file is not an error: the
// built-in table is used so the process still starts without the resource.
func Load(path string) (*Index, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewIndex(builtinEntries), nil
		}
		return nil, fmt.Errorf("failed to read known-entities table: %w", err)
	}

	var tf tableFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("failed to parse known-entities table: %w", err)
	}
	if len(tf.Entries) == 0 {
		return NewIndex(builtinEntries), nil
	}
	return NewIndex(tf.Entries), nil
}

// Size reports how many entries the table holds.
func (ix *Index) Size() int {
	return len(ix.order)
}

// Lookup resolves a normalized name (plus its generated variations) to a
// SIREN. Returns "" when nothing matches; the caller then proceeds to the
// next resolution source.
func (ix *Index) Lookup(normalized string, variations []string) string {
	if normalized == "" {
		return ""
	}

	// 1. Exact match on the normalized name.
	if siren, ok := ix.bySiren[normalized]; ok {
		return siren
	}

	// 2. Exact match on each variation, lowercased and normalized the same
	// way the table keys are.
	for _, v := range variations {
		if siren, ok := ix.bySiren[normalize.Normalize(v)]; ok {
			return siren
		}
	}

	// 3. Bidirectional substring containment, table definition order, first
	// hit wins. The table is small and static so the linear scan is fine.
	for _, key := range ix.order {
		if strings.Contains(key, normalized) || strings.Contains(normalized, key) {
			return ix.bySiren[key]
		}
	}

	return ""
}
