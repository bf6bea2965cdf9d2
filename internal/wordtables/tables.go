// Package wordtables holds the per-language word tables the catalog is built
// from. Every table maps a shared numeric word id to that language's surface
// form; id N names the same concept in every language that carries it.
package wordtables

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// Entry is one word of a language table
type Entry struct {
	Word          string `json:"word"`
	Category      string `json:"category"`
	Difficulty    string `json:"difficulty"`
	Pronunciation string `json:"pronunciation,omitempty"`
	Example       string `json:"example,omitempty"`
}

// Table maps a numeric word id to its entry for one language
type Table map[int]Entry

// Registry holds the word tables of all known languages
type Registry struct {
	tables map[string]Table
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		tables: make(map[string]Table),
	}
}

// Add registers a table under a language code, replacing any existing one
func (r *Registry) Add(code string, table Table) {
	r.tables[code] = table
}

// Lookup returns the table for a language code
func (r *Registry) Lookup(code string) (Table, bool) {
	table, ok := r.tables[code]
	return table, ok
}

// Languages returns the registered language codes in sorted order
func (r *Registry) Languages() []string {
	codes := make([]string, 0, len(r.tables))
	for code := range r.tables {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// LoadDir reads every "<code>.json" file in dir into the registry. Each file
// holds a JSON object keyed by the numeric word id as a string.
func (r *Registry) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read word table directory: %w", err)
	}

	for _, dirEntry := range entries {
		name := dirEntry.Name()
		if dirEntry.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}

		table, err := loadFile(filepath.Join(dir, name))
		if err != nil {
			return fmt.Errorf("failed to load word table %s: %w", name, err)
		}
		r.Add(strings.TrimSuffix(name, ".json"), table)
	}

	return nil
}

// loadFile parses one word table file
func loadFile(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var raw map[string]Entry
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse table JSON: %w", err)
	}

	table := make(Table, len(raw))
	for key, entry := range raw {
		id, err := strconv.Atoi(key)
		if err != nil {
			return nil, fmt.Errorf("invalid word id %q: %w", key, err)
		}
		table[id] = entry
	}

	return table, nil
}
