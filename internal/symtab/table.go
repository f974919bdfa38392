// Package symtab holds the mapping from firmware register symbols, as named
// in the VHDL address package, to the public constant names used in the
// generated C++ headers.
package symtab

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/robert-at-pretension-io/regsync/internal/validator"
)

// Table is a versioned, ordered symbol mapping.
type Table struct {
	// Version names the firmware revision the table belongs to
	Version string `json:"version"`

	// Entries in the order they are resolved and reported
	Entries []Entry `json:"entries"`
}

// Entry maps one internal register symbol to its public name
type Entry struct {
	Symbol string `json:"symbol"`
	Public string `json:"public"`

	// Disabled keeps the entry in the file but out of the active mapping
	Disabled bool `json:"disabled,omitempty"`

	Note string `json:"note,omitempty"`
}

// Active returns the enabled entries in table order.
func (t *Table) Active() []Entry {
	active := make([]Entry, 0, len(t.Entries))
	for _, e := range t.Entries {
		if !e.Disabled {
			active = append(active, e)
		}
	}
	return active
}

// Lookup returns the active entry for an internal symbol.
func (t *Table) Lookup(symbol string) (Entry, bool) {
	for _, e := range t.Entries {
		if e.Symbol == symbol && !e.Disabled {
			return e, true
		}
	}
	return Entry{}, false
}

// Check enforces the invariants the CUE contract cannot express:
// internal symbols are unique keys and no name is empty.
func (t *Table) Check() error {
	seen := make(map[string]int, len(t.Entries))
	for i, e := range t.Entries {
		if e.Symbol == "" {
			return fmt.Errorf("entry %d: empty symbol", i)
		}
		if e.Public == "" {
			return fmt.Errorf("entry %d (%s): empty public name", i, e.Symbol)
		}
		if prev, ok := seen[e.Symbol]; ok {
			return fmt.Errorf("entry %d: symbol %s already mapped by entry %d", i, e.Symbol, prev)
		}
		seen[e.Symbol] = i
	}
	return nil
}

// Parse decodes and validates a JSON symbol table.
func Parse(data []byte) (*Table, error) {
	v, err := validator.New()
	if err != nil {
		return nil, err
	}
	if err := v.ValidateTableJSON(data); err != nil {
		return nil, err
	}

	var t Table
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing symbol table: %w", err)
	}
	if err := t.Check(); err != nil {
		return nil, fmt.Errorf("symbol table %s: %w", t.Version, err)
	}
	return &t, nil
}

// LoadFile loads a symbol table from a JSON file
func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading symbol table: %w", err)
	}
	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Save writes the table as indented JSON
func (t *Table) Save(path string) error {
	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling symbol table: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing symbol table: %w", err)
	}
	return nil
}
