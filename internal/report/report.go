// Package report is the flat, JSON-serializable view of one resolution run.
// It is what the audit policy evaluates and what `regsync resolve --json`
// prints, so its field names are a contract (see validator/schema.cue).
package report

import (
	"github.com/robert-at-pretension-io/regsync/internal/extractor"
	"github.com/robert-at-pretension-io/regsync/internal/header"
	"github.com/robert-at-pretension-io/regsync/internal/resolver"
)

// Report is the relational model of a run. Each slice is a table with flat rows.
type Report struct {
	Source       string           `json:"source"`
	TableVersion string           `json:"table_version"`
	Registers    []RegisterRow    `json:"registers"`
	Declarations []DeclarationRow `json:"declarations"`

	// Constants lists every constant in the VHDL source, mapped or not
	Constants []ConstantRow `json:"constants,omitempty"`
}

type RegisterRow struct {
	Symbol string   `json:"symbol"`
	Public string   `json:"public"`
	Value  uint64   `json:"value"`
	Hex    string   `json:"hex"`
	Status string   `json:"status"`
	Line   int      `json:"line"`
	Chain  []string `json:"chain,omitempty"`
}

type DeclarationRow struct {
	Name string   `json:"name"`
	Kind string   `json:"kind"`
	File string   `json:"file"`
	Line int      `json:"line"`
	Args []string `json:"args"`
}

type ConstantRow struct {
	Name string `json:"name"`
	Line int    `json:"line"`
}

// Build assembles a report from resolver results, the constants declared in
// the source and the header inventories.
func Build(source, tableVersion string, results []resolver.Result, constants []extractor.Declaration, inventories []header.Inventory) Report {
	rep := Report{
		Source:       source,
		TableVersion: tableVersion,
		Registers:    make([]RegisterRow, 0, len(results)),
		Declarations: []DeclarationRow{},
	}

	for _, r := range results {
		rep.Registers = append(rep.Registers, RegisterRow{
			Symbol: r.Symbol,
			Public: r.Public,
			Value:  r.Value,
			Hex:    r.Hex(),
			Status: string(r.Status),
			Line:   r.Line,
			Chain:  r.Chain,
		})
	}

	for _, c := range constants {
		rep.Constants = append(rep.Constants, ConstantRow{Name: c.Name, Line: c.Line})
	}

	for _, inv := range inventories {
		for _, d := range inv.Declarations {
			args := d.Args
			if args == nil {
				args = []string{}
			}
			rep.Declarations = append(rep.Declarations, DeclarationRow{
				Name: d.Name,
				Kind: string(d.Kind),
				File: d.File,
				Line: d.Line,
				Args: args,
			})
		}
	}

	return rep
}

// Register returns the row for a public name.
func (r Report) Register(public string) (RegisterRow, bool) {
	for _, row := range r.Registers {
		if row.Public == public {
			return row, true
		}
	}
	return RegisterRow{}, false
}
