package policy

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/robert-at-pretension-io/regsync/internal/report"
)

func newEngine(t *testing.T, dir string) *Engine {
	t.Helper()
	engine, err := New(context.Background(), dir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return engine
}

func evaluate(t *testing.T, engine *Engine, rep report.Report) *Result {
	t.Helper()
	res, err := engine.Evaluate(context.Background(), rep)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	return res
}

func sampleReport() report.Report {
	return report.Report{
		Source:       "pack_cru_core.vhd",
		TableVersion: "v1",
		Registers: []report.RegisterRow{
			{Symbol: "add_ok", Public: "OK_REG", Value: 0x200, Hex: "0x00000200", Status: "resolved", Line: 2},
			{Symbol: "add_odd", Public: "ODD_REG", Value: 0x201, Hex: "0x00000201", Status: "resolved", Line: 3},
			{Symbol: "add_gone", Public: "GONE_REG", Hex: "0x00000000", Status: "missing"},
			{Symbol: "add_bad", Public: "BAD_REG", Hex: "0x00000000", Status: "malformed", Line: 5},
			{Symbol: "add_dangling", Public: "DANGLING_REG", Hex: "0x00000000", Status: "broken_reference", Line: 6, Chain: []string{"add_dangling", "add_nowhere"}},
		},
		Declarations: []report.DeclarationRow{
			{Name: "OK_REG", Kind: "single", File: "Constants.h", Line: 10, Args: []string{"0x00000200"}},
			{Name: "ODD_REG", Kind: "single", File: "Constants.h", Line: 11, Args: []string{"0x00000201"}},
			{Name: "BAD_REG", Kind: "single", File: "Constants.h", Line: 12, Args: []string{"0x0"}},
			{Name: "DANGLING_REG", Kind: "interval", File: "Constants.h", Line: 13, Args: []string{"0x0", "0x4"}},
			{Name: "HAND_WRITTEN", Kind: "single", File: "Constants.h", Line: 14, Args: []string{"0x4"}},
		},
	}
}

func TestAuditRules(t *testing.T) {
	res := evaluate(t, newEngine(t, ""), sampleReport())

	expect := map[string]string{
		"unresolved_symbol":    "GONE_REG",
		"malformed_literal":    "BAD_REG",
		"broken_reference":     "DANGLING_REG",
		"unaligned_address":    "ODD_REG",
		"unmapped_declaration": "HAND_WRITTEN",
	}
	for rule, name := range expect {
		vs := res.ByRule(rule)
		if len(vs) != 1 || vs[0].Name != name {
			t.Fatalf("expected one %s violation for %s, got %+v", rule, name, vs)
		}
	}
	if vs := res.ByRule("unpatched_register"); len(vs) != 0 {
		t.Fatalf("every assigned register is declared, got %+v", vs)
	}

	if res.Summary.Errors != 2 || res.Summary.Warnings != 1 || res.Summary.Info != 2 {
		t.Fatalf("unexpected summary %+v", res.Summary)
	}
	if res.Summary.TotalViolations != len(res.Violations) {
		t.Fatalf("summary total %d does not match %d violations", res.Summary.TotalViolations, len(res.Violations))
	}
	if !res.HasErrors() {
		t.Fatalf("expected errors")
	}
	if res.Violations[0].Severity != SeverityError {
		t.Fatalf("violations should be sorted by severity, got %+v", res.Violations[0])
	}
}

func TestAuditUnpatchedRegister(t *testing.T) {
	rep := report.Report{
		Source:       "pack_cru_core.vhd",
		TableVersion: "v1",
		Registers: []report.RegisterRow{
			{Symbol: "add_ok", Public: "OK_REG", Value: 0x200, Hex: "0x00000200", Status: "resolved", Line: 2},
			{Symbol: "add_gone", Public: "GONE_REG", Hex: "0x00000000", Status: "missing"},
		},
		Declarations: []report.DeclarationRow{},
	}
	res := evaluate(t, newEngine(t, ""), rep)

	vs := res.ByRule("unpatched_register")
	if len(vs) != 1 || vs[0].Name != "OK_REG" {
		t.Fatalf("expected OK_REG to be reported unpatched, got %+v", vs)
	}
	if res.HasErrors() {
		t.Fatalf("unexpected errors %+v", res.Violations)
	}
}

func TestAuditOverflowAndUnmappedConstants(t *testing.T) {
	rep := report.Report{
		Source:       "pack_cru_core.vhd",
		TableVersion: "v1",
		Registers: []report.RegisterRow{
			{Symbol: "add_ok", Public: "OK_REG", Value: 0x200, Hex: "0x00000200", Status: "resolved", Line: 2},
			{Symbol: "add_wrap", Public: "WRAP_REG", Hex: "0x00000000", Status: "overflow", Line: 4, Chain: []string{"add_wrap", "add_max"}},
		},
		Declarations: []report.DeclarationRow{
			{Name: "OK_REG", Kind: "single", File: "Constants.h", Line: 10, Args: []string{"0x00000200"}},
			{Name: "WRAP_REG", Kind: "single", File: "Constants.h", Line: 11, Args: []string{"0x00000000"}},
		},
		Constants: []report.ConstantRow{
			{Name: "ADD_OK", Line: 2},
			{Name: "add_max", Line: 3},
			{Name: "add_wrap", Line: 4},
		},
	}
	res := evaluate(t, newEngine(t, ""), rep)

	vs := res.ByRule("address_overflow")
	if len(vs) != 1 || vs[0].Name != "WRAP_REG" || vs[0].Severity != SeverityError || vs[0].Line != 4 {
		t.Fatalf("expected one address_overflow error for WRAP_REG, got %+v", vs)
	}
	vs = res.ByRule("unmapped_constant")
	if len(vs) != 1 || vs[0].Name != "add_max" || vs[0].Severity != SeverityInfo {
		t.Fatalf("expected only add_max to be unmapped, got %+v", vs)
	}
	if res.Summary.Errors != 1 || res.Summary.Info != 1 {
		t.Fatalf("unexpected summary %+v", res.Summary)
	}
}

func TestCleanReport(t *testing.T) {
	rep := report.Report{
		Source:       "pack_cru_core.vhd",
		TableVersion: "v1",
		Registers: []report.RegisterRow{
			{Symbol: "add_ok", Public: "OK_REG", Value: 0x200, Hex: "0x00000200", Status: "resolved", Line: 2},
		},
		Declarations: []report.DeclarationRow{
			{Name: "OK_REG", Kind: "single", File: "Constants.h", Line: 10, Args: []string{"0x00000200"}},
		},
	}
	res := evaluate(t, newEngine(t, ""), rep)
	if res.Summary.TotalViolations != 0 || len(res.Violations) != 0 {
		t.Fatalf("expected no violations, got %+v", res.Violations)
	}
}

func TestExtraPolicyDir(t *testing.T) {
	dir := t.TempDir()
	rule := `package regsync.audit

import rego.v1

violations contains v if {
	some r in input.registers
	r.value >= 16777216
	v := {"rule": "outside_bar", "severity": "error", "name": r.public, "file": input.source, "line": r.line, "message": "address outside BAR window"}
}
`
	if err := os.WriteFile(filepath.Join(dir, "site.rego"), []byte(rule), 0o644); err != nil {
		t.Fatalf("write rule: %v", err)
	}

	rep := report.Report{
		Source:       "pack_cru_core.vhd",
		TableVersion: "v1",
		Registers: []report.RegisterRow{
			{Symbol: "add_far", Public: "FAR_REG", Value: 0x01000000, Hex: "0x01000000", Status: "resolved", Line: 2},
		},
		Declarations: []report.DeclarationRow{
			{Name: "FAR_REG", Kind: "single", File: "Constants.h", Line: 10, Args: []string{"0x01000000"}},
		},
	}
	res := evaluate(t, newEngine(t, dir), rep)
	if vs := res.ByRule("outside_bar"); len(vs) != 1 {
		t.Fatalf("expected site rule to fire, got %+v", res.Violations)
	}
	if !res.HasErrors() {
		t.Fatalf("site rule errors should count in the summary")
	}

	if _, err := New(context.Background(), t.TempDir()); err == nil {
		t.Fatalf("expected error for a policy dir without .rego files")
	}
}
