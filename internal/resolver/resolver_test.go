package resolver

import (
	"errors"
	"strings"
	"testing"

	"github.com/robert-at-pretension-io/regsync/internal/extractor"
	"github.com/robert-at-pretension-io/regsync/internal/symtab"
)

const packCore = `package pack_cru_core is
  constant add_plain      : unsigned(31 downto 0) := x"DEADBEEF";
  constant add_grouped    : unsigned(31 downto 0) := x"DEAD_BEEF";
  constant add_base       : unsigned(31 downto 0) := x"0000_0100";
  constant add_offset     : unsigned(31 downto 0) := add_base + x"0000_0010";
  constant add_offset2    : unsigned(31 downto 0) := add_offset + X"0000_0004";
  constant add_small      : unsigned(31 downto 0) := x"5";
  constant add_bad        : unsigned(31 downto 0) := x"XYZ";
  constant add_dangling   : unsigned(31 downto 0) := add_nowhere + x"0000_0010";
  constant add_bad_offset : unsigned(31 downto 0) := add_base + x"";
  constant add_loop_a     : unsigned(31 downto 0) := add_loop_b + x"1";
  constant add_loop_b     : unsigned(31 downto 0) := add_loop_a + x"1";
  constant add_self       : unsigned(31 downto 0) := add_self + x"1";
  constant add_high       : unsigned(63 downto 0) := x"FFFF_FFFF_0000_0000";
  constant add_high_sum   : unsigned(63 downto 0) := add_high + x"0000_FFFF";
  constant add_max        : unsigned(63 downto 0) := x"FFFF_FFFF_FFFF_FFFF";
  constant add_wrap       : unsigned(63 downto 0) := add_max + x"2";
  constant add_too_wide   : unsigned(67 downto 0) := x"1_0000_0000_0000_0000";
  constant add_wide_sum   : unsigned(67 downto 0) := add_base + x"1_0000_0000_0000_0000";
  constant add_past_wrap  : unsigned(63 downto 0) := add_wrap + x"4";
end package;
`

func source() *extractor.Source {
	return extractor.NewSource("pack_cru_core.vhd", []byte(packCore))
}

func mustResolve(t *testing.T, symbol string) Result {
	t.Helper()
	res, err := Resolve(source(), symbol)
	if err != nil {
		t.Fatalf("Resolve(%s): %v", symbol, err)
	}
	return res
}

func TestResolveLiterals(t *testing.T) {
	for _, symbol := range []string{"add_plain", "add_grouped"} {
		res := mustResolve(t, symbol)
		if res.Status != StatusResolved || res.Value != 0xdeadbeef {
			t.Fatalf("%s: expected resolved 0xdeadbeef, got %s %#x", symbol, res.Status, res.Value)
		}
		if res.Hex() != "0xdeadbeef" {
			t.Fatalf("%s: expected hex 0xdeadbeef, got %s", symbol, res.Hex())
		}
	}
}

func TestResolveChain(t *testing.T) {
	res := mustResolve(t, "add_offset")
	if res.Status != StatusResolved || res.Value != 0x110 {
		t.Fatalf("expected 0x110, got %s %#x", res.Status, res.Value)
	}
	if res.Hex() != "0x00000110" {
		t.Fatalf("expected 0x00000110, got %s", res.Hex())
	}

	res = mustResolve(t, "add_offset2")
	if res.Value != 0x114 {
		t.Fatalf("expected 0x114, got %#x", res.Value)
	}
	want := []string{"add_offset2", "add_offset", "add_base"}
	if strings.Join(res.Chain, ",") != strings.Join(want, ",") {
		t.Fatalf("expected chain %v, got %v", want, res.Chain)
	}
	if res.Line != 6 {
		t.Fatalf("expected declaration line 6, got %d", res.Line)
	}
}

func TestResolveFallbacksToZero(t *testing.T) {
	tests := []struct {
		symbol string
		status Status
	}{
		{symbol: "add_not_declared", status: StatusMissing},
		{symbol: "add_bad", status: StatusMalformed},
		{symbol: "add_dangling", status: StatusBrokenReference},
		{symbol: "add_bad_offset", status: StatusMalformed},
	}
	for _, tc := range tests {
		res := mustResolve(t, tc.symbol)
		if res.Value != 0 {
			t.Fatalf("%s: expected value 0, got %#x", tc.symbol, res.Value)
		}
		if res.Status != tc.status {
			t.Fatalf("%s: expected status %s, got %s", tc.symbol, tc.status, res.Status)
		}
		if res.OK() {
			t.Fatalf("%s: OK must be false", tc.symbol)
		}
	}
}

func TestResolveWideValues(t *testing.T) {
	res := mustResolve(t, "add_high_sum")
	if res.Status != StatusResolved || res.Value != 0xffffffff0000ffff {
		t.Fatalf("add_high_sum: got %#x (%s)", res.Value, res.Status)
	}
	if res.Hex() != "0xffffffff0000ffff" {
		t.Fatalf("add_high_sum: expected all 16 digits, got %s", res.Hex())
	}

	tests := []struct {
		symbol string
		chain  int
	}{
		{symbol: "add_wrap", chain: 2},
		{symbol: "add_too_wide", chain: 1},
		{symbol: "add_wide_sum", chain: 2},
		{symbol: "add_past_wrap", chain: 3},
	}
	for _, tc := range tests {
		res := mustResolve(t, tc.symbol)
		if res.Status != StatusOverflow {
			t.Fatalf("%s: expected status %s, got %s (%#x)", tc.symbol, StatusOverflow, res.Status, res.Value)
		}
		if res.Value != 0 || res.OK() {
			t.Fatalf("%s: overflow must resolve to zero, got %#x", tc.symbol, res.Value)
		}
		if len(res.Chain) != tc.chain {
			t.Fatalf("%s: expected chain of %d, got %v", tc.symbol, tc.chain, res.Chain)
		}
	}
}

func TestResolveDetectsCycles(t *testing.T) {
	for _, symbol := range []string{"add_loop_a", "add_self"} {
		_, err := Resolve(source(), symbol)
		if !errors.Is(err, ErrCycle) {
			t.Fatalf("%s: expected ErrCycle, got %v", symbol, err)
		}
		var cycle *CycleError
		if !errors.As(err, &cycle) || len(cycle.Chain) < 2 {
			t.Fatalf("%s: expected cycle chain, got %v", symbol, err)
		}
		if cycle.Chain[0] != cycle.Chain[len(cycle.Chain)-1] {
			t.Fatalf("%s: chain should end where it started: %v", symbol, cycle.Chain)
		}
	}
}

func TestFormatHex(t *testing.T) {
	tests := []struct {
		in   uint64
		want string
	}{
		{in: 0, want: "0x00000000"},
		{in: 5, want: "0x00000005"},
		{in: 0xdeadbeef, want: "0xdeadbeef"},
		{in: 0x1_0000_0000, want: "0x100000000"},
	}
	for _, tc := range tests {
		if got := FormatHex(tc.in); got != tc.want {
			t.Fatalf("FormatHex(%#x) = %s, want %s", tc.in, got, tc.want)
		}
	}
	if mustResolve(t, "add_small").Hex() != "0x00000005" {
		t.Fatalf("expected small value to be zero padded")
	}
}

func TestResolveTableAndValues(t *testing.T) {
	table := &symtab.Table{Version: "test", Entries: []symtab.Entry{
		{Symbol: "add_base", Public: "BASE"},
		{Symbol: "add_offset", Public: "OFFSET"},
		{Symbol: "add_not_declared", Public: "GONE"},
		{Symbol: "add_bad", Public: "BAD"},
		{Symbol: "add_plain", Public: "PLAIN", Disabled: true},
		{Symbol: "add_small", Public: "BASE"},
	}}

	results, err := ResolveTable(source(), table)
	if err != nil {
		t.Fatalf("ResolveTable: %v", err)
	}
	if len(results) != 5 {
		t.Fatalf("expected 5 results for active entries, got %d", len(results))
	}
	if results[1].Public != "OFFSET" || results[1].Value != 0x110 {
		t.Fatalf("unexpected OFFSET result %+v", results[1])
	}
	if got := len(Unresolved(results)); got != 2 {
		t.Fatalf("expected 2 unresolved results, got %d", got)
	}

	values := Values(results)
	got := map[string]string{}
	for _, a := range values {
		got[a.Name] = a.Value
	}
	if len(values) != 3 {
		t.Fatalf("expected 3 assignments, got %+v", values)
	}
	if _, ok := got["GONE"]; ok {
		t.Fatalf("missing declarations must not produce assignments")
	}
	if got["BAD"] != "0x00000000" {
		t.Fatalf("malformed literal should patch as zero, got %q", got["BAD"])
	}
	if got["BASE"] != "0x00000005" {
		t.Fatalf("later entry should win for a shared public name, got %q", got["BASE"])
	}
	if values[0].Name != "BASE" {
		t.Fatalf("assignments keep first-seen order, got %+v", values)
	}
}

func TestResolveTableStopsOnCycle(t *testing.T) {
	table := &symtab.Table{Version: "test", Entries: []symtab.Entry{
		{Symbol: "add_base", Public: "BASE"},
		{Symbol: "add_loop_a", Public: "LOOP"},
	}}
	if _, err := ResolveTable(source(), table); !errors.Is(err, ErrCycle) {
		t.Fatalf("expected ErrCycle, got %v", err)
	}
}
