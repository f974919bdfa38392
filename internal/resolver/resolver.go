// Package resolver turns register symbols into numeric addresses.
//
// A symbol resolves through its declaration line: either a bare hex literal,
// or another constant plus a hex literal. Conditions the firmware tooling has
// always tolerated (no declaration, unparsable literal, dangling reference)
// resolve to zero and are reported through Status rather than as errors.
// An address that does not fit in 64 bits also resolves to zero, with
// StatusOverflow, so it is never written truncated. Only a reference cycle
// is an error.
package resolver

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"

	"github.com/robert-at-pretension-io/regsync/internal/extractor"
	"github.com/robert-at-pretension-io/regsync/internal/header"
	"github.com/robert-at-pretension-io/regsync/internal/symtab"
)

// Status describes how a value was obtained
type Status string

const (
	StatusResolved        Status = "resolved"
	StatusMissing         Status = "missing"
	StatusMalformed       Status = "malformed"
	StatusBrokenReference Status = "broken_reference"

	// StatusOverflow marks a literal or a chained sum that does not fit in 64 bits
	StatusOverflow Status = "overflow"
)

// ErrCycle matches any CycleError.
var ErrCycle = errors.New("reference cycle")

// CycleError reports a chain of constants that refers back to itself
type CycleError struct {
	Chain []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("reference cycle: %s", strings.Join(e.Chain, " -> "))
}

func (e *CycleError) Is(target error) bool {
	return target == ErrCycle
}

// Result is the resolved value of one symbol
type Result struct {
	Symbol string
	Public string
	Value  uint64
	Status Status

	// Line of the symbol's declaration, 0 when missing
	Line int

	// Chain lists the symbols visited, starting with Symbol
	Chain []string
}

// OK reports whether the value came from a fully parsed declaration chain.
func (r Result) OK() bool {
	return r.Status == StatusResolved
}

// Hex renders the value the way it is written into headers.
func (r Result) Hex() string {
	return FormatHex(r.Value)
}

// FormatHex renders v as a 0x-prefixed, lower-case literal with at least
// eight digits. Wider values keep all their digits.
func FormatHex(v uint64) string {
	return fmt.Sprintf("0x%08x", v)
}

// Resolve computes the value of one symbol.
func Resolve(src *extractor.Source, symbol string) (Result, error) {
	res := Result{Symbol: symbol}

	decl, ok := src.FindConstant(symbol)
	if !ok {
		res.Status = StatusMissing
		res.Chain = []string{symbol}
		return res, nil
	}
	res.Line = decl.Line

	visited := make(map[string]bool)
	value, status, chain, err := resolveDecl(src, decl, visited, nil)
	if err != nil {
		return res, err
	}
	res.Value = value
	res.Status = status
	res.Chain = chain
	return res, nil
}

func resolveDecl(src *extractor.Source, decl extractor.Declaration, visited map[string]bool, chain []string) (uint64, Status, []string, error) {
	key := strings.ToLower(decl.Name)
	chain = append(chain, decl.Name)
	if visited[key] {
		return 0, "", chain, &CycleError{Chain: chain}
	}
	visited[key] = true

	expr := decl.Expr
	if !expr.IsSum() {
		v, status := parseLiteral(expr.Literal)
		return v, status, chain, nil
	}

	ref, ok := src.FindConstant(expr.Ref)
	if !ok {
		return 0, StatusBrokenReference, append(chain, expr.Ref), nil
	}
	base, status, chain, err := resolveDecl(src, ref, visited, chain)
	if err != nil || status != StatusResolved {
		return 0, status, chain, err
	}
	offset, status := parseLiteral(expr.Literal)
	if status != StatusResolved {
		return 0, status, chain, nil
	}
	sum, carry := bits.Add64(base, offset, 0)
	if carry != 0 {
		return 0, StatusOverflow, chain, nil
	}
	return sum, StatusResolved, chain, nil
}

func parseLiteral(text string) (uint64, Status) {
	v, err := extractor.ParseHex(text)
	switch {
	case errors.Is(err, extractor.ErrOverflow):
		return 0, StatusOverflow
	case err != nil:
		return 0, StatusMalformed
	}
	return v, StatusResolved
}

// ResolveTable resolves every active entry of the table in table order.
func ResolveTable(src *extractor.Source, table *symtab.Table) ([]Result, error) {
	active := table.Active()
	results := make([]Result, 0, len(active))
	for _, e := range active {
		res, err := Resolve(src, e.Symbol)
		if err != nil {
			return nil, fmt.Errorf("resolving %s (%s): %w", e.Symbol, e.Public, err)
		}
		res.Public = e.Public
		results = append(results, res)
	}
	return results, nil
}

// Values builds the public-name assignments the headers are patched with.
// Symbols without a declaration are left out so their header lines stay as
// they are; when two entries share a public name the later one wins.
func Values(results []Result) []header.Assignment {
	index := make(map[string]int, len(results))
	var values []header.Assignment
	for _, r := range results {
		if r.Status == StatusMissing {
			continue
		}
		a := header.Assignment{Name: r.Public, Value: r.Hex()}
		if i, ok := index[r.Public]; ok {
			values[i] = a
			continue
		}
		index[r.Public] = len(values)
		values = append(values, a)
	}
	return values
}

// Unresolved returns the results whose status is not resolved.
func Unresolved(results []Result) []Result {
	var out []Result
	for _, r := range results {
		if !r.OK() {
			out = append(out, r)
		}
	}
	return out
}
