// Package extractor reads constant declarations out of a VHDL address package.
//
// Only the declaration subset used for register addresses is understood:
//
//	constant <name> : <type> := [<ref> +] x"<hex digits, '_' separated>";
//
// Everything else in the file is ignored.
package extractor

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

var (
	// ErrNoLiteral is returned by ParseHex when there are no digits to parse.
	ErrNoLiteral = errors.New("no hex literal")

	// ErrOverflow is returned by ParseHex for literals wider than 64 bits.
	ErrOverflow = errors.New("hex literal wider than 64 bits")
)

// Source is a VHDL file held as an immutable list of lines
type Source struct {
	Path  string
	lines []string
}

// Declaration is a constant declaration line
type Declaration struct {
	Name string
	Line int // 1-based
	Text string
	Expr Expression
}

// Expression is the value part of a constant declaration
type Expression struct {
	// Ref is the referenced constant of a sum expression, empty for a bare literal
	Ref string

	// Literal holds the hex digits as written, separators included
	Literal string

	// HasLiteral reports whether an x"..." literal was found at all
	HasLiteral bool
}

// IsSum reports whether the expression adds a literal to another constant.
func (e Expression) IsSum() bool {
	return e.Ref != ""
}

// NewSource splits content into lines. Line terminators are dropped.
func NewSource(path string, content []byte) *Source {
	lines := splitLines(string(content))
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return &Source{Path: path, lines: lines}
}

// ReadSource loads a VHDL file
func ReadSource(path string) (*Source, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading source: %w", err)
	}
	return NewSource(path, content), nil
}

// Len returns the number of lines.
func (s *Source) Len() int {
	return len(s.lines)
}

// Line returns line n (1-based), or "" when out of range.
func (s *Source) Line(n int) string {
	if n < 1 || n > len(s.lines) {
		return ""
	}
	return s.lines[n-1]
}

// FindConstant returns the first line declaring the named constant.
// Matching is case-insensitive, as VHDL identifiers are.
func (s *Source) FindConstant(name string) (Declaration, bool) {
	pattern := declarationPattern(name)
	for i, line := range s.lines {
		code := stripComment(line)
		if pattern.MatchString(code) {
			return Declaration{
				Name: name,
				Line: i + 1,
				Text: line,
				Expr: ParseExpression(code),
			}, true
		}
	}
	return Declaration{}, false
}

// Constants lists every constant declaration in file order.
func (s *Source) Constants() []Declaration {
	var decls []Declaration
	for i, line := range s.lines {
		code := stripComment(line)
		if m := matchConstant(code); m != nil {
			decls = append(decls, Declaration{
				Name: m[0],
				Line: i + 1,
				Text: line,
				Expr: ParseExpression(code),
			})
		}
	}
	return decls
}

// ParseExpression classifies the value expression of a declaration line.
func ParseExpression(line string) Expression {
	var expr Expression
	if m := matchSumReference(line); m != nil {
		expr.Ref = m[0]
	}
	if m := matchHexLiteral(line); m != nil {
		expr.Literal = m[0]
		expr.HasLiteral = true
	}
	return expr
}

// ParseHex parses hex digits with optional '_' group separators.
func ParseHex(text string) (uint64, error) {
	digits := strings.ReplaceAll(text, "_", "")
	if digits == "" {
		return 0, ErrNoLiteral
	}
	v, err := strconv.ParseUint(digits, 16, 64)
	if errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("parsing hex literal %q: %w", text, ErrOverflow)
	}
	if err != nil {
		return 0, fmt.Errorf("parsing hex literal %q: %w", text, err)
	}
	return v, nil
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}
