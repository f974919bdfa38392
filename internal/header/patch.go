// Package header rewrites register addresses in the generated C++ headers
// and inventories the register declarations they contain.
//
// Two declaration forms are recognized:
//
//	static constexpr Register NAME(0x00000200);
//	static constexpr IntervalRegister NAME(0x00000204, LINK_INTERVAL);
//
// Only the address argument is touched; everything else on the line is kept
// byte for byte.
package header

import (
	"regexp"
	"strings"
)

// Kind is the declaration form of a register
type Kind string

const (
	KindSingle   Kind = "single"
	KindInterval Kind = "interval"
)

const (
	singleKeyword   = "Register"
	intervalKeyword = "IntervalRegister"
)

var (
	// Pattern: first (...) group
	singleArgsPattern = regexp.MustCompile(`\([^)]*\)`)

	// Pattern: '(' up to the first ','
	intervalArgsPattern = regexp.MustCompile(`\([^,]*,`)
)

// Assignment is a new address for one public register name
type Assignment struct {
	Name  string
	Value string
}

// Change records one rewritten line
type Change struct {
	Line int // 1-based
	Name string
	Kind Kind
	Old  string
	New  string
}

// Result is the outcome of patching one header
type Result struct {
	Text    string
	Changes []Change

	// Matched counts the lines each assignment matched
	Matched map[string]int

	// Unmatched lists assignment names no line declared, in assignment order
	Unmatched []string
}

// Modified reports whether any line changed.
func (r Result) Modified() bool {
	for _, c := range r.Changes {
		if c.Old != c.New {
			return true
		}
	}
	return false
}

type matcher struct {
	assignment Assignment
	single     *regexp.Regexp
	interval   *regexp.Regexp
}

func newMatcher(a Assignment) matcher {
	name := regexp.QuoteMeta(a.Name)
	return matcher{
		assignment: a,
		single:     regexp.MustCompile(`\s+` + singleKeyword + `\s*` + name + `\b`),
		interval:   regexp.MustCompile(`\s+` + intervalKeyword + `\s*` + name + `\b`),
	}
}

// Patch applies every assignment to every matching declaration line of text.
// Line terminators are preserved, so an unchanged header comes back identical.
// Only the first argument group of a matched line is rewritten; any later
// parenthesized text on the same line is left as written.
func Patch(text string, values []Assignment) Result {
	lines := strings.SplitAfter(text, "\n")
	res := Result{Matched: make(map[string]int, len(values))}

	for _, a := range values {
		m := newMatcher(a)
		for i, line := range lines {
			patched, kind, ok := m.apply(line)
			if !ok {
				continue
			}
			res.Matched[a.Name]++
			res.Changes = append(res.Changes, Change{
				Line: i + 1,
				Name: a.Name,
				Kind: kind,
				Old:  line,
				New:  patched,
			})
			lines[i] = patched
		}
		if res.Matched[a.Name] == 0 {
			res.Unmatched = append(res.Unmatched, a.Name)
		}
	}

	res.Text = strings.Join(lines, "")
	return res
}

// apply rewrites line when it declares the matcher's register with an
// argument list. A declaration without one (e.g. "Register X = 0x4;") is
// not a match.
func (m matcher) apply(line string) (string, Kind, bool) {
	value := m.assignment.Value
	switch {
	case m.single.MatchString(line):
		patched, ok := replaceFirst(singleArgsPattern, line, "("+value+")")
		return patched, KindSingle, ok
	case m.interval.MatchString(line):
		patched, ok := replaceFirst(intervalArgsPattern, line, "("+value+",")
		return patched, KindInterval, ok
	}
	return line, "", false
}

func replaceFirst(re *regexp.Regexp, s, repl string) (string, bool) {
	loc := re.FindStringIndex(s)
	if loc == nil {
		return s, false
	}
	return s[:loc[0]] + repl + s[loc[1]:], true
}
