package extractor

import (
	"regexp"
	"strings"
)

var (
	// Pattern: constant <name> :
	constantPattern = regexp.MustCompile(`(?i)^\s*constant\s+(\w+)\s*:`)

	// Pattern: := <ref> +   (greedy up to the last '+')
	sumPattern = regexp.MustCompile(`:=(.*)\+`)

	// Pattern: x"<hex>" ;   (either case of the marker)
	hexPattern = regexp.MustCompile(`[Xx]"(.*)"\s*;`)
)

// declarationPattern matches the declaration of one specific constant.
func declarationPattern(name string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\bconstant\s+` + regexp.QuoteMeta(name) + `\s*:`)
}

// matchConstant returns [name] if line declares a constant
func matchConstant(line string) []string {
	if m := constantPattern.FindStringSubmatch(line); m != nil {
		return []string{m[1]}
	}
	return nil
}

// matchSumReference returns [ref] if the value expression adds a literal to another constant
func matchSumReference(line string) []string {
	if m := sumPattern.FindStringSubmatch(line); m != nil {
		if ref := strings.TrimSpace(m[1]); ref != "" {
			return []string{ref}
		}
	}
	return nil
}

// matchHexLiteral returns [digits] for the bit-string literal that ends the declaration
func matchHexLiteral(line string) []string {
	if m := hexPattern.FindStringSubmatch(line); m != nil {
		return []string{strings.TrimSpace(m[1])}
	}
	return nil
}

// stripComment drops a trailing VHDL "--" comment.
func stripComment(line string) string {
	if i := strings.Index(line, "--"); i >= 0 {
		return line[:i]
	}
	return line
}
