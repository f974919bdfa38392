package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ResolvePath makes a configured path absolute against baseDir.
func ResolvePath(baseDir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}

// SourcePath returns the VHDL source path relative to baseDir
func (c *Config) SourcePath(baseDir string) string {
	return ResolvePath(baseDir, c.Source)
}

// TablePath returns the symbol table path, or "" for the built-in table
func (c *Config) TablePath(baseDir string) string {
	return ResolvePath(baseDir, c.Table)
}

// ResolveHeaders expands the configured header list. Plain paths are returned
// as-is whether or not they exist, so a missing header fails when it is read;
// a glob pattern that matches nothing is an error.
func (c *Config) ResolveHeaders(baseDir string) ([]string, error) {
	seen := make(map[string]bool)
	var result []string

	add := func(path string) {
		path = filepath.Clean(path)
		if !seen[path] {
			seen[path] = true
			result = append(result, path)
		}
	}

	for _, pattern := range c.Headers {
		pattern = ResolvePath(baseDir, pattern)

		if !hasMeta(pattern) {
			add(pattern)
			continue
		}

		matches, err := expandGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("expanding %s: %w", pattern, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no headers match %s", pattern)
		}
		for _, match := range matches {
			add(match)
		}
	}

	return result, nil
}

func hasMeta(pattern string) bool {
	return strings.ContainsAny(pattern, `*?[`)
}

// expandGlob expands a glob pattern, handling ** for recursive matching
func expandGlob(pattern string) ([]string, error) {
	if strings.Contains(pattern, "**") {
		return expandDoubleStarGlob(pattern)
	}
	return filepath.Glob(pattern)
}

// expandDoubleStarGlob handles ** patterns by walking the directory tree
func expandDoubleStarGlob(pattern string) ([]string, error) {
	var results []string

	parts := strings.SplitN(pattern, "**", 2)
	if len(parts) != 2 {
		return filepath.Glob(pattern)
	}

	baseDir := filepath.Clean(parts[0])
	if baseDir == "" {
		baseDir = "."
	}
	suffix := strings.TrimPrefix(parts[1], string(filepath.Separator))

	err := filepath.Walk(baseDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // Skip errors, continue walking
		}
		if info.IsDir() {
			return nil
		}

		if suffix == "" {
			results = append(results, path)
			return nil
		}

		relPath, err := filepath.Rel(baseDir, path)
		if err != nil {
			return nil
		}
		if matchSuffix(relPath, suffix) {
			results = append(results, path)
		}
		return nil
	})

	return results, err
}

// matchSuffix checks if a path matches a suffix pattern (after **)
func matchSuffix(path, pattern string) bool {
	// If pattern has no directory component, match against filename
	if !strings.Contains(pattern, string(filepath.Separator)) {
		matched, _ := filepath.Match(pattern, filepath.Base(path))
		return matched
	}

	matched, _ := filepath.Match(pattern, path)
	if matched {
		return true
	}

	// Also try matching just the trailing components
	components := strings.Count(pattern, string(filepath.Separator)) + 1
	parts := strings.Split(path, string(filepath.Separator))
	if len(parts) > components {
		tail := filepath.Join(parts[len(parts)-components:]...)
		matched, _ = filepath.Match(pattern, tail)
		return matched
	}

	return false
}
