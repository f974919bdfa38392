package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/robert-at-pretension-io/regsync/internal/generator"
	"github.com/robert-at-pretension-io/regsync/internal/policy"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Audit the register mapping and report stale header declarations",
	Long: `Check resolves the table, inventories the headers as they are on disk and runs
the audit policy. Nothing is written. The command fails when the audit reports
errors, so it can gate a firmware release.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := newGenerator(cmd)
		if err != nil {
			return err
		}
		g.Strict = true

		out, err := g.Check(cmd.Context())
		if out != nil {
			printCheck(cmd, out)
		}
		return err
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func printCheck(cmd *cobra.Command, out *generator.Outcome) {
	w := cmd.OutOrStdout()

	for _, h := range out.Headers {
		status := "up to date"
		if h.Changed > 0 {
			status = fmt.Sprintf("%d stale declaration(s)", h.Changed)
		}
		fmt.Fprintf(w, "%s: %s\n", h.Path, status)
		for _, m := range h.Mismatches {
			fmt.Fprintf(w, "  line %d: %s is %s, firmware says %s\n", m.Line, m.Name, m.Found, m.Expected)
		}
	}

	if out.Audit == nil {
		return
	}
	fmt.Fprintln(w)
	hidden := 0
	for _, rule := range ruleOrder(out.Audit.Violations) {
		vs := out.Audit.ByRule(rule)
		if vs[0].Severity == policy.SeverityInfo && !opts.verbose {
			hidden += len(vs)
			continue
		}
		fmt.Fprintf(w, "%s [%s] (%d)\n", rule, vs[0].Severity, len(vs))
		for _, v := range vs {
			loc := ""
			if v.File != "" {
				loc = v.File
				if v.Line > 0 {
					loc = fmt.Sprintf("%s:%d", v.File, v.Line)
				}
				loc += ": "
			}
			fmt.Fprintf(w, "  %s%s\n", loc, v.Message)
		}
	}
	if hidden > 0 {
		fmt.Fprintf(w, "%d info finding(s) not shown, use -v to list them\n", hidden)
	}
	s := out.Audit.Summary
	fmt.Fprintf(w, "%d finding(s): %d error(s), %d warning(s), %d info\n", s.TotalViolations, s.Errors, s.Warnings, s.Info)
}

// ruleOrder lists rule names in the order the violations are sorted.
func ruleOrder(vs []policy.Violation) []string {
	seen := make(map[string]bool)
	var rules []string
	for _, v := range vs {
		if !seen[v.Rule] {
			seen[v.Rule] = true
			rules = append(rules, v.Rule)
		}
	}
	return rules
}
