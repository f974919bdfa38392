package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/robert-at-pretension-io/regsync/internal/report"
)

var resolveOpts struct {
	jsonOutput bool
	output     string
	deltaFrom  string
	deltaOut   string
}

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Print the resolved register addresses without touching headers",
	Long: `Resolve prints the public name to address mapping. With --json it emits the
register report instead, which can be kept per firmware revision and compared
later with --delta-from / --delta-out.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if (resolveOpts.deltaFrom == "") != (resolveOpts.deltaOut == "") {
			return fmt.Errorf("--delta-from and --delta-out must be used together")
		}

		g, err := newGenerator(cmd)
		if err != nil {
			return err
		}
		out, err := g.Resolve(cmd.Context())
		if err != nil {
			return err
		}
		rep := report.Build(out.Source, g.Table.Version, out.Results, out.Constants, nil)

		switch {
		case resolveOpts.output != "":
			if err := writeJSON(resolveOpts.output, rep); err != nil {
				return fmt.Errorf("writing report: %w", err)
			}
		case resolveOpts.jsonOutput:
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(rep); err != nil {
				return fmt.Errorf("encoding report: %w", err)
			}
		default:
			g.PrintMapping(out)
		}

		if resolveOpts.deltaFrom != "" {
			prev, err := readReport(resolveOpts.deltaFrom)
			if err != nil {
				return fmt.Errorf("reading delta-from: %w", err)
			}
			delta := report.ComputeDelta(prev, rep)
			if err := writeJSON(resolveOpts.deltaOut, delta); err != nil {
				return fmt.Errorf("writing delta: %w", err)
			}
			if delta.Empty() {
				logrus.WithField("from", resolveOpts.deltaFrom).Info("no address changes")
			} else {
				logrus.WithFields(logrus.Fields{
					"added":   len(delta.Added),
					"removed": len(delta.Removed),
					"changed": len(delta.Changed),
				}).Info("address changes written to " + resolveOpts.deltaOut)
			}
		}
		return nil
	},
}

func init() {
	resolveCmd.Flags().BoolVar(&resolveOpts.jsonOutput, "json", false, "print the register report as JSON")
	resolveCmd.Flags().StringVarP(&resolveOpts.output, "output", "o", "", "write the register report JSON to file")
	resolveCmd.Flags().StringVar(&resolveOpts.deltaFrom, "delta-from", "", "previous report JSON to compute delta from")
	resolveCmd.Flags().StringVar(&resolveOpts.deltaOut, "delta-out", "", "write delta JSON to file (requires --delta-from)")
	rootCmd.AddCommand(resolveCmd)
}

func readReport(path string) (report.Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return report.Report{}, err
	}
	defer func() { _ = f.Close() }()

	var rep report.Report
	if err := json.NewDecoder(f).Decode(&rep); err != nil {
		return report.Report{}, err
	}
	return rep, nil
}

func writeJSON(path string, data interface{}) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
