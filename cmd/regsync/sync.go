package main

import (
	"github.com/spf13/cobra"
)

type syncOptions struct {
	dryRun     bool
	strict     bool
	timingPath string
}

var syncOpts syncOptions

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Resolve register addresses and patch the headers",
	Long: `Sync resolves every symbol of the table against the VHDL source, prints the
public name to address mapping, and rewrites the address argument of each
matching Register / IntervalRegister declaration. Every header is read before
any is written; a missing header aborts the run.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSync(cmd, syncOpts)
	},
}

func init() {
	syncCmd.Flags().BoolVar(&syncOpts.dryRun, "dry-run", false, "patch in memory only, do not write headers")
	syncCmd.Flags().BoolVar(&syncOpts.strict, "strict", false, "fail before writing when the audit reports errors")
	syncCmd.Flags().StringVar(&syncOpts.timingPath, "timing", "", "write stage timings as JSONL to file")
	rootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, so syncOptions) error {
	g, err := newGenerator(cmd)
	if err != nil {
		return err
	}
	g.DryRun = so.dryRun
	g.Strict = so.strict
	g.TimingPath = so.timingPath

	_, err = g.Run(cmd.Context())
	return err
}
