package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var tableOutput string

var tableCmd = &cobra.Command{
	Use:   "table [symbol]",
	Short: "Print the symbol table in use as JSON",
	Long: `Table prints the symbol table regsync would resolve, in the JSON format
accepted by --table. Use it to start a versioned table for a new firmware
revision. With a symbol argument only that active entry is printed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, baseDir, err := loadConfig()
		if err != nil {
			return err
		}
		table, err := loadTable(cfg, baseDir)
		if err != nil {
			return err
		}

		if len(args) == 1 {
			entry, ok := table.Lookup(args[0])
			if !ok {
				return fmt.Errorf("symbol %s is not mapped by table %s", args[0], table.Version)
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(entry)
		}

		if tableOutput != "" {
			if err := table.Save(tableOutput); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d entries to %s\n", len(table.Entries), tableOutput)
			return nil
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(table)
	},
}

func init() {
	tableCmd.Flags().StringVarP(&tableOutput, "output", "o", "", "write the table to file")
	rootCmd.AddCommand(tableCmd)
}
