package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/robert-at-pretension-io/regsync/internal/config"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a regsync.json configuration file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath := config.FileName
		w := cmd.OutOrStdout()

		if _, err := os.Stat(configPath); err == nil && !initForce {
			fmt.Fprintf(w, "Config file %s already exists. Overwrite? [y/N]: ", configPath)
			var response string
			fmt.Fscanln(cmd.InOrStdin(), &response)
			if response != "y" && response != "Y" {
				fmt.Fprintln(w, "Aborted.")
				return nil
			}
		}

		cfg := config.DefaultConfig()
		if err := cfg.Save(configPath); err != nil {
			return fmt.Errorf("creating config: %w", err)
		}

		fmt.Fprintf(w, "Created %s\n", configPath)
		fmt.Fprintln(w, "\nEdit this file to configure:")
		fmt.Fprintln(w, "  - The VHDL address package")
		fmt.Fprintln(w, "  - Target headers (glob patterns allowed)")
		fmt.Fprintln(w, "  - A versioned symbol table")
		fmt.Fprintln(w, "  - Audit strictness and extra policy rules")
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing config without asking")
	rootCmd.AddCommand(initCmd)
}
