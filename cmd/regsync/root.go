package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/robert-at-pretension-io/regsync/internal/config"
	"github.com/robert-at-pretension-io/regsync/internal/generator"
	"github.com/robert-at-pretension-io/regsync/internal/symtab"
)

var opts struct {
	configPath string
	tablePath  string
	verbose    bool
}

var rootCmd = &cobra.Command{
	Use:   "regsync",
	Short: "Sync register addresses from the firmware VHDL package into C++ headers",
	Long: `Regsync resolves the register address constants declared in the firmware's
VHDL address package (pack_cru_core.vhd) and writes them into the
Register / IntervalRegister declarations of the generated headers.

Without a subcommand it behaves like "regsync sync": resolve, print the
mapping, patch Constants.h and ../../include/ReadoutCard/Cru.h.

Configuration is read from, in order:
  1. ./regsync.json
  2. ./.regsync.json
  3. ~/.config/regsync/config.json

Run 'regsync init' to create a default configuration file.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging(opts.verbose)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSync(cmd, syncOptions{})
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "config file (default: search regsync.json)")
	rootCmd.PersistentFlags().StringVar(&opts.tablePath, "table", "", "symbol table JSON (default: config table or built-in)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")
}

func setupLogging(verbose bool) {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}
}

// loadConfig reads the config named by --config, or searches for one in the
// working directory. It returns the directory relative paths resolve against.
func loadConfig() (*config.Config, string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, "", fmt.Errorf("getting working directory: %w", err)
	}

	if opts.configPath != "" {
		cfg, err := config.LoadFile(opts.configPath)
		if err != nil {
			return nil, "", fmt.Errorf("loading config %s: %w", opts.configPath, err)
		}
		return cfg, cwd, nil
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return nil, "", err
	}
	return cfg, cwd, nil
}

// loadTable picks --table, then the configured table, then the built-in one.
func loadTable(cfg *config.Config, baseDir string) (*symtab.Table, error) {
	path := opts.tablePath
	if path == "" {
		path = cfg.TablePath(baseDir)
	}
	if path == "" {
		return symtab.Default(), nil
	}
	table, err := symtab.LoadFile(path)
	if err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{"table": path, "version": table.Version}).Debug("loaded symbol table")
	return table, nil
}

func newGenerator(cmd *cobra.Command) (*generator.Generator, error) {
	cfg, baseDir, err := loadConfig()
	if err != nil {
		return nil, err
	}
	table, err := loadTable(cfg, baseDir)
	if err != nil {
		return nil, err
	}

	g := generator.New(cfg, table)
	g.BaseDir = baseDir
	g.Verbose = opts.verbose
	g.Out = cmd.OutOrStdout()
	g.Log = logrus.StandardLogger()
	return g, nil
}
