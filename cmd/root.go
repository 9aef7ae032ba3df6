package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	cfgpkg "churnprep/internal/config"
	"churnprep/pkg/log"
	"churnprep/prepare"
)

var (
	// Global flags (overriding config when set)
	cfgFile      string
	flagLogLevel string
	flagSeed     int64
	flagSchema   string

	// Loaded configuration
	cfg *cfgpkg.Global
)

var rootCmd = &cobra.Command{
	Use:   "churnprep",
	Short: "churnprep: deterministic churn dataset preparation",
	Long: `churnprep turns a raw delimited churn dataset into the train/validation/test
split a gradient-boosted-tree trainer expects: cleaned, one-hot encoded,
label-first, header-free, and byte-reproducible for a given seed.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(loadConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.churnprep/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "shuffle seed (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagSchema, "schema", "", "schema YAML file (default is the built-in telco churn schema)")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
		c = &cfgpkg.Global{Seed: prepare.DefaultSeed, OutDir: ".", LogLevel: "info"}
	}
	cfg = c

	f := rootCmd.PersistentFlags()
	if f.Changed("log-level") && flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}
	if f.Changed("seed") {
		cfg.Seed = flagSeed
	}
	if f.Changed("schema") && flagSchema != "" {
		cfg.SchemaFile = flagSchema
	}

	if err := log.SetupLogger(cfg.LogLevel); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
