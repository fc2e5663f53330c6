// Package cmd implements the runway CLI commands.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rpgo/runway-calculator/internal/calculation"
	"github.com/rpgo/runway-calculator/internal/config"
	"github.com/rpgo/runway-calculator/internal/domain"
	"github.com/rpgo/runway-calculator/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagConfigPath string
	flagFormat     string
	flagVerbose    bool
)

// nowFunc stamps LastUpdated on saved snapshots.
var nowFunc = time.Now

var rootCmd = &cobra.Command{
	Use:   "runway",
	Short: "Retirement runway calculator",
	Long: "Project how long your savings last in retirement under low, mid and high\n" +
		"return scenarios, and weigh claiming Social Security now against waiting.",
	SilenceUsage: true,
	RunE:         runReport,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "Settings file (default $XDG_CONFIG_HOME/runway/config.toml)")
	rootCmd.PersistentFlags().StringVarP(&flagFormat, "format", "f", "", "Report format: console, verbose, csv, detailed-csv, json, yaml, html")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log calculation details to stderr")
	addReportFlags(rootCmd)
}

func settingsPath() string {
	if flagConfigPath != "" {
		return flagConfigPath
	}
	return config.ConfigPath()
}

// loadSettings reads settings and applies command line overrides.
func loadSettings() (config.Settings, error) {
	cfg, err := config.LoadSettings(settingsPath())
	if err != nil {
		return cfg, err
	}
	if flagFormat != "" {
		cfg.Output.Format = flagFormat
	}
	if flagVerbose {
		cfg.Verbose = true
	}
	return cfg, nil
}

// openStore opens the configured snapshot store.
func openStore(ctx context.Context, cfg config.Settings) (store.Store, error) {
	st, err := store.Open(ctx, cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("opening %s store: %w", cfg.Storage.Backend, err)
	}
	return st, nil
}

// newEngine returns a calculation engine logging to w.
func newEngine(w io.Writer, cfg config.Settings) *calculation.CalculationEngine {
	engine := calculation.NewCalculationEngine()
	engine.SetLogger(calculation.NewWriterLogger(w, cfg.Verbose))
	return engine
}

// loadSnapshot returns the stored snapshot, or the defaults when nothing is stored yet.
// The second result reports whether a stored snapshot was found.
func loadSnapshot(ctx context.Context, st store.Store) (domain.Snapshot, bool, error) {
	s, err := st.Load(ctx)
	if err != nil {
		return domain.Snapshot{}, false, err
	}
	if s == nil {
		return domain.DefaultSnapshot(), false, nil
	}
	return *s, true, nil
}
