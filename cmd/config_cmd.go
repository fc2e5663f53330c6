package cmd

import (
	"fmt"

	"github.com/rpgo/runway-calculator/internal/config"
	"github.com/rpgo/runway-calculator/internal/output"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()

	path := settingsPath()
	fmt.Fprintf(w, "  Config file: %s\n", path)
	if config.SettingsExist(path) {
		fmt.Fprintln(w, "  Status: loaded")
	} else {
		fmt.Fprintln(w, "  Status: using defaults (no config file)")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "  [Storage]")
	fmt.Fprintf(w, "    Backend: %s\n", cfg.Storage.Backend)
	fmt.Fprintf(w, "    Path:    %s\n", cfg.Storage.Path)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "  [Output]")
	fmt.Fprintf(w, "    Format:  %s\n", output.NormalizeFormatName(cfg.Output.Format))
	fmt.Fprintf(w, "    Formats: %v\n", output.AvailableFormatterNames())
	fmt.Fprintln(w)

	fmt.Fprintf(w, "  Verbose: %v\n", cfg.Verbose)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Environment overrides: RUNWAY_STORAGE_BACKEND, RUNWAY_STORAGE_PATH, RUNWAY_OUTPUT_FORMAT, RUNWAY_VERBOSE")
	return nil
}
