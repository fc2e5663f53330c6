package cmd

import (
	"fmt"
	"os"

	"github.com/rpgo/runway-calculator/internal/config"

	"github.com/spf13/cobra"
)

var (
	flagForce    bool
	flagSettings bool
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the stored snapshot with a YAML or JSON file",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Write the stored snapshot to a YAML file",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

var initCmd = &cobra.Command{
	Use:   "init [file]",
	Short: "Write an example snapshot file to start from",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runInit,
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the stored snapshot",
	Args:  cobra.NoArgs,
	RunE:  runClear,
}

func init() {
	initCmd.Flags().BoolVar(&flagForce, "force", false, "Overwrite an existing file")
	initCmd.Flags().BoolVar(&flagSettings, "settings", false, "Also write a default settings file")
	rootCmd.AddCommand(importCmd, exportCmd, initCmd, clearCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	s, err := config.NewInputParser().LoadFromFile(args[0])
	if err != nil {
		return err
	}

	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	st, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	imported := *s
	imported.LastUpdated = nowFunc()
	return saveAndSummarize(ctx, cmd.OutOrStdout(), cmd.ErrOrStderr(), st, cfg, imported)
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	st, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	snapshot, found, err := loadSnapshot(ctx, st)
	if err != nil {
		return err
	}
	if !found {
		fmt.Fprintln(cmd.ErrOrStderr(), "  No saved snapshot yet; exporting defaults.")
	}
	if err := config.NewInputParser().SaveToFile(args[0], snapshot); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "  Exported snapshot to %s\n", args[0])
	return nil
}

func runInit(cmd *cobra.Command, args []string) error {
	path := "snapshot.yaml"
	if len(args) == 1 {
		path = args[0]
	}
	if _, err := os.Stat(path); err == nil && !flagForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	parser := config.NewInputParser()
	if err := parser.SaveToFile(path, parser.CreateExampleSnapshot()); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "  Wrote example snapshot to %s\n", path)
	fmt.Fprintf(cmd.OutOrStdout(), "  Edit it, then run `runway import %s`\n", path)

	if flagSettings {
		sp := settingsPath()
		if config.SettingsExist(sp) && !flagForce {
			return fmt.Errorf("%s already exists (use --force to overwrite)", sp)
		}
		if err := config.SaveSettings(sp, config.DefaultSettings()); err != nil {
			return fmt.Errorf("saving settings: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "  Wrote default settings to %s\n", sp)
	}
	return nil
}

func runClear(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	st, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.Clear(ctx); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "  Stored snapshot deleted.")
	return nil
}
