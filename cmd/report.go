package cmd

import (
	"fmt"

	"github.com/rpgo/runway-calculator/internal/config"
	"github.com/rpgo/runway-calculator/internal/domain"
	"github.com/rpgo/runway-calculator/internal/output"

	"github.com/spf13/cobra"
)

var (
	flagInput      string
	flagOutputFile string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Evaluate the snapshot and print the runway report (default command)",
	Args:  cobra.NoArgs,
	RunE:  runReport,
}

func init() {
	addReportFlags(reportCmd)
	rootCmd.AddCommand(reportCmd)
}

func addReportFlags(c *cobra.Command) {
	c.Flags().StringVarP(&flagInput, "input", "i", "", "Evaluate a snapshot file instead of the stored snapshot")
	c.Flags().StringVarP(&flagOutputFile, "output", "o", "", "Write the report to a file instead of stdout")
}

func runReport(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	var snapshot domain.Snapshot
	if flagInput != "" {
		s, err := config.NewInputParser().LoadFromFile(flagInput)
		if err != nil {
			return err
		}
		snapshot = *s
	} else {
		st, err := openStore(ctx, cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		var found bool
		snapshot, found, err = loadSnapshot(ctx, st)
		if err != nil {
			return err
		}
		if !found {
			fmt.Fprintln(cmd.ErrOrStderr(), "  No saved snapshot yet; showing defaults. Run `runway set` or `runway edit` to enter yours.")
		}
	}

	eval, err := newEngine(cmd.ErrOrStderr(), cfg).Evaluate(ctx, snapshot)
	if err != nil {
		return err
	}

	if flagOutputFile != "" {
		f, err := output.Lookup(cfg.Output.Format)
		if err != nil {
			return err
		}
		if err := output.WriteFormatted(f, eval, flagOutputFile); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "  Wrote %s report to %s\n", f.Name(), flagOutputFile)
		return nil
	}
	return output.Render(cmd.OutOrStdout(), eval, cfg.Output.Format)
}
