package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rpgo/runway-calculator/internal/config"
	"github.com/rpgo/runway-calculator/internal/domain"
	"github.com/rpgo/runway-calculator/internal/output"
	"github.com/rpgo/runway-calculator/internal/store"

	"github.com/spf13/cobra"
)

var setCmd = &cobra.Command{
	Use:   "set key=value...",
	Short: "Update snapshot fields and show the new runway",
	Long: "Update one or more snapshot fields, save, and re-evaluate.\n\n" +
		"Keys: " + strings.Join(domain.FieldKeys(), ", ") + "\n\n" +
		"Values may include $, % and thousands separators. Values that cannot be\n" +
		"read as numbers are stored as zero and reported.",
	Example: "  runway set age=52 assets.401k=310000 roi.mid=6%",
	Args:    cobra.MinimumNArgs(1),
	RunE:    runSet,
}

func init() {
	rootCmd.AddCommand(setCmd)
}

func runSet(cmd *cobra.Command, args []string) error {
	patch, coerced, err := domain.ParseAssignments(args)
	if err != nil {
		return err
	}
	for _, key := range coerced {
		fmt.Fprintf(cmd.ErrOrStderr(), "  Warning: %s is not a number; stored as 0\n", key)
	}
	return applyAndSave(cmd, patch)
}

// applyAndSave applies the patch to the stored snapshot, saves the result, and prints the
// re-evaluated runway summary.
func applyAndSave(cmd *cobra.Command, patch domain.Patch) error {
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

	current, _, err := loadSnapshot(ctx, st)
	if err != nil {
		return err
	}
	return saveAndSummarize(ctx, cmd.OutOrStdout(), cmd.ErrOrStderr(), st, cfg, current.Apply(patch, nowFunc()))
}

func saveAndSummarize(ctx context.Context, out, errOut io.Writer, st store.Store, cfg config.Settings, next domain.Snapshot) error {
	if err := config.NewInputParser().ValidateSnapshot(&next); err != nil {
		return fmt.Errorf("snapshot validation failed: %w", err)
	}
	if err := st.Save(ctx, next); err != nil {
		return err
	}

	eval, err := newEngine(errOut, cfg).Evaluate(ctx, next)
	if err != nil {
		return err
	}
	writeRunwaySummary(out, eval)
	return nil
}

// writeRunwaySummary prints the short post-update summary
func writeRunwaySummary(w io.Writer, e *domain.Evaluation) {
	fmt.Fprintf(w, "  Saved. %s\n", output.AnalyzeRunway(e).Headline)
	for _, sc := range e.Scenarios {
		fmt.Fprintf(w, "    %-5s %7s  money lasts to age %s\n",
			sc.Name, output.FormatPercentage(sc.ReturnRate), output.FormatRunwayAge(sc))
	}
	fmt.Fprintf(w, "  Ending balance at %d (mid): %s\n", e.Snapshot.ExpectedLife, output.FormatCurrency(e.EndingBalance))
}
