package cmd

import (
	"fmt"
	"io"

	"github.com/rpgo/runway-calculator/internal/domain"
	"github.com/rpgo/runway-calculator/internal/output"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var flagShowFields bool

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the stored snapshot",
	Args:  cobra.NoArgs,
	RunE:  runShow,
}

func init() {
	showCmd.Flags().BoolVar(&flagShowFields, "fields", false, "List editable fields with their current values")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, _ []string) error {
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
		fmt.Fprintln(cmd.ErrOrStderr(), "  No saved snapshot yet; showing defaults.")
	}

	if flagShowFields {
		writeFieldTable(cmd.OutOrStdout(), snapshot)
		return nil
	}

	data, err := yaml.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

// formatFieldValue renders a field value the way it is entered
func formatFieldValue(f domain.PatchField, s domain.Snapshot) string {
	v := f.Get(s)
	switch f.Kind {
	case domain.FieldYears:
		return v.StringFixed(0)
	case domain.FieldPercent:
		return v.String() + "%"
	default:
		return output.FormatCurrency(v)
	}
}

func writeFieldTable(w io.Writer, s domain.Snapshot) {
	rows := make([][]string, 0, len(domain.PatchFields))
	for _, f := range domain.PatchFields {
		rows = append(rows, []string{f.Key, f.Label, formatFieldValue(f, s)})
	}
	fmt.Fprint(w, output.RenderTable(output.Table{
		Title:   "Editable fields",
		Headers: []string{"Key", "Field", "Value"},
		Rows:    rows,
	}))
}
