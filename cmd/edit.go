package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rpgo/runway-calculator/internal/domain"

	"github.com/charmbracelet/huh"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit the snapshot in an interactive form",
	Args:  cobra.NoArgs,
	RunE:  runEdit,
}

func init() {
	rootCmd.AddCommand(editCmd)
}

// editEntry binds one form input to a snapshot field
type editEntry struct {
	field   domain.PatchField
	initial string
	value   string
}

var editGroupOrder = []string{"Timeline", "Income and spending", "Market", "Assets", "Liabilities"}

func editGroupFor(key string) string {
	switch {
	case strings.HasPrefix(key, "assets."):
		return "Assets"
	case strings.HasPrefix(key, "liabilities."):
		return "Liabilities"
	case strings.HasPrefix(key, "roi."), key == "inflation_rate":
		return "Market"
	case strings.HasSuffix(key, "_age"), key == "age", key == "expected_life":
		return "Timeline"
	default:
		return "Income and spending"
	}
}

func newEditEntries(s domain.Snapshot) []*editEntry {
	entries := make([]*editEntry, 0, len(domain.PatchFields))
	for _, f := range domain.PatchFields {
		v := f.Get(s).String()
		entries = append(entries, &editEntry{field: f, initial: v, value: v})
	}
	return entries
}

var (
	hundred      = decimal.NewFromInt(100)
	minusHundred = decimal.NewFromInt(-100)
)

// fieldValidator checks form input against the same ranges snapshot files are held to
func fieldValidator(f domain.PatchField) func(string) error {
	return func(raw string) error {
		v, ok := domain.CoerceNumber(raw)
		if !ok {
			return errors.New("enter a number")
		}
		switch {
		case f.Key == "ssa_claiming_age":
			if n := v.IntPart(); n < 62 || n > 70 {
				return errors.New("must be between 62 and 70")
			}
		case f.Key == "tax_rate":
			if v.IsNegative() || v.GreaterThanOrEqual(hundred) {
				return errors.New("must be at least 0 and below 100")
			}
		case f.Kind == domain.FieldPercent:
			if v.LessThanOrEqual(minusHundred) {
				return errors.New("must be greater than -100")
			}
		case v.IsNegative():
			return errors.New("cannot be negative")
		}
		return nil
	}
}

func buildEditForm(entries []*editEntry) *huh.Form {
	groups := make([]*huh.Group, 0, len(editGroupOrder))
	for _, title := range editGroupOrder {
		var fields []huh.Field
		for _, e := range entries {
			if editGroupFor(e.field.Key) != title {
				continue
			}
			fields = append(fields, huh.NewInput().
				Title(e.field.Label).
				Description(e.field.Key).
				Value(&e.value).
				Validate(fieldValidator(e.field)))
		}
		if len(fields) > 0 {
			groups = append(groups, huh.NewGroup(fields...).Title(title))
		}
	}
	return huh.NewForm(groups...)
}

// collectPatch builds a patch from the entries whose value changed
func collectPatch(entries []*editEntry) (domain.Patch, error) {
	var p domain.Patch
	for _, e := range entries {
		v := strings.TrimSpace(e.value)
		if v == e.initial {
			continue
		}
		if _, err := p.Set(e.field.Key, v); err != nil {
			return domain.Patch{}, err
		}
	}
	return p, nil
}

func runEdit(cmd *cobra.Command, _ []string) error {
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

	entries := newEditEntries(current)
	if err := buildEditForm(entries).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Fprintln(cmd.OutOrStdout(), "  Edit cancelled; nothing saved.")
			return nil
		}
		return err
	}

	patch, err := collectPatch(entries)
	if err != nil {
		return err
	}
	if patch.IsEmpty() {
		fmt.Fprintln(cmd.OutOrStdout(), "  No changes.")
		return nil
	}
	return saveAndSummarize(ctx, cmd.OutOrStdout(), cmd.ErrOrStderr(), st, cfg, current.Apply(patch, nowFunc()))
}
