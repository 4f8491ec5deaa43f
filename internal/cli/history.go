package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/roach88/pandasql/internal/store"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	Limit int
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history <db>",
		Short: "List recorded conversions",
		Long: `List conversions recorded with --history, newest first.

Examples:
  pandasql history ./history.db
  pandasql history ./history.db --limit 5 --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(opts, args[0], cmd)
		},
	}

	cmd.Flags().IntVar(&opts.Limit, "limit", 20, "maximum entries to show (0 for all)")

	return cmd
}

func runHistory(opts *HistoryOptions, dbPath string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	// Opening would create an empty history, so require the file first
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		_ = formatter.Error(ErrCodeNotFound, fmt.Sprintf("database not found: %s", dbPath), nil)
		return NewExitError(ExitCommandError, fmt.Sprintf("database not found: %s", dbPath))
	}

	st, err := store.Open(dbPath)
	if err != nil {
		_ = formatter.Error(ErrCodeDatabase, err.Error(), nil)
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer st.Close()

	conversions, err := st.ListConversions(cmd.Context(), opts.Limit)
	if err != nil {
		_ = formatter.Error(ErrCodeDatabase, err.Error(), nil)
		return WrapExitError(ExitCommandError, "failed to list conversions", err)
	}

	if opts.Format == "json" {
		return formatter.Success(conversions)
	}

	w := cmd.OutOrStdout()
	if len(conversions) == 0 {
		fmt.Fprintln(w, "No conversions recorded.")
		return nil
	}

	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"seq", "pattern", "expression", "sql"})
	for _, c := range conversions {
		table.Append([]string{strconv.FormatInt(c.Seq, 10), c.Pattern, c.Expression, c.SQL})
	}
	table.Render()
	return nil
}
