package cli

import (
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/roach88/pandasql/internal/store"
)

// ExecOptions holds flags for the exec command.
type ExecOptions struct {
	*RootOptions
	Database string
}

// ExecOutput is the JSON payload for exec.
type ExecOutput struct {
	ConversionOutput
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// NewExecCommand creates the exec command.
func NewExecCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ExecOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "exec <expression>",
		Short: "Convert an expression and run it against a SQLite dataset",
		Long: `Convert an expression and run the SQL against an existing SQLite
database. The database is opened read-only.

Exit codes:
  0 - Query ran
  1 - Expression unsupported or the query failed
  2 - Command error (database not found, etc.)

Examples:
  pandasql exec "df[df['age'] > 30]" --db ./employees.db
  pandasql exec "df.groupby('department')['salary'].mean()" --db ./hr.db -t staff`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExec(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite dataset (required)")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runExec(opts *ExecOptions, expression string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	out, err := convertExpression(opts.converter(), expression, opts.Table)
	if err != nil {
		_ = formatter.Error(ErrCodeGeneric, err.Error(), nil)
		return WrapExitError(ExitCommandError, "conversion failed", err)
	}
	if !out.Supported {
		_ = formatter.Error(ErrCodeUnsupported, out.SQL, map[string]string{"expression": expression})
		return NewExitError(ExitFailure, "unsupported expression")
	}
	formatter.VerboseLog("SQL: %s", out.SQL)

	st, err := store.OpenDataset(opts.Database)
	if err != nil {
		_ = formatter.Error(ErrCodeNotFound, err.Error(), nil)
		return WrapExitError(ExitCommandError, "failed to open dataset", err)
	}
	defer st.Close()

	rows, err := st.QueryRows(cmd.Context(), out.SQL)
	if err != nil {
		_ = formatter.Error(ErrCodeQueryFailed, err.Error(), map[string]string{"sql": out.SQL})
		return WrapExitError(ExitFailure, "query failed", err)
	}
	formatter.VerboseLog("%d row(s)", len(rows.Values))

	if opts.Format == "json" {
		return formatter.Success(ExecOutput{
			ConversionOutput: out,
			Columns:          rows.Columns,
			Rows:             rows.Values,
		})
	}

	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetAutoFormatHeaders(false)
	table.SetHeader(rows.Columns)
	table.AppendBulk(rows.Values)
	table.Render()
	fmt.Fprintf(cmd.OutOrStdout(), "(%d row(s))\n", len(rows.Values))
	return nil
}
