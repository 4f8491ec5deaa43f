package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/pandasql/internal/batch"
	"github.com/roach88/pandasql/internal/store"
)

// NewBatchCommand creates the batch command.
func NewBatchCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <file>",
		Short: "Convert every case in a YAML batch file",
		Long: `Convert every case in a YAML batch file and compare the SQL produced
with each case's expected output.

Exit codes:
  0 - All cases passed
  1 - One or more cases failed
  2 - Command error (missing or invalid batch file, etc.)

Examples:
  pandasql batch ./cases.yaml
  pandasql batch ./cases.yaml --format json
  pandasql batch ./cases.yaml --history ./history.db`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runBatch(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		_ = formatter.Error(ErrCodeNotFound, fmt.Sprintf("batch file not found: %s", path), nil)
		return NewExitError(ExitCommandError, fmt.Sprintf("batch file not found: %s", path))
	}

	f, err := batch.Load(path)
	if err != nil {
		_ = formatter.Error(ErrCodeBatchLoad, err.Error(), nil)
		return WrapExitError(ExitCommandError, "failed to load batch", err)
	}
	formatter.VerboseLog("Loaded %d case(s) from %s", len(f.Cases), path)

	report := batch.NewRunner(opts.converter(), opts.logger).Run(f)

	if opts.History != "" {
		if err := recordBatch(cmd, opts.History, report); err != nil {
			_ = formatter.Error(ErrCodeDatabase, err.Error(), nil)
			return WrapExitError(ExitCommandError, "failed to record history", err)
		}
	}

	if opts.Format == "json" {
		return outputBatchJSON(formatter, report)
	}
	return outputBatchText(cmd, report)
}

// recordBatch appends every case result to the history database.
func recordBatch(cmd *cobra.Command, path string, report batch.Report) error {
	st, err := store.Open(path)
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	defer st.Close()

	for _, c := range report.Cases {
		_, err := st.RecordConversion(cmd.Context(), store.Conversion{
			Expression: c.Expression,
			Table:      c.Table,
			Pattern:    c.Pattern,
			SQL:        c.SQL,
			Supported:  c.Pattern != "unsupported",
		})
		if err != nil {
			return fmt.Errorf("case %q: %w", c.Name, err)
		}
	}
	return nil
}

func outputBatchJSON(formatter *OutputFormatter, report batch.Report) error {
	response := CLIResponse{
		Status: "ok",
		Data:   report,
	}
	if report.Failed > 0 {
		response.Status = "error"
		response.Error = &CLIError{
			Code:    ErrCodeBatchFailure,
			Message: fmt.Sprintf("%d case(s) failed", report.Failed),
		}
	}

	if err := formatter.Response(response); err != nil {
		return err
	}

	if report.Failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d case(s) failed", report.Failed))
	}
	return nil
}

func outputBatchText(cmd *cobra.Command, report batch.Report) error {
	w := cmd.OutOrStdout()

	for _, c := range report.Cases {
		if c.Pass {
			fmt.Fprintf(w, "✓ %s\n", c.Name)
			fmt.Fprintf(w, "  %s\n", c.SQL)
			continue
		}
		fmt.Fprintf(w, "✗ %s\n", c.Name)
		fmt.Fprintf(w, "  expected: %s\n", c.Expected)
		fmt.Fprintf(w, "  got:      %s\n", c.SQL)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Batch Summary: %d passed, %d failed, %d total\n", report.Passed, report.Failed, report.Total)

	if report.Failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d case(s) failed", report.Failed))
	}

	fmt.Fprintln(w, "✓ All cases passed")
	return nil
}
