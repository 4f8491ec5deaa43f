package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/pandasql/internal/convert"
	"github.com/roach88/pandasql/internal/store"
)

// ConversionOutput is the JSON payload for a single conversion.
type ConversionOutput struct {
	Expression string   `json:"expression"`
	Table      string   `json:"table"`
	Pattern    string   `json:"pattern"`
	SQL        string   `json:"sql"`
	Supported  bool     `json:"supported"`
	Warnings   []string `json:"warnings,omitempty"`
	HistoryID  string   `json:"history_id,omitempty"`
}

// convertExpression translates one expression. Unsupported input is not an
// error: it yields the sentinel text with Supported unset.
func convertExpression(c *convert.Converter, expression, table string) (ConversionOutput, error) {
	if table == "" {
		table = c.DefaultTable()
	}
	out := ConversionOutput{
		Expression: expression,
		Table:      table,
	}

	res, err := c.Translate(expression, table)
	if errors.Is(err, convert.ErrUnsupportedPattern) {
		out.Pattern = "unsupported"
		out.SQL = convert.Unsupported
		return out, nil
	}
	if err != nil {
		return out, err
	}

	out.Pattern = res.Pattern.String()
	out.SQL = res.SQL
	out.Supported = true
	out.Warnings = res.Warnings
	return out, nil
}

func runConvert(opts *RootOptions, expression string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	out, err := convertExpression(opts.converter(), expression, opts.Table)
	if err != nil {
		_ = formatter.Error(ErrCodeGeneric, err.Error(), nil)
		return WrapExitError(ExitCommandError, "conversion failed", err)
	}

	formatter.VerboseLog("Pattern: %s", out.Pattern)
	for _, w := range out.Warnings {
		formatter.VerboseLog("Warning: %s", w)
	}

	if opts.History != "" {
		id, err := recordHistory(cmd.Context(), opts.History, out)
		if err != nil {
			_ = formatter.Error(ErrCodeDatabase, err.Error(), nil)
			return WrapExitError(ExitCommandError, "failed to record history", err)
		}
		out.HistoryID = id
		formatter.VerboseLog("Recorded %s in %s", id, opts.History)
	}

	if opts.Format == "json" {
		return formatter.Success(out)
	}
	return formatter.Success(out.SQL)
}

// recordHistory appends out to the history database at path.
func recordHistory(ctx context.Context, path string, out ConversionOutput) (string, error) {
	st, err := store.Open(path)
	if err != nil {
		return "", fmt.Errorf("open history: %w", err)
	}
	defer st.Close()

	rec, err := st.RecordConversion(ctx, store.Conversion{
		Expression: out.Expression,
		Table:      out.Table,
		Pattern:    out.Pattern,
		SQL:        out.SQL,
		Supported:  out.Supported,
	})
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}
