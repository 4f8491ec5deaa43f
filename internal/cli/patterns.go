package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewPatternsCommand creates the patterns command.
func NewPatternsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "patterns",
		Short: "List recognized expression shapes in priority order",
		Long: `List the expression shapes the converter recognizes, in the order
they are tried. The first shape that matches decides the SQL.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPatterns(rootOpts, cmd)
		},
	}

	return cmd
}

func runPatterns(opts *RootOptions, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)
	c := opts.converter()
	infos := c.Recognizers()

	if opts.Format == "json" {
		return formatter.Success(infos)
	}

	w := cmd.OutOrStdout()
	for i, info := range infos {
		fmt.Fprintf(w, "%d. %s\n", i+1, info.Pattern)
		fmt.Fprintf(w, "   %s\n", info.Template)
		fmt.Fprintf(w, "   %s  ->  %s\n", info.Example, c.Convert(info.Example, ""))
	}
	return nil
}
