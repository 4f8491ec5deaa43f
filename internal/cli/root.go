package cli

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"github.com/roach88/pandasql/internal/config"
	"github.com/roach88/pandasql/internal/convert"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose   bool
	Format    string // "json" | "text"
	Table     string
	Namespace string
	Config    string // optional CUE config file
	History   string // optional history database

	logger *slog.Logger
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the pandasql CLI.
//
// Invoked with a single expression argument, the root command converts it.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "pandasql <expression>",
		Short: "Convert pandas expressions to SQL",
		Long: `Convert single-line pandas DataFrame expressions to SQL.

Six expression shapes are recognized: column select, column aggregate,
filter, filter with aggregate, group-by aggregate and sort. Anything else
prints an unsupported-pattern message. Conversion always exits 0.

An empty --table ("-t ''") uses the default table, employees or the table
set in the config file, rather than leaving FROM empty.

Examples:
  pandasql "df['salary'].mean()"
  pandasql "df[df['age'] > 30]" -t staff
  pandasql "df.groupby('department')['salary'].sum()" --format json
  pandasql "df['name']" --history ./history.db`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(opts, args[0], cmd)
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVarP(&opts.Table, "table", "t", convert.DefaultTable, "table name used in FROM")
	cmd.PersistentFlags().StringVar(&opts.Namespace, "namespace", convert.DefaultNamespace, "dataframe name expressions are written against")
	cmd.PersistentFlags().StringVar(&opts.Config, "config", "", "path to CUE config file")
	cmd.PersistentFlags().StringVar(&opts.History, "history", "", "record conversions in this SQLite database")

	// Add subcommands
	cmd.AddCommand(NewBatchCommand(opts))
	cmd.AddCommand(NewExecCommand(opts))
	cmd.AddCommand(NewHistoryCommand(opts))
	cmd.AddCommand(NewPatternsCommand(opts))

	return cmd
}

// resolve applies the config file under explicit flags, validates the
// format and sets up logging.
func (opts *RootOptions) resolve(cmd *cobra.Command) error {
	if opts.Config != "" {
		cfg, err := config.Load(opts.Config)
		if err != nil {
			formatter := opts.formatter(cmd)
			_ = formatter.Error(ErrCodeConfig, err.Error(), nil)
			return WrapExitError(ExitCommandError, "invalid config", err)
		}

		flags := cmd.Flags()
		if !flags.Changed("table") || opts.Table == "" {
			opts.Table = cfg.Table
		}
		if !flags.Changed("namespace") {
			opts.Namespace = cfg.Namespace
		}
		if !flags.Changed("format") {
			opts.Format = cfg.Format
		}
	}

	if !isValidFormat(opts.Format) {
		message := fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
		_ = opts.formatter(cmd).Error(ErrCodeGeneric, message, nil)
		return NewExitError(ExitCommandError, message)
	}

	logLevel := slog.LevelWarn
	if opts.Verbose {
		logLevel = slog.LevelDebug
	}
	opts.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: logLevel,
	}))

	return nil
}

// converter builds a Converter from the resolved options.
func (opts *RootOptions) converter() *convert.Converter {
	return convert.New(
		convert.WithNamespace(opts.Namespace),
		convert.WithDefaultTable(opts.Table),
		convert.WithLogger(opts.logger),
	)
}

func (opts *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting JSON
		Verbose:   opts.Verbose,
	}
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	return slices.Contains(ValidFormats, format)
}
