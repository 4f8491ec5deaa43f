package convert

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/grafana/regexp"
	"golang.org/x/text/unicode/norm"

	"github.com/roach88/pandasql/internal/queryir"
	"github.com/roach88/pandasql/internal/querysql"
)

const (
	// DefaultTable is used when the caller passes an empty table name.
	DefaultTable = "employees"

	// DefaultNamespace is the dataframe name expressions are written against.
	DefaultNamespace = "df"

	// Unsupported is returned by Convert for input no recognizer accepts.
	Unsupported = "ERROR: Unsupported or unrecognized Python pattern. Please try a simpler expression."
)

// ErrUnsupportedPattern is returned by Translate when no recognizer matches.
var ErrUnsupportedPattern = errors.New("unsupported or unrecognized python pattern")

// Result is a successful translation.
type Result struct {
	Expression string          `json:"expression"`
	Table      string          `json:"table"`
	Pattern    queryir.Pattern `json:"pattern"`
	SQL        string          `json:"sql"`
	Statement  queryir.Select  `json:"statement"`
	Warnings   []string        `json:"warnings,omitempty"`
}

// RecognizerInfo describes one supported expression shape.
type RecognizerInfo struct {
	Pattern  queryir.Pattern `json:"pattern"`
	Template string          `json:"template"`
	Example  string          `json:"example"`
}

// Converter translates expressions written against one namespace.
// A Converter is immutable after New and safe for concurrent use.
type Converter struct {
	namespace   string
	table       string
	logger      *slog.Logger
	compiler    *querysql.SQLCompiler
	recognizers []recognizer
	seriesRef   *regexp.Regexp
}

// Option configures a Converter.
type Option func(*Converter)

// WithNamespace sets the dataframe name recognized at the start of
// expressions. An empty name keeps DefaultNamespace.
func WithNamespace(ns string) Option {
	return func(c *Converter) {
		if ns != "" {
			c.namespace = ns
		}
	}
}

// WithDefaultTable sets the table used when Translate receives an empty
// table name. An empty name keeps DefaultTable.
func WithDefaultTable(table string) Option {
	return func(c *Converter) {
		if table != "" {
			c.table = table
		}
	}
}

// WithLogger sets the logger for match diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Converter) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a Converter and compiles its templates.
func New(opts ...Option) *Converter {
	c := &Converter{
		namespace: DefaultNamespace,
		table:     DefaultTable,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		compiler:  querysql.NewSQLCompiler(),
	}
	for _, opt := range opts {
		opt(c)
	}

	ns := regexp.QuoteMeta(c.namespace)
	c.recognizers = make([]recognizer, len(recognizerDefs))
	for i, def := range recognizerDefs {
		c.recognizers[i] = recognizer{
			pattern:  def.pattern,
			template: def.template,
			example:  def.example,
			re:       regexp.MustCompile(def.source(ns)),
			build:    def.build,
		}
	}
	c.seriesRef = regexp.MustCompile(ns + `\[['"]` + ident + `['"]\]`)

	return c
}

// Namespace returns the dataframe name this converter recognizes.
func (c *Converter) Namespace() string {
	return c.namespace
}

// DefaultTable returns the table used for empty table arguments.
func (c *Converter) DefaultTable() string {
	return c.table
}

// Translate converts expression to SQL against table.
//
// The expression is NFC-normalized and trimmed, then offered to each
// recognizer in priority order. An empty table selects the converter's
// default table. Returns ErrUnsupportedPattern if nothing matches.
func (c *Converter) Translate(expression, table string) (Result, error) {
	if table == "" {
		table = c.table
	}
	code := strings.TrimSpace(norm.NFC.String(expression))

	for _, r := range c.recognizers {
		m := r.re.FindStringSubmatch(code)
		if m == nil {
			continue
		}

		stmt, ok := r.build(c, m, table)
		if !ok {
			c.logger.Debug("recognizer declined match", "pattern", r.pattern)
			continue
		}

		sql, err := c.compiler.Compile(stmt)
		if err != nil {
			return Result{}, fmt.Errorf("render %s: %w", r.pattern, err)
		}

		c.logger.Debug("pattern matched", "pattern", r.pattern, "table", table)

		return Result{
			Expression: expression,
			Table:      table,
			Pattern:    r.pattern,
			SQL:        sql,
			Statement:  stmt,
			Warnings:   queryir.Validate(stmt).Warnings,
		}, nil
	}

	c.logger.Debug("no pattern matched", "expression", code)
	return Result{}, ErrUnsupportedPattern
}

// Convert converts expression to SQL against table. It never fails: input
// that cannot be translated yields the Unsupported string.
func (c *Converter) Convert(expression, table string) string {
	res, err := c.Translate(expression, table)
	if err != nil {
		return Unsupported
	}
	return res.SQL
}

// Recognizers lists the supported shapes in priority order.
func (c *Converter) Recognizers() []RecognizerInfo {
	infos := make([]RecognizerInfo, len(c.recognizers))
	for i, r := range c.recognizers {
		infos[i] = RecognizerInfo{
			Pattern:  r.pattern,
			Template: fmt.Sprintf(r.template, c.namespace),
			Example:  fmt.Sprintf(r.example, c.namespace),
		}
	}
	return infos
}

var defaultConverter = New()

// PythonToSQL converts a df-namespaced expression to SQL. An empty
// tableName means DefaultTable. Unrecognized input yields Unsupported.
func PythonToSQL(expression, tableName string) string {
	return defaultConverter.Convert(expression, tableName)
}
