package querysql

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/roach88/pandasql/internal/queryir"
)

// Terminator ends every rendered statement.
const Terminator = ";"

// SQLCompiler renders QueryIR statements to SQL text.
//
// Identifiers and conditions are interpolated verbatim. Nothing is quoted,
// escaped or parameterized: the input expressions carry literal values and the
// output is meant to be read or pasted, not executed with bind arguments.
type SQLCompiler struct{}

// NewSQLCompiler creates a new SQLCompiler.
func NewSQLCompiler() *SQLCompiler {
	return &SQLCompiler{}
}

// Compile converts a QueryIR query to a single SQL statement terminated by
// exactly one semicolon.
func (c *SQLCompiler) Compile(q queryir.Query) (string, error) {
	if q == nil {
		return "", fmt.Errorf("cannot compile nil query")
	}

	switch query := q.(type) {
	case queryir.Select:
		return c.compileSelect(query)
	case *queryir.Select:
		if query == nil {
			return "", fmt.Errorf("cannot compile nil query")
		}
		return c.compileSelect(*query)
	default:
		return "", fmt.Errorf("unsupported query type: %T", q)
	}
}

// compileSelect builds the statement with squirrel's SelectBuilder.
func (c *SQLCompiler) compileSelect(q queryir.Select) (string, error) {
	if len(q.Columns) == 0 {
		return "", fmt.Errorf("select has no columns")
	}

	columns := make([]string, len(q.Columns))
	for i, col := range q.Columns {
		columns[i] = col.String()
	}

	builder := sq.Select(columns...).From(q.From)

	if q.Filter != nil {
		where, err := c.compilePredicate(q.Filter)
		if err != nil {
			return "", fmt.Errorf("compile filter: %w", err)
		}
		builder = builder.Where(where)
	}

	if len(q.GroupBy) > 0 {
		builder = builder.GroupBy(q.GroupBy...)
	}

	if len(q.OrderBy) > 0 {
		orders := make([]string, len(q.OrderBy))
		for i, o := range q.OrderBy {
			orders[i] = o.String()
		}
		builder = builder.OrderBy(orders...)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return "", fmt.Errorf("build select: %w", err)
	}
	if len(args) > 0 {
		return "", fmt.Errorf("unexpected bind arguments: %d", len(args))
	}

	return sql + Terminator, nil
}

// compilePredicate converts a predicate to a squirrel Sqlizer.
//
// Raw text is wrapped in sq.Expr rather than passed as a string: squirrel
// drops empty string predicates, while an empty Raw must still yield a
// WHERE keyword.
func (c *SQLCompiler) compilePredicate(p queryir.Predicate) (sq.Sqlizer, error) {
	switch pred := p.(type) {
	case queryir.Raw:
		return sq.Expr(pred.Text), nil
	case *queryir.Raw:
		if pred == nil {
			return nil, fmt.Errorf("nil predicate")
		}
		return sq.Expr(pred.Text), nil
	default:
		return nil, fmt.Errorf("unsupported predicate type: %T", p)
	}
}
