package queryir

import "fmt"

// Query represents a statement in the QueryIR.
//
// This is a sealed interface - only types in this package implement it.
type Query interface {
	queryNode() // Marker method - seals interface to this package
}

// Predicate represents a WHERE condition in the QueryIR.
//
// This is a sealed interface - only types in this package implement it.
// The only predicate is Raw: conditions arrive as already-normalized text.
type Predicate interface {
	predicateNode() // Marker method - seals interface to this package
}

// Pattern identifies which expression shape produced a statement.
type Pattern int

const (
	PatternUnknown Pattern = iota
	PatternGroupByAggregate
	PatternSort
	PatternFilterAggregate
	PatternFilter
	PatternColumnAggregate
	PatternColumnSelect
)

var patternNames = map[Pattern]string{
	PatternUnknown:          "unknown",
	PatternGroupByAggregate: "groupby_aggregate",
	PatternSort:             "sort",
	PatternFilterAggregate:  "filter_aggregate",
	PatternFilter:           "filter",
	PatternColumnAggregate:  "column_aggregate",
	PatternColumnSelect:     "column_select",
}

// String returns the snake_case name of the pattern.
func (p Pattern) String() string {
	if name, ok := patternNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Pattern(%d)", int(p))
}

// MarshalText renders the pattern by name so JSON output stays readable.
func (p Pattern) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// Wildcard is the column name that selects every column.
const Wildcard = "*"

// Column is one entry of the SELECT list.
//
// Func holds the SQL aggregate keyword (already mapped, e.g. "AVG").
// An empty Func selects the column as is.
type Column struct {
	Name string `json:"name"`
	Func string `json:"func,omitempty"`
}

// String renders the column as it appears in a SELECT list.
func (c Column) String() string {
	if c.Func == "" {
		return c.Name
	}
	return c.Func + "(" + c.Name + ")"
}

// Order is one ORDER BY term.
type Order struct {
	Column     string `json:"column"`
	Descending bool   `json:"descending,omitempty"`
}

// String renders the term with an explicit direction.
func (o Order) String() string {
	if o.Descending {
		return o.Column + " DESC"
	}
	return o.Column + " ASC"
}

// Select represents a single-table SELECT statement.
//
// Semantics:
//
//	SELECT <columns> FROM <from> [WHERE <filter>] [GROUP BY <groupBy>] [ORDER BY <orderBy>]
//
// Example:
//
//	Select{
//	  Columns: []Column{{Name: "dept"}, {Name: "salary", Func: "SUM"}},
//	  From:    "employees",
//	  GroupBy: []string{"dept"},
//	}
//
// Translates to SQL:
//
//	SELECT dept, SUM(salary) FROM employees GROUP BY dept;
type Select struct {
	Columns []Column  `json:"columns"`
	From    string    `json:"from"`
	Filter  Predicate `json:"filter,omitempty"` // nil = no WHERE clause
	GroupBy []string  `json:"group_by,omitempty"`
	OrderBy []Order   `json:"order_by,omitempty"`
}

func (Select) queryNode() {}

// Raw is a condition carried verbatim into the WHERE clause.
//
// Text may be empty; the clause is still emitted so that the rendered
// statement reflects exactly what the expression contained.
type Raw struct {
	Text string `json:"text"`
}

func (Raw) predicateNode() {}
