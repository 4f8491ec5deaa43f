package queryir

import (
	"fmt"
	"strings"
)

// StandardAggregates lists the aggregate keywords every mainstream SQL engine
// accepts. Anything else (MEDIAN, pass-through names) is flagged by Validate.
var StandardAggregates = map[string]bool{
	"AVG":   true,
	"SUM":   true,
	"COUNT": true,
	"MIN":   true,
	"MAX":   true,
}

// ValidationResult contains portability analysis of a query.
type ValidationResult struct {
	// IsPortable indicates the statement uses only standard SQL features.
	IsPortable bool

	// Warnings lists non-portable features used in the query.
	// Empty when IsPortable is true.
	Warnings []string
}

// Validate checks a query for features that will not run on every engine.
//
// Rules:
//  1. Aggregate functions must be in StandardAggregates
//  2. FROM must name a table
//  3. The SELECT list must not be empty
//
// Validate is a pure function with no side effects.
func Validate(query Query) ValidationResult {
	v := &validator{
		warnings: []string{},
	}
	v.validateQuery(query)

	return ValidationResult{
		IsPortable: len(v.warnings) == 0,
		Warnings:   v.warnings,
	}
}

// validator accumulates warnings during traversal.
type validator struct {
	warnings []string
}

func (v *validator) addWarning(format string, args ...any) {
	v.warnings = append(v.warnings, fmt.Sprintf(format, args...))
}

func (v *validator) validateQuery(q Query) {
	if q == nil {
		v.addWarning("nil query")
		return
	}

	switch query := q.(type) {
	case Select:
		v.validateSelect(query)
	case *Select:
		if query == nil {
			v.addWarning("nil query")
			return
		}
		v.validateSelect(*query)
	default:
		v.addWarning("Unknown query type: %T - portability cannot be verified", q)
	}
}

func (v *validator) validateSelect(sel Select) {
	if len(sel.Columns) == 0 {
		v.addWarning("Empty column list - SELECT requires at least one column")
	}

	if strings.TrimSpace(sel.From) == "" {
		v.addWarning("Empty table name - FROM clause has nothing to read")
	}

	for _, col := range sel.Columns {
		if col.Func != "" && !StandardAggregates[col.Func] {
			v.addWarning("Aggregate %s(%s) is not standard SQL - engine support varies", col.Func, col.Name)
		}
	}

	if sel.Filter != nil {
		v.validatePredicate(sel.Filter)
	}
}

func (v *validator) validatePredicate(p Predicate) {
	switch pred := p.(type) {
	case Raw:
		v.validateRaw(pred)
	case *Raw:
		if pred != nil {
			v.validateRaw(*pred)
		}
	default:
		v.addWarning("Unknown predicate type: %T - portability cannot be verified", p)
	}
}

func (v *validator) validateRaw(r Raw) {
	if strings.TrimSpace(r.Text) == "" {
		v.addWarning("Empty WHERE condition")
	}
}
