// Package queryir provides the small statement model that pandasql's
// recognizers fill in before SQL text is rendered.
//
// The model is deliberately shallow. It records only what the six supported
// expression shapes can express:
//
//	[expression] → [recognizer] → [queryir.Select] → [querysql] → SQL text
//
// A Select has a column list (plain or aggregated), a source table, an
// optional filter, an optional GROUP BY list and an optional ORDER BY list.
// Filters are carried as raw SQL text (Raw) produced by the condition
// normalizer; there is no expression tree.
//
// SEALED INTERFACES:
//
// Query and Predicate are sealed with marker methods, so renderers can use
// exhaustive type switches:
//
//	switch q := query.(type) {
//	case Select:
//	case *Select:
//	default:
//	    // not a queryir type
//	}
//
// PORTABILITY:
//
// Validate reports features that will not run on every SQL engine, such as
// MEDIAN or pass-through aggregate names like STD. Non-portable statements
// still render; the warnings are advisory.
package queryir
