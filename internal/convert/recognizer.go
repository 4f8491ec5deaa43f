package convert

import (
	"github.com/grafana/regexp"

	"github.com/roach88/pandasql/internal/queryir"
)

// ident matches one identifier: letters, digits and underscore, Unicode-aware.
const ident = `([\p{L}\p{N}_]+)`

// buildFunc turns a template match into a statement. Returning false declines
// the match and lets the next recognizer try.
type buildFunc func(c *Converter, m []string, table string) (queryir.Select, bool)

// recognizer pairs one expression template with its statement builder.
type recognizer struct {
	pattern  queryir.Pattern
	template string // human-readable shape, "%s" is the namespace
	example  string // "%s" is the namespace
	re       *regexp.Regexp
	build    buildFunc
}

// recognizerDef is a recognizer before its regular expression is compiled
// for a namespace. source receives the regex-quoted namespace.
type recognizerDef struct {
	pattern  queryir.Pattern
	template string
	example  string
	source   func(ns string) string
	build    buildFunc
}

// recognizerDefs are tried in declaration order. The order is the tie-break:
// filter+aggregate before filter, column aggregate before column select.
var recognizerDefs = []recognizerDef{
	{
		pattern:  queryir.PatternGroupByAggregate,
		template: "%s.groupby('G')['C'].func()",
		example:  "%s.groupby('dept')['salary'].sum()",
		source: func(ns string) string {
			return `^` + ns + `\.groupby\(\s*['"]` + ident + `['"]\s*\)\s*\[\s*['"]` + ident + `['"]\s*\]\s*\.\s*` + ident + `\s*\(\s*\)`
		},
		build: buildGroupByAggregate,
	},
	{
		pattern:  queryir.PatternSort,
		template: "%s.sort_values('C'[, ascending=True|False])",
		example:  "%s.sort_values('salary', ascending=False)",
		source: func(ns string) string {
			return `^` + ns + `\.sort_values\(\s*['"]` + ident + `['"](?:\s*,\s*ascending\s*=\s*(True|False))?\s*\)`
		},
		build: buildSort,
	},
	{
		pattern:  queryir.PatternFilterAggregate,
		template: "%s[COND]['C'].func()",
		example:  "%[1]s[(%[1]s['age'] > 30) & (%[1]s['city'] == 'Chennai')]['salary'].sum()",
		source: func(ns string) string {
			return `^` + ns + `\[(.+)\]\s*\[\s*['"]` + ident + `['"]\s*\]\s*\.\s*` + ident + `\s*\(\s*\)`
		},
		build: buildFilterAggregate,
	},
	{
		pattern:  queryir.PatternFilter,
		template: "%s[COND]",
		example:  "%[1]s[%[1]s['age'] > 30]",
		source: func(ns string) string {
			return `^` + ns + `\[(.+)\]\s*$`
		},
		build: buildFilter,
	},
	{
		pattern:  queryir.PatternColumnAggregate,
		template: "%s['C'].func()",
		example:  "%s['salary'].mean()",
		source: func(ns string) string {
			return `^` + ns + `\[['"]` + ident + `['"]\]\s*\.\s*` + ident + `\s*\(\s*\)`
		},
		build: buildColumnAggregate,
	},
	{
		pattern:  queryir.PatternColumnSelect,
		template: "%s['C']",
		example:  "%s['age']",
		source: func(ns string) string {
			return `^` + ns + `\[['"]` + ident + `['"]\]\s*$`
		},
		build: buildColumnSelect,
	},
}

// bareColumn matches a filter body that is only a quoted column name, the
// exact shape the column select template accepts.
var bareColumn = regexp.MustCompile(`^['"]` + ident + `['"]$`)

func buildGroupByAggregate(_ *Converter, m []string, table string) (queryir.Select, bool) {
	group, target, fn := m[1], m[2], m[3]
	return queryir.Select{
		Columns: []queryir.Column{{Name: group}, {Name: target, Func: SQLFunc(fn)}},
		From:    table,
		GroupBy: []string{group},
	}, true
}

func buildSort(_ *Converter, m []string, table string) (queryir.Select, bool) {
	col, ascending := m[1], m[2]
	return queryir.Select{
		Columns: []queryir.Column{{Name: queryir.Wildcard}},
		From:    table,
		OrderBy: []queryir.Order{{Column: col, Descending: ascending == "False"}},
	}, true
}

func buildFilterAggregate(c *Converter, m []string, table string) (queryir.Select, bool) {
	cond, target, fn := m[1], m[2], m[3]
	return queryir.Select{
		Columns: []queryir.Column{{Name: target, Func: SQLFunc(fn)}},
		From:    table,
		Filter:  queryir.Raw{Text: c.Normalize(cond)},
	}, true
}

func buildFilter(c *Converter, m []string, table string) (queryir.Select, bool) {
	cond := m[1]
	// df['age'] selects a column; it is not a filter on the string 'age'.
	if bareColumn.MatchString(cond) {
		return queryir.Select{}, false
	}
	return queryir.Select{
		Columns: []queryir.Column{{Name: queryir.Wildcard}},
		From:    table,
		Filter:  queryir.Raw{Text: c.Normalize(cond)},
	}, true
}

func buildColumnAggregate(_ *Converter, m []string, table string) (queryir.Select, bool) {
	col, fn := m[1], m[2]
	return queryir.Select{
		Columns: []queryir.Column{{Name: col, Func: SQLFunc(fn)}},
		From:    table,
	}, true
}

func buildColumnSelect(_ *Converter, m []string, table string) (queryir.Select, bool) {
	return queryir.Select{
		Columns: []queryir.Column{{Name: m[1]}},
		From:    table,
	}, true
}
