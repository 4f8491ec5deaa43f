package convert

import "strings"

// Normalize rewrites a pandas boolean condition into SQL condition text
// using the converter's namespace.
//
// Rewrites, in order:
//  1. ns['field'] and ns["field"] become field
//  2. == becomes =
//  3. & becomes AND
//  4. | becomes OR
//  5. any remaining "ns." prefix is dropped
//
// Series references are rewritten first so that the operator replacements
// never see bracketed field names.
func (c *Converter) Normalize(condition string) string {
	condition = c.seriesRef.ReplaceAllString(condition, "${1}")
	condition = strings.ReplaceAll(condition, "==", "=")
	condition = strings.ReplaceAll(condition, "&", "AND")
	condition = strings.ReplaceAll(condition, "|", "OR")
	condition = strings.ReplaceAll(condition, c.namespace+".", "")
	return condition
}

// Normalize rewrites condition with the default "df" namespace.
func Normalize(condition string) string {
	return defaultConverter.Normalize(condition)
}
