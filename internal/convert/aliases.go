package convert

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// funcAliases maps pandas aggregate method names to SQL aggregate keywords.
var funcAliases = map[string]string{
	"mean":   "AVG",
	"sum":    "SUM",
	"count":  "COUNT",
	"min":    "MIN",
	"max":    "MAX",
	"median": "MEDIAN",
}

// SQLFunc maps a pandas aggregate method name to its SQL keyword.
// Names missing from the alias table are upper-cased and returned as is.
func SQLFunc(name string) string {
	if fn, ok := funcAliases[name]; ok {
		return fn
	}
	// Casers are stateful; one per call keeps SQLFunc safe for concurrent use.
	return cases.Upper(language.Und).String(name)
}

// CleanQuotes trims surrounding whitespace and removes one matching pair of
// single or double quotes. Anything else is returned trimmed but otherwise
// unchanged.
func CleanQuotes(s string) string {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return s
	}
	if (s[0] == '\'' && s[len(s)-1] == '\'') || (s[0] == '"' && s[len(s)-1] == '"') {
		return s[1 : len(s)-1]
	}
	return s
}
