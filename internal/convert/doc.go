// Package convert translates pandas-style expressions into SQL.
//
// Translation is purely textual. A Converter holds six recognizers, each a
// regular expression template anchored at the start of the trimmed input,
// tried in a fixed priority order:
//
//  1. df.groupby('G')['C'].func()      SELECT G, FUNC(C) FROM t GROUP BY G;
//  2. df.sort_values('C'[, ascending]) SELECT * FROM t ORDER BY C ASC|DESC;
//  3. df[COND]['C'].func()             SELECT FUNC(C) FROM t WHERE COND;
//  4. df[COND]                         SELECT * FROM t WHERE COND;
//  5. df['C'].func()                   SELECT FUNC(C) FROM t;
//  6. df['C']                          SELECT C FROM t;
//
// The first recognizer that matches builds a queryir.Select which querysql
// renders. Conditions pass through Normalize, which rewrites series
// references to bare column names and maps ==, & and | to =, AND and OR.
// Parentheses are trusted as written; there is no precedence handling.
//
// Input that no recognizer accepts yields Unsupported from Convert and
// PythonToSQL, or ErrUnsupportedPattern from Translate.
//
// Aggregate names go through the alias table (mean→AVG, sum→SUM,
// count→COUNT, min→MIN, max→MAX, median→MEDIAN). Unknown names are
// upper-cased and passed through, so df['x'].std() renders STD(x).
//
// Table and column names are interpolated verbatim. Nothing is escaped.
package convert
