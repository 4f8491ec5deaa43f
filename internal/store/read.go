package store

import (
	"context"
	"fmt"
)

// ListConversions returns recorded conversions, newest first.
// A limit of zero or less returns every record.
//
// Returns an empty slice (not nil) if the history is empty.
func (s *Store) ListConversions(ctx context.Context, limit int) ([]Conversion, error) {
	query := `
		SELECT id, seq, expression, table_name, pattern, sql_text, supported
		FROM conversions
		ORDER BY seq DESC`
	var args []any
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query conversions: %w", err)
	}
	defer rows.Close()

	conversions := []Conversion{}
	for rows.Next() {
		var c Conversion
		if err := rows.Scan(&c.ID, &c.Seq, &c.Expression, &c.Table, &c.Pattern, &c.SQL, &c.Supported); err != nil {
			return nil, fmt.Errorf("scan conversion: %w", err)
		}
		conversions = append(conversions, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate conversions: %w", err)
	}

	return conversions, nil
}

// Rows is a query result rendered as text.
type Rows struct {
	Columns []string   `json:"columns"`
	Values  [][]string `json:"rows"`
}

// QueryRows runs query and returns every row with values rendered as text.
// NULL is rendered as "NULL".
func (s *Store) QueryRows(ctx context.Context, query string) (*Rows, error) {
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("query columns: %w", err)
	}
	// go-sqlite3 keeps reporting rows for statements without a result set
	if len(columns) == 0 {
		return nil, fmt.Errorf("query returned no columns")
	}

	result := &Rows{Columns: columns, Values: [][]string{}}
	for rows.Next() {
		raw := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range raw {
			ptrs[i] = &raw[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}

		values := make([]string, len(columns))
		for i, v := range raw {
			values[i] = formatValue(v)
		}
		result.Values = append(result.Values, values)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}

	return result, nil
}

func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "NULL"
	case []byte:
		return string(val)
	default:
		return fmt.Sprint(val)
	}
}
