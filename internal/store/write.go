package store

import (
	"context"
	"fmt"
)

// Conversion is one recorded translation.
type Conversion struct {
	ID         string `json:"id"`
	Seq        int64  `json:"seq"`
	Expression string `json:"expression"`
	Table      string `json:"table"`
	Pattern    string `json:"pattern"`
	SQL        string `json:"sql"`
	Supported  bool   `json:"supported"`
}

// RecordConversion appends a conversion to the history.
//
// ID is generated when empty; Seq is always assigned as one past the
// current maximum. The stored record is returned.
func (s *Store) RecordConversion(ctx context.Context, c Conversion) (Conversion, error) {
	if c.ID == "" {
		c.ID = s.ids.Generate()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Conversion{}, fmt.Errorf("record conversion: %w", err)
	}
	defer tx.Rollback()

	if err := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(seq), 0) + 1 FROM conversions`).Scan(&c.Seq); err != nil {
		return Conversion{}, fmt.Errorf("record conversion: next seq: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO conversions
		(id, seq, expression, table_name, pattern, sql_text, supported)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`,
		c.ID,
		c.Seq,
		c.Expression,
		c.Table,
		c.Pattern,
		c.SQL,
		c.Supported,
	)
	if err != nil {
		return Conversion{}, fmt.Errorf("record conversion: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return Conversion{}, fmt.Errorf("record conversion: commit: %w", err)
	}

	return c, nil
}
