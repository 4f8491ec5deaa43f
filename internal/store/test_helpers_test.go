package store

import (
	"database/sql"
	"path/filepath"
	"testing"
)

// createTestStore creates a new history store in a temp directory.
func createTestStore(t *testing.T, opts ...Option) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path, opts...)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// createTestDataset writes a small employees table to a fresh database file
// and returns its path.
func createTestDataset(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "employees.db")

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		t.Fatalf("sql.Open() failed: %v", err)
	}
	defer db.Close()

	stmts := []string{
		`CREATE TABLE employees (name TEXT, department TEXT, salary INTEGER, age INTEGER, bonus REAL)`,
		`INSERT INTO employees VALUES ('ada', 'eng', 120, 36, 1.5)`,
		`INSERT INTO employees VALUES ('bob', 'eng', 90, 24, NULL)`,
		`INSERT INTO employees VALUES ('cy', 'ops', 70, 41, 0.5)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("seed %q: %v", stmt, err)
		}
	}
	return path
}

// createTestConversion creates a conversion with minimal required fields.
func createTestConversion(expression, sqlText string) Conversion {
	return Conversion{
		Expression: expression,
		Table:      "employees",
		Pattern:    "column_select",
		SQL:        sqlText,
		Supported:  true,
	}
}
