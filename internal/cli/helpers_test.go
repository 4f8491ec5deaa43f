package cli

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	_ "github.com/mattn/go-sqlite3"
)

// execute runs the root command with args and returns stdout, stderr and
// the command error.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// decodeResponse decodes a CLIResponse whose data is unmarshalled into data.
func decodeResponse(t *testing.T, out string, data any) CLIResponse {
	t.Helper()

	var raw struct {
		Status string          `json:"status"`
		Data   json.RawMessage `json:"data"`
		Error  *CLIError       `json:"error"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &raw), "output: %s", out)

	if data != nil && len(raw.Data) > 0 {
		require.NoError(t, json.Unmarshal(raw.Data, data))
	}
	return CLIResponse{Status: raw.Status, Error: raw.Error}
}

// writeFile writes content to name inside a fresh temp directory.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// createDataset creates a SQLite file holding a small employees table.
func createDataset(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "employees.db")

	// A plain rollback-journal file, like most datasets users bring
	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	stmts := []string{
		`CREATE TABLE employees (name TEXT, dept TEXT, salary INTEGER, age INTEGER)`,
		`INSERT INTO employees VALUES ('ada', 'eng', 120, 36)`,
		`INSERT INTO employees VALUES ('bob', 'eng', 90, 24)`,
		`INSERT INTO employees VALUES ('cy', 'ops', 70, 41)`,
	}
	for _, stmt := range stmts {
		_, err := db.Exec(stmt)
		require.NoError(t, err)
	}
	return path
}
