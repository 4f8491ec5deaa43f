package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/pandasql/internal/convert"
)

func TestConvert_Text(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "column aggregate",
			args: []string{"df['salary'].mean()"},
			want: "SELECT AVG(salary) FROM employees;\n",
		},
		{
			name: "groupby with table",
			args: []string{"df.groupby('department')['salary'].sum()", "-t", "staff"},
			want: "SELECT department, SUM(salary) FROM staff GROUP BY department;\n",
		},
		{
			name: "filter",
			args: []string{"df[df['age'] > 30]"},
			want: "SELECT * FROM employees WHERE age > 30;\n",
		},
		{
			name: "sort descending",
			args: []string{"df.sort_values('salary', ascending=False)", "--table", "people"},
			want: "SELECT * FROM people ORDER BY salary DESC;\n",
		},
		{
			name: "unsupported exits zero",
			args: []string{"df.head()"},
			want: convert.Unsupported + "\n",
		},
		{
			name: "custom namespace",
			args: []string{"sales['region']", "--namespace", "sales"},
			want: "SELECT region FROM employees;\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestConvert_JSON(t *testing.T) {
	out, _, err := execute(t, "df[df['age'] > 30]['salary'].count()", "--format", "json")
	require.NoError(t, err)

	var data ConversionOutput
	resp := decodeResponse(t, out, &data)
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "filter_aggregate", data.Pattern)
	assert.Equal(t, "SELECT COUNT(salary) FROM employees WHERE age > 30;", data.SQL)
	assert.True(t, data.Supported)
	assert.Equal(t, "employees", data.Table)
	assert.Contains(t, out, "age > 30", "comparison operators must not be HTML-escaped")
}

func TestConvert_JSONUnsupported(t *testing.T) {
	out, _, err := execute(t, "print(df)", "--format", "json")
	require.NoError(t, err)

	var data ConversionOutput
	resp := decodeResponse(t, out, &data)
	assert.Equal(t, "ok", resp.Status)
	assert.False(t, data.Supported)
	assert.Equal(t, "unsupported", data.Pattern)
	assert.Equal(t, convert.Unsupported, data.SQL)
}

func TestConvert_JSONWarnings(t *testing.T) {
	out, _, err := execute(t, "df['x'].median()", "--format", "json")
	require.NoError(t, err)

	var data ConversionOutput
	decodeResponse(t, out, &data)
	assert.Equal(t, "SELECT MEDIAN(x) FROM employees;", data.SQL)
	assert.NotEmpty(t, data.Warnings)
}

func TestConvert_Verbose(t *testing.T) {
	out, stderr, err := execute(t, "df['salary'].mean()", "-v")
	require.NoError(t, err)
	assert.Equal(t, "SELECT AVG(salary) FROM employees;\n", out)
	assert.Contains(t, stderr, "Pattern: column_aggregate")
	assert.Contains(t, stderr, "pattern matched")
}

func TestConvert_QuietByDefault(t *testing.T) {
	_, stderr, err := execute(t, "df['salary'].mean()")
	require.NoError(t, err)
	assert.Empty(t, stderr)
}

func TestConvert_History(t *testing.T) {
	db := filepath.Join(t.TempDir(), "history.db")

	_, _, err := execute(t, "df['a']", "--history", db)
	require.NoError(t, err)
	_, _, err = execute(t, "df.head()", "--history", db)
	require.NoError(t, err)

	out, _, err := execute(t, "history", db, "--format", "json")
	require.NoError(t, err)

	var entries []struct {
		Seq        int64  `json:"seq"`
		Expression string `json:"expression"`
		Pattern    string `json:"pattern"`
		Supported  bool   `json:"supported"`
	}
	decodeResponse(t, out, &entries)
	require.Len(t, entries, 2)
	assert.Equal(t, "df.head()", entries[0].Expression)
	assert.False(t, entries[0].Supported)
	assert.Equal(t, "unsupported", entries[0].Pattern)
	assert.Equal(t, "df['a']", entries[1].Expression)
	assert.True(t, entries[1].Supported)
}

func TestConvert_HistoryJSONIncludesID(t *testing.T) {
	db := filepath.Join(t.TempDir(), "history.db")

	out, _, err := execute(t, "df['a']", "--history", db, "--format", "json")
	require.NoError(t, err)

	var data ConversionOutput
	decodeResponse(t, out, &data)
	assert.Len(t, data.HistoryID, 36)
}

func TestConvert_HistoryBadPath(t *testing.T) {
	_, _, err := execute(t, "df['a']", "--history", "/nonexistent/dir/history.db")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
