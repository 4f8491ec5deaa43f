package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatternsCommandText(t *testing.T) {
	out, _, err := execute(t, "patterns")
	require.NoError(t, err)

	assert.Contains(t, out, "1. groupby_aggregate")
	assert.Contains(t, out, "6. column_select")
	assert.Contains(t, out, "df.groupby('G')['C'].func()")
	assert.Contains(t, out, "SELECT dept, SUM(salary) FROM employees GROUP BY dept;")
}

func TestPatternsCommandNamespaceAndTable(t *testing.T) {
	out, _, err := execute(t, "patterns", "--namespace", "sales", "-t", "orders")
	require.NoError(t, err)

	assert.Contains(t, out, "sales.sort_values('salary', ascending=False)")
	assert.Contains(t, out, "SELECT * FROM orders ORDER BY salary DESC;")
	assert.NotContains(t, out, "df[")
}

func TestPatternsCommandJSON(t *testing.T) {
	out, _, err := execute(t, "patterns", "--format", "json")
	require.NoError(t, err)

	var infos []struct {
		Pattern  string `json:"pattern"`
		Template string `json:"template"`
		Example  string `json:"example"`
	}
	resp := decodeResponse(t, out, &infos)
	assert.Equal(t, "ok", resp.Status)
	require.Len(t, infos, 6)

	want := []string{"groupby_aggregate", "sort", "filter_aggregate", "filter", "column_aggregate", "column_select"}
	for i, info := range infos {
		assert.Equal(t, want[i], info.Pattern)
	}
}

func TestPatternsCommandRejectsArgs(t *testing.T) {
	_, _, err := execute(t, "patterns", "extra")
	require.Error(t, err)
}
