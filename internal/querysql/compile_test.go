package querysql

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/pandasql/internal/queryir"
)

func TestCompile_Shapes(t *testing.T) {
	compiler := NewSQLCompiler()

	tests := []struct {
		name  string
		query queryir.Query
		want  string
	}{
		{
			name: "group by aggregate",
			query: queryir.Select{
				Columns: []queryir.Column{{Name: "dept"}, {Name: "salary", Func: "SUM"}},
				From:    "employees",
				GroupBy: []string{"dept"},
			},
			want: "SELECT dept, SUM(salary) FROM employees GROUP BY dept;",
		},
		{
			name: "sort descending",
			query: queryir.Select{
				Columns: []queryir.Column{{Name: queryir.Wildcard}},
				From:    "employees",
				OrderBy: []queryir.Order{{Column: "salary", Descending: true}},
			},
			want: "SELECT * FROM employees ORDER BY salary DESC;",
		},
		{
			name: "sort ascending",
			query: queryir.Select{
				Columns: []queryir.Column{{Name: queryir.Wildcard}},
				From:    "employees",
				OrderBy: []queryir.Order{{Column: "salary"}},
			},
			want: "SELECT * FROM employees ORDER BY salary ASC;",
		},
		{
			name: "filter aggregate",
			query: queryir.Select{
				Columns: []queryir.Column{{Name: "salary", Func: "SUM"}},
				From:    "employees",
				Filter:  queryir.Raw{Text: "(age > 30) AND (city = 'Chennai')"},
			},
			want: "SELECT SUM(salary) FROM employees WHERE (age > 30) AND (city = 'Chennai');",
		},
		{
			name: "filter only",
			query: &queryir.Select{
				Columns: []queryir.Column{{Name: queryir.Wildcard}},
				From:    "employees",
				Filter:  &queryir.Raw{Text: "age > 30"},
			},
			want: "SELECT * FROM employees WHERE age > 30;",
		},
		{
			name: "column aggregate",
			query: queryir.Select{
				Columns: []queryir.Column{{Name: "salary", Func: "AVG"}},
				From:    "employees",
			},
			want: "SELECT AVG(salary) FROM employees;",
		},
		{
			name: "column select",
			query: queryir.Select{
				Columns: []queryir.Column{{Name: "age"}},
				From:    "staff",
			},
			want: "SELECT age FROM staff;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, err := compiler.Compile(tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, sql)
			assert.Equal(t, 1, strings.Count(sql, Terminator))
			assert.True(t, strings.HasSuffix(sql, Terminator))
		})
	}
}

func TestCompile_QuestionMarkIsNotAPlaceholder(t *testing.T) {
	sql, err := NewSQLCompiler().Compile(queryir.Select{
		Columns: []queryir.Column{{Name: queryir.Wildcard}},
		From:    "employees",
		Filter:  queryir.Raw{Text: "note = 'why?'"},
	})
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM employees WHERE note = 'why?';", sql)
}

func TestCompile_EmptyConditionKeepsWhere(t *testing.T) {
	sql, err := NewSQLCompiler().Compile(queryir.Select{
		Columns: []queryir.Column{{Name: queryir.Wildcard}},
		From:    "employees",
		Filter:  queryir.Raw{},
	})
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM employees WHERE ;", sql)
}

func TestCompile_Errors(t *testing.T) {
	compiler := NewSQLCompiler()

	_, err := compiler.Compile(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nil query")

	var nilSelect *queryir.Select
	_, err = compiler.Compile(nilSelect)
	require.Error(t, err)

	_, err = compiler.Compile(queryir.Select{From: "employees"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no columns")

	var nilRaw *queryir.Raw
	_, err = compiler.Compile(queryir.Select{
		Columns: []queryir.Column{{Name: "a"}},
		From:    "employees",
		Filter:  nilRaw,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "compile filter")
}
