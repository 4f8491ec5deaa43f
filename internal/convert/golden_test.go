package convert

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// corpus covers every recognizer plus the fall-through cases. Regenerate with:
//
//	go test ./internal/convert -run TestConvert_GoldenCorpus -update
var corpus = []string{
	"df['salary'].mean()",
	"df.groupby('dept')['salary'].sum()",
	`df.groupby("dept")["age"].median()`,
	"df.sort_values('salary')",
	"df.sort_values('salary', ascending=True)",
	"df.sort_values('salary', ascending=False)",
	"df[(df['age'] > 30) & (df['city'] == 'Chennai')]['salary'].sum()",
	"df[df['age'] > 30]['salary'].count()",
	"df[df['age'] > 30]",
	"df[(df['dept'] == 'HR') | (df['dept'] == 'IT')]",
	"df[df.age > 30]",
	"df['x'].std()",
	"df['age']",
	"not_a_pattern(1,2,3)",
	"df.head()",
}

func TestConvert_GoldenCorpus(t *testing.T) {
	c := New()

	var buf bytes.Buffer
	for _, expr := range corpus {
		fmt.Fprintf(&buf, "%s\n  %s\n", expr, c.Convert(expr, ""))
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "corpus", buf.Bytes())
}
