package evaluation

import (
	"testing"

	"github.com/PulchraScientia/BDAstudio-demo2/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPerturbSQL(t *testing.T) {
	tests := []struct {
		name string
		sql  string
		want string
	}{
		{
			name: "where with equals",
			sql:  "SELECT * FROM t WHERE id=1",
			want: "SELECT * FROM t WHERE LOWER( id) =1",
		},
		{
			name: "equals with spaces",
			sql:  "SELECT * FROM t WHERE name = 'x'",
			want: "SELECT * FROM t WHERE LOWER( name ) = 'x'",
		},
		{
			name: "where without equals",
			sql:  "SELECT * FROM t WHERE a > 1",
			want: "SELECT * FROM t WHERE LOWER( a > 1",
		},
		{
			name: "no space after where",
			sql:  "SELECT * FROM t WHERE(id=1)",
			want: "SELECT * FROM t WHERE LOWER((id) =1)",
		},
		{
			name: "no where is untouched",
			sql:  "SELECT COUNT(*) FROM t",
			want: "SELECT COUNT(*) FROM t",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PerturbSQL(tt.sql))
		})
	}
}

func TestIsCorrectDeterministic(t *testing.T) {
	inputs := []string{
		"How many customers made a purchase last week?",
		"Show me sales by product category",
		"What's the average purchase value?",
		"",
	}
	for _, nl := range inputs {
		first := IsCorrect(nl)
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, IsCorrect(nl), "verdict changed for %q", nl)
		}
	}
}

func TestRunMatchesTestSet(t *testing.T) {
	material := entity.Material{
		TestSet: []entity.QueryPair{
			{NL: "q one", SQL: "SELECT * FROM t WHERE id=1"},
			{NL: "q two", SQL: "SELECT COUNT(*) FROM t"},
			{NL: "q three", SQL: "SELECT a FROM t GROUP BY a"},
		},
	}

	first := Run(material)
	require.Len(t, first.TestResults, len(material.TestSet))

	for i, res := range first.TestResults {
		assert.Equal(t, material.TestSet[i].NL, res.NL, "order must follow the test set")
		assert.Equal(t, material.TestSet[i].SQL, res.ExpectedSQL)
		if res.IsCorrect {
			assert.Equal(t, res.ExpectedSQL, res.GeneratedSQL)
		}
	}

	assert.GreaterOrEqual(t, first.Accuracy, 0.0)
	assert.LessOrEqual(t, first.Accuracy, 1.0)

	second := Run(material)
	for i := range first.TestResults {
		assert.Equal(t, first.TestResults[i].IsCorrect, second.TestResults[i].IsCorrect,
			"evaluation must be reproducible per row")
	}
	assert.Equal(t, first.Accuracy, second.Accuracy)
}

// An incorrect row whose SQL has no WHERE clause keeps the expected SQL
// verbatim. That contradicts its own label; the behavior is inherited and kept
// as-is rather than patched over.
func TestRunIncorrectWithoutWhereKeepsSQL(t *testing.T) {
	var nl string
	for _, candidate := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
		if !IsCorrect(candidate) {
			nl = candidate
			break
		}
	}
	require.NotEmpty(t, nl, "expected at least one incorrect label among candidates")

	material := entity.Material{
		TestSet: []entity.QueryPair{{NL: nl, SQL: "SELECT COUNT(*) FROM t"}},
	}
	results := Run(material)
	require.Len(t, results.TestResults, 1)
	assert.False(t, results.TestResults[0].IsCorrect)
	assert.Equal(t, "SELECT COUNT(*) FROM t", results.TestResults[0].GeneratedSQL)
	assert.Equal(t, 0.0, results.Accuracy)
}

func TestRunEmptyTestSetUsesPlaceholder(t *testing.T) {
	results := Run(entity.Material{})
	assert.Empty(t, results.TestResults)
	assert.Equal(t, placeholderAccuracy, results.Accuracy)
}
