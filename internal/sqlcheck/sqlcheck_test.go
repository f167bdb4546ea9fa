package sqlcheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsWellFormed(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  bool
	}{
		{"empty", "", false},
		{"whitespace only", "   \n\t ", false},
		{"simple select", "SELECT * FROM t", true},
		{"with statement", "WITH x AS (SELECT 1) SELECT * FROM x", true},
		{"not a query", "DROP TABLE t", false},
		{"update rejected", "UPDATE t SET a = 1", false},
		{"unbalanced parens", "SELECT * FROM t WHERE (a=1", false},
		{"balanced parens", "SELECT * FROM t WHERE (a=1)", true},
		{"odd single quotes", "SELECT * FROM t WHERE a = 'x", false},
		{"even single quotes", "SELECT * FROM t WHERE a = 'x'", true},
		{"escaped quote ignored", `SELECT * FROM t WHERE a = 'it\'s fine'`, true},
		{"odd backticks", "SELECT * FROM `project.dataset.t", false},
		{"even backticks", "SELECT * FROM `project.dataset.t`", true},
		{"where after order by", "SELECT * FROM t GROUP BY x HAVING COUNT(*) > 1 ORDER BY y WHERE z = 1", false},
		{"canonical order", "SELECT x FROM t WHERE a = 1 GROUP BY x HAVING COUNT(*) > 1 ORDER BY x LIMIT 10 OFFSET 5", true},
		// only adjacent clause pairs are compared, so this slips through the
		// heuristic when the clauses between them are absent
		{"limit before group by not caught", "SELECT x FROM t LIMIT 5 GROUP BY x", true},
		{"offset before limit", "SELECT x FROM t OFFSET 5 LIMIT 1", false},
		{"subquery uses last occurrence", "SELECT * FROM (SELECT a FROM u WHERE a = 1) WHERE b = 2 ORDER BY b", true},
		{"leading whitespace trimmed", "   select 1", true},
		{"case insensitive", "Select Count(*) From t", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsWellFormed(tt.query), "query: %q", tt.query)
		})
	}
}
