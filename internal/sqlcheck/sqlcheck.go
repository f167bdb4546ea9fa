// Package sqlcheck performs a structural sanity check on SQL text. It is a
// stand-in for a BigQuery dry run: balanced delimiters and clause ordering
// only, deliberately permissive, and not a parser.
package sqlcheck

import (
	"regexp"
	"strings"
)

// clauses in canonical order; ordering is checked pairwise between adjacent
// clauses that are both present.
var clauses = []string{"select", "from", "where", "group by", "having", "order by", "limit", "offset"}

var clausePattern = func() map[string]*regexp.Regexp {
	m := make(map[string]*regexp.Regexp, len(clauses))
	for _, c := range clauses {
		m[c] = regexp.MustCompile(`\b` + c + `\b`)
	}
	return m
}()

// IsWellFormed reports whether the statement passes the structural checks:
// non-empty, starts with select/with, balanced parentheses, even counts of
// unescaped quote characters, and clause keywords in canonical order by their
// last occurrence. Subqueries are not handled specially; anything passing the
// checks is accepted.
func IsWellFormed(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return false
	}

	if !strings.HasPrefix(q, "select") && !strings.HasPrefix(q, "with") {
		return false
	}

	if strings.Count(q, "(") != strings.Count(q, ")") {
		return false
	}

	if countUnescaped(q, '\'')%2 != 0 || countUnescaped(q, '"')%2 != 0 || strings.Count(q, "`")%2 != 0 {
		return false
	}

	positions := make(map[string]int, len(clauses))
	for _, clause := range clauses {
		if locs := clausePattern[clause].FindAllStringIndex(q, -1); len(locs) > 0 {
			// last occurrence, so top-level clauses win over subquery ones
			positions[clause] = locs[len(locs)-1][0]
		}
	}

	for i := 0; i < len(clauses)-1; i++ {
		cur, curOK := positions[clauses[i]]
		next, nextOK := positions[clauses[i+1]]
		if curOK && nextOK && cur > next {
			return false
		}
	}

	// Everything structural passed. A real implementation would dry-run the
	// statement here; the check stays permissive on purpose.
	return true
}

func countUnescaped(s string, ch byte) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] == ch && (i == 0 || s[i-1] != '\\') {
			n++
		}
	}
	return n
}
