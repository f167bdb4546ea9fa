package diff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	tokens := Tokenize("SELECT a, b FROM t WHERE a=1")
	assert.Equal(t, []string{"SELECT", "a", ",", "b", "FROM", "t", "WHERE", "a", "=", "1"}, tokens)
}

func TestLinesIdentical(t *testing.T) {
	segments := Lines("SELECT 1", "SELECT 1")
	require.Len(t, segments, 1)
	assert.Equal(t, OpEqual, segments[0].Op)
}

func TestTokensShowPerturbation(t *testing.T) {
	expected := "SELECT * FROM t WHERE id=1"
	generated := "SELECT * FROM t WHERE LOWER( id) =1"

	segments := Tokens(expected, generated)

	var inserted, deleted []string
	for _, seg := range segments {
		switch seg.Op {
		case OpInsert:
			inserted = append(inserted, seg.Text)
		case OpDelete:
			deleted = append(deleted, seg.Text)
		}
	}

	require.NotEmpty(t, inserted, "perturbed SQL must show inserted tokens")
	assert.Contains(t, strings.Join(inserted, " "), "LOWER")
	// common prefix stays equal
	assert.Equal(t, OpEqual, segments[0].Op)
	assert.Contains(t, segments[0].Text, "SELECT")
	_ = deleted
}
