// Package diff renders expected-vs-generated SQL comparisons for the results
// review screen, at line and token granularity.
package diff

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	OpEqual  = "equal"
	OpInsert = "insert"
	OpDelete = "delete"
)

// Segment is one run of the diff. Delete segments come from the expected SQL,
// insert segments from the generated SQL.
type Segment struct {
	Op   string `json:"op"`
	Text string `json:"text"`
}

// Lines diffs the two statements line by line.
func Lines(expected, generated string) []Segment {
	dmp := diffmatchpatch.New()
	a, b, lineIndex := dmp.DiffLinesToChars(expected, generated)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lineIndex)
	return toSegments(diffs)
}

// Tokens diffs the two statements word by word, with SQL punctuation split
// into separate tokens the way the results screen presents it.
func Tokens(expected, generated string) []Segment {
	dmp := diffmatchpatch.New()
	a, b, tokenIndex := dmp.DiffLinesToChars(
		strings.Join(Tokenize(expected), "\n")+"\n",
		strings.Join(Tokenize(generated), "\n")+"\n",
	)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), tokenIndex)

	segments := toSegments(diffs)
	for i := range segments {
		segments[i].Text = strings.Join(strings.Fields(segments[i].Text), " ")
	}
	return segments
}

// Tokenize splits SQL into words, treating punctuation as standalone tokens.
func Tokenize(sql string) []string {
	for _, symbol := range []string{"(", ")", ",", ".", "=", "<", ">", "+", "-", "*", "/", ";"} {
		sql = strings.ReplaceAll(sql, symbol, " "+symbol+" ")
	}
	return strings.Fields(sql)
}

func toSegments(diffs []diffmatchpatch.Diff) []Segment {
	segments := make([]Segment, 0, len(diffs))
	for _, d := range diffs {
		seg := Segment{Text: d.Text}
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			seg.Op = OpInsert
		case diffmatchpatch.DiffDelete:
			seg.Op = OpDelete
		default:
			seg.Op = OpEqual
		}
		segments = append(segments, seg)
	}
	return segments
}
