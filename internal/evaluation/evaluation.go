// Package evaluation is the mock accuracy engine behind experiments. Verdicts
// are deterministic per input question so re-running the same material always
// reproduces the same labels; real SQL generation would replace this.
package evaluation

import (
	"hash/fnv"
	"strings"

	"github.com/PulchraScientia/BDAstudio-demo2/internal/entity"
)

// placeholderAccuracy is reported for an empty test set, where accuracy is
// otherwise undefined. Validation keeps empty sets out of experiments, so this
// only covers the degenerate case.
const placeholderAccuracy = 0.85

// IsCorrect labels a test question. The hash keeps a nominal 75% correct rate
// while staying stable for a given question across runs.
func IsCorrect(nl string) bool {
	h := fnv.New32a()
	h.Write([]byte(nl))
	return h.Sum32()%4 != 0
}

// PerturbSQL derives the "generated" SQL for an incorrect row: the first WHERE
// becomes WHERE LOWER( and a closing paren lands before the first = after it.
// Statements without a WHERE come back unchanged, so an incorrect row can
// carry SQL identical to the expected one.
func PerturbSQL(sql string) string {
	idx := strings.Index(sql, "WHERE")
	if idx < 0 {
		return sql
	}

	out := sql[:idx] + "WHERE LOWER(" + sql[idx+len("WHERE"):]

	eq := strings.Index(out[idx:], "=")
	if eq < 0 {
		return out
	}
	eq += idx
	return out[:eq] + ") =" + out[eq+1:]
}

// Run evaluates every test-set pair of the material, in order, and aggregates
// the accuracy. The result has exactly one entry per test pair.
func Run(material entity.Material) entity.ExperimentResults {
	results := entity.ExperimentResults{
		TestResults: make([]entity.TestResult, 0, len(material.TestSet)),
	}

	correct := 0
	for _, pair := range material.TestSet {
		ok := IsCorrect(pair.NL)
		generated := pair.SQL
		if ok {
			correct++
		} else {
			generated = PerturbSQL(pair.SQL)
		}
		results.TestResults = append(results.TestResults, entity.TestResult{
			NL:           pair.NL,
			ExpectedSQL:  pair.SQL,
			GeneratedSQL: generated,
			IsCorrect:    ok,
		})
	}

	if len(results.TestResults) == 0 {
		results.Accuracy = placeholderAccuracy
	} else {
		results.Accuracy = float64(correct) / float64(len(results.TestResults))
	}
	return results
}
