// Package responder fabricates the assistant side of a chat turn: a canned SQL
// statement picked by keyword matching plus a synthetic result table. A real
// implementation would call the model and run the query against BigQuery.
package responder

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/PulchraScientia/BDAstudio-demo2/internal/entity"
)

// fallbackTable is used when the assistant's dataset snapshot has no tables.
const fallbackTable = "example_table"

// ReplyContent is the fixed assistant message accompanying every response.
const ReplyContent = "I've translated your question into SQL and executed it."

// GenerateSQL maps the user's question to a SQL template. Classification is a
// case-insensitive substring match, checked in priority order.
func GenerateSQL(assistant entity.Assistant, userText string) string {
	dataset := assistant.Dataset

	tableName := fallbackTable
	if len(dataset.Tables) > 0 {
		tableName = dataset.Tables[rand.Intn(len(dataset.Tables))].Name
	}
	qualified := fmt.Sprintf("`%s.%s.%s`", dataset.Project, dataset.Dataset, tableName)

	q := strings.ToLower(userText)
	switch {
	case strings.Contains(q, "count") || strings.Contains(q, "how many"):
		sql := fmt.Sprintf("SELECT COUNT(*) FROM %s", qualified)
		if strings.Contains(q, "where") || strings.Contains(q, "filter") {
			sql += " WHERE created_date > '2023-01-01'"
		}
		return sql
	case strings.Contains(q, "average") || strings.Contains(q, "mean"):
		return fmt.Sprintf("SELECT AVG(value) FROM %s", qualified)
	case strings.Contains(q, "group"):
		return fmt.Sprintf("SELECT category, COUNT(*) FROM %s GROUP BY category", qualified)
	case strings.Contains(q, "top"):
		return fmt.Sprintf("SELECT category, COUNT(*) as count FROM %s GROUP BY category ORDER BY count DESC LIMIT 5", qualified)
	default:
		return fmt.Sprintf("SELECT * FROM %s LIMIT 10", qualified)
	}
}

// GenerateResults fabricates a result table whose shape matches the SQL: a
// single count, a single average, five grouped rows, or ten generic rows.
// Values are random and not reproducible across calls.
func GenerateResults(sql string) entity.ResultTable {
	switch {
	case strings.Contains(sql, "COUNT(*)") && !strings.Contains(sql, "GROUP BY"):
		return entity.ResultTable{
			Columns: []string{"count"},
			Rows:    [][]any{{rand.Intn(9901) + 100}},
		}
	case strings.Contains(sql, "AVG"):
		avg := 10 + rand.Float64()*990
		return entity.ResultTable{
			Columns: []string{"average"},
			Rows:    [][]any{{float64(int(avg*100)) / 100}},
		}
	case strings.Contains(sql, "GROUP BY"):
		categories := []string{"Category A", "Category B", "Category C", "Category D", "Category E"}
		rows := make([][]any, 0, len(categories))
		for _, category := range categories {
			rows = append(rows, []any{category, rand.Intn(451) + 50})
		}
		return entity.ResultTable{Columns: []string{"category", "count"}, Rows: rows}
	default:
		rows := make([][]any, 0, 10)
		for i := 0; i < 10; i++ {
			value := 10 + rand.Float64()*990
			rows = append(rows, []any{
				i + 1,
				fmt.Sprintf("Item %d", i+1),
				[]string{"Category A", "Category B", "Category C"}[rand.Intn(3)],
				float64(int(value*100)) / 100,
				fmt.Sprintf("2023-%02d-%02d", rand.Intn(12)+1, rand.Intn(28)+1),
			})
		}
		return entity.ResultTable{
			Columns: []string{"id", "name", "category", "value", "created_date"},
			Rows:    rows,
		}
	}
}

// Respond produces the SQL and result table for one chat turn.
func Respond(assistant entity.Assistant, userText string) (string, entity.ResultTable) {
	sql := GenerateSQL(assistant, userText)
	return sql, GenerateResults(sql)
}
