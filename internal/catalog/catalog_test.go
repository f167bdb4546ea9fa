package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogBrowsing(t *testing.T) {
	c := New()

	assert.Equal(t, []string{"my-gcp-project", "shared-analytics-project", "customer-insights"}, c.Projects())

	datasets, ok := c.Datasets("my-gcp-project")
	require.True(t, ok)
	assert.Contains(t, datasets, "sales_data")

	_, ok = c.Datasets("no-such-project")
	assert.False(t, ok)

	tables, ok := c.Tables("my-gcp-project", "sales_data")
	require.True(t, ok)
	require.NotEmpty(t, tables)
	assert.Equal(t, "transactions", tables[0].Name)
	assert.Equal(t, "1.2M", tables[0].RowCount)

	// dataset exists in the project but carries no table metadata
	_, ok = c.Tables("shared-analytics-project", "social_media")
	assert.False(t, ok)

	// dataset belongs to a different project
	_, ok = c.Tables("my-gcp-project", "web_analytics")
	assert.False(t, ok)

	schema := c.TableSchema()
	require.Len(t, schema, 4)
	assert.Equal(t, "id", schema[0].Column)
}
