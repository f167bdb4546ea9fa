// Package catalog serves the mocked BigQuery catalog the dataset screens
// browse. The data is fixed; a real implementation would list projects and
// datasets through the BigQuery API instead.
package catalog

import (
	"github.com/PulchraScientia/BDAstudio-demo2/internal/entity"
)

// ColumnMeta is one column of the mock table schema.
type ColumnMeta struct {
	Column      string `json:"column"`
	Type        string `json:"type"`
	Mode        string `json:"mode"`
	Description string `json:"description"`
}

type Catalog struct {
	projects          []string
	datasetsByProject map[string][]string
	tablesByDataset   map[string][]entity.TableMeta
}

func New() *Catalog {
	return &Catalog{
		projects: []string{"my-gcp-project", "shared-analytics-project", "customer-insights"},
		datasetsByProject: map[string][]string{
			"my-gcp-project":           {"sales_data", "product_data", "user_activity"},
			"shared-analytics-project": {"marketing_campaigns", "web_analytics", "social_media"},
			"customer-insights":        {"customer_profiles", "user_journey", "feedback_data"},
		},
		tablesByDataset: map[string][]entity.TableMeta{
			"sales_data": {
				{Name: "transactions", Description: "Daily sales transactions", RowCount: "1.2M", LastModified: "2023-12-01"},
				{Name: "products", Description: "Product catalog", RowCount: "5.3K", LastModified: "2023-11-15"},
				{Name: "customers", Description: "Customer information", RowCount: "2.1M", LastModified: "2023-11-25"},
			},
			"product_data": {
				{Name: "product_catalog", Description: "Complete product information", RowCount: "15K", LastModified: "2023-12-05"},
				{Name: "categories", Description: "Product categories", RowCount: "42", LastModified: "2023-10-20"},
				{Name: "inventory", Description: "Current inventory levels", RowCount: "15K", LastModified: "2023-12-15"},
			},
			"user_activity": {
				{Name: "page_views", Description: "Website page view events", RowCount: "25M", LastModified: "2023-12-15"},
				{Name: "user_sessions", Description: "User session data", RowCount: "4.2M", LastModified: "2023-12-15"},
				{Name: "clicks", Description: "User click events", RowCount: "18M", LastModified: "2023-12-15"},
			},
			"marketing_campaigns": {
				{Name: "campaigns", Description: "Marketing campaign details", RowCount: "350", LastModified: "2023-11-30"},
				{Name: "ad_performance", Description: "Ad performance metrics", RowCount: "25K", LastModified: "2023-12-10"},
				{Name: "campaign_spend", Description: "Campaign spending data", RowCount: "1.2K", LastModified: "2023-12-05"},
			},
			"web_analytics": {
				{Name: "visits", Description: "Website visit data", RowCount: "12M", LastModified: "2023-12-15"},
				{Name: "conversions", Description: "Conversion events", RowCount: "450K", LastModified: "2023-12-15"},
				{Name: "referrers", Description: "Traffic referral sources", RowCount: "280K", LastModified: "2023-12-10"},
			},
			"customer_profiles": {
				{Name: "customers", Description: "Customer profile information", RowCount: "3.5M", LastModified: "2023-12-01"},
				{Name: "segments", Description: "Customer segmentation", RowCount: "25", LastModified: "2023-11-20"},
				{Name: "preferences", Description: "Customer preferences", RowCount: "5.8M", LastModified: "2023-12-05"},
			},
		},
	}
}

func (c *Catalog) Projects() []string {
	return c.projects
}

// Datasets lists dataset names under a project. ok is false for an unknown
// project.
func (c *Catalog) Datasets(project string) ([]string, bool) {
	datasets, ok := c.datasetsByProject[project]
	return datasets, ok
}

// Tables lists table metadata for a dataset under a project. Some catalog
// datasets have no table metadata; those report ok false, and the screen shows
// its empty state.
func (c *Catalog) Tables(project, dataset string) ([]entity.TableMeta, bool) {
	names, ok := c.datasetsByProject[project]
	if !ok {
		return nil, false
	}
	found := false
	for _, name := range names {
		if name == dataset {
			found = true
			break
		}
	}
	if !found {
		return nil, false
	}
	tables, ok := c.tablesByDataset[dataset]
	return tables, ok
}

// TableSchema returns the fixed mock column schema shown for every table.
func (c *Catalog) TableSchema() []ColumnMeta {
	return []ColumnMeta{
		{Column: "id", Type: "INTEGER", Mode: "REQUIRED", Description: "Primary key"},
		{Column: "name", Type: "STRING", Mode: "REQUIRED", Description: "Item name"},
		{Column: "value", Type: "FLOAT", Mode: "NULLABLE", Description: "Item value"},
		{Column: "created_at", Type: "TIMESTAMP", Mode: "REQUIRED", Description: "Creation timestamp"},
	}
}
