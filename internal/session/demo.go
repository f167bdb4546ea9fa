package session

import (
	"github.com/PulchraScientia/BDAstudio-demo2/internal/entity"
)

// SeedDemoData fills an empty session with one workspace, dataset, material,
// experiment, and assistant so every screen has something to show. It runs
// through the regular store operations, so all invariants (snapshots,
// versioning, selections) hold for the seeded records. A session that already
// has a workspace is left alone.
func (s *Session) SeedDemoData() error {
	var count int64
	if err := s.DB.Model(&entity.Workspace{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if _, err := s.CreateWorkspace("Demo Workspace", "A demo workspace for testing BDA Studio", nil); err != nil {
		return err
	}

	tables := []entity.TableMeta{
		{Name: "transactions", Description: "Daily sales transactions", RowCount: "1.2M", LastModified: "2023-12-01"},
		{Name: "products", Description: "Product catalog", RowCount: "5.3K", LastModified: "2023-11-15"},
		{Name: "customers", Description: "Customer information", RowCount: "2.1M", LastModified: "2023-11-25"},
	}
	dataset, err := s.UpsertDataset("demo-project", "sales_data", tables)
	if err != nil {
		return err
	}

	material, err := s.CreateMaterial(MaterialInput{
		Name:         "Sales Data Material",
		TrainSetName: "Sales Training Set",
		TestSetName:  "Sales Test Set",
		TrainingSet: []entity.QueryPair{
			{NL: "How many sales did we have yesterday?", SQL: "SELECT COUNT(*) FROM `sales_data.transactions` WHERE date = DATE_SUB(CURRENT_DATE(), INTERVAL 1 DAY)"},
			{NL: "Show me top 5 products by revenue", SQL: "SELECT p.name, SUM(t.quantity * t.price) as revenue FROM `sales_data.transactions` t JOIN `sales_data.products` p ON t.product_id = p.id GROUP BY p.name ORDER BY revenue DESC LIMIT 5"},
			{NL: "What's our total revenue this month?", SQL: "SELECT SUM(quantity * price) as revenue FROM `sales_data.transactions` WHERE DATE_TRUNC(date, MONTH) = DATE_TRUNC(CURRENT_DATE(), MONTH)"},
		},
		TestSet: []entity.QueryPair{
			{NL: "Show me sales by product category", SQL: "SELECT p.category, SUM(t.quantity * t.price) as revenue FROM `sales_data.transactions` t JOIN `sales_data.products` p ON t.product_id = p.id GROUP BY p.category ORDER BY revenue DESC"},
			{NL: "How many customers made a purchase last week?", SQL: "SELECT COUNT(DISTINCT customer_id) FROM `sales_data.transactions` WHERE date BETWEEN DATE_SUB(CURRENT_DATE(), INTERVAL 7 DAY) AND CURRENT_DATE()"},
			{NL: "What's the average purchase value?", SQL: "SELECT AVG(quantity * price) as avg_purchase FROM `sales_data.transactions`"},
		},
		KnowledgeData: "The sales_data dataset contains transaction records, product information, and customer data. " +
			"Transactions have fields: id, customer_id, product_id, quantity, price, date. " +
			"Products have fields: id, name, category, cost, price. " +
			"Customers have fields: id, name, email, registration_date.",
	})
	if err != nil {
		return err
	}

	experiment, err := s.CreateExperiment(dataset.ID, material.ID,
		"Sales Query Experiment", "Testing natural language to SQL conversion for sales data")
	if err != nil {
		return err
	}

	assistant, err := s.DeployAssistant(experiment.ID,
		"Sales Data Assistant", "Assistant for querying sales data with natural language")
	if err != nil {
		return err
	}
	if _, err := s.SelectAssistant(assistant.ID); err != nil {
		return err
	}

	// seeding is not a navigation action; don't leave a pending transition
	s.Nav.PopIntent()
	return nil
}
