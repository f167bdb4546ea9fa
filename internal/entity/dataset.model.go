package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TableMeta describes one BigQuery table inside a saved dataset. RowCount is a
// display string ("1.2M"), not a number, matching the catalog it came from.
type TableMeta struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	RowCount     string `json:"rows"`
	LastModified string `json:"last_modified"`
}

// Dataset is a (project, dataset) pair saved into a workspace together with
// its table metadata. (Project, Dataset) is the upsert key within a workspace.
type Dataset struct {
	ID          uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	Project     string      `gorm:"type:varchar(255);not null" json:"project"`
	Dataset     string      `gorm:"type:varchar(255);not null" json:"dataset"`
	Tables      []TableMeta `gorm:"serializer:json" json:"tables"`
	WorkspaceID uuid.UUID   `gorm:"type:uuid;not null" json:"workspace_id"`
	CreatedAt   time.Time   `json:"created_at"`
}

func (d *Dataset) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// FullName renders the catalog-style "project.dataset" identifier.
func (d *Dataset) FullName() string {
	return d.Project + "." + d.Dataset
}
