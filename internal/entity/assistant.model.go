package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	AssistantStatusActive   = "active"
	AssistantStatusInactive = "inactive"
)

// Assistant is a deployed, versioned artifact promoted from an experiment.
// Assistants sharing a name within a workspace form a lineage; versions are
// assigned at creation as max existing version for that name plus one.
// Dataset and Material are snapshots copied from the source experiment.
type Assistant struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string    `gorm:"type:varchar(255);not null" json:"name"`
	Description  string    `gorm:"type:text" json:"description"`
	WorkspaceID  uuid.UUID `gorm:"type:uuid;not null" json:"workspace_id"`
	ExperimentID uuid.UUID `gorm:"type:uuid" json:"experiment_id"`
	Dataset      Dataset   `gorm:"serializer:json" json:"dataset"`
	Material     Material  `gorm:"serializer:json" json:"material"`
	Version      int       `gorm:"not null" json:"version"`
	Status       string    `gorm:"type:varchar(20)" json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

func (a *Assistant) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
