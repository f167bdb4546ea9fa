package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// QueryPair is one natural-language question with its reference SQL.
type QueryPair struct {
	NL  string `json:"nl"`
	SQL string `json:"sql"`
}

// Material is a named training/test corpus of query pairs plus free-text
// domain knowledge. Both sets must be non-empty for the material to be usable
// in an experiment.
type Material struct {
	ID            uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	Name          string      `gorm:"type:varchar(255);not null" json:"name"`
	WorkspaceID   uuid.UUID   `gorm:"type:uuid;not null" json:"workspace_id"`
	TrainingSet   []QueryPair `gorm:"serializer:json" json:"training_set"`
	TestSet       []QueryPair `gorm:"serializer:json" json:"test_set"`
	TrainSetName  string      `gorm:"type:varchar(255)" json:"train_set_name"`
	TestSetName   string      `gorm:"type:varchar(255)" json:"test_set_name"`
	KnowledgeData string      `gorm:"type:text" json:"knowledge_data"`
	CreatedAt     time.Time   `json:"created_at"`
}

func (m *Material) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
