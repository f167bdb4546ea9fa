package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ExperimentStatusRunning   = "running"
	ExperimentStatusCompleted = "completed"
	ExperimentStatusFailed    = "failed"
)

// TestResult is the evaluation outcome for a single test-set pair.
type TestResult struct {
	NL           string `json:"nl"`
	ExpectedSQL  string `json:"expected_sql"`
	GeneratedSQL string `json:"generated_sql"`
	IsCorrect    bool   `json:"is_correct"`
}

// ExperimentResults aggregates per-row outcomes. Immutable once stored:
// retrying creates a new experiment instead of mutating these.
type ExperimentResults struct {
	Accuracy    float64      `json:"accuracy"`
	TestResults []TestResult `json:"test_results"`
}

// Experiment is one evaluation run of a material's test set against a dataset.
// Dataset and Material are denormalized snapshots so the record stays intact
// even if the source entities are later edited or deleted.
type Experiment struct {
	ID          uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string            `gorm:"type:varchar(255);not null" json:"name"`
	Description string            `gorm:"type:text" json:"description"`
	WorkspaceID uuid.UUID         `gorm:"type:uuid;not null" json:"workspace_id"`
	DatasetID   uuid.UUID         `gorm:"type:uuid" json:"dataset_id"`
	Dataset     Dataset           `gorm:"serializer:json" json:"dataset"`
	MaterialID  uuid.UUID         `gorm:"type:uuid" json:"material_id"`
	Material    Material          `gorm:"serializer:json" json:"material"`
	Status      string            `gorm:"type:varchar(20)" json:"status"`
	Results     ExperimentResults `gorm:"serializer:json" json:"results"`
	CreatedAt   time.Time         `json:"created_at"`
}

func (e *Experiment) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
