package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
)

// ResultTable is a synthetic query result attached to an assistant reply.
type ResultTable struct {
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

// ChatSession is the conversation with one (assistant, version) pair. Only one
// session is live at a time; selecting a different assistant or version drops
// it and starts fresh.
type ChatSession struct {
	ID          uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	AssistantID uuid.UUID     `gorm:"type:uuid;not null" json:"assistant_id"`
	Version     int           `gorm:"not null" json:"version"`
	Messages    []ChatMessage `gorm:"foreignKey:SessionID" json:"messages"`
	CreatedAt   time.Time     `json:"created_at"`
}

func (c *ChatSession) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

type ChatMessage struct {
	ID        uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	SessionID uuid.UUID    `gorm:"type:uuid;not null;index" json:"session_id"`
	Role      string       `gorm:"type:varchar(20);not null" json:"role"`
	Content   string       `gorm:"type:text" json:"content"`
	SQL       string       `gorm:"type:text" json:"sql,omitempty"`
	Result    *ResultTable `gorm:"serializer:json" json:"result_table,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
}

func (m *ChatMessage) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
