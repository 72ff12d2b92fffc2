package model

import (
	"time"

	"gorm.io/datatypes"
)

// OutboxEventModel is the GORM-specific struct for the 'outbox_events' table.
type OutboxEventModel struct {
	ID        int64          `gorm:"primary_key;autoIncrement"`
	EventID   string         `gorm:"uniqueIndex;not null"`
	Topic     string         `gorm:"not null;index:idx_outbox_pending,priority:2"`
	Key       string         `gorm:"not null"`
	Payload   datatypes.JSON `gorm:"type:jsonb;not null"`
	CreatedAt time.Time
	SentAt    *time.Time `gorm:"index:idx_outbox_pending,priority:1"`
}

// TableName explicitly sets the table name for GORM.
func (OutboxEventModel) TableName() string {
	return "outbox_events"
}
