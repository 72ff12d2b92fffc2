package entity

import (
	"encoding/json"
	"time"
)

// OutboxEvent is a pending side effect recorded in the same database
// transaction as the state change that produced it. The dispatcher publishes
// pending events after commit and marks them sent; a publish failure leaves
// the row pending for the next tick and never affects the owning transaction.
type OutboxEvent struct {
	ID        int64           `json:"id"`
	EventID   string          `json:"event_id"` // Stable identifier for downstream idempotency.
	Topic     string          `json:"topic"`
	Key       string          `json:"key"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
	SentAt    *time.Time      `json:"sent_at,omitempty"`
}
