package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// OutboxRepository stores pending side-effect events. Append always runs
// inside the transaction of the state change that produced the event;
// FetchPending and MarkSent are used by the dispatcher outside of it.
type OutboxRepository interface {
	// Append persists a new pending event.
	Append(ctx context.Context, event *entity.OutboxEvent) error

	// FetchPending retrieves up to limit unsent events, oldest first.
	FetchPending(ctx context.Context, limit int) ([]*entity.OutboxEvent, error)

	// MarkSent stamps an event as published.
	MarkSent(ctx context.Context, id int64) error
}
