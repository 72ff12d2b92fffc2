package postgres

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// outboxRepository implements the repository.OutboxRepository interface.
type outboxRepository struct {
	db *gorm.DB
}

// NewOutboxRepository is the constructor for outboxRepository.
func NewOutboxRepository(db *gorm.DB) repository.OutboxRepository {
	return &outboxRepository{
		db: db,
	}
}

// Append persists a new pending event.
func (repo *outboxRepository) Append(ctx context.Context, event *entity.OutboxEvent) error {
	eventM := fromOutboxEventDomain(event)

	if err := repo.db.WithContext(ctx).Create(eventM).Error; err != nil {
		return errors.Wrap(err, "failed to append outbox event")
	}

	event.ID = eventM.ID
	event.CreatedAt = eventM.CreatedAt

	return nil
}

// FetchPending retrieves up to limit unsent events, oldest first.
func (repo *outboxRepository) FetchPending(ctx context.Context, limit int) ([]*entity.OutboxEvent, error) {
	var eventModels []*model.OutboxEventModel

	if err := repo.db.WithContext(ctx).
		Where("sent_at IS NULL").
		Order("id ASC").
		Limit(limit).
		Find(&eventModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to fetch pending outbox events")
	}

	events := make([]*entity.OutboxEvent, 0, len(eventModels))
	for _, eventM := range eventModels {
		events = append(events, toOutboxEventDomain(eventM))
	}

	return events, nil
}

// MarkSent stamps an event as published.
func (repo *outboxRepository) MarkSent(ctx context.Context, id int64) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.OutboxEventModel{}).
		Where("id = ?", id).
		Update("sent_at", time.Now()).Error; err != nil {
		return errors.Wrap(err, "failed to mark outbox event sent")
	}

	return nil
}

// --- Mapper Functions ---

// toOutboxEventDomain converts a GORM OutboxEventModel to a domain entity.
func toOutboxEventDomain(data *model.OutboxEventModel) *entity.OutboxEvent {
	if data == nil {
		return nil
	}

	return &entity.OutboxEvent{
		ID:        data.ID,
		EventID:   data.EventID,
		Topic:     data.Topic,
		Key:       data.Key,
		Payload:   []byte(data.Payload),
		CreatedAt: data.CreatedAt,
		SentAt:    data.SentAt,
	}
}

// fromOutboxEventDomain converts a domain entity to a GORM OutboxEventModel.
func fromOutboxEventDomain(data *entity.OutboxEvent) *model.OutboxEventModel {
	if data == nil {
		return nil
	}

	return &model.OutboxEventModel{
		ID:      data.ID,
		EventID: data.EventID,
		Topic:   data.Topic,
		Key:     data.Key,
		Payload: datatypes.JSON(data.Payload),
		SentAt:  data.SentAt,
	}
}
