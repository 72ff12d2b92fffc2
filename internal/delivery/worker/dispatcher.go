// Package worker hosts the outbox dispatcher, the background loop that
// publishes committed side-effect events.
package worker

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"storefront/config"
	"storefront/internal/delivery"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"

	"go.uber.org/fx"
)

const (
	defaultPollInterval = 5 * time.Second
	defaultBatchSize    = 50
)

// DispatcherParams holds dependencies for the outbox dispatcher
type DispatcherParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	OutboxRepo   repository.OutboxRepository
	Publisher    service.EventPublisher
	Notification service.NotificationService `optional:"true"`
}

type outboxDispatcher struct {
	cfg          *config.Config
	logger       *slog.Logger
	outboxRepo   repository.OutboxRepository
	publisher    service.EventPublisher
	notification service.NotificationService
	pollInterval time.Duration
	batchSize    int
	stop         chan struct{}
}

// NewDispatcher creates the outbox dispatcher loop
func NewDispatcher(params DispatcherParams) (delivery.Delivery, error) {
	pollInterval := defaultPollInterval
	batchSize := defaultBatchSize
	if params.Cfg.Outbox != nil {
		if params.Cfg.Outbox.PollInterval > 0 {
			pollInterval = params.Cfg.Outbox.PollInterval
		}
		if params.Cfg.Outbox.BatchSize > 0 {
			batchSize = params.Cfg.Outbox.BatchSize
		}
	}

	dispatcher := &outboxDispatcher{
		cfg:          params.Cfg,
		logger:       params.Logger,
		outboxRepo:   params.OutboxRepo,
		publisher:    params.Publisher,
		notification: params.Notification,
		pollInterval: pollInterval,
		batchSize:    batchSize,
		stop:         make(chan struct{}),
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Stopping outbox dispatcher")
			close(dispatcher.stop)

			return nil
		},
	})

	return dispatcher, nil
}

// Serve polls the outbox until shutdown. Every tick publishes one batch of
// pending events; a failed event stays pending and is retried next tick.
func (d *outboxDispatcher) Serve(ctx context.Context) error {
	d.logger.Info("Starting outbox dispatcher",
		slog.Duration("poll_interval", d.pollInterval),
		slog.Int("batch_size", d.batchSize))

	ticker := time.NewTicker(d.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-d.stop:
			return nil
		case <-ticker.C:
			d.dispatchBatch(ctx)
		}
	}
}

// dispatchBatch publishes up to batchSize pending events in insertion order.
func (d *outboxDispatcher) dispatchBatch(ctx context.Context) {
	events, err := d.outboxRepo.FetchPending(ctx, d.batchSize)
	if err != nil {
		d.logger.Error("Failed to fetch pending outbox events", slog.Any("error", err))

		return
	}

	for _, event := range events {
		if err := d.dispatch(ctx, event); err != nil {
			d.logger.Error("Failed to dispatch outbox event, leaving pending",
				slog.Int64("id", event.ID),
				slog.String("event_id", event.EventID),
				slog.String("topic", event.Topic),
				slog.Any("error", err))

			continue
		}

		if err := d.outboxRepo.MarkSent(ctx, event.ID); err != nil {
			// The event was published; a failed stamp means one duplicate
			// publish next tick, which downstream dedupes by event ID.
			d.logger.Error("Failed to mark outbox event sent",
				slog.Int64("id", event.ID),
				slog.Any("error", err))
		}
	}
}

// dispatch routes one event to its topic's publisher.
func (d *outboxDispatcher) dispatch(ctx context.Context, event *entity.OutboxEvent) error {
	switch event.Topic {
	case constants.OutboxTopicStockAlert:
		var alert service.StockAlertEvent
		if err := json.Unmarshal(event.Payload, &alert); err != nil {
			return err
		}

		if err := d.publisher.PublishStockAlert(ctx, &alert); err != nil {
			return err
		}

		d.pushStockAlert(ctx, &alert)

		return nil

	case constants.OutboxTopicPaymentOutcome:
		var outcome service.PaymentOutcomeEvent
		if err := json.Unmarshal(event.Payload, &outcome); err != nil {
			return err
		}

		return d.publisher.PublishPaymentOutcome(ctx, &outcome)

	default:
		d.logger.Warn("Unknown outbox topic, marking sent to unblock the queue",
			slog.Int64("id", event.ID),
			slog.String("topic", event.Topic))

		return nil
	}
}

// pushStockAlert notifies operator devices over Firebase. Best-effort: the
// Pub/Sub publish already succeeded, so a push failure is only logged.
func (d *outboxDispatcher) pushStockAlert(ctx context.Context, alert *service.StockAlertEvent) {
	if d.notification == nil || d.cfg.Firebase == nil || len(d.cfg.Firebase.AlertTokens) == 0 {
		return
	}

	success, failure, invalidTokens, err := d.notification.SendBatchNotification(
		ctx,
		d.cfg.Firebase.AlertTokens,
		"Low stock alert",
		alert.ProductName+" is low on stock",
		map[string]string{
			"event_id":   alert.EventID,
			"product_id": alert.ProductID,
		},
	)
	if err != nil {
		d.logger.Error("Failed to push stock alert", slog.Any("error", err))

		return
	}

	d.logger.Info("Stock alert pushed",
		slog.String("product_id", alert.ProductID),
		slog.Int("success", success),
		slog.Int("failure", failure),
		slog.Int("invalid_tokens", len(invalidTokens)))
}
