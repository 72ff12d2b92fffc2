package impl

import (
	"context"
	"encoding/json"
	"log/slog"

	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"
)

type paymentService struct {
	txManager repository.TransactionManager
	gateway   service.PaymentGateway
	archiver  service.ReceiptArchiver
	logger    *slog.Logger
}

// NewPaymentService creates a new payment reconciliation service instance
func NewPaymentService(
	txManager repository.TransactionManager,
	gateway service.PaymentGateway,
	archiver service.ReceiptArchiver,
	logger *slog.Logger,
) usecase.PaymentUsecase {
	return &paymentService{
		txManager: txManager,
		gateway:   gateway,
		archiver:  archiver,
		logger:    logger,
	}
}

// HandleWebhook verifies the raw webhook payload and applies the event.
func (s *paymentService) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	event, err := s.gateway.VerifyWebhook(payload, signature)
	if err != nil {
		s.logger.WarnContext(ctx, "webhook signature rejected", slog.Any("error", err))

		return domainerrors.ErrWebhookSignatureInvalid
	}

	return s.ApplyGatewayEvent(ctx, event)
}

// statusForEvent maps a gateway event type onto the target order and payment
// statuses. Unknown event types map to ok=false and are acknowledged unseen.
func statusForEvent(eventType service.GatewayEventType) (entity.OrderStatus, entity.PaymentStatus, bool) {
	switch eventType {
	case service.GatewayEventSucceeded:
		return entity.OrderStatusPaid, entity.PaymentStatusSucceeded, true
	case service.GatewayEventFailed:
		return entity.OrderStatusPaymentFailed, entity.PaymentStatusFailed, true
	case service.GatewayEventDisputed:
		return entity.OrderStatusDisputed, entity.PaymentStatusDisputed, true
	case service.GatewayEventRefunded:
		return entity.OrderStatusRefunded, entity.PaymentStatusRefunded, true
	default:
		return "", "", false
	}
}

// ApplyGatewayEvent applies one verified gateway event to its order.
// Everything that would make the delivery a no-op (unknown type, unknown
// intent, disallowed status transition) is acknowledged with nil so the
// gateway stops retrying; only real failures propagate.
func (s *paymentService) ApplyGatewayEvent(ctx context.Context, event *service.GatewayEvent) error {
	targetStatus, targetPayment, ok := statusForEvent(event.Type)
	if !ok {
		s.logger.InfoContext(ctx, "ignoring unhandled gateway event type",
			slog.String("event_id", event.ID),
			slog.String("type", string(event.Type)))

		return nil
	}

	var paidOrder *entity.Order

	err := s.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		orderRepo := repos.NewOrderRepository()

		order, err := orderRepo.FindByPaymentIntentIDForUpdate(ctx, event.IntentID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				s.logger.WarnContext(ctx, "gateway event for unknown payment intent",
					slog.String("event_id", event.ID),
					slog.String("intent_id", event.IntentID))

				return nil
			}

			return errors.Wrap(err, "failed to lock order for reconciliation")
		}

		// The transition table is the idempotency gate: a replayed success on
		// an already paid order, or a stale failure after a success, has no
		// valid edge and falls through here.
		if !order.Status.CanTransitionTo(targetStatus) {
			s.logger.InfoContext(ctx, "ignoring gateway event without valid transition",
				slog.String("event_id", event.ID),
				slog.String("order_id", order.ID.String()),
				slog.String("from", string(order.Status)),
				slog.String("to", string(targetStatus)))

			return nil
		}

		if err := orderRepo.UpdateStatus(ctx, order.ID, targetStatus, targetPayment); err != nil {
			return errors.Wrap(err, "failed to update order status")
		}

		order.Status = targetStatus
		order.PaymentStatus = targetPayment

		if err := s.appendOutcomeEvent(ctx, repos, event.ID, order); err != nil {
			return err
		}

		if targetStatus == entity.OrderStatusPaid {
			paidOrder = order
		}

		s.logger.InfoContext(ctx, "payment outcome reconciled",
			slog.String("event_id", event.ID),
			slog.String("order_id", order.ID.String()),
			slog.String("status", string(targetStatus)))

		return nil
	})
	if err != nil {
		return err
	}

	// Receipt archiving is best-effort after commit; a blob failure never
	// un-reconciles the payment.
	if paidOrder != nil {
		if err := s.archiver.Store(ctx, paidOrder); err != nil {
			s.logger.ErrorContext(ctx, "receipt archive failed",
				slog.String("order_id", paidOrder.ID.String()),
				slog.Any("error", err))
		}
	}

	return nil
}

// appendOutcomeEvent records the customer-facing outcome notification in the
// outbox of the reconciliation transaction.
func (s *paymentService) appendOutcomeEvent(ctx context.Context, repos repository.RepositoryFactory, eventID string, order *entity.Order) error {
	outcome := &service.PaymentOutcomeEvent{
		EventID: eventID,
		OrderID: order.ID.String(),
		UserID:  order.UserID.String(),
		Status:  string(order.PaymentStatus),
		Total:   order.TotalAmount.String(),
	}

	payload, err := json.Marshal(outcome)
	if err != nil {
		return errors.Wrap(err, "failed to marshal payment outcome")
	}

	return repos.NewOutboxRepository().Append(ctx, &entity.OutboxEvent{
		EventID: eventID,
		Topic:   constants.OutboxTopicPaymentOutcome,
		Key:     order.ID.String(),
		Payload: payload,
	})
}
