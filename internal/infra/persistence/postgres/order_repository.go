package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// Create persists the order header and all of its items in one insert.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt
	for i, itemM := range orderM.Items {
		order.Items[i].ID = itemM.ID
		order.Items[i].OrderID = itemM.OrderID
		order.Items[i].CreatedAt = itemM.CreatedAt
	}

	return nil
}

// FindByID retrieves an order with its items.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM), nil
}

// FindByIDForUpdate retrieves an order, without items, under an exclusive row
// lock. Fulfillment actions and the payment reconciler serialize on this lock.
func (repo *orderRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to lock order row")
	}

	return toOrderDomain(&orderM), nil
}

// FindByUser retrieves a user's orders, newest first. Items are not loaded;
// the listing view does not need them.
func (repo *orderRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find orders by user")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// FindByPaymentIntentIDForUpdate retrieves the order referenced by a gateway
// payment intent under an exclusive row lock. Two webhook deliveries for the
// same intent serialize on this lock, so the second one sees the status the
// first one wrote.
func (repo *orderRepository) FindByPaymentIntentIDForUpdate(ctx context.Context, paymentIntentID string) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("payment_intent_id = ?", paymentIntentID).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to lock order row by payment intent")
	}

	return toOrderDomain(&orderM), nil
}

// UpdatePaymentIntentID stores the gateway reference on the order.
func (repo *orderRepository) UpdatePaymentIntentID(ctx context.Context, id uuid.UUID, paymentIntentID string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Update("payment_intent_id", paymentIntentID)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update payment intent ID")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// UpdateStatus writes a new order status and payment status.
func (repo *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus, paymentStatus entity.PaymentStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":         string(status),
			"payment_status": string(paymentStatus),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update order status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// UpdateFulfillment writes a fulfillment status change with its tracking number.
func (repo *orderRepository) UpdateFulfillment(ctx context.Context, id uuid.UUID, status entity.OrderStatus, trackingNumber string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":          string(status),
			"tracking_number": trackingNumber,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update order fulfillment")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toOrderDomain converts a GORM OrderModel to a domain Order entity.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	items := make([]*entity.OrderItem, 0, len(data.Items))
	for i := range data.Items {
		items = append(items, toOrderItemDomain(&data.Items[i]))
	}

	paymentIntentID := ""
	if data.PaymentIntentID != nil {
		paymentIntentID = *data.PaymentIntentID
	}

	return &entity.Order{
		ID:              data.ID,
		UserID:          data.UserID,
		Subtotal:        data.Subtotal,
		DiscountAmount:  data.DiscountAmount,
		ShippingCost:    data.ShippingCost,
		TaxAmount:       data.TaxAmount,
		TotalAmount:     data.TotalAmount,
		Currency:        data.Currency,
		ShippingName:    data.ShippingName,
		ShippingAddress: data.ShippingAddress,
		ShippingCity:    data.ShippingCity,
		ShippingState:   data.ShippingState,
		ShippingZip:     data.ShippingZip,
		ShippingCountry: data.ShippingCountry,
		Status:          entity.OrderStatus(data.Status),
		PaymentStatus:   entity.PaymentStatus(data.PaymentStatus),
		PaymentIntentID: paymentIntentID,
		TrackingNumber:  data.TrackingNumber,
		Items:           items,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// toOrderItemDomain converts a GORM OrderItemModel to a domain OrderItem entity.
func toOrderItemDomain(data *model.OrderItemModel) *entity.OrderItem {
	if data == nil {
		return nil
	}

	return &entity.OrderItem{
		ID:              data.ID,
		OrderID:         data.OrderID,
		ProductID:       data.ProductID,
		Quantity:        data.Quantity,
		PriceAtPurchase: data.Price,
		CreatedAt:       data.CreatedAt,
	}
}

// fromOrderDomain converts a domain Order entity to a GORM OrderModel.
func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	items := make([]model.OrderItemModel, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, model.OrderItemModel{
			ID:        item.ID,
			OrderID:   item.OrderID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.PriceAtPurchase,
		})
	}

	// An order is created before its payment intent; NULL keeps those rows out
	// of the unique index.
	var paymentIntentID *string
	if data.PaymentIntentID != "" {
		paymentIntentID = &data.PaymentIntentID
	}

	return &model.OrderModel{
		ID:              data.ID,
		UserID:          data.UserID,
		Subtotal:        data.Subtotal,
		DiscountAmount:  data.DiscountAmount,
		ShippingCost:    data.ShippingCost,
		TaxAmount:       data.TaxAmount,
		TotalAmount:     data.TotalAmount,
		Currency:        data.Currency,
		ShippingName:    data.ShippingName,
		ShippingAddress: data.ShippingAddress,
		ShippingCity:    data.ShippingCity,
		ShippingState:   data.ShippingState,
		ShippingZip:     data.ShippingZip,
		ShippingCountry: data.ShippingCountry,
		Status:          string(data.Status),
		PaymentStatus:   string(data.PaymentStatus),
		PaymentIntentID: paymentIntentID,
		TrackingNumber:  data.TrackingNumber,
		Items:           items,
	}
}
