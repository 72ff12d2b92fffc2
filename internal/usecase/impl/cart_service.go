// Package impl contains the concrete implementations of the application
// use cases.
package impl

import (
	"context"
	"log/slog"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	txManager   repository.TransactionManager
	logger      *slog.Logger
}

// NewCartService creates a new cart service instance
func NewCartService(
	cartRepo repository.CartRepository,
	productRepo repository.ProductRepository,
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.CartUsecase {
	return &cartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// AddItem adds quantity units of a product, summing with any existing line.
func (s *cartService) AddItem(ctx context.Context, owner entity.CartOwner, productID uuid.UUID, quantity int) error {
	if quantity < 1 {
		return domainerrors.ErrInvalidQuantity
	}

	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to load product")
	}
	if !product.IsActive {
		return domainerrors.ErrProductInactive
	}

	existing, err := s.cartRepo.FindItem(ctx, owner, productID)
	if err != nil {
		if !errors.Is(err, repository.ErrCartItemNotFound) {
			return errors.Wrap(err, "failed to load cart item")
		}

		item := &entity.CartItem{
			Owner:     owner,
			ProductID: productID,
			Quantity:  quantity,
		}

		return s.cartRepo.CreateItem(ctx, item)
	}

	return s.cartRepo.UpdateQuantity(ctx, owner, productID, existing.Quantity+quantity)
}

// UpdateItemQuantity sets a line's quantity. Zero removes the line.
func (s *cartService) UpdateItemQuantity(ctx context.Context, owner entity.CartOwner, productID uuid.UUID, quantity int) error {
	if quantity < 0 {
		return domainerrors.ErrInvalidQuantity
	}

	if quantity == 0 {
		return s.RemoveItem(ctx, owner, productID)
	}

	if err := s.cartRepo.UpdateQuantity(ctx, owner, productID, quantity); err != nil {
		if errors.Is(err, repository.ErrCartItemNotFound) {
			return domainerrors.ErrCartItemNotFound
		}

		return errors.Wrap(err, "failed to update cart quantity")
	}

	return nil
}

// RemoveItem deletes a line from the cart.
func (s *cartService) RemoveItem(ctx context.Context, owner entity.CartOwner, productID uuid.UUID) error {
	if err := s.cartRepo.DeleteItem(ctx, owner, productID); err != nil {
		if errors.Is(err, repository.ErrCartItemNotFound) {
			return domainerrors.ErrCartItemNotFound
		}

		return errors.Wrap(err, "failed to delete cart item")
	}

	return nil
}

// GetCart reconciles the stored cart against the live catalog. Lines whose
// product disappeared or went inactive are removed from storage; lines that
// exceed available stock stay, flagged with a warning, because the hard check
// belongs to checkout.
func (s *cartService) GetCart(ctx context.Context, owner entity.CartOwner) (*usecase.CartView, error) {
	items, err := s.cartRepo.FindItemsByOwner(ctx, owner)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart items")
	}

	ids := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID)
	}

	products, err := s.productRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart products")
	}

	productsByID := make(map[uuid.UUID]*entity.Product, len(products))
	for _, product := range products {
		productsByID[product.ID] = product
	}

	view := &usecase.CartView{
		Lines:    make([]*entity.CartViewLine, 0, len(items)),
		Subtotal: decimal.Zero,
	}

	for _, item := range items {
		product, ok := productsByID[item.ProductID]
		if !ok || !product.IsActive {
			if err := s.cartRepo.DeleteItem(ctx, owner, item.ProductID); err != nil &&
				!errors.Is(err, repository.ErrCartItemNotFound) {
				return nil, errors.Wrap(err, "failed to drop stale cart item")
			}

			continue
		}

		lineTotal := product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		view.Lines = append(view.Lines, &entity.CartViewLine{
			Product:      product,
			Quantity:     item.Quantity,
			LineTotal:    lineTotal,
			StockWarning: !product.CanFulfill(item.Quantity),
		})
		view.Subtotal = view.Subtotal.Add(lineTotal)
	}

	return view, nil
}

// MergeGuestCart folds a guest session cart into the user's persisted cart in
// one transaction. Quantities of shared products are summed. A line that fails
// to merge is logged and skipped, never retried; the guest cart is cleared
// unconditionally, also when it held nothing.
func (s *cartService) MergeGuestCart(ctx context.Context, sessionOwner entity.CartOwner, userID uuid.UUID) error {
	userOwner := entity.UserOwner(userID)

	return s.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		cartRepo := repos.NewCartRepository()

		guestItems, err := cartRepo.FindItemsByOwner(ctx, sessionOwner)
		if err != nil {
			return errors.Wrap(err, "failed to load guest cart")
		}

		for _, guestItem := range guestItems {
			if err := s.mergeLine(ctx, cartRepo, userOwner, guestItem); err != nil {
				s.logger.ErrorContext(ctx, "failed to merge guest cart line, skipping",
					slog.String("user_id", userID.String()),
					slog.String("product_id", guestItem.ProductID.String()),
					slog.Int("quantity", guestItem.Quantity),
					slog.Any("error", err))
			}
		}

		return cartRepo.ClearOwner(ctx, sessionOwner)
	})
}

// mergeLine folds one guest line into the user's cart, summing with any
// existing line for the same product.
func (s *cartService) mergeLine(ctx context.Context, cartRepo repository.CartRepository, userOwner entity.CartOwner, guestItem *entity.CartItem) error {
	existing, err := cartRepo.FindItem(ctx, userOwner, guestItem.ProductID)
	if err != nil {
		if !errors.Is(err, repository.ErrCartItemNotFound) {
			return errors.Wrap(err, "failed to load user cart item")
		}

		item := &entity.CartItem{
			Owner:     userOwner,
			ProductID: guestItem.ProductID,
			Quantity:  guestItem.Quantity,
		}

		return cartRepo.CreateItem(ctx, item)
	}

	return cartRepo.UpdateQuantity(ctx, userOwner, guestItem.ProductID, existing.Quantity+guestItem.Quantity)
}

// ClearCart removes every line of the owner's cart.
func (s *cartService) ClearCart(ctx context.Context, owner entity.CartOwner) error {
	return s.cartRepo.ClearOwner(ctx, owner)
}
