package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HeaderSessionID carries the guest session key for anonymous carts.
const HeaderSessionID = "X-Session-ID"

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC usecase.CartUsecase
	Logger *slog.Logger
}

// CartHandler holds dependencies for cart-related handlers
type CartHandler struct {
	cartUC usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		cartUC: params.CartUC,
		logger: params.Logger,
	}
}

// AddItemRequest represents the request body for adding a cart item
type AddItemRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

// UpdateItemRequest represents the request body for changing a line quantity
type UpdateItemRequest struct {
	Quantity int `json:"quantity" validate:"min=0"`
}

// cartOwner resolves the cart owner for the request: the authenticated user
// when a token was presented, otherwise the guest session header.
func cartOwner(c echo.Context) (entity.CartOwner, error) {
	if userID, ok := middleware.UserIDFrom(c); ok {
		return entity.UserOwner(userID), nil
	}

	owner, err := entity.SessionOwner(c.Request().Header.Get(HeaderSessionID))
	if err != nil {
		return "", response.BadRequest(c, "MISSING_SESSION", "X-Session-ID header is required for guest carts")
	}

	return owner, nil
}

// GetCart handles retrieving the reconciled cart view
func (h *CartHandler) GetCart(c echo.Context) error {
	owner, err := cartOwner(c)
	if err != nil {
		return err
	}

	view, err := h.cartUC.GetCart(c.Request().Context(), owner)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, view, "Cart retrieved successfully")
}

// AddItem handles adding a product to the cart
func (h *CartHandler) AddItem(c echo.Context) error {
	owner, err := cartOwner(c)
	if err != nil {
		return err
	}

	var req AddItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid cart item input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	if err := h.cartUC.AddItem(c.Request().Context(), owner, productID, req.Quantity); err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, nil, "Item added to cart")
}

// UpdateItem handles setting a line quantity; zero removes the line
func (h *CartHandler) UpdateItem(c echo.Context) error {
	owner, err := cartOwner(c)
	if err != nil {
		return err
	}

	productID, err := uuid.Parse(c.Param("productID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	var req UpdateItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid quantity input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.cartUC.UpdateItemQuantity(c.Request().Context(), owner, productID, req.Quantity); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "Cart item updated")
}

// RemoveItem handles deleting a line from the cart
func (h *CartHandler) RemoveItem(c echo.Context) error {
	owner, err := cartOwner(c)
	if err != nil {
		return err
	}

	productID, err := uuid.Parse(c.Param("productID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	if err := h.cartUC.RemoveItem(c.Request().Context(), owner, productID); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "Cart item removed")
}

// ClearCart handles emptying the cart
func (h *CartHandler) ClearCart(c echo.Context) error {
	owner, err := cartOwner(c)
	if err != nil {
		return err
	}

	if err := h.cartUC.ClearCart(c.Request().Context(), owner); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "Cart cleared")
}

// MergeCart handles folding the guest session cart into the authenticated
// user's cart after login
func (h *CartHandler) MergeCart(c echo.Context) error {
	userID, ok := middleware.UserIDFrom(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	sessionOwner, err := entity.SessionOwner(c.Request().Header.Get(HeaderSessionID))
	if err != nil {
		return response.BadRequest(c, "MISSING_SESSION", "X-Session-ID header is required to merge a guest cart")
	}

	if err := h.cartUC.MergeGuestCart(c.Request().Context(), sessionOwner, userID); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "Guest cart merged")
}
