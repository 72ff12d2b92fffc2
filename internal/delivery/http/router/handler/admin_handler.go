package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	InventoryUC usecase.InventoryUsecase
	OrderUC     usecase.OrderUsecase
	Logger      *slog.Logger
}

// AdminHandler holds dependencies for operator-facing handlers
type AdminHandler struct {
	inventoryUC usecase.InventoryUsecase
	orderUC     usecase.OrderUsecase
	logger      *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		inventoryUC: params.InventoryUC,
		orderUC:     params.OrderUC,
		logger:      params.Logger,
	}
}

// AdjustStockRequest represents the request body for a manual stock correction
type AdjustStockRequest struct {
	Delta     int    `json:"delta" validate:"required"`
	Reference string `json:"reference" validate:"required"`
}

// ShipOrderRequest represents the request body for marking an order shipped
type ShipOrderRequest struct {
	TrackingNumber string `json:"tracking_number" validate:"required"`
}

// AdjustStock handles a manual operator stock correction
func (h *AdminHandler) AdjustStock(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("productID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	var req AdjustStockRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid adjustment input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	actor := "admin"
	if userID, ok := middleware.UserIDFrom(c); ok {
		actor = userID.String()
	}

	movement, err := h.inventoryUC.Adjust(c.Request().Context(), productID, req.Delta, req.Reference, actor)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, movement, "Stock adjusted")
}

// MovementHistory handles retrieving a product's stock movement trail
func (h *AdminHandler) MovementHistory(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("productID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	movements, err := h.inventoryUC.MovementHistory(c.Request().Context(), productID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, movements, "Movement history retrieved")
}

// VerifyLedger handles replaying a product's ledger against its stock
func (h *AdminHandler) VerifyLedger(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("productID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	consistent, err := h.inventoryUC.VerifyLedger(c.Request().Context(), productID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]bool{"consistent": consistent}, "Ledger verified")
}

// ShipOrder handles marking a paid order as shipped
func (h *AdminHandler) ShipOrder(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	var req ShipOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid shipping input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	order, err := h.orderUC.MarkShipped(c.Request().Context(), orderID, req.TrackingNumber)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, order, "Order marked shipped")
}

// DeliverOrder handles marking a shipped order as delivered
func (h *AdminHandler) DeliverOrder(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	order, err := h.orderUC.MarkDelivered(c.Request().Context(), orderID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, order, "Order marked delivered")
}
