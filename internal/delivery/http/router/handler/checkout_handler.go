package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CheckoutHandlerParams holds dependencies for CheckoutHandler, injected by Fx.
type CheckoutHandlerParams struct {
	fx.In

	CheckoutUC usecase.CheckoutUsecase
	CartUC     usecase.CartUsecase
	PricingUC  usecase.PricingUsecase
	Logger     *slog.Logger
}

// CheckoutHandler holds dependencies for checkout-related handlers
type CheckoutHandler struct {
	checkoutUC usecase.CheckoutUsecase
	cartUC     usecase.CartUsecase
	pricingUC  usecase.PricingUsecase
	logger     *slog.Logger
}

// NewCheckoutHandler is the constructor for CheckoutHandler
func NewCheckoutHandler(params CheckoutHandlerParams) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutUC: params.CheckoutUC,
		cartUC:     params.CartUC,
		pricingUC:  params.PricingUC,
		logger:     params.Logger,
	}
}

// CheckoutRequest represents the request body for placing an order
type CheckoutRequest struct {
	Shipping   usecase.ShippingInfo `json:"shipping" validate:"required"`
	CouponCode string               `json:"coupon_code"`
}

// QuoteRequest represents the request body for pricing the cart without
// placing an order
type QuoteRequest struct {
	CountryCode string `json:"country_code" validate:"required,iso3166_1_alpha2"`
	State       string `json:"state"`
	CouponCode  string `json:"coupon_code"`
}

// Checkout handles converting the authenticated user's cart into an order
func (h *CheckoutHandler) Checkout(c echo.Context) error {
	userID, ok := middleware.UserIDFrom(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	var req CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid checkout input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.checkoutUC.Checkout(c.Request().Context(), &usecase.CheckoutInput{
		UserID:     userID,
		Owner:      entity.UserOwner(userID),
		Shipping:   req.Shipping,
		CouponCode: req.CouponCode,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, result, "Order placed successfully")
}

// Quote handles pricing the current cart for a destination without any side
// effects
func (h *CheckoutHandler) Quote(c echo.Context) error {
	userID, ok := middleware.UserIDFrom(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	var req QuoteRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid quote input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := usecase.WithTaxRateCache(c.Request().Context())

	view, err := h.cartUC.GetCart(ctx, entity.UserOwner(userID))
	if err != nil {
		return err
	}

	quote, err := h.pricingUC.Quote(ctx, view.Lines, req.CouponCode, req.CountryCode, req.State)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, quote, "Quote computed successfully")
}
