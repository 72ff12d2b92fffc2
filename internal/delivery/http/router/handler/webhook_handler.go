package handler

import (
	"io"
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HeaderGatewaySignature carries the HMAC signature of the webhook payload.
const HeaderGatewaySignature = "X-Gateway-Signature"

// WebhookHandlerParams holds dependencies for WebhookHandler, injected by Fx.
type WebhookHandlerParams struct {
	fx.In

	PaymentUC usecase.PaymentUsecase
	Logger    *slog.Logger
}

// WebhookHandler receives asynchronous callbacks from the payment gateway
type WebhookHandler struct {
	paymentUC usecase.PaymentUsecase
	logger    *slog.Logger
}

// NewWebhookHandler is the constructor for WebhookHandler
func NewWebhookHandler(params WebhookHandlerParams) *WebhookHandler {
	return &WebhookHandler{
		paymentUC: params.PaymentUC,
		logger:    params.Logger,
	}
}

// HandlePaymentWebhook verifies and applies one gateway event. A 200 response
// acknowledges the delivery; the gateway retries anything else.
func (h *WebhookHandler) HandlePaymentWebhook(c echo.Context) error {
	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Failed to read webhook body")
	}

	signature := c.Request().Header.Get(HeaderGatewaySignature)

	if err := h.paymentUC.HandleWebhook(c.Request().Context(), payload, signature); err != nil {
		return err
	}

	return c.NoContent(http.StatusOK)
}
