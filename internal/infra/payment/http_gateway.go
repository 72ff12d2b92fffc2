// Package payment provides the HTTP client for the external payment gateway.
package payment

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"storefront/config"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
)

const defaultRequestTimeout = 10 * time.Second

// httpGateway implements the PaymentGateway interface against the provider's
// REST API.
type httpGateway struct {
	endpoint      string
	apiKey        string
	webhookSecret []byte
	httpClient    *http.Client
	logger        *slog.Logger
}

// NewHTTPGateway creates a new payment gateway client instance
func NewHTTPGateway(cfg *config.Config, logger *slog.Logger) (service.PaymentGateway, error) {
	if cfg.Payment == nil || cfg.Payment.Endpoint == "" {
		return nil, errors.New("payment gateway endpoint must be configured")
	}
	if cfg.Payment.WebhookSecret == "" {
		return nil, errors.New("payment webhook secret must be configured")
	}

	timeout := cfg.Payment.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	return &httpGateway{
		endpoint:      cfg.Payment.Endpoint,
		apiKey:        cfg.Payment.APIKey,
		webhookSecret: []byte(cfg.Payment.WebhookSecret),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}, nil
}

// createIntentRequest is the wire format of the provider's intent endpoint.
type createIntentRequest struct {
	OrderID  string            `json:"order_id"`
	Amount   string            `json:"amount"`
	Currency string            `json:"currency"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

type createIntentResponse struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
}

// CreateIntent registers a payment with the provider and returns its handle.
func (g *httpGateway) CreateIntent(ctx context.Context, req *service.PaymentIntentRequest) (*service.PaymentIntent, error) {
	body, err := json.Marshal(createIntentRequest{
		OrderID:  req.OrderID.String(),
		Amount:   req.Amount.String(),
		Currency: req.Currency,
		Metadata: req.Metadata,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal intent request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint+"/v1/payment_intents", bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "failed to build intent request")
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return nil, errors.Wrap(err, "payment gateway request failed")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read gateway response")
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		g.logger.ErrorContext(ctx, "payment gateway rejected intent",
			slog.Int("status", resp.StatusCode),
			slog.String("order_id", req.OrderID.String()))

		return nil, errors.Errorf("payment gateway returned status %d", resp.StatusCode)
	}

	var intentResp createIntentResponse
	if err := json.Unmarshal(respBody, &intentResp); err != nil {
		return nil, errors.Wrap(err, "failed to decode gateway response")
	}
	if intentResp.ID == "" {
		return nil, errors.New("payment gateway returned empty intent ID")
	}

	return &service.PaymentIntent{
		ID:           intentResp.ID,
		ClientSecret: intentResp.ClientSecret,
	}, nil
}

// webhookEvent is the wire format of the provider's webhook callbacks.
type webhookEvent struct {
	ID              string `json:"id"`
	Type            string `json:"type"`
	PaymentIntentID string `json:"payment_intent_id"`
	CreatedAt       int64  `json:"created_at"`
}

// VerifyWebhook checks the HMAC-SHA256 signature over the raw payload and
// parses the event. The signature is hex-encoded and compared in constant
// time.
func (g *httpGateway) VerifyWebhook(payload []byte, signature string) (*service.GatewayEvent, error) {
	mac := hmac.New(sha256.New, g.webhookSecret)
	mac.Write(payload)
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return nil, errors.New("webhook signature mismatch")
	}

	var event webhookEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, errors.Wrap(err, "failed to decode webhook payload")
	}
	if event.ID == "" || event.PaymentIntentID == "" {
		return nil, errors.New("webhook payload missing identifiers")
	}

	return &service.GatewayEvent{
		ID:         event.ID,
		Type:       service.GatewayEventType(event.Type),
		IntentID:   event.PaymentIntentID,
		OccurredAt: time.Unix(event.CreatedAt, 0),
	}, nil
}
