package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGateway(t *testing.T, endpoint string) service.PaymentGateway {
	cfg := &config.Config{
		Payment: &config.PaymentConfig{
			Endpoint:      endpoint,
			APIKey:        "sk_test_123",
			WebhookSecret: "whsec_test",
		},
	}

	gateway, err := NewHTTPGateway(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	return gateway
}

func signPayload(payload []byte) string {
	mac := hmac.New(sha256.New, []byte("whsec_test"))
	mac.Write(payload)

	return hex.EncodeToString(mac.Sum(nil))
}

func TestNewHTTPGateway_RequiresConfiguration(t *testing.T) {
	_, err := NewHTTPGateway(&config.Config{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.Error(t, err)

	_, err = NewHTTPGateway(&config.Config{
		Payment: &config.PaymentConfig{Endpoint: "https://gateway.example.com"},
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.Error(t, err, "webhook secret is mandatory")
}

func TestHTTPGateway_CreateIntent(t *testing.T) {
	orderID := uuid.New()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/payment_intents", r.URL.Path)
		assert.Equal(t, "Bearer sk_test_123", r.Header.Get("Authorization"))

		var req createIntentRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, orderID.String(), req.OrderID)
		assert.Equal(t, "55.2", req.Amount)
		assert.Equal(t, "USD", req.Currency)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(createIntentResponse{
			ID:           "pi_123",
			ClientSecret: "pi_123_secret",
		})
	}))
	defer srv.Close()

	gateway := newTestGateway(t, srv.URL)

	intent, err := gateway.CreateIntent(context.Background(), &service.PaymentIntentRequest{
		OrderID:  orderID,
		Amount:   decimal.RequireFromString("55.2"),
		Currency: "USD",
	})
	require.NoError(t, err)
	assert.Equal(t, "pi_123", intent.ID)
	assert.Equal(t, "pi_123_secret", intent.ClientSecret)
}

func TestHTTPGateway_CreateIntent_GatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	gateway := newTestGateway(t, srv.URL)

	_, err := gateway.CreateIntent(context.Background(), &service.PaymentIntentRequest{
		OrderID:  uuid.New(),
		Amount:   decimal.NewFromInt(10),
		Currency: "USD",
	})
	assert.Error(t, err)
}

func TestHTTPGateway_CreateIntent_EmptyIntentID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(createIntentResponse{ClientSecret: "secret-without-id"})
	}))
	defer srv.Close()

	gateway := newTestGateway(t, srv.URL)

	_, err := gateway.CreateIntent(context.Background(), &service.PaymentIntentRequest{
		OrderID:  uuid.New(),
		Amount:   decimal.NewFromInt(10),
		Currency: "USD",
	})
	assert.Error(t, err)
}

func TestHTTPGateway_VerifyWebhook(t *testing.T) {
	gateway := newTestGateway(t, "https://gateway.example.com")

	createdAt := time.Now().Unix()
	payload, err := json.Marshal(webhookEvent{
		ID:              "evt_1",
		Type:            "payment_intent.succeeded",
		PaymentIntentID: "pi_123",
		CreatedAt:       createdAt,
	})
	require.NoError(t, err)

	event, err := gateway.VerifyWebhook(payload, signPayload(payload))
	require.NoError(t, err)

	assert.Equal(t, "evt_1", event.ID)
	assert.Equal(t, service.GatewayEventSucceeded, event.Type)
	assert.Equal(t, "pi_123", event.IntentID)
	assert.Equal(t, createdAt, event.OccurredAt.Unix())
}

func TestHTTPGateway_VerifyWebhook_BadSignature(t *testing.T) {
	gateway := newTestGateway(t, "https://gateway.example.com")

	payload := []byte(`{"id":"evt_1","type":"payment_intent.succeeded","payment_intent_id":"pi_123"}`)

	_, err := gateway.VerifyWebhook(payload, "deadbeef")
	assert.Error(t, err)

	// A valid signature over a different payload must not verify either.
	_, err = gateway.VerifyWebhook(payload, signPayload([]byte("other payload")))
	assert.Error(t, err)
}

func TestHTTPGateway_VerifyWebhook_MissingIdentifiers(t *testing.T) {
	gateway := newTestGateway(t, "https://gateway.example.com")

	payload := []byte(`{"type":"payment_intent.succeeded"}`)

	_, err := gateway.VerifyWebhook(payload, signPayload(payload))
	assert.Error(t, err)
}
