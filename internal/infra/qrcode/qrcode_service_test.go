package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQRCodeService_GeneratePickupQR(t *testing.T) {
	service := NewQRCodeService(256, "M")

	png, err := service.GeneratePickupQR(uuid.New())
	require.NoError(t, err)
	assert.NotEmpty(t, png)

	// PNG magic bytes.
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}

func TestQRCodeService_ParsePickupQR(t *testing.T) {
	service := NewQRCodeService(256, "M")
	orderID := uuid.New()

	payload, err := json.Marshal(QRCodeData{OrderID: orderID.String(), Type: "pickup"})
	require.NoError(t, err)

	parsed, err := service.ParsePickupQR(string(payload))
	require.NoError(t, err)
	assert.Equal(t, orderID, parsed)
}

func TestQRCodeService_ParsePickupQR_WrongType(t *testing.T) {
	service := NewQRCodeService(256, "M")

	payload, err := json.Marshal(QRCodeData{OrderID: uuid.New().String(), Type: "refund"})
	require.NoError(t, err)

	_, err = service.ParsePickupQR(string(payload))
	assert.Error(t, err)
}

func TestQRCodeService_ParsePickupQR_MalformedData(t *testing.T) {
	service := NewQRCodeService(256, "M")

	_, err := service.ParsePickupQR("not-json")
	assert.Error(t, err)

	_, err = service.ParsePickupQR(`{"order_id":"not-a-uuid","type":"pickup"}`)
	assert.Error(t, err)
}
