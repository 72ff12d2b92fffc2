package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionOwner(t *testing.T) {
	owner, err := SessionOwner("abc-123")
	require.NoError(t, err)
	assert.Equal(t, CartOwner("session:abc-123"), owner)

	_, err = SessionOwner("")
	assert.ErrorIs(t, err, ErrEmptyOwner)
}

func TestUserOwner(t *testing.T) {
	userID := uuid.New()
	assert.Equal(t, CartOwner("user:"+userID.String()), UserOwner(userID))
}

func TestOwnerKeysNeverCollide(t *testing.T) {
	// A session ID that happens to look like a user UUID must still map to a
	// distinct owner key.
	userID := uuid.New()
	sessionOwner, err := SessionOwner(userID.String())
	require.NoError(t, err)

	assert.NotEqual(t, UserOwner(userID), sessionOwner)
}

func TestNewCartLine(t *testing.T) {
	productID := uuid.New()

	line, err := NewCartLine(productID, 2)
	require.NoError(t, err)
	assert.Equal(t, productID, line.ProductID)
	assert.Equal(t, 2, line.Quantity)

	_, err = NewCartLine(productID, 0)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = NewCartLine(productID, -1)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}
