package entity

import (
	"fmt"
	"time"

	"storefront/internal/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrInvalidQuantity is returned by constructors when a quantity below one is supplied.
var ErrInvalidQuantity = errors.New("quantity must be at least 1")

// ErrEmptyOwner is returned when a cart owner key cannot be built from empty input.
var ErrEmptyOwner = errors.New("cart owner must not be empty")

// CartOwner identifies who a cart row belongs to. Guest carts are keyed by the
// HTTP session, authenticated carts by the user ID. The owner is always passed
// explicitly; cart operations never read ambient session state.
type CartOwner string

// SessionOwner builds the owner key for a guest cart held by a session.
func SessionOwner(sessionID string) (CartOwner, error) {
	if sessionID == "" {
		return "", ErrEmptyOwner
	}

	return CartOwner("session:" + sessionID), nil
}

// UserOwner builds the owner key for an authenticated user's persisted cart.
func UserOwner(userID uuid.UUID) CartOwner {
	return CartOwner("user:" + userID.String())
}

// CartItem is one row of a cart: exactly one row exists per (owner, product),
// and a quantity of zero means the row is deleted rather than stored.
type CartItem struct {
	ID        uuid.UUID `json:"id"`
	Owner     CartOwner `json:"owner"`
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CartLine is the typed (product, quantity) pair handed to checkout and merge
// operations.
type CartLine struct {
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
}

// NewCartLine builds a CartLine, rejecting non-positive quantities.
func NewCartLine(productID uuid.UUID, quantity int) (CartLine, error) {
	if quantity < 1 {
		return CartLine{}, errors.Wrap(ErrInvalidQuantity, fmt.Sprintf("quantity %d", quantity))
	}

	return CartLine{ProductID: productID, Quantity: quantity}, nil
}

// CartViewLine is a cart row joined with its product for display and pricing.
// StockWarning is a soft hint only; the authoritative stock check happens at
// checkout under the ledger's row lock.
type CartViewLine struct {
	Product      *Product        `json:"product"`
	Quantity     int             `json:"quantity"`
	LineTotal    decimal.Decimal `json:"line_total"`
	StockWarning bool            `json:"stock_warning"`
}
