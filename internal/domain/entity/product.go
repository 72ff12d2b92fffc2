// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product represents a sellable catalog item together with its stock state.
// The checkout core only reads product data and mutates stock through the
// inventory ledger; catalog management itself lives outside this service.
type Product struct {
	ID                uuid.UUID       `json:"id"`                 // The Global Unique Identifier (GUID) for the product.
	Name              string          `json:"name"`               // Display name, captured on alerts and receipts.
	Price             decimal.Decimal `json:"price"`              // Current catalog price. Orders freeze their own copy at checkout.
	StockQuantity     int             `json:"stock_quantity"`     // Units on hand. May be negative only when BackorderAllowed.
	BackorderAllowed  bool            `json:"backorder_allowed"`  // Whether the product may be sold past zero stock.
	LowStockThreshold int             `json:"low_stock_threshold"` // Absolute quantity below which the product counts as low on stock.
	InitialStock      int             `json:"initial_stock"`      // Stock level the product was seeded with; baseline for ledger replay.
	IsActive          bool            `json:"is_active"`          // Inactive products cannot be added to carts or checked out.
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// CanFulfill reports whether qty units could be decremented from the current
// stock level without violating the backorder policy. This is only a snapshot
// check; the authoritative decision happens under the ledger's row lock.
func (p *Product) CanFulfill(qty int) bool {
	return p.BackorderAllowed || p.StockQuantity-qty >= 0
}

// LowOnStock reports whether quantity has fallen to or below the product's
// low-stock threshold and below alertPercent of the initial stock. Both
// conditions must hold before an alert is raised.
func (p *Product) LowOnStock(quantity int, alertPercent float64) bool {
	if quantity > p.LowStockThreshold {
		return false
	}
	if p.InitialStock <= 0 {
		return true
	}

	return float64(quantity)/float64(p.InitialStock)*100 <= alertPercent
}
