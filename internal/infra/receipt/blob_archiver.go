// Package receipt archives immutable receipt documents for paid orders in a
// blob bucket.
package receipt

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// bucket driver for local development
	_ "gocloud.dev/blob/gcsblob"  // gs:// bucket driver
)

type blobArchiver struct {
	bucket *blob.Bucket
}

// receiptDocument is the JSON document written per paid order.
type receiptDocument struct {
	OrderID        string         `json:"order_id"`
	UserID         string         `json:"user_id"`
	Currency       string         `json:"currency"`
	Subtotal       string         `json:"subtotal"`
	DiscountAmount string         `json:"discount_amount"`
	ShippingCost   string         `json:"shipping_cost"`
	TaxAmount      string         `json:"tax_amount"`
	TotalAmount    string         `json:"total_amount"`
	Items          []receiptItem  `json:"items"`
	PaidAt         time.Time      `json:"paid_at"`
}

type receiptItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
}

// NewBlobArchiver opens the configured bucket and returns a receipt archiver.
func NewBlobArchiver(ctx context.Context, cfg *config.Config) (service.ReceiptArchiver, error) {
	if cfg.Receipt == nil || cfg.Receipt.BucketURL == "" {
		return nil, errors.New("receipt bucket URL must be configured")
	}

	bucket, err := blob.OpenBucket(ctx, cfg.Receipt.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open receipt bucket")
	}

	return &blobArchiver{bucket: bucket}, nil
}

// Store writes the receipt for the given order. The key embeds the order ID,
// so replayed archive attempts overwrite the same document.
func (a *blobArchiver) Store(ctx context.Context, order *entity.Order) error {
	items := make([]receiptItem, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, receiptItem{
			ProductID: item.ProductID.String(),
			Quantity:  item.Quantity,
			UnitPrice: item.PriceAtPurchase.String(),
		})
	}

	doc := receiptDocument{
		OrderID:        order.ID.String(),
		UserID:         order.UserID.String(),
		Currency:       order.Currency,
		Subtotal:       order.Subtotal.String(),
		DiscountAmount: order.DiscountAmount.String(),
		ShippingCost:   order.ShippingCost.String(),
		TaxAmount:      order.TaxAmount.String(),
		TotalAmount:    order.TotalAmount.String(),
		Items:          items,
		PaidAt:         time.Now().UTC(),
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return errors.Wrap(err, "failed to marshal receipt")
	}

	key := fmt.Sprintf("receipts/%s.json", order.ID)

	if err := a.bucket.WriteAll(ctx, key, data, &blob.WriterOptions{
		ContentType: "application/json",
	}); err != nil {
		return errors.Wrap(err, "failed to write receipt")
	}

	return nil
}

// Close releases the bucket handle.
func (a *blobArchiver) Close() error {
	return a.bucket.Close()
}
