package main

import (
	"storefront/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.ProductModel{},
		model.CartItemModel{},
		model.InventoryMovementModel{},
		model.CouponModel{},
		model.CouponUsageModel{},
		model.TaxRateModel{},
		model.OrderModel{},
		model.OrderItemModel{},
		model.OutboxEventModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
