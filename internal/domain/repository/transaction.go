package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a
// specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	// Otherwise, it's committed. All repository operations within the function
	// use the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to one specific
// transaction. Passing the factory into a component is how that component
// joins the caller's transaction instead of opening its own.
type RepositoryFactory interface {
	// NewProductRepository returns a ProductRepository bound to the current transaction.
	NewProductRepository() ProductRepository

	// NewCartRepository returns a CartRepository bound to the current transaction.
	NewCartRepository() CartRepository

	// NewInventoryMovementRepository returns an InventoryMovementRepository bound to the current transaction.
	NewInventoryMovementRepository() InventoryMovementRepository

	// NewCouponRepository returns a CouponRepository bound to the current transaction.
	NewCouponRepository() CouponRepository

	// NewTaxRateRepository returns a TaxRateRepository bound to the current transaction.
	NewTaxRateRepository() TaxRateRepository

	// NewOrderRepository returns an OrderRepository bound to the current transaction.
	NewOrderRepository() OrderRepository

	// NewOutboxRepository returns an OutboxRepository bound to the current transaction.
	NewOutboxRepository() OutboxRepository
}
