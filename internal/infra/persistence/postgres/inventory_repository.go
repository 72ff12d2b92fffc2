package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// inventoryMovementRepository implements the repository.InventoryMovementRepository interface.
type inventoryMovementRepository struct {
	db *gorm.DB
}

// NewInventoryMovementRepository is the constructor for inventoryMovementRepository.
func NewInventoryMovementRepository(db *gorm.DB) repository.InventoryMovementRepository {
	return &inventoryMovementRepository{
		db: db,
	}
}

// Append persists a new movement row. There is deliberately no update or
// delete counterpart; the ledger is append-only.
func (repo *inventoryMovementRepository) Append(ctx context.Context, movement *entity.InventoryMovement) error {
	movementM := fromMovementDomain(movement)

	if err := repo.db.WithContext(ctx).Create(movementM).Error; err != nil {
		return errors.Wrap(err, "failed to append inventory movement")
	}

	movement.ID = movementM.ID
	movement.CreatedAt = movementM.CreatedAt

	return nil
}

// FindByProduct retrieves all movements of a product in timestamp order, so
// replaying them over the initial stock reproduces the current quantity.
func (repo *inventoryMovementRepository) FindByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.InventoryMovement, error) {
	var movementModels []*model.InventoryMovementModel

	if err := repo.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at ASC").
		Find(&movementModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find movements by product")
	}

	movements := make([]*entity.InventoryMovement, 0, len(movementModels))
	for _, movementM := range movementModels {
		movements = append(movements, toMovementDomain(movementM))
	}

	return movements, nil
}

// --- Mapper Functions ---

// toMovementDomain converts a GORM InventoryMovementModel to a domain entity.
func toMovementDomain(data *model.InventoryMovementModel) *entity.InventoryMovement {
	if data == nil {
		return nil
	}

	return &entity.InventoryMovement{
		ID:               data.ID,
		ProductID:        data.ProductID,
		QuantityChange:   data.QuantityChange,
		PreviousQuantity: data.PreviousQuantity,
		NewQuantity:      data.NewQuantity,
		Type:             entity.MovementType(data.Type),
		ReferenceID:      data.ReferenceID,
		Actor:            data.Actor,
		CreatedAt:        data.CreatedAt,
	}
}

// fromMovementDomain converts a domain entity to a GORM InventoryMovementModel.
func fromMovementDomain(data *entity.InventoryMovement) *model.InventoryMovementModel {
	if data == nil {
		return nil
	}

	return &model.InventoryMovementModel{
		ID:               data.ID,
		ProductID:        data.ProductID,
		QuantityChange:   data.QuantityChange,
		PreviousQuantity: data.PreviousQuantity,
		NewQuantity:      data.NewQuantity,
		Type:             string(data.Type),
		ReferenceID:      data.ReferenceID,
		Actor:            data.Actor,
		CreatedAt:        data.CreatedAt,
	}
}
