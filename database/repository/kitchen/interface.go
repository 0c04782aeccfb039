// File: database/repository/kitchen/interface.go
package kitchenRepo

import (
	"context"

	"tiffin/database"
	"tiffin/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// KitchenRepository defines methods for kitchen data access.
type KitchenRepository interface {
	// Create inserts a new kitchen record.
	Create(ctx context.Context, kitchen *models.Kitchen) error
	// GetByID retrieves a kitchen by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Kitchen, error)
	// GetByCity retrieves all kitchens in a normalized city.
	GetByCity(ctx context.Context, normalizedCity string) ([]models.Kitchen, error)
	// Update overwrites mutable kitchen fields.
	Update(ctx context.Context, kitchen *models.Kitchen) error
	// UpdateMealSlots replaces the kitchen's slot schedule.
	UpdateMealSlots(ctx context.Context, id string, slots map[string]models.MealSlotConfig) error
}

type mongoKitchenRepo struct {
	coll *mongo.Collection
}

// NewMongoKitchenRepo constructs a new MongoDB KitchenRepository.
func NewMongoKitchenRepo() KitchenRepository {
	return &mongoKitchenRepo{
		coll: database.DB().Collection("kitchens"),
	}
}
