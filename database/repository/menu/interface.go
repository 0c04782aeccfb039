// File: database/repository/menu/interface.go
package menuRepo

import (
	"context"

	"tiffin/database"
	"tiffin/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// MenuRepository defines methods for per-day menu data access. There is at
// most one menu document per (kitchen, business date).
type MenuRepository interface {
	// Upsert creates or overwrites the menu for (kitchenId, dateId).
	Upsert(ctx context.Context, menu *models.Menu) error
	// GetByKitchenAndDate retrieves the menu for a business date, nil when unset.
	GetByKitchenAndDate(ctx context.Context, kitchenID, dateID string) (*models.Menu, error)
}

type mongoMenuRepo struct {
	coll *mongo.Collection
}

// NewMongoMenuRepo constructs a new MongoDB MenuRepository.
func NewMongoMenuRepo() MenuRepository {
	return &mongoMenuRepo{
		coll: database.DB().Collection("menus"),
	}
}
