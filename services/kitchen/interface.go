package kitchen

import (
	"context"

	kitchenRepo "tiffin/database/repository/kitchen"
	"tiffin/models"

	"github.com/go-redis/redis/v8"
)

// KitchenService manages kitchen tenants and their slot schedules.
type KitchenService interface {
	RegisterKitchen(ctx context.Context, kitchen *models.Kitchen, adminPasscode string) error
	GetKitchen(ctx context.Context, id string) (*models.Kitchen, error)
	ListKitchensByCity(ctx context.Context, city string) ([]models.Kitchen, error)
	UpdateKitchen(ctx context.Context, kitchen *models.Kitchen) error
	UpdateMealSlots(ctx context.Context, id string, slots map[string]models.MealSlotConfig) error
	AuthenticateAdmin(ctx context.Context, kitchenID, passcode string) (string, error)
}

// DefaultKitchenService implements KitchenService with a Redis read-through
// cache in front of the kitchen collection: slot resolution reads the kitchen
// document on every request, and the config changes rarely.
type DefaultKitchenService struct {
	Repo  kitchenRepo.KitchenRepository
	Cache *redis.Client
}
