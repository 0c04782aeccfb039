package menu

import (
	"context"

	menuRepo "tiffin/database/repository/menu"
	"tiffin/models"
	"tiffin/services/kitchen"
)

// EffectiveMenu is what a student browsing a kitchen right now should see:
// the menu filed under the effective business date, the single slot in
// focus, and the slots still open for ordering.
type EffectiveMenu struct {
	DateID         string       `json:"dateId"`
	EffectiveSlot  string       `json:"effectiveSlot,omitempty"`
	AvailableSlots []string     `json:"availableSlots"`
	Menu           *models.Menu `json:"menu,omitempty"`
}

// MenuService manages per-day menus.
type MenuService interface {
	SetMenu(ctx context.Context, menu *models.Menu) error
	GetMenu(ctx context.Context, kitchenID, dateID string) (*models.Menu, error)
	GetEffectiveMenu(ctx context.Context, kitchenID string) (*EffectiveMenu, error)
}

// DefaultMenuService implements MenuService.
type DefaultMenuService struct {
	Repo       menuRepo.MenuRepository
	KitchenSvc kitchen.KitchenService
}
