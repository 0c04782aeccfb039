package menu

import (
	"context"
	"fmt"
	"time"

	"tiffin/models"
	"tiffin/services/kitchen"
	"tiffin/services/slotclock"
)

// SetMenu validates and overwrites the menu for (kitchen, business date).
// Admin-only at the route layer.
func (s *DefaultMenuService) SetMenu(ctx context.Context, menu *models.Menu) error {
	if menu.KitchenID == "" || menu.DateID == "" {
		return kitchen.NewConfigError("menu requires kitchenId and dateId")
	}
	for slotID, slot := range menu.Slots {
		switch slot.Type {
		case models.MenuTypeRotiSabzi:
			if slot.RotiSabzi == nil {
				return kitchen.NewConfigError(fmt.Sprintf("slot %q: roti-sabzi payload missing", slotID))
			}
		case models.MenuTypeOther:
			if slot.Other == nil {
				return kitchen.NewConfigError(fmt.Sprintf("slot %q: item payload missing", slotID))
			}
		default:
			return kitchen.NewConfigError(fmt.Sprintf("slot %q: unknown menu type %q", slotID, slot.Type))
		}
	}

	if err := s.Repo.Upsert(ctx, menu); err != nil {
		return fmt.Errorf("failed to save menu: %w", err)
	}
	return nil
}

// GetMenu returns the menu for a business date; nil when none is set yet.
func (s *DefaultMenuService) GetMenu(ctx context.Context, kitchenID, dateID string) (*models.Menu, error) {
	return s.Repo.GetByKitchenAndDate(ctx, kitchenID, dateID)
}

// GetEffectiveMenu resolves "which slot, which date" via the slot clock and
// returns the menu filed under that date. A kitchen with no active slots or
// no menu set yields an EffectiveMenu with empty fields, not an error.
func (s *DefaultMenuService) GetEffectiveMenu(ctx context.Context, kitchenID string) (*EffectiveMenu, error) {
	kitchen, err := s.KitchenSvc.GetKitchen(ctx, kitchenID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve kitchen %s: %w", kitchenID, err)
	}
	if kitchen == nil {
		return nil, fmt.Errorf("kitchen %s not found", kitchenID)
	}

	now := time.Now()
	dateID := slotclock.EffectiveMenuDateKey(kitchen, now)
	menu, err := s.Repo.GetByKitchenAndDate(ctx, kitchenID, dateID)
	if err != nil {
		return nil, err
	}

	// A closed kitchen serializes as an empty list, not null.
	available := slotclock.AvailableSlotsForOrdering(kitchen, now)
	if available == nil {
		available = []string{}
	}

	return &EffectiveMenu{
		DateID:         dateID,
		EffectiveSlot:  slotclock.EffectiveMealSlot(kitchen, now),
		AvailableSlots: available,
		Menu:           menu,
	}, nil
}
