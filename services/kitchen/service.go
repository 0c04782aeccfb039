package kitchen

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"time"

	"tiffin/models"
	"tiffin/services/slotclock"
	"tiffin/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Slot times must be zero-padded 24h "HH:MM": the slot clock compares them
// lexicographically, so an unpadded value would break ordering silently.
var slotTimeRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

func validateMealSlots(slots map[string]models.MealSlotConfig) error {
	for id, cfg := range slots {
		if !slotTimeRe.MatchString(cfg.Start) || !slotTimeRe.MatchString(cfg.End) {
			return NewConfigError(fmt.Sprintf("slot %q: times must be zero-padded HH:MM", id))
		}
		if cfg.End < cfg.Start {
			return NewConfigError(fmt.Sprintf("slot %q: overnight windows (end before start) are not supported", id))
		}
	}
	return nil
}

func normalizeAddress(addr *models.Address) {
	addr.NormalizedCity = slotclock.NormalizeLocation(addr.City)
	addr.NormalizedState = slotclock.NormalizeLocation(addr.State)
}

// RegisterKitchen creates a new kitchen tenant with a bcrypt-hashed admin
// passcode and a normalized address.
func (s *DefaultKitchenService) RegisterKitchen(ctx context.Context, kitchen *models.Kitchen, adminPasscode string) error {
	if kitchen.Name == "" {
		return NewConfigError("kitchen name is required")
	}
	if len(adminPasscode) < 4 {
		return NewConfigError("admin passcode must be at least 4 characters")
	}
	if err := validateMealSlots(kitchen.MealSlots); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPasscode), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin passcode: %w", err)
	}
	kitchen.AdminPasscodeHash = string(hash)
	normalizeAddress(&kitchen.Address)

	if err := s.Repo.Create(ctx, kitchen); err != nil {
		return fmt.Errorf("failed to register kitchen: %w", err)
	}
	return nil
}

// GetKitchen returns a kitchen by id, serving from the Redis cache when warm.
// A nil result with nil error means the kitchen does not exist.
func (s *DefaultKitchenService) GetKitchen(ctx context.Context, id string) (*models.Kitchen, error) {
	cacheKey := utils.KitchenCachePrefix + id

	if s.Cache != nil {
		if data, err := s.Cache.Get(ctx, cacheKey).Result(); err == nil {
			var kitchen models.Kitchen
			if err := json.Unmarshal([]byte(data), &kitchen); err == nil {
				return &kitchen, nil
			}
			// Corrupt cache entry: fall through to the store.
			s.Cache.Del(ctx, cacheKey)
		}
	}

	kitchen, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch kitchen %s: %w", id, err)
	}
	if kitchen == nil {
		return nil, nil
	}

	if s.Cache != nil {
		if data, err := json.Marshal(kitchen); err == nil {
			if err := s.Cache.Set(ctx, cacheKey, data, utils.KitchenCacheTTL).Err(); err != nil {
				utils.GetLogger().Warn("failed to cache kitchen", zap.String("kitchenId", id), zap.Error(err))
			}
		}
	}
	return kitchen, nil
}

// ListKitchensByCity lists kitchens in a city, matching on the normalized form.
func (s *DefaultKitchenService) ListKitchensByCity(ctx context.Context, city string) ([]models.Kitchen, error) {
	return s.Repo.GetByCity(ctx, slotclock.NormalizeLocation(city))
}

// UpdateKitchen overwrites mutable kitchen fields and invalidates the cache.
func (s *DefaultKitchenService) UpdateKitchen(ctx context.Context, kitchen *models.Kitchen) error {
	if err := validateMealSlots(kitchen.MealSlots); err != nil {
		return err
	}
	normalizeAddress(&kitchen.Address)

	if err := s.Repo.Update(ctx, kitchen); err != nil {
		return fmt.Errorf("failed to update kitchen %s: %w", kitchen.ID, err)
	}
	s.invalidate(ctx, kitchen.ID)
	return nil
}

// UpdateMealSlots replaces the slot schedule and invalidates the cache.
func (s *DefaultKitchenService) UpdateMealSlots(ctx context.Context, id string, slots map[string]models.MealSlotConfig) error {
	if err := validateMealSlots(slots); err != nil {
		return err
	}
	if err := s.Repo.UpdateMealSlots(ctx, id, slots); err != nil {
		return fmt.Errorf("failed to update meal slots for kitchen %s: %w", id, err)
	}
	s.invalidate(ctx, id)
	return nil
}

// AuthenticateAdmin verifies the kitchen admin passcode and issues an admin
// JWT scoped to that kitchen.
func (s *DefaultKitchenService) AuthenticateAdmin(ctx context.Context, kitchenID, passcode string) (string, error) {
	kitchen, err := s.Repo.GetByID(ctx, kitchenID)
	if err != nil {
		return "", fmt.Errorf("failed to fetch kitchen %s: %w", kitchenID, err)
	}
	if kitchen == nil {
		return "", NewConfigError("kitchen not found")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(kitchen.AdminPasscodeHash), []byte(passcode)); err != nil {
		return "", fmt.Errorf("invalid admin passcode")
	}
	return utils.GenerateToken(kitchenID, kitchenID, utils.RoleAdmin, 24*time.Hour)
}

func (s *DefaultKitchenService) invalidate(ctx context.Context, id string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, utils.KitchenCachePrefix+id).Err(); err != nil {
		utils.GetLogger().Warn("failed to invalidate kitchen cache", zap.String("kitchenId", id), zap.Error(err))
	}
}
