package handlers

import (
	"errors"
	"net/http"

	"tiffin/models"
	"tiffin/services/kitchen"
	"tiffin/services/slotclock"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RegisterKitchenHandler creates a new kitchen tenant with its admin passcode.
func (h *HandlerBundle) RegisterKitchenHandler(c *gin.Context) {
	logger := getLogger(c)

	var input struct {
		Kitchen       models.Kitchen `json:"kitchen"`
		AdminPasscode string         `json:"adminPasscode"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := h.KitchenSvc.RegisterKitchen(c.Request.Context(), &input.Kitchen, input.AdminPasscode); err != nil {
		var cfgErr *kitchen.ConfigError
		if errors.As(err, &cfgErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": cfgErr.Message})
			return
		}
		logger.Error("Failed to register kitchen", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register kitchen"})
		return
	}

	c.JSON(http.StatusCreated, input.Kitchen)
}

// GetKitchenHandler returns one kitchen's public profile and slot schedule.
func (h *HandlerBundle) GetKitchenHandler(c *gin.Context) {
	logger := getLogger(c)

	k, err := h.KitchenSvc.GetKitchen(c.Request.Context(), c.Param("kitchenId"))
	if err != nil {
		logger.Error("Failed to fetch kitchen", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch kitchen"})
		return
	}
	if k == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "kitchen not found"})
		return
	}

	c.JSON(http.StatusOK, k)
}

// ListKitchensHandler returns the kitchens serving a city. The city query is
// normalized before lookup so "New   Delhi" and "new delhi" match.
func (h *HandlerBundle) ListKitchensHandler(c *gin.Context) {
	logger := getLogger(c)

	city := c.Query("city")
	if city == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "city query parameter is required"})
		return
	}

	kitchens, err := h.KitchenSvc.ListKitchensByCity(c.Request.Context(), city)
	if err != nil {
		logger.Error("Failed to list kitchens", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list kitchens"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"city":     slotclock.DisplayLocation(slotclock.NormalizeLocation(city)),
		"kitchens": kitchens,
	})
}

// UpdateMealSlotsHandler replaces a kitchen's slot schedule.
func (h *HandlerBundle) UpdateMealSlotsHandler(c *gin.Context) {
	logger := getLogger(c)

	var slots map[string]models.MealSlotConfig
	if err := c.ShouldBindJSON(&slots); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := h.KitchenSvc.UpdateMealSlots(c.Request.Context(), c.Param("kitchenId"), slots); err != nil {
		var cfgErr *kitchen.ConfigError
		if errors.As(err, &cfgErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": cfgErr.Message})
			return
		}
		logger.Error("Failed to update meal slots", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update meal slots"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"mealSlots": slots})
}

// AdminLoginHandler exchanges a kitchen passcode for an admin JWT.
func (h *HandlerBundle) AdminLoginHandler(c *gin.Context) {
	logger := getLogger(c)

	var input struct {
		KitchenID string `json:"kitchenId"`
		Passcode  string `json:"passcode"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	token, err := h.KitchenSvc.AuthenticateAdmin(c.Request.Context(), input.KitchenID, input.Passcode)
	if err != nil {
		logger.Warn("Admin authentication failed", zap.String("kitchenId", input.KitchenID))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid kitchen or passcode"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
