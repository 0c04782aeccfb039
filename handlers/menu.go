package handlers

import (
	"errors"
	"net/http"

	"tiffin/models"
	"tiffin/services/kitchen"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SetMenuHandler writes the day's menu for a kitchen, replacing any previous
// version for the same date.
func (h *HandlerBundle) SetMenuHandler(c *gin.Context) {
	logger := getLogger(c)

	var m models.Menu
	if err := c.ShouldBindJSON(&m); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	m.KitchenID = c.Param("kitchenId")
	if adminID, exists := c.Get("adminID"); exists {
		m.UpdatedBy, _ = adminID.(string)
	}

	if err := h.MenuSvc.SetMenu(c.Request.Context(), &m); err != nil {
		var cfgErr *kitchen.ConfigError
		if errors.As(err, &cfgErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": cfgErr.Message})
			return
		}
		logger.Error("Failed to set menu", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to set menu"})
		return
	}

	c.JSON(http.StatusOK, m)
}

// GetMenuHandler returns the stored menu for an explicit date.
func (h *HandlerBundle) GetMenuHandler(c *gin.Context) {
	logger := getLogger(c)

	m, err := h.MenuSvc.GetMenu(c.Request.Context(), c.Param("kitchenId"), c.Param("dateId"))
	if err != nil {
		logger.Error("Failed to fetch menu", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch menu"})
		return
	}
	if m == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no menu set for this date"})
		return
	}

	c.JSON(http.StatusOK, m)
}

// GetEffectiveMenuHandler resolves what a student browsing right now should
// see: effective business date, slot in focus, slots still open, and the menu.
func (h *HandlerBundle) GetEffectiveMenuHandler(c *gin.Context) {
	logger := getLogger(c)

	eff, err := h.MenuSvc.GetEffectiveMenu(c.Request.Context(), c.Param("kitchenId"))
	if err != nil {
		logger.Error("Failed to resolve effective menu", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve effective menu"})
		return
	}
	c.JSON(http.StatusOK, eff)
}
