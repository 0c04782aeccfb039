package handlers

import (
	"fmt"
	"net/http"
	"time"

	"tiffin/cron"
	"tiffin/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ScheduleSlotRemindersHandler enqueues a "slot closing soon" push for every
// student who has not yet ordered for the given slot and date. Reminders fire
// 30 minutes before the slot's ordering window ends.
func (h *HandlerBundle) ScheduleSlotRemindersHandler(c *gin.Context) {
	logger := getLogger(c)

	kitchenID := c.Param("kitchenId")
	var input struct {
		Slot   string `json:"slot"`
		DateID string `json:"dateId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Slot == "" || input.DateID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "slot and dateId are required"})
		return
	}

	kitchen, err := h.KitchenSvc.GetKitchen(c.Request.Context(), kitchenID)
	if err != nil || kitchen == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "kitchen not found"})
		return
	}
	cfg, ok := kitchen.MealSlots[input.Slot]
	if !ok || !cfg.Active {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("slot %q is not active", input.Slot)})
		return
	}

	slotEnd, err := time.ParseInLocation("2006-01-02 15:04", input.DateID+" "+cfg.End, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid dateId"})
		return
	}
	fireAt := slotEnd.Add(-30 * time.Minute)

	orders, err := h.OrderSvc.GetOrdersForDate(c.Request.Context(), kitchenID, input.DateID)
	if err != nil {
		logger.Error("Failed to fetch orders for reminders", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to schedule reminders"})
		return
	}
	ordered := make(map[string]bool)
	for _, o := range orders {
		if o.Slot == input.Slot && o.UserID != "" {
			ordered[o.UserID] = true
		}
	}

	students, err := h.StudentRepo.GetByKitchen(c.Request.Context(), kitchenID)
	if err != nil {
		logger.Error("Failed to fetch students for reminders", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to schedule reminders"})
		return
	}

	scheduled := 0
	for _, s := range students {
		if ordered[s.ID] || s.FCMToken == "" {
			continue
		}
		payload := models.SlotReminderPayload{
			KitchenID: kitchenID,
			StudentID: s.ID,
			Slot:      input.Slot,
			DateID:    input.DateID,
			Title:     fmt.Sprintf("%s closing soon", kitchen.Name),
			Body:      fmt.Sprintf("Ordering for %s closes at %s. Don't miss your dabba!", input.Slot, cfg.End),
		}
		if err := cron.EnqueueSlotReminder(payload, fireAt); err != nil {
			logger.Warn("Failed to enqueue reminder", zap.String("studentId", s.ID), zap.Error(err))
			continue
		}
		scheduled++
	}

	c.JSON(http.StatusOK, gin.H{"scheduled": scheduled, "fireAt": fireAt})
}
