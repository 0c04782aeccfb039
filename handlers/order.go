package handlers

import (
	"errors"
	"io"
	"net/http"

	orderRepo "tiffin/database/repository/order"
	"tiffin/models"
	"tiffin/services/order"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func orderErrorStatus(err error) int {
	var ve *order.ValidationError
	var te *order.TransitionError
	switch {
	case errors.As(err, &ve):
		return http.StatusBadRequest
	case errors.As(err, &te), errors.Is(err, orderRepo.ErrStatusConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// PlaceOrderHandler records a student's order for a slot that is still open.
func (h *HandlerBundle) PlaceOrderHandler(c *gin.Context) {
	logger := getLogger(c)

	var ord models.Order
	if err := c.ShouldBindJSON(&ord); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if studentID, exists := c.Get("studentID"); exists {
		ord.UserID, _ = studentID.(string)
	}

	id, err := h.OrderSvc.PlaceOrder(c.Request.Context(), c.Param("kitchenId"), ord)
	if err != nil {
		status := orderErrorStatus(err)
		if status == http.StatusInternalServerError {
			logger.Error("Failed to place order", zap.Error(err))
			c.JSON(status, gin.H{"error": "Failed to place order"})
			return
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"orderId": id})
}

// PlaceManualOrderHandler records a phone or walk-in order keyed in by the
// admin, typically already confirmed and owed on the khata.
func (h *HandlerBundle) PlaceManualOrderHandler(c *gin.Context) {
	logger := getLogger(c)

	var ord models.Order
	if err := c.ShouldBindJSON(&ord); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	adminID, _ := c.Get("adminID")
	recordedBy, _ := adminID.(string)

	id, err := h.OrderSvc.PlaceManualOrder(c.Request.Context(), c.Param("kitchenId"), ord, recordedBy)
	if err != nil {
		status := orderErrorStatus(err)
		if status == http.StatusInternalServerError {
			logger.Error("Failed to record manual order", zap.Error(err))
			c.JSON(status, gin.H{"error": "Failed to record manual order"})
			return
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"orderId": id})
}

// UpdateOrderStatusHandler advances an order one lifecycle step. Illegal
// transitions come back 409, never a partial write.
func (h *HandlerBundle) UpdateOrderStatusHandler(c *gin.Context) {
	logger := getLogger(c)

	var input struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	newStatus := models.NormalizeOrderStatus(input.Status)
	err := h.OrderSvc.UpdateOrderStatus(c.Request.Context(), c.Param("kitchenId"), c.Param("orderId"), newStatus)
	if err != nil {
		status := orderErrorStatus(err)
		if status == http.StatusInternalServerError {
			logger.Error("Failed to update order status", zap.Error(err))
			c.JSON(status, gin.H{"error": "Failed to update order status"})
			return
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": newStatus})
}

// GetOrdersForDateHandler returns a business date's orders, newest first.
func (h *HandlerBundle) GetOrdersForDateHandler(c *gin.Context) {
	logger := getLogger(c)

	orders, err := h.OrderSvc.GetOrdersForDate(c.Request.Context(), c.Param("kitchenId"), c.Param("dateId"))
	if err != nil {
		logger.Error("Failed to fetch orders", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// GetMyOrdersHandler returns the authenticated student's order history,
// including manual entries matched by phone number.
func (h *HandlerBundle) GetMyOrdersHandler(c *gin.Context) {
	logger := getLogger(c)

	studentID := c.GetString("studentID")
	orders, err := h.OrderSvc.GetMyOrders(c.Request.Context(), c.Param("kitchenId"), studentID, c.Query("phoneNumber"))
	if err != nil {
		logger.Error("Failed to fetch student orders", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// streamOrders pushes each new result set of a live order subscription as one
// SSE event until the client disconnects.
func streamOrders(c *gin.Context, subscribe func(onChange func([]models.Order), onError func(error)) (func(), error)) {
	logger := getLogger(c)

	updates := make(chan []models.Order, 1)
	unsubscribe, err := subscribe(
		func(orders []models.Order) {
			select {
			case updates <- orders:
			case <-c.Request.Context().Done():
			}
		},
		func(err error) {
			logger.Warn("Order stream error", zap.Error(err))
		},
	)
	if err != nil {
		logger.Error("Failed to open order stream", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open order stream"})
		return
	}
	defer unsubscribe()

	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Stream(func(w io.Writer) bool {
		select {
		case orders := <-updates:
			c.SSEvent("orders", gin.H{"orders": orders})
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}

// StreamOrdersHandler is the admin dashboard's live order list for one
// business date.
func (h *HandlerBundle) StreamOrdersHandler(c *gin.Context) {
	kitchenID := c.Param("kitchenId")
	dateID := c.Param("dateId")
	streamOrders(c, func(onChange func([]models.Order), onError func(error)) (func(), error) {
		unsub, err := h.OrderSvc.SubscribeToOrders(kitchenID, dateID, onChange, onError)
		return unsub, err
	})
}

// StreamMyOrdersHandler is the student's live view of their own orders.
func (h *HandlerBundle) StreamMyOrdersHandler(c *gin.Context) {
	kitchenID := c.Param("kitchenId")
	studentID := c.GetString("studentID")
	phone := c.Query("phoneNumber")
	streamOrders(c, func(onChange func([]models.Order), onError func(error)) (func(), error) {
		unsub, err := h.OrderSvc.SubscribeToMyOrders(kitchenID, studentID, phone, onChange, onError)
		return unsub, err
	})
}

// CookingSummaryHandler returns the production counts for one slot of one
// business date.
func (h *HandlerBundle) CookingSummaryHandler(c *gin.Context) {
	logger := getLogger(c)

	sum, err := h.OrderSvc.CookingSummaryForSlot(c.Request.Context(), c.Param("kitchenId"), c.Param("dateId"), c.Param("slotId"))
	if err != nil {
		logger.Error("Failed to build cooking summary", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build cooking summary"})
		return
	}
	if sum == nil {
		c.JSON(http.StatusOK, gin.H{"summary": nil, "message": "no confirmed orders yet"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": sum})
}
