package handlers

import (
	"errors"
	"net/http"

	paymentRepo "tiffin/database/repository/payment"
	"tiffin/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// GetMyKhataHandler returns the authenticated student's ledger: balance plus
// the orders and payments it was derived from.
func (h *HandlerBundle) GetMyKhataHandler(c *gin.Context) {
	logger := getLogger(c)

	studentID := c.GetString("studentID")
	k, err := h.KhataSvc.GetStudentBalance(c.Request.Context(), c.Param("kitchenId"), studentID)
	if err != nil {
		logger.Error("Failed to compute khata", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute balance"})
		return
	}

	c.JSON(http.StatusOK, k)
}

// GetStudentKhataHandler is the admin view of one student's ledger.
func (h *HandlerBundle) GetStudentKhataHandler(c *gin.Context) {
	logger := getLogger(c)

	k, err := h.KhataSvc.GetStudentBalance(c.Request.Context(), c.Param("kitchenId"), c.Param("studentId"))
	if err != nil {
		logger.Error("Failed to compute khata", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute balance"})
		return
	}

	c.JSON(http.StatusOK, k)
}

// ClaimPaymentHandler records a student's payment claim, pending admin review.
func (h *HandlerBundle) ClaimPaymentHandler(c *gin.Context) {
	logger := getLogger(c)

	var payment models.Payment
	if err := c.ShouldBindJSON(&payment); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	payment.UserID = c.GetString("studentID")
	payment.RecordedBy = "" // claims are never auto-accepted

	id, err := h.KhataSvc.RecordPayment(c.Request.Context(), c.Param("kitchenId"), payment)
	if err != nil {
		logger.Warn("Payment claim rejected", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"paymentId": id})
}

// RecordPaymentHandler lets the admin key in a payment on a student's behalf;
// cash entries are accepted on the spot.
func (h *HandlerBundle) RecordPaymentHandler(c *gin.Context) {
	logger := getLogger(c)

	var payment models.Payment
	if err := c.ShouldBindJSON(&payment); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	adminID, _ := c.Get("adminID")
	payment.RecordedBy, _ = adminID.(string)

	id, err := h.KhataSvc.RecordPayment(c.Request.Context(), c.Param("kitchenId"), payment)
	if err != nil {
		logger.Warn("Payment entry rejected", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"paymentId": id})
}

// ReviewPaymentHandler accepts or rejects a pending payment claim. Both
// outcomes are terminal; a second review comes back 409.
func (h *HandlerBundle) ReviewPaymentHandler(c *gin.Context) {
	logger := getLogger(c)

	var input struct {
		Accept bool `json:"accept"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	err := h.KhataSvc.ReviewPayment(c.Request.Context(), c.Param("kitchenId"), c.Param("paymentId"), input.Accept)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"reviewed": true})
	case errors.Is(err, paymentRepo.ErrAlreadySettled):
		c.JSON(http.StatusConflict, gin.H{"error": "payment already settled"})
	case errors.Is(err, mongo.ErrNoDocuments):
		c.JSON(http.StatusNotFound, gin.H{"error": "payment not found"})
	default:
		logger.Error("Failed to review payment", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to review payment"})
	}
}
