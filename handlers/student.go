package handlers

import (
	"net/http"
	"time"

	"tiffin/models"
	"tiffin/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RegisterStudentHandler creates a student under a kitchen and issues their
// JWT. Any manual orders previously keyed in under the same phone number show
// up in their history from the first login.
func (h *HandlerBundle) RegisterStudentHandler(c *gin.Context) {
	logger := getLogger(c)

	var student models.Student
	if err := c.ShouldBindJSON(&student); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if student.Name == "" || student.PhoneNumber == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and phoneNumber are required"})
		return
	}

	student.ID = uuid.New().String()
	student.KitchenID = c.Param("kitchenId")
	student.CreatedAt = time.Now()

	if err := h.StudentRepo.Create(c.Request.Context(), &student); err != nil {
		logger.Error("Failed to register student", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register student"})
		return
	}

	token, err := utils.GenerateToken(student.ID, student.KitchenID, utils.RoleStudent, 30*24*time.Hour)
	if err != nil {
		logger.Error("Failed to issue student token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"student": student, "token": token})
}

// UpdateFCMTokenHandler stores the push token of the student's current device.
func (h *HandlerBundle) UpdateFCMTokenHandler(c *gin.Context) {
	logger := getLogger(c)

	var input struct {
		FCMToken string `json:"fcmToken"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.FCMToken == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "fcmToken is required"})
		return
	}

	studentID := c.GetString("studentID")
	if err := h.StudentRepo.UpdateFCMToken(c.Request.Context(), studentID, input.FCMToken); err != nil {
		logger.Error("Failed to update FCM token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update push token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"updated": true})
}

// ListStudentsHandler is the admin roster view.
func (h *HandlerBundle) ListStudentsHandler(c *gin.Context) {
	logger := getLogger(c)

	students, err := h.StudentRepo.GetByKitchen(c.Request.Context(), c.Param("kitchenId"))
	if err != nil {
		logger.Error("Failed to list students", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list students"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"students": students})
}
