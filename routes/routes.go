package routes

import (
	"net/http"
	"time"

	"tiffin/handlers"
	"tiffin/middleware"
	"tiffin/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterKitchenRoutes registers the public kitchen surface: discovery,
// registration and admin login.
func RegisterKitchenRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/kitchens")
	{
		api.POST("/register", hb.RegisterKitchenHandler)
		api.POST("/admin/login", hb.AdminLoginHandler)
		api.GET("", hb.ListKitchensHandler)
		api.GET("/:kitchenId", hb.GetKitchenHandler)
		api.GET("/:kitchenId/menu", hb.GetEffectiveMenuHandler)
	}
}

// RegisterStudentRoutes registers the student surface. Registration is open;
// everything else requires a student token.
func RegisterStudentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/kitchens/:kitchenId")
	{
		api.POST("/students/register", hb.RegisterStudentHandler)

		// Protected routes (Require Authentication)
		protected := api.Group("")
		protected.Use(middleware.StudentAuthMiddleware())
		protected.PUT("/students/fcm-token", hb.UpdateFCMTokenHandler)
		protected.POST("/orders", hb.PlaceOrderHandler)
		protected.GET("/orders/mine", hb.GetMyOrdersHandler)
		protected.GET("/orders/mine/stream", hb.StreamMyOrdersHandler)
		protected.GET("/khata", hb.GetMyKhataHandler)
		protected.POST("/payments/claim", hb.ClaimPaymentHandler)
	}
}

// RegisterAdminRoutes registers the kitchen dashboard. Every route is scoped
// to the kitchen in the admin token.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/kitchens/:kitchenId/admin")
	{
		adminGroup.Use(middleware.AdminAuthMiddleware())
		adminGroup.PUT("/meal-slots", hb.UpdateMealSlotsHandler)
		adminGroup.PUT("/menu", hb.SetMenuHandler)
		adminGroup.GET("/menu/:dateId", hb.GetMenuHandler)
		adminGroup.GET("/students", hb.ListStudentsHandler)
		adminGroup.GET("/orders/:dateId", hb.GetOrdersForDateHandler)
		adminGroup.GET("/orders/:dateId/stream", hb.StreamOrdersHandler)
		adminGroup.GET("/orders/:dateId/summary/:slotId", hb.CookingSummaryHandler)
		adminGroup.POST("/orders/manual", hb.PlaceManualOrderHandler)
		adminGroup.PATCH("/orders/:orderId/status", hb.UpdateOrderStatusHandler)
		adminGroup.POST("/payments", hb.RecordPaymentHandler)
		adminGroup.PATCH("/payments/:paymentId/review", hb.ReviewPaymentHandler)
		adminGroup.GET("/khata/:studentId", hb.GetStudentKhataHandler)
		adminGroup.POST("/reminders", hb.ScheduleSlotRemindersHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterHealthRoute(r)
	RegisterKitchenRoutes(r, hb)
	RegisterStudentRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
