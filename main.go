// File: tiffin/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tiffin/config"
	"tiffin/cron"
	"tiffin/database"
	kitchenRepoPkg "tiffin/database/repository/kitchen"
	menuRepoPkg "tiffin/database/repository/menu"
	orderRepoPkg "tiffin/database/repository/order"
	paymentRepoPkg "tiffin/database/repository/payment"
	studentRepoPkg "tiffin/database/repository/student"
	"tiffin/handlers"
	"tiffin/routes"
	"tiffin/services/khata"
	"tiffin/services/kitchen"
	"tiffin/services/menu"
	"tiffin/services/notification"
	"tiffin/services/order"
	"tiffin/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.FirebaseInit()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	kitchenRepo := kitchenRepoPkg.NewMongoKitchenRepo()
	menuRepo := menuRepoPkg.NewMongoMenuRepo()
	orderRepo := orderRepoPkg.NewMongoOrderRepo()
	paymentRepo := paymentRepoPkg.NewMongoPaymentRepo()
	studentRepo := studentRepoPkg.NewMongoStudentRepo()

	// services.
	kitchenService := &kitchen.DefaultKitchenService{
		Repo:  kitchenRepo,
		Cache: utils.GetCacheClient(),
	}
	menuService := &menu.DefaultMenuService{
		Repo:       menuRepo,
		KitchenSvc: kitchenService,
	}
	notificationService, err := notification.NewDefaultNotificationService(studentRepo)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize notification service: %v", err)
	}
	orderService := &order.DefaultOrderService{
		Repo:       orderRepo,
		MenuRepo:   menuRepo,
		KitchenSvc: kitchenService,
		Notifier:   notificationService,
	}
	khataService := &khata.DefaultKhataService{
		Orders:   orderRepo,
		Payments: paymentRepo,
		Notifier: notificationService,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		KitchenSvc:  kitchenService,
		MenuSvc:     menuService,
		OrderSvc:    orderService,
		KhataSvc:    khataService,
		StudentRepo: studentRepo,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background workers and monitors.
	cron.InitReminderWorker(notificationService)
	utils.StartHealthMonitor([]*redis.Client{utils.GetCacheClient()}, database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
