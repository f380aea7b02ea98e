package main

import (
	"time"

	"github.com/gin-gonic/gin"

	"showroom_manager/internal/auth"
	"showroom_manager/internal/config"
	"showroom_manager/internal/database"
	"showroom_manager/internal/handlers"
	"showroom_manager/internal/logger"
	"showroom_manager/internal/migrations"
	"showroom_manager/internal/redis"
	"showroom_manager/internal/repository"
	"showroom_manager/internal/services"
)

func main() {
	log := logger.Get()

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	if err := migrations.RunMigrations(db, cfg.ResetDB); err != nil {
		log.Fatal("Failed to migrate database: ", err)
	}

	// Initialize Redis
	redisClient, err := redis.Initialize(cfg.RedisURL)
	if err != nil {
		log.Fatal("Failed to connect to Redis: ", err)
	}
	defer redisClient.Close()

	// Initialize repositories
	repos := repository.NewRepositories(db)
	txManager := repository.NewTxManager(db)

	// Initialize services
	inventoryService := services.NewInventoryService(repos)
	customerService := services.NewCustomerService(repos)
	saleService := services.NewSaleService(repos, txManager, inventoryService, customerService, redisClient)
	deliveryOrderService := services.NewDeliveryOrderService(repos, txManager)
	workshopService := services.NewWorkshopService(repos, redisClient)
	reportService := services.NewReportService(repos, redisClient, time.Duration(cfg.ReportCacheTTL)*time.Second)
	userService := services.NewUserService(repos)

	// Initialize handlers
	jwtManager := auth.NewManager(cfg.JWTSecret)
	authHandler := handlers.NewAuthHandler(userService, jwtManager)
	saleHandler := handlers.NewSaleHandler(saleService)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService, deliveryOrderService)
	customerHandler := handlers.NewCustomerHandler(customerService)
	reportHandler := handlers.NewReportHandler(reportService)
	workshopHandler := handlers.NewWorkshopHandler(workshopService)

	// Setup routes
	router := gin.Default()

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy"})
	})

	api := router.Group("/api")
	api.POST("/auth/login", authHandler.Login)

	authorized := api.Group("")
	authorized.Use(handlers.RequireAuth(jwtManager))
	{
		authorized.POST("/sales", saleHandler.CreateSale)
		authorized.GET("/sales", saleHandler.ListSales)
		authorized.GET("/sales/:id", saleHandler.GetSale)
		authorized.PATCH("/sales/:id", saleHandler.UpdateSale)
		authorized.DELETE("/sales/:id", saleHandler.DeleteSale)

		authorized.GET("/bikes", inventoryHandler.ListBikes)
		authorized.PATCH("/bikes/:id", inventoryHandler.UpdateBike)
		authorized.DELETE("/bikes/:id", inventoryHandler.DeleteBike)

		authorized.POST("/delivery-orders", inventoryHandler.ReceiveDeliveryOrder)
		authorized.GET("/delivery-orders", inventoryHandler.ListDeliveryOrders)

		authorized.GET("/customers", customerHandler.ListCustomers)
		authorized.PATCH("/customers/:id", customerHandler.UpdateCustomer)

		authorized.GET("/reports", reportHandler.GetReport)

		authorized.POST("/workshop", workshopHandler.CreateService)
		authorized.GET("/workshop", workshopHandler.ListServices)
	}

	// Start server
	log.Infof("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}
