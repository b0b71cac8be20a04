package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"restaurant_pos/internal/config"
	"restaurant_pos/internal/database"
	"restaurant_pos/internal/handlers"
	"restaurant_pos/internal/migrations"
	"restaurant_pos/internal/models"
	"restaurant_pos/internal/redis"
	"restaurant_pos/internal/repository"
	"restaurant_pos/internal/services"
	"restaurant_pos/pkg/identity"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := migrations.RunMigrations(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize Redis
	redisClient, err := redis.Initialize(cfg.RedisURL)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	// Initialize identity service client
	identityClient := identity.NewClient(cfg.IdentityAPIURL, cfg.IdentityAPIKey)

	// Initialize repositories
	catalogRepo := repository.NewCatalogRepository(db)
	rawMaterialRepo := repository.NewRawMaterialRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	orderItemRepo := repository.NewOrderItemRepository(db)
	profileRepo := repository.NewUserProfileRepository(db)
	reportRepo := repository.NewReportRepository(db)

	// Initialize services
	catalogService := services.NewCatalogService(catalogRepo, redisClient, time.Duration(cfg.CatalogCacheTTL)*time.Second)
	orderService := services.NewOrderService(orderRepo, orderItemRepo, catalogRepo)
	kitchenService := services.NewKitchenService(orderItemRepo)
	dashboardService := services.NewDashboardService(reportRepo, rawMaterialRepo)
	userService := services.NewUserService(profileRepo)

	// Initialize handlers
	sessionTTL := time.Duration(cfg.SessionTTL) * time.Second
	authHandler := handlers.NewAuthHandler(identityClient, redisClient, userService, sessionTTL, cfg.CookieSecure)
	posHandler := handlers.NewPOSHandler(catalogService, orderService)
	kitchenHandler := handlers.NewKitchenHandler(kitchenService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// Setup routes
	router := gin.Default()
	router.Use(handlers.CORS())

	api := router.Group("/api")
	{
		// Auth flow, delegated to the external identity service
		api.GET("/oauth/google/redirect_url", authHandler.GetOAuthRedirectURL)
		api.POST("/sessions", authHandler.CreateSession)
		api.GET("/logout", authHandler.Logout)

		authed := api.Group("")
		authed.Use(handlers.AuthRequired(redisClient))
		{
			authed.GET("/users/me", authHandler.GetMe)

			// POS: catalog reads and order entry, any authenticated staff
			authed.GET("/categories", posHandler.GetCategories)
			authed.GET("/products", posHandler.GetProducts)
			authed.GET("/products/:productId/variants", posHandler.GetProductVariants)
			authed.POST("/orders", posHandler.CreateOrder)

			// Kitchen display, chef and owner only
			kitchen := authed.Group("/kitchen")
			kitchen.Use(handlers.RequireRole(userService, string(models.RoleChef), string(models.RoleOwner)))
			{
				kitchen.GET("/orders", kitchenHandler.GetKitchenOrders)
				kitchen.PUT("/orders/:itemId/status", kitchenHandler.UpdateKitchenStatus)
			}

			// Owner dashboard
			authed.GET("/dashboard",
				handlers.RequireRole(userService, string(models.RoleOwner)),
				dashboardHandler.GetDashboard)
		}
	}

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
