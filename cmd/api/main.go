package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/shopstack/billing-api/internal/application/service"
	"github.com/shopstack/billing-api/internal/config"
	"github.com/shopstack/billing-api/internal/infrastructure/database"
	"github.com/shopstack/billing-api/internal/infrastructure/repository"
	"github.com/shopstack/billing-api/internal/presentation/http/handler"
	"github.com/shopstack/billing-api/internal/presentation/http/routes"
	"github.com/shopstack/billing-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.Expiry)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	billRepo := repository.NewBillRepository(db)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	productService := service.NewProductService(productRepo)
	billingService := service.NewBillingService(billRepo, productRepo, userRepo)
	exportService := service.NewExportService(billRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:    handler.NewAuthHandler(authService),
		Product: handler.NewProductHandler(productService),
		Bill:    handler.NewBillHandler(billingService, exportService),
	}

	// Setup router
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		UserRepo:   userRepo,
		Cfg:        cfg,
	})

	// Start server
	addr := ":" + cfg.App.Port
	log.Printf("Starting %s on %s", cfg.App.Name, addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
