package main

import (
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/streadway/amqp"

	"khanamart/internal/handlers"
	"khanamart/internal/middleware"
	"khanamart/internal/models"
	"khanamart/internal/repositories"
	"khanamart/internal/services"
	"khanamart/pkg/rabbitmq"

	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func main() {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("DATABASE_DSN", "khanamart.db")
	viper.SetDefault("JWT_SECRET", "khanamart_dev_secret")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.AutomaticEnv() // Load environment variables

	appPort := viper.GetString("APP_PORT")
	databaseDSN := viper.GetString("DATABASE_DSN")
	jwtSecret := viper.GetString("JWT_SECRET")
	rabbitMQURL := viper.GetString("RABBITMQ_URL")

	// --- Database ---
	db, err := openDatabase(databaseDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	err = db.AutoMigrate(
		&models.Product{},
		&models.User{},
		&models.Order{},
		&models.SavedAddress{},
		&models.Favorite{},
		&models.UserSettings{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	if err := repositories.MigrateCart(db); err != nil {
		log.Fatalf("Failed to migrate cart storage: %v", err)
	}

	// --- RabbitMQ (optional: events are skipped when unconfigured) ---
	var mqClient *rabbitmq.Client
	if rabbitMQURL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: rabbitMQURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
	} else {
		log.Println("RABBITMQ_URL not set; order events disabled")
	}

	// --- Repositories ---
	productRepo := repositories.NewGORMProductRepository(db)
	userRepo := repositories.NewGORMUserRepository(db)
	cartRepo := repositories.NewGORMCartRepository(db)
	orderRepo := repositories.NewGORMOrderRepository(db)
	addressRepo := repositories.NewGORMAddressRepository(db)
	favoriteRepo := repositories.NewGORMFavoriteRepository(db)
	settingsRepo := repositories.NewGORMSettingsRepository(db)
	sessionRepo := repositories.NewMemoryCheckoutSessionRepository()
	resetRepo := repositories.NewMemoryResetCodeRepository()

	// --- Services ---
	authService := services.NewAuthService(userRepo, resetRepo, jwtSecret)
	catalogService := services.NewCatalogService(productRepo)
	cartService := services.NewCartService(cartRepo, productRepo)
	orderService := services.NewOrderService(orderRepo)
	accountService := services.NewAccountService(userRepo, addressRepo, favoriteRepo, settingsRepo, productRepo)

	var publisher services.EventPublisher
	if mqClient != nil {
		publisher = mqClient
	}
	checkoutService := services.NewCheckoutService(sessionRepo, cartRepo, orderRepo, addressRepo, publisher)

	// --- Seed data ---
	seedCatalog(productRepo)
	seedDemoUsers(authService, userRepo)

	// --- Handlers ---
	authHandler := handlers.NewAuthHandler(authService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	cartHandler := handlers.NewCartHandler(cartService)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService)
	orderHandler := handlers.NewOrderHandler(orderService)
	accountHandler := handlers.NewAccountHandler(accountService)

	// --- Fiber App ---
	app := fiber.New()
	app.Use(logger.New()) // Request logger

	apiV1 := app.Group("/api/v1")

	// Public routes: auth and catalog browsing.
	authHandler.RegisterRoutes(apiV1)

	// Protected routes require a valid JWT.
	protectedRoutes := apiV1.Group("", middleware.AuthRequired(authService))

	catalogHandler.RegisterRoutes(apiV1, protectedRoutes)
	cartHandler.RegisterRoutes(protectedRoutes)
	checkoutHandler.RegisterRoutes(protectedRoutes)
	orderHandler.RegisterRoutes(protectedRoutes)
	accountHandler.RegisterRoutes(protectedRoutes)

	// --- Health Check Endpoint ---
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// --- Order events consumer ---
	if mqClient != nil {
		go func() {
			log.Println("Starting RabbitMQ consumer for order events...")
			messageHandler := func(msg amqp.Delivery) error {
				// Placeholder for the order confirmation notification
				// pipeline.
				log.Printf("Received order event %s (tag %d): %s", msg.Type, msg.DeliveryTag, string(msg.Body))
				return nil
			}
			if consumerErr := mqClient.ConsumeOrderEvents(messageHandler); consumerErr != nil {
				log.Printf("Failed to start RabbitMQ consumer: %v", consumerErr)
			}
		}()
	}

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", appPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}

// openDatabase picks the GORM driver from the DSN shape: anything that
// looks like a PostgreSQL DSN uses the postgres driver, everything else
// is treated as a SQLite path.
func openDatabase(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.Contains(dsn, "host=") {
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}
	return gorm.Open(sqlite.Open(dsn), &gorm.Config{})
}
