package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/streadway/amqp"
	"gorm.io/gorm"

	"minicrm/internal/database"
	"minicrm/internal/handlers"
	"minicrm/internal/middleware"
	"minicrm/internal/repositories"
	"minicrm/internal/services"
	"minicrm/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("DATABASE_DRIVER", "sqlite")
	viper.SetDefault("DATABASE_DSN", "minicrm.db")
	viper.SetDefault("JWT_SECRET", "change_me_in_production")
	viper.SetDefault("RABBITMQ_URL", "") // empty disables the broker
	viper.SetDefault("AUTH_ENABLED", false)
	viper.SetDefault("SEED_DATABASE", true)
	viper.AutomaticEnv()

	appPort := viper.GetString("APP_PORT")

	// --- Database ---
	db, err := database.Connect(viper.GetString("DATABASE_DRIVER"), viper.GetString("DATABASE_DSN"))
	if err != nil {
		log.WithError(err).Fatal("failed to initialize database")
	}
	if err := database.Migrate(db); err != nil {
		log.WithError(err).Fatal("failed to migrate database")
	}
	if viper.GetBool("SEED_DATABASE") {
		if err := database.Seed(db); err != nil {
			log.WithError(err).Fatal("failed to seed database")
		}
	}

	// --- RabbitMQ (optional) ---
	var mqClient *rabbitmq.Client
	if url := viper.GetString("RABBITMQ_URL"); url != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: url})
		if err != nil {
			log.WithError(err).Fatal("failed to initialize RabbitMQ client")
		}
		defer mqClient.Close()
	}

	var events services.EventPublisher
	if mqClient != nil {
		events = mqClient
	}

	app := buildApp(db, events, viper.GetString("JWT_SECRET"), viper.GetBool("AUTH_ENABLED"))

	// --- Order event consumer ---
	if mqClient != nil {
		if err := mqClient.ConsumeOrderEvents(func(msg amqp.Delivery) error {
			log.WithField("tag", msg.DeliveryTag).Infof("received order event: %s", msg.Body)
			return nil
		}); err != nil {
			log.WithError(err).Error("failed to start RabbitMQ consumer")
		}
	}

	// --- Start HTTP server with graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.WithField("port", appPort).Info("starting server")
		if err := app.Listen(appPort); err != nil {
			log.WithError(err).Fatal("server failed to start")
		}
	}()

	<-quit
	log.Info("shutting down server")
	if err := app.Shutdown(); err != nil {
		log.WithError(err).Error("error during Fiber shutdown")
	}
	log.Info("server gracefully stopped")
}

// buildApp wires repositories, services, and handlers into a Fiber app. When
// authEnabled is set, every entity route requires a valid JWT while the auth
// routes stay public.
func buildApp(db *gorm.DB, events services.EventPublisher, jwtSecret string, authEnabled bool) *fiber.App {
	// Repositories
	customerRepo := repositories.NewGORMCustomerRepository(db)
	productRepo := repositories.NewGORMProductRepository(db)
	orderRepo := repositories.NewGORMOrderRepository(db)
	addressRepo := repositories.NewGORMAddressRepository(db)
	userRepo := repositories.NewGORMUserRepository(db)
	txManager := repositories.NewGORMTxManager(db)

	// Services
	customerService := services.NewCustomerService(customerRepo, txManager)
	productService := services.NewProductService(productRepo, txManager)
	addressService := services.NewAddressService(addressRepo, customerRepo)
	orderService := services.NewOrderService(orderRepo, customerRepo, productRepo, txManager, events)
	authService := services.NewAuthService(userRepo, jwtSecret)

	// Handlers
	customerHandler := handlers.NewCustomerHandler(customerService)
	productHandler := handlers.NewProductHandler(productService)
	addressHandler := handlers.NewAddressHandler(addressService)
	orderHandler := handlers.NewOrderHandler(orderService)
	authHandler := handlers.NewAuthHandler(authService)

	app := fiber.New()
	app.Use(logger.New()) // Request logger

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// Authentication routes (always public)
	authHandler.RegisterRoutes(app)

	api := fiber.Router(app)
	if authEnabled {
		api = app.Group("", middleware.AuthRequired(authService))
	}

	customerHandler.RegisterRoutes(api)
	productHandler.RegisterRoutes(api)
	orderHandler.RegisterRoutes(api)
	addressHandler.RegisterRoutes(api)

	return app
}
