package main

import (
	"log/slog"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
	"github.com/joho/godotenv"

	"messenger-bot/config"
	"messenger-bot/handlers"
	"messenger-bot/services"
	"messenger-bot/webhooks"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found")
	}

	// Initialize structured logger
	logHandler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(logHandler))

	// Load configuration; exits when required values are missing
	cfg := config.LoadConfig()

	// Initialize collaborators
	sendClient := services.NewClient(cfg.PageAccessToken)
	glassdoor := services.NewGlassdoor(
		getEnv("GLASSDOOR_PARTNER_ID", "110754"),
		getEnv("GLASSDOOR_PARTNER_KEY", "juaQEPEZfps"),
	)

	contacts, err := services.NewContactStore(0)
	if err != nil {
		slog.Error("Failed to create contact store", "error", err)
		os.Exit(1)
	}

	bot := handlers.NewBot(cfg, sendClient, glassdoor, contacts)

	// Create Fiber app with the account linking view engine
	engine := html.New("./views", ".html")
	app := fiber.New(fiber.Config{
		Views: engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			slog.Error("Request error", "error", err, "status", code)
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())

	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path}\n",
	}))

	// Register webhook routes
	webhooks.RegisterRoutes(app, cfg, bot)

	// Account linking view
	app.Get("/authorize", bot.HandleAuthorize)

	// Static assets referenced by the media replies
	app.Static("/assets", "./public/assets")

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "messenger-bot",
		})
	})

	slog.Info("Server starting", "port", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		slog.Error("Server failed to start", "error", err)
		os.Exit(1)
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
