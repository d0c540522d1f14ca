package main

import (
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"go.uber.org/zap"

	"github.com/Angel-Lizarzado/Transporte/app/config"
	"github.com/Angel-Lizarzado/Transporte/app/database"
	"github.com/Angel-Lizarzado/Transporte/app/routes/auth"
	"github.com/Angel-Lizarzado/Transporte/app/routes/cron"
	"github.com/Angel-Lizarzado/Transporte/app/routes/dashboard"
	"github.com/Angel-Lizarzado/Transporte/app/routes/passengers"
	"github.com/Angel-Lizarzado/Transporte/app/routes/public"
	"github.com/Angel-Lizarzado/Transporte/app/routes/representatives"
	"github.com/Angel-Lizarzado/Transporte/app/routes/settings"
	"github.com/Angel-Lizarzado/Transporte/app/routes/transactions"
	"github.com/Angel-Lizarzado/Transporte/app/services"
)

// customErrorHandler turns unhandled fiber errors into API error payloads
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
		"code":    code,
	})
}

func main() {
	// Set global time zone to Venezuela time; the weekly and daily boundaries
	// of the charge job follow it.
	loc, err := time.LoadLocation("America/Caracas")
	if err != nil {
		log.Printf("Warning: Failed to load America/Caracas location, falling back to UTC-4: %v", err)
		time.Local = time.FixedZone("VET", -4*60*60)
	} else {
		time.Local = loc
	}

	// Initialize database, logger and secrets
	if err := config.Init(); err != nil {
		log.Fatal(err)
	}
	defer config.GetDB().Close()
	zlog := config.GetLogger()
	defer zlog.Sync()

	// Run database migrations
	if err := database.RunMigrations(config.GetDB()); err != nil {
		zlog.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Start background scheduler
	if os.Getenv("ENABLE_SCHEDULER") == "true" {
		services.StartScheduler(config.GetDB(), zlog)
	}

	// Shared rate resolver with its in-process cache
	rates := services.NewRateResolver(config.AppConfig.DolarAPI, zlog)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Setup auth routes
	auth.SetupAuthRoutes(app)

	// Setup dashboard routes
	dashboard.SetupDashboardRoutes(app)

	// Setup representatives routes
	representatives.SetupRepresentativesRoutes(app)

	// Setup passengers routes
	passengers.SetupPassengersRoutes(app)

	// Setup transactions routes
	transactions.SetupTransactionsRoutes(app)

	// Setup settings routes
	settings.SetupSettingsRoutes(app)

	// Setup public lookup routes
	public.SetupPublicRoutes(app, config.GetDB(), rates)

	// Setup cron routes
	cron.SetupCronRoutes(app, config.GetDB(), zlog, config.AppConfig.CronSecret)

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Not found")
	})

	// Start server
	zlog.Info("Server starting", zap.String("port", config.AppConfig.Port))
	if err := app.Listen(":" + config.AppConfig.Port); err != nil {
		zlog.Fatal("Server stopped", zap.Error(err))
	}
}
