package cron

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// SetupCronRoutes sets up the cron-only routes
func SetupCronRoutes(app *fiber.App, db *sql.DB, logger *zap.Logger, secret string) {
	api := app.Group("/api/cron")

	api.Post("/weekly-charge", func(c *fiber.Ctx) error {
		return WeeklyChargeAPI(c, db, logger, secret)
	})
}
