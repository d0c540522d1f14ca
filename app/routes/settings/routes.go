package settings

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Angel-Lizarzado/Transporte/app/routes/auth"
)

// SetupSettingsRoutes sets up the settings routes
func SetupSettingsRoutes(app *fiber.App) {
	api := app.Group("/api/settings")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetSettingsAPI)
	api.Put("/", UpdateSettingsAPI)
	api.Put("/organization", UpdateOrganizationAPI)
	api.Get("/cron-logs", GetCronLogsAPI)
}
