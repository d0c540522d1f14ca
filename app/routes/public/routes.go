package public

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/Angel-Lizarzado/Transporte/app/services"
)

// SetupPublicRoutes sets up the unauthenticated lookup routes
func SetupPublicRoutes(app *fiber.App, db *sql.DB, rates *services.RateResolver) {
	api := app.Group("/api/public")

	api.Get("/representative/:code", func(c *fiber.Ctx) error {
		return LookupRepresentativeAPI(c, db, rates)
	})
}
