package representatives

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Angel-Lizarzado/Transporte/app/routes/auth"
)

// SetupRepresentativesRoutes sets up the representatives routes
func SetupRepresentativesRoutes(app *fiber.App) {
	api := app.Group("/api/representatives")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetRepresentativesAPI)
	api.Get("/:id", GetRepresentativeAPI)
	api.Post("/", CreateRepresentativeAPI)
	api.Put("/:id", UpdateRepresentativeAPI)
	api.Delete("/:id", DeleteRepresentativeAPI)
}
