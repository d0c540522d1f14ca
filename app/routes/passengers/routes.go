package passengers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Angel-Lizarzado/Transporte/app/routes/auth"
)

// SetupPassengersRoutes sets up the passengers routes
func SetupPassengersRoutes(app *fiber.App) {
	api := app.Group("/api/passengers")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetPassengersAPI)
	api.Get("/:id", GetPassengerAPI)
	api.Post("/", CreatePassengerAPI)
	api.Put("/:id", UpdatePassengerAPI)
	api.Delete("/:id", DeletePassengerAPI)
}
