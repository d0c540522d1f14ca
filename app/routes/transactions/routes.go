package transactions

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Angel-Lizarzado/Transporte/app/routes/auth"
)

// SetupTransactionsRoutes sets up the transactions routes
func SetupTransactionsRoutes(app *fiber.App) {
	api := app.Group("/api/transactions")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetTransactionsAPI)
	api.Post("/", CreateTransactionAPI)
	api.Delete("/:id", DeleteTransactionAPI)
}
