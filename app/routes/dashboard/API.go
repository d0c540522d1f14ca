package dashboard

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Angel-Lizarzado/Transporte/app/config"
	"github.com/Angel-Lizarzado/Transporte/app/database"
	"github.com/Angel-Lizarzado/Transporte/app/routes/auth"
)

func GetStatsAPI(c *fiber.Ctx) error {
	stats, err := database.GetDashboardStats(config.GetDB(), auth.OrgID(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch dashboard stats"})
	}
	return c.JSON(stats)
}

func GetTopDebtorsAPI(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 5)

	debtors, err := database.GetTopDebtors(config.GetDB(), auth.OrgID(c), limit)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch top debtors"})
	}

	return c.JSON(fiber.Map{
		"debtors": debtors,
		"count":   len(debtors),
	})
}

// SetupDashboardRoutes sets up the dashboard routes
func SetupDashboardRoutes(app *fiber.App) {
	api := app.Group("/api/dashboard")
	api.Use(auth.AuthMiddleware)

	api.Get("/stats", GetStatsAPI)
	api.Get("/top-debtors", GetTopDebtorsAPI)
}
