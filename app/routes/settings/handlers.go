package settings

import (
	"database/sql"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Angel-Lizarzado/Transporte/app/config"
	"github.com/Angel-Lizarzado/Transporte/app/database"
	"github.com/Angel-Lizarzado/Transporte/app/models"
	"github.com/Angel-Lizarzado/Transporte/app/routes/auth"
)

func GetSettingsAPI(c *fiber.Ctx) error {
	cfg, err := database.GetAppConfig(config.GetDB(), auth.OrgID(c))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": "Settings not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(cfg)
}

func UpdateSettingsAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	orgID := auth.OrgID(c)

	cfg, err := database.GetAppConfig(db, orgID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	type UpdateSettingsRequest struct {
		GeneralTariffUSD *float64 `json:"general_tariff_usd"`
		TransportName    *string  `json:"transport_name"`
		ThemePreference  *string  `json:"theme_preference"`
	}

	var req UpdateSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	if req.GeneralTariffUSD != nil {
		if *req.GeneralTariffUSD < 0 {
			return c.Status(400).JSON(fiber.Map{"error": "General tariff cannot be negative"})
		}
		cfg.GeneralTariffUSD = *req.GeneralTariffUSD
	}
	if req.TransportName != nil {
		cfg.TransportName = req.TransportName
	}
	if req.ThemePreference != nil {
		theme := models.ThemePreference(*req.ThemePreference)
		switch theme {
		case models.ThemeLight, models.ThemeDark, models.ThemeSystem:
			cfg.ThemePreference = theme
		default:
			return c.Status(400).JSON(fiber.Map{"error": "Invalid theme preference"})
		}
	}

	userID := auth.UserID(c)
	cfg.UpdatedBy = &userID

	if err := database.UpdateAppConfig(db, cfg); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update settings"})
	}

	return c.JSON(fiber.Map{
		"message":  "Settings updated successfully",
		"settings": cfg,
	})
}

func UpdateOrganizationAPI(c *fiber.Ctx) error {
	type UpdateOrganizationRequest struct {
		Name string `json:"name"`
	}

	var req UpdateOrganizationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if req.Name == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Name is required"})
	}

	if err := database.UpdateOrganizationName(config.GetDB(), auth.OrgID(c), req.Name); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update organization"})
	}

	return c.JSON(fiber.Map{"message": "Organization updated successfully"})
}

// GetCronLogsAPI lists the weekly charge audit records for the admin screen.
func GetCronLogsAPI(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	offset := c.QueryInt("offset", 0)

	logs, err := database.GetCronLogs(config.GetDB(), auth.OrgID(c), limit, offset)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch cron logs"})
	}

	return c.JSON(fiber.Map{
		"logs":  logs,
		"count": len(logs),
	})
}
