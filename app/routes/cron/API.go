package cron

import (
	"database/sql"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/Angel-Lizarzado/Transporte/app/services"
)

// WeeklyChargeAPI triggers the weekly charge batch. It is meant to be called
// by an external cron with the shared secret as a bearer token.
func WeeklyChargeAPI(c *fiber.Ctx, db *sql.DB, logger *zap.Logger, secret string) error {
	authHeader := c.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return c.Status(401).JSON(fiber.Map{"error": "No auth header"})
	}
	if strings.TrimPrefix(authHeader, "Bearer ") != secret || secret == "" {
		return c.Status(403).JSON(fiber.Map{"error": "Unauthorized"})
	}

	summary, err := services.RunWeeklyCharge(db, logger)
	if err != nil {
		logger.Error("weekly charge run failed", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"ok":      true,
		"time_ms": summary.TimeMS,
		"results": summary.Results,
	})
}
