package public

import (
	"database/sql"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Angel-Lizarzado/Transporte/app/config"
	"github.com/Angel-Lizarzado/Transporte/app/database"
	"github.com/Angel-Lizarzado/Transporte/app/models"
	"github.com/Angel-Lizarzado/Transporte/app/services"
)

// LookupRepresentativeAPI is the guardian-facing balance check. Knowledge of
// the representative code is the only credential.
func LookupRepresentativeAPI(c *fiber.Ctx, db *sql.DB, rates *services.RateResolver) error {
	code := c.Params("code")
	if code == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Código requerido"})
	}

	rep, err := database.GetRepresentativeByCode(db, code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": "Representante no encontrado"})
		}
		config.GetLogger().Sugar().Errorw("representative lookup failed", "error", err)
		return c.Status(500).JSON(fiber.Map{"error": "Error al obtener información del representante"})
	}

	org, err := database.GetOrganizationByID(db, rep.OrganizationID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return c.Status(500).JSON(fiber.Map{"error": "Error al obtener información del representante"})
	}

	cfg, err := database.GetAppConfig(db, rep.OrganizationID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Error al obtener información del representante"})
	}

	passengers, err := database.GetActiveChildrenForRepresentative(db, rep.ID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Error al obtener información del representante"})
	}

	transactions, err := database.GetTransactionsForRepresentative(db, rep.OrganizationID, rep.ID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Error al obtener información del representante"})
	}

	current, previous := services.ComputeDebt(passengers, transactions,
		cfg.GeneralTariffUSD, cfg.LastWeeklyChargeApplied)

	dollarRate := rates.GetRate()

	var orgView fiber.Map
	if org != nil {
		orgView = fiber.Map{"id": org.ID, "name": org.Name}
	}

	if passengers == nil {
		passengers = []*models.Passenger{}
	}
	if transactions == nil {
		transactions = []*models.Transaction{}
	}

	return c.JSON(fiber.Map{
		"representative": fiber.Map{
			"id":      rep.ID,
			"alias":   rep.Alias,
			"code":    rep.Code,
			"email":   rep.Email,
			"phone":   rep.Phone,
			"address": rep.Address,
		},
		"organization":   orgView,
		"transport_name": cfg.TransportName,
		"passengers":     passengers,
		"debt": fiber.Map{
			"previous":     previous,
			"current":      current,
			"previous_bsf": previous * dollarRate,
			"current_bsf":  current * dollarRate,
			"dollar_rate":  dollarRate,
		},
		"transactions": transactions,
	})
}
