package passengers

import (
	"database/sql"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Angel-Lizarzado/Transporte/app/config"
	"github.com/Angel-Lizarzado/Transporte/app/database"
	"github.com/Angel-Lizarzado/Transporte/app/models"
	"github.com/Angel-Lizarzado/Transporte/app/routes/auth"
)

func GetPassengersAPI(c *fiber.Ctx) error {
	filters := database.PassengerFilters{
		Type:             c.Query("type", ""),
		RepresentativeID: c.Query("representative_id", ""),
		ActiveOnly:       c.QueryBool("active", false),
		Search:           c.Query("q", ""),
		Limit:            c.QueryInt("limit", 100),
		Offset:           c.QueryInt("offset", 0),
	}

	passengers, err := database.GetPassengers(config.GetDB(), auth.OrgID(c), filters)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch passengers"})
	}

	return c.JSON(fiber.Map{
		"passengers": passengers,
		"count":      len(passengers),
	})
}

func GetPassengerAPI(c *fiber.Ctx) error {
	p, err := database.GetPassengerByID(config.GetDB(), auth.OrgID(c), c.Params("id"))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": "Passenger not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(p)
}

func CreatePassengerAPI(c *fiber.Ctx) error {
	type CreatePassengerRequest struct {
		Name             string   `json:"name"`
		Type             string   `json:"type"`
		RepresentativeID string   `json:"representative_id"`
		WeeklyTariffUSD  *float64 `json:"weekly_tariff_usd"`
		CustomTariffUSD  *float64 `json:"custom_tariff_usd"`
		Notes            string   `json:"notes"`
	}

	var req CreatePassengerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	db := config.GetDB()
	p := &models.Passenger{
		OrganizationID:  auth.OrgID(c),
		Name:            req.Name,
		Type:            models.PassengerType(req.Type),
		WeeklyTariffUSD: req.WeeklyTariffUSD,
		CustomTariffUSD: req.CustomTariffUSD,
		IsActive:        true,
	}
	if req.RepresentativeID != "" {
		p.RepresentativeID = &req.RepresentativeID
	}
	if req.Notes != "" {
		p.Notes = &req.Notes
	}

	// Teachers are roster-only and carry a DOC code instead of a representative.
	if p.Type == models.PassengerTeacher {
		code, err := database.GenerateTeacherCode(db)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to generate code"})
		}
		p.Code = &code
		p.RepresentativeID = nil
	}

	if err := p.Validate(); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	if err := database.CreatePassenger(db, p); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create passenger"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message":   "Passenger created successfully",
		"passenger": p,
	})
}

func UpdatePassengerAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	orgID := auth.OrgID(c)

	p, err := database.GetPassengerByID(db, orgID, c.Params("id"))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": "Passenger not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	type UpdatePassengerRequest struct {
		Name             *string  `json:"name"`
		RepresentativeID *string  `json:"representative_id"`
		WeeklyTariffUSD  *float64 `json:"weekly_tariff_usd"`
		CustomTariffUSD  *float64 `json:"custom_tariff_usd"`
		IsActive         *bool    `json:"is_active"`
		Notes            *string  `json:"notes"`
		ClearCustom      bool     `json:"clear_custom_tariff"`
	}

	var req UpdatePassengerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.RepresentativeID != nil && p.Type == models.PassengerChild {
		p.RepresentativeID = req.RepresentativeID
	}
	if req.WeeklyTariffUSD != nil {
		p.WeeklyTariffUSD = req.WeeklyTariffUSD
	}
	if req.CustomTariffUSD != nil {
		p.CustomTariffUSD = req.CustomTariffUSD
	}
	if req.ClearCustom {
		p.CustomTariffUSD = nil
	}
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}
	if req.Notes != nil {
		p.Notes = req.Notes
	}

	if err := p.Validate(); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	if err := database.UpdatePassenger(db, p); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update passenger"})
	}

	return c.JSON(fiber.Map{
		"message":   "Passenger updated successfully",
		"passenger": p,
	})
}

func DeletePassengerAPI(c *fiber.Ctx) error {
	err := database.DeletePassenger(config.GetDB(), auth.OrgID(c), c.Params("id"))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": "Passenger not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete passenger"})
	}

	return c.JSON(fiber.Map{"message": "Passenger deleted successfully"})
}
