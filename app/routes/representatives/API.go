package representatives

import (
	"database/sql"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Angel-Lizarzado/Transporte/app/config"
	"github.com/Angel-Lizarzado/Transporte/app/database"
	"github.com/Angel-Lizarzado/Transporte/app/models"
	"github.com/Angel-Lizarzado/Transporte/app/routes/auth"
	"github.com/Angel-Lizarzado/Transporte/app/services"
)

func GetRepresentativesAPI(c *fiber.Ctx) error {
	search := c.Query("q", "")
	limit := c.QueryInt("limit", 50)
	offset := c.QueryInt("offset", 0)

	reps, err := database.GetRepresentatives(config.GetDB(), auth.OrgID(c), search, limit, offset)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch representatives"})
	}

	return c.JSON(fiber.Map{
		"representatives": reps,
		"count":           len(reps),
	})
}

// GetRepresentativeAPI returns one representative together with its active
// children, ledger and computed balance, as shown on the admin detail screen.
func GetRepresentativeAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	orgID := auth.OrgID(c)

	rep, err := database.GetRepresentativeByID(db, orgID, c.Params("id"))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": "Representative not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	cfg, err := database.GetAppConfig(db, orgID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load settings"})
	}

	passengers, err := database.GetActiveChildrenForRepresentative(db, rep.ID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch passengers"})
	}

	transactions, err := database.GetTransactionsForRepresentative(db, orgID, rep.ID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch transactions"})
	}

	current, previous := services.ComputeDebt(passengers, transactions,
		cfg.GeneralTariffUSD, cfg.LastWeeklyChargeApplied)

	view := &models.RepresentativeWithDebt{
		Representative:  *rep,
		CurrentDebtUSD:  current,
		PreviousDebtUSD: previous,
		Passengers:      passengers,
		Transactions:    transactions,
	}
	return c.JSON(view)
}

func CreateRepresentativeAPI(c *fiber.Ctx) error {
	type CreateRepresentativeRequest struct {
		Alias   string `json:"alias"`
		Email   string `json:"email"`
		Phone   string `json:"phone"`
		Address string `json:"address"`
	}

	var req CreateRepresentativeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if req.Alias == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Alias is required"})
	}

	db := config.GetDB()
	code, err := database.GenerateRepresentativeCode(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to generate code"})
	}

	rep := &models.Representative{
		OrganizationID: auth.OrgID(c),
		Alias:          req.Alias,
		Code:           code,
	}
	if req.Email != "" {
		rep.Email = &req.Email
	}
	if req.Phone != "" {
		rep.Phone = &req.Phone
	}
	if req.Address != "" {
		rep.Address = &req.Address
	}

	if err := rep.Validate(); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	if err := database.CreateRepresentative(db, rep); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create representative"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message":        "Representative created successfully",
		"representative": rep,
	})
}

func UpdateRepresentativeAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	orgID := auth.OrgID(c)

	rep, err := database.GetRepresentativeByID(db, orgID, c.Params("id"))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": "Representative not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	type UpdateRepresentativeRequest struct {
		Alias   *string `json:"alias"`
		Email   *string `json:"email"`
		Phone   *string `json:"phone"`
		Address *string `json:"address"`
	}

	var req UpdateRepresentativeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	if req.Alias != nil {
		rep.Alias = *req.Alias
	}
	if req.Email != nil {
		rep.Email = req.Email
	}
	if req.Phone != nil {
		rep.Phone = req.Phone
	}
	if req.Address != nil {
		rep.Address = req.Address
	}

	if err := rep.Validate(); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	if err := database.UpdateRepresentative(db, rep); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update representative"})
	}

	return c.JSON(fiber.Map{
		"message":        "Representative updated successfully",
		"representative": rep,
	})
}

func DeleteRepresentativeAPI(c *fiber.Ctx) error {
	err := database.DeleteRepresentative(config.GetDB(), auth.OrgID(c), c.Params("id"))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": "Representative not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete representative"})
	}

	return c.JSON(fiber.Map{"message": "Representative deleted successfully"})
}
