package transactions

import (
	"database/sql"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Angel-Lizarzado/Transporte/app/config"
	"github.com/Angel-Lizarzado/Transporte/app/database"
	"github.com/Angel-Lizarzado/Transporte/app/models"
	"github.com/Angel-Lizarzado/Transporte/app/routes/auth"
)

func GetTransactionsAPI(c *fiber.Ctx) error {
	filters := database.TransactionFilters{
		RepresentativeID: c.Query("representative_id", ""),
		Kind:             c.Query("kind", ""),
		Limit:            c.QueryInt("limit", 100),
		Offset:           c.QueryInt("offset", 0),
	}

	if from := c.Query("from", ""); from != "" {
		t, err := time.Parse("2006-01-02", from)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid from date"})
		}
		filters.DateFrom = &t
	}
	if to := c.Query("to", ""); to != "" {
		t, err := time.Parse("2006-01-02", to)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid to date"})
		}
		// Include the whole day
		end := t.AddDate(0, 0, 1).Add(-time.Nanosecond)
		filters.DateTo = &end
	}

	txs, err := database.GetTransactions(config.GetDB(), auth.OrgID(c), filters)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch transactions"})
	}

	return c.JSON(fiber.Map{
		"transactions": txs,
		"count":        len(txs),
	})
}

// CreateTransactionAPI records a manual charge or payment against a
// representative's ledger.
func CreateTransactionAPI(c *fiber.Ctx) error {
	type CreateTransactionRequest struct {
		RepresentativeID string  `json:"representative_id"`
		Kind             string  `json:"kind"`
		AmountUSD        float64 `json:"amount_usd"`
		Concept          string  `json:"concept"`
		Notes            string  `json:"notes"`
	}

	var req CreateTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	db := config.GetDB()
	orgID := auth.OrgID(c)

	// The representative must belong to the caller's organization.
	if _, err := database.GetRepresentativeByID(db, orgID, req.RepresentativeID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": "Representative not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	tx := &models.Transaction{
		ID:               uuid.NewString(),
		OrganizationID:   orgID,
		RepresentativeID: req.RepresentativeID,
		Date:             time.Now(),
		Kind:             models.TransactionKind(req.Kind),
		AmountUSD:        req.AmountUSD,
		Concept:          req.Concept,
		CreatedBy:        auth.UserID(c),
	}
	if req.Notes != "" {
		tx.Notes = &req.Notes
	}

	if err := tx.Validate(); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	if err := database.CreateTransaction(db, tx); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create transaction"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message":     "Transaction created successfully",
		"transaction": tx,
	})
}

func DeleteTransactionAPI(c *fiber.Ctx) error {
	err := database.DeleteTransaction(config.GetDB(), auth.OrgID(c), c.Params("id"))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": "Transaction not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete transaction"})
	}

	return c.JSON(fiber.Map{"message": "Transaction deleted successfully"})
}
