package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Angel-Lizarzado/Transporte/app/models"
)

// TransactionFilters represents filtering options for ledger listings.
type TransactionFilters struct {
	RepresentativeID string
	Kind             string
	DateFrom         *time.Time
	DateTo           *time.Time
	Limit            int
	Offset           int
}

const transactionColumns = `id, organization_id, representative_id, date, kind,
	amount_usd, concept, notes, created_by, created_at`

func scanTransaction(row interface{ Scan(...any) error }) (*models.Transaction, error) {
	t := &models.Transaction{}
	err := row.Scan(
		&t.ID, &t.OrganizationID, &t.RepresentativeID, &t.Date, &t.Kind,
		&t.AmountUSD, &t.Concept, &t.Notes, &t.CreatedBy, &t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func GetTransactions(db *sql.DB, orgID string, filters TransactionFilters) ([]*models.Transaction, error) {
	if filters.Limit <= 0 {
		filters.Limit = 100
	}
	query := `SELECT ` + transactionColumns + `
			  FROM transactions
			  WHERE organization_id = $1
			    AND ($2 = '' OR representative_id::text = $2)
			    AND ($3 = '' OR kind = $3)
			    AND ($4::timestamptz IS NULL OR date >= $4)
			    AND ($5::timestamptz IS NULL OR date <= $5)
			  ORDER BY date DESC
			  LIMIT $6 OFFSET $7`

	rows, err := db.Query(query, orgID, filters.RepresentativeID, filters.Kind,
		filters.DateFrom, filters.DateTo, filters.Limit, filters.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}
	defer rows.Close()

	var txs []*models.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		txs = append(txs, t)
	}
	return txs, rows.Err()
}

// GetTransactionsForRepresentative returns the full ledger of one
// representative, newest first, as shown by the public lookup endpoint.
func GetTransactionsForRepresentative(db *sql.DB, orgID, repID string) ([]*models.Transaction, error) {
	query := `SELECT ` + transactionColumns + `
			  FROM transactions
			  WHERE organization_id = $1 AND representative_id = $2
			  ORDER BY date DESC`

	rows, err := db.Query(query, orgID, repID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch representative transactions: %w", err)
	}
	defer rows.Close()

	var txs []*models.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		txs = append(txs, t)
	}
	return txs, rows.Err()
}

func CreateTransaction(db *sql.DB, t *models.Transaction) error {
	query := `INSERT INTO transactions (id, organization_id, representative_id, date,
	              kind, amount_usd, concept, notes, created_by)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := db.Exec(query,
		t.ID, t.OrganizationID, t.RepresentativeID, t.Date,
		t.Kind, t.AmountUSD, t.Concept, t.Notes, t.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}
	return nil
}

func DeleteTransaction(db *sql.DB, orgID, id string) error {
	res, err := db.Exec(`DELETE FROM transactions WHERE organization_id = $1 AND id = $2`, orgID, id)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// DeleteChargesSince removes every charge transaction for the organization
// dated on or after the given instant. The weekly charge job uses it with the
// start of the current day as a blunt compensating rollback.
func DeleteChargesSince(db *sql.DB, orgID string, since time.Time) error {
	query := `DELETE FROM transactions
			  WHERE organization_id = $1 AND kind = 'charge' AND date >= $2`
	if _, err := db.Exec(query, orgID, since); err != nil {
		return fmt.Errorf("failed to roll back charges: %w", err)
	}
	return nil
}
