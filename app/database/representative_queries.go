package database

import (
	"database/sql"
	"fmt"

	"github.com/Angel-Lizarzado/Transporte/app/models"
)

const representativeColumns = `id, organization_id, alias, email, phone, address, code, created_at, updated_at`

func scanRepresentative(row interface{ Scan(...any) error }) (*models.Representative, error) {
	rep := &models.Representative{}
	err := row.Scan(
		&rep.ID, &rep.OrganizationID, &rep.Alias, &rep.Email, &rep.Phone,
		&rep.Address, &rep.Code, &rep.CreatedAt, &rep.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return rep, nil
}

func GetRepresentatives(db *sql.DB, orgID string, search string, limit, offset int) ([]*models.Representative, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `SELECT ` + representativeColumns + `
			  FROM representatives
			  WHERE organization_id = $1
			    AND ($2 = '' OR alias ILIKE '%' || $2 || '%' OR code ILIKE '%' || $2 || '%')
			  ORDER BY alias
			  LIMIT $3 OFFSET $4`

	rows, err := db.Query(query, orgID, search, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch representatives: %w", err)
	}
	defer rows.Close()

	var reps []*models.Representative
	for rows.Next() {
		rep, err := scanRepresentative(rows)
		if err != nil {
			return nil, err
		}
		reps = append(reps, rep)
	}
	return reps, rows.Err()
}

func GetRepresentativeByID(db *sql.DB, orgID, id string) (*models.Representative, error) {
	query := `SELECT ` + representativeColumns + `
			  FROM representatives WHERE organization_id = $1 AND id = $2`
	return scanRepresentative(db.QueryRow(query, orgID, id))
}

// GetRepresentativeByCode looks a representative up across tenants. The code
// is the sole credential of the public lookup endpoint.
func GetRepresentativeByCode(db *sql.DB, code string) (*models.Representative, error) {
	query := `SELECT ` + representativeColumns + ` FROM representatives WHERE code = $1`
	return scanRepresentative(db.QueryRow(query, code))
}

func CreateRepresentative(db *sql.DB, rep *models.Representative) error {
	query := `INSERT INTO representatives (organization_id, alias, email, phone, address, code)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id, created_at, updated_at`
	err := db.QueryRow(query,
		rep.OrganizationID, rep.Alias, rep.Email, rep.Phone, rep.Address, rep.Code,
	).Scan(&rep.ID, &rep.CreatedAt, &rep.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert representative: %w", err)
	}
	return nil
}

func UpdateRepresentative(db *sql.DB, rep *models.Representative) error {
	query := `UPDATE representatives
			  SET alias = $1, email = $2, phone = $3, address = $4, updated_at = NOW()
			  WHERE organization_id = $5 AND id = $6`
	res, err := db.Exec(query, rep.Alias, rep.Email, rep.Phone, rep.Address, rep.OrganizationID, rep.ID)
	if err != nil {
		return fmt.Errorf("failed to update representative: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func DeleteRepresentative(db *sql.DB, orgID, id string) error {
	res, err := db.Exec(`DELETE FROM representatives WHERE organization_id = $1 AND id = $2`, orgID, id)
	if err != nil {
		return fmt.Errorf("failed to delete representative: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
