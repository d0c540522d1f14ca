package database

import (
	"database/sql"
	"fmt"

	"github.com/Angel-Lizarzado/Transporte/app/models"
)

// PassengerFilters represents filtering options for passenger listings.
type PassengerFilters struct {
	Type             string
	RepresentativeID string
	ActiveOnly       bool
	Search           string
	Limit            int
	Offset           int
}

const passengerColumns = `id, organization_id, name, type, representative_id,
	weekly_tariff_usd, custom_tariff_usd, is_active, code, notes, created_at, updated_at`

func scanPassenger(row interface{ Scan(...any) error }) (*models.Passenger, error) {
	p := &models.Passenger{}
	err := row.Scan(
		&p.ID, &p.OrganizationID, &p.Name, &p.Type, &p.RepresentativeID,
		&p.WeeklyTariffUSD, &p.CustomTariffUSD, &p.IsActive, &p.Code, &p.Notes,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func GetPassengers(db *sql.DB, orgID string, filters PassengerFilters) ([]*models.Passenger, error) {
	if filters.Limit <= 0 {
		filters.Limit = 100
	}
	query := `SELECT ` + passengerColumns + `
			  FROM passengers
			  WHERE organization_id = $1
			    AND ($2 = '' OR type = $2)
			    AND ($3 = '' OR representative_id::text = $3)
			    AND (NOT $4 OR is_active = true)
			    AND ($5 = '' OR name ILIKE '%' || $5 || '%')
			  ORDER BY name
			  LIMIT $6 OFFSET $7`

	rows, err := db.Query(query, orgID, filters.Type, filters.RepresentativeID,
		filters.ActiveOnly, filters.Search, filters.Limit, filters.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch passengers: %w", err)
	}
	defer rows.Close()

	var passengers []*models.Passenger
	for rows.Next() {
		p, err := scanPassenger(rows)
		if err != nil {
			return nil, err
		}
		passengers = append(passengers, p)
	}
	return passengers, rows.Err()
}

func GetPassengerByID(db *sql.DB, orgID, id string) (*models.Passenger, error) {
	query := `SELECT ` + passengerColumns + `
			  FROM passengers WHERE organization_id = $1 AND id = $2`
	return scanPassenger(db.QueryRow(query, orgID, id))
}

// GetActiveChildPassengers returns the passengers the weekly charge job bills.
func GetActiveChildPassengers(db *sql.DB, orgID string) ([]*models.Passenger, error) {
	query := `SELECT ` + passengerColumns + `
			  FROM passengers
			  WHERE organization_id = $1 AND type = 'child' AND is_active = true
			  ORDER BY created_at`

	rows, err := db.Query(query, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch active child passengers: %w", err)
	}
	defer rows.Close()

	var passengers []*models.Passenger
	for rows.Next() {
		p, err := scanPassenger(rows)
		if err != nil {
			return nil, err
		}
		passengers = append(passengers, p)
	}
	return passengers, rows.Err()
}

// GetActiveChildrenForRepresentative feeds the public lookup endpoint.
func GetActiveChildrenForRepresentative(db *sql.DB, repID string) ([]*models.Passenger, error) {
	query := `SELECT ` + passengerColumns + `
			  FROM passengers
			  WHERE representative_id = $1 AND type = 'child' AND is_active = true
			  ORDER BY name`

	rows, err := db.Query(query, repID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch children for representative: %w", err)
	}
	defer rows.Close()

	var passengers []*models.Passenger
	for rows.Next() {
		p, err := scanPassenger(rows)
		if err != nil {
			return nil, err
		}
		passengers = append(passengers, p)
	}
	return passengers, rows.Err()
}

func CreatePassenger(db *sql.DB, p *models.Passenger) error {
	query := `INSERT INTO passengers (organization_id, name, type, representative_id,
	              weekly_tariff_usd, custom_tariff_usd, is_active, code, notes)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			  RETURNING id, created_at, updated_at`
	err := db.QueryRow(query,
		p.OrganizationID, p.Name, p.Type, p.RepresentativeID,
		p.WeeklyTariffUSD, p.CustomTariffUSD, p.IsActive, p.Code, p.Notes,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert passenger: %w", err)
	}
	return nil
}

func UpdatePassenger(db *sql.DB, p *models.Passenger) error {
	query := `UPDATE passengers
			  SET name = $1, representative_id = $2, weekly_tariff_usd = $3,
			      custom_tariff_usd = $4, is_active = $5, notes = $6, updated_at = NOW()
			  WHERE organization_id = $7 AND id = $8`
	res, err := db.Exec(query,
		p.Name, p.RepresentativeID, p.WeeklyTariffUSD, p.CustomTariffUSD,
		p.IsActive, p.Notes, p.OrganizationID, p.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update passenger: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func DeletePassenger(db *sql.DB, orgID, id string) error {
	res, err := db.Exec(`DELETE FROM passengers WHERE organization_id = $1 AND id = $2`, orgID, id)
	if err != nil {
		return fmt.Errorf("failed to delete passenger: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
