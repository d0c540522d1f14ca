package database

import (
	"database/sql"
	"fmt"

	"github.com/Angel-Lizarzado/Transporte/app/models"
)

func GetUserByEmail(db *sql.DB, email string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, email, password, full_name, is_active, created_at, updated_at
			  FROM users WHERE email = $1 AND is_active = true`

	err := db.QueryRow(query, email).Scan(
		&user.ID, &user.Email, &user.Password, &user.FullName,
		&user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func GetUserByID(db *sql.DB, userID string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, email, password, full_name, is_active, created_at, updated_at
			  FROM users WHERE id = $1 AND is_active = true`

	err := db.QueryRow(query, userID).Scan(
		&user.ID, &user.Email, &user.Password, &user.FullName,
		&user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func UpdateUserPassword(db *sql.DB, userID string, hashedPassword string) error {
	query := `UPDATE users SET password = $1, updated_at = NOW() WHERE id = $2`
	_, err := db.Exec(query, hashedPassword, userID)
	return err
}

// RegisterOwner creates the user, organization, membership and default app
// config in one transaction so a half-registered tenant never exists.
func RegisterOwner(db *sql.DB, user *models.User, orgName string) (*models.Organization, error) {
	tx, err := db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	queryUser := `INSERT INTO users (email, password, full_name)
	              VALUES ($1, $2, $3)
				  RETURNING id, is_active, created_at, updated_at`
	err = tx.QueryRow(queryUser, user.Email, user.Password, user.FullName).Scan(
		&user.ID, &user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}

	org := &models.Organization{Name: orgName, CreatedBy: user.ID}
	queryOrg := `INSERT INTO organizations (name, created_by) VALUES ($1, $2)
	             RETURNING id, created_at`
	err = tx.QueryRow(queryOrg, org.Name, org.CreatedBy).Scan(&org.ID, &org.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert organization: %w", err)
	}

	queryMember := `INSERT INTO organization_members (organization_id, user_id, role)
	                VALUES ($1, $2, 'owner')`
	if _, err = tx.Exec(queryMember, org.ID, user.ID); err != nil {
		return nil, fmt.Errorf("failed to insert membership: %w", err)
	}

	queryConfig := `INSERT INTO app_config (organization_id, updated_by) VALUES ($1, $2)`
	if _, err = tx.Exec(queryConfig, org.ID, user.ID); err != nil {
		return nil, fmt.Errorf("failed to insert app config: %w", err)
	}

	return org, tx.Commit()
}

// GetOrganizationForUser resolves the tenant of an authenticated admin.
func GetOrganizationForUser(db *sql.DB, userID string) (*models.Organization, error) {
	org := &models.Organization{}
	query := `SELECT o.id, o.name, o.created_by, o.created_at
			  FROM organizations o
			  JOIN organization_members m ON m.organization_id = o.id
			  WHERE m.user_id = $1`

	err := db.QueryRow(query, userID).Scan(&org.ID, &org.Name, &org.CreatedBy, &org.CreatedAt)
	if err != nil {
		return nil, err
	}
	return org, nil
}

func GetOrganizationByID(db *sql.DB, orgID string) (*models.Organization, error) {
	org := &models.Organization{}
	query := `SELECT id, name, created_by, created_at FROM organizations WHERE id = $1`

	err := db.QueryRow(query, orgID).Scan(&org.ID, &org.Name, &org.CreatedBy, &org.CreatedAt)
	if err != nil {
		return nil, err
	}
	return org, nil
}

func GetAllOrganizations(db *sql.DB) ([]*models.Organization, error) {
	query := `SELECT id, name, created_by, created_at FROM organizations ORDER BY created_at`

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch organizations: %w", err)
	}
	defer rows.Close()

	var orgs []*models.Organization
	for rows.Next() {
		org := &models.Organization{}
		if err := rows.Scan(&org.ID, &org.Name, &org.CreatedBy, &org.CreatedAt); err != nil {
			return nil, err
		}
		orgs = append(orgs, org)
	}
	return orgs, rows.Err()
}

func UpdateOrganizationName(db *sql.DB, orgID, name string) error {
	_, err := db.Exec(`UPDATE organizations SET name = $1 WHERE id = $2`, name, orgID)
	return err
}

func GetAppConfig(db *sql.DB, orgID string) (*models.AppConfig, error) {
	cfg := &models.AppConfig{}
	query := `SELECT organization_id, general_tariff_usd, last_weekly_charge_applied,
	                 transport_name, theme_preference, updated_at, updated_by
			  FROM app_config WHERE organization_id = $1`

	err := db.QueryRow(query, orgID).Scan(
		&cfg.OrganizationID, &cfg.GeneralTariffUSD, &cfg.LastWeeklyChargeApplied,
		&cfg.TransportName, &cfg.ThemePreference, &cfg.UpdatedAt, &cfg.UpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func UpdateAppConfig(db *sql.DB, cfg *models.AppConfig) error {
	query := `UPDATE app_config
			  SET general_tariff_usd = $1, transport_name = $2, theme_preference = $3,
			      updated_at = NOW(), updated_by = $4
			  WHERE organization_id = $5`
	_, err := db.Exec(query,
		cfg.GeneralTariffUSD, cfg.TransportName, cfg.ThemePreference,
		cfg.UpdatedBy, cfg.OrganizationID,
	)
	if err != nil {
		return fmt.Errorf("failed to update app config: %w", err)
	}
	return nil
}

// SetLastWeeklyChargeApplied moves the weekly charge marker. Only the weekly
// charge job calls this.
func SetLastWeeklyChargeApplied(db *sql.DB, orgID string) error {
	query := `UPDATE app_config SET last_weekly_charge_applied = NOW(), updated_at = NOW()
			  WHERE organization_id = $1`
	_, err := db.Exec(query, orgID)
	return err
}
