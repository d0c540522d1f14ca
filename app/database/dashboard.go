package database

import (
	"database/sql"
	"fmt"
)

// DashboardStats summarizes one organization for the admin landing screen.
type DashboardStats struct {
	Representatives  int     `json:"representatives"`
	ActivePassengers int     `json:"active_passengers"`
	ActiveChildren   int     `json:"active_children"`
	Teachers         int     `json:"teachers"`
	TotalDebtUSD     float64 `json:"total_debt_usd"`
	ChargesThisWeek  float64 `json:"charges_this_week"`
	PaymentsThisWeek float64 `json:"payments_this_week"`
}

// Debtor is one row of the top-debtors listing.
type Debtor struct {
	RepresentativeID string  `json:"representative_id"`
	Alias            string  `json:"alias"`
	Code             string  `json:"code"`
	DebtUSD          float64 `json:"debt_usd"`
}

// debtorQuery computes each representative's outstanding balance in SQL:
// the active-children tariff baseline (custom -> weekly -> general) plus
// charges minus payments.
const debtorQuery = `
	SELECT r.id, r.alias, r.code,
	       COALESCE(base.baseline, 0) + COALESCE(led.charges, 0) - COALESCE(led.payments, 0) AS debt
	FROM representatives r
	JOIN app_config c ON c.organization_id = r.organization_id
	LEFT JOIN LATERAL (
		SELECT SUM(COALESCE(p.custom_tariff_usd, p.weekly_tariff_usd, c.general_tariff_usd)) AS baseline
		FROM passengers p
		WHERE p.representative_id = r.id AND p.type = 'child' AND p.is_active = true
	) base ON true
	LEFT JOIN LATERAL (
		SELECT SUM(CASE WHEN t.kind = 'charge' THEN t.amount_usd ELSE 0 END) AS charges,
		       SUM(CASE WHEN t.kind = 'payment' THEN t.amount_usd ELSE 0 END) AS payments
		FROM transactions t
		WHERE t.representative_id = r.id AND t.organization_id = r.organization_id
	) led ON true
	WHERE r.organization_id = $1`

func GetTopDebtors(db *sql.DB, orgID string, limit int) ([]*Debtor, error) {
	if limit <= 0 {
		limit = 5
	}
	query := debtorQuery + `
	ORDER BY debt DESC
	LIMIT $2`

	rows, err := db.Query(query, orgID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch top debtors: %w", err)
	}
	defer rows.Close()

	var debtors []*Debtor
	for rows.Next() {
		d := &Debtor{}
		if err := rows.Scan(&d.RepresentativeID, &d.Alias, &d.Code, &d.DebtUSD); err != nil {
			return nil, err
		}
		debtors = append(debtors, d)
	}
	return debtors, rows.Err()
}

func GetDashboardStats(db *sql.DB, orgID string) (*DashboardStats, error) {
	stats := &DashboardStats{}

	query := `
		SELECT
			(SELECT COUNT(*) FROM representatives WHERE organization_id = $1),
			(SELECT COUNT(*) FROM passengers WHERE organization_id = $1 AND is_active = true),
			(SELECT COUNT(*) FROM passengers WHERE organization_id = $1 AND is_active = true AND type = 'child'),
			(SELECT COUNT(*) FROM passengers WHERE organization_id = $1 AND type = 'teacher'),
			COALESCE((SELECT SUM(amount_usd) FROM transactions
				WHERE organization_id = $1 AND kind = 'charge' AND date >= date_trunc('week', NOW())), 0),
			COALESCE((SELECT SUM(amount_usd) FROM transactions
				WHERE organization_id = $1 AND kind = 'payment' AND date >= date_trunc('week', NOW())), 0)`

	err := db.QueryRow(query, orgID).Scan(
		&stats.Representatives, &stats.ActivePassengers, &stats.ActiveChildren,
		&stats.Teachers, &stats.ChargesThisWeek, &stats.PaymentsThisWeek,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch dashboard stats: %w", err)
	}

	totalQuery := `SELECT COALESCE(SUM(debt), 0) FROM (` + debtorQuery + `) AS balances`
	if err := db.QueryRow(totalQuery, orgID).Scan(&stats.TotalDebtUSD); err != nil {
		return nil, fmt.Errorf("failed to fetch total debt: %w", err)
	}

	return stats, nil
}
