package database

import (
	"database/sql"
	"fmt"

	"github.com/Angel-Lizarzado/Transporte/app/models"
)

func CreateCronLog(db *sql.DB, entry *models.CronLog) error {
	query := `INSERT INTO cron_logs (org_id, status, result, result_json, error_detail)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id, created_at`
	err := db.QueryRow(query,
		entry.OrgID, entry.Status, entry.Result, entry.ResultJSON, entry.ErrorDetail,
	).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert cron log: %w", err)
	}
	return nil
}

func GetCronLogs(db *sql.DB, orgID string, limit, offset int) ([]*models.CronLog, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `SELECT id, org_id, status, result, result_json, error_detail, created_at
			  FROM cron_logs
			  WHERE org_id = $1
			  ORDER BY created_at DESC
			  LIMIT $2 OFFSET $3`

	rows, err := db.Query(query, orgID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch cron logs: %w", err)
	}
	defer rows.Close()

	var logs []*models.CronLog
	for rows.Next() {
		entry := &models.CronLog{}
		err := rows.Scan(
			&entry.ID, &entry.OrgID, &entry.Status, &entry.Result,
			&entry.ResultJSON, &entry.ErrorDetail, &entry.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		logs = append(logs, entry)
	}
	return logs, rows.Err()
}
