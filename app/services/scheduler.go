package services

import (
	"database/sql"
	"time"

	"go.uber.org/zap"
)

// StartScheduler starts the background task scheduler. The weekly charge is
// also reachable through the cron endpoint; the in-week guard makes both
// triggers safe together.
func StartScheduler(db *sql.DB, logger *zap.Logger) {
	go func() {
		logger.Info("Scheduler started")
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			now := time.Now()

			// Trigger Mondays at 6:00 AM
			if now.Weekday() == time.Monday && now.Hour() == 6 && now.Minute() == 0 {
				logger.Info("Triggering scheduled weekly charge")
				if _, err := RunWeeklyCharge(db, logger); err != nil {
					logger.Error("scheduled weekly charge failed", zap.Error(err))
				}
			}
		}
	}()
}
