package services

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Angel-Lizarzado/Transporte/app/database"
	"github.com/Angel-Lizarzado/Transporte/app/models"
)

// ChargedPassenger is one audit line of a weekly charge run.
type ChargedPassenger struct {
	PassengerID string  `json:"passenger_id"`
	Name        string  `json:"name"`
	Rate        float64 `json:"rate"`
}

// OrgResult is the outcome of the weekly charge for one organization.
type OrgResult struct {
	OrgID      string             `json:"org_id"`
	ExecutedAt time.Time          `json:"executed_at"`
	Status     models.CronStatus  `json:"status"`
	Total      float64            `json:"total"`
	Passengers []ChargedPassenger `json:"passengers"`
	Error      string             `json:"error,omitempty"`
}

// WeeklyChargeSummary is returned to the cron caller.
type WeeklyChargeSummary struct {
	TimeMS  int64       `json:"time_ms"`
	Results []OrgResult `json:"results"`
}

// RunWeeklyCharge applies the weekly tariff to every active child passenger
// of every organization, once per calendar week.
//
// Organizations are processed sequentially and in isolation: a failure inside
// one organization rolls back that organization's charges of the day, records
// an error audit entry and moves on. Only a failure of the initial
// organizations fetch aborts the whole run.
func RunWeeklyCharge(db *sql.DB, logger *zap.Logger) (*WeeklyChargeSummary, error) {
	start := time.Now()

	orgs, err := database.GetAllOrganizations(db)
	if err != nil {
		return nil, err
	}

	summary := &WeeklyChargeSummary{Results: make([]OrgResult, 0, len(orgs))}
	for _, org := range orgs {
		result := chargeOrganization(db, logger, org)
		summary.Results = append(summary.Results, result)
	}

	summary.TimeMS = time.Since(start).Milliseconds()
	logger.Info("weekly charge completed",
		zap.Int("organizations", len(orgs)),
		zap.Int64("time_ms", summary.TimeMS),
	)
	return summary, nil
}

func chargeOrganization(db *sql.DB, logger *zap.Logger, org *models.Organization) OrgResult {
	now := time.Now()
	result := OrgResult{
		OrgID:      org.ID,
		ExecutedAt: now,
		Passengers: []ChargedPassenger{},
	}

	cfg, err := database.GetAppConfig(db, org.ID)
	if err != nil {
		return failOrganization(db, logger, result, fmt.Errorf("failed to load app config: %w", err))
	}

	// Idempotency guard: once per calendar week per organization. This is a
	// read-then-act check; concurrent runs inside the same week can both pass.
	if cfg.LastWeeklyChargeApplied != nil && cfg.LastWeeklyChargeApplied.After(startOfWeek(now)) {
		result.Status = models.CronSkipped
		persistCronLog(db, logger, result)
		logger.Info("weekly charge already applied this week, skipping",
			zap.String("org_id", org.ID))
		return result
	}

	passengers, err := database.GetActiveChildPassengers(db, org.ID)
	if err != nil {
		return failOrganization(db, logger, result, err)
	}

	for _, p := range passengers {
		rate := p.ResolveTariff(cfg.GeneralTariffUSD)
		if rate <= 0 {
			continue
		}

		tx := &models.Transaction{
			ID:               uuid.NewString(),
			OrganizationID:   org.ID,
			RepresentativeID: derefString(p.RepresentativeID),
			Date:             now,
			Kind:             models.TransactionCharge,
			AmountUSD:        rate,
			Concept:          fmt.Sprintf("Cargo semanal para %s", p.Name),
			CreatedBy:        org.CreatedBy,
		}
		if err := database.CreateTransaction(db, tx); err != nil {
			return failOrganization(db, logger, result, err)
		}

		result.Total += rate
		result.Passengers = append(result.Passengers, ChargedPassenger{
			PassengerID: p.ID,
			Name:        p.Name,
			Rate:        rate,
		})
	}

	if err := database.SetLastWeeklyChargeApplied(db, org.ID); err != nil {
		return failOrganization(db, logger, result, err)
	}

	result.Status = models.CronSuccess
	persistCronLog(db, logger, result)
	logger.Info("weekly charge applied",
		zap.String("org_id", org.ID),
		zap.Float64("total", result.Total),
		zap.Int("passengers", len(result.Passengers)),
	)
	return result
}

// failOrganization performs the compensating rollback, then records the error
// and lets the batch continue. Every charge of the current day for this
// organization is removed, not only the ones this run created.
func failOrganization(db *sql.DB, logger *zap.Logger, result OrgResult, cause error) OrgResult {
	result.Status = models.CronError
	result.Error = cause.Error()

	if err := database.DeleteChargesSince(db, result.OrgID, startOfDay(result.ExecutedAt)); err != nil {
		logger.Error("weekly charge rollback failed",
			zap.String("org_id", result.OrgID), zap.Error(err))
	}

	persistCronLog(db, logger, result)
	logger.Error("weekly charge failed for organization",
		zap.String("org_id", result.OrgID), zap.Error(cause))
	return result
}

func persistCronLog(db *sql.DB, logger *zap.Logger, result OrgResult) {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		logger.Error("failed to marshal cron log", zap.Error(err))
		resultJSON = nil
	}

	entry := &models.CronLog{
		OrgID:      result.OrgID,
		Status:     result.Status,
		Result:     formatReport(result),
		ResultJSON: resultJSON,
	}
	if result.Error != "" {
		entry.ErrorDetail = &result.Error
	}

	if err := database.CreateCronLog(db, entry); err != nil {
		logger.Error("failed to persist cron log",
			zap.String("org_id", result.OrgID), zap.Error(err))
	}
}

func formatReport(result OrgResult) string {
	var b strings.Builder
	b.WriteString("=== WEEKLY CHARGE REPORT ===\n")
	fmt.Fprintf(&b, "Fecha: %s\n", result.ExecutedAt.Format("2006-01-02 15:04"))
	fmt.Fprintf(&b, "Organización: %s\n", result.OrgID)

	switch result.Status {
	case models.CronSkipped:
		b.WriteString("\nYA APLICADO ESTA SEMANA\n")
		b.WriteString("Se saltó esta organización porque ya tenía cargos registrados esta semana.\n")
		b.WriteString("\nEstado final: Saltado")
	case models.CronError:
		fmt.Fprintf(&b, "\nERROR DURANTE EL PROCESO\nMotivo: %s\n", result.Error)
		b.WriteString("\nRollback realizado (transacciones de hoy removidas)\n")
		b.WriteString("\nEstado final: Error")
	default:
		b.WriteString("\nPasajeros procesados:\n")
		for _, p := range result.Passengers {
			fmt.Fprintf(&b, " - %s → $%.2f\n", p.Name, p.Rate)
		}
		fmt.Fprintf(&b, "\nTotal cobrado esta semana: $%.2f\n", result.Total)
		b.WriteString("\nEstado final: Success")
	}
	return b.String()
}

// startOfWeek returns Sunday 00:00 of t's week in t's location.
func startOfWeek(t time.Time) time.Time {
	day := startOfDay(t)
	return day.AddDate(0, 0, -int(day.Weekday()))
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
