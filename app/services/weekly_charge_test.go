package services

import (
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Angel-Lizarzado/Transporte/app/models"
)

const (
	orgID  = "11111111-1111-1111-1111-111111111111"
	userID = "22222222-2222-2222-2222-222222222222"
	repID  = "33333333-3333-3333-3333-333333333333"
)

var (
	orgColumns       = []string{"id", "name", "created_by", "created_at"}
	configColumns    = []string{"organization_id", "general_tariff_usd", "last_weekly_charge_applied", "transport_name", "theme_preference", "updated_at", "updated_by"}
	passengerColumns = []string{"id", "organization_id", "name", "type", "representative_id", "weekly_tariff_usd", "custom_tariff_usd", "is_active", "code", "notes", "created_at", "updated_at"}
	cronLogColumns   = []string{"id", "created_at"}
)

func expectOrganizations(mock sqlmock.Sqlmock, ids ...string) {
	rows := sqlmock.NewRows(orgColumns)
	for _, id := range ids {
		rows.AddRow(id, "Ruta Escolar", userID, time.Now())
	}
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, created_by, created_at FROM organizations`)).
		WillReturnRows(rows)
}

func expectConfig(mock sqlmock.Sqlmock, id string, generalTariff float64, lastApplied *time.Time) {
	var last driver.Value
	if lastApplied != nil {
		last = *lastApplied
	}
	mock.ExpectQuery(regexp.QuoteMeta(`FROM app_config WHERE organization_id = $1`)).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(configColumns).
			AddRow(id, generalTariff, last, nil, "system", time.Now(), nil))
}

func passengerRow(rows *sqlmock.Rows, id, name string, weekly, custom driver.Value) {
	rows.AddRow(id, orgID, name, "child", repID, weekly, custom, true, nil, nil, time.Now(), time.Now())
}

func expectCronLog(mock sqlmock.Sqlmock, status models.CronStatus) {
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO cron_logs`)).
		WithArgs(sqlmock.AnyArg(), string(status), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(cronLogColumns).AddRow("log-1", time.Now()))
}

func TestRunWeeklyChargeFreshOrganization(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	expectOrganizations(mock, orgID)
	expectConfig(mock, orgID, 10, nil)

	rows := sqlmock.NewRows(passengerColumns)
	passengerRow(rows, "p1", "Luis", nil, nil)
	mock.ExpectQuery(regexp.QuoteMeta(`FROM passengers`)).WithArgs(orgID).WillReturnRows(rows)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO transactions`)).
		WithArgs(sqlmock.AnyArg(), orgID, repID, sqlmock.AnyArg(), "charge", 10.0,
			"Cargo semanal para Luis", nil, userID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE app_config SET last_weekly_charge_applied = NOW()`)).
		WithArgs(orgID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	expectCronLog(mock, models.CronSuccess)

	summary, err := RunWeeklyCharge(db, zap.NewNop())
	require.NoError(t, err)
	require.Len(t, summary.Results, 1)

	result := summary.Results[0]
	assert.Equal(t, models.CronSuccess, result.Status)
	assert.Equal(t, 10.0, result.Total)
	require.Len(t, result.Passengers, 1)
	assert.Equal(t, "Luis", result.Passengers[0].Name)
	assert.Equal(t, 10.0, result.Passengers[0].Rate)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunWeeklyChargeSkipsSameWeek(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	lastApplied := time.Now().Add(-time.Minute)

	expectOrganizations(mock, orgID)
	expectConfig(mock, orgID, 10, &lastApplied)
	expectCronLog(mock, models.CronSkipped)

	summary, err := RunWeeklyCharge(db, zap.NewNop())
	require.NoError(t, err)
	require.Len(t, summary.Results, 1)
	assert.Equal(t, models.CronSkipped, summary.Results[0].Status)
	assert.Empty(t, summary.Results[0].Passengers)

	// No transaction insert and no config update expected.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunWeeklyChargeSkipsNonPositiveTariffs(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	expectOrganizations(mock, orgID)
	expectConfig(mock, orgID, 0, nil)

	rows := sqlmock.NewRows(passengerColumns)
	passengerRow(rows, "p1", "Luis", nil, 0.0) // custom 0, nothing to bill
	mock.ExpectQuery(regexp.QuoteMeta(`FROM passengers`)).WithArgs(orgID).WillReturnRows(rows)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE app_config SET last_weekly_charge_applied = NOW()`)).
		WithArgs(orgID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	expectCronLog(mock, models.CronSuccess)

	summary, err := RunWeeklyCharge(db, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 0.0, summary.Results[0].Total)
	assert.Empty(t, summary.Results[0].Passengers)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunWeeklyChargeRollsBackOnFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	otherOrg := "44444444-4444-4444-4444-444444444444"

	expectOrganizations(mock, orgID, otherOrg)

	// First organization: second insert blows up mid-loop.
	expectConfig(mock, orgID, 10, nil)
	rows := sqlmock.NewRows(passengerColumns)
	passengerRow(rows, "p1", "Luis", nil, nil)
	passengerRow(rows, "p2", "Ana", nil, nil)
	mock.ExpectQuery(regexp.QuoteMeta(`FROM passengers`)).WithArgs(orgID).WillReturnRows(rows)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO transactions`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO transactions`)).
		WillReturnError(errors.New("connection reset"))

	// Compensating rollback: every charge of the day for this organization.
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM transactions`)).
		WithArgs(orgID, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	expectCronLog(mock, models.CronError)

	// Second organization still gets processed.
	expectConfig(mock, otherOrg, 10, nil)
	mock.ExpectQuery(regexp.QuoteMeta(`FROM passengers`)).WithArgs(otherOrg).
		WillReturnRows(sqlmock.NewRows(passengerColumns))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE app_config SET last_weekly_charge_applied = NOW()`)).
		WithArgs(otherOrg).
		WillReturnResult(sqlmock.NewResult(0, 1))
	expectCronLog(mock, models.CronSuccess)

	summary, err := RunWeeklyCharge(db, zap.NewNop())
	require.NoError(t, err)
	require.Len(t, summary.Results, 2)

	assert.Equal(t, models.CronError, summary.Results[0].Status)
	assert.Contains(t, summary.Results[0].Error, "connection reset")
	assert.Equal(t, models.CronSuccess, summary.Results[1].Status)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunWeeklyChargeAbortsWhenOrganizationsFetchFails(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM organizations`)).
		WillReturnError(errors.New("database offline"))

	_, err = RunWeeklyCharge(db, zap.NewNop())
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStartOfWeekIsSunday(t *testing.T) {
	// Friday 2026-08-28
	friday := time.Date(2026, 8, 28, 15, 30, 0, 0, time.UTC)
	sow := startOfWeek(friday)

	assert.Equal(t, time.Sunday, sow.Weekday())
	assert.Equal(t, time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC), sow)

	// A Sunday is its own week start.
	sunday := time.Date(2026, 8, 23, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC), startOfWeek(sunday))
}
