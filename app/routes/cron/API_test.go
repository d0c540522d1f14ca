package cron

import (
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newCronApp(t *testing.T, secret string) (*fiber.App, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	app := fiber.New()
	SetupCronRoutes(app, db, zap.NewNop(), secret)
	return app, mock
}

func TestWeeklyChargeRequiresAuthHeader(t *testing.T) {
	app, _ := newCronApp(t, "s3cret")

	req := httptest.NewRequest("POST", "/api/cron/weekly-charge", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestWeeklyChargeRejectsBadSecret(t *testing.T) {
	app, _ := newCronApp(t, "s3cret")

	req := httptest.NewRequest("POST", "/api/cron/weekly-charge", nil)
	req.Header.Set("Authorization", "Bearer wrong")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 403, resp.StatusCode)
}

func TestWeeklyChargeRejectsEmptyConfiguredSecret(t *testing.T) {
	// An unset secret never authorizes, not even with an empty bearer token.
	app, _ := newCronApp(t, "")

	req := httptest.NewRequest("POST", "/api/cron/weekly-charge", nil)
	req.Header.Set("Authorization", "Bearer ")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 403, resp.StatusCode)
}

func TestWeeklyChargeRunsWithValidSecret(t *testing.T) {
	app, mock := newCronApp(t, "s3cret")

	// No organizations: the run completes with an empty result set.
	mock.ExpectQuery(regexp.QuoteMeta(`FROM organizations`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "created_by", "created_at"}))

	req := httptest.NewRequest("POST", "/api/cron/weekly-charge", nil)
	req.Header.Set("Authorization", "Bearer s3cret")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}
