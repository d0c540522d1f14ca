package public

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Angel-Lizarzado/Transporte/app/config"
	"github.com/Angel-Lizarzado/Transporte/app/services"
)

const (
	orgID = "11111111-1111-1111-1111-111111111111"
	repID = "33333333-3333-3333-3333-333333333333"
)

func newLookupApp(t *testing.T) (*fiber.App, sqlmock.Sqlmock) {
	t.Helper()

	config.AppConfig = &config.Config{Logger: zap.NewNop()}

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	// Fixed exchange rate of 100 Bs/$ served by a local stub.
	rateStub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"promedio":100,"fuente":"oficial"}`))
	}))
	t.Cleanup(rateStub.Close)

	app := fiber.New()
	SetupPublicRoutes(app, db, services.NewRateResolver(rateStub.URL, zap.NewNop()))
	return app, mock
}

func TestLookupUnknownCodeReturns404(t *testing.T) {
	app, mock := newLookupApp(t)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM representatives WHERE code = $1`)).
		WithArgs("REP-99999").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	req := httptest.NewRequest("GET", "/api/public/representative/REP-99999", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLookupReturnsDebtAndLedger(t *testing.T) {
	app, mock := newLookupApp(t)
	now := time.Now()

	repColumns := []string{"id", "organization_id", "alias", "email", "phone", "address", "code", "created_at", "updated_at"}
	mock.ExpectQuery(regexp.QuoteMeta(`FROM representatives WHERE code = $1`)).
		WithArgs("REP-12345").
		WillReturnRows(sqlmock.NewRows(repColumns).
			AddRow(repID, orgID, "Familia García", nil, nil, nil, "REP-12345", now, now))

	mock.ExpectQuery(regexp.QuoteMeta(`FROM organizations WHERE id = $1`)).
		WithArgs(orgID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "created_by", "created_at"}).
			AddRow(orgID, "Ruta Escolar", "u1", now))

	configColumns := []string{"organization_id", "general_tariff_usd", "last_weekly_charge_applied", "transport_name", "theme_preference", "updated_at", "updated_by"}
	mock.ExpectQuery(regexp.QuoteMeta(`FROM app_config WHERE organization_id = $1`)).
		WithArgs(orgID).
		WillReturnRows(sqlmock.NewRows(configColumns).
			AddRow(orgID, 10.0, nil, "Transporte El Rápido", "system", now, nil))

	passengerColumns := []string{"id", "organization_id", "name", "type", "representative_id", "weekly_tariff_usd", "custom_tariff_usd", "is_active", "code", "notes", "created_at", "updated_at"}
	mock.ExpectQuery(regexp.QuoteMeta(`FROM passengers`)).
		WithArgs(repID).
		WillReturnRows(sqlmock.NewRows(passengerColumns).
			AddRow("p1", orgID, "Luis", "child", repID, nil, nil, true, nil, nil, now, now))

	txColumns := []string{"id", "organization_id", "representative_id", "date", "kind", "amount_usd", "concept", "notes", "created_by", "created_at"}
	mock.ExpectQuery(regexp.QuoteMeta(`FROM transactions`)).
		WithArgs(orgID, repID).
		WillReturnRows(sqlmock.NewRows(txColumns).
			AddRow("t1", orgID, repID, now, "charge", 10.0, "Cargo semanal para Luis", nil, "u1", now))

	req := httptest.NewRequest("GET", "/api/public/representative/REP-12345", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	var body struct {
		Representative struct {
			Code  string `json:"code"`
			Alias string `json:"alias"`
		} `json:"representative"`
		Organization struct {
			Name string `json:"name"`
		} `json:"organization"`
		TransportName *string `json:"transport_name"`
		Passengers    []any   `json:"passengers"`
		Debt          struct {
			Current    float64 `json:"current"`
			Previous   float64 `json:"previous"`
			CurrentBSF float64 `json:"current_bsf"`
			DollarRate float64 `json:"dollar_rate"`
		} `json:"debt"`
		Transactions []any `json:"transactions"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	assert.Equal(t, "REP-12345", body.Representative.Code)
	assert.Equal(t, "Familia García", body.Representative.Alias)
	assert.Equal(t, "Ruta Escolar", body.Organization.Name)
	require.NotNil(t, body.TransportName)
	assert.Equal(t, "Transporte El Rápido", *body.TransportName)
	assert.Len(t, body.Passengers, 1)
	assert.Len(t, body.Transactions, 1)

	// Tariff baseline 10 plus the one charge of 10, converted at 100 Bs/$.
	assert.Equal(t, 20.0, body.Debt.Current)
	assert.Equal(t, 20.0, body.Debt.Previous)
	assert.Equal(t, 2000.0, body.Debt.CurrentBSF)
	assert.Equal(t, 100.0, body.Debt.DollarRate)

	assert.NoError(t, mock.ExpectationsWereMet())
}
