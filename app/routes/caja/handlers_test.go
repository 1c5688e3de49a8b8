package caja

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) (*fiber.App, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	app := fiber.New()
	SetupCajaRoutes(app, db)
	return app, mock
}

func expectMonth(mock sqlmock.Sqlmock, year, month int) {
	mock.ExpectQuery("FROM pagos p").
		WithArgs(year, month).
		WillReturnRows(sqlmock.NewRows([]string{"id", "fecha", "detalle", "metodo_pago", "monto"}).
			AddRow(2, "2024-03-20", "Pago de Berta Ruiz", "Transferencia", "50.00").
			AddRow(1, "2024-03-05", "Pago de Ana Paz", "Efectivo", "100.00"))
	mock.ExpectQuery("FROM egresos").
		WithArgs(year, month).
		WillReturnRows(sqlmock.NewRows([]string{"id", "fecha", "detalle", "monto"}).
			AddRow(1, "2024-03-10", "Alquiler de sala", "30.00"))
}

func TestGetCajaRequiresYearAndMonth(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/caja/", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGetCajaMonthlyView(t *testing.T) {
	app, mock := newTestApp(t)
	expectMonth(mock, 2024, 3)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/caja/?year=2024&month=3", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body struct {
		Ingresos      []map[string]interface{} `json:"ingresos"`
		Egresos       []map[string]interface{} `json:"egresos"`
		TotalIngresos string                   `json:"total_ingresos"`
		TotalEgresos  string                   `json:"total_egresos"`
		Neto          string                   `json:"neto"`
	}
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Len(t, body.Ingresos, 2)
	assert.Len(t, body.Egresos, 1)
	assert.Equal(t, "150", body.TotalIngresos)
	assert.Equal(t, "30", body.TotalEgresos)
	assert.Equal(t, "120", body.Neto)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCajaPDFStreamsADocument(t *testing.T) {
	app, mock := newTestApp(t)
	expectMonth(mock, 2024, 3)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/caja/pdf?year=2024&month=3", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, len(raw) > 4 && string(raw[:5]) == "%PDF-")
	assert.NoError(t, mock.ExpectationsWereMet())
}
