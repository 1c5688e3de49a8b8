package alumnas

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) (*fiber.App, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	app := fiber.New()
	SetupAlumnasRoutes(app, db)
	return app, mock
}

func doJSON(app *fiber.App, method, path, body string) (int, map[string]interface{}, error) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, err
	}
	var out map[string]interface{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &out); err != nil {
			return 0, nil, err
		}
	}
	return resp.StatusCode, out, nil
}

func TestCreateAlumnaRequiresNombreYDNI(t *testing.T) {
	app, _ := newTestApp(t)

	status, body, err := doJSON(app, "POST", "/api/alumnas/", `{"telefono":"123"}`)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Nombre y DNI son obligatorios", body["message"])
}

func TestCreateAlumnaDuplicateDNI(t *testing.T) {
	app, mock := newTestApp(t)

	mock.ExpectQuery("INSERT INTO alumnas").
		WillReturnError(&pq.Error{Code: "23505"})

	status, body, err := doJSON(app, "POST", "/api/alumnas/", `{"nombre":"Ana Paz","dni":"30123456"}`)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, status)
	assert.Equal(t, "El DNI ya existe", body["message"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAlumnaWithInitialSlots(t *testing.T) {
	app, mock := newTestApp(t)

	mock.ExpectQuery("INSERT INTO alumnas").
		WithArgs("Ana Paz", "30123456", "", "", "").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))
	// "lunes 8hs" normalizes to "Lunes 08:00"; the garbage token is dropped.
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT alumna_id FROM clases").
		WithArgs("Lunes", "08:00").
		WillReturnRows(sqlmock.NewRows([]string{"alumna_id"}))
	mock.ExpectExec("INSERT INTO clases").
		WithArgs(11, "Lunes", "08:00").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	status, body, err := doJSON(app, "POST", "/api/alumnas/",
		`{"nombre":"Ana Paz","dni":"30123456","dias_horarios":"lunes 8hs, Feriado 99"}`)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, float64(11), body["id"])
	assert.NoError(t, mock.ExpectationsWereMet())
}
