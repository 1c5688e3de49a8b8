package database

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lujan55/pilates/app/schedule"
)

func TestAssignClaseInsertsWhenSlotHasRoom(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT alumna_id FROM clases").
		WithArgs("Lunes", "08:00").
		WillReturnRows(sqlmock.NewRows([]string{"alumna_id"}).AddRow(2).AddRow(3))
	mock.ExpectExec("INSERT INTO clases").
		WithArgs(1, "Lunes", "08:00").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	result, err := AssignClase(db, 1, "Lunes", "08:00")
	require.NoError(t, err)
	assert.Equal(t, Assigned, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssignClaseDuplicateIsIdempotent(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT alumna_id FROM clases").
		WithArgs("Martes", "09:00").
		WillReturnRows(sqlmock.NewRows([]string{"alumna_id"}).AddRow(7))
	// No INSERT expected.
	mock.ExpectCommit()

	result, err := AssignClase(db, 7, "Martes", "09:00")
	require.NoError(t, err)
	assert.Equal(t, Duplicate, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssignClaseFullSlotPerformsNoMutation(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"alumna_id"})
	for id := 10; id < 10+SlotCapacity; id++ {
		rows.AddRow(id)
	}

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT alumna_id FROM clases").
		WithArgs("Viernes", "19:00").
		WillReturnRows(rows)
	mock.ExpectCommit()

	result, err := AssignClase(db, 99, "Viernes", "19:00")
	require.NoError(t, err)
	assert.Equal(t, CapacityFull, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUnassignClaseMissingRowIsNoError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("DELETE FROM clases").
		WithArgs(5, "Lunes", "08:00").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, UnassignClase(db, 5, "Lunes", "08:00"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplaceScheduleDiffsAgainstCurrentRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT dia, hora FROM clases").
		WithArgs(4).
		WillReturnRows(sqlmock.NewRows([]string{"dia", "hora"}).
			AddRow("Lunes", "08:00").
			AddRow("Martes", "09:00"))
	// "Martes 09:00" dropped, "Lunes 08:00" kept, "Jueves 10:00" added.
	mock.ExpectExec("DELETE FROM clases").
		WithArgs(4, "Martes", "09:00").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT alumna_id FROM clases").
		WithArgs("Jueves", "10:00").
		WillReturnRows(sqlmock.NewRows([]string{"alumna_id"}))
	mock.ExpectExec("INSERT INTO clases").
		WithArgs(4, "Jueves", "10:00").
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	slots := []schedule.Slot{
		{Dia: "Lunes", Hora: "08:00"},
		{Dia: "Jueves", Hora: "10:00"},
	}
	require.NoError(t, ReplaceSchedule(db, 4, slots))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplaceScheduleAbortsOnFullSlot(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	full := sqlmock.NewRows([]string{"alumna_id"})
	for id := 20; id < 20+SlotCapacity; id++ {
		full.AddRow(id)
	}

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT dia, hora FROM clases").
		WithArgs(4).
		WillReturnRows(sqlmock.NewRows([]string{"dia", "hora"}))
	mock.ExpectQuery("SELECT alumna_id FROM clases").
		WithArgs("Lunes", "08:00").
		WillReturnRows(full)
	mock.ExpectRollback()

	err = ReplaceSchedule(db, 4, []schedule.Slot{{Dia: "Lunes", Hora: "08:00"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCapacity)
	assert.NoError(t, mock.ExpectationsWereMet())
}
