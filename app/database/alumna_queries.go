package database

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/lujan55/pilates/app/models"
	"github.com/lujan55/pilates/app/schedule"
)

// alumnaColumns selects the alumna fields plus the schedule string computed
// from her live clases rows, already in canonical day-then-hour order.
func alumnaColumns() string {
	return `a.id, a.nombre, a.dni,
		COALESCE(a.telefono, ''),
		COALESCE(to_char(a.fecha_nacimiento, 'YYYY-MM-DD'), ''),
		COALESCE(a.patologias, ''),
		COALESCE((
			SELECT string_agg(c.dia || ' ' || c.hora, ',' ORDER BY ` + schedule.DayOrderSQL("c.dia") + `, c.hora)
			FROM clases c WHERE c.alumna_id = a.id
		), '')`
}

func scanAlumna(s interface{ Scan(...interface{}) error }) (*models.Alumna, error) {
	a := &models.Alumna{}
	err := s.Scan(&a.ID, &a.Nombre, &a.DNI, &a.Telefono, &a.FechaNacimiento, &a.Patologias, &a.DiasHorarios)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func GetAllAlumnas(db *sql.DB) ([]*models.Alumna, error) {
	query := `SELECT ` + alumnaColumns() + ` FROM alumnas a ORDER BY a.nombre`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	alumnas := []*models.Alumna{}
	for rows.Next() {
		a, err := scanAlumna(rows)
		if err != nil {
			return nil, err
		}
		alumnas = append(alumnas, a)
	}
	return alumnas, rows.Err()
}

func GetAlumnaByID(db *sql.DB, id int) (*models.Alumna, error) {
	query := `SELECT ` + alumnaColumns() + ` FROM alumnas a WHERE a.id = $1`

	a, err := scanAlumna(db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return a, err
}

// CreateAlumna inserts the alumna and assigns her initial slots, if any.
// Slot assignments go through the normal capacity check; a full slot is
// skipped (the registration itself still succeeds, as on the grid view).
func CreateAlumna(db *sql.DB, a *models.Alumna, slots []schedule.Slot) error {
	query := `INSERT INTO alumnas (nombre, dni, telefono, fecha_nacimiento, patologias)
			  VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, '')::date, NULLIF($5, ''))
			  RETURNING id`

	err := db.QueryRow(query, a.Nombre, a.DNI, a.Telefono, a.FechaNacimiento, a.Patologias).Scan(&a.ID)
	if err != nil {
		return fmt.Errorf("insert alumna: %w", err)
	}

	for _, s := range slots {
		result, err := AssignClase(db, a.ID, s.Dia, s.Hora)
		if err != nil {
			log.Printf("CreateAlumna: assigning %s to alumna %d: %v", s.Key(), a.ID, err)
			continue
		}
		if result == CapacityFull {
			log.Printf("CreateAlumna: slot %s full, skipped for alumna %d", s.Key(), a.ID)
		}
	}

	return nil
}

// GetCumplesHoy returns alumnas whose birthday falls on today's date.
func GetCumplesHoy(db *sql.DB) ([]*models.Alumna, error) {
	query := `SELECT a.id, a.nombre, to_char(a.fecha_nacimiento, 'YYYY-MM-DD')
			  FROM alumnas a
			  WHERE a.fecha_nacimiento IS NOT NULL
			    AND to_char(a.fecha_nacimiento, 'MM-DD') = to_char(CURRENT_DATE, 'MM-DD')
			  ORDER BY a.nombre`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	alumnas := []*models.Alumna{}
	for rows.Next() {
		a := &models.Alumna{}
		if err := rows.Scan(&a.ID, &a.Nombre, &a.FechaNacimiento); err != nil {
			return nil, err
		}
		alumnas = append(alumnas, a)
	}
	return alumnas, rows.Err()
}
