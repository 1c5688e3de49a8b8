package database

import (
	"database/sql"
	"fmt"

	"github.com/lujan55/pilates/app/models"
	"github.com/lujan55/pilates/app/schedule"
)

// SlotCapacity is the maximum number of alumnas per (dia, hora) slot. It is
// enforced here only; clients may display their own hint but the server
// value is authoritative.
const SlotCapacity = 5

// AssignResult describes the outcome of an assignment attempt.
type AssignResult int

const (
	// Assigned means a new row was inserted.
	Assigned AssignResult = iota
	// Duplicate means the alumna already held the slot; nothing changed.
	Duplicate
	// CapacityFull means the slot already holds SlotCapacity alumnas.
	CapacityFull
)

// assignClase performs the capacity-checked insert inside tx. The SELECT FOR
// UPDATE locks the slot's rows so two concurrent assignments cannot both
// pass the capacity check.
func assignClase(tx *sql.Tx, alumnaID int, dia, hora string) (AssignResult, error) {
	rows, err := tx.Query(
		`SELECT alumna_id FROM clases WHERE dia = $1 AND hora = $2 FOR UPDATE`,
		dia, hora,
	)
	if err != nil {
		return 0, fmt.Errorf("lock slot rows: %w", err)
	}

	count := 0
	taken := false
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return 0, err
		}
		if id == alumnaID {
			taken = true
		}
		count++
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return 0, err
	}
	rows.Close()

	if count >= SlotCapacity {
		return CapacityFull, nil
	}
	if taken {
		return Duplicate, nil
	}

	if _, err := tx.Exec(
		`INSERT INTO clases (alumna_id, dia, hora) VALUES ($1, $2, $3)`,
		alumnaID, dia, hora,
	); err != nil {
		return 0, fmt.Errorf("insert clase: %w", err)
	}
	return Assigned, nil
}

// AssignClase assigns an alumna to a slot. dia and hora must already be in
// canonical form.
func AssignClase(db *sql.DB, alumnaID int, dia, hora string) (AssignResult, error) {
	tx, err := db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	result, err := assignClase(tx, alumnaID, dia, hora)
	if err != nil {
		return 0, err
	}
	return result, tx.Commit()
}

// UnassignClase removes an alumna from a slot. Removing a non-existent
// assignment is not an error.
func UnassignClase(db *sql.DB, alumnaID int, dia, hora string) error {
	_, err := db.Exec(
		`DELETE FROM clases WHERE alumna_id = $1 AND dia = $2 AND hora = $3`,
		alumnaID, dia, hora,
	)
	return err
}

// ListClases returns assignments joined with the alumna's name, ordered by
// calendar day, hour, then name. dia and hora filter when non-empty.
func ListClases(db *sql.DB, dia, hora string) ([]*models.Clase, error) {
	query := `SELECT c.id, c.dia, c.hora, a.id, a.nombre
			  FROM clases c
			  INNER JOIN alumnas a ON c.alumna_id = a.id`
	var args []interface{}
	if dia != "" && hora != "" {
		query += ` WHERE c.dia = $1 AND c.hora = $2`
		args = append(args, dia, hora)
	} else if dia != "" {
		query += ` WHERE c.dia = $1`
		args = append(args, dia)
	} else if hora != "" {
		query += ` WHERE c.hora = $1`
		args = append(args, hora)
	}
	query += ` ORDER BY ` + schedule.DayOrderSQL("c.dia") + `, c.hora, a.nombre`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	clases := []*models.Clase{}
	for rows.Next() {
		c := &models.Clase{}
		if err := rows.Scan(&c.ID, &c.Dia, &c.Hora, &c.AlumnaID, &c.Nombre); err != nil {
			return nil, err
		}
		clases = append(clases, c)
	}
	return clases, rows.Err()
}

// ReplaceSchedule makes the alumna's assignments match exactly the given
// slots, in one transaction. Slots she no longer has are deleted, new ones
// go through the same capacity check as AssignClase. A capacity failure on
// any new slot aborts the whole replacement with ErrCapacity.
func ReplaceSchedule(db *sql.DB, alumnaID int, slots []schedule.Slot) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	rows, err := tx.Query(
		`SELECT dia, hora FROM clases WHERE alumna_id = $1 FOR UPDATE`,
		alumnaID,
	)
	if err != nil {
		return err
	}
	current := map[string]schedule.Slot{}
	for rows.Next() {
		var s schedule.Slot
		if err := rows.Scan(&s.Dia, &s.Hora); err != nil {
			rows.Close()
			return err
		}
		current[s.Key()] = s
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return err
	}
	rows.Close()

	wanted := map[string]schedule.Slot{}
	for _, s := range slots {
		wanted[s.Key()] = s
	}

	for key, s := range current {
		if _, keep := wanted[key]; keep {
			continue
		}
		if _, err := tx.Exec(
			`DELETE FROM clases WHERE alumna_id = $1 AND dia = $2 AND hora = $3`,
			alumnaID, s.Dia, s.Hora,
		); err != nil {
			return err
		}
	}

	for key, s := range wanted {
		if _, has := current[key]; has {
			continue
		}
		result, err := assignClase(tx, alumnaID, s.Dia, s.Hora)
		if err != nil {
			return err
		}
		if result == CapacityFull {
			return fmt.Errorf("%w: %s", ErrCapacity, s.Key())
		}
	}

	return tx.Commit()
}
