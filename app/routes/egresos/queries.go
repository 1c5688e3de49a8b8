package egresos

import (
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/lujan55/pilates/app/database"
	"github.com/lujan55/pilates/app/models"
)

// CreateEgreso inserts the expense and its caja mirror row in one
// transaction. An empty fecha falls back to the current date.
func CreateEgreso(db *sql.DB, e *models.Egreso) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	err = tx.QueryRow(
		`INSERT INTO egresos (fecha, detalle, monto)
		 VALUES (COALESCE(NULLIF($1, '')::date, CURRENT_DATE), $2, $3)
		 RETURNING id, to_char(fecha, 'YYYY-MM-DD')`,
		e.Fecha, e.Detalle, e.Monto,
	).Scan(&e.ID, &e.Fecha)
	if err != nil {
		return fmt.Errorf("insert egreso: %w", err)
	}

	if _, err := tx.Exec(
		`INSERT INTO caja (fecha, tipo, detalle, monto, egreso_id)
		 VALUES ($1::date, 'Egreso', $2, $3, $4)`,
		e.Fecha, e.Detalle, e.Monto, e.ID,
	); err != nil {
		return fmt.Errorf("insert caja entry: %w", err)
	}

	return tx.Commit()
}

// UpdateEgreso edits an expense and its caja mirror, addressed by egreso_id.
func UpdateEgreso(db *sql.DB, id int, detalle string, monto decimal.Decimal) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	result, err := tx.Exec(`UPDATE egresos SET detalle = $1, monto = $2 WHERE id = $3`, detalle, monto, id)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return database.ErrNotFound
	}

	if _, err := tx.Exec(`UPDATE caja SET detalle = $1, monto = $2 WHERE egreso_id = $3`, detalle, monto, id); err != nil {
		return err
	}

	return tx.Commit()
}

// DeleteEgreso removes an expense; its caja row follows via ON DELETE CASCADE.
func DeleteEgreso(db *sql.DB, id int) error {
	result, err := db.Exec(`DELETE FROM egresos WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return database.ErrNotFound
	}
	return nil
}

// GetEgresosMesActual lists the current month's expenses, newest first.
func GetEgresosMesActual(db *sql.DB) ([]*models.Egreso, error) {
	query := `SELECT id, to_char(COALESCE(fecha, creado_en::date), 'YYYY-MM-DD'), detalle, monto
			  FROM egresos
			  WHERE EXTRACT(YEAR FROM COALESCE(fecha, creado_en::date)) = EXTRACT(YEAR FROM CURRENT_DATE)
			    AND EXTRACT(MONTH FROM COALESCE(fecha, creado_en::date)) = EXTRACT(MONTH FROM CURRENT_DATE)
			  ORDER BY COALESCE(fecha, creado_en::date) DESC, id DESC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	egresos := []*models.Egreso{}
	for rows.Next() {
		e := &models.Egreso{}
		if err := rows.Scan(&e.ID, &e.Fecha, &e.Detalle, &e.Monto); err != nil {
			return nil, err
		}
		egresos = append(egresos, e)
	}
	return egresos, rows.Err()
}
