package database

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lujan55/pilates/app/models"
)

// CreatePago records a payment and its caja mirror row in one transaction,
// so the ledger can never miss a payment.
func CreatePago(db *sql.DB, p *models.Pago) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	p.Recibo = uuid.NewString()
	err = tx.QueryRow(
		`INSERT INTO pagos (alumna_id, metodo_pago, monto, recibo)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, to_char(fecha, 'YYYY-MM-DD')`,
		p.AlumnaID, p.MetodoPago, p.Monto, p.Recibo,
	).Scan(&p.ID, &p.Fecha)
	if err != nil {
		return fmt.Errorf("insert pago: %w", err)
	}

	var nombre string
	if err := tx.QueryRow(`SELECT nombre FROM alumnas WHERE id = $1`, p.AlumnaID).Scan(&nombre); err != nil {
		return fmt.Errorf("lookup alumna: %w", err)
	}

	detalle := fmt.Sprintf("Pago de %s (%s)", nombre, p.MetodoPago)
	if _, err := tx.Exec(
		`INSERT INTO caja (fecha, tipo, detalle, monto, pago_id)
		 VALUES (CURRENT_DATE, 'Ingreso', $1, $2, $3)`,
		detalle, p.Monto, p.ID,
	); err != nil {
		return fmt.Errorf("insert caja entry: %w", err)
	}

	return tx.Commit()
}

// UpdatePago edits a payment's amount and keeps the caja mirror in step,
// addressed by pago_id rather than by matching on free text. An empty
// detalle leaves the ledger description unchanged.
func UpdatePago(db *sql.DB, id int, detalle string, monto decimal.Decimal) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	result, err := tx.Exec(`UPDATE pagos SET monto = $1 WHERE id = $2`, monto, id)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}

	if detalle != "" {
		_, err = tx.Exec(`UPDATE caja SET detalle = $1, monto = $2 WHERE pago_id = $3`, detalle, monto, id)
	} else {
		_, err = tx.Exec(`UPDATE caja SET monto = $1 WHERE pago_id = $2`, monto, id)
	}
	if err != nil {
		return err
	}

	return tx.Commit()
}

// DeletePago removes a payment; the mirrored caja row goes with it via the
// ON DELETE CASCADE on caja.pago_id.
func DeletePago(db *sql.DB, id int) error {
	result, err := db.Exec(`DELETE FROM pagos WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// GetPagosMesActual lists the current month's payments, ordered by alumna
// name for the printable listing.
func GetPagosMesActual(db *sql.DB) ([]*models.PagoListado, error) {
	query := `SELECT a.nombre, to_char(p.fecha, 'YYYY-MM-DD'), p.monto, p.metodo_pago
			  FROM pagos p
			  INNER JOIN alumnas a ON a.id = p.alumna_id
			  WHERE EXTRACT(YEAR FROM p.fecha) = EXTRACT(YEAR FROM CURRENT_DATE)
			    AND EXTRACT(MONTH FROM p.fecha) = EXTRACT(MONTH FROM CURRENT_DATE)
			  ORDER BY a.nombre ASC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	pagos := []*models.PagoListado{}
	for rows.Next() {
		p := &models.PagoListado{}
		if err := rows.Scan(&p.Nombre, &p.Fecha, &p.Monto, &p.MetodoPago); err != nil {
			return nil, err
		}
		pagos = append(pagos, p)
	}
	return pagos, rows.Err()
}
