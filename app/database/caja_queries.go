package database

import (
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/lujan55/pilates/app/models"
)

// GetCajaMensual computes the monthly cash-register view. Income comes from
// pagos joined with alumnas, expenses from egresos (falling back to the
// creation date when no explicit date was given), both newest-first. Totals
// are decimal sums; net = income - expenses.
func GetCajaMensual(db *sql.DB, year, month int) (*models.CajaMensual, error) {
	caja := &models.CajaMensual{
		Ingresos:      []models.CajaRow{},
		Egresos:       []models.CajaRow{},
		TotalIngresos: decimal.Zero,
		TotalEgresos:  decimal.Zero,
	}

	ingresosQuery := `SELECT p.id, to_char(p.fecha, 'YYYY-MM-DD'),
			  'Pago de ' || a.nombre, p.metodo_pago, p.monto
			  FROM pagos p
			  INNER JOIN alumnas a ON a.id = p.alumna_id
			  WHERE EXTRACT(YEAR FROM p.fecha) = $1 AND EXTRACT(MONTH FROM p.fecha) = $2
			  ORDER BY p.fecha DESC, p.id DESC`

	rows, err := db.Query(ingresosQuery, year, month)
	if err != nil {
		return nil, fmt.Errorf("query ingresos: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var r models.CajaRow
		if err := rows.Scan(&r.ID, &r.Fecha, &r.Detalle, &r.MetodoPago, &r.Monto); err != nil {
			return nil, err
		}
		caja.Ingresos = append(caja.Ingresos, r)
		caja.TotalIngresos = caja.TotalIngresos.Add(r.Monto)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	egresosQuery := `SELECT id, to_char(COALESCE(fecha, creado_en::date), 'YYYY-MM-DD'), detalle, monto
			  FROM egresos
			  WHERE EXTRACT(YEAR FROM COALESCE(fecha, creado_en::date)) = $1
			    AND EXTRACT(MONTH FROM COALESCE(fecha, creado_en::date)) = $2
			  ORDER BY COALESCE(fecha, creado_en::date) DESC, id DESC`

	eRows, err := db.Query(egresosQuery, year, month)
	if err != nil {
		return nil, fmt.Errorf("query egresos: %w", err)
	}
	defer eRows.Close()

	for eRows.Next() {
		var r models.CajaRow
		if err := eRows.Scan(&r.ID, &r.Fecha, &r.Detalle, &r.Monto); err != nil {
			return nil, err
		}
		caja.Egresos = append(caja.Egresos, r)
		caja.TotalEgresos = caja.TotalEgresos.Add(r.Monto)
	}
	if err := eRows.Err(); err != nil {
		return nil, err
	}

	caja.Neto = caja.TotalIngresos.Sub(caja.TotalEgresos)
	return caja, nil
}
