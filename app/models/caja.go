package models

import "github.com/shopspring/decimal"

// CajaRow is one line of the monthly cash-register view.
type CajaRow struct {
	ID         int             `json:"id"`
	Fecha      string          `json:"fecha"` // YYYY-MM-DD
	Detalle    string          `json:"detalle"`
	MetodoPago string          `json:"metodo_pago,omitempty"`
	Monto      decimal.Decimal `json:"monto"`
}

// CajaMensual is the full monthly view: income and expense lines plus totals.
// Totals are accumulated with decimal arithmetic, never floats.
type CajaMensual struct {
	Ingresos      []CajaRow       `json:"ingresos"`
	Egresos       []CajaRow       `json:"egresos"`
	TotalIngresos decimal.Decimal `json:"total_ingresos"`
	TotalEgresos  decimal.Decimal `json:"total_egresos"`
	Neto          decimal.Decimal `json:"neto"`
}
