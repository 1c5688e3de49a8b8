package models

import "github.com/shopspring/decimal"

// Pago is a payment made by a student. Creating one also writes its mirror
// row in caja within the same transaction.
type Pago struct {
	ID         int             `json:"id"`
	AlumnaID   int             `json:"alumna_id"`
	MetodoPago string          `json:"metodo_pago"`
	Monto      decimal.Decimal `json:"monto"`
	Recibo     string          `json:"recibo"`
	Fecha      string          `json:"fecha"` // YYYY-MM-DD
}

// PagoListado is a row of the current-month payment listing.
type PagoListado struct {
	Nombre     string          `json:"nombre"`
	Fecha      string          `json:"fecha"`
	Monto      decimal.Decimal `json:"monto"`
	MetodoPago string          `json:"metodo_pago"`
}
