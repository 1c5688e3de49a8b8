package models

import "github.com/shopspring/decimal"

// Egreso is an expense. Like payments it is mirrored into caja in the same
// transaction that creates it.
type Egreso struct {
	ID      int             `json:"id"`
	Fecha   string          `json:"fecha"` // YYYY-MM-DD; creation date when none was given
	Detalle string          `json:"detalle"`
	Monto   decimal.Decimal `json:"monto"`
}
