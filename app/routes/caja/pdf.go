package caja

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/lujan55/pilates/app/models"
)

var monthNames = []string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// renderCajaPDF builds the printable monthly summary: header, income lines,
// expense lines and totals.
func renderCajaPDF(caja *models.CajaMensual, year, month int) ([]byte, string, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, tr(fmt.Sprintf("Cierre de Caja - %s %d", monthNames[month-1], year)), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Arial", "B", 13)
	pdf.SetTextColor(0, 100, 0)
	pdf.CellFormat(0, 8, "Ingresos:", "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Arial", "", 11)
	if len(caja.Ingresos) == 0 {
		pdf.CellFormat(0, 6, tr("No se registraron ingresos este mes."), "", 1, "L", false, 0, "")
	}
	for _, r := range caja.Ingresos {
		line := fmt.Sprintf("%s - %s - $%s", r.Fecha, r.Detalle, r.Monto.StringFixed(2))
		pdf.CellFormat(0, 6, tr(line), "", 1, "L", false, 0, "")
	}
	pdf.Ln(8)

	pdf.SetFont("Arial", "B", 13)
	pdf.SetTextColor(139, 0, 0)
	pdf.CellFormat(0, 8, "Egresos:", "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Arial", "", 11)
	if len(caja.Egresos) == 0 {
		pdf.CellFormat(0, 6, tr("No se registraron egresos este mes."), "", 1, "L", false, 0, "")
	}
	for _, r := range caja.Egresos {
		line := fmt.Sprintf("%s - %s - $%s", r.Fecha, r.Detalle, r.Monto.StringFixed(2))
		pdf.CellFormat(0, 6, tr(line), "", 1, "L", false, 0, "")
	}
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 13)
	pdf.SetTextColor(0, 0, 128)
	pdf.CellFormat(0, 8, "Resumen del Mes:", "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(0, 7, tr(fmt.Sprintf("Total Ingresos: $%s", caja.TotalIngresos.StringFixed(2))), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, tr(fmt.Sprintf("Total Egresos: $%s", caja.TotalEgresos.StringFixed(2))), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, tr(fmt.Sprintf("Saldo Final: $%s", caja.Neto.StringFixed(2))), "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("caja-%04d-%02d.pdf", year, month)
	return buf.Bytes(), filename, nil
}
