package pagos

import (
	"database/sql"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/lujan55/pilates/app/database"
	"github.com/lujan55/pilates/app/models"
)

var validate = validator.New()

type createPagoRequest struct {
	AlumnaID   int             `json:"alumna_id" validate:"required,gt=0"`
	MetodoPago string          `json:"metodo_pago" validate:"required"`
	Monto      decimal.Decimal `json:"monto"`
}

type updatePagoRequest struct {
	Detalle string          `json:"detalle"`
	Monto   decimal.Decimal `json:"monto"`
}

func CreatePagoAPI(c *fiber.Ctx, db *sql.DB) error {
	var req createPagoRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cuerpo de la petición inválido"})
	}
	if err := validate.Struct(&req); err != nil || !req.Monto.IsPositive() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "alumna_id, metodo_pago y monto son obligatorios"})
	}

	p := &models.Pago{
		AlumnaID:   req.AlumnaID,
		MetodoPago: req.MetodoPago,
		Monto:      req.Monto,
	}
	if err := database.CreatePago(db, p); err != nil {
		if database.IsForeignKeyViolation(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Alumna inexistente"})
		}
		log.Printf("POST /api/pagos: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "No se pudo registrar el pago"})
	}

	return c.JSON(fiber.Map{
		"ok":      true,
		"message": "Pago registrado correctamente y reflejado en caja mensual",
		"pago_id": p.ID,
		"recibo":  p.Recibo,
	})
}

func UpdatePagoAPI(c *fiber.Ctx, db *sql.DB) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "id inválido"})
	}

	var req updatePagoRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cuerpo de la petición inválido"})
	}
	if !req.Monto.IsPositive() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "monto debe ser mayor a cero"})
	}

	if err := database.UpdatePago(db, id, req.Detalle, req.Monto); err != nil {
		if err == database.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Pago no encontrado"})
		}
		log.Printf("PUT /api/pagos/%d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error al actualizar el pago"})
	}
	return c.JSON(fiber.Map{"ok": true})
}

func DeletePagoAPI(c *fiber.Ctx, db *sql.DB) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "id inválido"})
	}

	if err := database.DeletePago(db, id); err != nil {
		if err == database.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Pago no encontrado"})
		}
		log.Printf("DELETE /api/pagos/%d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error al eliminar el pago"})
	}
	return c.JSON(fiber.Map{"ok": true})
}

func ListadoMesActualAPI(c *fiber.Ctx, db *sql.DB) error {
	pagos, err := database.GetPagosMesActual(db)
	if err != nil {
		log.Printf("GET /api/pagos/listado: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "No se pudieron obtener los pagos del mes actual"})
	}
	return c.JSON(pagos)
}
