package egresos

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

type egresoRequest struct {
	Monto   decimal.Decimal `json:"monto"`
	Detalle string          `json:"detalle" validate:"required"`
	Fecha   string          `json:"fecha" validate:"omitempty,datetime=2006-01-02"`
}

func GetEgresosAPI(c *fiber.Ctx, db *sql.DB) error {
	egresos, err := GetEgresosMesActual(db)
	if err != nil {
		log.Printf("GET /api/egresos: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "No se pudieron obtener los egresos"})
	}
	return c.JSON(egresos)
}

func CreateEgresoAPI(c *fiber.Ctx, db *sql.DB) error {
	var req egresoRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cuerpo de la petición inválido"})
	}
	if err := validate.Struct(&req); err != nil || !req.Monto.IsPositive() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "monto y detalle son obligatorios"})
	}

	e := &models.Egreso{
		Fecha:   req.Fecha,
		Detalle: req.Detalle,
		Monto:   req.Monto,
	}
	if err := CreateEgreso(db, e); err != nil {
		log.Printf("POST /api/egresos: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "No se pudo registrar el egreso"})
	}
	return c.JSON(e)
}

func UpdateEgresoAPI(c *fiber.Ctx, db *sql.DB) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "id inválido"})
	}

	var req egresoRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cuerpo de la petición inválido"})
	}
	if err := validate.Struct(&req); err != nil || !req.Monto.IsPositive() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "monto y detalle son obligatorios"})
	}

	if err := UpdateEgreso(db, id, req.Detalle, req.Monto); err != nil {
		if err == database.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Egreso no encontrado"})
		}
		log.Printf("PUT /api/egresos/%d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error al actualizar el egreso"})
	}
	return c.JSON(fiber.Map{"ok": true})
}

func DeleteEgresoAPI(c *fiber.Ctx, db *sql.DB) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "id inválido"})
	}

	if err := DeleteEgreso(db, id); err != nil {
		if err == database.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Egreso no encontrado"})
		}
		log.Printf("DELETE /api/egresos/%d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error al eliminar el egreso"})
	}
	return c.JSON(fiber.Map{"ok": true})
}
