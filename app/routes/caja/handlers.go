package caja

import (
	"database/sql"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/lujan55/pilates/app/database"
)

func GetCajaAPI(c *fiber.Ctx, db *sql.DB) error {
	year := c.QueryInt("year")
	month := c.QueryInt("month")
	if year == 0 || month < 1 || month > 12 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Parámetros year y month requeridos"})
	}

	caja, err := database.GetCajaMensual(db, year, month)
	if err != nil {
		log.Printf("GET /api/caja: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "No se pudo obtener la caja mensual"})
	}
	return c.JSON(caja)
}

func GetCajaPDFAPI(c *fiber.Ctx, db *sql.DB) error {
	year := c.QueryInt("year")
	month := c.QueryInt("month")
	if year == 0 || month < 1 || month > 12 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Parámetros year y month requeridos"})
	}

	caja, err := database.GetCajaMensual(db, year, month)
	if err != nil {
		log.Printf("GET /api/caja/pdf: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "No se pudo generar el PDF"})
	}

	pdf, filename, err := renderCajaPDF(caja, year, month)
	if err != nil {
		log.Printf("GET /api/caja/pdf: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "No se pudo generar el PDF"})
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="`+filename+`"`)
	return c.Send(pdf)
}
