package caja

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
)

func SetupCajaRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api/caja")
	api.Get("/", func(c *fiber.Ctx) error { return GetCajaAPI(c, db) })
	api.Get("/pdf", func(c *fiber.Ctx) error { return GetCajaPDFAPI(c, db) })
}
