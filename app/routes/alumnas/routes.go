package alumnas

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
)

func SetupAlumnasRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api/alumnas")
	api.Get("/", func(c *fiber.Ctx) error { return GetAlumnasAPI(c, db) })
	api.Post("/", func(c *fiber.Ctx) error { return CreateAlumnaAPI(c, db) })
	api.Put("/:id", func(c *fiber.Ctx) error { return UpdateHorariosAPI(c, db) })

	app.Get("/api/cumples/hoy", func(c *fiber.Ctx) error { return CumplesHoyAPI(c, db) })
}
