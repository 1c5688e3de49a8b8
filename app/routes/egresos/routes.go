package egresos

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
)

func SetupEgresosRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api/egresos")
	api.Get("/", func(c *fiber.Ctx) error { return GetEgresosAPI(c, db) })
	api.Post("/", func(c *fiber.Ctx) error { return CreateEgresoAPI(c, db) })
	api.Put("/:id", func(c *fiber.Ctx) error { return UpdateEgresoAPI(c, db) })
	api.Delete("/:id", func(c *fiber.Ctx) error { return DeleteEgresoAPI(c, db) })
}
