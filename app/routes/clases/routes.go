package clases

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
)

func SetupClasesRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api/clases")
	api.Get("/", func(c *fiber.Ctx) error { return GetClasesAPI(c, db) })
	api.Post("/", func(c *fiber.Ctx) error { return CreateClaseAPI(c, db) })
	api.Delete("/", func(c *fiber.Ctx) error { return DeleteClaseAPI(c, db) })
}
