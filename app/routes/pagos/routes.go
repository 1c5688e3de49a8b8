package pagos

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
)

func SetupPagosRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api/pagos")
	api.Get("/listado", func(c *fiber.Ctx) error { return ListadoMesActualAPI(c, db) })
	api.Post("/", func(c *fiber.Ctx) error { return CreatePagoAPI(c, db) })
	api.Put("/:id", func(c *fiber.Ctx) error { return UpdatePagoAPI(c, db) })
	api.Delete("/:id", func(c *fiber.Ctx) error { return DeletePagoAPI(c, db) })
}
