package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/lujan55/pilates/app/config"
	"github.com/lujan55/pilates/app/database"
	"github.com/lujan55/pilates/app/routes/alumnas"
	"github.com/lujan55/pilates/app/routes/caja"
	"github.com/lujan55/pilates/app/routes/clases"
	"github.com/lujan55/pilates/app/routes/egresos"
	"github.com/lujan55/pilates/app/routes/pagos"
	"github.com/lujan55/pilates/app/services"
)

// apiErrorHandler keeps unexpected failures behind a generic JSON body; the
// detail only reaches the server log.
func apiErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	if code == fiber.StatusInternalServerError {
		log.Printf("%s %s: %v", c.Method(), c.Path(), err)
		return c.Status(code).JSON(fiber.Map{
			"success": false,
			"error":   "Error interno del servidor",
			"code":    code,
		})
	}
	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
		"code":    code,
	})
}

func main() {
	config.LoadEnv()

	db, err := config.OpenDB()
	if err != nil {
		log.Fatal("Cannot establish database connection: ", err)
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	services.StartKeepAlive(db)

	app := fiber.New(fiber.Config{
		ErrorHandler: apiErrorHandler,
	})

	app.Use(logger.New())
	app.Use(cors.New())

	// Admin UI is plain static files.
	app.Static("/", "./public")

	alumnas.SetupAlumnasRoutes(app, db)
	clases.SetupClasesRoutes(app, db)
	pagos.SetupPagosRoutes(app, db)
	egresos.SetupEgresosRoutes(app, db)
	caja.SetupCajaRoutes(app, db)

	app.Use(func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Recurso no encontrado")
	})

	port := config.GetEnv("PORT", "3000")
	log.Println("Server starting on :" + port)
	log.Fatal(app.Listen(":" + port))
}
