package clases

import (
	"database/sql"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/lujan55/pilates/app/database"
	"github.com/lujan55/pilates/app/schedule"
)

var validate = validator.New()

type claseRequest struct {
	Dia      string `json:"dia" validate:"required"`
	Hora     string `json:"hora" validate:"required"`
	AlumnaID int    `json:"alumna_id" validate:"required,gt=0"`
}

func GetClasesAPI(c *fiber.Ctx, db *sql.DB) error {
	dia := c.Query("dia")
	hora := c.Query("hora")
	if dia != "" {
		normalized, ok := schedule.NormalizeDay(dia)
		if !ok {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Día inválido"})
		}
		dia = normalized
	}
	if hora != "" {
		normalized, ok := schedule.NormalizeHour(hora)
		if !ok || !schedule.ValidHour(normalized) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Hora inválida"})
		}
		hora = normalized
	}

	clases, err := database.ListClases(db, dia, hora)
	if err != nil {
		log.Printf("GET /api/clases: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "No se pudieron obtener las clases"})
	}
	return c.JSON(clases)
}

func CreateClaseAPI(c *fiber.Ctx, db *sql.DB) error {
	var req claseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cuerpo de la petición inválido"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "dia, hora y alumna_id son obligatorios"})
	}

	dia, ok := schedule.NormalizeDay(req.Dia)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Día inválido"})
	}
	hora, ok := schedule.NormalizeHour(req.Hora)
	if !ok || !schedule.ValidHour(hora) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Hora inválida"})
	}

	result, err := database.AssignClase(db, req.AlumnaID, dia, hora)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Alumna inexistente"})
		}
		log.Printf("POST /api/clases: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "No se pudo agregar la clase"})
	}
	if result == database.CapacityFull {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Máximo de 5 alumnas por horario alcanzado"})
	}

	return c.JSON(fiber.Map{
		"ok":        true,
		"message":   "Clase agregada",
		"duplicado": result == database.Duplicate,
	})
}

func DeleteClaseAPI(c *fiber.Ctx, db *sql.DB) error {
	var req claseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cuerpo de la petición inválido"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "dia, hora y alumna_id son obligatorios"})
	}

	dia, ok := schedule.NormalizeDay(req.Dia)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Día inválido"})
	}
	hora, ok := schedule.NormalizeHour(req.Hora)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Hora inválida"})
	}

	if err := database.UnassignClase(db, req.AlumnaID, dia, hora); err != nil {
		log.Printf("DELETE /api/clases: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "No se pudo eliminar la clase"})
	}
	return c.JSON(fiber.Map{"ok": true, "message": "Clase eliminada correctamente"})
}
