package alumnas

import (
	"database/sql"
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/lujan55/pilates/app/database"
	"github.com/lujan55/pilates/app/models"
	"github.com/lujan55/pilates/app/schedule"
)

var validate = validator.New()

type createAlumnaRequest struct {
	Nombre          string `json:"nombre" validate:"required"`
	DNI             string `json:"dni" validate:"required"`
	Telefono        string `json:"telefono"`
	FechaNacimiento string `json:"fecha_nacimiento" validate:"omitempty,datetime=2006-01-02"`
	Patologias      string `json:"patologias"`
	DiasHorarios    string `json:"dias_horarios"`
}

type updateHorariosRequest struct {
	DiasHorarios string `json:"dias_horarios"`
}

func GetAlumnasAPI(c *fiber.Ctx, db *sql.DB) error {
	alumnas, err := database.GetAllAlumnas(db)
	if err != nil {
		log.Printf("GET /api/alumnas: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "No se pudieron obtener las alumnas"})
	}
	return c.JSON(alumnas)
}

func CreateAlumnaAPI(c *fiber.Ctx, db *sql.DB) error {
	var req createAlumnaRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"ok": false, "message": "Cuerpo de la petición inválido"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"ok": false, "message": "Nombre y DNI son obligatorios"})
	}

	a := &models.Alumna{
		Nombre:          req.Nombre,
		DNI:             req.DNI,
		Telefono:        req.Telefono,
		FechaNacimiento: req.FechaNacimiento,
		Patologias:      req.Patologias,
	}
	slots := schedule.ParseList(req.DiasHorarios)

	if err := database.CreateAlumna(db, a, slots); err != nil {
		if database.IsUniqueViolation(err) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"ok": false, "message": "El DNI ya existe"})
		}
		log.Printf("POST /api/alumnas: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"ok": false, "message": "No se pudo registrar la alumna"})
	}

	return c.JSON(fiber.Map{"ok": true, "message": "Alumna registrada correctamente", "id": a.ID})
}

// UpdateHorariosAPI replaces the alumna's schedule. The incoming string is
// parsed and diffed against her clases rows in one transaction; the stored
// assignments stay the single source of truth.
func UpdateHorariosAPI(c *fiber.Ctx, db *sql.DB) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "id inválido"})
	}

	var req updateHorariosRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cuerpo de la petición inválido"})
	}

	if _, err := database.GetAlumnaByID(db, id); err != nil {
		if err == database.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Alumna no encontrada"})
		}
		log.Printf("PUT /api/alumnas/%d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "No se pudieron actualizar los horarios"})
	}

	slots := schedule.ParseList(req.DiasHorarios)
	if err := database.ReplaceSchedule(db, id, slots); err != nil {
		if errors.Is(err, database.ErrCapacity) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Máximo de 5 alumnas por horario alcanzado"})
		}
		log.Printf("PUT /api/alumnas/%d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "No se pudieron actualizar los horarios"})
	}

	return c.JSON(fiber.Map{"message": "Horarios actualizados correctamente"})
}

func CumplesHoyAPI(c *fiber.Ctx, db *sql.DB) error {
	alumnas, err := database.GetCumplesHoy(db)
	if err != nil {
		log.Printf("GET /api/cumples/hoy: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "No se pudo obtener cumpleañeras de hoy"})
	}
	return c.JSON(alumnas)
}
