package models

// Alumna represents a registered student. DiasHorarios is never stored: it is
// computed on read from the alumna's rows in clases, so the relational table
// is the only source of truth for the schedule.
type Alumna struct {
	ID              int    `json:"id"`
	Nombre          string `json:"nombre"`
	DNI             string `json:"dni"`
	Telefono        string `json:"telefono,omitempty"`
	FechaNacimiento string `json:"fecha_nacimiento,omitempty"` // YYYY-MM-DD
	Patologias      string `json:"patologias,omitempty"`
	DiasHorarios    string `json:"dias_horarios"`
}
