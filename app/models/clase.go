package models

// Clase is one student's assignment to a weekly (dia, hora) slot, joined
// with the student's name for display.
type Clase struct {
	ID       int    `json:"id"`
	Dia      string `json:"dia"`
	Hora     string `json:"hora"`
	AlumnaID int    `json:"alumna_id"`
	Nombre   string `json:"nombre"`
}
