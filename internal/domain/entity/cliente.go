package entity

import "time"

// Cliente representa un cliente de la correduría.
type Cliente struct {
	ID                      int64
	PrimerNombre            string
	SegundoNombre           string
	PrimerApellido          string
	SegundoApellido         string
	DocumentoIdentificacion string
	Correo                  string
	Telefono                string
	FechaRegistro           time.Time
}

// NombreCompleto devuelve "primer_nombre primer_apellido", el formato que usan
// los listados enriquecidos de pólizas y seguimientos.
func (c *Cliente) NombreCompleto() string {
	return c.PrimerNombre + " " + c.PrimerApellido
}
