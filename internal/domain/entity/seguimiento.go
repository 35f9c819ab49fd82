package entity

import "time"

// Seguimiento es una nota de contacto con un cliente, registrada por un usuario.
type Seguimiento struct {
	ID        int64
	ClienteID int64
	UsuarioID int64
	Fecha     time.Time
	Nota      string

	// Derivados en lectura.
	ClienteNombre string
	UsuarioNombre string
}
