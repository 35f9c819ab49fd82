package entity

import "time"

// Tarea es un pendiente asignado a un usuario sobre un cliente.
type Tarea struct {
	ID              int64
	UsuarioID       int64
	ClienteID       int64
	Descripcion     string
	FechaProgramada time.Time
	Completada      bool
	FechaCompletada *time.Time
}
