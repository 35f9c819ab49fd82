package entity

import "time"

// Estados de cuenta conocidos (tabla estados_usuario).
const (
	EstadoUsuarioActivo   int64 = 1
	EstadoUsuarioInactivo int64 = 2
)

// Roles conocidos (tabla roles). Se comparan por nombre en el middleware.
const (
	RolAdministrador = "administrador"
	RolAgente        = "agente"
)

// Usuario representa una cuenta de la aplicación.
type Usuario struct {
	ID              int64
	PrimerNombre    string
	SegundoNombre   string
	PrimerApellido  string
	SegundoApellido string
	Usuario         string // handle de login
	ContrasenaHash  string // bcrypt, nunca la contraseña en claro
	RolID           int64
	EstadoID        int64
	FechaCreacion   time.Time

	// Derivados en lectura.
	RolNombre    string
	EstadoNombre string
}

// Activo indica si la cuenta puede iniciar sesión.
func (u *Usuario) Activo() bool {
	return u.EstadoID == EstadoUsuarioActivo
}

// NombreCompleto devuelve "primer_nombre primer_apellido" para listados enriquecidos.
func (u *Usuario) NombreCompleto() string {
	return u.PrimerNombre + " " + u.PrimerApellido
}
