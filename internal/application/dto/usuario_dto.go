package dto

import "time"

// CreateUsuarioRequest entrada para crear un usuario (contraseña en texto,
// se hashea con bcrypt en el use case). Si Usuario viene vacío se deriva del
// nombre (inicial + apellido, sin tildes).
type CreateUsuarioRequest struct {
	PrimerNombre    string `json:"primer_nombre" validate:"required,max=100"`
	SegundoNombre   string `json:"segundo_nombre" validate:"omitempty,max=100"`
	PrimerApellido  string `json:"primer_apellido" validate:"required,max=100"`
	SegundoApellido string `json:"segundo_apellido" validate:"omitempty,max=100"`
	Usuario         string `json:"usuario" validate:"omitempty,min=3,max=50"`
	Contrasena      string `json:"contrasena" validate:"required,min=8"`
	RolID           int64  `json:"id_rol" validate:"required"`
	EstadoID        int64  `json:"id_estado" validate:"required"`
}

// UpdateUsuarioRequest actualización parcial. Contrasena presente re-hashea.
type UpdateUsuarioRequest struct {
	PrimerNombre    *string `json:"primer_nombre"`
	SegundoNombre   *string `json:"segundo_nombre"`
	PrimerApellido  *string `json:"primer_apellido"`
	SegundoApellido *string `json:"segundo_apellido"`
	Usuario         *string `json:"usuario"`
	Contrasena      *string `json:"contrasena"`
	RolID           *int64  `json:"id_rol"`
	EstadoID        *int64  `json:"id_estado"`
}

// UsuarioResponse salida de un usuario. Nunca incluye la contraseña ni su hash.
type UsuarioResponse struct {
	ID              int64     `json:"id_usuario"`
	PrimerNombre    string    `json:"primer_nombre"`
	SegundoNombre   string    `json:"segundo_nombre"`
	PrimerApellido  string    `json:"primer_apellido"`
	SegundoApellido string    `json:"segundo_apellido"`
	Usuario         string    `json:"usuario"`
	RolID           int64     `json:"id_rol"`
	EstadoID        int64     `json:"id_estado"`
	FechaCreacion   time.Time `json:"fecha_creacion"`

	RolNombre    string `json:"rol_nombre"`
	EstadoNombre string `json:"estado_nombre"`
}

// UsuarioListResponse página de usuarios.
type UsuarioListResponse struct {
	Items []UsuarioResponse `json:"items"`
	Paginacion
}

// LoginRequest entrada para login: handle + contraseña.
type LoginRequest struct {
	Usuario    string `json:"usuario" validate:"required"`
	Contrasena string `json:"contrasena" validate:"required"`
}

// LoginResponse salida con token JWT y el usuario autenticado.
type LoginResponse struct {
	Token string          `json:"token"`
	User  UsuarioResponse `json:"user"`
}
