package dto

import "time"

// CreateSeguimientoRequest entrada para crear un seguimiento. El usuario que
// registra la nota sale del token, no del cuerpo.
type CreateSeguimientoRequest struct {
	ClienteID int64  `json:"id_cliente" validate:"required"`
	Nota      string `json:"nota" validate:"required"`
}

// UpdateSeguimientoRequest actualización parcial.
type UpdateSeguimientoRequest struct {
	ClienteID *int64  `json:"id_cliente"`
	Nota      *string `json:"nota"`
}

// SeguimientoResponse salida de un seguimiento con nombres resueltos en lectura.
type SeguimientoResponse struct {
	ID        int64     `json:"id_seguimiento"`
	ClienteID int64     `json:"id_cliente"`
	UsuarioID int64     `json:"id_usuario"`
	Fecha     time.Time `json:"fecha"`
	Nota      string    `json:"nota"`

	ClienteNombre string `json:"cliente_nombre"`
	UsuarioNombre string `json:"usuario_nombre"`
}

// SeguimientoListResponse página de seguimientos.
type SeguimientoListResponse struct {
	Items []SeguimientoResponse `json:"items"`
	Paginacion
}
