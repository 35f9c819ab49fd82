package dto

import "time"

// CreateTareaRequest entrada para crear una tarea.
type CreateTareaRequest struct {
	UsuarioID       int64     `json:"id_usuario" validate:"required"`
	ClienteID       int64     `json:"id_cliente" validate:"required"`
	Descripcion     string    `json:"descripcion" validate:"required"`
	FechaProgramada time.Time `json:"fecha_programada" validate:"required"`
}

// UpdateTareaRequest actualización parcial. Marcar Completada=true sin
// FechaCompletada fija la fecha actual.
type UpdateTareaRequest struct {
	UsuarioID       *int64     `json:"id_usuario"`
	ClienteID       *int64     `json:"id_cliente"`
	Descripcion     *string    `json:"descripcion"`
	FechaProgramada *time.Time `json:"fecha_programada"`
	Completada      *bool      `json:"completada"`
	FechaCompletada *time.Time `json:"fecha_completada"`
}

// TareaResponse salida de una tarea.
type TareaResponse struct {
	ID              int64      `json:"id_tarea"`
	UsuarioID       int64      `json:"id_usuario"`
	ClienteID       int64      `json:"id_cliente"`
	Descripcion     string     `json:"descripcion"`
	FechaProgramada time.Time  `json:"fecha_programada"`
	Completada      bool       `json:"completada"`
	FechaCompletada *time.Time `json:"fecha_completada"`
}

// TareaListResponse página de tareas.
type TareaListResponse struct {
	Items []TareaResponse `json:"items"`
	Paginacion
}
