package dto

import "time"

// CreateClienteRequest entrada para crear un cliente.
type CreateClienteRequest struct {
	PrimerNombre            string `json:"primer_nombre" validate:"required,max=100"`
	SegundoNombre           string `json:"segundo_nombre" validate:"omitempty,max=100"`
	PrimerApellido          string `json:"primer_apellido" validate:"required,max=100"`
	SegundoApellido         string `json:"segundo_apellido" validate:"omitempty,max=100"`
	DocumentoIdentificacion string `json:"documento_identificacion" validate:"required,max=30"`
	Correo                  string `json:"correo" validate:"omitempty,email"`
	Telefono                string `json:"telefono" validate:"omitempty,max=30"`
}

// UpdateClienteRequest entrada para actualización parcial: solo los campos
// presentes (no nil) se modifican.
type UpdateClienteRequest struct {
	PrimerNombre            *string `json:"primer_nombre"`
	SegundoNombre           *string `json:"segundo_nombre"`
	PrimerApellido          *string `json:"primer_apellido"`
	SegundoApellido         *string `json:"segundo_apellido"`
	DocumentoIdentificacion *string `json:"documento_identificacion"`
	Correo                  *string `json:"correo"`
	Telefono                *string `json:"telefono"`
}

// ClienteResponse salida de un cliente.
type ClienteResponse struct {
	ID                      int64     `json:"id_cliente"`
	PrimerNombre            string    `json:"primer_nombre"`
	SegundoNombre           string    `json:"segundo_nombre"`
	PrimerApellido          string    `json:"primer_apellido"`
	SegundoApellido         string    `json:"segundo_apellido"`
	DocumentoIdentificacion string    `json:"documento_identificacion"`
	Correo                  string    `json:"correo"`
	Telefono                string    `json:"telefono"`
	FechaRegistro           time.Time `json:"fecha_registro"`
}

// ClienteListResponse página de clientes.
type ClienteListResponse struct {
	Items []ClienteResponse `json:"items"`
	Paginacion
}
