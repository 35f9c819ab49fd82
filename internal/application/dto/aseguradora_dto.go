package dto

// CreateAseguradoraRequest entrada para crear una aseguradora.
type CreateAseguradoraRequest struct {
	Nombre         string `json:"nombre" validate:"required,max=150"`
	ContactoNombre string `json:"contacto_nombre" validate:"omitempty,max=150"`
	Telefono       string `json:"telefono" validate:"omitempty,max=30"`
	Correo         string `json:"correo" validate:"omitempty,email"`
	Direccion      string `json:"direccion" validate:"omitempty,max=250"`
}

// UpdateAseguradoraRequest actualización parcial.
type UpdateAseguradoraRequest struct {
	Nombre         *string `json:"nombre"`
	ContactoNombre *string `json:"contacto_nombre"`
	Telefono       *string `json:"telefono"`
	Correo         *string `json:"correo"`
	Direccion      *string `json:"direccion"`
}

// AseguradoraResponse salida de una aseguradora.
type AseguradoraResponse struct {
	ID             int64  `json:"id_aseguradora"`
	Nombre         string `json:"nombre"`
	ContactoNombre string `json:"contacto_nombre"`
	Telefono       string `json:"telefono"`
	Correo         string `json:"correo"`
	Direccion      string `json:"direccion"`
}

// AseguradoraListResponse página de aseguradoras.
type AseguradoraListResponse struct {
	Items []AseguradoraResponse `json:"items"`
	Paginacion
}
