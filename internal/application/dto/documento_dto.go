package dto

import "time"

// CreateDocumentoRequest entrada para registrar un documento adjunto.
// La clave de almacén la genera el use case; el cliente no la elige.
type CreateDocumentoRequest struct {
	PolizaID int64  `json:"id_poliza" validate:"required"`
	Nombre   string `json:"nombre" validate:"required,max=200"`
}

// UpdateDocumentoRequest actualización parcial.
type UpdateDocumentoRequest struct {
	PolizaID *int64  `json:"id_poliza"`
	Nombre   *string `json:"nombre"`
}

// DocumentoResponse salida de un documento.
type DocumentoResponse struct {
	ID           int64     `json:"id_documento"`
	PolizaID     int64     `json:"id_poliza"`
	Nombre       string    `json:"nombre"`
	ClaveAlmacen string    `json:"clave_almacen"`
	FechaSubida  time.Time `json:"fecha_subida"`
}

// DocumentoListResponse página de documentos.
type DocumentoListResponse struct {
	Items []DocumentoResponse `json:"items"`
	Paginacion
}
