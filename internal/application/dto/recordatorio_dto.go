package dto

import "time"

// CreateRecordatorioRequest entrada para crear un recordatorio.
type CreateRecordatorioRequest struct {
	PolizaID  int64 `json:"id_poliza" validate:"required"`
	DiasAntes int   `json:"dias_antes" validate:"required,min=1,max=365"`
}

// UpdateRecordatorioRequest actualización parcial.
type UpdateRecordatorioRequest struct {
	PolizaID   *int64     `json:"id_poliza"`
	DiasAntes  *int       `json:"dias_antes"`
	Enviado    *bool      `json:"enviado"`
	FechaEnvio *time.Time `json:"fecha_envio"`
}

// RecordatorioResponse salida de un recordatorio con número de póliza y
// nombre de cliente resueltos en lectura.
type RecordatorioResponse struct {
	ID         int64      `json:"id_recordatorio"`
	PolizaID   int64      `json:"id_poliza"`
	DiasAntes  int        `json:"dias_antes"`
	Enviado    bool       `json:"enviado"`
	FechaEnvio *time.Time `json:"fecha_envio"`

	PolizaNumero  string `json:"poliza_numero"`
	ClienteNombre string `json:"cliente_nombre"`
}

// RecordatorioListResponse página de recordatorios.
type RecordatorioListResponse struct {
	Items []RecordatorioResponse `json:"items"`
	Paginacion
}

// DespachoResponse resultado de un barrido de despacho manual.
type DespachoResponse struct {
	Enviados int `json:"enviados"`
}
