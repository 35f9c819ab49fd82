package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePolizaRequest entrada para crear una póliza. Los FK no se validan
// contra la DB en esta capa; un id colgante produce nombre vacío en lectura.
type CreatePolizaRequest struct {
	NumeroPoliza  string          `json:"numero_poliza" validate:"required,max=50"`
	ClienteID     int64           `json:"id_cliente" validate:"required"`
	AseguradoraID int64           `json:"id_aseguradora" validate:"required"`
	TipoSeguroID  int64           `json:"id_tipo_seguro" validate:"required"`
	EstadoID      int64           `json:"id_estado" validate:"required"`
	FechaInicio   time.Time       `json:"fecha_inicio" validate:"required"`
	FechaFin      time.Time       `json:"fecha_fin" validate:"required"`
	Monto         decimal.Decimal `json:"monto"`
}

// UpdatePolizaRequest actualización parcial.
type UpdatePolizaRequest struct {
	NumeroPoliza  *string          `json:"numero_poliza"`
	ClienteID     *int64           `json:"id_cliente"`
	AseguradoraID *int64           `json:"id_aseguradora"`
	TipoSeguroID  *int64           `json:"id_tipo_seguro"`
	EstadoID      *int64           `json:"id_estado"`
	FechaInicio   *time.Time       `json:"fecha_inicio"`
	FechaFin      *time.Time       `json:"fecha_fin"`
	Monto         *decimal.Decimal `json:"monto"`
}

// PolizaResponse salida de una póliza con los nombres resueltos en lectura.
type PolizaResponse struct {
	ID            int64           `json:"id_poliza"`
	NumeroPoliza  string          `json:"numero_poliza"`
	ClienteID     int64           `json:"id_cliente"`
	AseguradoraID int64           `json:"id_aseguradora"`
	TipoSeguroID  int64           `json:"id_tipo_seguro"`
	EstadoID      int64           `json:"id_estado"`
	FechaInicio   time.Time       `json:"fecha_inicio"`
	FechaFin      time.Time       `json:"fecha_fin"`
	Monto         decimal.Decimal `json:"monto"`
	FechaRegistro time.Time       `json:"fecha_registro"`

	ClienteNombre     string `json:"cliente_nombre"`
	AseguradoraNombre string `json:"aseguradora_nombre"`
	TipoSeguroNombre  string `json:"tipo_seguro_nombre"`
	EstadoNombre      string `json:"estado_nombre"`
}

// PolizaListResponse página de pólizas.
type PolizaListResponse struct {
	Items []PolizaResponse `json:"items"`
	Paginacion
}
