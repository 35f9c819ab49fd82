package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Poliza representa una póliza de seguro.
//
// Los campos *Nombre son derivados en lectura (JOIN contra clientes,
// aseguradoras, tipos_seguro y estados_poliza); nunca se persisten y quedan
// en "" cuando la referencia no existe.
type Poliza struct {
	ID            int64
	NumeroPoliza  string
	ClienteID     int64
	AseguradoraID int64
	TipoSeguroID  int64
	EstadoID      int64
	FechaInicio   time.Time
	FechaFin      time.Time
	Monto         decimal.Decimal
	FechaRegistro time.Time

	ClienteNombre     string
	AseguradoraNombre string
	TipoSeguroNombre  string
	EstadoNombre      string
}
