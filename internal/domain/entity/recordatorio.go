package entity

import "time"

// Recordatorio avisa del vencimiento de una póliza con DiasAntes de antelación.
type Recordatorio struct {
	ID         int64
	PolizaID   int64
	DiasAntes  int
	Enviado    bool
	FechaEnvio *time.Time

	// Derivados en lectura.
	PolizaNumero  string
	ClienteNombre string
}
