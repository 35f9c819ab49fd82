package entity

import "time"

// Documento es un archivo adjunto a una póliza. ClaveAlmacen identifica el
// objeto en el almacenamiento externo; la API solo persiste la referencia.
type Documento struct {
	ID           int64
	PolizaID     int64
	Nombre       string
	ClaveAlmacen string
	FechaSubida  time.Time
}
