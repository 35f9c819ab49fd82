package dto

// CatalogoResponse fila de tabla de consulta (id + nombre). El nombre del
// campo ID varía por tabla en la DB (id_rol, id_estado, ...); en la API se
// expone uniforme.
type CatalogoResponse struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
}

// DashboardResponse totales del panel de inicio.
type DashboardResponse struct {
	Clientes                int `json:"clientes"`
	Polizas                 int `json:"polizas"`
	Seguimientos            int `json:"seguimientos"`
	RecordatoriosPendientes int `json:"recordatorios_pendientes"`
}
