package repository

// DashboardTotales resultado crudo de la consulta de totales del panel.
// Lo produce la DB; el use case lo convierte en DTO.
type DashboardTotales struct {
	Clientes                int
	Polizas                 int
	Seguimientos            int
	RecordatoriosPendientes int
}

// DashboardRepository define las consultas de lectura para el panel de inicio.
type DashboardRepository interface {
	Totales() (*DashboardTotales, error)
}
