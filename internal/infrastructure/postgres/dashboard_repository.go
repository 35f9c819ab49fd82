package postgres

import (
	"context"
	"fmt"

	"github.com/distrito-diamante/crm-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas de lectura para el panel de inicio.
type DashboardRepo struct {
	q Querier
}

// NewDashboardRepository construye el adaptador.
func NewDashboardRepository(q Querier) *DashboardRepo {
	return &DashboardRepo{q: q}
}

// Totales devuelve los conteos del panel en una sola consulta.
func (r *DashboardRepo) Totales() (*repository.DashboardTotales, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM clientes),
			(SELECT COUNT(*) FROM polizas),
			(SELECT COUNT(*) FROM seguimientos),
			(SELECT COUNT(*) FROM recordatorios WHERE enviado = false)`
	var t repository.DashboardTotales
	err := r.q.QueryRow(context.Background(), query).Scan(
		&t.Clientes, &t.Polizas, &t.Seguimientos, &t.RecordatoriosPendientes,
	)
	if err != nil {
		return nil, fmt.Errorf("totales dashboard: %w", err)
	}
	return &t, nil
}
