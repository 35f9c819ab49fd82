package usecase

import (
	"github.com/distrito-diamante/crm-api/internal/application/dto"
	"github.com/distrito-diamante/crm-api/internal/domain/repository"
)

// DashboardUseCase calcula los totales del panel de inicio.
type DashboardUseCase struct {
	repo repository.DashboardRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(repo repository.DashboardRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo}
}

// Totales devuelve los contadores del panel en una sola consulta.
func (uc *DashboardUseCase) Totales() (*dto.DashboardResponse, error) {
	t, err := uc.repo.Totales()
	if err != nil {
		return nil, err
	}
	return &dto.DashboardResponse{
		Clientes:                t.Clientes,
		Polizas:                 t.Polizas,
		Seguimientos:            t.Seguimientos,
		RecordatoriosPendientes: t.RecordatoriosPendientes,
	}, nil
}
