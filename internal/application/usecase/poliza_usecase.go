package usecase

import (
	"github.com/distrito-diamante/crm-api/internal/application/dto"
	"github.com/distrito-diamante/crm-api/internal/domain"
	"github.com/distrito-diamante/crm-api/internal/domain/entity"
	"github.com/distrito-diamante/crm-api/internal/domain/repository"
)

// PolizaUseCase casos de uso CRUD para pólizas. Los nombres de cliente,
// aseguradora, tipo y estado llegan ya resueltos desde el repositorio (JOIN),
// así que una página cuesta dos consultas sin importar filas ni FKs.
type PolizaUseCase struct {
	repo repository.PolizaRepository
}

// NewPolizaUseCase construye el caso de uso.
func NewPolizaUseCase(repo repository.PolizaRepository) *PolizaUseCase {
	return &PolizaUseCase{repo: repo}
}

// Create crea una nueva póliza. No valida que los FK existan: un id colgante
// se acepta y produce nombre vacío en las lecturas posteriores.
func (uc *PolizaUseCase) Create(in dto.CreatePolizaRequest) (*dto.PolizaResponse, error) {
	if in.NumeroPoliza == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.FechaFin.Before(in.FechaInicio) {
		return nil, domain.ErrInvalidInput
	}
	p := &entity.Poliza{
		NumeroPoliza:  in.NumeroPoliza,
		ClienteID:     in.ClienteID,
		AseguradoraID: in.AseguradoraID,
		TipoSeguroID:  in.TipoSeguroID,
		EstadoID:      in.EstadoID,
		FechaInicio:   in.FechaInicio,
		FechaFin:      in.FechaFin,
		Monto:         in.Monto,
	}
	if err := uc.repo.Create(p); err != nil {
		return nil, err
	}
	// Releer para resolver los nombres; si falla, responder con los datos base.
	enriquecida, err := uc.repo.GetByID(p.ID)
	if err == nil && enriquecida != nil {
		p = enriquecida
	}
	return toPolizaResponse(p), nil
}

// GetByID obtiene una póliza enriquecida por ID. (nil, nil) si no existe.
func (uc *PolizaUseCase) GetByID(id int64) (*dto.PolizaResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return toPolizaResponse(p), nil
}

// Update actualiza solo los campos presentes en la petición.
func (uc *PolizaUseCase) Update(id int64, in dto.UpdatePolizaRequest) (*dto.PolizaResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	if in.NumeroPoliza != nil {
		p.NumeroPoliza = *in.NumeroPoliza
	}
	if in.ClienteID != nil {
		p.ClienteID = *in.ClienteID
	}
	if in.AseguradoraID != nil {
		p.AseguradoraID = *in.AseguradoraID
	}
	if in.TipoSeguroID != nil {
		p.TipoSeguroID = *in.TipoSeguroID
	}
	if in.EstadoID != nil {
		p.EstadoID = *in.EstadoID
	}
	if in.FechaInicio != nil {
		p.FechaInicio = *in.FechaInicio
	}
	if in.FechaFin != nil {
		p.FechaFin = *in.FechaFin
	}
	if in.Monto != nil {
		p.Monto = *in.Monto
	}
	if p.FechaFin.Before(p.FechaInicio) {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.repo.Update(p); err != nil {
		return nil, err
	}
	// Los nombres derivados pueden haber cambiado si se movió algún FK.
	enriquecida, err := uc.repo.GetByID(p.ID)
	if err == nil && enriquecida != nil {
		p = enriquecida
	}
	return toPolizaResponse(p), nil
}

// List devuelve una página de pólizas enriquecidas.
func (uc *PolizaUseCase) List(page dto.PageRequest) (*dto.PolizaListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}
	total, err := uc.repo.Count()
	if err != nil {
		return nil, err
	}
	items := make([]dto.PolizaResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPolizaResponse(p))
	}
	return &dto.PolizaListResponse{
		Items:      items,
		Paginacion: dto.NewPaginacion(page.Page, page.Limit, total),
	}, nil
}

// Delete elimina una póliza por ID.
func (uc *PolizaUseCase) Delete(id int64) error {
	return uc.repo.Delete(id)
}

func toPolizaResponse(p *entity.Poliza) *dto.PolizaResponse {
	if p == nil {
		return nil
	}
	return &dto.PolizaResponse{
		ID:                p.ID,
		NumeroPoliza:      p.NumeroPoliza,
		ClienteID:         p.ClienteID,
		AseguradoraID:     p.AseguradoraID,
		TipoSeguroID:      p.TipoSeguroID,
		EstadoID:          p.EstadoID,
		FechaInicio:       p.FechaInicio,
		FechaFin:          p.FechaFin,
		Monto:             p.Monto,
		FechaRegistro:     p.FechaRegistro,
		ClienteNombre:     p.ClienteNombre,
		AseguradoraNombre: p.AseguradoraNombre,
		TipoSeguroNombre:  p.TipoSeguroNombre,
		EstadoNombre:      p.EstadoNombre,
	}
}
