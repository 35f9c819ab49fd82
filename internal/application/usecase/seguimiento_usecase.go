package usecase

import (
	"github.com/distrito-diamante/crm-api/internal/application/dto"
	"github.com/distrito-diamante/crm-api/internal/domain"
	"github.com/distrito-diamante/crm-api/internal/domain/entity"
	"github.com/distrito-diamante/crm-api/internal/domain/repository"
)

// SeguimientoUseCase casos de uso CRUD para notas de seguimiento.
type SeguimientoUseCase struct {
	repo repository.SeguimientoRepository
}

// NewSeguimientoUseCase construye el caso de uso.
func NewSeguimientoUseCase(repo repository.SeguimientoRepository) *SeguimientoUseCase {
	return &SeguimientoUseCase{repo: repo}
}

// Create registra una nota de seguimiento. usuarioID viene del token del
// agente autenticado, no del cuerpo de la petición.
func (uc *SeguimientoUseCase) Create(usuarioID int64, in dto.CreateSeguimientoRequest) (*dto.SeguimientoResponse, error) {
	if in.ClienteID == 0 || in.Nota == "" {
		return nil, domain.ErrInvalidInput
	}
	s := &entity.Seguimiento{
		ClienteID: in.ClienteID,
		UsuarioID: usuarioID,
		Nota:      in.Nota,
	}
	if err := uc.repo.Create(s); err != nil {
		return nil, err
	}
	enriquecido, err := uc.repo.GetByID(s.ID)
	if err == nil && enriquecido != nil {
		s = enriquecido
	}
	return toSeguimientoResponse(s), nil
}

// GetByID obtiene un seguimiento enriquecido por ID. (nil, nil) si no existe.
func (uc *SeguimientoUseCase) GetByID(id int64) (*dto.SeguimientoResponse, error) {
	s, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, nil
	}
	return toSeguimientoResponse(s), nil
}

// Update actualiza solo los campos presentes en la petición. El autor original
// (id_usuario) no se reasigna.
func (uc *SeguimientoUseCase) Update(id int64, in dto.UpdateSeguimientoRequest) (*dto.SeguimientoResponse, error) {
	s, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, nil
	}
	if in.ClienteID != nil {
		s.ClienteID = *in.ClienteID
	}
	if in.Nota != nil {
		s.Nota = *in.Nota
	}
	if err := uc.repo.Update(s); err != nil {
		return nil, err
	}
	enriquecido, err := uc.repo.GetByID(s.ID)
	if err == nil && enriquecido != nil {
		s = enriquecido
	}
	return toSeguimientoResponse(s), nil
}

// List devuelve una página de seguimientos enriquecidos.
func (uc *SeguimientoUseCase) List(page dto.PageRequest) (*dto.SeguimientoListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}
	total, err := uc.repo.Count()
	if err != nil {
		return nil, err
	}
	items := make([]dto.SeguimientoResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSeguimientoResponse(s))
	}
	return &dto.SeguimientoListResponse{
		Items:      items,
		Paginacion: dto.NewPaginacion(page.Page, page.Limit, total),
	}, nil
}

// Delete elimina un seguimiento por ID.
func (uc *SeguimientoUseCase) Delete(id int64) error {
	return uc.repo.Delete(id)
}

func toSeguimientoResponse(s *entity.Seguimiento) *dto.SeguimientoResponse {
	if s == nil {
		return nil
	}
	return &dto.SeguimientoResponse{
		ID:            s.ID,
		ClienteID:     s.ClienteID,
		UsuarioID:     s.UsuarioID,
		Fecha:         s.Fecha,
		Nota:          s.Nota,
		ClienteNombre: s.ClienteNombre,
		UsuarioNombre: s.UsuarioNombre,
	}
}
