package usecase

import (
	"time"

	"github.com/distrito-diamante/crm-api/internal/application/dto"
	"github.com/distrito-diamante/crm-api/internal/domain"
	"github.com/distrito-diamante/crm-api/internal/domain/entity"
	"github.com/distrito-diamante/crm-api/internal/domain/repository"
)

// TareaUseCase casos de uso CRUD para tareas.
type TareaUseCase struct {
	repo repository.TareaRepository
}

// NewTareaUseCase construye el caso de uso.
func NewTareaUseCase(repo repository.TareaRepository) *TareaUseCase {
	return &TareaUseCase{repo: repo}
}

// Create crea una nueva tarea pendiente.
func (uc *TareaUseCase) Create(in dto.CreateTareaRequest) (*dto.TareaResponse, error) {
	if in.Descripcion == "" || in.UsuarioID == 0 || in.ClienteID == 0 {
		return nil, domain.ErrInvalidInput
	}
	t := &entity.Tarea{
		UsuarioID:       in.UsuarioID,
		ClienteID:       in.ClienteID,
		Descripcion:     in.Descripcion,
		FechaProgramada: in.FechaProgramada,
		Completada:      false,
	}
	if err := uc.repo.Create(t); err != nil {
		return nil, err
	}
	return toTareaResponse(t), nil
}

// GetByID obtiene una tarea por ID. (nil, nil) si no existe.
func (uc *TareaUseCase) GetByID(id int64) (*dto.TareaResponse, error) {
	t, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, nil
	}
	return toTareaResponse(t), nil
}

// Update actualiza solo los campos presentes. Completar una tarea sin fecha
// explícita fija la fecha actual; reabrirla limpia la fecha.
func (uc *TareaUseCase) Update(id int64, in dto.UpdateTareaRequest) (*dto.TareaResponse, error) {
	t, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, nil
	}
	if in.UsuarioID != nil {
		t.UsuarioID = *in.UsuarioID
	}
	if in.ClienteID != nil {
		t.ClienteID = *in.ClienteID
	}
	if in.Descripcion != nil {
		t.Descripcion = *in.Descripcion
	}
	if in.FechaProgramada != nil {
		t.FechaProgramada = *in.FechaProgramada
	}
	if in.Completada != nil {
		t.Completada = *in.Completada
		if t.Completada && in.FechaCompletada == nil && t.FechaCompletada == nil {
			now := time.Now()
			t.FechaCompletada = &now
		}
		if !t.Completada {
			t.FechaCompletada = nil
		}
	}
	if in.FechaCompletada != nil {
		t.FechaCompletada = in.FechaCompletada
	}
	if err := uc.repo.Update(t); err != nil {
		return nil, err
	}
	return toTareaResponse(t), nil
}

// List devuelve una página de tareas.
func (uc *TareaUseCase) List(page dto.PageRequest) (*dto.TareaListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}
	total, err := uc.repo.Count()
	if err != nil {
		return nil, err
	}
	items := make([]dto.TareaResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toTareaResponse(t))
	}
	return &dto.TareaListResponse{
		Items:      items,
		Paginacion: dto.NewPaginacion(page.Page, page.Limit, total),
	}, nil
}

// Delete elimina una tarea por ID.
func (uc *TareaUseCase) Delete(id int64) error {
	return uc.repo.Delete(id)
}

func toTareaResponse(t *entity.Tarea) *dto.TareaResponse {
	if t == nil {
		return nil
	}
	return &dto.TareaResponse{
		ID:              t.ID,
		UsuarioID:       t.UsuarioID,
		ClienteID:       t.ClienteID,
		Descripcion:     t.Descripcion,
		FechaProgramada: t.FechaProgramada,
		Completada:      t.Completada,
		FechaCompletada: t.FechaCompletada,
	}
}
