package usecase

import (
	"github.com/distrito-diamante/crm-api/internal/application/dto"
	"github.com/distrito-diamante/crm-api/internal/domain"
	"github.com/distrito-diamante/crm-api/internal/domain/entity"
	"github.com/distrito-diamante/crm-api/internal/domain/repository"
)

// AseguradoraUseCase casos de uso CRUD para aseguradoras.
type AseguradoraUseCase struct {
	repo repository.AseguradoraRepository
}

// NewAseguradoraUseCase construye el caso de uso.
func NewAseguradoraUseCase(repo repository.AseguradoraRepository) *AseguradoraUseCase {
	return &AseguradoraUseCase{repo: repo}
}

// Create crea una nueva aseguradora.
func (uc *AseguradoraUseCase) Create(in dto.CreateAseguradoraRequest) (*dto.AseguradoraResponse, error) {
	if in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	a := &entity.Aseguradora{
		Nombre:         in.Nombre,
		ContactoNombre: in.ContactoNombre,
		Telefono:       in.Telefono,
		Correo:         in.Correo,
		Direccion:      in.Direccion,
	}
	if err := uc.repo.Create(a); err != nil {
		return nil, err
	}
	return toAseguradoraResponse(a), nil
}

// GetByID obtiene una aseguradora por ID. (nil, nil) si no existe.
func (uc *AseguradoraUseCase) GetByID(id int64) (*dto.AseguradoraResponse, error) {
	a, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, nil
	}
	return toAseguradoraResponse(a), nil
}

// Update actualiza solo los campos presentes en la petición.
func (uc *AseguradoraUseCase) Update(id int64, in dto.UpdateAseguradoraRequest) (*dto.AseguradoraResponse, error) {
	a, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, nil
	}
	if in.Nombre != nil {
		a.Nombre = *in.Nombre
	}
	if in.ContactoNombre != nil {
		a.ContactoNombre = *in.ContactoNombre
	}
	if in.Telefono != nil {
		a.Telefono = *in.Telefono
	}
	if in.Correo != nil {
		a.Correo = *in.Correo
	}
	if in.Direccion != nil {
		a.Direccion = *in.Direccion
	}
	if err := uc.repo.Update(a); err != nil {
		return nil, err
	}
	return toAseguradoraResponse(a), nil
}

// List devuelve una página de aseguradoras.
func (uc *AseguradoraUseCase) List(page dto.PageRequest) (*dto.AseguradoraListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}
	total, err := uc.repo.Count()
	if err != nil {
		return nil, err
	}
	items := make([]dto.AseguradoraResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toAseguradoraResponse(a))
	}
	return &dto.AseguradoraListResponse{
		Items:      items,
		Paginacion: dto.NewPaginacion(page.Page, page.Limit, total),
	}, nil
}

// Delete elimina una aseguradora por ID.
func (uc *AseguradoraUseCase) Delete(id int64) error {
	return uc.repo.Delete(id)
}

func toAseguradoraResponse(a *entity.Aseguradora) *dto.AseguradoraResponse {
	if a == nil {
		return nil
	}
	return &dto.AseguradoraResponse{
		ID:             a.ID,
		Nombre:         a.Nombre,
		ContactoNombre: a.ContactoNombre,
		Telefono:       a.Telefono,
		Correo:         a.Correo,
		Direccion:      a.Direccion,
	}
}
