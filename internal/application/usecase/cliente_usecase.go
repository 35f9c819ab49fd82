package usecase

import (
	"github.com/distrito-diamante/crm-api/internal/application/dto"
	"github.com/distrito-diamante/crm-api/internal/domain"
	"github.com/distrito-diamante/crm-api/internal/domain/entity"
	"github.com/distrito-diamante/crm-api/internal/domain/repository"
)

// ClienteUseCase casos de uso CRUD para clientes.
type ClienteUseCase struct {
	repo repository.ClienteRepository
}

// NewClienteUseCase construye el caso de uso.
func NewClienteUseCase(repo repository.ClienteRepository) *ClienteUseCase {
	return &ClienteUseCase{repo: repo}
}

// Create crea un nuevo cliente. La DB asigna id y fecha de registro.
func (uc *ClienteUseCase) Create(in dto.CreateClienteRequest) (*dto.ClienteResponse, error) {
	if in.PrimerNombre == "" || in.PrimerApellido == "" || in.DocumentoIdentificacion == "" {
		return nil, domain.ErrInvalidInput
	}
	cliente := &entity.Cliente{
		PrimerNombre:            in.PrimerNombre,
		SegundoNombre:           in.SegundoNombre,
		PrimerApellido:          in.PrimerApellido,
		SegundoApellido:         in.SegundoApellido,
		DocumentoIdentificacion: in.DocumentoIdentificacion,
		Correo:                  in.Correo,
		Telefono:                in.Telefono,
	}
	if err := uc.repo.Create(cliente); err != nil {
		return nil, err
	}
	return toClienteResponse(cliente), nil
}

// GetByID obtiene un cliente por ID. (nil, nil) si no existe.
func (uc *ClienteUseCase) GetByID(id int64) (*dto.ClienteResponse, error) {
	cliente, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, nil
	}
	return toClienteResponse(cliente), nil
}

// Update actualiza solo los campos presentes en la petición; los omitidos conservan su valor.
func (uc *ClienteUseCase) Update(id int64, in dto.UpdateClienteRequest) (*dto.ClienteResponse, error) {
	cliente, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, nil
	}
	if in.PrimerNombre != nil {
		cliente.PrimerNombre = *in.PrimerNombre
	}
	if in.SegundoNombre != nil {
		cliente.SegundoNombre = *in.SegundoNombre
	}
	if in.PrimerApellido != nil {
		cliente.PrimerApellido = *in.PrimerApellido
	}
	if in.SegundoApellido != nil {
		cliente.SegundoApellido = *in.SegundoApellido
	}
	if in.DocumentoIdentificacion != nil {
		cliente.DocumentoIdentificacion = *in.DocumentoIdentificacion
	}
	if in.Correo != nil {
		cliente.Correo = *in.Correo
	}
	if in.Telefono != nil {
		cliente.Telefono = *in.Telefono
	}
	if err := uc.repo.Update(cliente); err != nil {
		return nil, err
	}
	return toClienteResponse(cliente), nil
}

// List devuelve una página de clientes con paginación en servidor.
func (uc *ClienteUseCase) List(page dto.PageRequest) (*dto.ClienteListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}
	total, err := uc.repo.Count()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ClienteResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toClienteResponse(c))
	}
	return &dto.ClienteListResponse{
		Items:      items,
		Paginacion: dto.NewPaginacion(page.Page, page.Limit, total),
	}, nil
}

// Delete elimina un cliente por ID. Borrar un id inexistente no es error.
func (uc *ClienteUseCase) Delete(id int64) error {
	return uc.repo.Delete(id)
}

func toClienteResponse(c *entity.Cliente) *dto.ClienteResponse {
	if c == nil {
		return nil
	}
	return &dto.ClienteResponse{
		ID:                      c.ID,
		PrimerNombre:            c.PrimerNombre,
		SegundoNombre:           c.SegundoNombre,
		PrimerApellido:          c.PrimerApellido,
		SegundoApellido:         c.SegundoApellido,
		DocumentoIdentificacion: c.DocumentoIdentificacion,
		Correo:                  c.Correo,
		Telefono:                c.Telefono,
		FechaRegistro:           c.FechaRegistro,
	}
}
