package usecase

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/distrito-diamante/crm-api/internal/application/dto"
	"github.com/distrito-diamante/crm-api/internal/domain"
	"github.com/distrito-diamante/crm-api/internal/domain/entity"
	"github.com/distrito-diamante/crm-api/internal/domain/repository"
)

// DocumentoUseCase casos de uso para documentos adjuntos a pólizas.
type DocumentoUseCase struct {
	repo repository.DocumentoRepository
}

// NewDocumentoUseCase construye el caso de uso.
func NewDocumentoUseCase(repo repository.DocumentoRepository) *DocumentoUseCase {
	return &DocumentoUseCase{repo: repo}
}

// Create registra un documento y genera su clave de almacén. La clave es
// única por documento aunque dos adjuntos compartan nombre.
func (uc *DocumentoUseCase) Create(in dto.CreateDocumentoRequest) (*dto.DocumentoResponse, error) {
	if in.PolizaID == 0 || in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	d := &entity.Documento{
		PolizaID:     in.PolizaID,
		Nombre:       in.Nombre,
		ClaveAlmacen: fmt.Sprintf("polizas/%d/%s", in.PolizaID, uuid.NewString()),
	}
	if err := uc.repo.Create(d); err != nil {
		return nil, err
	}
	return toDocumentoResponse(d), nil
}

// GetByID obtiene un documento por ID. (nil, nil) si no existe.
func (uc *DocumentoUseCase) GetByID(id int64) (*dto.DocumentoResponse, error) {
	d, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, nil
	}
	return toDocumentoResponse(d), nil
}

// Update actualiza solo los campos presentes. La clave de almacén no cambia.
func (uc *DocumentoUseCase) Update(id int64, in dto.UpdateDocumentoRequest) (*dto.DocumentoResponse, error) {
	d, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, nil
	}
	if in.PolizaID != nil {
		d.PolizaID = *in.PolizaID
	}
	if in.Nombre != nil {
		d.Nombre = *in.Nombre
	}
	if err := uc.repo.Update(d); err != nil {
		return nil, err
	}
	return toDocumentoResponse(d), nil
}

// List devuelve una página de documentos.
func (uc *DocumentoUseCase) List(page dto.PageRequest) (*dto.DocumentoListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}
	total, err := uc.repo.Count()
	if err != nil {
		return nil, err
	}
	items := make([]dto.DocumentoResponse, 0, len(list))
	for _, d := range list {
		items = append(items, *toDocumentoResponse(d))
	}
	return &dto.DocumentoListResponse{
		Items:      items,
		Paginacion: dto.NewPaginacion(page.Page, page.Limit, total),
	}, nil
}

// Delete elimina el registro del documento.
func (uc *DocumentoUseCase) Delete(id int64) error {
	return uc.repo.Delete(id)
}

func toDocumentoResponse(d *entity.Documento) *dto.DocumentoResponse {
	if d == nil {
		return nil
	}
	return &dto.DocumentoResponse{
		ID:           d.ID,
		PolizaID:     d.PolizaID,
		Nombre:       d.Nombre,
		ClaveAlmacen: d.ClaveAlmacen,
		FechaSubida:  d.FechaSubida,
	}
}
