package usecase

import (
	"github.com/distrito-diamante/crm-api/internal/application/dto"
	"github.com/distrito-diamante/crm-api/internal/domain"
	"github.com/distrito-diamante/crm-api/internal/domain/entity"
	"github.com/distrito-diamante/crm-api/internal/domain/repository"
)

// RecordatorioUseCase casos de uso CRUD para recordatorios de vencimiento.
// El despacho (marcar enviado + notificar) vive en el paquete notificacion.
type RecordatorioUseCase struct {
	repo repository.RecordatorioRepository
}

// NewRecordatorioUseCase construye el caso de uso.
func NewRecordatorioUseCase(repo repository.RecordatorioRepository) *RecordatorioUseCase {
	return &RecordatorioUseCase{repo: repo}
}

// Create crea un recordatorio no enviado para una póliza.
func (uc *RecordatorioUseCase) Create(in dto.CreateRecordatorioRequest) (*dto.RecordatorioResponse, error) {
	if in.PolizaID == 0 || in.DiasAntes <= 0 {
		return nil, domain.ErrInvalidInput
	}
	rec := &entity.Recordatorio{
		PolizaID:  in.PolizaID,
		DiasAntes: in.DiasAntes,
		Enviado:   false,
	}
	if err := uc.repo.Create(rec); err != nil {
		return nil, err
	}
	enriquecido, err := uc.repo.GetByID(rec.ID)
	if err == nil && enriquecido != nil {
		rec = enriquecido
	}
	return toRecordatorioResponse(rec), nil
}

// GetByID obtiene un recordatorio enriquecido por ID. (nil, nil) si no existe.
func (uc *RecordatorioUseCase) GetByID(id int64) (*dto.RecordatorioResponse, error) {
	rec, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}
	return toRecordatorioResponse(rec), nil
}

// Update actualiza solo los campos presentes en la petición.
func (uc *RecordatorioUseCase) Update(id int64, in dto.UpdateRecordatorioRequest) (*dto.RecordatorioResponse, error) {
	rec, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}
	if in.PolizaID != nil {
		rec.PolizaID = *in.PolizaID
	}
	if in.DiasAntes != nil {
		if *in.DiasAntes <= 0 {
			return nil, domain.ErrInvalidInput
		}
		rec.DiasAntes = *in.DiasAntes
	}
	if in.Enviado != nil {
		rec.Enviado = *in.Enviado
	}
	if in.FechaEnvio != nil {
		rec.FechaEnvio = in.FechaEnvio
	}
	if err := uc.repo.Update(rec); err != nil {
		return nil, err
	}
	enriquecido, err := uc.repo.GetByID(rec.ID)
	if err == nil && enriquecido != nil {
		rec = enriquecido
	}
	return toRecordatorioResponse(rec), nil
}

// List devuelve una página de recordatorios enriquecidos.
func (uc *RecordatorioUseCase) List(page dto.PageRequest) (*dto.RecordatorioListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}
	total, err := uc.repo.Count()
	if err != nil {
		return nil, err
	}
	items := make([]dto.RecordatorioResponse, 0, len(list))
	for _, rec := range list {
		items = append(items, *toRecordatorioResponse(rec))
	}
	return &dto.RecordatorioListResponse{
		Items:      items,
		Paginacion: dto.NewPaginacion(page.Page, page.Limit, total),
	}, nil
}

// Delete elimina un recordatorio por ID.
func (uc *RecordatorioUseCase) Delete(id int64) error {
	return uc.repo.Delete(id)
}

func toRecordatorioResponse(rec *entity.Recordatorio) *dto.RecordatorioResponse {
	if rec == nil {
		return nil
	}
	return &dto.RecordatorioResponse{
		ID:            rec.ID,
		PolizaID:      rec.PolizaID,
		DiasAntes:     rec.DiasAntes,
		Enviado:       rec.Enviado,
		FechaEnvio:    rec.FechaEnvio,
		PolizaNumero:  rec.PolizaNumero,
		ClienteNombre: rec.ClienteNombre,
	}
}
