package usecase

import (
	"github.com/distrito-diamante/crm-api/internal/application/dto"
	"github.com/distrito-diamante/crm-api/internal/domain/entity"
	"github.com/distrito-diamante/crm-api/internal/domain/repository"
)

// CatalogoUseCase expone las tablas de consulta para los selects de la UI.
type CatalogoUseCase struct {
	repo repository.CatalogoRepository
}

// NewCatalogoUseCase construye el caso de uso.
func NewCatalogoUseCase(repo repository.CatalogoRepository) *CatalogoUseCase {
	return &CatalogoUseCase{repo: repo}
}

// Roles lista los roles de usuario.
func (uc *CatalogoUseCase) Roles() ([]dto.CatalogoResponse, error) {
	return uc.catalogo(uc.repo.Roles)
}

// EstadosUsuario lista los estados de usuario.
func (uc *CatalogoUseCase) EstadosUsuario() ([]dto.CatalogoResponse, error) {
	return uc.catalogo(uc.repo.EstadosUsuario)
}

// TiposSeguro lista los tipos de seguro.
func (uc *CatalogoUseCase) TiposSeguro() ([]dto.CatalogoResponse, error) {
	return uc.catalogo(uc.repo.TiposSeguro)
}

// EstadosPoliza lista los estados de póliza.
func (uc *CatalogoUseCase) EstadosPoliza() ([]dto.CatalogoResponse, error) {
	return uc.catalogo(uc.repo.EstadosPoliza)
}

func (uc *CatalogoUseCase) catalogo(fetch func() ([]*entity.Catalogo, error)) ([]dto.CatalogoResponse, error) {
	list, err := fetch()
	if err != nil {
		return nil, err
	}
	items := make([]dto.CatalogoResponse, 0, len(list))
	for _, c := range list {
		items = append(items, dto.CatalogoResponse{ID: c.ID, Nombre: c.Nombre})
	}
	return items, nil
}
