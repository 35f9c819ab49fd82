package repository

import "github.com/distrito-diamante/crm-api/internal/domain/entity"

// CatalogoRepository expone las tablas de consulta (solo lectura).
type CatalogoRepository interface {
	Roles() ([]*entity.Catalogo, error)
	EstadosUsuario() ([]*entity.Catalogo, error)
	TiposSeguro() ([]*entity.Catalogo, error)
	EstadosPoliza() ([]*entity.Catalogo, error)
}
