package repository

import "github.com/distrito-diamante/crm-api/internal/domain/entity"

// SeguimientoRepository define el puerto de persistencia para Seguimiento.
// Las lecturas resuelven nombre de cliente y de usuario en la misma consulta.
type SeguimientoRepository interface {
	Create(seguimiento *entity.Seguimiento) error
	GetByID(id int64) (*entity.Seguimiento, error)
	List(limit, offset int) ([]*entity.Seguimiento, error)
	Count() (int, error)
	Update(seguimiento *entity.Seguimiento) error
	Delete(id int64) error
}
