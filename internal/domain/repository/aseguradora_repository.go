package repository

import "github.com/distrito-diamante/crm-api/internal/domain/entity"

// AseguradoraRepository define el puerto de persistencia para Aseguradora.
type AseguradoraRepository interface {
	Create(aseguradora *entity.Aseguradora) error
	GetByID(id int64) (*entity.Aseguradora, error)
	List(limit, offset int) ([]*entity.Aseguradora, error)
	Count() (int, error)
	Update(aseguradora *entity.Aseguradora) error
	Delete(id int64) error
}
