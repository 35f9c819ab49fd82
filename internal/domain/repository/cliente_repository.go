package repository

import "github.com/distrito-diamante/crm-api/internal/domain/entity"

// ClienteRepository define el puerto de persistencia para Cliente.
type ClienteRepository interface {
	// Create persiste el cliente y rellena ID y FechaRegistro con lo asignado por la DB.
	Create(cliente *entity.Cliente) error
	// GetByID devuelve (nil, nil) si el cliente no existe.
	GetByID(id int64) (*entity.Cliente, error)
	List(limit, offset int) ([]*entity.Cliente, error)
	Count() (int, error)
	Update(cliente *entity.Cliente) error
	Delete(id int64) error
}
