package repository

import "github.com/distrito-diamante/crm-api/internal/domain/entity"

// PolizaRepository define el puerto de persistencia para Poliza.
//
// Las lecturas resuelven los nombres de cliente, aseguradora, tipo de seguro y
// estado en la misma consulta (un solo JOIN); un FK colgante produce "".
type PolizaRepository interface {
	Create(poliza *entity.Poliza) error
	GetByID(id int64) (*entity.Poliza, error)
	List(limit, offset int) ([]*entity.Poliza, error)
	Count() (int, error)
	Update(poliza *entity.Poliza) error
	Delete(id int64) error
}
