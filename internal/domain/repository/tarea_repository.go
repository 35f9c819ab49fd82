package repository

import "github.com/distrito-diamante/crm-api/internal/domain/entity"

// TareaRepository define el puerto de persistencia para Tarea.
type TareaRepository interface {
	Create(tarea *entity.Tarea) error
	GetByID(id int64) (*entity.Tarea, error)
	List(limit, offset int) ([]*entity.Tarea, error)
	Count() (int, error)
	Update(tarea *entity.Tarea) error
	Delete(id int64) error
}
