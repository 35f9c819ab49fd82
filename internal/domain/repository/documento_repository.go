package repository

import "github.com/distrito-diamante/crm-api/internal/domain/entity"

// DocumentoRepository define el puerto de persistencia para Documento.
type DocumentoRepository interface {
	Create(documento *entity.Documento) error
	GetByID(id int64) (*entity.Documento, error)
	List(limit, offset int) ([]*entity.Documento, error)
	Count() (int, error)
	Update(documento *entity.Documento) error
	Delete(id int64) error
}
