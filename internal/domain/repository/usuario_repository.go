package repository

import "github.com/distrito-diamante/crm-api/internal/domain/entity"

// UsuarioRepository define el puerto de persistencia para Usuario.
type UsuarioRepository interface {
	Create(usuario *entity.Usuario) error
	GetByID(id int64) (*entity.Usuario, error)
	// GetByHandle busca por el handle de login exacto. (nil, nil) si no existe.
	GetByHandle(handle string) (*entity.Usuario, error)
	List(limit, offset int) ([]*entity.Usuario, error)
	Count() (int, error)
	Update(usuario *entity.Usuario) error
	Delete(id int64) error
}
