package postgres

import (
	"context"
	"fmt"

	"github.com/distrito-diamante/crm-api/internal/domain/entity"
	"github.com/distrito-diamante/crm-api/internal/domain/repository"
)

var _ repository.CatalogoRepository = (*CatalogoRepo)(nil)

// CatalogoRepo lecturas de las tablas de consulta (roles, estados, tipos de seguro).
type CatalogoRepo struct {
	q Querier
}

// NewCatalogoRepository construye el adaptador.
func NewCatalogoRepository(q Querier) *CatalogoRepo {
	return &CatalogoRepo{q: q}
}

func (r *CatalogoRepo) listar(query, tabla string) ([]*entity.Catalogo, error) {
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", tabla, err)
	}
	defer rows.Close()
	var list []*entity.Catalogo
	for rows.Next() {
		var c entity.Catalogo
		if err := rows.Scan(&c.ID, &c.Nombre); err != nil {
			return nil, fmt.Errorf("scan %s: %w", tabla, err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Roles lista la tabla roles.
func (r *CatalogoRepo) Roles() ([]*entity.Catalogo, error) {
	return r.listar(`SELECT id_rol, nombre FROM roles ORDER BY id_rol`, "roles")
}

// EstadosUsuario lista la tabla estados_usuario.
func (r *CatalogoRepo) EstadosUsuario() ([]*entity.Catalogo, error) {
	return r.listar(`SELECT id_estado, nombre FROM estados_usuario ORDER BY id_estado`, "estados_usuario")
}

// TiposSeguro lista la tabla tipos_seguro.
func (r *CatalogoRepo) TiposSeguro() ([]*entity.Catalogo, error) {
	return r.listar(`SELECT id_tipo_seguro, nombre FROM tipos_seguro ORDER BY id_tipo_seguro`, "tipos_seguro")
}

// EstadosPoliza lista la tabla estados_poliza.
func (r *CatalogoRepo) EstadosPoliza() ([]*entity.Catalogo, error) {
	return r.listar(`SELECT id_estado, nombre FROM estados_poliza ORDER BY id_estado`, "estados_poliza")
}
