package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/distrito-diamante/crm-api/internal/domain/entity"
	"github.com/distrito-diamante/crm-api/internal/domain/repository"
)

var _ repository.DocumentoRepository = (*DocumentoRepo)(nil)

// DocumentoRepo implementación de DocumentoRepository sobre PostgreSQL (usable con pool o tx).
type DocumentoRepo struct {
	q Querier
}

// NewDocumentoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDocumentoRepository(q Querier) *DocumentoRepo {
	return &DocumentoRepo{q: q}
}

// Create persiste un nuevo documento. La DB asigna id_documento y fecha_subida.
func (r *DocumentoRepo) Create(d *entity.Documento) error {
	query := `
		INSERT INTO documentos (id_poliza, nombre, clave_almacen)
		VALUES ($1, $2, $3)
		RETURNING id_documento, fecha_subida`
	err := r.q.QueryRow(context.Background(), query, d.PolizaID, d.Nombre, d.ClaveAlmacen).
		Scan(&d.ID, &d.FechaSubida)
	if err != nil {
		return fmt.Errorf("insert documento: %w", err)
	}
	return nil
}

// GetByID obtiene un documento por ID. (nil, nil) si no existe.
func (r *DocumentoRepo) GetByID(id int64) (*entity.Documento, error) {
	query := `
		SELECT id_documento, id_poliza, nombre, clave_almacen, fecha_subida
		FROM documentos WHERE id_documento = $1`
	var d entity.Documento
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&d.ID, &d.PolizaID, &d.Nombre, &d.ClaveAlmacen, &d.FechaSubida,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get documento: %w", err)
	}
	return &d, nil
}

// List lista documentos con paginación.
func (r *DocumentoRepo) List(limit, offset int) ([]*entity.Documento, error) {
	query := `
		SELECT id_documento, id_poliza, nombre, clave_almacen, fecha_subida
		FROM documentos ORDER BY id_documento LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list documentos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Documento
	for rows.Next() {
		var d entity.Documento
		if err := rows.Scan(&d.ID, &d.PolizaID, &d.Nombre, &d.ClaveAlmacen, &d.FechaSubida); err != nil {
			return nil, fmt.Errorf("scan documento: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// Count devuelve el total exacto de documentos.
func (r *DocumentoRepo) Count() (int, error) {
	var total int
	err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM documentos`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count documentos: %w", err)
	}
	return total, nil
}

// Update actualiza un documento (la clave de almacén no cambia tras la subida).
func (r *DocumentoRepo) Update(d *entity.Documento) error {
	query := `UPDATE documentos SET id_poliza = $2, nombre = $3 WHERE id_documento = $1`
	_, err := r.q.Exec(context.Background(), query, d.ID, d.PolizaID, d.Nombre)
	if err != nil {
		return fmt.Errorf("update documento: %w", err)
	}
	return nil
}

// Delete elimina un documento por ID.
func (r *DocumentoRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM documentos WHERE id_documento = $1`, id)
	if err != nil {
		return fmt.Errorf("delete documento: %w", err)
	}
	return nil
}
