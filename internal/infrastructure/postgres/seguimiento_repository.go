package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/distrito-diamante/crm-api/internal/domain/entity"
	"github.com/distrito-diamante/crm-api/internal/domain/repository"
)

var _ repository.SeguimientoRepository = (*SeguimientoRepo)(nil)

// SeguimientoRepo implementación de SeguimientoRepository sobre PostgreSQL (usable con pool o tx).
type SeguimientoRepo struct {
	q Querier
}

// NewSeguimientoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSeguimientoRepository(q Querier) *SeguimientoRepo {
	return &SeguimientoRepo{q: q}
}

const seguimientoSelect = `
	SELECT s.id_seguimiento, s.id_cliente, s.id_usuario, s.fecha, s.nota,
		COALESCE(c.primer_nombre || ' ' || c.primer_apellido, '') AS cliente_nombre,
		COALESCE(u.primer_nombre || ' ' || u.primer_apellido, '') AS usuario_nombre
	FROM seguimientos s
	LEFT JOIN clientes c ON c.id_cliente = s.id_cliente
	LEFT JOIN usuarios u ON u.id_usuario = s.id_usuario`

func scanSeguimiento(row pgx.Row) (*entity.Seguimiento, error) {
	var s entity.Seguimiento
	err := row.Scan(
		&s.ID, &s.ClienteID, &s.UsuarioID, &s.Fecha, &s.Nota,
		&s.ClienteNombre, &s.UsuarioNombre,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create persiste un nuevo seguimiento. La DB asigna id_seguimiento y fecha.
func (r *SeguimientoRepo) Create(s *entity.Seguimiento) error {
	query := `
		INSERT INTO seguimientos (id_cliente, id_usuario, nota)
		VALUES ($1, $2, $3)
		RETURNING id_seguimiento, fecha`
	err := r.q.QueryRow(context.Background(), query, s.ClienteID, s.UsuarioID, s.Nota).
		Scan(&s.ID, &s.Fecha)
	if err != nil {
		return fmt.Errorf("insert seguimiento: %w", err)
	}
	return nil
}

// GetByID obtiene un seguimiento enriquecido por ID. (nil, nil) si no existe.
func (r *SeguimientoRepo) GetByID(id int64) (*entity.Seguimiento, error) {
	s, err := scanSeguimiento(r.q.QueryRow(context.Background(), seguimientoSelect+` WHERE s.id_seguimiento = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get seguimiento: %w", err)
	}
	return s, nil
}

// List lista seguimientos enriquecidos con paginación, los más recientes primero.
func (r *SeguimientoRepo) List(limit, offset int) ([]*entity.Seguimiento, error) {
	query := seguimientoSelect + ` ORDER BY s.fecha DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list seguimientos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Seguimiento
	for rows.Next() {
		s, err := scanSeguimiento(rows)
		if err != nil {
			return nil, fmt.Errorf("scan seguimiento: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// Count devuelve el total exacto de seguimientos.
func (r *SeguimientoRepo) Count() (int, error) {
	var total int
	err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM seguimientos`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count seguimientos: %w", err)
	}
	return total, nil
}

// Update actualiza un seguimiento.
func (r *SeguimientoRepo) Update(s *entity.Seguimiento) error {
	query := `
		UPDATE seguimientos SET id_cliente = $2, id_usuario = $3, fecha = $4, nota = $5
		WHERE id_seguimiento = $1`
	_, err := r.q.Exec(context.Background(), query, s.ID, s.ClienteID, s.UsuarioID, s.Fecha, s.Nota)
	if err != nil {
		return fmt.Errorf("update seguimiento: %w", err)
	}
	return nil
}

// Delete elimina un seguimiento por ID.
func (r *SeguimientoRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM seguimientos WHERE id_seguimiento = $1`, id)
	if err != nil {
		return fmt.Errorf("delete seguimiento: %w", err)
	}
	return nil
}
