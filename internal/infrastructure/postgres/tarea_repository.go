package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/distrito-diamante/crm-api/internal/domain/entity"
	"github.com/distrito-diamante/crm-api/internal/domain/repository"
)

var _ repository.TareaRepository = (*TareaRepo)(nil)

// TareaRepo implementación de TareaRepository sobre PostgreSQL (usable con pool o tx).
type TareaRepo struct {
	q Querier
}

// NewTareaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTareaRepository(q Querier) *TareaRepo {
	return &TareaRepo{q: q}
}

// Create persiste una nueva tarea. La DB asigna id_tarea.
func (r *TareaRepo) Create(t *entity.Tarea) error {
	query := `
		INSERT INTO tareas (id_usuario, id_cliente, descripcion, fecha_programada, completada, fecha_completada)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id_tarea`
	err := r.q.QueryRow(context.Background(), query,
		t.UsuarioID, t.ClienteID, t.Descripcion, t.FechaProgramada, t.Completada, t.FechaCompletada,
	).Scan(&t.ID)
	if err != nil {
		return fmt.Errorf("insert tarea: %w", err)
	}
	return nil
}

// GetByID obtiene una tarea por ID. (nil, nil) si no existe.
func (r *TareaRepo) GetByID(id int64) (*entity.Tarea, error) {
	query := `
		SELECT id_tarea, id_usuario, id_cliente, descripcion, fecha_programada, completada, fecha_completada
		FROM tareas WHERE id_tarea = $1`
	var t entity.Tarea
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.UsuarioID, &t.ClienteID, &t.Descripcion, &t.FechaProgramada, &t.Completada, &t.FechaCompletada,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tarea: %w", err)
	}
	return &t, nil
}

// List lista tareas con paginación, las más próximas primero.
func (r *TareaRepo) List(limit, offset int) ([]*entity.Tarea, error) {
	query := `
		SELECT id_tarea, id_usuario, id_cliente, descripcion, fecha_programada, completada, fecha_completada
		FROM tareas ORDER BY fecha_programada LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list tareas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Tarea
	for rows.Next() {
		var t entity.Tarea
		if err := rows.Scan(&t.ID, &t.UsuarioID, &t.ClienteID, &t.Descripcion,
			&t.FechaProgramada, &t.Completada, &t.FechaCompletada); err != nil {
			return nil, fmt.Errorf("scan tarea: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// Count devuelve el total exacto de tareas.
func (r *TareaRepo) Count() (int, error) {
	var total int
	err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM tareas`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count tareas: %w", err)
	}
	return total, nil
}

// Update actualiza una tarea.
func (r *TareaRepo) Update(t *entity.Tarea) error {
	query := `
		UPDATE tareas SET id_usuario = $2, id_cliente = $3, descripcion = $4,
			fecha_programada = $5, completada = $6, fecha_completada = $7
		WHERE id_tarea = $1`
	_, err := r.q.Exec(context.Background(), query,
		t.ID, t.UsuarioID, t.ClienteID, t.Descripcion, t.FechaProgramada, t.Completada, t.FechaCompletada,
	)
	if err != nil {
		return fmt.Errorf("update tarea: %w", err)
	}
	return nil
}

// Delete elimina una tarea por ID.
func (r *TareaRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM tareas WHERE id_tarea = $1`, id)
	if err != nil {
		return fmt.Errorf("delete tarea: %w", err)
	}
	return nil
}
