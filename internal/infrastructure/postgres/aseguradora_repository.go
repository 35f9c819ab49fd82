package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/distrito-diamante/crm-api/internal/domain"
	"github.com/distrito-diamante/crm-api/internal/domain/entity"
	"github.com/distrito-diamante/crm-api/internal/domain/repository"
)

var _ repository.AseguradoraRepository = (*AseguradoraRepo)(nil)

// AseguradoraRepo implementación de AseguradoraRepository sobre PostgreSQL (usable con pool o tx).
type AseguradoraRepo struct {
	q Querier
}

// NewAseguradoraRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAseguradoraRepository(q Querier) *AseguradoraRepo {
	return &AseguradoraRepo{q: q}
}

// Create persiste una nueva aseguradora. La DB asigna id_aseguradora.
func (r *AseguradoraRepo) Create(a *entity.Aseguradora) error {
	query := `
		INSERT INTO aseguradoras (nombre, contacto_nombre, telefono, correo, direccion)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id_aseguradora`
	err := r.q.QueryRow(context.Background(), query,
		a.Nombre, a.ContactoNombre, a.Telefono, a.Correo, a.Direccion,
	).Scan(&a.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert aseguradora: %w", err)
	}
	return nil
}

// GetByID obtiene una aseguradora por ID. (nil, nil) si no existe.
func (r *AseguradoraRepo) GetByID(id int64) (*entity.Aseguradora, error) {
	query := `
		SELECT id_aseguradora, nombre, contacto_nombre, telefono, correo, direccion
		FROM aseguradoras WHERE id_aseguradora = $1`
	var a entity.Aseguradora
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.Nombre, &a.ContactoNombre, &a.Telefono, &a.Correo, &a.Direccion,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get aseguradora: %w", err)
	}
	return &a, nil
}

// List lista aseguradoras con paginación.
func (r *AseguradoraRepo) List(limit, offset int) ([]*entity.Aseguradora, error) {
	query := `
		SELECT id_aseguradora, nombre, contacto_nombre, telefono, correo, direccion
		FROM aseguradoras ORDER BY nombre LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list aseguradoras: %w", err)
	}
	defer rows.Close()
	var list []*entity.Aseguradora
	for rows.Next() {
		var a entity.Aseguradora
		if err := rows.Scan(&a.ID, &a.Nombre, &a.ContactoNombre, &a.Telefono, &a.Correo, &a.Direccion); err != nil {
			return nil, fmt.Errorf("scan aseguradora: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// Count devuelve el total exacto de aseguradoras.
func (r *AseguradoraRepo) Count() (int, error) {
	var total int
	err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM aseguradoras`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count aseguradoras: %w", err)
	}
	return total, nil
}

// Update actualiza una aseguradora.
func (r *AseguradoraRepo) Update(a *entity.Aseguradora) error {
	query := `
		UPDATE aseguradoras SET nombre = $2, contacto_nombre = $3, telefono = $4, correo = $5, direccion = $6
		WHERE id_aseguradora = $1`
	_, err := r.q.Exec(context.Background(), query,
		a.ID, a.Nombre, a.ContactoNombre, a.Telefono, a.Correo, a.Direccion,
	)
	if err != nil {
		return fmt.Errorf("update aseguradora: %w", err)
	}
	return nil
}

// Delete elimina una aseguradora por ID.
func (r *AseguradoraRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM aseguradoras WHERE id_aseguradora = $1`, id)
	if err != nil {
		return fmt.Errorf("delete aseguradora: %w", err)
	}
	return nil
}
