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

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

// ClienteRepo implementación de ClienteRepository sobre PostgreSQL (usable con pool o tx).
type ClienteRepo struct {
	q Querier
}

// NewClienteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClienteRepository(q Querier) *ClienteRepo {
	return &ClienteRepo{q: q}
}

// Create persiste un nuevo cliente. La DB asigna id_cliente y fecha_registro.
func (r *ClienteRepo) Create(cliente *entity.Cliente) error {
	query := `
		INSERT INTO clientes (primer_nombre, segundo_nombre, primer_apellido, segundo_apellido,
			documento_identificacion, correo, telefono)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id_cliente, fecha_registro`
	err := r.q.QueryRow(context.Background(), query,
		cliente.PrimerNombre, cliente.SegundoNombre, cliente.PrimerApellido, cliente.SegundoApellido,
		cliente.DocumentoIdentificacion, cliente.Correo, cliente.Telefono,
	).Scan(&cliente.ID, &cliente.FechaRegistro)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert cliente: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID. (nil, nil) si no existe.
func (r *ClienteRepo) GetByID(id int64) (*entity.Cliente, error) {
	query := `
		SELECT id_cliente, primer_nombre, segundo_nombre, primer_apellido, segundo_apellido,
			documento_identificacion, correo, telefono, fecha_registro
		FROM clientes WHERE id_cliente = $1`
	var c entity.Cliente
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.PrimerNombre, &c.SegundoNombre, &c.PrimerApellido, &c.SegundoApellido,
		&c.DocumentoIdentificacion, &c.Correo, &c.Telefono, &c.FechaRegistro,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente: %w", err)
	}
	return &c, nil
}

// List lista clientes con paginación.
func (r *ClienteRepo) List(limit, offset int) ([]*entity.Cliente, error) {
	query := `
		SELECT id_cliente, primer_nombre, segundo_nombre, primer_apellido, segundo_apellido,
			documento_identificacion, correo, telefono, fecha_registro
		FROM clientes ORDER BY id_cliente LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Cliente
	for rows.Next() {
		var c entity.Cliente
		if err := rows.Scan(&c.ID, &c.PrimerNombre, &c.SegundoNombre, &c.PrimerApellido, &c.SegundoApellido,
			&c.DocumentoIdentificacion, &c.Correo, &c.Telefono, &c.FechaRegistro); err != nil {
			return nil, fmt.Errorf("scan cliente: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Count devuelve el total exacto de clientes.
func (r *ClienteRepo) Count() (int, error) {
	var total int
	err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM clientes`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count clientes: %w", err)
	}
	return total, nil
}

// Update actualiza un cliente.
func (r *ClienteRepo) Update(cliente *entity.Cliente) error {
	query := `
		UPDATE clientes SET primer_nombre = $2, segundo_nombre = $3, primer_apellido = $4,
			segundo_apellido = $5, documento_identificacion = $6, correo = $7, telefono = $8
		WHERE id_cliente = $1`
	_, err := r.q.Exec(context.Background(), query,
		cliente.ID, cliente.PrimerNombre, cliente.SegundoNombre, cliente.PrimerApellido,
		cliente.SegundoApellido, cliente.DocumentoIdentificacion, cliente.Correo, cliente.Telefono,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update cliente: %w", err)
	}
	return nil
}

// Delete elimina un cliente por ID. Borrar un id inexistente no es error.
func (r *ClienteRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM clientes WHERE id_cliente = $1`, id)
	if err != nil {
		return fmt.Errorf("delete cliente: %w", err)
	}
	return nil
}
