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

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementación del puerto UsuarioRepository sobre PostgreSQL.
type UsuarioRepo struct {
	q Querier
}

// NewUsuarioRepository construye el adaptador de persistencia para usuarios.
func NewUsuarioRepository(q Querier) *UsuarioRepo {
	return &UsuarioRepo{q: q}
}

const usuarioSelect = `
	SELECT u.id_usuario, u.primer_nombre, u.segundo_nombre, u.primer_apellido, u.segundo_apellido,
		u.usuario, u.contrasena_hash, u.id_rol, u.id_estado, u.fecha_creacion,
		COALESCE(r.nombre, '') AS rol_nombre,
		COALESCE(e.nombre, '') AS estado_nombre
	FROM usuarios u
	LEFT JOIN roles r ON r.id_rol = u.id_rol
	LEFT JOIN estados_usuario e ON e.id_estado = u.id_estado`

func scanUsuario(row pgx.Row) (*entity.Usuario, error) {
	var u entity.Usuario
	err := row.Scan(
		&u.ID, &u.PrimerNombre, &u.SegundoNombre, &u.PrimerApellido, &u.SegundoApellido,
		&u.Usuario, &u.ContrasenaHash, &u.RolID, &u.EstadoID, &u.FechaCreacion,
		&u.RolNombre, &u.EstadoNombre,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create persiste un nuevo usuario. La contraseña llega ya hasheada (bcrypt).
func (r *UsuarioRepo) Create(u *entity.Usuario) error {
	query := `
		INSERT INTO usuarios (primer_nombre, segundo_nombre, primer_apellido, segundo_apellido,
			usuario, contrasena_hash, id_rol, id_estado)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id_usuario, fecha_creacion`
	err := r.q.QueryRow(context.Background(), query,
		u.PrimerNombre, u.SegundoNombre, u.PrimerApellido, u.SegundoApellido,
		u.Usuario, u.ContrasenaHash, u.RolID, u.EstadoID,
	).Scan(&u.ID, &u.FechaCreacion)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrHandleAlreadyExists
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID. (nil, nil) si no existe.
func (r *UsuarioRepo) GetByID(id int64) (*entity.Usuario, error) {
	u, err := scanUsuario(r.q.QueryRow(context.Background(), usuarioSelect+` WHERE u.id_usuario = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return u, nil
}

// GetByHandle obtiene un usuario por su handle de login exacto. (nil, nil) si no existe.
func (r *UsuarioRepo) GetByHandle(handle string) (*entity.Usuario, error) {
	u, err := scanUsuario(r.q.QueryRow(context.Background(), usuarioSelect+` WHERE u.usuario = $1`, handle))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario por handle: %w", err)
	}
	return u, nil
}

// List lista usuarios con paginación.
func (r *UsuarioRepo) List(limit, offset int) ([]*entity.Usuario, error) {
	query := usuarioSelect + ` ORDER BY u.id_usuario LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list usuarios: %w", err)
	}
	defer rows.Close()
	var list []*entity.Usuario
	for rows.Next() {
		u, err := scanUsuario(rows)
		if err != nil {
			return nil, fmt.Errorf("scan usuario: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

// Count devuelve el total exacto de usuarios.
func (r *UsuarioRepo) Count() (int, error) {
	var total int
	err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM usuarios`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count usuarios: %w", err)
	}
	return total, nil
}

// Update actualiza un usuario (incluido el hash si se cambió la contraseña).
func (r *UsuarioRepo) Update(u *entity.Usuario) error {
	query := `
		UPDATE usuarios SET primer_nombre = $2, segundo_nombre = $3, primer_apellido = $4,
			segundo_apellido = $5, usuario = $6, contrasena_hash = $7, id_rol = $8, id_estado = $9
		WHERE id_usuario = $1`
	_, err := r.q.Exec(context.Background(), query,
		u.ID, u.PrimerNombre, u.SegundoNombre, u.PrimerApellido, u.SegundoApellido,
		u.Usuario, u.ContrasenaHash, u.RolID, u.EstadoID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrHandleAlreadyExists
		}
		return fmt.Errorf("update usuario: %w", err)
	}
	return nil
}

// Delete elimina un usuario por ID.
func (r *UsuarioRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM usuarios WHERE id_usuario = $1`, id)
	if err != nil {
		return fmt.Errorf("delete usuario: %w", err)
	}
	return nil
}
