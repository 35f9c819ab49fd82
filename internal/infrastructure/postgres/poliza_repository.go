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

var _ repository.PolizaRepository = (*PolizaRepo)(nil)

// PolizaRepo implementación de PolizaRepository sobre PostgreSQL (usable con pool o tx).
//
// Los nombres de cliente, aseguradora, tipo de seguro y estado se resuelven con
// LEFT JOIN en la misma consulta; un FK que no referencia ninguna fila produce ''.
type PolizaRepo struct {
	q Querier
}

// NewPolizaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPolizaRepository(q Querier) *PolizaRepo {
	return &PolizaRepo{q: q}
}

const polizaSelect = `
	SELECT p.id_poliza, p.numero_poliza, p.id_cliente, p.id_aseguradora, p.id_tipo_seguro,
		p.id_estado, p.fecha_inicio, p.fecha_fin, p.monto, p.fecha_registro,
		COALESCE(c.primer_nombre || ' ' || c.primer_apellido, '') AS cliente_nombre,
		COALESCE(a.nombre, '') AS aseguradora_nombre,
		COALESCE(t.nombre, '') AS tipo_seguro_nombre,
		COALESCE(e.nombre, '') AS estado_nombre
	FROM polizas p
	LEFT JOIN clientes c ON c.id_cliente = p.id_cliente
	LEFT JOIN aseguradoras a ON a.id_aseguradora = p.id_aseguradora
	LEFT JOIN tipos_seguro t ON t.id_tipo_seguro = p.id_tipo_seguro
	LEFT JOIN estados_poliza e ON e.id_estado = p.id_estado`

func scanPoliza(row pgx.Row) (*entity.Poliza, error) {
	var p entity.Poliza
	err := row.Scan(
		&p.ID, &p.NumeroPoliza, &p.ClienteID, &p.AseguradoraID, &p.TipoSeguroID,
		&p.EstadoID, &p.FechaInicio, &p.FechaFin, &p.Monto, &p.FechaRegistro,
		&p.ClienteNombre, &p.AseguradoraNombre, &p.TipoSeguroNombre, &p.EstadoNombre,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create persiste una nueva póliza. La DB asigna id_poliza y fecha_registro.
// No se valida que los FK existan: esa comprobación vive en la DB, si acaso.
func (r *PolizaRepo) Create(p *entity.Poliza) error {
	query := `
		INSERT INTO polizas (numero_poliza, id_cliente, id_aseguradora, id_tipo_seguro,
			id_estado, fecha_inicio, fecha_fin, monto)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id_poliza, fecha_registro`
	err := r.q.QueryRow(context.Background(), query,
		p.NumeroPoliza, p.ClienteID, p.AseguradoraID, p.TipoSeguroID,
		p.EstadoID, p.FechaInicio, p.FechaFin, p.Monto,
	).Scan(&p.ID, &p.FechaRegistro)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert poliza: %w", err)
	}
	return nil
}

// GetByID obtiene una póliza enriquecida por ID. (nil, nil) si no existe.
func (r *PolizaRepo) GetByID(id int64) (*entity.Poliza, error) {
	p, err := scanPoliza(r.q.QueryRow(context.Background(), polizaSelect+` WHERE p.id_poliza = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get poliza: %w", err)
	}
	return p, nil
}

// List lista pólizas enriquecidas con paginación.
func (r *PolizaRepo) List(limit, offset int) ([]*entity.Poliza, error) {
	query := polizaSelect + ` ORDER BY p.id_poliza LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list polizas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Poliza
	for rows.Next() {
		p, err := scanPoliza(rows)
		if err != nil {
			return nil, fmt.Errorf("scan poliza: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Count devuelve el total exacto de pólizas.
func (r *PolizaRepo) Count() (int, error) {
	var total int
	err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM polizas`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count polizas: %w", err)
	}
	return total, nil
}

// Update actualiza una póliza. Los campos derivados no se persisten.
func (r *PolizaRepo) Update(p *entity.Poliza) error {
	query := `
		UPDATE polizas SET numero_poliza = $2, id_cliente = $3, id_aseguradora = $4,
			id_tipo_seguro = $5, id_estado = $6, fecha_inicio = $7, fecha_fin = $8, monto = $9
		WHERE id_poliza = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.NumeroPoliza, p.ClienteID, p.AseguradoraID,
		p.TipoSeguroID, p.EstadoID, p.FechaInicio, p.FechaFin, p.Monto,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update poliza: %w", err)
	}
	return nil
}

// Delete elimina una póliza por ID.
func (r *PolizaRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM polizas WHERE id_poliza = $1`, id)
	if err != nil {
		return fmt.Errorf("delete poliza: %w", err)
	}
	return nil
}
