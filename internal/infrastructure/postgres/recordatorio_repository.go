package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/distrito-diamante/crm-api/internal/domain/entity"
	"github.com/distrito-diamante/crm-api/internal/domain/repository"
)

var _ repository.RecordatorioRepository = (*RecordatorioRepo)(nil)

// RecordatorioRepo implementación de RecordatorioRepository sobre PostgreSQL (usable con pool o tx).
type RecordatorioRepo struct {
	q Querier
}

// NewRecordatorioRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRecordatorioRepository(q Querier) *RecordatorioRepo {
	return &RecordatorioRepo{q: q}
}

const recordatorioSelect = `
	SELECT r.id_recordatorio, r.id_poliza, r.dias_antes, r.enviado, r.fecha_envio,
		COALESCE(p.numero_poliza, '') AS poliza_numero,
		COALESCE(c.primer_nombre || ' ' || c.primer_apellido, '') AS cliente_nombre
	FROM recordatorios r
	LEFT JOIN polizas p ON p.id_poliza = r.id_poliza
	LEFT JOIN clientes c ON c.id_cliente = p.id_cliente`

func scanRecordatorio(row pgx.Row) (*entity.Recordatorio, error) {
	var rec entity.Recordatorio
	err := row.Scan(
		&rec.ID, &rec.PolizaID, &rec.DiasAntes, &rec.Enviado, &rec.FechaEnvio,
		&rec.PolizaNumero, &rec.ClienteNombre,
	)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// Create persiste un nuevo recordatorio. La DB asigna id_recordatorio.
func (r *RecordatorioRepo) Create(rec *entity.Recordatorio) error {
	query := `
		INSERT INTO recordatorios (id_poliza, dias_antes, enviado, fecha_envio)
		VALUES ($1, $2, $3, $4)
		RETURNING id_recordatorio`
	err := r.q.QueryRow(context.Background(), query,
		rec.PolizaID, rec.DiasAntes, rec.Enviado, rec.FechaEnvio,
	).Scan(&rec.ID)
	if err != nil {
		return fmt.Errorf("insert recordatorio: %w", err)
	}
	return nil
}

// GetByID obtiene un recordatorio enriquecido por ID. (nil, nil) si no existe.
func (r *RecordatorioRepo) GetByID(id int64) (*entity.Recordatorio, error) {
	rec, err := scanRecordatorio(r.q.QueryRow(context.Background(), recordatorioSelect+` WHERE r.id_recordatorio = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get recordatorio: %w", err)
	}
	return rec, nil
}

// List lista recordatorios enriquecidos con paginación.
func (r *RecordatorioRepo) List(limit, offset int) ([]*entity.Recordatorio, error) {
	query := recordatorioSelect + ` ORDER BY r.id_recordatorio LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list recordatorios: %w", err)
	}
	defer rows.Close()
	var list []*entity.Recordatorio
	for rows.Next() {
		rec, err := scanRecordatorio(rows)
		if err != nil {
			return nil, fmt.Errorf("scan recordatorio: %w", err)
		}
		list = append(list, rec)
	}
	return list, rows.Err()
}

// Count devuelve el total exacto de recordatorios.
func (r *RecordatorioRepo) Count() (int, error) {
	var total int
	err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM recordatorios`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count recordatorios: %w", err)
	}
	return total, nil
}

// Update actualiza un recordatorio.
func (r *RecordatorioRepo) Update(rec *entity.Recordatorio) error {
	query := `
		UPDATE recordatorios SET id_poliza = $2, dias_antes = $3, enviado = $4, fecha_envio = $5
		WHERE id_recordatorio = $1`
	_, err := r.q.Exec(context.Background(), query,
		rec.ID, rec.PolizaID, rec.DiasAntes, rec.Enviado, rec.FechaEnvio,
	)
	if err != nil {
		return fmt.Errorf("update recordatorio: %w", err)
	}
	return nil
}

// Delete elimina un recordatorio por ID.
func (r *RecordatorioRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM recordatorios WHERE id_recordatorio = $1`, id)
	if err != nil {
		return fmt.Errorf("delete recordatorio: %w", err)
	}
	return nil
}

// ListPendientes devuelve los recordatorios no enviados cuya póliza vence dentro
// de la ventana de dias_antes contada desde ahora. Pólizas ya vencidas incluidas.
func (r *RecordatorioRepo) ListPendientes(ahora time.Time) ([]*entity.Recordatorio, error) {
	query := recordatorioSelect + `
	WHERE r.enviado = false
		AND p.id_poliza IS NOT NULL
		AND p.fecha_fin <= $1::date + (r.dias_antes || ' days')::interval
	ORDER BY p.fecha_fin`
	rows, err := r.q.Query(context.Background(), query, ahora)
	if err != nil {
		return nil, fmt.Errorf("list recordatorios pendientes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Recordatorio
	for rows.Next() {
		rec, err := scanRecordatorio(rows)
		if err != nil {
			return nil, fmt.Errorf("scan recordatorio pendiente: %w", err)
		}
		list = append(list, rec)
	}
	return list, rows.Err()
}

// MarcarEnviado fija enviado = true y la fecha de envío.
func (r *RecordatorioRepo) MarcarEnviado(id int64, fechaEnvio time.Time) error {
	query := `UPDATE recordatorios SET enviado = true, fecha_envio = $2 WHERE id_recordatorio = $1`
	_, err := r.q.Exec(context.Background(), query, id, fechaEnvio)
	if err != nil {
		return fmt.Errorf("marcar recordatorio enviado: %w", err)
	}
	return nil
}
