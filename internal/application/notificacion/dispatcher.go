// Package notificacion despacha los recordatorios de vencimiento pendientes
// hacia el bus de eventos para que los consuma el servicio de mensajería.
package notificacion

import (
	"context"
	"time"

	"github.com/distrito-diamante/crm-api/internal/domain/entity"
	"github.com/distrito-diamante/crm-api/internal/domain/repository"
	"github.com/distrito-diamante/crm-api/pkg/logger"
)

// EventoVencimiento es el mensaje publicado por cada recordatorio que entra
// en su ventana de aviso.
type EventoVencimiento struct {
	RecordatorioID int64     `json:"id_recordatorio"`
	PolizaID       int64     `json:"id_poliza"`
	PolizaNumero   string    `json:"numero_poliza"`
	ClienteNombre  string    `json:"cliente"`
	DiasAntes      int       `json:"dias_antes"`
	FechaEnvio     time.Time `json:"fecha_envio"`
}

// Publisher publica eventos de vencimiento. Lo implementa el productor Kafka.
type Publisher interface {
	Publicar(ctx context.Context, evento EventoVencimiento) error
}

// Dispatcher recorre los recordatorios pendientes y los publica.
type Dispatcher struct {
	repo      repository.RecordatorioRepository
	publisher Publisher
	log       *logger.Logger
}

// NewDispatcher construye el despachador.
func NewDispatcher(repo repository.RecordatorioRepository, publisher Publisher, log *logger.Logger) *Dispatcher {
	return &Dispatcher{repo: repo, publisher: publisher, log: log}
}

// Despachar publica los recordatorios pendientes y los marca como enviados.
// Un fallo de publicación deja el recordatorio sin marcar para reintentarlo
// en el siguiente ciclo; los demás siguen procesándose.
func (d *Dispatcher) Despachar(ctx context.Context) (int, error) {
	ahora := time.Now()
	pendientes, err := d.repo.ListPendientes(ahora)
	if err != nil {
		return 0, err
	}
	enviados := 0
	for _, r := range pendientes {
		if err := d.publicar(ctx, r, ahora); err != nil {
			d.log.Error().Err(err).Int64("id_recordatorio", r.ID).Msg("no se pudo despachar el recordatorio")
			continue
		}
		enviados++
	}
	if enviados > 0 {
		d.log.Info().Int("enviados", enviados).Msg("recordatorios de vencimiento despachados")
	}
	return enviados, nil
}

func (d *Dispatcher) publicar(ctx context.Context, r *entity.Recordatorio, ahora time.Time) error {
	evento := EventoVencimiento{
		RecordatorioID: r.ID,
		PolizaID:       r.PolizaID,
		PolizaNumero:   r.PolizaNumero,
		ClienteNombre:  r.ClienteNombre,
		DiasAntes:      r.DiasAntes,
		FechaEnvio:     ahora,
	}
	if err := d.publisher.Publicar(ctx, evento); err != nil {
		return err
	}
	return d.repo.MarcarEnviado(r.ID, ahora)
}

// Ejecutar corre Despachar cada intervalo hasta que el contexto se cancele.
// Pensado para correr en su propia goroutine desde main.
func (d *Dispatcher) Ejecutar(ctx context.Context, intervalo time.Duration) {
	ticker := time.NewTicker(intervalo)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := d.Despachar(ctx); err != nil {
				d.log.Error().Err(err).Msg("falló el ciclo de despacho de recordatorios")
			}
		}
	}
}
