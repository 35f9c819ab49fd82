// Package kafka implementa el productor de eventos de vencimiento sobre
// segmentio/kafka-go.
package kafka

import (
	"context"
	"strconv"
	"time"

	json "github.com/goccy/go-json"
	kafkago "github.com/segmentio/kafka-go"

	"github.com/distrito-diamante/crm-api/internal/application/notificacion"
)

// Publisher publica eventos de vencimiento en un tópico Kafka. La clave del
// mensaje es el ID de la póliza para mantener el orden por póliza.
type Publisher struct {
	writer *kafkago.Writer
}

// NewPublisher crea el productor. Brokers es la lista host:port.
func NewPublisher(brokers []string, topic string) *Publisher {
	return &Publisher{
		writer: &kafkago.Writer{
			Addr:         kafkago.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafkago.Hash{},
			BatchTimeout: 100 * time.Millisecond,
			RequiredAcks: kafkago.RequireOne,
		},
	}
}

// Publicar serializa el evento y lo escribe en el tópico.
func (p *Publisher) Publicar(ctx context.Context, evento notificacion.EventoVencimiento) error {
	value, err := json.Marshal(evento)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafkago.Message{
		Key:   []byte(strconv.FormatInt(evento.PolizaID, 10)),
		Value: value,
	})
}

// Close cierra el writer y descarga los mensajes pendientes.
func (p *Publisher) Close() error {
	return p.writer.Close()
}
