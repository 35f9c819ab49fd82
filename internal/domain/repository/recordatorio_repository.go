package repository

import (
	"time"

	"github.com/distrito-diamante/crm-api/internal/domain/entity"
)

// RecordatorioRepository define el puerto de persistencia para Recordatorio.
// Las lecturas resuelven número de póliza y nombre de cliente en la misma consulta.
type RecordatorioRepository interface {
	Create(recordatorio *entity.Recordatorio) error
	GetByID(id int64) (*entity.Recordatorio, error)
	List(limit, offset int) ([]*entity.Recordatorio, error)
	Count() (int, error)
	Update(recordatorio *entity.Recordatorio) error
	Delete(id int64) error

	// ListPendientes devuelve los recordatorios no enviados cuya póliza vence
	// dentro de la ventana de DiasAntes contada desde ahora.
	ListPendientes(ahora time.Time) ([]*entity.Recordatorio, error)
	// MarcarEnviado fija enviado = true y la fecha de envío.
	MarcarEnviado(id int64, fechaEnvio time.Time) error
}
