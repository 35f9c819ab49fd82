package notificacion_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/distrito-diamante/crm-api/internal/application/notificacion"
	"github.com/distrito-diamante/crm-api/internal/domain/entity"
	"github.com/distrito-diamante/crm-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

// fakeRecordatorioRepo solo implementa lo que el dispatcher usa; el resto del
// puerto entra en pánico para delatar llamadas inesperadas.
type fakeRecordatorioRepo struct {
	pendientes []*entity.Recordatorio
	marcados   []int64
}

func (f *fakeRecordatorioRepo) ListPendientes(ahora time.Time) ([]*entity.Recordatorio, error) {
	return f.pendientes, nil
}

func (f *fakeRecordatorioRepo) MarcarEnviado(id int64, fechaEnvio time.Time) error {
	f.marcados = append(f.marcados, id)
	return nil
}

func (f *fakeRecordatorioRepo) Create(*entity.Recordatorio) error { panic("no esperado") }
func (f *fakeRecordatorioRepo) GetByID(int64) (*entity.Recordatorio, error) {
	panic("no esperado")
}
func (f *fakeRecordatorioRepo) List(int, int) ([]*entity.Recordatorio, error) {
	panic("no esperado")
}
func (f *fakeRecordatorioRepo) Count() (int, error)               { panic("no esperado") }
func (f *fakeRecordatorioRepo) Update(*entity.Recordatorio) error { panic("no esperado") }
func (f *fakeRecordatorioRepo) Delete(int64) error                { panic("no esperado") }

// fakePublisher acumula los eventos publicados y puede fallar por ID de póliza.
type fakePublisher struct {
	publicados []notificacion.EventoVencimiento
	fallaEn    int64
}

func (f *fakePublisher) Publicar(_ context.Context, e notificacion.EventoVencimiento) error {
	if f.fallaEn != 0 && e.PolizaID == f.fallaEn {
		return errors.New("broker no disponible")
	}
	f.publicados = append(f.publicados, e)
	return nil
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "test", Level: "error"})
}

func recordatorio(id, polizaID int64, numero string) *entity.Recordatorio {
	return &entity.Recordatorio{
		ID:            id,
		PolizaID:      polizaID,
		DiasAntes:     15,
		PolizaNumero:  numero,
		ClienteNombre: "José Muñoz",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestDespachar_PublicaYMarcaEnviados(t *testing.T) {
	repo := &fakeRecordatorioRepo{pendientes: []*entity.Recordatorio{
		recordatorio(1, 10, "POL-010"),
		recordatorio(2, 20, "POL-020"),
	}}
	pub := &fakePublisher{}
	d := notificacion.NewDispatcher(repo, pub, testLogger())

	enviados, err := d.Despachar(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, enviados)
	assert.Equal(t, []int64{1, 2}, repo.marcados)
	require.Len(t, pub.publicados, 2)
	assert.Equal(t, "POL-010", pub.publicados[0].PolizaNumero)
	assert.Equal(t, int64(10), pub.publicados[0].PolizaID)
}

// Un fallo de publicación no marca ese recordatorio (queda para el siguiente
// ciclo) y no detiene a los demás.
func TestDespachar_FalloParcialNoMarcaNiDetiene(t *testing.T) {
	repo := &fakeRecordatorioRepo{pendientes: []*entity.Recordatorio{
		recordatorio(1, 10, "POL-010"),
		recordatorio(2, 20, "POL-020"),
		recordatorio(3, 30, "POL-030"),
	}}
	pub := &fakePublisher{fallaEn: 20}
	d := notificacion.NewDispatcher(repo, pub, testLogger())

	enviados, err := d.Despachar(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, enviados)
	assert.Equal(t, []int64{1, 3}, repo.marcados, "el recordatorio fallido no se marca")
}

func TestDespachar_SinPendientes(t *testing.T) {
	repo := &fakeRecordatorioRepo{}
	pub := &fakePublisher{}
	d := notificacion.NewDispatcher(repo, pub, testLogger())

	enviados, err := d.Despachar(context.Background())
	require.NoError(t, err)

	assert.Zero(t, enviados)
	assert.Empty(t, pub.publicados)
}
