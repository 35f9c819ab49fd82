package usecase_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/distrito-diamante/crm-api/internal/application/dto"
	"github.com/distrito-diamante/crm-api/internal/application/usecase"
	"github.com/distrito-diamante/crm-api/internal/domain"
	"github.com/distrito-diamante/crm-api/internal/domain/entity"
)

func fechas(inicio, fin string) (time.Time, time.Time) {
	i, _ := time.Parse("2006-01-02", inicio)
	f, _ := time.Parse("2006-01-02", fin)
	return i, f
}

func TestPolizaCreate_RelecturaResuelveNombres(t *testing.T) {
	repo := newFakePolizaRepo()
	repo.resolverNombre = func(p *entity.Poliza) {
		p.ClienteNombre = "José Muñoz"
		p.AseguradoraNombre = "Seguros Andinos"
		p.TipoSeguroNombre = "Vida"
		p.EstadoNombre = "Vigente"
	}
	uc := usecase.NewPolizaUseCase(repo)

	inicio, fin := fechas("2026-01-01", "2027-01-01")
	out, err := uc.Create(dto.CreatePolizaRequest{
		NumeroPoliza:  "POL-001",
		ClienteID:     1,
		AseguradoraID: 1,
		TipoSeguroID:  1,
		EstadoID:      1,
		FechaInicio:   inicio,
		FechaFin:      fin,
		Monto:         decimal.NewFromInt(250000),
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	// La respuesta de creación ya viene enriquecida, igual que un GET.
	assert.Equal(t, "José Muñoz", out.ClienteNombre)
	assert.Equal(t, "Seguros Andinos", out.AseguradoraNombre)
	assert.Equal(t, "Vida", out.TipoSeguroNombre)
	assert.Equal(t, "Vigente", out.EstadoNombre)
}

func TestPolizaCreate_FechaFinAnteriorAInicio(t *testing.T) {
	uc := usecase.NewPolizaUseCase(newFakePolizaRepo())

	inicio, fin := fechas("2027-01-01", "2026-01-01")
	_, err := uc.Create(dto.CreatePolizaRequest{
		NumeroPoliza: "POL-002",
		FechaInicio:  inicio,
		FechaFin:     fin,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPolizaCreate_NumeroRequerido(t *testing.T) {
	uc := usecase.NewPolizaUseCase(newFakePolizaRepo())

	inicio, fin := fechas("2026-01-01", "2027-01-01")
	_, err := uc.Create(dto.CreatePolizaRequest{FechaInicio: inicio, FechaFin: fin})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPolizaGetByID_NoExiste(t *testing.T) {
	uc := usecase.NewPolizaUseCase(newFakePolizaRepo())

	out, err := uc.GetByID(99)
	require.NoError(t, err)
	assert.Nil(t, out, "un id inexistente no es error, es nil")
}

// Con 30 pólizas, la página 2 con límite 25 trae las 5 restantes y el total
// de páginas es 2.
func TestPolizaList_SegundaPagina(t *testing.T) {
	repo := newFakePolizaRepo()
	uc := usecase.NewPolizaUseCase(repo)

	inicio, fin := fechas("2026-01-01", "2027-01-01")
	for i := 1; i <= 30; i++ {
		_, err := uc.Create(dto.CreatePolizaRequest{
			NumeroPoliza: fmt.Sprintf("POL-%03d", i),
			FechaInicio:  inicio,
			FechaFin:     fin,
			Monto:        decimal.NewFromInt(1000),
		})
		require.NoError(t, err)
	}

	out, err := uc.List(dto.PageRequest{Page: 2, Limit: 25})
	require.NoError(t, err)

	assert.Len(t, out.Items, 5)
	assert.Equal(t, 30, out.Total)
	assert.Equal(t, 2, out.TotalPages)
	assert.Equal(t, 2, out.CurrentPage)
	assert.Equal(t, 25, out.Limit)
	assert.Equal(t, "POL-026", out.Items[0].NumeroPoliza)
}

// Sin parámetros de paginación aplica página 1 con 25 filas.
func TestPolizaList_DefaultsDePagina(t *testing.T) {
	repo := newFakePolizaRepo()
	uc := usecase.NewPolizaUseCase(repo)

	inicio, fin := fechas("2026-01-01", "2027-01-01")
	for i := 1; i <= 30; i++ {
		_, err := uc.Create(dto.CreatePolizaRequest{
			NumeroPoliza: fmt.Sprintf("POL-%03d", i),
			FechaInicio:  inicio,
			FechaFin:     fin,
		})
		require.NoError(t, err)
	}

	out, err := uc.List(dto.PageRequest{})
	require.NoError(t, err)

	assert.Len(t, out.Items, 25)
	assert.Equal(t, 1, out.CurrentPage)
	assert.Equal(t, 25, out.Limit)
}

func TestPolizaList_Vacia(t *testing.T) {
	uc := usecase.NewPolizaUseCase(newFakePolizaRepo())

	out, err := uc.List(dto.PageRequest{})
	require.NoError(t, err)

	assert.Empty(t, out.Items)
	assert.Equal(t, 0, out.Total)
	assert.Equal(t, 0, out.TotalPages, "sin filas el total de páginas es 0, no 1")
}

func TestPolizaUpdate_ParcialNoTocaOtrosCampos(t *testing.T) {
	repo := newFakePolizaRepo()
	uc := usecase.NewPolizaUseCase(repo)

	inicio, fin := fechas("2026-01-01", "2027-01-01")
	creada, err := uc.Create(dto.CreatePolizaRequest{
		NumeroPoliza: "POL-001",
		ClienteID:    1,
		FechaInicio:  inicio,
		FechaFin:     fin,
		Monto:        decimal.NewFromInt(1000),
	})
	require.NoError(t, err)

	nuevoMonto := decimal.NewFromInt(2500)
	out, err := uc.Update(creada.ID, dto.UpdatePolizaRequest{Monto: &nuevoMonto})
	require.NoError(t, err)

	assert.True(t, nuevoMonto.Equal(out.Monto))
	assert.Equal(t, "POL-001", out.NumeroPoliza, "el número no cambia si no viene en el cuerpo")
	assert.Equal(t, int64(1), out.ClienteID)
}

func TestPolizaUpdate_NoExiste(t *testing.T) {
	uc := usecase.NewPolizaUseCase(newFakePolizaRepo())

	numero := "POL-999"
	out, err := uc.Update(99, dto.UpdatePolizaRequest{NumeroPoliza: &numero})
	require.NoError(t, err)
	assert.Nil(t, out)
}
