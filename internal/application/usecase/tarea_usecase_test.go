package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/distrito-diamante/crm-api/internal/application/dto"
	"github.com/distrito-diamante/crm-api/internal/application/usecase"
)

func crearTarea(t *testing.T, uc *usecase.TareaUseCase) *dto.TareaResponse {
	t.Helper()
	out, err := uc.Create(dto.CreateTareaRequest{
		UsuarioID:       1,
		ClienteID:       2,
		Descripcion:     "llamar para renovación",
		FechaProgramada: time.Now().Add(24 * time.Hour),
	})
	require.NoError(t, err)
	return out
}

func TestTareaUpdate_CompletarFijaLaFecha(t *testing.T) {
	uc := usecase.NewTareaUseCase(newFakeTareaRepo())
	tarea := crearTarea(t, uc)

	completada := true
	out, err := uc.Update(tarea.ID, dto.UpdateTareaRequest{Completada: &completada})
	require.NoError(t, err)

	assert.True(t, out.Completada)
	require.NotNil(t, out.FechaCompletada, "completar sin fecha explícita fija la fecha actual")
	assert.WithinDuration(t, time.Now(), *out.FechaCompletada, time.Minute)
}

func TestTareaUpdate_ReabrirLimpiaLaFecha(t *testing.T) {
	uc := usecase.NewTareaUseCase(newFakeTareaRepo())
	tarea := crearTarea(t, uc)

	completada := true
	_, err := uc.Update(tarea.ID, dto.UpdateTareaRequest{Completada: &completada})
	require.NoError(t, err)

	reabierta := false
	out, err := uc.Update(tarea.ID, dto.UpdateTareaRequest{Completada: &reabierta})
	require.NoError(t, err)

	assert.False(t, out.Completada)
	assert.Nil(t, out.FechaCompletada, "reabrir una tarea limpia la fecha de completado")
}

func TestTareaUpdate_FechaCompletadaExplicita(t *testing.T) {
	uc := usecase.NewTareaUseCase(newFakeTareaRepo())
	tarea := crearTarea(t, uc)

	completada := true
	ayer := time.Now().Add(-24 * time.Hour)
	out, err := uc.Update(tarea.ID, dto.UpdateTareaRequest{
		Completada:      &completada,
		FechaCompletada: &ayer,
	})
	require.NoError(t, err)

	require.NotNil(t, out.FechaCompletada)
	assert.WithinDuration(t, ayer, *out.FechaCompletada, time.Second,
		"la fecha explícita del cuerpo gana sobre la fecha actual")
}
