package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/distrito-diamante/crm-api/internal/application/dto"
	"github.com/distrito-diamante/crm-api/internal/application/usecase"
	"github.com/distrito-diamante/crm-api/internal/domain"
	"github.com/distrito-diamante/crm-api/internal/domain/entity"
)

func TestUsuarioCreate_DerivaHandleYHasheaContrasena(t *testing.T) {
	repo := newFakeUsuarioRepo()
	uc := usecase.NewUsuarioUseCase(repo)

	out, err := uc.Create(dto.CreateUsuarioRequest{
		PrimerNombre:   "José",
		PrimerApellido: "Muñoz Díaz",
		Contrasena:     "secreta123",
		RolID:          1,
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	// Handle derivado: inicial + apellido, minúsculas, sin tildes.
	assert.Equal(t, "jmunozdiaz", out.Usuario)
	// Sin estado explícito la cuenta nace activa.
	assert.Equal(t, entity.EstadoUsuarioActivo, out.EstadoID)

	// La contraseña quedó como hash bcrypt verificable, nunca en claro.
	guardado, err := repo.GetByHandle("jmunozdiaz")
	require.NoError(t, err)
	require.NotNil(t, guardado)
	assert.NotEqual(t, "secreta123", guardado.ContrasenaHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(guardado.ContrasenaHash), []byte("secreta123")))
}

func TestUsuarioCreate_HandleExplicitoSeRespeta(t *testing.T) {
	repo := newFakeUsuarioRepo()
	uc := usecase.NewUsuarioUseCase(repo)

	out, err := uc.Create(dto.CreateUsuarioRequest{
		PrimerNombre:   "Ana",
		PrimerApellido: "Pérez",
		Usuario:        "ana.admin",
		Contrasena:     "secreta123",
		RolID:          1,
	})
	require.NoError(t, err)
	assert.Equal(t, "ana.admin", out.Usuario)
}

func TestUsuarioCreate_HandleDuplicado(t *testing.T) {
	repo := newFakeUsuarioRepo()
	uc := usecase.NewUsuarioUseCase(repo)

	_, err := uc.Create(dto.CreateUsuarioRequest{
		PrimerNombre:   "José",
		PrimerApellido: "Muñoz",
		Contrasena:     "secreta123",
		RolID:          1,
	})
	require.NoError(t, err)

	// Mismo nombre produce el mismo handle derivado.
	_, err = uc.Create(dto.CreateUsuarioRequest{
		PrimerNombre:   "Javier",
		PrimerApellido: "Muñoz",
		Contrasena:     "otra-secreta",
		RolID:          2,
	})
	assert.ErrorIs(t, err, domain.ErrHandleAlreadyExists)
}

func TestUsuarioCreate_CamposRequeridos(t *testing.T) {
	uc := usecase.NewUsuarioUseCase(newFakeUsuarioRepo())

	_, err := uc.Create(dto.CreateUsuarioRequest{PrimerNombre: "Ana"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUsuarioUpdate_RehashContrasena(t *testing.T) {
	repo := newFakeUsuarioRepo()
	uc := usecase.NewUsuarioUseCase(repo)

	creado, err := uc.Create(dto.CreateUsuarioRequest{
		PrimerNombre:   "Ana",
		PrimerApellido: "Pérez",
		Contrasena:     "original123",
		RolID:          1,
	})
	require.NoError(t, err)

	nueva := "renovada456"
	_, err = uc.Update(creado.ID, dto.UpdateUsuarioRequest{Contrasena: &nueva})
	require.NoError(t, err)

	guardado, err := repo.GetByID(creado.ID)
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(guardado.ContrasenaHash), []byte("renovada456")))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(guardado.ContrasenaHash), []byte("original123")))
}

func TestUsuarioUpdate_CambioDeHandleOcupado(t *testing.T) {
	repo := newFakeUsuarioRepo()
	uc := usecase.NewUsuarioUseCase(repo)

	_, err := uc.Create(dto.CreateUsuarioRequest{
		PrimerNombre: "José", PrimerApellido: "Muñoz", Contrasena: "secreta123", RolID: 1,
	})
	require.NoError(t, err)
	otro, err := uc.Create(dto.CreateUsuarioRequest{
		PrimerNombre: "Ana", PrimerApellido: "Pérez", Contrasena: "secreta123", RolID: 1,
	})
	require.NoError(t, err)

	ocupado := "jmunoz"
	_, err = uc.Update(otro.ID, dto.UpdateUsuarioRequest{Usuario: &ocupado})
	assert.ErrorIs(t, err, domain.ErrHandleAlreadyExists)
}
