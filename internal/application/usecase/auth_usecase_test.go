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
	"github.com/distrito-diamante/crm-api/pkg/config"
	pkgjwt "github.com/distrito-diamante/crm-api/pkg/jwt"
)

var testJWT = config.JWTConfig{
	Secret:     "secret-de-test",
	Expiration: 60,
	Issuer:     "crm-test",
}

// seedUsuario inserta una cuenta con la contraseña ya hasheada.
func seedUsuario(t *testing.T, repo *fakeUsuarioRepo, handle, contrasena string, estadoID int64) *entity.Usuario {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(contrasena), bcrypt.MinCost)
	require.NoError(t, err)
	u := &entity.Usuario{
		PrimerNombre:   "José",
		PrimerApellido: "Muñoz",
		Usuario:        handle,
		ContrasenaHash: string(hash),
		RolID:          1,
		EstadoID:       estadoID,
		RolNombre:      entity.RolAdministrador,
	}
	require.NoError(t, repo.Create(u))
	return u
}

func TestLogin_CredencialesCorrectas(t *testing.T) {
	repo := newFakeUsuarioRepo()
	seedUsuario(t, repo, "jmunoz", "secreta123", entity.EstadoUsuarioActivo)
	uc := usecase.NewAuthUseCase(repo, testJWT)

	out, err := uc.Login(dto.LoginRequest{Usuario: "jmunoz", Contrasena: "secreta123"})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "jmunoz", out.User.Usuario)

	// El token debe ser verificable y llevar los claims del usuario.
	userID, usuario, rol, err := pkgjwt.Parse(testJWT.Secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, userID)
	assert.Equal(t, "jmunoz", usuario)
	assert.Equal(t, entity.RolAdministrador, rol)
}

func TestLogin_ContrasenaIncorrecta(t *testing.T) {
	repo := newFakeUsuarioRepo()
	seedUsuario(t, repo, "jmunoz", "secreta123", entity.EstadoUsuarioActivo)
	uc := usecase.NewAuthUseCase(repo, testJWT)

	out, err := uc.Login(dto.LoginRequest{Usuario: "jmunoz", Contrasena: "otra-cosa"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Nil(t, out)
}

func TestLogin_HandleInexistente(t *testing.T) {
	repo := newFakeUsuarioRepo()
	uc := usecase.NewAuthUseCase(repo, testJWT)

	out, err := uc.Login(dto.LoginRequest{Usuario: "nadie", Contrasena: "secreta123"})
	// Mismo error que contraseña mala, no se revela cuál falló.
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Nil(t, out)
}

func TestLogin_CuentaInactiva(t *testing.T) {
	repo := newFakeUsuarioRepo()
	seedUsuario(t, repo, "jmunoz", "secreta123", entity.EstadoUsuarioInactivo)
	uc := usecase.NewAuthUseCase(repo, testJWT)

	out, err := uc.Login(dto.LoginRequest{Usuario: "jmunoz", Contrasena: "secreta123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized,
		"una cuenta inactiva no puede iniciar sesión aunque la contraseña sea correcta")
	assert.Nil(t, out)
}

func TestLogin_CamposVacios(t *testing.T) {
	uc := usecase.NewAuthUseCase(newFakeUsuarioRepo(), testJWT)

	_, err := uc.Login(dto.LoginRequest{Usuario: "", Contrasena: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
