package usecase

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/distrito-diamante/crm-api/internal/application/dto"
	"github.com/distrito-diamante/crm-api/internal/domain"
	"github.com/distrito-diamante/crm-api/internal/domain/repository"
	"github.com/distrito-diamante/crm-api/pkg/config"
	"github.com/distrito-diamante/crm-api/pkg/jwt"
)

// AuthUseCase autentica usuarios y emite tokens JWT.
type AuthUseCase struct {
	repo repository.UsuarioRepository
	cfg  config.JWTConfig
}

// NewAuthUseCase construye el caso de uso de autenticación.
func NewAuthUseCase(repo repository.UsuarioRepository, cfg config.JWTConfig) *AuthUseCase {
	return &AuthUseCase{repo: repo, cfg: cfg}
}

// Login verifica handle y contraseña y devuelve un token firmado. Cualquier
// fallo (handle inexistente, contraseña incorrecta, cuenta inactiva) responde
// el mismo ErrUnauthorized para no revelar cuál fue.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Usuario == "" || in.Contrasena == "" {
		return nil, domain.ErrInvalidInput
	}
	u, err := uc.repo.GetByHandle(in.Usuario)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.ContrasenaHash), []byte(in.Contrasena)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !u.Activo() {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.cfg.Secret, u.ID, u.Usuario, u.RolNombre, uc.cfg.Issuer, uc.cfg.Expiration)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: *toUsuarioResponse(u)}, nil
}
