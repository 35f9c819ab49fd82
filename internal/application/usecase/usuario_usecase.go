package usecase

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/distrito-diamante/crm-api/internal/application/dto"
	"github.com/distrito-diamante/crm-api/internal/domain"
	"github.com/distrito-diamante/crm-api/internal/domain/entity"
	"github.com/distrito-diamante/crm-api/internal/domain/repository"
	"github.com/distrito-diamante/crm-api/pkg/normalizar"
)

// UsuarioUseCase casos de uso CRUD para usuarios del sistema.
// La contraseña se almacena siempre como hash bcrypt, nunca en claro.
type UsuarioUseCase struct {
	repo repository.UsuarioRepository
}

// NewUsuarioUseCase construye el caso de uso.
func NewUsuarioUseCase(repo repository.UsuarioRepository) *UsuarioUseCase {
	return &UsuarioUseCase{repo: repo}
}

// Create crea un usuario: hashea la contraseña con bcrypt y persiste.
// Si no llega handle se deriva del nombre (inicial + apellido, sin tildes).
// Devuelve ErrHandleAlreadyExists si el handle ya está en uso.
func (uc *UsuarioUseCase) Create(in dto.CreateUsuarioRequest) (*dto.UsuarioResponse, error) {
	if in.PrimerNombre == "" || in.PrimerApellido == "" || in.Contrasena == "" {
		return nil, domain.ErrInvalidInput
	}
	handle := in.Usuario
	if handle == "" {
		handle = normalizar.Handle(in.PrimerNombre, in.PrimerApellido)
	}
	existing, _ := uc.repo.GetByHandle(handle)
	if existing != nil {
		return nil, domain.ErrHandleAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Contrasena), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	estadoID := in.EstadoID
	if estadoID == 0 {
		estadoID = entity.EstadoUsuarioActivo
	}
	u := &entity.Usuario{
		PrimerNombre:    in.PrimerNombre,
		SegundoNombre:   in.SegundoNombre,
		PrimerApellido:  in.PrimerApellido,
		SegundoApellido: in.SegundoApellido,
		Usuario:         handle,
		ContrasenaHash:  string(hash),
		RolID:           in.RolID,
		EstadoID:        estadoID,
	}
	if err := uc.repo.Create(u); err != nil {
		return nil, err
	}
	enriquecido, err := uc.repo.GetByID(u.ID)
	if err == nil && enriquecido != nil {
		u = enriquecido
	}
	return toUsuarioResponse(u), nil
}

// GetByID obtiene un usuario por ID. (nil, nil) si no existe.
func (uc *UsuarioUseCase) GetByID(id int64) (*dto.UsuarioResponse, error) {
	u, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, nil
	}
	return toUsuarioResponse(u), nil
}

// Update actualiza solo los campos presentes. Contrasena presente re-hashea.
func (uc *UsuarioUseCase) Update(id int64, in dto.UpdateUsuarioRequest) (*dto.UsuarioResponse, error) {
	u, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, nil
	}
	if in.PrimerNombre != nil {
		u.PrimerNombre = *in.PrimerNombre
	}
	if in.SegundoNombre != nil {
		u.SegundoNombre = *in.SegundoNombre
	}
	if in.PrimerApellido != nil {
		u.PrimerApellido = *in.PrimerApellido
	}
	if in.SegundoApellido != nil {
		u.SegundoApellido = *in.SegundoApellido
	}
	if in.Usuario != nil && *in.Usuario != u.Usuario {
		existing, _ := uc.repo.GetByHandle(*in.Usuario)
		if existing != nil {
			return nil, domain.ErrHandleAlreadyExists
		}
		u.Usuario = *in.Usuario
	}
	if in.Contrasena != nil {
		if *in.Contrasena == "" {
			return nil, domain.ErrInvalidInput
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Contrasena), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		u.ContrasenaHash = string(hash)
	}
	if in.RolID != nil {
		u.RolID = *in.RolID
	}
	if in.EstadoID != nil {
		u.EstadoID = *in.EstadoID
	}
	if err := uc.repo.Update(u); err != nil {
		return nil, err
	}
	enriquecido, err := uc.repo.GetByID(u.ID)
	if err == nil && enriquecido != nil {
		u = enriquecido
	}
	return toUsuarioResponse(u), nil
}

// List devuelve una página de usuarios.
func (uc *UsuarioUseCase) List(page dto.PageRequest) (*dto.UsuarioListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}
	total, err := uc.repo.Count()
	if err != nil {
		return nil, err
	}
	items := make([]dto.UsuarioResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *toUsuarioResponse(u))
	}
	return &dto.UsuarioListResponse{
		Items:      items,
		Paginacion: dto.NewPaginacion(page.Page, page.Limit, total),
	}, nil
}

// Delete elimina un usuario por ID.
func (uc *UsuarioUseCase) Delete(id int64) error {
	return uc.repo.Delete(id)
}

func toUsuarioResponse(u *entity.Usuario) *dto.UsuarioResponse {
	if u == nil {
		return nil
	}
	return &dto.UsuarioResponse{
		ID:              u.ID,
		PrimerNombre:    u.PrimerNombre,
		SegundoNombre:   u.SegundoNombre,
		PrimerApellido:  u.PrimerApellido,
		SegundoApellido: u.SegundoApellido,
		Usuario:         u.Usuario,
		RolID:           u.RolID,
		EstadoID:        u.EstadoID,
		FechaCreacion:   u.FechaCreacion,
		RolNombre:       u.RolNombre,
		EstadoNombre:    u.EstadoNombre,
	}
}
