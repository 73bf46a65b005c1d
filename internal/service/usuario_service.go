package service

import (
	"context"
	"time"

	"packingapp/internal/dto"
	"packingapp/internal/identity"
	"packingapp/internal/model"
	"packingapp/internal/repository"
	"packingapp/internal/validation"

	"github.com/rs/zerolog/log"
)

// UsuarioService exposes user accounts. Account creation is delegated to the
// identity provider, which owns hashing and uniqueness.
type UsuarioService interface {
	Listar(ctx context.Context, pageNumber, pageSize int) (dto.PaginatedResult[dto.UsuarioResponse], error)
	ObtenerPorID(ctx context.Context, id string) (*dto.UsuarioResponse, error)
	Crear(ctx context.Context, req dto.CrearUsuarioRequest) (*dto.UsuarioResponse, error)
	Eliminar(ctx context.Context, id string) (bool, error)
}

type usuarioService struct {
	usuarios repository.Set[model.Usuario]
	store    repository.Store
	identity identity.Provider
	now      func() time.Time
}

func NewUsuarioService(usuarios repository.Set[model.Usuario], store repository.Store, provider identity.Provider, opts ...Option) UsuarioService {
	o := buildOptions(opts)
	return &usuarioService{usuarios: usuarios, store: store, identity: provider, now: o.now}
}

// mapUsuario evaluates the lockout against now, taken once per read.
func mapUsuario(u model.Usuario, now time.Time) dto.UsuarioResponse {
	var email string
	if u.Email != nil {
		email = *u.Email
	}
	registro := "Pendiente"
	if u.EmailConfirmed {
		registro = "Confirmado"
	}
	return dto.UsuarioResponse{
		ID:            u.ID,
		NombreUsuario: u.UserName,
		Email:         email,
		EstaActivo:    u.LockoutEnd == nil || !u.LockoutEnd.After(now.UTC()),
		FechaRegistro: registro,
	}
}

func (s *usuarioService) projector() func(model.Usuario) dto.UsuarioResponse {
	now := s.now()
	return func(u model.Usuario) dto.UsuarioResponse { return mapUsuario(u, now) }
}

func (s *usuarioService) Listar(ctx context.Context, pageNumber, pageSize int) (dto.PaginatedResult[dto.UsuarioResponse], error) {
	return paginar(ctx, s.usuarios, "usuarios", pageNumber, pageSize, s.projector())
}

func (s *usuarioService) ObtenerPorID(ctx context.Context, id string) (*dto.UsuarioResponse, error) {
	u, err := s.usuarios.FindByKey(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("usuario_id", id).Msg("Error al obtener usuario")
		return nil, err
	}
	if u == nil {
		return nil, nil
	}
	resp := s.projector()(*u)
	return &resp, nil
}

// Crear returns the provider's *validation.Errors untouched so each failed
// rule stays inspectable; its Error() reads "Error al crear usuario: ...".
func (s *usuarioService) Crear(ctx context.Context, req dto.CrearUsuarioRequest) (*dto.UsuarioResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	u, err := s.identity.CreateAccount(ctx, req.Email, req.NombreUsuario, req.Password)
	if err != nil {
		if _, ok := validation.As(err); !ok {
			log.Error().Err(err).Str("nombre_usuario", req.NombreUsuario).Msg("Error al crear usuario")
		}
		return nil, err
	}
	resp := s.projector()(*u)
	return &resp, nil
}

func (s *usuarioService) Eliminar(ctx context.Context, id string) (bool, error) {
	u, err := s.usuarios.FindByKey(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("usuario_id", id).Msg("Error al eliminar usuario")
		return false, err
	}
	if u == nil {
		return false, nil
	}

	uow := s.store.Begin()
	uow.Remove(u)
	if err := uow.Persist(ctx); err != nil {
		log.Error().Err(err).Str("usuario_id", id).Msg("Error al eliminar usuario")
		return false, err
	}
	return true, nil
}
