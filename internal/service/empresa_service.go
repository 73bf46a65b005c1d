package service

import (
	"context"
	"fmt"
	"time"

	"packingapp/internal/dto"
	"packingapp/internal/model"
	"packingapp/internal/repository"
	"packingapp/internal/validation"

	"github.com/rs/zerolog/log"
)

// EmpresaService defines business operations for customer companies.
type EmpresaService interface {
	Listar(ctx context.Context, pageNumber, pageSize int) (dto.PaginatedResult[dto.EmpresaResponse], error)
	// ObtenerPorID returns nil, nil when the company does not exist.
	ObtenerPorID(ctx context.Context, id int) (*dto.EmpresaResponse, error)
	Crear(ctx context.Context, req dto.CrearEmpresaRequest) (*dto.EmpresaResponse, error)
	// Eliminar returns false, nil when the company does not exist.
	Eliminar(ctx context.Context, id int) (bool, error)
}

type empresaService struct {
	empresas repository.Set[model.Empresa]
	store    repository.Store
	now      func() time.Time
}

func NewEmpresaService(empresas repository.Set[model.Empresa], store repository.Store, opts ...Option) EmpresaService {
	o := buildOptions(opts)
	return &empresaService{empresas: empresas, store: store, now: o.now}
}

// mapEmpresa derives the display fields; fecha is computed once per read.
func mapEmpresa(e model.Empresa, fecha string) dto.EmpresaResponse {
	return dto.EmpresaResponse{
		ID:            e.ID,
		Nombre:        e.Nombre,
		RazonSocial:   fmt.Sprintf("%d-%s", e.Rut, e.Dv),
		Email:         "",
		Telefono:      "",
		FechaCreacion: fecha,
	}
}

func (s *empresaService) projector() func(model.Empresa) dto.EmpresaResponse {
	fecha := s.now().Format(formatoFecha)
	return func(e model.Empresa) dto.EmpresaResponse { return mapEmpresa(e, fecha) }
}

func (s *empresaService) Listar(ctx context.Context, pageNumber, pageSize int) (dto.PaginatedResult[dto.EmpresaResponse], error) {
	return paginar(ctx, s.empresas, "empresas", pageNumber, pageSize, s.projector())
}

func (s *empresaService) ObtenerPorID(ctx context.Context, id int) (*dto.EmpresaResponse, error) {
	e, err := s.empresas.FindByKey(ctx, id)
	if err != nil {
		log.Error().Err(err).Int("empresa_id", id).Msg("Error al obtener empresa")
		return nil, err
	}
	if e == nil {
		return nil, nil
	}
	resp := s.projector()(*e)
	return &resp, nil
}

func (s *empresaService) Crear(ctx context.Context, req dto.CrearEmpresaRequest) (*dto.EmpresaResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	e := &model.Empresa{
		Nombre: req.Nombre,
		Rut:    req.Rut,
		Dv:     req.Dv,
	}
	uow := s.store.Begin()
	uow.Add(e)
	if err := uow.Persist(ctx); err != nil {
		log.Error().Err(err).Str("nombre", req.Nombre).Msg("Error al crear empresa")
		return nil, err
	}

	resp := s.projector()(*e)
	return &resp, nil
}

func (s *empresaService) Eliminar(ctx context.Context, id int) (bool, error) {
	e, err := s.empresas.FindByKey(ctx, id)
	if err != nil {
		log.Error().Err(err).Int("empresa_id", id).Msg("Error al eliminar empresa")
		return false, err
	}
	if e == nil {
		return false, nil
	}

	uow := s.store.Begin()
	uow.Remove(e)
	if err := uow.Persist(ctx); err != nil {
		log.Error().Err(err).Int("empresa_id", id).Msg("Error al eliminar empresa")
		return false, err
	}
	return true, nil
}
