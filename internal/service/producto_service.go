package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"packingapp/internal/dto"
	"packingapp/internal/model"
	"packingapp/internal/repository"
	"packingapp/internal/validation"

	"github.com/rs/zerolog/log"
)

// ProductoService covers products and their lookup tables: formatos,
// presentaciones and grupos.
type ProductoService interface {
	ListarProductos(ctx context.Context, pageNumber, pageSize int) (dto.PaginatedResult[dto.ProductoResponse], error)
	ListarFormatos(ctx context.Context, pageNumber, pageSize int) (dto.PaginatedResult[dto.FormatoResponse], error)
	ListarPresentaciones(ctx context.Context, pageNumber, pageSize int) (dto.PaginatedResult[dto.PresentacionResponse], error)
	ListarGrupos(ctx context.Context, pageNumber, pageSize int) (dto.PaginatedResult[dto.GrupoResponse], error)

	// Full lists for selection widgets.
	ListaFormatos(ctx context.Context) ([]dto.FormatoResponse, error)
	ListaPresentaciones(ctx context.Context) ([]dto.PresentacionResponse, error)
	ListaGrupos(ctx context.Context) ([]dto.GrupoResponse, error)

	ObtenerProductoPorID(ctx context.Context, id int) (*dto.ProductoResponse, error)
	ObtenerFormatoPorID(ctx context.Context, id int) (*dto.FormatoResponse, error)
	ObtenerPresentacionPorID(ctx context.Context, id int) (*dto.PresentacionResponse, error)
	ObtenerGrupoPorID(ctx context.Context, id int) (*dto.GrupoResponse, error)

	CrearProducto(ctx context.Context, req dto.CrearProductoRequest) (*dto.ProductoResponse, error)
	CrearFormato(ctx context.Context, req dto.CrearFormatoRequest) (*dto.FormatoResponse, error)
	CrearPresentacion(ctx context.Context, req dto.CrearPresentacionRequest) (*dto.PresentacionResponse, error)
	CrearGrupo(ctx context.Context, req dto.CrearGrupoRequest) (*dto.GrupoResponse, error)

	EliminarProducto(ctx context.Context, id int) (bool, error)
	EliminarFormato(ctx context.Context, id int) (bool, error)
	EliminarPresentacion(ctx context.Context, id int) (bool, error)
	EliminarGrupo(ctx context.Context, id int) (bool, error)
}

// CatalogoSets groups the collections ProductoService reads from.
type CatalogoSets struct {
	Productos      repository.Set[model.Producto]
	Formatos       repository.Set[model.Formato]
	Presentaciones repository.Set[model.Presentacion]
	Grupos         repository.Set[model.Grupo]
}

type productoService struct {
	sets  CatalogoSets
	store repository.Store
	cache catalogoCache
	now   func() time.Time
}

func NewProductoService(sets CatalogoSets, store repository.Store, opts ...Option) ProductoService {
	o := buildOptions(opts)
	return &productoService{
		sets:  sets,
		store: store,
		cache: catalogoCache{rdb: o.rdb, ttl: o.cacheTTL},
		now:   o.now,
	}
}

// ── Projections ──────────────────────────────────────────────────────────────

func mapProducto(p model.Producto, fecha string) dto.ProductoResponse {
	var formato, presentacion string
	if p.Formato != nil {
		formato = p.Formato.Nombre
	}
	if p.Presentacion != nil {
		presentacion = p.Presentacion.Nombre
	}
	return dto.ProductoResponse{
		ID:             p.ID,
		Nombre:         p.Nombre,
		Descripcion:    fmt.Sprintf("Formato: %s, Presentación: %s", formato, presentacion),
		CodigoProducto: strconv.Itoa(p.ID),
		FechaCreacion:  fecha,
	}
}

func mapFormato(f model.Formato, fecha string) dto.FormatoResponse {
	return dto.FormatoResponse{
		ID:            f.ID,
		Nombre:        f.Nombre,
		Unidades:      f.Unidades,
		FechaCreacion: fecha,
	}
}

func mapPresentacion(p model.Presentacion, fecha string) dto.PresentacionResponse {
	return dto.PresentacionResponse{
		ID:            p.ID,
		Nombre:        p.Nombre,
		FechaCreacion: fecha,
	}
}

func mapGrupo(g model.Grupo, fecha string) dto.GrupoResponse {
	resp := dto.GrupoResponse{
		ID:            g.ID,
		Nombre:        g.Nombre,
		FechaCreacion: fecha,
	}
	if g.UrlGrupo != nil {
		resp.UrlGrupo = *g.UrlGrupo
	}
	return resp
}

// con fixes the creation date of one read before projecting.
func con[T, D any](now func() time.Time, m func(T, string) D) func(T) D {
	fecha := now().Format(formatoFecha)
	return func(v T) D { return m(v, fecha) }
}

// ── Listings ─────────────────────────────────────────────────────────────────

func (s *productoService) ListarProductos(ctx context.Context, pageNumber, pageSize int) (dto.PaginatedResult[dto.ProductoResponse], error) {
	return paginar(ctx, s.sets.Productos, "productos", pageNumber, pageSize, con(s.now, mapProducto))
}

func (s *productoService) ListarFormatos(ctx context.Context, pageNumber, pageSize int) (dto.PaginatedResult[dto.FormatoResponse], error) {
	return paginar(ctx, s.sets.Formatos, "formatos", pageNumber, pageSize, con(s.now, mapFormato))
}

func (s *productoService) ListarPresentaciones(ctx context.Context, pageNumber, pageSize int) (dto.PaginatedResult[dto.PresentacionResponse], error) {
	return paginar(ctx, s.sets.Presentaciones, "presentaciones", pageNumber, pageSize, con(s.now, mapPresentacion))
}

func (s *productoService) ListarGrupos(ctx context.Context, pageNumber, pageSize int) (dto.PaginatedResult[dto.GrupoResponse], error) {
	return paginar(ctx, s.sets.Grupos, "grupos", pageNumber, pageSize, con(s.now, mapGrupo))
}

func (s *productoService) ListaFormatos(ctx context.Context) ([]dto.FormatoResponse, error) {
	rows, err := cachedAll(ctx, s.cache, cacheKeyFormatos, s.sets.Formatos)
	if err != nil {
		return nil, err
	}
	return proyectar(rows, con(s.now, mapFormato)), nil
}

func (s *productoService) ListaPresentaciones(ctx context.Context) ([]dto.PresentacionResponse, error) {
	rows, err := cachedAll(ctx, s.cache, cacheKeyPresentaciones, s.sets.Presentaciones)
	if err != nil {
		return nil, err
	}
	return proyectar(rows, con(s.now, mapPresentacion)), nil
}

func (s *productoService) ListaGrupos(ctx context.Context) ([]dto.GrupoResponse, error) {
	rows, err := cachedAll(ctx, s.cache, cacheKeyGrupos, s.sets.Grupos)
	if err != nil {
		return nil, err
	}
	return proyectar(rows, con(s.now, mapGrupo)), nil
}

// ── Lookups ──────────────────────────────────────────────────────────────────

// obtener loads one row by key and projects it; nil, nil when absent.
func obtener[T, D any](ctx context.Context, set repository.Set[T], recurso string, id int, project func(T) D) (*D, error) {
	row, err := set.FindByKey(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("recurso", recurso).Int("id", id).Msg("Error al obtener registro")
		return nil, err
	}
	if row == nil {
		return nil, nil
	}
	resp := project(*row)
	return &resp, nil
}

func (s *productoService) ObtenerProductoPorID(ctx context.Context, id int) (*dto.ProductoResponse, error) {
	return obtener(ctx, s.sets.Productos, "productos", id, con(s.now, mapProducto))
}

func (s *productoService) ObtenerFormatoPorID(ctx context.Context, id int) (*dto.FormatoResponse, error) {
	return obtener(ctx, s.sets.Formatos, "formatos", id, con(s.now, mapFormato))
}

func (s *productoService) ObtenerPresentacionPorID(ctx context.Context, id int) (*dto.PresentacionResponse, error) {
	return obtener(ctx, s.sets.Presentaciones, "presentaciones", id, con(s.now, mapPresentacion))
}

func (s *productoService) ObtenerGrupoPorID(ctx context.Context, id int) (*dto.GrupoResponse, error) {
	return obtener(ctx, s.sets.Grupos, "grupos", id, con(s.now, mapGrupo))
}

// ── Creation ─────────────────────────────────────────────────────────────────

// CrearProducto checks that the three references exist before inserting, so a
// dangling id is reported per field instead of as a constraint violation.
func (s *productoService) CrearProducto(ctx context.Context, req dto.CrearProductoRequest) (*dto.ProductoResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	formato, err := s.sets.Formatos.FindByKey(ctx, req.FormatoID)
	if err != nil {
		log.Error().Err(err).Int("formato_id", req.FormatoID).Msg("Error al crear producto")
		return nil, err
	}
	presentacion, err := s.sets.Presentaciones.FindByKey(ctx, req.PresentacionID)
	if err != nil {
		log.Error().Err(err).Int("presentacion_id", req.PresentacionID).Msg("Error al crear producto")
		return nil, err
	}
	grupo, err := s.sets.Grupos.FindByKey(ctx, req.GrupoID)
	if err != nil {
		log.Error().Err(err).Int("grupo_id", req.GrupoID).Msg("Error al crear producto")
		return nil, err
	}

	verr := &validation.Errors{Prefix: "Error de validacion"}
	if formato == nil {
		verr.Add("FormatoID", "not_found", "el formato no existe")
	}
	if presentacion == nil {
		verr.Add("PresentacionID", "not_found", "la presentación no existe")
	}
	if grupo == nil {
		verr.Add("GrupoID", "not_found", "el grupo no existe")
	}
	if !verr.Empty() {
		return nil, verr
	}

	p := &model.Producto{
		Nombre:         req.Nombre,
		FormatoID:      req.FormatoID,
		PresentacionID: req.PresentacionID,
		GrupoID:        req.GrupoID,
	}
	uow := s.store.Begin()
	uow.Add(p)
	if err := uow.Persist(ctx); err != nil {
		log.Error().Err(err).Str("nombre", req.Nombre).Msg("Error al crear producto")
		return nil, err
	}

	p.Formato, p.Presentacion, p.Grupo = formato, presentacion, grupo
	resp := mapProducto(*p, s.now().Format(formatoFecha))
	return &resp, nil
}

func (s *productoService) CrearFormato(ctx context.Context, req dto.CrearFormatoRequest) (*dto.FormatoResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	f := &model.Formato{Nombre: req.Nombre, Unidades: req.Unidades}
	if err := s.insertar(ctx, f, "formato", req.Nombre); err != nil {
		return nil, err
	}
	s.cache.invalidate(ctx, cacheKeyFormatos)
	resp := mapFormato(*f, s.now().Format(formatoFecha))
	return &resp, nil
}

func (s *productoService) CrearPresentacion(ctx context.Context, req dto.CrearPresentacionRequest) (*dto.PresentacionResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	p := &model.Presentacion{Nombre: req.Nombre}
	if err := s.insertar(ctx, p, "presentacion", req.Nombre); err != nil {
		return nil, err
	}
	s.cache.invalidate(ctx, cacheKeyPresentaciones)
	resp := mapPresentacion(*p, s.now().Format(formatoFecha))
	return &resp, nil
}

func (s *productoService) CrearGrupo(ctx context.Context, req dto.CrearGrupoRequest) (*dto.GrupoResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	g := &model.Grupo{Nombre: req.Nombre, UrlGrupo: req.UrlGrupo}
	if err := s.insertar(ctx, g, "grupo", req.Nombre); err != nil {
		return nil, err
	}
	s.cache.invalidate(ctx, cacheKeyGrupos)
	resp := mapGrupo(*g, s.now().Format(formatoFecha))
	return &resp, nil
}

func (s *productoService) insertar(ctx context.Context, entity any, recurso, nombre string) error {
	uow := s.store.Begin()
	uow.Add(entity)
	if err := uow.Persist(ctx); err != nil {
		log.Error().Err(err).Str("recurso", recurso).Str("nombre", nombre).Msg("Error al crear registro")
		return err
	}
	return nil
}

// ── Deletion ─────────────────────────────────────────────────────────────────

// eliminar removes the row with the given key. A row still referenced by
// another one is rejected by the store and surfaces as an error.
func eliminar[T any](ctx context.Context, store repository.Store, set repository.Set[T], recurso string, id int) (bool, error) {
	row, err := set.FindByKey(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("recurso", recurso).Int("id", id).Msg("Error al eliminar registro")
		return false, err
	}
	if row == nil {
		return false, nil
	}

	uow := store.Begin()
	uow.Remove(row)
	if err := uow.Persist(ctx); err != nil {
		log.Error().Err(err).Str("recurso", recurso).Int("id", id).Msg("Error al eliminar registro")
		return false, err
	}
	return true, nil
}

func (s *productoService) EliminarProducto(ctx context.Context, id int) (bool, error) {
	return eliminar(ctx, s.store, s.sets.Productos, "productos", id)
}

func (s *productoService) EliminarFormato(ctx context.Context, id int) (bool, error) {
	ok, err := eliminar(ctx, s.store, s.sets.Formatos, "formatos", id)
	if ok {
		s.cache.invalidate(ctx, cacheKeyFormatos)
	}
	return ok, err
}

func (s *productoService) EliminarPresentacion(ctx context.Context, id int) (bool, error) {
	ok, err := eliminar(ctx, s.store, s.sets.Presentaciones, "presentaciones", id)
	if ok {
		s.cache.invalidate(ctx, cacheKeyPresentaciones)
	}
	return ok, err
}

func (s *productoService) EliminarGrupo(ctx context.Context, id int) (bool, error) {
	ok, err := eliminar(ctx, s.store, s.sets.Grupos, "grupos", id)
	if ok {
		s.cache.invalidate(ctx, cacheKeyGrupos)
	}
	return ok, err
}
