package service

import (
	"context"
	"time"

	"packingapp/internal/dto"
	"packingapp/internal/model"
	"packingapp/internal/repository"
	"packingapp/internal/validation"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	empresaPorDefecto = "Empresa"
	sinEstado         = "Sin estado"
)

// PedidoService defines business operations for orders.
type PedidoService interface {
	Listar(ctx context.Context, pageNumber, pageSize int) (dto.PaginatedResult[dto.PedidoResponse], error)
	// ObtenerPorID returns nil, nil when id is not a uuid or no order has it.
	ObtenerPorID(ctx context.Context, id string) (*dto.PedidoResponse, error)
	Crear(ctx context.Context, req dto.CrearPedidoRequest) (*dto.PedidoResponse, error)
	// Eliminar returns false, nil when id is not a uuid or no order has it.
	Eliminar(ctx context.Context, id string) (bool, error)
	ListarEstados(ctx context.Context) ([]dto.EstadoPedidoResponse, error)
}

// PedidoSets groups the collections PedidoService reads from.
type PedidoSets struct {
	Pedidos   repository.Set[model.Pedido]
	Estados   repository.Set[model.EstadoPedido]
	Usuarios  repository.Set[model.Usuario]
	Productos repository.Set[model.Producto]
}

type pedidoService struct {
	sets  PedidoSets
	store repository.Store
	now   func() time.Time
}

func NewPedidoService(sets PedidoSets, store repository.Store, opts ...Option) PedidoService {
	o := buildOptions(opts)
	return &pedidoService{sets: sets, store: store, now: o.now}
}

func mapPedido(p model.Pedido) dto.PedidoResponse {
	id := p.ID.String()
	var empresaUsuario string
	if p.Usuario != nil && p.Usuario.Empresa != nil {
		empresaUsuario = p.Usuario.Empresa.Nombre
	}
	estado := sinEstado
	if p.EstadoPedido != nil {
		estado = p.EstadoPedido.Nombre
	}
	return dto.PedidoResponse{
		ID:            id,
		NumeroPedido:  id[:8],
		EmpresaNombre:  empresaPorDefecto,
		EmpresaUsuario: empresaUsuario,
		EstadoNombre:   estado,
		FechaPedido:    p.FechaIngreso.Format(formatoFecha),
		FechaEntrega:   p.FechaActualizacion.Format(formatoFecha),
		Vigente:        p.Vigente,
	}
}

func (s *pedidoService) Listar(ctx context.Context, pageNumber, pageSize int) (dto.PaginatedResult[dto.PedidoResponse], error) {
	return paginar(ctx, s.sets.Pedidos, "pedidos", pageNumber, pageSize, mapPedido)
}

func (s *pedidoService) ObtenerPorID(ctx context.Context, id string) (*dto.PedidoResponse, error) {
	pid, err := uuid.Parse(id)
	if err != nil {
		return nil, nil
	}
	p, err := s.sets.Pedidos.FindByKey(ctx, pid)
	if err != nil {
		log.Error().Err(err).Str("pedido_id", id).Msg("Error al obtener pedido")
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	resp := mapPedido(*p)
	return &resp, nil
}

// Crear assigns a fresh id and stamps both dates with the same instant.
// When UnidadesDelFormato is zero it is copied from the product's formato.
func (s *pedidoService) Crear(ctx context.Context, req dto.CrearPedidoRequest) (*dto.PedidoResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	estado, err := s.sets.Estados.FindByKey(ctx, req.EstadoPedidoID)
	if err != nil {
		log.Error().Err(err).Int("estado_pedido_id", req.EstadoPedidoID).Msg("Error al crear pedido")
		return nil, err
	}
	usuario, err := s.sets.Usuarios.FindByKey(ctx, req.UsuarioID)
	if err != nil {
		log.Error().Err(err).Str("usuario_id", req.UsuarioID).Msg("Error al crear pedido")
		return nil, err
	}
	producto, err := s.sets.Productos.FindByKey(ctx, req.ProductoID)
	if err != nil {
		log.Error().Err(err).Int("producto_id", req.ProductoID).Msg("Error al crear pedido")
		return nil, err
	}

	verr := &validation.Errors{Prefix: "Error de validacion"}
	if estado == nil {
		verr.Add("EstadoPedidoID", "not_found", "el estado de pedido no existe")
	}
	if usuario == nil {
		verr.Add("UsuarioID", "not_found", "el usuario no existe")
	}
	if producto == nil {
		verr.Add("ProductoID", "not_found", "el producto no existe")
	}
	if !verr.Empty() {
		return nil, verr
	}

	unidades := req.UnidadesDelFormato
	if unidades == 0 && producto.Formato != nil {
		unidades = producto.Formato.Unidades
	}

	now := s.now()
	p := &model.Pedido{
		ID:                 uuid.New(),
		FechaIngreso:       now,
		FechaActualizacion: now,
		Vigente:            true,
		EstadoPedidoID:     req.EstadoPedidoID,
		Cantidad:           req.Cantidad,
		UnidadesDelFormato: unidades,
		UsuarioID:          req.UsuarioID,
		ProductoID:         req.ProductoID,
	}
	uow := s.store.Begin()
	uow.Add(p)
	if err := uow.Persist(ctx); err != nil {
		log.Error().Err(err).Str("pedido_id", p.ID.String()).Msg("Error al crear pedido")
		return nil, err
	}

	p.EstadoPedido, p.Usuario, p.Producto = estado, usuario, producto
	resp := mapPedido(*p)
	return &resp, nil
}

func (s *pedidoService) Eliminar(ctx context.Context, id string) (bool, error) {
	pid, err := uuid.Parse(id)
	if err != nil {
		return false, nil
	}
	p, err := s.sets.Pedidos.FindByKey(ctx, pid)
	if err != nil {
		log.Error().Err(err).Str("pedido_id", id).Msg("Error al eliminar pedido")
		return false, err
	}
	if p == nil {
		return false, nil
	}

	uow := s.store.Begin()
	uow.Remove(p)
	if err := uow.Persist(ctx); err != nil {
		log.Error().Err(err).Str("pedido_id", id).Msg("Error al eliminar pedido")
		return false, err
	}
	return true, nil
}

func (s *pedidoService) ListarEstados(ctx context.Context) ([]dto.EstadoPedidoResponse, error) {
	rows, err := s.sets.Estados.All(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Error al listar estados de pedido")
		return nil, err
	}
	return proyectar(rows, func(e model.EstadoPedido) dto.EstadoPedidoResponse {
		return dto.EstadoPedidoResponse{ID: e.ID, Nombre: e.Nombre}
	}), nil
}
