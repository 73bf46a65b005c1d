package service_test

import (
	"context"
	"testing"
	"time"

	"packingapp/internal/dto"
	"packingapp/internal/model"
	"packingapp/internal/service"
	"packingapp/internal/validation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const usuarioDemo = "6f1c2a9e-3b7d-4c55-9a0e-2d4f8b1c7e31"

func buildPedidoSvc(now func() time.Time) (service.PedidoService, *memStore) {
	store := newMemStore()
	sets := service.PedidoSets{
		Pedidos:   newMemSet[model.Pedido](store),
		Estados:   newMemSet[model.EstadoPedido](store),
		Usuarios:  newMemSet[model.Usuario](store),
		Productos: newMemSet[model.Producto](store),
	}
	return service.NewPedidoService(sets, store, service.WithClock(now)), store
}

// seedPedidoRefs stores estado 1, producto 1 (formato of 12 units) and a user of company "Frutícola Sur".
func seedPedidoRefs(store *memStore) {
	empresaID := 1
	store.seed(
		&model.EstadoPedido{Nombre: "Pendiente"},
		&model.Empresa{Nombre: "Frutícola Sur", Rut: 765, Dv: "K"},
		&model.Producto{Nombre: "Jugo", FormatoID: 1, PresentacionID: 1, GrupoID: 1,
			Formato: &model.Formato{ID: 1, Nombre: "Caja", Unidades: 12}},
		&model.Usuario{ID: usuarioDemo, UserName: "ana", EmpresaID: &empresaID,
			Empresa: &model.Empresa{ID: 1, Nombre: "Frutícola Sur"}},
	)
}

func TestCrearPedido_FechasIguales(t *testing.T) {
	calls := 0
	clock := func() time.Time {
		calls++
		return fechaFija.Add(time.Duration(calls) * time.Hour)
	}
	svc, store := buildPedidoSvc(clock)
	seedPedidoRefs(store)

	created, err := svc.Crear(context.Background(), dto.CrearPedidoRequest{
		UsuarioID: usuarioDemo, EstadoPedidoID: 1, Cantidad: 3, ProductoID: 1,
	})
	require.NoError(t, err)
	require.NotNil(t, created)

	rows, _ := newMemSet[model.Pedido](store).All(context.Background())
	require.Len(t, rows, 1)
	p := rows[0]
	assert.Equal(t, p.FechaIngreso, p.FechaActualizacion)
	assert.True(t, p.Vigente)
	assert.NotEqual(t, uuid.Nil, p.ID)
	assert.Equal(t, 12, p.UnidadesDelFormato, "copied from the product's formato")

	assert.Equal(t, p.ID.String(), created.ID)
	assert.Equal(t, created.ID[:8], created.NumeroPedido)
	assert.Equal(t, created.FechaPedido, created.FechaEntrega)
	assert.Equal(t, "Empresa", created.EmpresaNombre)
	assert.Equal(t, "Frutícola Sur", created.EmpresaUsuario)
	assert.Equal(t, "Pendiente", created.EstadoNombre)
}

func TestCrearPedido_UnidadesExplicitas(t *testing.T) {
	svc, store := buildPedidoSvc(relojFijo)
	seedPedidoRefs(store)

	_, err := svc.Crear(context.Background(), dto.CrearPedidoRequest{
		UsuarioID: usuarioDemo, EstadoPedidoID: 1, Cantidad: 1, UnidadesDelFormato: 24, ProductoID: 1,
	})
	require.NoError(t, err)

	rows, _ := newMemSet[model.Pedido](store).All(context.Background())
	require.Len(t, rows, 1)
	assert.Equal(t, 24, rows[0].UnidadesDelFormato)
}

func TestCrearPedido_Validacion(t *testing.T) {
	svc, store := buildPedidoSvc(relojFijo)

	_, err := svc.Crear(context.Background(), dto.CrearPedidoRequest{UsuarioID: "x", Cantidad: 0})
	require.Error(t, err)
	verr, ok := validation.As(err)
	require.True(t, ok)
	assert.Equal(t, "uuid", verr.Map()["UsuarioID"])
	assert.Equal(t, "required", verr.Map()["Cantidad"])

	_, err = svc.Crear(context.Background(), dto.CrearPedidoRequest{
		UsuarioID: usuarioDemo, EstadoPedidoID: 1, Cantidad: 1, ProductoID: 1,
	})
	require.Error(t, err)
	verr, ok = validation.As(err)
	require.True(t, ok)
	assert.Len(t, verr.Fields, 3)
	assert.Zero(t, store.commits)
}

func TestObtenerPedido(t *testing.T) {
	svc, store := buildPedidoSvc(relojFijo)
	ctx := context.Background()

	id := uuid.MustParse("0a1b2c3d-4e5f-4a6b-8c7d-9e0f1a2b3c4d")
	store.seed(&model.Pedido{
		ID:                 id,
		FechaIngreso:       time.Date(2024, 1, 2, 8, 0, 0, 0, time.UTC),
		FechaActualizacion: time.Date(2024, 1, 5, 8, 0, 0, 0, time.UTC),
		Vigente:            false,
	})

	got, err := svc.ObtenerPorID(ctx, id.String())
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "0a1b2c3d", got.NumeroPedido)
	assert.Equal(t, "Empresa", got.EmpresaNombre)
	assert.Empty(t, got.EmpresaUsuario)
	assert.Equal(t, "Sin estado", got.EstadoNombre)
	assert.Equal(t, "02/01/2024", got.FechaPedido)
	assert.Equal(t, "05/01/2024", got.FechaEntrega)
	assert.False(t, got.Vigente)

	t.Run("id no parseable", func(t *testing.T) {
		got, err := svc.ObtenerPorID(ctx, "no-es-uuid")
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("id inexistente", func(t *testing.T) {
		got, err := svc.ObtenerPorID(ctx, uuid.NewString())
		assert.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestEliminarPedido(t *testing.T) {
	svc, store := buildPedidoSvc(relojFijo)
	seedPedidoRefs(store)
	ctx := context.Background()

	created, err := svc.Crear(ctx, dto.CrearPedidoRequest{UsuarioID: usuarioDemo, EstadoPedidoID: 1, Cantidad: 1, ProductoID: 1})
	require.NoError(t, err)

	ok, err := svc.Eliminar(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.Eliminar(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = svc.Eliminar(ctx, "basura")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestListarPedidosYEstados(t *testing.T) {
	svc, store := buildPedidoSvc(relojFijo)
	seedPedidoRefs(store)
	store.seed(&model.EstadoPedido{Nombre: "Despachado"})
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.Crear(ctx, dto.CrearPedidoRequest{UsuarioID: usuarioDemo, EstadoPedidoID: 1, Cantidad: 1, ProductoID: 1})
		require.NoError(t, err)
	}

	page, err := svc.Listar(ctx, 1, 2)
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, 2, page.TotalPages)
	assert.True(t, page.HasNextPage)

	estados, err := svc.ListarEstados(ctx)
	require.NoError(t, err)
	require.Len(t, estados, 2)
	assert.Equal(t, dto.EstadoPedidoResponse{ID: 2, Nombre: "Despachado"}, estados[1])
}
