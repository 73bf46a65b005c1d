package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearPedidoRequest struct {
	UsuarioID          string `json:"usuario_id"           validate:"required,uuid"`
	EstadoPedidoID     int    `json:"estado_pedido_id"     validate:"required,min=1"`
	Cantidad           int    `json:"cantidad"             validate:"required,min=1"`
	UnidadesDelFormato int    `json:"unidades_del_formato" validate:"min=0"`
	ProductoID         int    `json:"producto_id"          validate:"required,min=1"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type PedidoResponse struct {
	ID string `json:"id"`
	// NumeroPedido is the first 8 characters of the order id.
	NumeroPedido  string `json:"numero_pedido"`
	EmpresaNombre string `json:"empresa_nombre"`
	// EmpresaUsuario is the company of the order's owner, empty when unknown.
	EmpresaUsuario string `json:"empresa_usuario"`
	EstadoNombre   string `json:"estado_nombre"`
	FechaPedido    string `json:"fecha_pedido"`
	FechaEntrega   string `json:"fecha_entrega"`
	Vigente        bool   `json:"vigente"`
}

type EstadoPedidoResponse struct {
	ID     int    `json:"id"`
	Nombre string `json:"nombre"`
}
