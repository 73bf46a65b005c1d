package repository

import (
	"packingapp/internal/model"

	"gorm.io/gorm"
)

// Typed constructors fixing each collection's key, order and eager loads.

func NewEmpresaSet(db *gorm.DB) Set[model.Empresa] {
	return NewSet[model.Empresa](db)
}

func NewEstadoPedidoSet(db *gorm.DB) Set[model.EstadoPedido] {
	return NewSet[model.EstadoPedido](db)
}

func NewFormatoSet(db *gorm.DB) Set[model.Formato] {
	return NewSet[model.Formato](db)
}

func NewPresentacionSet(db *gorm.DB) Set[model.Presentacion] {
	return NewSet[model.Presentacion](db)
}

func NewGrupoSet(db *gorm.DB) Set[model.Grupo] {
	return NewSet[model.Grupo](db)
}

// NewProductoSet eager-loads Formato and Presentacion, both needed by the
// product description.
func NewProductoSet(db *gorm.DB) Set[model.Producto] {
	return NewSet[model.Producto](db, WithPreload("Formato"), WithPreload("Presentacion"))
}

// NewPedidoSet orders by intake date, then id, since uuids carry no insertion order.
func NewPedidoSet(db *gorm.DB) Set[model.Pedido] {
	return NewSet[model.Pedido](db,
		WithOrder("fecha_ingreso", false),
		WithOrder("id", false),
		WithPreload("EstadoPedido"),
		WithPreload("Usuario.Empresa"),
	)
}

func NewUsuarioSet(db *gorm.DB) Set[model.Usuario] {
	return NewSet[model.Usuario](db,
		WithOrder("normalized_user_name", false),
		WithOrder("id", false),
		WithPreload("Empresa"),
	)
}
