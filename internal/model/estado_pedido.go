package model

// EstadoPedido is a lookup row describing where an order stands.
type EstadoPedido struct {
	ID     int    `gorm:"primaryKey"`
	Nombre string `gorm:"size:50;not null"`
}

func (EstadoPedido) TableName() string { return "estados_pedido" }
