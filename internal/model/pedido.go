package model

import (
	"time"

	"github.com/google/uuid"
)

// Pedido is an order placed by a user for a product.
// ID is assigned once at creation. UnidadesDelFormato snapshots Formato.Unidades
// at the time the order was taken. Vigente is stored and exposed but never
// used to filter reads.
type Pedido struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	FechaIngreso       time.Time `gorm:"not null"`
	FechaActualizacion time.Time `gorm:"not null"`
	Vigente            bool      `gorm:"not null"`
	EstadoPedidoID     int       `gorm:"not null;index"`
	Cantidad           int       `gorm:"not null"`
	UnidadesDelFormato int       `gorm:"not null"`
	UsuarioID          string    `gorm:"type:varchar(36);not null;index"`
	ProductoID         int       `gorm:"not null;index"`

	EstadoPedido *EstadoPedido `gorm:"foreignKey:EstadoPedidoID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Usuario      *Usuario      `gorm:"foreignKey:UsuarioID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Producto     *Producto     `gorm:"foreignKey:ProductoID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

func (Pedido) TableName() string { return "pedidos" }
