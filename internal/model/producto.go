package model

// Producto references exactly one Formato, Presentacion and Grupo.
// The references are required; deleting a referenced row is rejected by the store.
type Producto struct {
	ID             int    `gorm:"primaryKey"`
	Nombre         string `gorm:"size:450;not null"`
	FormatoID      int    `gorm:"not null;index"`
	PresentacionID int    `gorm:"not null;index"`
	GrupoID        int    `gorm:"not null;index"`

	Formato      *Formato      `gorm:"foreignKey:FormatoID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Presentacion *Presentacion `gorm:"foreignKey:PresentacionID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Grupo        *Grupo        `gorm:"foreignKey:GrupoID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

func (Producto) TableName() string { return "productos" }
