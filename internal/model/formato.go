package model

// Formato describes how many units a product ships in.
type Formato struct {
	ID       int    `gorm:"primaryKey"`
	Nombre   string `gorm:"size:125;not null"`
	Unidades int    `gorm:"not null"`
}

func (Formato) TableName() string { return "formatos" }
