package model

type Presentacion struct {
	ID     int    `gorm:"primaryKey"`
	Nombre string `gorm:"size:125;not null"`
}

func (Presentacion) TableName() string { return "presentaciones" }
