package model

// Empresa is a customer company. Rut and Dv together form its tax id.
type Empresa struct {
	ID     int    `gorm:"primaryKey"`
	Nombre string `gorm:"size:125;not null"`
	Rut    int    `gorm:"not null"`
	// Dv is the single check character of the tax id ("0"-"9" or "K").
	Dv string `gorm:"size:1;not null"`
}

func (Empresa) TableName() string { return "empresas" }
