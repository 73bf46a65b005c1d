package model

// Grupo clusters products; UrlGrupo optionally links to an external catalogue page.
type Grupo struct {
	ID       int     `gorm:"primaryKey"`
	Nombre   string  `gorm:"size:125;not null"`
	UrlGrupo *string `gorm:"size:750"`
}

func (Grupo) TableName() string { return "grupos" }
