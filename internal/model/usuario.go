package model

import "time"

// Usuario is the identity record of an account, extended with the owning
// company and an active flag.
// NormalizedUserName and NormalizedEmail hold upper-cased copies so that
// uniqueness is case-insensitive.
type Usuario struct {
	ID                 string  `gorm:"type:varchar(36);primaryKey"`
	UserName           string  `gorm:"size:256;not null"`
	NormalizedUserName string  `gorm:"size:256;uniqueIndex;not null"`
	Email              *string `gorm:"size:256"`
	NormalizedEmail    *string `gorm:"size:256;uniqueIndex"`
	EmailConfirmed     bool    `gorm:"not null;default:false"`
	PasswordHash       string  `gorm:"not null"`
	SecurityStamp      string  `gorm:"size:36"`
	// LockoutEnd nil or in the past means the account may sign in.
	LockoutEnd        *time.Time
	LockoutEnabled    bool `gorm:"not null;default:true"`
	AccessFailedCount int  `gorm:"not null;default:0"`

	EmpresaID *int `gorm:"index"`
	Vigente   bool `gorm:"not null;default:true"`

	Empresa *Empresa `gorm:"foreignKey:EmpresaID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

func (Usuario) TableName() string { return "usuarios" }
