// Package model holds the GORM persistence models. Each model mirrors one table.
package model

import "time"

// AccountModel mirrors the 'accounts' table.
type AccountModel struct {
	ID        uint      `gorm:"primaryKey"`
	Email     string    `gorm:"type:varchar(255);not null;uniqueIndex:uq_accounts_email"`
	Password  string    `gorm:"type:varchar(255);not null"`
	Role      string    `gorm:"type:varchar(20);not null;check:chk_accounts_role,role IN ('Candidato','Empresa','Administrador')"`
	Status    string    `gorm:"type:varchar(20);not null;default:Activo"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}
