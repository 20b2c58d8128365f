package model

import "time"

// VacancyModel mirrors the 'vacancies' table. EmployerID references employer_profiles.id.
type VacancyModel struct {
	ID          uint                  `gorm:"primaryKey"`
	EmployerID  uint                  `gorm:"not null;index:idx_vacancies_employer"`
	Employer    *EmployerProfileModel `gorm:"constraint:OnDelete:CASCADE"`
	Title       string                `gorm:"type:varchar(200);not null"`
	Description string                `gorm:"type:text"`
	Salary      *float64              `gorm:"type:numeric(10,2)"`
	WorkMode    string                `gorm:"type:varchar(50)"`
	State       string                `gorm:"type:varchar(20);not null;default:Borrador;check:chk_vacancies_state,state IN ('Borrador','Publicada','Cerrada')"`
	CreatedAt   time.Time             `gorm:"autoCreateTime"`
}

// TableName explicitly sets the table name for GORM.
func (VacancyModel) TableName() string {
	return "vacancies"
}
