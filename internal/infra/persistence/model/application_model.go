package model

import "time"

// ApplicationModel mirrors the 'applications' table.
// A candidate applies to a vacancy at most once (uq_applications_candidate_vacancy).
type ApplicationModel struct {
	ID          uint                   `gorm:"primaryKey"`
	CandidateID uint                   `gorm:"not null;uniqueIndex:uq_applications_candidate_vacancy,priority:1"`
	Candidate   *CandidateProfileModel `gorm:"constraint:OnDelete:CASCADE"`
	VacancyID   uint                   `gorm:"not null;uniqueIndex:uq_applications_candidate_vacancy,priority:2"`
	Vacancy     *VacancyModel          `gorm:"constraint:OnDelete:CASCADE"`
	SubmittedAt time.Time              `gorm:"autoCreateTime"`
	State       string                 `gorm:"type:varchar(20);not null;default:Recibida;check:chk_applications_state,state IN ('Recibida','Revision','Entrevista','Oferta','Rechazada')"`
}

// TableName explicitly sets the table name for GORM.
func (ApplicationModel) TableName() string {
	return "applications"
}

// InternalNoteModel mirrors the 'internal_notes' table.
type InternalNoteModel struct {
	ID            uint                  `gorm:"primaryKey"`
	ApplicationID uint                  `gorm:"not null;index:idx_internal_notes_application"`
	Application   *ApplicationModel     `gorm:"constraint:OnDelete:CASCADE"`
	EmployerID    uint                  `gorm:"not null"`
	Employer      *EmployerProfileModel `gorm:"constraint:OnDelete:CASCADE"`
	Content       string                `gorm:"type:text;not null"`
	CreatedAt     time.Time             `gorm:"autoCreateTime"`
}

// TableName explicitly sets the table name for GORM.
func (InternalNoteModel) TableName() string {
	return "internal_notes"
}

// InterviewModel mirrors the 'interviews' table.
type InterviewModel struct {
	ID            uint              `gorm:"primaryKey"`
	ApplicationID uint              `gorm:"not null;index:idx_interviews_application"`
	Application   *ApplicationModel `gorm:"constraint:OnDelete:CASCADE"`
	ScheduledAt   time.Time         `gorm:"not null"`
	MeetingLink   string            `gorm:"type:varchar(500)"`
	State         string            `gorm:"type:varchar(20);not null;default:Propuesta;check:chk_interviews_state,state IN ('Propuesta','Confirmada','Reprogramada')"`
}

// TableName explicitly sets the table name for GORM.
func (InterviewModel) TableName() string {
	return "interviews"
}

// All lists every model in dependency order, for schema migration.
func All() []any {
	return []any{
		&AccountModel{},
		&CandidateProfileModel{},
		&EmployerProfileModel{},
		&AdminProfileModel{},
		&VacancyModel{},
		&ApplicationModel{},
		&InternalNoteModel{},
		&InterviewModel{},
	}
}
