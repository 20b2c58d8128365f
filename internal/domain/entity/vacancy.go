package entity

import "time"

// VacancyState is the publication state of a vacancy.
type VacancyState string

const (
	VacancyStateDraft     VacancyState = "Borrador"
	VacancyStatePublished VacancyState = "Publicada"
	VacancyStateClosed    VacancyState = "Cerrada"
)

// IsValid checks if the VacancyState is a valid value.
func (s VacancyState) IsValid() bool {
	switch s {
	case VacancyStateDraft, VacancyStatePublished, VacancyStateClosed:
		return true
	default:
		return false
	}
}

// Vacancy is a job posting owned by an employer profile.
type Vacancy struct {
	ID          uint         `json:"id"`
	EmployerID  uint         `json:"employer_id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Salary      *float64     `json:"salary"`
	WorkMode    string       `json:"work_mode"`
	State       VacancyState `json:"state"`
	CreatedAt   time.Time    `json:"created_at"`
}

// VacancySummary is a vacancy enriched for listings.
type VacancySummary struct {
	Vacancy
	EmployerName     string `json:"employer_name"`
	ApplicationCount int64  `json:"num_postulaciones"`
}

// VacancyPatch lists the vacancy fields to change. Nil fields stay untouched.
type VacancyPatch struct {
	Title       *string
	Description *string
	Salary      *float64
	WorkMode    *string
	State       *VacancyState
}

// IsEmpty reports whether the patch changes nothing.
func (p *VacancyPatch) IsEmpty() bool {
	return p == nil || (p.Title == nil && p.Description == nil && p.Salary == nil &&
		p.WorkMode == nil && p.State == nil)
}
