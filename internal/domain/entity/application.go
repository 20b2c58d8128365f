package entity

import "time"

// ApplicationState tracks a candidate's application through hiring.
type ApplicationState string

const (
	ApplicationStateReceived  ApplicationState = "Recibida"
	ApplicationStateReview    ApplicationState = "Revision"
	ApplicationStateInterview ApplicationState = "Entrevista"
	ApplicationStateOffer     ApplicationState = "Oferta"
	ApplicationStateRejected  ApplicationState = "Rechazada"
)

// IsValid checks if the ApplicationState is a valid value.
func (s ApplicationState) IsValid() bool {
	switch s {
	case ApplicationStateReceived, ApplicationStateReview, ApplicationStateInterview,
		ApplicationStateOffer, ApplicationStateRejected:
		return true
	default:
		return false
	}
}

// Application is a candidate's submission to one vacancy. A candidate applies to a vacancy at most once.
type Application struct {
	ID          uint             `json:"id"`
	CandidateID uint             `json:"candidate_id"`
	VacancyID   uint             `json:"vacancy_id"`
	SubmittedAt time.Time        `json:"submitted_at"`
	State       ApplicationState `json:"state"`
}

// ApplicationSummary is the candidate-facing view of an application.
type ApplicationSummary struct {
	Application
	VacancyTitle string `json:"vacancy_title"`
	EmployerName string `json:"employer_name"`
}

// ApplicantSummary is the employer-facing view of an application.
type ApplicantSummary struct {
	Application
	CandidateName  string `json:"candidate_name"`
	CandidateEmail string `json:"candidate_email"`
}

// InternalNote is an employer-only remark on an application.
type InternalNote struct {
	ID            uint      `json:"id"`
	ApplicationID uint      `json:"application_id"`
	EmployerID    uint      `json:"employer_id"`
	Content       string    `json:"content"`
	CreatedAt     time.Time `json:"created_at"`
}

// InterviewState is the scheduling state of an interview.
type InterviewState string

const (
	InterviewStateProposed    InterviewState = "Propuesta"
	InterviewStateConfirmed   InterviewState = "Confirmada"
	InterviewStateRescheduled InterviewState = "Reprogramada"
)

// Interview is a meeting proposed for an application.
type Interview struct {
	ID            uint           `json:"id"`
	ApplicationID uint           `json:"application_id"`
	ScheduledAt   time.Time      `json:"scheduled_at"`
	MeetingLink   string         `json:"meeting_link"`
	State         InterviewState `json:"state"`
}
