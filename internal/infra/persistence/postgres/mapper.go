package postgres

import (
	"jobly/internal/domain/entity"
	"jobly/internal/infra/persistence/model"
)

func toAccountDomain(m *model.AccountModel) *entity.Account {
	return &entity.Account{
		ID:         m.ID,
		Email:      m.Email,
		Credential: m.Password,
		Role:       entity.Role(m.Role),
		Status:     entity.AccountStatus(m.Status),
		CreatedAt:  m.CreatedAt,
	}
}

func fromAccountDomain(a *entity.Account) *model.AccountModel {
	status := a.Status
	if status == "" {
		status = entity.AccountStatusActive
	}

	return &model.AccountModel{
		ID:       a.ID,
		Email:    a.Email,
		Password: a.Credential,
		Role:     a.Role.String(),
		Status:   string(status),
	}
}

func fromCandidateDomain(p *entity.CandidateProfile) *model.CandidateProfileModel {
	return &model.CandidateProfileModel{
		AccountID:    p.AccountID,
		CV:           p.CV,
		Photo:        p.Photo,
		FullName:     p.FullName,
		BirthDate:    p.BirthDate,
		Gender:       p.Gender,
		LinkedInURL:  p.LinkedInURL,
		GitHubURL:    p.GitHubURL,
		PortfolioURL: p.PortfolioURL,
	}
}

func fromEmployerDomain(p *entity.EmployerProfile) *model.EmployerProfileModel {
	return &model.EmployerProfileModel{
		AccountID:   p.AccountID,
		Logo:        p.Logo,
		CompanyName: p.CompanyName,
		TaxID:       p.TaxID,
		Category:    p.Category,
		Description: p.Description,
	}
}

func toVacancyDomain(m *model.VacancyModel) *entity.Vacancy {
	return &entity.Vacancy{
		ID:          m.ID,
		EmployerID:  m.EmployerID,
		Title:       m.Title,
		Description: m.Description,
		Salary:      m.Salary,
		WorkMode:    m.WorkMode,
		State:       entity.VacancyState(m.State),
		CreatedAt:   m.CreatedAt,
	}
}

func fromVacancyDomain(v *entity.Vacancy) *model.VacancyModel {
	state := v.State
	if state == "" {
		state = entity.VacancyStateDraft
	}

	return &model.VacancyModel{
		EmployerID:  v.EmployerID,
		Title:       v.Title,
		Description: v.Description,
		Salary:      v.Salary,
		WorkMode:    v.WorkMode,
		State:       string(state),
	}
}

func toApplicationDomain(m *model.ApplicationModel) *entity.Application {
	return &entity.Application{
		ID:          m.ID,
		CandidateID: m.CandidateID,
		VacancyID:   m.VacancyID,
		SubmittedAt: m.SubmittedAt,
		State:       entity.ApplicationState(m.State),
	}
}

func toNoteDomain(m *model.InternalNoteModel) *entity.InternalNote {
	return &entity.InternalNote{
		ID:            m.ID,
		ApplicationID: m.ApplicationID,
		EmployerID:    m.EmployerID,
		Content:       m.Content,
		CreatedAt:     m.CreatedAt,
	}
}

func toInterviewDomain(m *model.InterviewModel) *entity.Interview {
	return &entity.Interview{
		ID:            m.ID,
		ApplicationID: m.ApplicationID,
		ScheduledAt:   m.ScheduledAt,
		MeetingLink:   m.MeetingLink,
		State:         entity.InterviewState(m.State),
	}
}
