package postgres

import (
	"context"
	"time"

	"github.com/samber/lo"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"jobly/internal/domain/entity"
	domainerrors "jobly/internal/domain/errors"
	"jobly/internal/domain/repository"
	"jobly/internal/errors"
	"jobly/internal/infra/persistence/model"
)

type applicationSummaryRow struct {
	ID           uint      `gorm:"column:id"`
	CandidateID  uint      `gorm:"column:candidate_id"`
	VacancyID    uint      `gorm:"column:vacancy_id"`
	SubmittedAt  time.Time `gorm:"column:submitted_at"`
	State        string    `gorm:"column:state"`
	VacancyTitle string    `gorm:"column:vacancy_title"`
	EmployerName string    `gorm:"column:employer_name"`
}

type applicantRow struct {
	ID             uint      `gorm:"column:id"`
	CandidateID    uint      `gorm:"column:candidate_id"`
	VacancyID      uint      `gorm:"column:vacancy_id"`
	SubmittedAt    time.Time `gorm:"column:submitted_at"`
	State          string    `gorm:"column:state"`
	CandidateName  string    `gorm:"column:candidate_name"`
	CandidateEmail string    `gorm:"column:candidate_email"`
}

type applicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository is the constructor for applicationRepository.
func NewApplicationRepository(db *gorm.DB) repository.ApplicationRepository {
	return &applicationRepository{db: db}
}

// Create relies on uq_applications_candidate_vacancy to reject a second application.
func (repo *applicationRepository) Create(ctx context.Context, application *entity.Application) error {
	state := application.State
	if state == "" {
		state = entity.ApplicationStateReceived
	}
	applicationM := &model.ApplicationModel{
		CandidateID: application.CandidateID,
		VacancyID:   application.VacancyID,
		State:       string(state),
	}

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(applicationM).Error; err != nil {
		if conflictErr, ok := classifyConflict(err, domainerrors.ErrAlreadyApplied); ok {
			return conflictErr
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrVacancyNotAvailable.WrapMessage("vacancy or candidate does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create application")
	}

	application.ID = applicationM.ID
	application.SubmittedAt = applicationM.SubmittedAt
	application.State = state

	return nil
}

func (repo *applicationRepository) FindByID(ctx context.Context, id uint) (*entity.Application, error) {
	var applicationM model.ApplicationModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).Take(&applicationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrApplicationNotFound
		}

		return nil, errors.Wrap(err, "failed to find application")
	}

	return toApplicationDomain(&applicationM), nil
}

func (repo *applicationRepository) ListByCandidate(ctx context.Context, candidateID uint) ([]*entity.ApplicationSummary, error) {
	var rows []applicationSummaryRow
	err := repo.db.WithContext(ctx).
		Table("applications AS a").
		Select("a.id, a.candidate_id, a.vacancy_id, a.submitted_at, a.state, v.title AS vacancy_title, e.company_name AS employer_name").
		Joins("JOIN vacancies AS v ON v.id = a.vacancy_id").
		Joins("JOIN employer_profiles AS e ON e.id = v.employer_id").
		Where("a.candidate_id = ?", candidateID).
		Order("a.submitted_at DESC, a.id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list candidate applications")
	}

	return lo.Map(rows, func(row applicationSummaryRow, _ int) *entity.ApplicationSummary {
		return &entity.ApplicationSummary{
			Application: entity.Application{
				ID:          row.ID,
				CandidateID: row.CandidateID,
				VacancyID:   row.VacancyID,
				SubmittedAt: row.SubmittedAt,
				State:       entity.ApplicationState(row.State),
			},
			VacancyTitle: row.VacancyTitle,
			EmployerName: row.EmployerName,
		}
	}), nil
}

func (repo *applicationRepository) ListByVacancy(ctx context.Context, vacancyID uint) ([]*entity.ApplicantSummary, error) {
	var rows []applicantRow
	err := repo.db.WithContext(ctx).
		Table("applications AS a").
		Select("a.id, a.candidate_id, a.vacancy_id, a.submitted_at, a.state, c.full_name AS candidate_name, acc.email AS candidate_email").
		Joins("JOIN candidate_profiles AS c ON c.id = a.candidate_id").
		Joins("JOIN accounts AS acc ON acc.id = c.account_id").
		Where("a.vacancy_id = ?", vacancyID).
		Order("a.submitted_at DESC, a.id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list vacancy applicants")
	}

	return lo.Map(rows, func(row applicantRow, _ int) *entity.ApplicantSummary {
		return &entity.ApplicantSummary{
			Application: entity.Application{
				ID:          row.ID,
				CandidateID: row.CandidateID,
				VacancyID:   row.VacancyID,
				SubmittedAt: row.SubmittedAt,
				State:       entity.ApplicationState(row.State),
			},
			CandidateName:  row.CandidateName,
			CandidateEmail: row.CandidateEmail,
		}
	}), nil
}

func (repo *applicationRepository) UpdateState(ctx context.Context, id uint, state entity.ApplicationState) error {
	result := repo.db.WithContext(ctx).Model(&model.ApplicationModel{}).Where("id = ?", id).Update("state", string(state))
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrInvalidApplicationState.WrapMessage("state rejected by the database")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update application state")
	}
	if result.RowsAffected == 0 {
		return repository.ErrApplicationNotFound
	}

	return nil
}

func (repo *applicationRepository) CreateNote(ctx context.Context, note *entity.InternalNote) error {
	noteM := &model.InternalNoteModel{
		ApplicationID: note.ApplicationID,
		EmployerID:    note.EmployerID,
		Content:       note.Content,
	}
	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(noteM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create internal note")
	}

	note.ID = noteM.ID
	note.CreatedAt = noteM.CreatedAt

	return nil
}

func (repo *applicationRepository) ListNotes(ctx context.Context, applicationID uint) ([]*entity.InternalNote, error) {
	var notes []*model.InternalNoteModel
	err := repo.db.WithContext(ctx).
		Where("application_id = ?", applicationID).
		Order("created_at DESC, id DESC").
		Find(&notes).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list internal notes")
	}

	return lo.Map(notes, func(noteM *model.InternalNoteModel, _ int) *entity.InternalNote {
		return toNoteDomain(noteM)
	}), nil
}

func (repo *applicationRepository) CreateInterview(ctx context.Context, interview *entity.Interview) error {
	state := interview.State
	if state == "" {
		state = entity.InterviewStateProposed
	}
	interviewM := &model.InterviewModel{
		ApplicationID: interview.ApplicationID,
		ScheduledAt:   interview.ScheduledAt,
		MeetingLink:   interview.MeetingLink,
		State:         string(state),
	}
	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(interviewM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create interview")
	}

	interview.ID = interviewM.ID
	interview.State = state

	return nil
}

func (repo *applicationRepository) ListInterviews(ctx context.Context, applicationID uint) ([]*entity.Interview, error) {
	var interviews []*model.InterviewModel
	err := repo.db.WithContext(ctx).
		Where("application_id = ?", applicationID).
		Order("scheduled_at ASC, id ASC").
		Find(&interviews).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list interviews")
	}

	return lo.Map(interviews, func(interviewM *model.InterviewModel, _ int) *entity.Interview {
		return toInterviewDomain(interviewM)
	}), nil
}
