package handler

import (
	"log/slog"
	"net/http"

	"jobly/internal/delivery/api/response"
	deliverycontext "jobly/internal/delivery/context"
	"jobly/internal/domain/entity"
	domainerrors "jobly/internal/domain/errors"
	"jobly/internal/errors"
	"jobly/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// VacancyHandlerParams holds dependencies for VacancyHandler, injected by Fx.
type VacancyHandlerParams struct {
	fx.In

	VacancyUC usecase.VacancyUsecase
	Logger    *slog.Logger
}

// VacancyHandler holds dependencies for vacancy-related handlers
type VacancyHandler struct {
	vacancyUC usecase.VacancyUsecase
	logger    *slog.Logger
}

// NewVacancyHandler is the constructor for VacancyHandler
func NewVacancyHandler(params VacancyHandlerParams) *VacancyHandler {
	return &VacancyHandler{
		vacancyUC: params.VacancyUC,
		logger:    params.Logger,
	}
}

// CreateVacancyRequest represents the request body for publishing a vacancy
type CreateVacancyRequest struct {
	Title         string   `json:"title" form:"title" validate:"required"`
	Description   string   `json:"description" form:"description"`
	Salary        *float64 `json:"salary" form:"salary" validate:"omitempty,gte=0"`
	WorkMode      string   `json:"work_mode" form:"work_mode"`
	EmployerEmail string   `json:"employer_email" form:"employer_email"`
}

// UpdateVacancyRequest accepts the English field names and their Spanish aliases.
type UpdateVacancyRequest struct {
	Title       *string  `json:"title"`
	Titulo      *string  `json:"titulo"`
	Description *string  `json:"description"`
	Descripcion *string  `json:"descripcion"`
	Salary      *float64 `json:"salary"`
	Salario     *float64 `json:"salario"`
	WorkMode    *string  `json:"work_mode"`
	Modalidad   *string  `json:"modalidad"`
	State       *string  `json:"state"`
	Estado      *string  `json:"estado"`
}

func (r *UpdateVacancyRequest) toPatch() *entity.VacancyPatch {
	patch := &entity.VacancyPatch{
		Title:       firstNonNil(r.Title, r.Titulo),
		Description: firstNonNil(r.Description, r.Descripcion),
		Salary:      firstNonNil(r.Salary, r.Salario),
		WorkMode:    firstNonNil(r.WorkMode, r.Modalidad),
	}
	if state := firstNonNil(r.State, r.Estado); state != nil {
		vacancyState := entity.VacancyState(*state)
		patch.State = &vacancyState
	}

	return patch
}

// CreateVacancyResponse identifies the new vacancy
type CreateVacancyResponse struct {
	VacancyID uint `json:"vacancy_id"`
}

// VacancyListResponse wraps vacancy listings
type VacancyListResponse struct {
	Vacancies []*entity.VacancySummary `json:"vacancies"`
}

// ownerEmail prefers the session identity over the address the client names.
func ownerEmail(c echo.Context, fallback string) string {
	if user := deliverycontext.GetSessionUser(c); user != nil {
		return user.Email
	}

	return fallback
}

// CreateVacancy handles publishing a vacancy
func (h *VacancyHandler) CreateVacancy(c echo.Context) error {
	var req CreateVacancyRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	email := ownerEmail(c, req.EmployerEmail)
	if email == "" {
		return domainerrors.ErrValidationFailed.WithDetails("employer_email is required")
	}

	vacancy, err := h.vacancyUC.Create(c.Request().Context(), email, &usecase.CreateVacancyInput{
		Title:       req.Title,
		Description: req.Description,
		Salary:      req.Salary,
		WorkMode:    req.WorkMode,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, CreateVacancyResponse{VacancyID: vacancy.ID})
}

// ListOwnerVacancies handles listing an employer's vacancies
func (h *VacancyHandler) ListOwnerVacancies(c echo.Context) error {
	email := ownerEmail(c, c.QueryParam("email"))
	if email == "" {
		return domainerrors.ErrValidationFailed.WithDetails("email is required")
	}

	vacancies, err := h.vacancyUC.ListForOwner(c.Request().Context(), email)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, VacancyListResponse{Vacancies: vacancies})
}

// ListPublishedVacancies handles the public listing
func (h *VacancyHandler) ListPublishedVacancies(c echo.Context) error {
	vacancies, err := h.vacancyUC.ListPublished(c.Request().Context(), c.QueryParam("search"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, VacancyListResponse{Vacancies: vacancies})
}

// GetPublishedVacancy handles the public detail of a vacancy
func (h *VacancyHandler) GetPublishedVacancy(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	vacancy, err := h.vacancyUC.GetPublished(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, vacancy)
}

// GetVacancy handles the owner's view of a vacancy
func (h *VacancyHandler) GetVacancy(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	vacancy, err := h.vacancyUC.GetByID(c.Request().Context(), id, deliverycontext.GetSessionUser(c).Email)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, vacancy)
}

// UpdateVacancy handles partial updates of an owned vacancy
func (h *VacancyHandler) UpdateVacancy(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateVacancyRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	vacancy, err := h.vacancyUC.Update(c.Request().Context(), id, deliverycontext.GetSessionUser(c).Email, req.toPatch())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, vacancy)
}
