package handler

import (
	"log/slog"
	"net/http"
	"time"

	"jobly/internal/delivery/api/response"
	deliverycontext "jobly/internal/delivery/context"
	"jobly/internal/domain/entity"
	"jobly/internal/errors"
	"jobly/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ApplicationHandlerParams holds dependencies for ApplicationHandler, injected by Fx.
type ApplicationHandlerParams struct {
	fx.In

	ApplicationUC usecase.ApplicationUsecase
	Logger        *slog.Logger
}

// ApplicationHandler serves the hiring pipeline endpoints.
type ApplicationHandler struct {
	applicationUC usecase.ApplicationUsecase
	logger        *slog.Logger
}

// NewApplicationHandler is the constructor for ApplicationHandler
func NewApplicationHandler(params ApplicationHandlerParams) *ApplicationHandler {
	return &ApplicationHandler{
		applicationUC: params.ApplicationUC,
		logger:        params.Logger,
	}
}

// ApplyResponse identifies the new application
type ApplyResponse struct {
	ApplicationID uint `json:"application_id"`
}

// UpdateApplicationStateRequest accepts "state" or its Spanish alias "estado".
type UpdateApplicationStateRequest struct {
	State  string `json:"state" form:"state"`
	Estado string `json:"estado" form:"estado"`
}

// AddNoteRequest represents the request body for an internal note
type AddNoteRequest struct {
	Content string `json:"content" form:"content" validate:"required"`
}

// ProposeInterviewRequest represents the request body for proposing an interview
type ProposeInterviewRequest struct {
	ScheduledAt time.Time `json:"scheduled_at" validate:"required"`
	MeetingLink string    `json:"meeting_link" validate:"omitempty,url"`
}

// Apply handles a candidate applying to a vacancy
func (h *ApplicationHandler) Apply(c echo.Context) error {
	vacancyID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	application, err := h.applicationUC.Apply(c.Request().Context(), deliverycontext.GetSessionUser(c), vacancyID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, ApplyResponse{ApplicationID: application.ID})
}

// ListMine handles listing the candidate's own applications
func (h *ApplicationHandler) ListMine(c echo.Context) error {
	applications, err := h.applicationUC.ListMine(c.Request().Context(), deliverycontext.GetSessionUser(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"applications": applications})
}

// ListForVacancy handles listing the applicants of an owned vacancy
func (h *ApplicationHandler) ListForVacancy(c echo.Context) error {
	vacancyID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	applicants, err := h.applicationUC.ListForVacancy(c.Request().Context(), deliverycontext.GetSessionUser(c), vacancyID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"applications": applicants})
}

// UpdateState handles moving an application through the pipeline
func (h *ApplicationHandler) UpdateState(c echo.Context) error {
	applicationID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateApplicationStateRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	state := req.State
	if state == "" {
		state = req.Estado
	}

	application, err := h.applicationUC.UpdateState(c.Request().Context(), deliverycontext.GetSessionUser(c), applicationID, entity.ApplicationState(state))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, application)
}

// AddNote handles adding an internal note to an application
func (h *ApplicationHandler) AddNote(c echo.Context) error {
	applicationID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req AddNoteRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	note, err := h.applicationUC.AddNote(c.Request().Context(), deliverycontext.GetSessionUser(c), applicationID, req.Content)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, note)
}

// ListNotes handles listing the internal notes of an application
func (h *ApplicationHandler) ListNotes(c echo.Context) error {
	applicationID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	notes, err := h.applicationUC.ListNotes(c.Request().Context(), deliverycontext.GetSessionUser(c), applicationID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"notes": notes})
}

// ProposeInterview handles scheduling an interview
func (h *ApplicationHandler) ProposeInterview(c echo.Context) error {
	applicationID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req ProposeInterviewRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	interview, err := h.applicationUC.ProposeInterview(c.Request().Context(), deliverycontext.GetSessionUser(c), applicationID, &usecase.ProposeInterviewInput{
		ScheduledAt: req.ScheduledAt,
		MeetingLink: req.MeetingLink,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, interview)
}

// ListInterviews handles listing the interviews of an application
func (h *ApplicationHandler) ListInterviews(c echo.Context) error {
	applicationID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	interviews, err := h.applicationUC.ListInterviews(c.Request().Context(), deliverycontext.GetSessionUser(c), applicationID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"interviews": interviews})
}
