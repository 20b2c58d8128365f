package handler

import (
	"log/slog"
	"net/http"
	"time"

	"jobly/config"
	"jobly/internal/delivery/api/response"
	deliverycontext "jobly/internal/delivery/context"
	"jobly/internal/domain/entity"
	domainerrors "jobly/internal/domain/errors"
	"jobly/internal/errors"
	"jobly/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const birthDateLayout = time.DateOnly

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	Config    *config.Config
	Logger    *slog.Logger
}

// ProfileHandler serves the candidate and employer profile endpoints.
type ProfileHandler struct {
	profileUC      usecase.ProfileUsecase
	maxUploadBytes int64
	logger         *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC:      params.ProfileUC,
		maxUploadBytes: params.Config.Upload.MaxBytes,
		logger:         params.Logger,
	}
}

// UpdateCandidateProfileRequest lists the editable profile fields. birth_date uses YYYY-MM-DD.
type UpdateCandidateProfileRequest struct {
	FullName     *string `json:"full_name"`
	BirthDate    *string `json:"birth_date"`
	Gender       *string `json:"gender"`
	LinkedInURL  *string `json:"linkedin_url" validate:"omitempty,url"`
	GitHubURL    *string `json:"github_url" validate:"omitempty,url"`
	PortfolioURL *string `json:"portfolio_url" validate:"omitempty,url"`
}

func (r *UpdateCandidateProfileRequest) toPatch() (*entity.CandidateProfilePatch, error) {
	patch := &entity.CandidateProfilePatch{
		FullName:     r.FullName,
		Gender:       r.Gender,
		LinkedInURL:  r.LinkedInURL,
		GitHubURL:    r.GitHubURL,
		PortfolioURL: r.PortfolioURL,
	}
	if r.BirthDate != nil {
		birthDate, err := time.Parse(birthDateLayout, *r.BirthDate)
		if err != nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails("birth_date must use the YYYY-MM-DD format")
		}
		patch.BirthDate = &birthDate
	}

	return patch, nil
}

// GetCandidateProfile handles reading the candidate's profile
func (h *ProfileHandler) GetCandidateProfile(c echo.Context) error {
	profile, err := h.profileUC.GetCandidateProfile(c.Request().Context(), deliverycontext.GetSessionUser(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile)
}

// UpdateCandidateProfile handles editing the candidate's profile
func (h *ProfileHandler) UpdateCandidateProfile(c echo.Context) error {
	var req UpdateCandidateProfileRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	patch, err := req.toPatch()
	if err != nil {
		return err
	}

	profile, err := h.profileUC.UpdateCandidateProfile(c.Request().Context(), deliverycontext.GetSessionUser(c), patch)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile)
}

// UploadCandidatePhoto handles replacing the candidate's photo
func (h *ProfileHandler) UploadCandidatePhoto(c echo.Context) error {
	photo, err := requiredUpload(c, "photo", imageUpload, h.maxUploadBytes)
	if err != nil {
		return err
	}

	if err := h.profileUC.UploadCandidatePhoto(c.Request().Context(), deliverycontext.GetSessionUser(c), photo); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, response.Message{Message: "Foto actualizada"})
}

// GetCandidatePhoto handles downloading the candidate's photo
func (h *ProfileHandler) GetCandidatePhoto(c echo.Context) error {
	photo, err := h.profileUC.GetCandidatePhoto(c.Request().Context(), deliverycontext.GetSessionUser(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Binary(c, http.DetectContentType(photo), photo)
}

// UploadCandidateCV handles replacing the candidate's CV
func (h *ProfileHandler) UploadCandidateCV(c echo.Context) error {
	cv, err := requiredUpload(c, "cv", pdfUpload, h.maxUploadBytes)
	if err != nil {
		return err
	}

	if err := h.profileUC.UploadCandidateCV(c.Request().Context(), deliverycontext.GetSessionUser(c), cv); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, response.Message{Message: "CV actualizado"})
}

// GetCandidateCV handles downloading the candidate's CV
func (h *ProfileHandler) GetCandidateCV(c echo.Context) error {
	cv, err := h.profileUC.GetCandidateCV(c.Request().Context(), deliverycontext.GetSessionUser(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Binary(c, "application/pdf", cv)
}

// GetEmployerProfile handles reading the employer's profile
func (h *ProfileHandler) GetEmployerProfile(c echo.Context) error {
	profile, err := h.profileUC.GetEmployerProfile(c.Request().Context(), deliverycontext.GetSessionUser(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile)
}

// UploadEmployerLogo handles replacing the employer's logo
func (h *ProfileHandler) UploadEmployerLogo(c echo.Context) error {
	logo, err := requiredUpload(c, "logo", imageUpload, h.maxUploadBytes)
	if err != nil {
		return err
	}

	if err := h.profileUC.UploadEmployerLogo(c.Request().Context(), deliverycontext.GetSessionUser(c), logo); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, response.Message{Message: "Logo actualizado"})
}

// GetEmployerLogo handles downloading the employer's logo
func (h *ProfileHandler) GetEmployerLogo(c echo.Context) error {
	logo, err := h.profileUC.GetEmployerLogo(c.Request().Context(), deliverycontext.GetSessionUser(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Binary(c, http.DetectContentType(logo), logo)
}
