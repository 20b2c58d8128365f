package handler

import (
	"log/slog"
	"net/http"

	"jobly/config"
	"jobly/internal/delivery/api/response"
	deliverycontext "jobly/internal/delivery/context"
	domainerrors "jobly/internal/domain/errors"
	"jobly/internal/domain/service"
	"jobly/internal/errors"
	"jobly/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC       usecase.AuthUsecase
	SessionStore service.SessionStore
	Config       *config.Config
	Logger       *slog.Logger
}

// AuthHandler serves registration, login and session endpoints.
type AuthHandler struct {
	authUC         usecase.AuthUsecase
	sessionStore   service.SessionStore
	maxUploadBytes int64
	logger         *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC:         params.AuthUC,
		sessionStore:   params.SessionStore,
		maxUploadBytes: params.Config.Upload.MaxBytes,
		logger:         params.Logger,
	}
}

// RegisterRequest is the minimal JSON registration. "rol" is accepted for older clients.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role"`
	Rol      string `json:"rol"`
}

// LoginRequest is sent as a form or as JSON.
type LoginRequest struct {
	Email    string `json:"email" form:"email" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// Register handles the minimal registration request.
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	role := req.Role
	if role == "" {
		role = req.Rol
	}

	output, err := h.authUC.Register(c.Request().Context(), &usecase.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Role:     role,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output)
}

// RegisterEmployer handles the multipart employer registration.
func (h *AuthHandler) RegisterEmployer(c echo.Context) error {
	logo, err := optionalUpload(c, "logo", imageUpload, h.maxUploadBytes)
	if err != nil {
		return err
	}

	output, err := h.authUC.RegisterEmployer(c.Request().Context(), &usecase.RegisterEmployerInput{
		Email:       c.FormValue("email"),
		Password:    c.FormValue("password"),
		CompanyName: c.FormValue("company_name"),
		TaxID:       c.FormValue("tax_id"),
		Category:    c.FormValue("category"),
		Description: c.FormValue("description"),
		Logo:        logo,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output)
}

// RegisterCandidate handles the multipart candidate registration.
func (h *AuthHandler) RegisterCandidate(c echo.Context) error {
	cv, err := optionalUpload(c, "cv", pdfUpload, h.maxUploadBytes)
	if err != nil {
		return err
	}
	photo, err := optionalUpload(c, "photo", imageUpload, h.maxUploadBytes)
	if err != nil {
		return err
	}

	output, err := h.authUC.RegisterCandidate(c.Request().Context(), &usecase.RegisterCandidateInput{
		Email:    c.FormValue("email"),
		Password: c.FormValue("password"),
		FullName: c.FormValue("full_name"),
		CV:       cv,
		Photo:    photo,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output)
}

// Login verifies the credentials and binds the session cookie.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil || req.Email == "" || req.Password == "" {
		return domainerrors.ErrInvalidCredentials
	}

	output, err := h.authUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.sessionStore.Save(c.Response(), c.Request(), output.SessionUser()); err != nil {
		return errors.Wrap(err, "failed to save session")
	}

	return response.Success(c, http.StatusOK, output)
}

// Logout drops the session. It succeeds for anonymous requests too.
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.sessionStore.Clear(c.Response(), c.Request()); err != nil {
		return errors.Wrap(err, "failed to clear session")
	}

	return response.Success(c, http.StatusOK, response.Message{Message: "Sesión cerrada"})
}

// Me returns the identity bound to the session.
func (h *AuthHandler) Me(c echo.Context) error {
	user := deliverycontext.GetSessionUser(c)
	if user == nil {
		return domainerrors.ErrUnauthenticated
	}

	return response.Success(c, http.StatusOK, user)
}
