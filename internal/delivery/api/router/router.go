// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"jobly/config"
	"jobly/internal/delivery/api/middleware"
	"jobly/internal/delivery/api/router/handler"
	"jobly/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler        *handler.AuthHandler
	VacancyHandler     *handler.VacancyHandler
	ApplicationHandler *handler.ApplicationHandler
	ProfileHandler     *handler.ProfileHandler
	SessionMiddleware  *middleware.SessionMiddleware
	MetricsMiddleware  *middleware.MetricsMiddleware
	Config             *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler        *handler.AuthHandler
	vacancyHandler     *handler.VacancyHandler
	applicationHandler *handler.ApplicationHandler
	profileHandler     *handler.ProfileHandler
	session            *middleware.SessionMiddleware
	metrics            *middleware.MetricsMiddleware
	config             *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:        params.AuthHandler,
		vacancyHandler:     params.VacancyHandler,
		applicationHandler: params.ApplicationHandler,
		profileHandler:     params.ProfileHandler,
		session:            params.SessionMiddleware,
		metrics:            params.MetricsMiddleware,
		config:             params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", r.metrics.Handler())

	api := e.Group("/api")

	// Registration and session routes
	{
		api.POST("/register/", r.authHandler.Register)
		api.POST("/register_employer/", r.authHandler.RegisterEmployer)
		api.POST("/register_candidate/", r.authHandler.RegisterCandidate)
		api.POST("/login/", r.authHandler.Login, middleware.LoginRateLimiter(r.config))
		api.POST("/logout", r.authHandler.Logout)
		api.GET("/me", r.authHandler.Me)
	}

	candidateOnly := r.session.RequireRole(entity.RoleCandidate)
	employerOnly := r.session.RequireRole(entity.RoleEmployer)

	// Vacancy routes. Creation and the owner listing also accept an explicit
	// employer email, the session email wins when both are present.
	vacancies := api.Group("/vacantes")
	{
		vacancies.POST("/", r.vacancyHandler.CreateVacancy)
		vacancies.GET("/empresa", r.vacancyHandler.ListOwnerVacancies)
		vacancies.GET("/publicadas", r.vacancyHandler.ListPublishedVacancies)
		vacancies.GET("/publicadas/:id", r.vacancyHandler.GetPublishedVacancy)
		vacancies.GET("/:id", r.vacancyHandler.GetVacancy, r.session.RequireSession)
		vacancies.PUT("/:id", r.vacancyHandler.UpdateVacancy, r.session.RequireSession)
		vacancies.POST("/:id/postular", r.applicationHandler.Apply, candidateOnly)
		vacancies.GET("/:id/postulaciones", r.applicationHandler.ListForVacancy, employerOnly)
	}

	// Application routes
	applications := api.Group("/postulaciones", r.session.RequireSession)
	{
		applications.GET("/mias", r.applicationHandler.ListMine, candidateOnly)
		applications.PUT("/:id/estado", r.applicationHandler.UpdateState, employerOnly)
		applications.GET("/:id/notas", r.applicationHandler.ListNotes, employerOnly)
		applications.POST("/:id/notas", r.applicationHandler.AddNote, employerOnly)
		applications.GET("/:id/entrevistas", r.applicationHandler.ListInterviews)
		applications.POST("/:id/entrevistas", r.applicationHandler.ProposeInterview, employerOnly)
	}

	// Candidate profile routes
	candidate := api.Group("/candidato", candidateOnly)
	{
		candidate.GET("/perfil", r.profileHandler.GetCandidateProfile)
		candidate.POST("/perfil", r.profileHandler.UpdateCandidateProfile)
		candidate.GET("/avatar", r.profileHandler.GetCandidatePhoto)
		candidate.POST("/avatar", r.profileHandler.UploadCandidatePhoto)
		candidate.GET("/cv", r.profileHandler.GetCandidateCV)
		candidate.POST("/cv", r.profileHandler.UploadCandidateCV)
	}

	// Employer profile routes
	employer := api.Group("/empresa", employerOnly)
	{
		employer.GET("/perfil", r.profileHandler.GetEmployerProfile)
		employer.GET("/logo", r.profileHandler.GetEmployerLogo)
		employer.POST("/logo", r.profileHandler.UploadEmployerLogo)
	}
}
