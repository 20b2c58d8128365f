package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"jobly/config"
	"jobly/internal/delivery/api/middleware"
	"jobly/internal/delivery/api/router"
	"jobly/internal/delivery/api/router/handler"
	"jobly/internal/domain/entity"
	"jobly/internal/domain/service"
	"jobly/internal/infra/auth"
	"jobly/internal/infra/persistence/postgres"
	"jobly/internal/infra/session"
	"jobly/internal/usecase/impl"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details string `json:"details"`
	} `json:"error"`
}

type testClient struct {
	t       *testing.T
	e       *echo.Echo
	cookies []*http.Cookie
}

type testServer struct {
	e     *echo.Echo
	db    *gorm.DB
	codec service.CredentialCodec
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared&_pragma=foreign_keys(1)"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{SkipDefaultTransaction: true, Logger: logger.Discard})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, postgres.Migrate(context.Background(), db))

	cfg := &config.Config{
		Auth:   &config.AuthConfig{BcryptCost: 4},
		Upload: &config.UploadConfig{MaxBytes: 1 << 20},
	}
	cfg.Env.ServiceName = "jobly"
	cfg.HTTP.MaxRequestBodySize = "2MB"

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	store, err := session.NewCookieStore("test-session-secret", "jobly_session", "jobly", time.Hour, false)
	require.NoError(t, err)
	metrics, err := middleware.NewMetricsMiddleware()
	require.NoError(t, err)

	txManager := postgres.NewTransactionManager(db)
	codec := auth.NewCredentialCodec(cfg)

	e := NewEcho(cfg, log, router.RouterParams{
		AuthHandler: handler.NewAuthHandler(handler.AuthHandlerParams{
			AuthUC:       impl.NewAuthService(txManager, codec, log),
			SessionStore: store,
			Config:       cfg,
			Logger:       log,
		}),
		VacancyHandler: handler.NewVacancyHandler(handler.VacancyHandlerParams{
			VacancyUC: impl.NewVacancyService(txManager, log),
			Logger:    log,
		}),
		ApplicationHandler: handler.NewApplicationHandler(handler.ApplicationHandlerParams{
			ApplicationUC: impl.NewApplicationService(txManager, log),
			Logger:        log,
		}),
		ProfileHandler: handler.NewProfileHandler(handler.ProfileHandlerParams{
			ProfileUC: impl.NewProfileService(txManager, log),
			Config:    cfg,
			Logger:    log,
		}),
		SessionMiddleware: middleware.NewSessionMiddleware(store, log),
		MetricsMiddleware: metrics,
		Config:            cfg,
	})

	return &testServer{e: e, db: db, codec: codec}
}

func (ts *testServer) client(t *testing.T) *testClient {
	return &testClient{t: t, e: ts.e}
}

func (tc *testClient) do(req *http.Request) (*httptest.ResponseRecorder, envelope) {
	tc.t.Helper()

	for _, cookie := range tc.cookies {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	tc.e.ServeHTTP(rec, req)

	if cookies := rec.Result().Cookies(); len(cookies) > 0 {
		tc.cookies = cookies
	}

	var body envelope
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(tc.t, json.Unmarshal(rec.Body.Bytes(), &body))
	}

	return rec, body
}

func (tc *testClient) json(method, path string, payload any) (*httptest.ResponseRecorder, envelope) {
	tc.t.Helper()

	var reader io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(tc.t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return tc.do(req)
}

func (tc *testClient) multipart(path string, fields map[string]string) (*httptest.ResponseRecorder, envelope) {
	tc.t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for name, value := range fields {
		require.NoError(tc.t, writer.WriteField(name, value))
	}
	require.NoError(tc.t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())

	return tc.do(req)
}

func (tc *testClient) login(email, password string) {
	tc.t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/login/", strings.NewReader("email="+email+"&password="+password))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec, _ := tc.do(req)
	require.Equal(tc.t, http.StatusOK, rec.Code, rec.Body.String())
	require.NotEmpty(tc.t, tc.cookies)
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(raw, &out))

	return out
}

type vacancyListing struct {
	Vacancies []struct {
		ID               uint   `json:"id"`
		Title            string `json:"title"`
		EmployerName     string `json:"employer_name"`
		ApplicationCount int64  `json:"num_postulaciones"`
	} `json:"vacancies"`
}

func TestAPI_HiringFlow(t *testing.T) {
	ts := newTestServer(t)
	employer := ts.client(t)
	candidate := ts.client(t)

	rec, body := employer.multipart("/api/register_employer/", map[string]string{
		"email":        "acme@co.com",
		"password":     "Passw0rd",
		"company_name": "Acme",
		"tax_id":       "0190012345001",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	registered := decode[map[string]uint](t, body.Data)
	assert.NotZero(t, registered["user_id"])
	assert.NotZero(t, registered["employer_id"])

	rec, body = employer.multipart("/api/register_employer/", map[string]string{
		"email":        "acme@co.com",
		"password":     "Passw0rd",
		"company_name": "Acme",
		"tax_id":       "0190012345001",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "EMAIL_ALREADY_REGISTERED", body.Error.Code)

	employer.login("acme@co.com", "Passw0rd")

	rec, body = employer.json(http.MethodPost, "/api/vacantes/", map[string]any{
		"title":     "Backend Engineer",
		"salary":    1500,
		"work_mode": "Remoto",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	vacancyID := decode[map[string]uint](t, body.Data)["vacancy_id"]
	require.NotZero(t, vacancyID)

	rec, body = employer.json(http.MethodGet, "/api/vacantes/empresa", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	listing := decode[vacancyListing](t, body.Data)
	require.Len(t, listing.Vacancies, 1)
	assert.EqualValues(t, 0, listing.Vacancies[0].ApplicationCount)

	rec, _ = candidate.json(http.MethodPost, "/api/register/", map[string]string{
		"email":    "ana@mail.com",
		"password": "Passw0rd",
		"rol":      "Candidato",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	candidate.login("ana@mail.com", "Passw0rd")

	rec, body = candidate.json(http.MethodGet, "/api/vacantes/publicadas?search=backend", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	listing = decode[vacancyListing](t, body.Data)
	require.Len(t, listing.Vacancies, 1)
	assert.Equal(t, "Acme", listing.Vacancies[0].EmployerName)

	applyPath := "/api/vacantes/" + strconv.FormatUint(uint64(vacancyID), 10) + "/postular"
	rec, body = candidate.json(http.MethodPost, applyPath, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	applicationID := decode[map[string]uint](t, body.Data)["application_id"]
	require.NotZero(t, applicationID)

	rec, body = candidate.json(http.MethodPost, applyPath, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "ALREADY_APPLIED", body.Error.Code)

	rec, body = employer.json(http.MethodGet, "/api/vacantes/empresa", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	listing = decode[vacancyListing](t, body.Data)
	require.Len(t, listing.Vacancies, 1)
	assert.EqualValues(t, 1, listing.Vacancies[0].ApplicationCount)

	statePath := "/api/postulaciones/" + strconv.FormatUint(uint64(applicationID), 10) + "/estado"
	rec, _ = employer.json(http.MethodPut, statePath, map[string]string{"estado": "Revision"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec, body = candidate.json(http.MethodGet, "/api/postulaciones/mias", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	mine := decode[map[string][]struct {
		State        string `json:"state"`
		VacancyTitle string `json:"vacancy_title"`
	}](t, body.Data)["applications"]
	require.Len(t, mine, 1)
	assert.Equal(t, "Revision", mine[0].State)
	assert.Equal(t, "Backend Engineer", mine[0].VacancyTitle)
}

func TestAPI_AccessControl(t *testing.T) {
	ts := newTestServer(t)
	anonymous := ts.client(t)

	rec, body := anonymous.json(http.MethodGet, "/api/postulaciones/mias", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "UNAUTHENTICATED", body.Error.Code)

	candidate := ts.client(t)
	rec, _ = candidate.json(http.MethodPost, "/api/register/", map[string]string{
		"email":    "ana@mail.com",
		"password": "Passw0rd",
		"role":     "Candidato",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	candidate.login("ana@mail.com", "Passw0rd")

	rec, body = candidate.json(http.MethodGet, "/api/empresa/perfil", nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	require.NotNil(t, body.Error)
	assert.Empty(t, body.Error.Details)

	rec, body = candidate.json(http.MethodGet, "/api/candidato/perfil", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	profile := decode[map[string]any](t, body.Data)
	assert.Equal(t, "ana@mail.com", profile["full_name"])

	rec, _ = candidate.json(http.MethodPost, "/api/logout", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, _ = candidate.json(http.MethodGet, "/api/me", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAPI_LoginRejectsBadCredentials(t *testing.T) {
	client := newTestServer(t).client(t)

	rec, body := client.json(http.MethodPost, "/api/login/", map[string]string{"email": "ghost@co.com", "password": "Passw0rd"})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "INVALID_CREDENTIALS", body.Error.Code)
	assert.Empty(t, client.cookies)
}

func TestAPI_RegisterWeakPasswordReportsDetails(t *testing.T) {
	client := newTestServer(t).client(t)

	rec, body := client.json(http.MethodPost, "/api/register/", map[string]string{
		"email":    "ana@mail.com",
		"password": "short",
		"role":     "Candidato",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "PASSWORD_STRENGTH", body.Error.Code)
	assert.NotEmpty(t, body.Error.Details)
}

func TestAPI_HealthAndMetrics(t *testing.T) {
	client := newTestServer(t).client(t)

	rec, _ := client.json(http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = client.do(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "jobly_http_requests_total")
}

func registerEmployerWithVacancy(t *testing.T, employer *testClient) string {
	t.Helper()

	rec, _ := employer.multipart("/api/register_employer/", map[string]string{
		"email":        "acme@co.com",
		"password":     "Passw0rd",
		"company_name": "Acme",
		"tax_id":       "0190012345001",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	employer.login("acme@co.com", "Passw0rd")

	rec, body := employer.json(http.MethodPost, "/api/vacantes/", map[string]any{
		"title":       "Backend Engineer",
		"description": "Go",
		"work_mode":   "Remoto",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	return "/api/vacantes/" + strconv.FormatUint(uint64(decode[map[string]uint](t, body.Data)["vacancy_id"]), 10)
}

func TestAPI_UpdateVacancySalaryOnly(t *testing.T) {
	ts := newTestServer(t)
	employer := ts.client(t)
	path := registerEmployerWithVacancy(t, employer)

	rec, _ := employer.json(http.MethodPut, path, map[string]any{"salario": 1500})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec, body := employer.json(http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	vacancy := decode[entity.Vacancy](t, body.Data)
	require.NotNil(t, vacancy.Salary)
	assert.InDelta(t, 1500.0, *vacancy.Salary, 0.001)
	assert.Equal(t, "Backend Engineer", vacancy.Title)
	assert.Equal(t, "Go", vacancy.Description)
	assert.Equal(t, "Remoto", vacancy.WorkMode)
	assert.Equal(t, entity.VacancyStatePublished, vacancy.State)
}

func TestAPI_UpdateVacancyByOtherEmployerIsNotFound(t *testing.T) {
	ts := newTestServer(t)
	path := registerEmployerWithVacancy(t, ts.client(t))

	other := ts.client(t)
	rec, _ := other.json(http.MethodPost, "/api/register/", map[string]string{
		"email":    "globex@co.com",
		"password": "Passw0rd",
		"role":     "Empresa",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	other.login("globex@co.com", "Passw0rd")

	rec, body := other.json(http.MethodPut, path, map[string]any{"salario": 1})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "VACANCY_NOT_FOUND", body.Error.Code)
}

func TestAPI_LoginMigratesPlaintextCredential(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()
	accounts := postgres.NewAccountRepository(ts.db)

	require.NoError(t, accounts.Create(ctx, &entity.Account{
		Email:      "legacy@mail.com",
		Credential: "Passw0rd",
		Role:       entity.RoleCandidate,
		Status:     entity.AccountStatusActive,
	}))
	require.True(t, ts.codec.IsPlaintext("Passw0rd"))

	ts.client(t).login("legacy@mail.com", "Passw0rd")

	stored, err := accounts.FindByEmail(ctx, "legacy@mail.com")
	require.NoError(t, err)
	assert.NotEqual(t, "Passw0rd", stored.Credential)
	assert.False(t, ts.codec.IsPlaintext(stored.Credential))
	_, recognised := ts.codec.IdentifyScheme(stored.Credential)
	assert.True(t, recognised)

	ts.client(t).login("legacy@mail.com", "Passw0rd")

	again, err := accounts.FindByEmail(ctx, "legacy@mail.com")
	require.NoError(t, err)
	assert.Equal(t, stored.Credential, again.Credential)
}
