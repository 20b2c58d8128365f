package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobly/internal/domain/entity"
)

const testCookie = "jobly_session"

func replay(t *testing.T, rec *httptest.ResponseRecorder) *http.Request {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	for _, cookie := range rec.Result().Cookies() {
		req.AddCookie(cookie)
	}

	return req
}

func TestCookieStore_SaveAndLoad(t *testing.T) {
	store, err := NewCookieStore("secret", testCookie, "jobly", time.Hour, false)
	require.NoError(t, err)

	user := &entity.SessionUser{UserID: 42, Email: "acme@co.com", Role: entity.RoleEmployer}
	rec := httptest.NewRecorder()
	require.NoError(t, store.Save(rec, httptest.NewRequest(http.MethodPost, "/api/login/", nil), user))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, testCookie, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)

	loaded, err := store.Load(replay(t, rec))
	require.NoError(t, err)
	assert.Equal(t, user, loaded)
}

func TestCookieStore_LoadWithoutCookie(t *testing.T) {
	store, err := NewCookieStore("secret", testCookie, "jobly", time.Hour, false)
	require.NoError(t, err)

	loaded, err := store.Load(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestCookieStore_RejectsForeignSignature(t *testing.T) {
	issuing, err := NewCookieStore("other-secret", testCookie, "jobly", time.Hour, false)
	require.NoError(t, err)
	verifying, err := NewCookieStore("secret", testCookie, "jobly", time.Hour, false)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	require.NoError(t, issuing.Save(rec, nil, &entity.SessionUser{UserID: 1, Email: "a@b.co", Role: entity.RoleAdmin}))

	loaded, err := verifying.Load(replay(t, rec))
	assert.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestCookieStore_RejectsExpiredToken(t *testing.T) {
	store, err := NewCookieStore("secret", testCookie, "jobly", time.Hour, false)
	require.NoError(t, err)

	claims := sessionClaims{
		Email: "a@b.co",
		Role:  entity.RoleCandidate.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "7",
			Issuer:    "jobly",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: signed})

	loaded, err := store.Load(req)
	assert.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestCookieStore_Clear(t *testing.T) {
	store, err := NewCookieStore("secret", testCookie, "jobly", time.Hour, false)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	require.NoError(t, store.Clear(rec, httptest.NewRequest(http.MethodPost, "/api/logout", nil)))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "", cookies[0].Value)
	assert.Less(t, cookies[0].MaxAge, 0)
}

func TestNewCookieStore_RequiresSecret(t *testing.T) {
	_, err := NewCookieStore("", testCookie, "jobly", time.Hour, false)
	assert.Error(t, err)
}

func TestRedisStore_LoadSkipsRedisForMissingOrMalformedCookie(t *testing.T) {
	// Nothing listens here; reaching Redis would surface a dial error.
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })
	store := NewRedisStore(client, testCookie, time.Hour, false)

	loaded, err := store.Load(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NoError(t, err)
	assert.Nil(t, loaded)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: "not-a-session-id"})
	loaded, err = store.Load(req)
	assert.NoError(t, err)
	assert.Nil(t, loaded)
}
