// Package session provides the session stores used by the HTTP layer.
package session

import (
	"net/http"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"jobly/internal/domain/entity"
	"jobly/internal/domain/service"
	"jobly/internal/errors"
)

// cookieOptions are shared by every store that keeps its handle in a cookie.
type cookieOptions struct {
	name   string
	ttl    time.Duration
	secure bool
}

func (o cookieOptions) write(w http.ResponseWriter, value string) {
	http.SetCookie(w, &http.Cookie{
		Name:     o.name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(o.ttl.Seconds()),
		Expires:  time.Now().Add(o.ttl),
		HttpOnly: true,
		Secure:   o.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (o cookieOptions) expire(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     o.name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   o.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (o cookieOptions) read(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(o.name)
	if err != nil || cookie.Value == "" {
		return "", false
	}

	return cookie.Value, true
}

type sessionClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// cookieStore keeps the whole session in an HMAC-signed JWT cookie.
type cookieStore struct {
	cookie cookieOptions
	secret []byte
	issuer string
}

// NewCookieStore creates a stateless store signing sessions with secret.
func NewCookieStore(secret, cookieName, issuer string, ttl time.Duration, secure bool) (service.SessionStore, error) {
	if secret == "" {
		return nil, errors.New("session secret must be provided")
	}

	return &cookieStore{
		cookie: cookieOptions{name: cookieName, ttl: ttl, secure: secure},
		secret: []byte(secret),
		issuer: issuer,
	}, nil
}

// Load treats a missing, expired or tampered cookie as "no session".
func (s *cookieStore) Load(r *http.Request) (*entity.SessionUser, error) {
	raw, ok := s.cookie.read(r)
	if !ok {
		return nil, nil
	}

	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(s.issuer))
	if err != nil || !token.Valid {
		return nil, nil
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return nil, nil
	}

	role := entity.Role(claims.Role)
	if !role.IsValid() {
		return nil, nil
	}

	return &entity.SessionUser{UserID: uint(userID), Email: claims.Email, Role: role}, nil
}

func (s *cookieStore) Save(w http.ResponseWriter, _ *http.Request, user *entity.SessionUser) error {
	now := time.Now()
	claims := sessionClaims{
		Email: user.Email,
		Role:  user.Role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(user.UserID), 10),
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cookie.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return errors.Wrap(err, "sign session token")
	}
	s.cookie.write(w, signed)

	return nil
}

func (s *cookieStore) Clear(w http.ResponseWriter, _ *http.Request) error {
	s.cookie.expire(w)

	return nil
}
