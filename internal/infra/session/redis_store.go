package session

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"jobly/internal/domain/entity"
	"jobly/internal/domain/service"
	"jobly/internal/errors"
)

const redisKeyPrefix = "session:"

// redisStore keeps an opaque session ID in the cookie and the record in Redis.
type redisStore struct {
	cookie cookieOptions
	client *redis.Client
}

// NewRedisStore creates a server-side store backed by client.
func NewRedisStore(client *redis.Client, cookieName string, ttl time.Duration, secure bool) service.SessionStore {
	return &redisStore{
		cookie: cookieOptions{name: cookieName, ttl: ttl, secure: secure},
		client: client,
	}
}

func (s *redisStore) Load(r *http.Request) (*entity.SessionUser, error) {
	sessionID, ok := s.cookie.read(r)
	if !ok {
		return nil, nil
	}
	if _, err := uuid.Parse(sessionID); err != nil {
		return nil, nil
	}

	payload, err := s.client.Get(r.Context(), redisKeyPrefix+sessionID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "redis get session")
	}

	user := &entity.SessionUser{}
	if err := json.Unmarshal(payload, user); err != nil {
		return nil, nil
	}

	return user, nil
}

func (s *redisStore) Save(w http.ResponseWriter, r *http.Request, user *entity.SessionUser) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return errors.Wrap(err, "encode session")
	}

	sessionID := uuid.NewString()
	if err := s.client.Set(r.Context(), redisKeyPrefix+sessionID, payload, s.cookie.ttl).Err(); err != nil {
		return errors.Wrap(err, "redis set session")
	}
	s.cookie.write(w, sessionID)

	return nil
}

func (s *redisStore) Clear(w http.ResponseWriter, r *http.Request) error {
	if sessionID, ok := s.cookie.read(r); ok {
		if err := s.client.Del(r.Context(), redisKeyPrefix+sessionID).Err(); err != nil {
			return errors.Wrap(err, "redis delete session")
		}
	}
	s.cookie.expire(w)

	return nil
}
