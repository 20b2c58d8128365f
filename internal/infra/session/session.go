package session

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"jobly/config"
	"jobly/internal/domain/service"
	"jobly/internal/errors"
)

const (
	DriverCookie = "cookie"
	DriverRedis  = "redis"
)

type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// New selects the session store named by session.driver.
func New(params Params) (service.SessionStore, error) {
	cfg := params.Config.Session

	switch cfg.Driver {
	case DriverCookie, "":
		return NewCookieStore(cfg.Secret, cfg.CookieName, params.Config.Env.ServiceName, cfg.TTL, cfg.Secure)
	case DriverRedis:
		if params.Config.Redis == nil || params.Config.Redis.Addr == "" {
			return nil, errors.New("redis.addr is required for the redis session driver")
		}

		client := redis.NewClient(&redis.Options{
			Addr:     params.Config.Redis.Addr,
			Password: params.Config.Redis.Password,
			DB:       params.Config.Redis.DB,
		})

		params.Lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				if err := client.Ping(ctx).Err(); err != nil {
					return errors.Wrap(err, "redis ping")
				}
				params.Logger.Info("Redis session store connected", slog.String("addr", params.Config.Redis.Addr))

				return nil
			},
			OnStop: func(ctx context.Context) error {
				return client.Close()
			},
		})

		return NewRedisStore(client, cfg.CookieName, cfg.TTL, cfg.Secure), nil
	default:
		return nil, errors.Errorf("unknown session driver %q", cfg.Driver)
	}
}
