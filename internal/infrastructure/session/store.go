package session

import (
	"context"
	"errors"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/rbcervilla/redisstore/v9"
	"github.com/redis/go-redis/v9"
)

// NewStore builds the server side session store. Sessions live in redis under
// cfg.KeyPrefix; the cookie backend signs the whole session with cfg.Secret.
func NewStore(ctx context.Context, cfg Config, rdb redis.UniversalClient) (sessions.Store, error) {
	opts := cookieOptions(cfg)

	if cfg.Backend == BackendCookie {
		if cfg.Secret == "" {
			return nil, errors.New("session secret is required for cookie sessions")
		}

		store := sessions.NewCookieStore([]byte(cfg.Secret))
		store.Options = &opts

		return store, nil
	}

	if rdb == nil {
		return nil, errors.New("redis not initialized")
	}

	store, err := redisstore.NewRedisStore(ctx, rdb)
	if err != nil {
		return nil, err
	}

	if cfg.KeyPrefix != "" {
		store.KeyPrefix(cfg.KeyPrefix)
	}
	store.Options(opts)

	return store, nil
}

func cookieOptions(cfg Config) sessions.Options {
	return sessions.Options{
		Path:     "/",
		MaxAge:   cfg.MaxAge,
		HttpOnly: true,
		Secure:   cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}
