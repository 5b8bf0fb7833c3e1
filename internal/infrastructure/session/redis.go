package session

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/dibuiltadi/dashboard-web/internal/core/ports"
)

const (
	connectTimeout = 5 * time.Second
	keyPrefix      = "session:"
)

// RedisConfig captures the settings for establishing a Redis connection.
type RedisConfig struct {
	Addr    string
	DB      int
	Timeout time.Duration
}

// Connect initialises a Redis client and validates connectivity with a ping.
// A default timeout is applied when none is provided.
func Connect(ctx context.Context, cfg RedisConfig) (*redis.Client, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = connectTimeout
	}

	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}

// RedisStore keeps tokens server-side under a random session id; the browser
// only ever sees the id. Entries expire after the configured TTL.
type RedisStore struct {
	client *redis.Client
	name   string
	ttl    time.Duration
	log    zerolog.Logger
}

var _ ports.TokenStore = (*RedisStore)(nil)

func NewRedisStore(client *redis.Client, name string, ttl time.Duration, log zerolog.Logger) *RedisStore {
	return &RedisStore{
		client: client,
		name:   name,
		ttl:    ttl,
		log:    log,
	}
}

func (s *RedisStore) Set(w http.ResponseWriter, r *http.Request, token string) error {
	sid := uuid.NewString()
	if err := s.client.Set(r.Context(), keyPrefix+sid, token, s.ttl).Err(); err != nil {
		return fmt.Errorf("store session: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     s.name,
		Value:    sid,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Get reports absent on any lookup failure, including Redis being down; a
// degraded session store logs visitors out instead of erroring pages.
func (s *RedisStore) Get(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(s.name)
	if err != nil || cookie.Value == "" {
		return "", false
	}

	token, err := s.client.Get(r.Context(), keyPrefix+cookie.Value).Result()
	if err != nil {
		if err != redis.Nil {
			s.log.Warn().Err(err).Msg("session lookup failed")
		}
		return "", false
	}
	return token, token != ""
}

func (s *RedisStore) Clear(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(s.name); err == nil && cookie.Value != "" {
		if err := s.client.Del(r.Context(), keyPrefix+cookie.Value).Err(); err != nil {
			s.log.Warn().Err(err).Msg("session delete failed")
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     s.name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
