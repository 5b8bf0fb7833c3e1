package session

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/dibuiltadi/dashboard-web/internal/core/ports"
)

// CookieStore seals the access token into a signed cookie. The cookie has no
// expiry of its own, so it lives exactly as long as the browser session and
// no server-side state is kept.
type CookieStore struct {
	name   string
	secret []byte
	log    zerolog.Logger
}

var _ ports.TokenStore = (*CookieStore)(nil)

func NewCookieStore(name, secret string, log zerolog.Logger) *CookieStore {
	return &CookieStore{
		name:   name,
		secret: []byte(secret),
		log:    log,
	}
}

func (s *CookieStore) Set(w http.ResponseWriter, r *http.Request, token string) error {
	claims := jwt.MapClaims{
		"tok": token,
		"iat": time.Now().Unix(),
	}
	sealed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     s.name,
		Value:    sealed,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Get returns the stored token. A missing, tampered or otherwise unreadable
// cookie reports absent rather than an error, so callers treat every failure
// the same way: as a logged-out visitor.
func (s *CookieStore) Get(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(s.name)
	if err != nil {
		return "", false
	}

	parsed, err := jwt.Parse(cookie.Value, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		s.log.Debug().Err(err).Msg("discarding unreadable session cookie")
		return "", false
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return "", false
	}
	token, ok := claims["tok"].(string)
	if !ok || token == "" {
		return "", false
	}
	return token, true
}

func (s *CookieStore) Clear(w http.ResponseWriter, _ *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
