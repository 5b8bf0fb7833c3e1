package service

import (
	"context"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/dibuiltadi/dashboard-web/internal/core/domain"
	"github.com/dibuiltadi/dashboard-web/internal/core/ports"
)

// AuthService exchanges operator credentials for an upstream bearer token.
// The token is opaque to this application; no expiry is tracked.
type AuthService struct {
	gateway ports.Gateway
	log     zerolog.Logger
}

func NewAuthService(gateway ports.Gateway, log zerolog.Logger) *AuthService {
	return &AuthService{gateway: gateway, log: log}
}

// Login authenticates against the v1 endpoint and returns the access token.
// Backends that predate the v1 route answer it with a 404; those get one
// retry against the legacy /login endpoint with the same credentials. Any
// other failure, transport or rejection, surfaces to the caller unchanged.
func (s *AuthService) Login(ctx context.Context, phone, password string) (string, error) {
	res, err := s.gateway.Login(ctx, ports.LoginInput{Phone: phone, Password: password})
	if err != nil {
		if !endpointMissing(err) {
			s.log.Warn().Err(err).Msg("login rejected")
			return "", err
		}

		s.log.Debug().Msg("v1 login endpoint missing, retrying legacy route")
		res, err = s.gateway.LoginLegacy(ctx, ports.LegacyLoginInput{Username: phone, Password: password})
		if err != nil {
			s.log.Warn().Err(err).Msg("legacy login rejected")
			return "", err
		}
	}

	s.log.Info().Msg("operator logged in")
	return res.AccessToken, nil
}

func endpointMissing(err error) bool {
	var ue *domain.UpstreamError
	return errors.As(err, &ue) && ue.StatusCode == http.StatusNotFound
}
