package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/dibuiltadi/dashboard-web/internal/core/domain"
	"github.com/dibuiltadi/dashboard-web/internal/core/ports"
)

// AccountService covers the operator's own profile and password.
type AccountService struct {
	gateway ports.Gateway
	log     zerolog.Logger
}

func NewAccountService(gateway ports.Gateway, log zerolog.Logger) *AccountService {
	return &AccountService{gateway: gateway, log: log}
}

// Profile fetches the operator's profile. A missing token is detected
// locally and no request is issued.
func (s *AccountService) Profile(ctx context.Context, token string) (*domain.Profile, error) {
	if token == "" {
		return nil, domain.ErrMissingToken
	}
	return s.gateway.Profile(ctx, token)
}

// UpdateProfile submits the new name and optional replacement image as a
// multipart request.
func (s *AccountService) UpdateProfile(ctx context.Context, token string, in ports.ProfileUpdateInput) error {
	if err := s.gateway.UpdateProfile(ctx, token, in); err != nil {
		s.log.Warn().Err(err).Msg("profile update failed")
		return err
	}
	s.log.Info().Msg("profile updated")
	return nil
}

// ChangePassword validates the candidate locally first; the first violated
// rule short-circuits before any request is sent. The current password is
// only ever checked upstream.
func (s *AccountService) ChangePassword(ctx context.Context, token string, in ports.PasswordChangeInput) error {
	if err := domain.ValidatePasswordChange(in.NewPassword, in.Confirmation); err != nil {
		return err
	}
	if err := s.gateway.ChangePassword(ctx, token, in); err != nil {
		s.log.Warn().Err(err).Msg("password change failed")
		return err
	}
	s.log.Info().Msg("password changed")
	return nil
}
