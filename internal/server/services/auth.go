package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/messagely/internal/common"
	"github.com/dmitrijs2005/messagely/internal/logging"
	"github.com/dmitrijs2005/messagely/internal/server/auth"
	"github.com/dmitrijs2005/messagely/internal/server/models"
)

// AuthService turns credentials into access tokens.
type AuthService struct {
	users  *UserService
	issuer *auth.TokenIssuer
	logger logging.Logger
}

func NewAuthService(users *UserService, issuer *auth.TokenIssuer, logger logging.Logger) *AuthService {
	return &AuthService{users: users, issuer: issuer, logger: logger}
}

// Login checks credentials, records the login and issues a token.
// Bad credentials and unknown usernames both yield ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	ok, err := s.users.Authenticate(ctx, username, password)
	if err != nil {
		return "", err
	}
	if !ok {
		s.logger.Info(ctx, "login rejected", "username", username)
		return "", common.ErrInvalidCredentials
	}

	return s.loggedIn(ctx, username)
}

// RegisterAndLogin creates the user and returns a token for it. The insert
// already stamps last_login_at, so the only write is the registration itself.
func (s *AuthService) RegisterAndLogin(ctx context.Context, r models.Registration) (string, error) {
	if _, err := s.users.Register(ctx, r); err != nil {
		return "", err
	}
	s.logger.Info(ctx, "user registered", "username", r.Username)

	return s.issue(r.Username)
}

func (s *AuthService) loggedIn(ctx context.Context, username string) (string, error) {
	if _, err := s.users.TouchLastLogin(ctx, username); err != nil {
		s.logger.Error(ctx, "last login update failed", "username", username, "err", err)
		return "", err
	}

	return s.issue(username)
}

func (s *AuthService) issue(username string) (string, error) {
	token, err := s.issuer.Issue(username)
	if err != nil {
		return "", fmt.Errorf("error issuing token: %w", err)
	}
	return token, nil
}
