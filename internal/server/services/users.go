// Package services contains server-side business logic: the user directory,
// the message ledger and the authentication flows composed from them.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/messagely/internal/common"
	"github.com/dmitrijs2005/messagely/internal/server/auth"
	"github.com/dmitrijs2005/messagely/internal/server/models"
	"github.com/dmitrijs2005/messagely/internal/server/repositories/repomanager"
)

// UserService owns user records: registration, credential checks,
// last-login tracking and lookups. The password hash never leaves it.
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	hasher      auth.PasswordHasher
	now         func() time.Time
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, hasher auth.PasswordHasher) *UserService {
	return &UserService{
		db:          db,
		repomanager: m,
		hasher:      hasher,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Register hashes the password and stores a new user with join and
// last-login times set to now. A taken username yields ErrDuplicateUser.
func (s *UserService) Register(ctx context.Context, r models.Registration) (*models.UserDetail, error) {
	if strings.TrimSpace(r.Username) == "" {
		return nil, fmt.Errorf("%w: username is required", common.ErrValidation)
	}
	if r.Password == "" {
		return nil, fmt.Errorf("%w: password is required", common.ErrValidation)
	}

	// hash first: a failure here must not leave a row behind
	hash, err := s.hasher.Hash(ctx, r.Password)
	if err != nil {
		if errors.Is(err, common.ErrValidation) {
			return nil, err
		}
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	now := s.now()
	user := &models.User{
		Username:     r.Username,
		PasswordHash: hash,
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		Phone:        r.Phone,
		JoinedAt:     now,
		LastLoginAt:  now,
	}

	repo := s.repomanager.Users(s.db)
	stored, err := repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrDuplicateUser
		}
		return nil, fmt.Errorf("%w: error creating user: %v", common.ErrStorage, err)
	}

	return stored.Detail(), nil
}

// Authenticate reports whether password matches the stored hash. An unknown
// username is ErrInvalidCredentials rather than false.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (bool, error) {
	repo := s.repomanager.Users(s.db)
	hash, err := repo.GetPasswordHash(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return false, common.ErrInvalidCredentials
		}
		return false, fmt.Errorf("%w: error fetching credentials: %v", common.ErrStorage, err)
	}

	if s.hasher.Verify(ctx, password, hash) {
		return true, nil
	}
	// Verify reports false when it never got to compare
	if err := ctx.Err(); err != nil {
		return false, fmt.Errorf("error verifying password: %w", err)
	}
	return false, nil
}

// TouchLastLogin sets last_login_at to now.
func (s *UserService) TouchLastLogin(ctx context.Context, username string) (*models.UserDetail, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.TouchLastLogin(ctx, username, s.now())
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrUserNotFound
		}
		return nil, fmt.Errorf("%w: error updating last login: %v", common.ErrStorage, err)
	}
	return user.Detail(), nil
}

// List returns the public identity of every user.
func (s *UserService) List(ctx context.Context) ([]models.UserSummary, error) {
	repo := s.repomanager.Users(s.db)
	list, err := repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: error listing users: %v", common.ErrStorage, err)
	}
	return list, nil
}

// Get returns a user without the password hash.
func (s *UserService) Get(ctx context.Context, username string) (*models.UserDetail, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.Get(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrUserNotFound
		}
		return nil, fmt.Errorf("%w: error fetching user: %v", common.ErrStorage, err)
	}
	return user.Detail(), nil
}
