package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/docport/doctor-portal/internal/models"
	"github.com/docport/doctor-portal/internal/repo"
)

// CredentialStore is the slice of the user repository the auth flow needs.
type CredentialStore interface {
	FindByUsernameOrEmail(ctx context.Context, username, email string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Create(ctx context.Context, username, email, passwordHash string) (*models.User, error)
}

// Service orchestrates registration (uniqueness check, hash, persist) and
// login (lookup, verify, issue token). All store and crypto faults are
// translated here: callers see ErrDuplicateCredential, ErrInvalidCredentials,
// or a wrapped internal error, never a raw driver error.
type Service struct {
	Store  CredentialStore
	Issuer *TokenIssuer
}

func NewService(store CredentialStore, issuer *TokenIssuer) *Service {
	return &Service{Store: store, Issuer: issuer}
}

// Register creates a user with a hashed password. The pre-check and the
// insert are separate round trips, so two concurrent registrations can both
// pass the check; the table's unique constraints are the backstop, and a
// unique violation on insert maps to the same ErrDuplicateCredential.
func (s *Service) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	_, err := s.Store.FindByUsernameOrEmail(ctx, username, email)
	if err == nil {
		return nil, ErrDuplicateCredential
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("check existing user: %w", err)
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	user, err := s.Store.Create(ctx, username, email, hash)
	if err != nil {
		if repo.IsUniqueViolation(err) {
			return nil, ErrDuplicateCredential
		}
		return nil, fmt.Errorf("persist user: %w", err)
	}

	return user, nil
}

// Login verifies the password for username and issues a token. An unknown
// username and a wrong password both return ErrInvalidCredentials; the
// internal reason is discarded before it can reach a response.
func (s *Service) Login(ctx context.Context, username, password string) (string, *models.User, error) {
	user, err := s.Store.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("look up user: %w", err)
	}

	if !CheckPassword(password, user.PasswordHash) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.Issuer.Issue(user.ID)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}
