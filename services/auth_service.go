package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/soclog/change-inventory/models"
	"github.com/soclog/change-inventory/password"
	"github.com/soclog/change-inventory/repositories"
)

// AuthService interface defines credential verification and account bootstrap
type AuthService interface {
	Login(ctx context.Context, username, plaintext string) (*models.User, error)
	ChangePassword(ctx context.Context, userID int, current, next string) error
	EnsureBootstrapUser(ctx context.Context, username, plaintext string) error
}

// authService implements AuthService interface
type authService struct {
	userRepo repositories.UserRepository
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repositories.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

// Login verifies a username/password pair against the stored hash. An unknown
// user and a wrong password are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, username, plaintext string) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !password.Verify(user.PasswordHash, plaintext) {
		return nil, models.ErrInvalidCredentials
	}

	return user, nil
}

// ChangePassword rotates a user's password after verifying the current one
func (s *authService) ChangePassword(ctx context.Context, userID int, current, next string) error {
	if len(next) < models.MinPasswordLength {
		return models.ErrWeakPassword
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return models.ErrNotFound
		}
		return fmt.Errorf("failed to look up user: %w", err)
	}

	if !password.Verify(user.PasswordHash, current) {
		return models.ErrInvalidCredentials
	}

	hash, err := password.Hash(next)
	if err != nil {
		return err
	}

	if err := s.userRepo.UpdatePassword(ctx, userID, hash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}

// EnsureBootstrapUser creates the default account when the users table is
// empty, so a fresh deployment is reachable.
func (s *authService) EnsureBootstrapUser(ctx context.Context, username, plaintext string) error {
	count, err := s.userRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := password.Hash(plaintext)
	if err != nil {
		return err
	}

	user := &models.User{Username: username, PasswordHash: hash}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return fmt.Errorf("failed to create bootstrap user: %w", err)
	}

	log.Printf("Created bootstrap user %q", username)
	return nil
}
