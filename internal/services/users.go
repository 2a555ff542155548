package services

import (
	"context"
	stderrors "errors"
	"strings"
	"time"

	"gincana/internal/auth"
	"gincana/internal/logger"
	"gincana/internal/models"
	"gincana/internal/repository"
)

// PasswordRulesError carries every rule the submitted password broke, so
// the caller can show the full list at once.
type PasswordRulesError struct {
	Violations []string
}

func (e *PasswordRulesError) Error() string {
	return strings.Join(e.Violations, "; ")
}

// UserServiceRepository defines the repository methods needed by UserService
type UserServiceRepository interface {
	repository.UserRepository
}

// UserService handles account registration and login.
type UserService struct {
	log  logger.Logger
	repo UserServiceRepository
}

// NewUserService creates a new UserService
func NewUserService(log logger.Logger, repo UserServiceRepository) *UserService {
	return &UserService{log: log, repo: repo}
}

// Register creates an account. Password rules are checked before the
// duplicate check; all broken rules come back together in a
// PasswordRulesError. The password is stored as submitted.
func (s *UserService) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	if violations := auth.ValidatePassword(password); len(violations) > 0 {
		return nil, &PasswordRulesError{Violations: violations}
	}

	exists, err := s.repo.UserExists(ctx, username, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUserExists
	}

	user := models.User{
		ID:        newID(),
		Username:  username,
		Email:     email,
		Password:  password,
		Role:      "user",
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info("User registered", "username", username)
	return &user, nil
}

// Login checks the submitted credentials. An unknown username and a wrong
// password produce the same error, so callers cannot probe for accounts.
func (s *UserService) Login(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.repo.GetUserByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if stderrors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if user.Password != password {
		return nil, ErrInvalidCredentials
	}

	s.log.Info("User logged in", "username", user.Username)
	return user, nil
}
