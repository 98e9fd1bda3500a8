package service

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"brigade/internal/apperr"
	"brigade/internal/auth"
	"brigade/internal/model"
	"brigade/internal/repository"
)

// bcryptCost matches the work factor the credential rows were hashed with.
const bcryptCost = 11

// AuthService handles login and registration.
type AuthService interface {
	Login(ctx context.Context, username, password string) (string, error)
	Register(ctx context.Context, username, password string) error
}

type authService struct {
	users  repository.UserRepository
	tokens *auth.TokenService
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, tokens *auth.TokenService) AuthService {
	return &authService{users: users, tokens: tokens}
}

// Login verifies the credential and issues a signed token. Unknown user
// and wrong password are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return "", fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return "", apperr.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", apperr.ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return token, nil
}

// Register stores a new credential row with the default role. Uniqueness
// is checked before the insert; the schema carries no unique constraint,
// so two concurrent registrations can still both pass the check.
func (s *authService) Register(ctx context.Context, username, password string) error {
	normalized := strings.TrimSpace(username)
	if normalized == "" {
		return apperr.ErrUsernameRequired
	}

	existing, err := s.users.FindByUsername(ctx, normalized)
	if err != nil {
		return fmt.Errorf("check username: %w", err)
	}
	if existing != nil {
		return apperr.ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Username:     normalized,
		PasswordHash: string(hash),
		Role:         model.RoleUser,
	}

	uow := s.users.NewUnitOfWork()
	s.users.Create(uow, user)
	if _, err := uow.Save(ctx); err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}
