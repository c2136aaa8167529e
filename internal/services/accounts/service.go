// Package accounts implements registration, login and user queries.
package accounts

import (
	"context"

	"naija-aroma/internal/auth"
	"naija-aroma/internal/errs"
	"naija-aroma/internal/logger"
	"naija-aroma/internal/models"
	"naija-aroma/internal/validate"
)

// Repository is the persistence surface the accounts service needs.
type Repository interface {
	CreateUser(ctx context.Context, email, username, phone, passwordHash string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	FindUserByEmailOrUsername(ctx context.Context, email, username string) (*models.User, error)
	ListUsers(ctx context.Context) ([]*models.User, error)
}

// Service implements account operations.
type Service struct {
	repo   Repository
	policy *auth.Policy
	tokens *auth.TokenManager
	log    *logger.Logger
}

// NewService creates the accounts service.
func NewService(repo Repository, policy *auth.Policy, tokens *auth.TokenManager, log *logger.Logger) *Service {
	return &Service{repo: repo, policy: policy, tokens: tokens, log: log}
}

// AuthPayload is returned by register and login.
type AuthPayload struct {
	Token string
	User  *models.User
}

// RegisterInput is a new account request.
type RegisterInput struct {
	Email    string
	Username string
	Phone    string
	Password string
}

// LoginInput is a credential pair.
type LoginInput struct {
	Email    string
	Password string
}

// Register creates an account and returns a fresh token for it.
func (s *Service) Register(ctx context.Context, input RegisterInput, requestID string) (*AuthPayload, error) {
	if err := validate.Email(input.Email); err != nil {
		return nil, err
	}
	if err := validate.Username(input.Username); err != nil {
		return nil, err
	}
	if err := validate.Phone(input.Phone); err != nil {
		return nil, err
	}
	if err := validate.Password(input.Password); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindUserByEmailOrUsername(ctx, input.Email, input.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if existing.Email == input.Email {
			return nil, errs.Conflict("Email already registered")
		}
		return nil, errs.Conflict("Username already taken")
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.CreateUser(ctx, input.Email, input.Username, input.Phone, hash)
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		return nil, err
	}

	s.log.Info("user_registered", requestID, "User registered", map[string]interface{}{
		"username": user.Username,
	})
	return &AuthPayload{Token: token, User: user}, nil
}

// Login verifies the credentials and mints a token. Unknown email and
// wrong password report the same message so login cannot be used to
// probe for accounts.
func (s *Service) Login(ctx context.Context, input LoginInput, requestID string) (*AuthPayload, error) {
	if err := validate.Email(input.Email); err != nil {
		return nil, err
	}
	if input.Password == "" {
		return nil, errs.ValidationField("password", "Password is required")
	}

	user, err := s.repo.GetUserByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || !auth.CheckPassword(input.Password, user.Password) {
		return nil, errs.Authentication("Invalid email or password")
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		return nil, err
	}

	s.log.Info("user_logged_in", requestID, "User logged in", map[string]interface{}{
		"username": user.Username,
	})
	return &AuthPayload{Token: token, User: user}, nil
}

// Me returns the authenticated caller's account.
func (s *Service) Me(_ context.Context, caller auth.Caller) (*models.User, error) {
	if err := s.policy.RequireAuthenticated(caller); err != nil {
		return nil, err
	}
	return caller.User, nil
}

// Users lists all accounts. Admin only.
func (s *Service) Users(ctx context.Context, caller auth.Caller) ([]*models.User, error) {
	if err := s.policy.RequireAdmin(caller); err != nil {
		return nil, err
	}
	return s.repo.ListUsers(ctx)
}
