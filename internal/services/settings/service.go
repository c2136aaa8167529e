// Package settings implements the admin-editable key-value settings.
package settings

import (
	"context"

	"naija-aroma/internal/auth"
	"naija-aroma/internal/errs"
	"naija-aroma/internal/logger"
	"naija-aroma/internal/models"
)

// Repository is the persistence surface the settings service needs.
type Repository interface {
	ListSettings(ctx context.Context) ([]*models.Setting, error)
	GetSetting(ctx context.Context, key string) (*models.Setting, error)
	UpsertSetting(ctx context.Context, key, value string) (*models.Setting, error)
}

// Service implements settings operations.
type Service struct {
	repo   Repository
	policy *auth.Policy
	log    *logger.Logger
}

// NewService creates the settings service.
func NewService(repo Repository, policy *auth.Policy, log *logger.Logger) *Service {
	return &Service{repo: repo, policy: policy, log: log}
}

// List returns every setting. Admin only.
func (s *Service) List(ctx context.Context, caller auth.Caller) ([]*models.Setting, error) {
	if err := s.policy.RequireAdmin(caller); err != nil {
		return nil, err
	}
	return s.repo.ListSettings(ctx)
}

// Get returns one setting by key. Public; the frontend reads display
// settings without credentials.
func (s *Service) Get(ctx context.Context, key string) (*models.Setting, error) {
	setting, err := s.repo.GetSetting(ctx, key)
	if err != nil {
		return nil, err
	}
	if setting == nil {
		return nil, errs.NotFound("Setting not found")
	}
	return setting, nil
}

// Update creates or overwrites a setting. Admin only.
func (s *Service) Update(ctx context.Context, caller auth.Caller, key, value string) (*models.Setting, error) {
	if err := s.policy.RequireAdmin(caller); err != nil {
		return nil, err
	}
	if key == "" {
		return nil, errs.ValidationField("key", "Setting key is required")
	}
	return s.repo.UpsertSetting(ctx, key, value)
}
