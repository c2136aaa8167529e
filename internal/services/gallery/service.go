// Package gallery implements the public photo gallery.
package gallery

import (
	"context"

	"naija-aroma/internal/auth"
	"naija-aroma/internal/errs"
	"naija-aroma/internal/logger"
	"naija-aroma/internal/models"
	"naija-aroma/internal/repository"
	"naija-aroma/internal/validate"
)

// Repository is the persistence surface the gallery service needs.
type Repository interface {
	ListActiveGalleryItems(ctx context.Context) ([]*models.GalleryItem, error)
	ListGalleryByCategory(ctx context.Context, category string) ([]*models.GalleryItem, error)
	GetGalleryItem(ctx context.Context, id string) (*models.GalleryItem, error)
	CreateGalleryItem(ctx context.Context, item *models.GalleryItem) (*models.GalleryItem, error)
	UpdateGalleryItem(ctx context.Context, id string, patch repository.GalleryPatch) (*models.GalleryItem, error)
	DeleteGalleryItem(ctx context.Context, id string) error
}

// Service implements gallery operations.
type Service struct {
	repo   Repository
	policy *auth.Policy
	log    *logger.Logger
}

// NewService creates the gallery service.
func NewService(repo Repository, policy *auth.Policy, log *logger.Logger) *Service {
	return &Service{repo: repo, policy: policy, log: log}
}

// CreateInput is a new gallery item.
type CreateInput struct {
	Title       string
	Description *string
	ImageURL    string
	Category    string
	SortOrder   *int32
}

// UpdateInput is a partial gallery item update.
type UpdateInput struct {
	Title       *string
	Description *string
	ImageURL    *string
	Category    *string
	IsActive    *bool
	SortOrder   *int32
}

// List returns active items in display order. Public.
func (s *Service) List(ctx context.Context) ([]*models.GalleryItem, error) {
	return s.repo.ListActiveGalleryItems(ctx)
}

// ListByCategory returns active items of one category. Public.
func (s *Service) ListByCategory(ctx context.Context, category string) ([]*models.GalleryItem, error) {
	return s.repo.ListGalleryByCategory(ctx, category)
}

// Get returns one gallery item. Public.
func (s *Service) Get(ctx context.Context, id string) (*models.GalleryItem, error) {
	if err := validate.ID(id, "gallery item ID"); err != nil {
		return nil, err
	}
	item, err := s.repo.GetGalleryItem(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, errs.NotFound("Gallery item not found")
	}
	return item, nil
}

// Create adds a gallery item. Admin only.
func (s *Service) Create(ctx context.Context, caller auth.Caller, input CreateInput) (*models.GalleryItem, error) {
	if err := s.policy.RequireAdmin(caller); err != nil {
		return nil, err
	}
	if err := validate.StringLength(input.Title, "title", 2, 100); err != nil {
		return nil, err
	}
	if err := validate.OptionalStringLength(input.Description, "description", 0, 200); err != nil {
		return nil, err
	}
	if input.ImageURL == "" {
		return nil, errs.ValidationField("image URL", "Image URL is required")
	}
	if err := validate.OneOf(input.Category, "category", "food", "events", "restaurant"); err != nil {
		return nil, err
	}

	item := &models.GalleryItem{
		Title:       input.Title,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		Category:    input.Category,
	}
	if input.SortOrder != nil {
		item.SortOrder = *input.SortOrder
	}
	return s.repo.CreateGalleryItem(ctx, item)
}

// Update applies a partial update. Admin only.
func (s *Service) Update(ctx context.Context, caller auth.Caller, id string, input UpdateInput) (*models.GalleryItem, error) {
	if err := s.policy.RequireAdmin(caller); err != nil {
		return nil, err
	}
	if err := validate.ID(id, "gallery item ID"); err != nil {
		return nil, err
	}
	if input.Category != nil {
		if err := validate.OneOf(*input.Category, "category", "food", "events", "restaurant"); err != nil {
			return nil, err
		}
	}

	item, err := s.repo.GetGalleryItem(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, errs.NotFound("Gallery item not found")
	}

	updated, err := s.repo.UpdateGalleryItem(ctx, id, repository.GalleryPatch{
		Title:       input.Title,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		Category:    input.Category,
		IsActive:    input.IsActive,
		SortOrder:   input.SortOrder,
	})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, errs.NotFound("Gallery item not found")
	}
	return updated, nil
}

// Delete removes a gallery item. Admin only.
func (s *Service) Delete(ctx context.Context, caller auth.Caller, id string) (bool, error) {
	if err := s.policy.RequireAdmin(caller); err != nil {
		return false, err
	}
	if err := validate.ID(id, "gallery item ID"); err != nil {
		return false, err
	}

	item, err := s.repo.GetGalleryItem(ctx, id)
	if err != nil {
		return false, err
	}
	if item == nil {
		return false, errs.NotFound("Gallery item not found")
	}

	if err := s.repo.DeleteGalleryItem(ctx, id); err != nil {
		return false, err
	}
	return true, nil
}
