// Package reviews implements customer reviews with admin moderation.
package reviews

import (
	"context"

	"naija-aroma/internal/auth"
	"naija-aroma/internal/errs"
	"naija-aroma/internal/logger"
	"naija-aroma/internal/models"
	"naija-aroma/internal/validate"
)

// Repository is the persistence surface the reviews service needs.
type Repository interface {
	CreateReview(ctx context.Context, userID string, rating int32, comment string) (*models.Review, error)
	GetReview(ctx context.Context, id string) (*models.Review, error)
	ListReviews(ctx context.Context) ([]*models.Review, error)
	ListApprovedReviews(ctx context.Context) ([]*models.Review, error)
	ListReviewsByUser(ctx context.Context, userID string) ([]*models.Review, error)
	ApproveReview(ctx context.Context, id string) (*models.Review, error)
	DeleteReview(ctx context.Context, id string) error
}

// Service implements review operations.
type Service struct {
	repo   Repository
	policy *auth.Policy
	log    *logger.Logger
}

// NewService creates the reviews service.
func NewService(repo Repository, policy *auth.Policy, log *logger.Logger) *Service {
	return &Service{repo: repo, policy: policy, log: log}
}

// CreateInput is a new review.
type CreateInput struct {
	Rating  int32
	Comment string
}

// Create records an unapproved review for the caller.
func (s *Service) Create(ctx context.Context, caller auth.Caller, input CreateInput) (*models.Review, error) {
	if err := s.policy.RequireAuthenticated(caller); err != nil {
		return nil, err
	}
	if err := validate.IntRange(input.Rating, "rating", 1, 5); err != nil {
		return nil, err
	}
	if err := validate.StringLength(input.Comment, "comment", 10, 500); err != nil {
		return nil, err
	}
	return s.repo.CreateReview(ctx, caller.UserID, input.Rating, input.Comment)
}

// List returns every review, approved or not. Admin only.
func (s *Service) List(ctx context.Context, caller auth.Caller) ([]*models.Review, error) {
	if err := s.policy.RequireAdmin(caller); err != nil {
		return nil, err
	}
	return s.repo.ListReviews(ctx)
}

// ListApproved returns published reviews. Public.
func (s *Service) ListApproved(ctx context.Context) ([]*models.Review, error) {
	return s.repo.ListApprovedReviews(ctx)
}

// ListByUser returns a user's reviews. Used by the User.reviews relation.
func (s *Service) ListByUser(ctx context.Context, userID string) ([]*models.Review, error) {
	return s.repo.ListReviewsByUser(ctx, userID)
}

// Get returns one review. Approved reviews are public; unapproved ones
// are visible only to admins and the review's author.
func (s *Service) Get(ctx context.Context, caller auth.Caller, id string) (*models.Review, error) {
	if err := validate.ID(id, "review ID"); err != nil {
		return nil, err
	}

	review, err := s.repo.GetReview(ctx, id)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, errs.NotFound("Review not found")
	}

	if !review.IsApproved {
		if !caller.Authenticated {
			return nil, errs.Forbidden("Access denied")
		}
		if err := s.policy.AuthorizeOwnerOrAdmin(caller, review.UserID, ""); err != nil {
			return nil, err
		}
	}
	return review, nil
}

// Approve publishes a review. Admin only.
func (s *Service) Approve(ctx context.Context, caller auth.Caller, id string) (*models.Review, error) {
	if err := s.policy.RequireAdmin(caller); err != nil {
		return nil, err
	}
	if err := validate.ID(id, "review ID"); err != nil {
		return nil, err
	}

	review, err := s.repo.ApproveReview(ctx, id)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, errs.NotFound("Review not found")
	}
	return review, nil
}

// Delete removes a review. Admin only.
func (s *Service) Delete(ctx context.Context, caller auth.Caller, id string) (bool, error) {
	if err := s.policy.RequireAdmin(caller); err != nil {
		return false, err
	}
	if err := validate.ID(id, "review ID"); err != nil {
		return false, err
	}

	review, err := s.repo.GetReview(ctx, id)
	if err != nil {
		return false, err
	}
	if review == nil {
		return false, errs.NotFound("Review not found")
	}

	if err := s.repo.DeleteReview(ctx, id); err != nil {
		return false, err
	}
	return true, nil
}
