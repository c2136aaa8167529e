package repository

import (
	"context"
	"fmt"

	"naija-aroma/internal/models"
)

const reviewColumns = `id, user_id, rating, comment, is_approved, created_at, updated_at`

// CreateReview inserts a review, unapproved by default.
func (s *Store) CreateReview(ctx context.Context, userID string, rating int32, comment string) (*models.Review, error) {
	row := s.db.Pool.QueryRow(ctx, `
		INSERT INTO reviews (user_id, rating, comment)
		VALUES ($1, $2, $3)
		RETURNING `+reviewColumns,
		userID, rating, comment)
	review, err := scanReview(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}
	return review, nil
}

// GetReview returns the review or nil when absent.
func (s *Store) GetReview(ctx context.Context, id string) (*models.Review, error) {
	row := s.db.Pool.QueryRow(ctx,
		`SELECT `+reviewColumns+` FROM reviews WHERE id = $1`, id)
	review, err := scanReview(row)
	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get review: %w", err)
	}
	return review, nil
}

// ListReviews returns all reviews, newest first.
func (s *Store) ListReviews(ctx context.Context) ([]*models.Review, error) {
	return s.queryReviews(ctx,
		`SELECT `+reviewColumns+` FROM reviews ORDER BY created_at DESC`)
}

// ListApprovedReviews returns approved reviews, newest first.
func (s *Store) ListApprovedReviews(ctx context.Context) ([]*models.Review, error) {
	return s.queryReviews(ctx,
		`SELECT `+reviewColumns+` FROM reviews WHERE is_approved ORDER BY created_at DESC`)
}

// ListReviewsByUser returns a user's reviews, newest first.
func (s *Store) ListReviewsByUser(ctx context.Context, userID string) ([]*models.Review, error) {
	return s.queryReviews(ctx,
		`SELECT `+reviewColumns+` FROM reviews WHERE user_id = $1 ORDER BY created_at DESC`, userID)
}

// ApproveReview marks a review approved and returns it, or nil when absent.
func (s *Store) ApproveReview(ctx context.Context, id string) (*models.Review, error) {
	row := s.db.Pool.QueryRow(ctx, `
		UPDATE reviews SET is_approved = TRUE, updated_at = NOW()
		WHERE id = $1
		RETURNING `+reviewColumns, id)
	review, err := scanReview(row)
	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to approve review: %w", err)
	}
	return review, nil
}

// DeleteReview removes a review.
func (s *Store) DeleteReview(ctx context.Context, id string) error {
	_, err := s.db.Pool.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}
	return nil
}

func (s *Store) queryReviews(ctx context.Context, sql string, args ...any) ([]*models.Review, error) {
	rows, err := s.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query reviews: %w", err)
	}
	defer rows.Close()

	var reviews []*models.Review
	for rows.Next() {
		review, err := scanReview(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		reviews = append(reviews, review)
	}
	return reviews, rows.Err()
}

func scanReview(row rowScanner) (*models.Review, error) {
	var r models.Review
	err := row.Scan(&r.ID, &r.UserID, &r.Rating, &r.Comment,
		&r.IsApproved, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &r, nil
}
