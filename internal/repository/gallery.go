package repository

import (
	"context"
	"fmt"

	"naija-aroma/internal/models"
)

const galleryColumns = `id, title, description, image_url, category, is_active, sort_order, created_at, updated_at`

// GalleryPatch carries the fields of a partial gallery item update.
type GalleryPatch struct {
	Title       *string
	Description *string
	ImageURL    *string
	Category    *string
	IsActive    *bool
	SortOrder   *int32
}

// ListActiveGalleryItems returns active items in display order.
func (s *Store) ListActiveGalleryItems(ctx context.Context) ([]*models.GalleryItem, error) {
	return s.queryGallery(ctx, `
		SELECT `+galleryColumns+` FROM gallery_items
		WHERE is_active ORDER BY sort_order ASC, created_at DESC`)
}

// ListGalleryByCategory returns active items of one category in display order.
func (s *Store) ListGalleryByCategory(ctx context.Context, category string) ([]*models.GalleryItem, error) {
	return s.queryGallery(ctx, `
		SELECT `+galleryColumns+` FROM gallery_items
		WHERE category = $1 AND is_active ORDER BY sort_order ASC, created_at DESC`, category)
}

// GetGalleryItem returns the item or nil when absent.
func (s *Store) GetGalleryItem(ctx context.Context, id string) (*models.GalleryItem, error) {
	row := s.db.Pool.QueryRow(ctx,
		`SELECT `+galleryColumns+` FROM gallery_items WHERE id = $1`, id)
	item, err := scanGalleryItem(row)
	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get gallery item: %w", err)
	}
	return item, nil
}

// CreateGalleryItem inserts a gallery item.
func (s *Store) CreateGalleryItem(ctx context.Context, item *models.GalleryItem) (*models.GalleryItem, error) {
	row := s.db.Pool.QueryRow(ctx, `
		INSERT INTO gallery_items (title, description, image_url, category, sort_order)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+galleryColumns,
		item.Title, item.Description, item.ImageURL, item.Category, item.SortOrder)
	created, err := scanGalleryItem(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create gallery item: %w", err)
	}
	return created, nil
}

// UpdateGalleryItem applies a partial update and returns the new row.
func (s *Store) UpdateGalleryItem(ctx context.Context, id string, patch GalleryPatch) (*models.GalleryItem, error) {
	row := s.db.Pool.QueryRow(ctx, `
		UPDATE gallery_items SET
			title = COALESCE($2, title),
			description = COALESCE($3, description),
			image_url = COALESCE($4, image_url),
			category = COALESCE($5, category),
			is_active = COALESCE($6, is_active),
			sort_order = COALESCE($7, sort_order),
			updated_at = NOW()
		WHERE id = $1
		RETURNING `+galleryColumns,
		id, patch.Title, patch.Description, patch.ImageURL,
		patch.Category, patch.IsActive, patch.SortOrder)
	item, err := scanGalleryItem(row)
	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update gallery item: %w", err)
	}
	return item, nil
}

// DeleteGalleryItem removes a gallery item.
func (s *Store) DeleteGalleryItem(ctx context.Context, id string) error {
	_, err := s.db.Pool.Exec(ctx, `DELETE FROM gallery_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete gallery item: %w", err)
	}
	return nil
}

func (s *Store) queryGallery(ctx context.Context, sql string, args ...any) ([]*models.GalleryItem, error) {
	rows, err := s.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query gallery items: %w", err)
	}
	defer rows.Close()

	var items []*models.GalleryItem
	for rows.Next() {
		item, err := scanGalleryItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan gallery item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func scanGalleryItem(row rowScanner) (*models.GalleryItem, error) {
	var g models.GalleryItem
	err := row.Scan(&g.ID, &g.Title, &g.Description, &g.ImageURL,
		&g.Category, &g.IsActive, &g.SortOrder, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &g, nil
}
