package repository

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"naija-aroma/internal/errs"
	"naija-aroma/internal/models"
)

const categoryColumns = `id, name, description, image_url, is_active, sort_order, created_at, updated_at`

// CategoryPatch carries the fields of a partial category update; nil
// fields keep their current value.
type CategoryPatch struct {
	Name        *string
	Description *string
	ImageURL    *string
	IsActive    *bool
	SortOrder   *int32
}

// MenuItemPatch carries the fields of a partial menu item update.
type MenuItemPatch struct {
	Name         *string
	Description  *string
	Price        *decimal.Decimal
	ImageURL     *string
	IsAvailable  *bool
	IsSpicy      *bool
	IsVegetarian *bool
	PrepTime     *int32
	CategoryID   *string
}

// ListActiveCategories returns active categories in display order.
func (s *Store) ListActiveCategories(ctx context.Context) ([]*models.Category, error) {
	rows, err := s.db.Pool.Query(ctx,
		`SELECT `+categoryColumns+` FROM categories WHERE is_active ORDER BY sort_order ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	var categories []*models.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// GetCategory returns the category or nil when absent.
func (s *Store) GetCategory(ctx context.Context, id string) (*models.Category, error) {
	row := s.db.Pool.QueryRow(ctx,
		`SELECT `+categoryColumns+` FROM categories WHERE id = $1`, id)
	c, err := scanCategory(row)
	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return c, nil
}

// GetCategoryByName returns the category with that exact name, or nil.
func (s *Store) GetCategoryByName(ctx context.Context, name string) (*models.Category, error) {
	row := s.db.Pool.QueryRow(ctx,
		`SELECT `+categoryColumns+` FROM categories WHERE name = $1`, name)
	c, err := scanCategory(row)
	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get category by name: %w", err)
	}
	return c, nil
}

// CreateCategory inserts a category.
func (s *Store) CreateCategory(ctx context.Context, name string, description, imageURL *string, sortOrder int32) (*models.Category, error) {
	row := s.db.Pool.QueryRow(ctx, `
		INSERT INTO categories (name, description, image_url, sort_order)
		VALUES ($1, $2, $3, $4)
		RETURNING `+categoryColumns,
		name, description, imageURL, sortOrder)
	c, err := scanCategory(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return c, nil
}

// UpdateCategory applies a partial update and returns the new row.
func (s *Store) UpdateCategory(ctx context.Context, id string, patch CategoryPatch) (*models.Category, error) {
	row := s.db.Pool.QueryRow(ctx, `
		UPDATE categories SET
			name = COALESCE($2, name),
			description = COALESCE($3, description),
			image_url = COALESCE($4, image_url),
			is_active = COALESCE($5, is_active),
			sort_order = COALESCE($6, sort_order),
			updated_at = NOW()
		WHERE id = $1
		RETURNING `+categoryColumns,
		id, patch.Name, patch.Description, patch.ImageURL, patch.IsActive, patch.SortOrder)
	c, err := scanCategory(row)
	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	return c, nil
}

// DeleteCategory removes a category.
func (s *Store) DeleteCategory(ctx context.Context, id string) error {
	_, err := s.db.Pool.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}

// CountMenuItemsInCategory counts items still attached to a category.
func (s *Store) CountMenuItemsInCategory(ctx context.Context, categoryID string) (int, error) {
	var count int
	err := s.db.Pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM menu_items WHERE category_id = $1`, categoryID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count menu items: %w", err)
	}
	return count, nil
}

const menuItemColumns = `id, name, description, price::text, image_url, is_available,
	is_spicy, is_vegetarian, prep_time, category_id, created_at, updated_at`

// ListMenuItems returns all menu items, newest first.
func (s *Store) ListMenuItems(ctx context.Context) ([]*models.MenuItem, error) {
	return s.queryMenuItems(ctx,
		`SELECT `+menuItemColumns+` FROM menu_items ORDER BY created_at DESC`)
}

// ListAvailableMenuItems returns available items by name.
func (s *Store) ListAvailableMenuItems(ctx context.Context) ([]*models.MenuItem, error) {
	return s.queryMenuItems(ctx,
		`SELECT `+menuItemColumns+` FROM menu_items WHERE is_available ORDER BY name ASC`)
}

// ListMenuItemsByCategory returns a category's available items by name.
func (s *Store) ListMenuItemsByCategory(ctx context.Context, categoryID string) ([]*models.MenuItem, error) {
	return s.queryMenuItems(ctx,
		`SELECT `+menuItemColumns+` FROM menu_items
		 WHERE category_id = $1 AND is_available ORDER BY name ASC`, categoryID)
}

// ListAllMenuItemsByCategory returns every item of a category, by name,
// including unavailable ones. Used by the admin-facing category field.
func (s *Store) ListAllMenuItemsByCategory(ctx context.Context, categoryID string) ([]*models.MenuItem, error) {
	return s.queryMenuItems(ctx,
		`SELECT `+menuItemColumns+` FROM menu_items
		 WHERE category_id = $1 ORDER BY name ASC`, categoryID)
}

// GetMenuItem returns the item or nil when absent.
func (s *Store) GetMenuItem(ctx context.Context, id string) (*models.MenuItem, error) {
	row := s.db.Pool.QueryRow(ctx,
		`SELECT `+menuItemColumns+` FROM menu_items WHERE id = $1`, id)
	item, err := scanMenuItem(row)
	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get menu item: %w", err)
	}
	return item, nil
}

// GetMenuItemsByIDs returns the catalog snapshot for a set of item IDs,
// keyed by ID. Missing IDs are simply absent from the map.
func (s *Store) GetMenuItemsByIDs(ctx context.Context, ids []string) (map[string]*models.MenuItem, error) {
	items, err := s.queryMenuItems(ctx,
		`SELECT `+menuItemColumns+` FROM menu_items WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*models.MenuItem, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}
	return byID, nil
}

// CreateMenuItem inserts a menu item.
func (s *Store) CreateMenuItem(ctx context.Context, item *models.MenuItem) (*models.MenuItem, error) {
	row := s.db.Pool.QueryRow(ctx, `
		INSERT INTO menu_items
			(name, description, price, image_url, is_spicy, is_vegetarian, prep_time, category_id)
		VALUES ($1, $2, $3::numeric, $4, $5, $6, $7, $8)
		RETURNING `+menuItemColumns,
		item.Name, item.Description, decimalArg(item.Price), item.ImageURL,
		item.IsSpicy, item.IsVegetarian, item.PrepTime, item.CategoryID)
	created, err := scanMenuItem(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create menu item: %w", err)
	}
	return created, nil
}

// UpdateMenuItem applies a partial update and returns the new row.
func (s *Store) UpdateMenuItem(ctx context.Context, id string, patch MenuItemPatch) (*models.MenuItem, error) {
	row := s.db.Pool.QueryRow(ctx, `
		UPDATE menu_items SET
			name = COALESCE($2, name),
			description = COALESCE($3, description),
			price = COALESCE($4::numeric, price),
			image_url = COALESCE($5, image_url),
			is_available = COALESCE($6, is_available),
			is_spicy = COALESCE($7, is_spicy),
			is_vegetarian = COALESCE($8, is_vegetarian),
			prep_time = COALESCE($9, prep_time),
			category_id = COALESCE($10, category_id),
			updated_at = NOW()
		WHERE id = $1
		RETURNING `+menuItemColumns,
		id, patch.Name, patch.Description, decimalPtrArg(patch.Price), patch.ImageURL,
		patch.IsAvailable, patch.IsSpicy, patch.IsVegetarian, patch.PrepTime, patch.CategoryID)
	item, err := scanMenuItem(row)
	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update menu item: %w", err)
	}
	return item, nil
}

// DeleteMenuItem removes a menu item. Items referenced by existing
// order lines cannot be deleted; order history keeps its snapshots.
func (s *Store) DeleteMenuItem(ctx context.Context, id string) error {
	_, err := s.db.Pool.Exec(ctx, `DELETE FROM menu_items WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return errs.Conflict("Cannot delete menu item referenced by existing orders")
		}
		return fmt.Errorf("failed to delete menu item: %w", err)
	}
	return nil
}

func (s *Store) queryMenuItems(ctx context.Context, sql string, args ...any) ([]*models.MenuItem, error) {
	rows, err := s.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query menu items: %w", err)
	}
	defer rows.Close()

	var items []*models.MenuItem
	for rows.Next() {
		item, err := scanMenuItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan menu item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func scanCategory(row rowScanner) (*models.Category, error) {
	var c models.Category
	err := row.Scan(&c.ID, &c.Name, &c.Description, &c.ImageURL,
		&c.IsActive, &c.SortOrder, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func scanMenuItem(row rowScanner) (*models.MenuItem, error) {
	var (
		item     models.MenuItem
		priceStr string
	)
	err := row.Scan(&item.ID, &item.Name, &item.Description, &priceStr,
		&item.ImageURL, &item.IsAvailable, &item.IsSpicy, &item.IsVegetarian,
		&item.PrepTime, &item.CategoryID, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if item.Price, err = parseDecimal(priceStr); err != nil {
		return nil, err
	}
	return &item, nil
}
