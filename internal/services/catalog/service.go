// Package catalog implements menu category and menu item management.
package catalog

import (
	"context"

	"github.com/shopspring/decimal"

	"naija-aroma/internal/auth"
	"naija-aroma/internal/errs"
	"naija-aroma/internal/logger"
	"naija-aroma/internal/models"
	"naija-aroma/internal/repository"
	"naija-aroma/internal/validate"
)

// Repository is the persistence surface the catalog service needs.
type Repository interface {
	ListActiveCategories(ctx context.Context) ([]*models.Category, error)
	GetCategory(ctx context.Context, id string) (*models.Category, error)
	GetCategoryByName(ctx context.Context, name string) (*models.Category, error)
	CreateCategory(ctx context.Context, name string, description, imageURL *string, sortOrder int32) (*models.Category, error)
	UpdateCategory(ctx context.Context, id string, patch repository.CategoryPatch) (*models.Category, error)
	DeleteCategory(ctx context.Context, id string) error
	CountMenuItemsInCategory(ctx context.Context, categoryID string) (int, error)

	ListMenuItems(ctx context.Context) ([]*models.MenuItem, error)
	ListAvailableMenuItems(ctx context.Context) ([]*models.MenuItem, error)
	ListMenuItemsByCategory(ctx context.Context, categoryID string) ([]*models.MenuItem, error)
	ListAllMenuItemsByCategory(ctx context.Context, categoryID string) ([]*models.MenuItem, error)
	GetMenuItem(ctx context.Context, id string) (*models.MenuItem, error)
	CreateMenuItem(ctx context.Context, item *models.MenuItem) (*models.MenuItem, error)
	UpdateMenuItem(ctx context.Context, id string, patch repository.MenuItemPatch) (*models.MenuItem, error)
	DeleteMenuItem(ctx context.Context, id string) error
}

// Service implements catalog operations.
type Service struct {
	repo   Repository
	policy *auth.Policy
	log    *logger.Logger
}

// NewService creates the catalog service.
func NewService(repo Repository, policy *auth.Policy, log *logger.Logger) *Service {
	return &Service{repo: repo, policy: policy, log: log}
}

// CreateCategoryInput is a new category.
type CreateCategoryInput struct {
	Name        string
	Description *string
	ImageURL    *string
	SortOrder   *int32
}

// UpdateCategoryInput is a partial category update.
type UpdateCategoryInput struct {
	Name        *string
	Description *string
	ImageURL    *string
	IsActive    *bool
	SortOrder   *int32
}

// CreateMenuItemInput is a new menu item.
type CreateMenuItemInput struct {
	Name         string
	Description  string
	Price        decimal.Decimal
	ImageURL     *string
	IsSpicy      *bool
	IsVegetarian *bool
	PrepTime     *int32
	CategoryID   string
}

// UpdateMenuItemInput is a partial menu item update.
type UpdateMenuItemInput struct {
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

// Categories lists active categories. Public.
func (s *Service) Categories(ctx context.Context) ([]*models.Category, error) {
	return s.repo.ListActiveCategories(ctx)
}

// Category returns one category. Public.
func (s *Service) Category(ctx context.Context, id string) (*models.Category, error) {
	if err := validate.ID(id, "category ID"); err != nil {
		return nil, err
	}
	category, err := s.repo.GetCategory(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, errs.NotFound("Category not found")
	}
	return category, nil
}

// CreateCategory creates a category. Admin only; names are unique.
func (s *Service) CreateCategory(ctx context.Context, caller auth.Caller, input CreateCategoryInput) (*models.Category, error) {
	if err := s.policy.RequireAdmin(caller); err != nil {
		return nil, err
	}
	if err := validate.StringLength(input.Name, "name", 2, 50); err != nil {
		return nil, err
	}
	if err := validate.OptionalStringLength(input.Description, "description", 0, 200); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetCategoryByName(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errs.Conflict("Category name already exists")
	}

	var sortOrder int32
	if input.SortOrder != nil {
		sortOrder = *input.SortOrder
	}
	return s.repo.CreateCategory(ctx, input.Name, input.Description, input.ImageURL, sortOrder)
}

// UpdateCategory applies a partial update. Admin only.
func (s *Service) UpdateCategory(ctx context.Context, caller auth.Caller, id string, input UpdateCategoryInput) (*models.Category, error) {
	if err := s.policy.RequireAdmin(caller); err != nil {
		return nil, err
	}
	if err := validate.ID(id, "category ID"); err != nil {
		return nil, err
	}

	category, err := s.repo.GetCategory(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, errs.NotFound("Category not found")
	}

	if input.Name != nil && *input.Name != category.Name {
		existing, err := s.repo.GetCategoryByName(ctx, *input.Name)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, errs.Conflict("Category name already exists")
		}
	}

	updated, err := s.repo.UpdateCategory(ctx, id, repository.CategoryPatch{
		Name:        input.Name,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		IsActive:    input.IsActive,
		SortOrder:   input.SortOrder,
	})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, errs.NotFound("Category not found")
	}
	return updated, nil
}

// DeleteCategory deletes an empty category. Admin only.
func (s *Service) DeleteCategory(ctx context.Context, caller auth.Caller, id string) (bool, error) {
	if err := s.policy.RequireAdmin(caller); err != nil {
		return false, err
	}
	if err := validate.ID(id, "category ID"); err != nil {
		return false, err
	}

	category, err := s.repo.GetCategory(ctx, id)
	if err != nil {
		return false, err
	}
	if category == nil {
		return false, errs.NotFound("Category not found")
	}

	count, err := s.repo.CountMenuItemsInCategory(ctx, id)
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, errs.Conflict("Cannot delete category with existing menu items")
	}

	if err := s.repo.DeleteCategory(ctx, id); err != nil {
		return false, err
	}
	return true, nil
}

// MenuItems lists all menu items. Public.
func (s *Service) MenuItems(ctx context.Context) ([]*models.MenuItem, error) {
	return s.repo.ListMenuItems(ctx)
}

// AvailableMenuItems lists orderable items. Public.
func (s *Service) AvailableMenuItems(ctx context.Context) ([]*models.MenuItem, error) {
	return s.repo.ListAvailableMenuItems(ctx)
}

// MenuItemsByCategory lists a category's orderable items. Public.
func (s *Service) MenuItemsByCategory(ctx context.Context, categoryID string) ([]*models.MenuItem, error) {
	if err := validate.ID(categoryID, "category ID"); err != nil {
		return nil, err
	}
	return s.repo.ListMenuItemsByCategory(ctx, categoryID)
}

// CategoryMenuItems lists every item of a category, including
// unavailable ones. Used by the Category.menuItems relation.
func (s *Service) CategoryMenuItems(ctx context.Context, categoryID string) ([]*models.MenuItem, error) {
	return s.repo.ListAllMenuItemsByCategory(ctx, categoryID)
}

// MenuItem returns one menu item. Public.
func (s *Service) MenuItem(ctx context.Context, id string) (*models.MenuItem, error) {
	if err := validate.ID(id, "menu item ID"); err != nil {
		return nil, err
	}
	item, err := s.repo.GetMenuItem(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, errs.NotFound("Menu item not found")
	}
	return item, nil
}

// CreateMenuItem creates a menu item under an existing category. Admin only.
func (s *Service) CreateMenuItem(ctx context.Context, caller auth.Caller, input CreateMenuItemInput) (*models.MenuItem, error) {
	if err := s.policy.RequireAdmin(caller); err != nil {
		return nil, err
	}
	if err := validateMenuItemFields(input.Name, input.Description, input.Price, input.PrepTime); err != nil {
		return nil, err
	}
	if err := validate.ID(input.CategoryID, "category ID"); err != nil {
		return nil, err
	}

	category, err := s.repo.GetCategory(ctx, input.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, errs.NotFound("Category not found")
	}

	item := &models.MenuItem{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		ImageURL:    input.ImageURL,
		PrepTime:    input.PrepTime,
		CategoryID:  input.CategoryID,
	}
	if input.IsSpicy != nil {
		item.IsSpicy = *input.IsSpicy
	}
	if input.IsVegetarian != nil {
		item.IsVegetarian = *input.IsVegetarian
	}
	return s.repo.CreateMenuItem(ctx, item)
}

// UpdateMenuItem applies a partial update. Admin only.
func (s *Service) UpdateMenuItem(ctx context.Context, caller auth.Caller, id string, input UpdateMenuItemInput) (*models.MenuItem, error) {
	if err := s.policy.RequireAdmin(caller); err != nil {
		return nil, err
	}
	if err := validate.ID(id, "menu item ID"); err != nil {
		return nil, err
	}
	if input.Price != nil && !input.Price.IsPositive() {
		return nil, errs.ValidationField("price", "Price must be positive")
	}

	item, err := s.repo.GetMenuItem(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, errs.NotFound("Menu item not found")
	}

	if input.CategoryID != nil {
		if err := validate.ID(*input.CategoryID, "category ID"); err != nil {
			return nil, err
		}
		category, err := s.repo.GetCategory(ctx, *input.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, errs.NotFound("Category not found")
		}
	}

	updated, err := s.repo.UpdateMenuItem(ctx, id, repository.MenuItemPatch{
		Name:         input.Name,
		Description:  input.Description,
		Price:        input.Price,
		ImageURL:     input.ImageURL,
		IsAvailable:  input.IsAvailable,
		IsSpicy:      input.IsSpicy,
		IsVegetarian: input.IsVegetarian,
		PrepTime:     input.PrepTime,
		CategoryID:   input.CategoryID,
	})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, errs.NotFound("Menu item not found")
	}
	return updated, nil
}

// DeleteMenuItem deletes a menu item. Admin only.
func (s *Service) DeleteMenuItem(ctx context.Context, caller auth.Caller, id string) (bool, error) {
	if err := s.policy.RequireAdmin(caller); err != nil {
		return false, err
	}
	if err := validate.ID(id, "menu item ID"); err != nil {
		return false, err
	}

	item, err := s.repo.GetMenuItem(ctx, id)
	if err != nil {
		return false, err
	}
	if item == nil {
		return false, errs.NotFound("Menu item not found")
	}

	if err := s.repo.DeleteMenuItem(ctx, id); err != nil {
		return false, err
	}
	return true, nil
}

func validateMenuItemFields(name, description string, price decimal.Decimal, prepTime *int32) error {
	if err := validate.StringLength(name, "name", 2, 100); err != nil {
		return err
	}
	if err := validate.StringLength(description, "description", 10, 500); err != nil {
		return err
	}
	if !price.IsPositive() {
		return errs.ValidationField("price", "Price must be positive")
	}
	if prepTime != nil {
		if err := validate.IntRange(*prepTime, "prep time", 1, 180); err != nil {
			return err
		}
	}
	return nil
}
