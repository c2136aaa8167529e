package repository

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"naija-aroma/internal/models"
)

const cateringColumns = `id, user_id, name, email, phone, event_type, event_date,
	guest_count, location, requirements, budget::text, status, quoted_amount::text,
	notes, created_at, updated_at`

// CreateCateringInquiry inserts an inquiry. userID is nil for anonymous
// visitors; the inquiry stays reachable through its contact email.
func (s *Store) CreateCateringInquiry(ctx context.Context, inquiry *models.CateringInquiry) (*models.CateringInquiry, error) {
	row := s.db.Pool.QueryRow(ctx, `
		INSERT INTO catering_inquiries
			(user_id, name, email, phone, event_type, event_date,
			 guest_count, location, requirements, budget)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10::numeric)
		RETURNING `+cateringColumns,
		inquiry.UserID, inquiry.Name, inquiry.Email, inquiry.Phone,
		inquiry.EventType, inquiry.EventDate, inquiry.GuestCount,
		inquiry.Location, inquiry.Requirements, decimalPtrArg(inquiry.Budget))
	created, err := scanCateringInquiry(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create catering inquiry: %w", err)
	}
	return created, nil
}

// GetCateringInquiry returns the inquiry or nil when absent.
func (s *Store) GetCateringInquiry(ctx context.Context, id string) (*models.CateringInquiry, error) {
	row := s.db.Pool.QueryRow(ctx,
		`SELECT `+cateringColumns+` FROM catering_inquiries WHERE id = $1`, id)
	inquiry, err := scanCateringInquiry(row)
	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get catering inquiry: %w", err)
	}
	return inquiry, nil
}

// ListCateringInquiries returns all inquiries, newest first.
func (s *Store) ListCateringInquiries(ctx context.Context) ([]*models.CateringInquiry, error) {
	return s.queryCatering(ctx,
		`SELECT `+cateringColumns+` FROM catering_inquiries ORDER BY created_at DESC`)
}

// ListCateringInquiriesForUser returns inquiries linked to the user ID
// or created anonymously with the user's email, newest first.
func (s *Store) ListCateringInquiriesForUser(ctx context.Context, userID, email string) ([]*models.CateringInquiry, error) {
	return s.queryCatering(ctx, `
		SELECT `+cateringColumns+` FROM catering_inquiries
		WHERE user_id = $1 OR email = $2
		ORDER BY created_at DESC`, userID, email)
}

// UpdateCateringStatus sets the status and, when provided, quote amount
// and notes. Returns nil when the inquiry is absent.
func (s *Store) UpdateCateringStatus(ctx context.Context, id string, status models.CateringStatus, quotedAmount *decimal.Decimal, notes *string) (*models.CateringInquiry, error) {
	row := s.db.Pool.QueryRow(ctx, `
		UPDATE catering_inquiries SET
			status = $2,
			quoted_amount = COALESCE($3::numeric, quoted_amount),
			notes = COALESCE($4, notes),
			updated_at = NOW()
		WHERE id = $1
		RETURNING `+cateringColumns,
		id, status, decimalPtrArg(quotedAmount), notes)
	inquiry, err := scanCateringInquiry(row)
	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update catering status: %w", err)
	}
	return inquiry, nil
}

func (s *Store) queryCatering(ctx context.Context, sql string, args ...any) ([]*models.CateringInquiry, error) {
	rows, err := s.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query catering inquiries: %w", err)
	}
	defer rows.Close()

	var inquiries []*models.CateringInquiry
	for rows.Next() {
		inquiry, err := scanCateringInquiry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan catering inquiry: %w", err)
		}
		inquiries = append(inquiries, inquiry)
	}
	return inquiries, rows.Err()
}

func scanCateringInquiry(row rowScanner) (*models.CateringInquiry, error) {
	var (
		c         models.CateringInquiry
		budgetStr *string
		quotedStr *string
	)
	err := row.Scan(&c.ID, &c.UserID, &c.Name, &c.Email, &c.Phone,
		&c.EventType, &c.EventDate, &c.GuestCount, &c.Location,
		&c.Requirements, &budgetStr, &c.Status, &quotedStr,
		&c.Notes, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if c.Budget, err = parseDecimalPtr(budgetStr); err != nil {
		return nil, err
	}
	if c.QuotedAmount, err = parseDecimalPtr(quotedStr); err != nil {
		return nil, err
	}
	return &c, nil
}
