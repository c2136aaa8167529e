// Package catering implements catering inquiries and their status
// lifecycle. Inquiries may be created anonymously; the contact email
// then serves as the lookup key for the visitor's later account.
package catering

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"naija-aroma/internal/auth"
	"naija-aroma/internal/errs"
	"naija-aroma/internal/logger"
	"naija-aroma/internal/messaging"
	"naija-aroma/internal/models"
	"naija-aroma/internal/validate"
)

// Repository is the persistence surface the catering service needs.
type Repository interface {
	CreateCateringInquiry(ctx context.Context, inquiry *models.CateringInquiry) (*models.CateringInquiry, error)
	GetCateringInquiry(ctx context.Context, id string) (*models.CateringInquiry, error)
	ListCateringInquiries(ctx context.Context) ([]*models.CateringInquiry, error)
	ListCateringInquiriesForUser(ctx context.Context, userID, email string) ([]*models.CateringInquiry, error)
	UpdateCateringStatus(ctx context.Context, id string, status models.CateringStatus, quotedAmount *decimal.Decimal, notes *string) (*models.CateringInquiry, error)
}

// Publisher emits domain events; failures are logged, not propagated.
type Publisher interface {
	Publish(ctx context.Context, event messaging.Event) error
}

// Service implements catering operations.
type Service struct {
	repo      Repository
	policy    *auth.Policy
	publisher Publisher
	log       *logger.Logger
}

// NewService creates the catering service.
func NewService(repo Repository, policy *auth.Policy, publisher Publisher, log *logger.Logger) *Service {
	return &Service{repo: repo, policy: policy, publisher: publisher, log: log}
}

// CreateInput is a catering inquiry request.
type CreateInput struct {
	Name         string
	Email        string
	Phone        string
	EventType    string
	EventDate    time.Time
	GuestCount   int32
	Location     string
	Requirements string
	Budget       *decimal.Decimal
}

// UpdateStatusInput is an admin status change with optional quote.
type UpdateStatusInput struct {
	Status       models.CateringStatus
	QuotedAmount *decimal.Decimal
	Notes        *string
}

// List returns the caller's inquiries, matching by linked user ID or by
// the caller's email for inquiries created before they registered.
// Admins see every inquiry.
func (s *Service) List(ctx context.Context, caller auth.Caller) ([]*models.CateringInquiry, error) {
	if err := s.policy.RequireAuthenticated(caller); err != nil {
		return nil, err
	}
	if caller.IsAdmin {
		return s.repo.ListCateringInquiries(ctx)
	}
	return s.repo.ListCateringInquiriesForUser(ctx, caller.UserID, caller.Email)
}

// Get returns one inquiry, gated to admin, the linked owner, or a
// caller whose email matches the inquiry's contact email.
func (s *Service) Get(ctx context.Context, caller auth.Caller, id string) (*models.CateringInquiry, error) {
	if err := s.policy.RequireAuthenticated(caller); err != nil {
		return nil, err
	}
	if err := validate.ID(id, "catering inquiry ID"); err != nil {
		return nil, err
	}

	inquiry, err := s.repo.GetCateringInquiry(ctx, id)
	if err != nil {
		return nil, err
	}
	if inquiry == nil {
		return nil, errs.NotFound("Catering inquiry not found")
	}

	ownerID := ""
	if inquiry.UserID != nil {
		ownerID = *inquiry.UserID
	}
	if err := s.policy.AuthorizeOwnerOrAdmin(caller, ownerID, inquiry.Email); err != nil {
		return nil, err
	}
	return inquiry, nil
}

// Create records an inquiry. Open to anonymous visitors; the inquiry is
// linked to the caller's account only when they are authenticated.
func (s *Service) Create(ctx context.Context, caller auth.Caller, input CreateInput, requestID string) (*models.CateringInquiry, error) {
	if err := validateCreate(input); err != nil {
		return nil, err
	}

	inquiry := &models.CateringInquiry{
		Name:         input.Name,
		Email:        input.Email,
		Phone:        input.Phone,
		EventType:    input.EventType,
		EventDate:    input.EventDate,
		GuestCount:   input.GuestCount,
		Location:     input.Location,
		Requirements: input.Requirements,
		Budget:       input.Budget,
	}
	if caller.Authenticated {
		userID := caller.UserID
		inquiry.UserID = &userID
	}

	created, err := s.repo.CreateCateringInquiry(ctx, inquiry)
	if err != nil {
		return nil, err
	}

	s.log.Info("catering_inquiry_created", requestID, "Catering inquiry created", map[string]interface{}{
		"inquiry_id": created.ID,
		"event_type": created.EventType,
	})
	s.publish(ctx, messaging.Event{
		Type:          messaging.EventCateringCreated,
		RequestID:     requestID,
		InquiryID:     created.ID,
		InquiryStatus: string(created.Status),
		InquiryEvent:  created.EventType,
		InquiryEmail:  created.Email,
		CustomerName:  created.Name,
	})
	return created, nil
}

// UpdateStatus moves an inquiry to any valid status and optionally sets
// the quote. Admin only; there is no adjacency restriction between
// states, the admin decides.
func (s *Service) UpdateStatus(ctx context.Context, caller auth.Caller, id string, input UpdateStatusInput, requestID string) (*models.CateringInquiry, error) {
	if err := s.policy.RequireAdmin(caller); err != nil {
		return nil, err
	}
	if err := validate.ID(id, "catering inquiry ID"); err != nil {
		return nil, err
	}
	if !input.Status.Valid() {
		return nil, errs.ValidationField("status", "Invalid catering status")
	}
	if err := validate.PositiveAmount(input.QuotedAmount, "quoted amount"); err != nil {
		return nil, err
	}

	inquiry, err := s.repo.GetCateringInquiry(ctx, id)
	if err != nil {
		return nil, err
	}
	if inquiry == nil {
		return nil, errs.NotFound("Catering inquiry not found")
	}

	updated, err := s.repo.UpdateCateringStatus(ctx, id, input.Status, input.QuotedAmount, input.Notes)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, errs.NotFound("Catering inquiry not found")
	}

	s.log.Info("catering_status_updated", requestID, "Catering status updated", map[string]interface{}{
		"inquiry_id": updated.ID,
		"from":       string(inquiry.Status),
		"to":         string(updated.Status),
	})
	s.publish(ctx, messaging.Event{
		Type:          messaging.EventCateringStatusChanged,
		RequestID:     requestID,
		InquiryID:     updated.ID,
		InquiryStatus: string(updated.Status),
		InquiryEmail:  updated.Email,
		CustomerName:  updated.Name,
		QuotedAmount:  quotedAmountString(updated),
	})
	return updated, nil
}

func (s *Service) publish(ctx context.Context, event messaging.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.log.Error("event_publish_failed", event.RequestID, "Failed to publish event", err, map[string]interface{}{
			"type": event.Type,
		})
	}
}

func quotedAmountString(inquiry *models.CateringInquiry) string {
	if inquiry.QuotedAmount == nil {
		return ""
	}
	return inquiry.QuotedAmount.String()
}

func validateCreate(input CreateInput) error {
	if err := validate.StringLength(input.Name, "name", 2, 100); err != nil {
		return err
	}
	if err := validate.Email(input.Email); err != nil {
		return err
	}
	if err := validate.Phone(input.Phone); err != nil {
		return err
	}
	if err := validate.StringLength(input.EventType, "event type", 2, 100); err != nil {
		return err
	}
	if err := validate.FutureTime(input.EventDate, "event date"); err != nil {
		return err
	}
	if err := validate.IntRange(input.GuestCount, "guest count", 1, 1000); err != nil {
		return err
	}
	if err := validate.StringLength(input.Location, "location", 5, 200); err != nil {
		return err
	}
	if err := validate.StringLength(input.Requirements, "requirements", 10, 1000); err != nil {
		return err
	}
	return validate.PositiveAmount(input.Budget, "budget")
}
