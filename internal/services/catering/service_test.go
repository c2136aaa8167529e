package catering

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"naija-aroma/internal/auth"
	"naija-aroma/internal/errs"
	"naija-aroma/internal/logger"
	"naija-aroma/internal/messaging"
	"naija-aroma/internal/models"
)

const inquiryID = "550e8400-e29b-41d4-a716-446655440020"

type fakeRepo struct {
	inquiries map[string]*models.CateringInquiry
	created   *models.CateringInquiry
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{inquiries: map[string]*models.CateringInquiry{}}
}

func (f *fakeRepo) CreateCateringInquiry(_ context.Context, inquiry *models.CateringInquiry) (*models.CateringInquiry, error) {
	f.created = inquiry
	created := *inquiry
	created.ID = inquiryID
	created.Status = models.CateringInquiryOpen
	f.inquiries[created.ID] = &created
	return &created, nil
}

func (f *fakeRepo) GetCateringInquiry(_ context.Context, id string) (*models.CateringInquiry, error) {
	return f.inquiries[id], nil
}

func (f *fakeRepo) ListCateringInquiries(_ context.Context) ([]*models.CateringInquiry, error) {
	all := make([]*models.CateringInquiry, 0, len(f.inquiries))
	for _, i := range f.inquiries {
		all = append(all, i)
	}
	return all, nil
}

func (f *fakeRepo) ListCateringInquiriesForUser(_ context.Context, userID, email string) ([]*models.CateringInquiry, error) {
	var matched []*models.CateringInquiry
	for _, i := range f.inquiries {
		if (i.UserID != nil && *i.UserID == userID) || i.Email == email {
			matched = append(matched, i)
		}
	}
	return matched, nil
}

func (f *fakeRepo) UpdateCateringStatus(_ context.Context, id string, status models.CateringStatus, quotedAmount *decimal.Decimal, notes *string) (*models.CateringInquiry, error) {
	inquiry, ok := f.inquiries[id]
	if !ok {
		return nil, nil
	}
	updated := *inquiry
	updated.Status = status
	if quotedAmount != nil {
		updated.QuotedAmount = quotedAmount
	}
	if notes != nil {
		updated.Notes = notes
	}
	f.inquiries[id] = &updated
	return &updated, nil
}

type fakePublisher struct {
	events []messaging.Event
}

func (f *fakePublisher) Publish(_ context.Context, event messaging.Event) error {
	f.events = append(f.events, event)
	return nil
}

func newTestService(repo *fakeRepo, pub *fakePublisher) *Service {
	return NewService(repo, auth.NewPolicy(), pub, logger.New("test"))
}

func validInput() CreateInput {
	return CreateInput{
		Name:         "Ada Obi",
		Email:        "ada@example.com",
		Phone:        "08012345678",
		EventType:    "wedding",
		EventDate:    time.Now().Add(30 * 24 * time.Hour),
		GuestCount:   150,
		Location:     "Ikeja, Lagos",
		Requirements: "Full Nigerian buffet with live suya station for all guests",
	}
}

func TestCreate_AnonymousLeavesUserUnlinked(t *testing.T) {
	repo := newFakeRepo()
	pub := &fakePublisher{}
	svc := newTestService(repo, pub)

	created, err := svc.Create(context.Background(), auth.Anonymous, validInput(), "req-1")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if created.UserID != nil {
		t.Errorf("UserID = %v, want nil for anonymous inquiry", *created.UserID)
	}
	if created.Status != models.CateringInquiryOpen {
		t.Errorf("Status = %s, want INQUIRY", created.Status)
	}
	if len(pub.events) != 1 || pub.events[0].Type != messaging.EventCateringCreated {
		t.Errorf("events = %+v, want one catering.created event", pub.events)
	}
}

func TestCreate_AuthenticatedLinksUser(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, &fakePublisher{})

	caller := auth.Caller{Authenticated: true, UserID: "u1", Email: "ada@example.com"}
	created, err := svc.Create(context.Background(), caller, validInput(), "req-1")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if created.UserID == nil || *created.UserID != "u1" {
		t.Errorf("UserID = %v, want u1", created.UserID)
	}
}

func TestGet_EmailFallback(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, &fakePublisher{})

	// Anonymous inquiry, no linked user.
	if _, err := svc.Create(context.Background(), auth.Anonymous, validInput(), "req-1"); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	sameEmail := auth.Caller{Authenticated: true, UserID: "u1", Email: "ada@example.com"}
	if _, err := svc.Get(context.Background(), sameEmail, inquiryID); err != nil {
		t.Errorf("matching-email Get() error = %v", err)
	}

	otherEmail := auth.Caller{Authenticated: true, UserID: "u2", Email: "other@example.com"}
	_, err := svc.Get(context.Background(), otherEmail, inquiryID)
	if !errs.Is(err, errs.CodeForbidden) {
		t.Errorf("non-matching Get() error = %v, want forbidden", err)
	}

	_, err = svc.Get(context.Background(), auth.Anonymous, inquiryID)
	if !errs.Is(err, errs.CodeUnauthenticated) {
		t.Errorf("anonymous Get() error = %v, want authentication error", err)
	}
}

func TestList_MatchesByUserOrEmail(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, &fakePublisher{})

	if _, err := svc.Create(context.Background(), auth.Anonymous, validInput(), "req-1"); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	byEmail := auth.Caller{Authenticated: true, UserID: "u1", Email: "ada@example.com"}
	matched, err := svc.List(context.Background(), byEmail)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(matched) != 1 {
		t.Errorf("matching caller sees %d inquiries, want 1", len(matched))
	}

	stranger := auth.Caller{Authenticated: true, UserID: "u2", Email: "other@example.com"}
	none, err := svc.List(context.Background(), stranger)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(none) != 0 {
		t.Errorf("stranger sees %d inquiries, want 0", len(none))
	}
}

func TestUpdateStatus(t *testing.T) {
	admin := auth.Caller{Authenticated: true, IsAdmin: true, UserID: "admin-1"}
	quote := decimal.NewFromInt(250000)
	negative := decimal.NewFromInt(-5)

	tests := []struct {
		name     string
		caller   auth.Caller
		input    UpdateStatusInput
		wantCode errs.Code
	}{
		{
			name:   "admin quotes an inquiry",
			caller: admin,
			input:  UpdateStatusInput{Status: models.CateringQuoted, QuotedAmount: &quote},
		},
		{
			name:   "admin may jump straight to completed",
			caller: admin,
			input:  UpdateStatusInput{Status: models.CateringCompleted},
		},
		{
			name:     "invalid status refuses",
			caller:   admin,
			input:    UpdateStatusInput{Status: "SHIPPED"},
			wantCode: errs.CodeBadUserInput,
		},
		{
			name:     "negative quote refuses",
			caller:   admin,
			input:    UpdateStatusInput{Status: models.CateringQuoted, QuotedAmount: &negative},
			wantCode: errs.CodeBadUserInput,
		},
		{
			name:     "non-admin refuses",
			caller:   auth.Caller{Authenticated: true, UserID: "u1"},
			input:    UpdateStatusInput{Status: models.CateringQuoted},
			wantCode: errs.CodeForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepo()
			pub := &fakePublisher{}
			svc := newTestService(repo, pub)
			if _, err := svc.Create(context.Background(), auth.Anonymous, validInput(), "req-1"); err != nil {
				t.Fatalf("Create() error = %v", err)
			}
			pub.events = nil

			updated, err := svc.UpdateStatus(context.Background(), tt.caller, inquiryID, tt.input, "req-2")
			if tt.wantCode != "" {
				if err == nil {
					t.Fatal("UpdateStatus() expected error, got nil")
				}
				if got := errs.CodeOf(err); got != tt.wantCode {
					t.Errorf("error code = %s, want %s", got, tt.wantCode)
				}
				return
			}
			if err != nil {
				t.Fatalf("UpdateStatus() error = %v", err)
			}
			if updated.Status != tt.input.Status {
				t.Errorf("Status = %s, want %s", updated.Status, tt.input.Status)
			}
			if len(pub.events) != 1 || pub.events[0].Type != messaging.EventCateringStatusChanged {
				t.Errorf("events = %+v, want one catering.status_changed event", pub.events)
			}
		})
	}
}

func TestCreate_ValidationRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CreateInput)
	}{
		{name: "bad email", mutate: func(in *CreateInput) { in.Email = "not-an-email" }},
		{name: "bad phone", mutate: func(in *CreateInput) { in.Phone = "12345" }},
		{name: "past event date", mutate: func(in *CreateInput) { in.EventDate = time.Now().Add(-time.Hour) }},
		{name: "zero guests", mutate: func(in *CreateInput) { in.GuestCount = 0 }},
		{name: "short requirements", mutate: func(in *CreateInput) { in.Requirements = "food" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(newFakeRepo(), &fakePublisher{})
			input := validInput()
			tt.mutate(&input)

			_, err := svc.Create(context.Background(), auth.Anonymous, input, "req-1")
			if !errs.Is(err, errs.CodeBadUserInput) {
				t.Errorf("Create() error = %v, want validation error", err)
			}
		})
	}
}
