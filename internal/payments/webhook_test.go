package payments

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"naija-aroma/internal/auth"
	"naija-aroma/internal/errs"
	"naija-aroma/internal/logger"
	"naija-aroma/internal/messaging"
	"naija-aroma/internal/models"
)

const webhookSecret = "whsec_test"

func TestVerifySignature(t *testing.T) {
	payload := []byte(`{"type":"payment_intent.succeeded"}`)
	now := time.Now()

	valid := SignPayload(payload, webhookSecret, now)

	tests := []struct {
		name    string
		payload []byte
		header  string
		wantErr bool
	}{
		{name: "valid signature", payload: payload, header: valid},
		{name: "tampered payload", payload: []byte(`{"type":"evil"}`), header: valid, wantErr: true},
		{name: "wrong secret", payload: payload, header: SignPayload(payload, "other-secret", now), wantErr: true},
		{name: "stale timestamp", payload: payload, header: SignPayload(payload, webhookSecret, now.Add(-10*time.Minute)), wantErr: true},
		{name: "future timestamp", payload: payload, header: SignPayload(payload, webhookSecret, now.Add(10*time.Minute)), wantErr: true},
		{name: "malformed header", payload: payload, header: "v1=abc", wantErr: true},
		{name: "empty header", payload: payload, header: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := VerifySignature(tt.payload, tt.header, webhookSecret, now)
			if (err != nil) != tt.wantErr {
				t.Errorf("VerifySignature() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

type fakeOrderStore struct {
	orders map[string]*models.Order

	settledNumber string
	settledStatus models.PaymentStatus
}

func (f *fakeOrderStore) GetOrder(_ context.Context, id string) (*models.Order, error) {
	for _, o := range f.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, nil
}

func (f *fakeOrderStore) SetPaymentStatus(_ context.Context, orderNumber string, status models.PaymentStatus) (*models.Order, error) {
	order, ok := f.orders[orderNumber]
	if !ok {
		return nil, nil
	}
	f.settledNumber = orderNumber
	f.settledStatus = status
	updated := *order
	updated.PaymentStatus = status
	f.orders[orderNumber] = &updated
	return &updated, nil
}

type fakePublisher struct {
	events []messaging.Event
}

func (f *fakePublisher) Publish(_ context.Context, event messaging.Event) error {
	f.events = append(f.events, event)
	return nil
}

func newWebhookService(store *fakeOrderStore, pub *fakePublisher) *Service {
	return NewService(store, nil, auth.NewPolicy(), pub, webhookSecret, logger.New("test"))
}

func seedStore() *fakeOrderStore {
	return &fakeOrderStore{
		orders: map[string]*models.Order{
			"NA-TEST-0001": {
				ID:            "550e8400-e29b-41d4-a716-446655440010",
				OrderNumber:   "NA-TEST-0001",
				UserID:        "owner-1",
				Status:        models.OrderPending,
				TotalAmount:   decimal.NewFromInt(4500),
				PaymentStatus: models.PaymentPending,
				CustomerEmail: "ada@example.com",
			},
		},
	}
}

func succeededPayload(orderNumber string) []byte {
	return []byte(fmt.Sprintf(
		`{"type":"payment_intent.succeeded","data":{"object":{"id":"pi_1","metadata":{"order_number":%q}}}}`,
		orderNumber))
}

func TestHandleWebhook_Succeeded(t *testing.T) {
	store := seedStore()
	pub := &fakePublisher{}
	svc := newWebhookService(store, pub)

	payload := succeededPayload("NA-TEST-0001")
	header := SignPayload(payload, webhookSecret, time.Now())

	if err := svc.HandleWebhook(context.Background(), payload, header, "req-1"); err != nil {
		t.Fatalf("HandleWebhook() error = %v", err)
	}
	if store.settledNumber != "NA-TEST-0001" || store.settledStatus != models.PaymentPaid {
		t.Errorf("settled %s to %s, want NA-TEST-0001 to paid", store.settledNumber, store.settledStatus)
	}
	if len(pub.events) != 1 || pub.events[0].Type != messaging.EventPaymentSucceeded {
		t.Fatalf("events = %+v, want one payment.succeeded event", pub.events)
	}
	if pub.events[0].PaymentStatus != string(models.PaymentPaid) {
		t.Errorf("event payment status = %s, want paid", pub.events[0].PaymentStatus)
	}
}

func TestHandleWebhook_Failed(t *testing.T) {
	store := seedStore()
	pub := &fakePublisher{}
	svc := newWebhookService(store, pub)

	payload := []byte(`{"type":"payment_intent.payment_failed","data":{"object":{"id":"pi_1","metadata":{"order_number":"NA-TEST-0001"}}}}`)
	header := SignPayload(payload, webhookSecret, time.Now())

	if err := svc.HandleWebhook(context.Background(), payload, header, "req-1"); err != nil {
		t.Fatalf("HandleWebhook() error = %v", err)
	}
	if store.settledStatus != models.PaymentFailed {
		t.Errorf("settled status = %s, want failed", store.settledStatus)
	}
	if len(pub.events) != 1 || pub.events[0].Type != messaging.EventPaymentFailed {
		t.Errorf("events = %+v, want one payment.failed event", pub.events)
	}
}

func TestHandleWebhook_Rejections(t *testing.T) {
	store := seedStore()
	svc := newWebhookService(store, &fakePublisher{})
	now := time.Now()

	payload := succeededPayload("NA-TEST-0001")

	tests := []struct {
		name     string
		payload  []byte
		header   string
		wantCode errs.Code
	}{
		{
			name:     "bad signature",
			payload:  payload,
			header:   SignPayload(payload, "wrong", now),
			wantCode: errs.CodeBadUserInput,
		},
		{
			name:     "unknown order",
			payload:  succeededPayload("NA-MISSING"),
			header:   SignPayload(succeededPayload("NA-MISSING"), webhookSecret, now),
			wantCode: errs.CodeNotFound,
		},
		{
			name:     "missing order number",
			payload:  []byte(`{"type":"payment_intent.succeeded","data":{"object":{"id":"pi_1"}}}`),
			header:   SignPayload([]byte(`{"type":"payment_intent.succeeded","data":{"object":{"id":"pi_1"}}}`), webhookSecret, now),
			wantCode: errs.CodeBadUserInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.HandleWebhook(context.Background(), tt.payload, tt.header, "req-1")
			if err == nil {
				t.Fatal("HandleWebhook() expected error, got nil")
			}
			if got := errs.CodeOf(err); got != tt.wantCode {
				t.Errorf("error code = %s, want %s", got, tt.wantCode)
			}
			if store.settledNumber != "" {
				t.Error("payment status was written despite rejection")
			}
		})
	}
}

func TestHandleWebhook_IgnoresUnknownEventTypes(t *testing.T) {
	store := seedStore()
	pub := &fakePublisher{}
	svc := newWebhookService(store, pub)

	payload := []byte(`{"type":"charge.refunded","data":{"object":{"metadata":{"order_number":"NA-TEST-0001"}}}}`)
	header := SignPayload(payload, webhookSecret, time.Now())

	if err := svc.HandleWebhook(context.Background(), payload, header, "req-1"); err != nil {
		t.Fatalf("HandleWebhook() error = %v", err)
	}
	if store.settledNumber != "" {
		t.Error("payment status was written for ignored event type")
	}
	if len(pub.events) != 0 {
		t.Errorf("events = %+v, want none", pub.events)
	}
}

func TestHandleWebhook_Idempotent(t *testing.T) {
	store := seedStore()
	svc := newWebhookService(store, &fakePublisher{})

	payload := succeededPayload("NA-TEST-0001")
	header := SignPayload(payload, webhookSecret, time.Now())

	for i := 0; i < 2; i++ {
		if err := svc.HandleWebhook(context.Background(), payload, header, "req-1"); err != nil {
			t.Fatalf("HandleWebhook() replay %d error = %v", i, err)
		}
	}
	if store.orders["NA-TEST-0001"].PaymentStatus != models.PaymentPaid {
		t.Errorf("payment status = %s, want paid after replay", store.orders["NA-TEST-0001"].PaymentStatus)
	}
}

func TestCreateIntent_RefusesPaidOrder(t *testing.T) {
	store := seedStore()
	store.orders["NA-TEST-0001"].PaymentStatus = models.PaymentPaid
	svc := newWebhookService(store, &fakePublisher{})

	owner := auth.Caller{Authenticated: true, UserID: "owner-1"}
	_, err := svc.CreateIntent(context.Background(), owner, "550e8400-e29b-41d4-a716-446655440010", "req-1")
	if !errs.Is(err, errs.CodeBadUserInput) {
		t.Errorf("CreateIntent() error = %v, want validation error", err)
	}
}

func TestCreateIntent_AccessControl(t *testing.T) {
	store := seedStore()
	svc := newWebhookService(store, &fakePublisher{})

	_, err := svc.CreateIntent(context.Background(), auth.Anonymous, "550e8400-e29b-41d4-a716-446655440010", "req-1")
	if !errs.Is(err, errs.CodeUnauthenticated) {
		t.Errorf("anonymous CreateIntent() error = %v, want authentication error", err)
	}

	stranger := auth.Caller{Authenticated: true, UserID: "other-1", Email: "other@example.com"}
	_, err = svc.CreateIntent(context.Background(), stranger, "550e8400-e29b-41d4-a716-446655440010", "req-1")
	if !errs.Is(err, errs.CodeForbidden) {
		t.Errorf("stranger CreateIntent() error = %v, want forbidden", err)
	}

	// The contact email on an order is free text; an account that
	// happens to share it must not be allowed to pay.
	emailTwin := auth.Caller{Authenticated: true, UserID: "other-2", Email: "ada@example.com"}
	_, err = svc.CreateIntent(context.Background(), emailTwin, "550e8400-e29b-41d4-a716-446655440010", "req-1")
	if !errs.Is(err, errs.CodeForbidden) {
		t.Errorf("email-matching non-owner CreateIntent() error = %v, want forbidden", err)
	}
}
