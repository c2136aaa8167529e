package payments

import (
	"context"
	"encoding/json"
	"time"

	"naija-aroma/internal/auth"
	"naija-aroma/internal/errs"
	"naija-aroma/internal/logger"
	"naija-aroma/internal/messaging"
	"naija-aroma/internal/models"
)

// OrderStore is the slice of order persistence the payment service
// needs.
type OrderStore interface {
	GetOrder(ctx context.Context, id string) (*models.Order, error)
	SetPaymentStatus(ctx context.Context, orderNumber string, status models.PaymentStatus) (*models.Order, error)
}

// Publisher emits payment events to the bus.
type Publisher interface {
	Publish(ctx context.Context, event messaging.Event) error
}

// Service creates payment intents for orders and applies webhook
// callbacks from the gateway.
type Service struct {
	store         OrderStore
	client        *Client
	policy        *auth.Policy
	publisher     Publisher
	webhookSecret string
	log           *logger.Logger
}

// NewService wires the payment service.
func NewService(store OrderStore, client *Client, policy *auth.Policy, publisher Publisher, webhookSecret string, log *logger.Logger) *Service {
	return &Service{
		store:         store,
		client:        client,
		policy:        policy,
		publisher:     publisher,
		webhookSecret: webhookSecret,
		log:           log,
	}
}

// CreateIntent starts a card payment for an order. Only the order's
// owner or an admin may pay, and an already-settled order is refused.
func (s *Service) CreateIntent(ctx context.Context, caller auth.Caller, orderID, requestID string) (*Intent, error) {
	if err := s.policy.RequireAuthenticated(caller); err != nil {
		return nil, err
	}

	order, err := s.store.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, errs.NotFound("Order not found")
	}
	// Orders always belong to an account, so the contact email on the
	// order grants nothing. The email fallback is for catering
	// inquiries, which can be filed without an account.
	if err := s.policy.AuthorizeOwnerOrAdmin(caller, order.UserID, ""); err != nil {
		return nil, err
	}
	if order.PaymentStatus == models.PaymentPaid {
		return nil, errs.Validation("Order is already paid")
	}

	intent, err := s.client.CreatePaymentIntent(ctx, IntentRequest{
		Amount:        order.TotalAmount,
		OrderNumber:   order.OrderNumber,
		CustomerName:  order.CustomerName,
		CustomerEmail: order.CustomerEmail,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("payment_intent_created", requestID, "Payment intent created", map[string]interface{}{
		"order_number": order.OrderNumber,
		"intent_id":    intent.ID,
	})
	return intent, nil
}

// webhookEvent mirrors the gateway's callback body. The order number
// travels in the intent metadata set at creation time.
type webhookEvent struct {
	Type string `json:"type"`
	Data struct {
		Object struct {
			ID       string            `json:"id"`
			Metadata map[string]string `json:"metadata"`
		} `json:"object"`
	} `json:"data"`
}

// HandleWebhook verifies and applies a gateway callback. Settlements
// are keyed by order number and are idempotent: replaying a callback
// rewrites the same payment status.
func (s *Service) HandleWebhook(ctx context.Context, payload []byte, signatureHeader, requestID string) error {
	if err := VerifySignature(payload, signatureHeader, s.webhookSecret, time.Now()); err != nil {
		s.log.Warn("webhook_rejected", requestID, "Webhook signature verification failed", map[string]interface{}{
			"reason": err.Error(),
		})
		return errs.Validation("Invalid webhook signature")
	}

	var event webhookEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return errs.Validation("Invalid webhook payload")
	}

	orderNumber := event.Data.Object.Metadata["order_number"]

	switch event.Type {
	case "payment_intent.succeeded":
		return s.settle(ctx, orderNumber, models.PaymentPaid, messaging.EventPaymentSucceeded, requestID)
	case "payment_intent.payment_failed":
		return s.settle(ctx, orderNumber, models.PaymentFailed, messaging.EventPaymentFailed, requestID)
	default:
		s.log.Debug("webhook_ignored", requestID, "Unhandled webhook event type", map[string]interface{}{
			"event_type": event.Type,
		})
		return nil
	}
}

func (s *Service) settle(ctx context.Context, orderNumber string, status models.PaymentStatus, eventType, requestID string) error {
	if orderNumber == "" {
		return errs.Validation("Webhook payload missing order number")
	}

	order, err := s.store.SetPaymentStatus(ctx, orderNumber, status)
	if err != nil {
		return err
	}
	if order == nil {
		return errs.NotFound("Order not found")
	}

	s.log.Info("payment_settled", requestID, "Order payment status updated", map[string]interface{}{
		"order_number":   orderNumber,
		"payment_status": string(status),
	})

	if s.publisher != nil {
		event := messaging.Event{
			Type:          eventType,
			RequestID:     requestID,
			OccurredAt:    time.Now().UTC(),
			OrderNumber:   order.OrderNumber,
			OrderStatus:   string(order.Status),
			TotalAmount:   order.TotalAmount.String(),
			PaymentStatus: string(status),
			CustomerName:  order.CustomerName,
			CustomerEmail: order.CustomerEmail,
		}
		if err := s.publisher.Publish(ctx, event); err != nil {
			s.log.Error("event_publish_failed", requestID, "Failed to publish payment event", err, map[string]interface{}{
				"event_type": eventType,
			})
		}
	}
	return nil
}
