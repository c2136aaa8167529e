// Package orders implements order placement and the order status
// lifecycle.
package orders

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"

	"naija-aroma/internal/auth"
	"naija-aroma/internal/errs"
	"naija-aroma/internal/logger"
	"naija-aroma/internal/messaging"
	"naija-aroma/internal/models"
	"naija-aroma/internal/pricing"
	"naija-aroma/internal/repository"
	"naija-aroma/internal/validate"
)

// Repository is the persistence surface the order service needs.
type Repository interface {
	GetMenuItemsByIDs(ctx context.Context, ids []string) (map[string]*models.MenuItem, error)
	CreateOrder(ctx context.Context, order *models.Order, lines []repository.NewOrderLine) (*models.Order, error)
	GetOrder(ctx context.Context, id string) (*models.Order, error)
	GetOrderByNumber(ctx context.Context, orderNumber string) (*models.Order, error)
	ListOrders(ctx context.Context) ([]*models.Order, error)
	ListOrdersByUser(ctx context.Context, userID string) ([]*models.Order, error)
	ListOrderItems(ctx context.Context, orderID string) ([]*models.OrderItem, error)
	UpdateOrderStatus(ctx context.Context, id string, status models.OrderStatus, estimatedTime *int32) (*models.Order, error)
}

// Publisher emits domain events; failures are logged, not propagated.
type Publisher interface {
	Publish(ctx context.Context, event messaging.Event) error
}

// Service implements order operations.
type Service struct {
	repo      Repository
	policy    *auth.Policy
	engine    *pricing.Engine
	publisher Publisher
	log       *logger.Logger
}

// NewService creates the order service.
func NewService(repo Repository, policy *auth.Policy, engine *pricing.Engine, publisher Publisher, log *logger.Logger) *Service {
	return &Service{repo: repo, policy: policy, engine: engine, publisher: publisher, log: log}
}

// CreateLine is one requested order line.
type CreateLine struct {
	MenuItemID string
	Quantity   int32
	Notes      *string
}

// CreateInput is the order-creation request.
type CreateInput struct {
	Type            models.OrderType
	Items           []CreateLine
	CustomerName    string
	CustomerPhone   string
	CustomerEmail   string
	DeliveryAddress *string
	DeliveryNotes   *string
	RequestedTime   *time.Time
	PaymentMethod   models.PaymentMethod
}

// List returns the caller's orders; admins see every order.
func (s *Service) List(ctx context.Context, caller auth.Caller) ([]*models.Order, error) {
	if err := s.policy.RequireAuthenticated(caller); err != nil {
		return nil, err
	}
	if caller.IsAdmin {
		return s.repo.ListOrders(ctx)
	}
	return s.repo.ListOrdersByUser(ctx, caller.UserID)
}

// Get returns one order, gated to its owner or an admin.
func (s *Service) Get(ctx context.Context, caller auth.Caller, id string) (*models.Order, error) {
	if err := s.policy.RequireAuthenticated(caller); err != nil {
		return nil, err
	}
	if err := validate.ID(id, "order ID"); err != nil {
		return nil, err
	}

	order, err := s.repo.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, errs.NotFound("Order not found")
	}
	if err := s.policy.AuthorizeOwnerOrAdmin(caller, order.UserID, ""); err != nil {
		return nil, err
	}
	return order, nil
}

// GetByNumber returns one order by its order number, gated like Get.
func (s *Service) GetByNumber(ctx context.Context, caller auth.Caller, orderNumber string) (*models.Order, error) {
	if err := s.policy.RequireAuthenticated(caller); err != nil {
		return nil, err
	}

	order, err := s.repo.GetOrderByNumber(ctx, orderNumber)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, errs.NotFound("Order not found")
	}
	if err := s.policy.AuthorizeOwnerOrAdmin(caller, order.UserID, ""); err != nil {
		return nil, err
	}
	return order, nil
}

// Items returns an order's lines. Access control happens on the parent
// order before the resolver descends to its items.
func (s *Service) Items(ctx context.Context, orderID string) ([]*models.OrderItem, error) {
	return s.repo.ListOrderItems(ctx, orderID)
}

// Create places an order. Current menu prices are snapshotted into the
// order lines; the order and its lines are persisted atomically, so a
// pricing failure persists nothing.
func (s *Service) Create(ctx context.Context, caller auth.Caller, input CreateInput, requestID string) (*models.Order, error) {
	if err := s.policy.RequireAuthenticated(caller); err != nil {
		return nil, err
	}
	if err := validateCreate(input); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(input.Items))
	lines := make([]pricing.LineRequest, 0, len(input.Items))
	for _, item := range input.Items {
		ids = append(ids, item.MenuItemID)
		lines = append(lines, pricing.LineRequest{
			MenuItemID: item.MenuItemID,
			Quantity:   item.Quantity,
			Notes:      item.Notes,
		})
	}

	catalog, err := s.repo.GetMenuItemsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	quote, err := s.engine.ComputeOrderTotal(lines, catalog, input.Type)
	if err != nil {
		return nil, err
	}

	order := &models.Order{
		OrderNumber:     generateOrderNumber(),
		UserID:          caller.UserID,
		Type:            input.Type,
		Status:          models.OrderPending,
		TotalAmount:     quote.Total,
		CustomerName:    input.CustomerName,
		CustomerPhone:   input.CustomerPhone,
		CustomerEmail:   input.CustomerEmail,
		DeliveryAddress: input.DeliveryAddress,
		DeliveryNotes:   input.DeliveryNotes,
		RequestedTime:   input.RequestedTime,
		PaymentMethod:   input.PaymentMethod,
		PaymentStatus:   models.PaymentPending,
	}
	if quote.DeliveryFee.IsPositive() {
		fee := quote.DeliveryFee
		order.DeliveryFee = &fee
	}

	newLines := make([]repository.NewOrderLine, 0, len(quote.Lines))
	for _, line := range quote.Lines {
		newLines = append(newLines, repository.NewOrderLine{
			MenuItemID: line.MenuItemID,
			Quantity:   line.Quantity,
			Price:      line.Price.String(),
			Notes:      line.Notes,
		})
	}

	created, err := s.repo.CreateOrder(ctx, order, newLines)
	if err != nil {
		return nil, err
	}

	s.log.Info("order_created", requestID, "Order created", map[string]interface{}{
		"order_number": created.OrderNumber,
		"type":         string(created.Type),
		"total_amount": created.TotalAmount.String(),
	})
	s.publish(ctx, messaging.Event{
		Type:          messaging.EventOrderCreated,
		RequestID:     requestID,
		OrderNumber:   created.OrderNumber,
		OrderStatus:   string(created.Status),
		OrderType:     string(created.Type),
		TotalAmount:   created.TotalAmount.String(),
		CustomerName:  created.CustomerName,
		CustomerEmail: created.CustomerEmail,
	})

	return created, nil
}

// UpdateStatusInput is an admin status change.
type UpdateStatusInput struct {
	Status        models.OrderStatus
	EstimatedTime *int32
}

// UpdateStatus advances an order's status. Admin only; terminal orders
// refuse any further change.
func (s *Service) UpdateStatus(ctx context.Context, caller auth.Caller, id string, input UpdateStatusInput, requestID string) (*models.Order, error) {
	if err := s.policy.RequireAdmin(caller); err != nil {
		return nil, err
	}
	if err := validate.ID(id, "order ID"); err != nil {
		return nil, err
	}

	order, err := s.repo.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, errs.NotFound("Order not found")
	}
	if err := ensureTransition(order.Status, input.Status); err != nil {
		return nil, err
	}

	updated, err := s.repo.UpdateOrderStatus(ctx, id, input.Status, input.EstimatedTime)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, errs.NotFound("Order not found")
	}

	s.log.Info("order_status_updated", requestID, "Order status updated", map[string]interface{}{
		"order_number": updated.OrderNumber,
		"from":         string(order.Status),
		"to":           string(updated.Status),
	})
	s.publish(ctx, messaging.Event{
		Type:          messaging.EventOrderStatusChanged,
		RequestID:     requestID,
		OrderNumber:   updated.OrderNumber,
		OrderStatus:   string(updated.Status),
		CustomerName:  updated.CustomerName,
		CustomerEmail: updated.CustomerEmail,
	})

	return updated, nil
}

// Cancel cancels an order. Owner or admin; terminal orders refuse.
func (s *Service) Cancel(ctx context.Context, caller auth.Caller, id, requestID string) (*models.Order, error) {
	if err := s.policy.RequireAuthenticated(caller); err != nil {
		return nil, err
	}
	if err := validate.ID(id, "order ID"); err != nil {
		return nil, err
	}

	order, err := s.repo.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, errs.NotFound("Order not found")
	}
	if err := s.policy.AuthorizeOwnerOrAdmin(caller, order.UserID, ""); err != nil {
		return nil, err
	}
	if err := ensureCancellable(order.Status); err != nil {
		return nil, err
	}

	cancelled, err := s.repo.UpdateOrderStatus(ctx, id, models.OrderCancelled, nil)
	if err != nil {
		return nil, err
	}
	if cancelled == nil {
		return nil, errs.NotFound("Order not found")
	}

	s.log.Info("order_cancelled", requestID, "Order cancelled", map[string]interface{}{
		"order_number": cancelled.OrderNumber,
	})
	s.publish(ctx, messaging.Event{
		Type:          messaging.EventOrderCancelled,
		RequestID:     requestID,
		OrderNumber:   cancelled.OrderNumber,
		OrderStatus:   string(cancelled.Status),
		CustomerName:  cancelled.CustomerName,
		CustomerEmail: cancelled.CustomerEmail,
	})

	return cancelled, nil
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

// generateOrderNumber builds numbers like NA-MC81KQ3P-7F2A91C4: a
// base36 millisecond timestamp plus random entropy.
func generateOrderNumber() string {
	ts := strconv.FormatInt(time.Now().UnixMilli(), 36)
	buf := make([]byte, 4)
	_, _ = rand.Read(buf)
	return strings.ToUpper(fmt.Sprintf("NA-%s-%s", ts, hex.EncodeToString(buf)))
}

func validateCreate(input CreateInput) error {
	if input.Type != models.OrderTypeDelivery && input.Type != models.OrderTypePickup {
		return errs.ValidationField("type", "Order type must be DELIVERY or PICKUP")
	}
	if len(input.Items) == 0 {
		return errs.ValidationField("items", "Order must contain at least one item")
	}
	for _, item := range input.Items {
		if err := validate.ID(item.MenuItemID, "menu item ID"); err != nil {
			return err
		}
		if err := validate.IntRange(item.Quantity, "quantity", 1, 10); err != nil {
			return err
		}
		if err := validate.OptionalStringLength(item.Notes, "notes", 0, 200); err != nil {
			return err
		}
	}
	if err := validate.StringLength(input.CustomerName, "customer name", 2, 100); err != nil {
		return err
	}
	if err := validate.Phone(input.CustomerPhone); err != nil {
		return err
	}
	if err := validate.Email(input.CustomerEmail); err != nil {
		return err
	}
	if input.Type == models.OrderTypeDelivery {
		if input.DeliveryAddress == nil {
			return errs.ValidationField("delivery address", "Delivery address is required for delivery orders")
		}
		if err := validate.StringLength(*input.DeliveryAddress, "delivery address", 10, 200); err != nil {
			return err
		}
	}
	if err := validate.OptionalStringLength(input.DeliveryNotes, "delivery notes", 0, 200); err != nil {
		return err
	}
	if input.RequestedTime != nil {
		if err := validate.FutureTime(*input.RequestedTime, "requested time"); err != nil {
			return err
		}
	}
	if !input.PaymentMethod.Valid() {
		return errs.ValidationField("payment method", "Invalid payment method")
	}
	return nil
}
