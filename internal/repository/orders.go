package repository

import (
	"context"
	"fmt"

	"naija-aroma/internal/models"
)

const orderColumns = `id, order_number, user_id, type, status, total_amount::text,
	delivery_fee::text, customer_name, customer_phone, customer_email,
	delivery_address, delivery_notes, requested_time, estimated_time,
	payment_method, payment_status, delivered_at, created_at, updated_at`

// NewOrderLine is one line of an order being created, carrying its
// snapshot price.
type NewOrderLine struct {
	MenuItemID string
	Quantity   int32
	Price      string // decimal text
	Notes      *string
}

// CreateOrder inserts the order and its line items in one transaction;
// either everything is persisted or nothing is.
func (s *Store) CreateOrder(ctx context.Context, order *models.Order, lines []NewOrderLine) (*models.Order, error) {
	tx, err := s.db.Pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	row := tx.QueryRow(ctx, `
		INSERT INTO orders
			(order_number, user_id, type, status, total_amount, delivery_fee,
			 customer_name, customer_phone, customer_email, delivery_address,
			 delivery_notes, requested_time, payment_method, payment_status)
		VALUES ($1, $2, $3, $4, $5::numeric, $6::numeric, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING `+orderColumns,
		order.OrderNumber, order.UserID, order.Type, order.Status,
		decimalArg(order.TotalAmount), decimalPtrArg(order.DeliveryFee),
		order.CustomerName, order.CustomerPhone, order.CustomerEmail,
		order.DeliveryAddress, order.DeliveryNotes, order.RequestedTime,
		order.PaymentMethod, order.PaymentStatus)

	created, err := scanOrder(row)
	if err != nil {
		return nil, fmt.Errorf("failed to insert order: %w", err)
	}

	for _, line := range lines {
		_, err := tx.Exec(ctx, `
			INSERT INTO order_items (order_id, menu_item_id, quantity, price, notes)
			VALUES ($1, $2, $3, $4::numeric, $5)`,
			created.ID, line.MenuItemID, line.Quantity, line.Price, line.Notes)
		if err != nil {
			return nil, fmt.Errorf("failed to insert order item: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit order: %w", err)
	}
	return created, nil
}

// GetOrder returns the order or nil when absent.
func (s *Store) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	row := s.db.Pool.QueryRow(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id = $1`, id)
	order, err := scanOrder(row)
	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return order, nil
}

// GetOrderByNumber returns the order or nil when absent.
func (s *Store) GetOrderByNumber(ctx context.Context, orderNumber string) (*models.Order, error) {
	row := s.db.Pool.QueryRow(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE order_number = $1`, orderNumber)
	order, err := scanOrder(row)
	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get order by number: %w", err)
	}
	return order, nil
}

// ListOrders returns all orders, newest first.
func (s *Store) ListOrders(ctx context.Context) ([]*models.Order, error) {
	return s.queryOrders(ctx,
		`SELECT `+orderColumns+` FROM orders ORDER BY created_at DESC`)
}

// ListOrdersByUser returns a user's orders, newest first.
func (s *Store) ListOrdersByUser(ctx context.Context, userID string) ([]*models.Order, error) {
	return s.queryOrders(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE user_id = $1 ORDER BY created_at DESC`, userID)
}

// ListOrderItems returns an order's lines in insertion order.
func (s *Store) ListOrderItems(ctx context.Context, orderID string) ([]*models.OrderItem, error) {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT id, order_id, menu_item_id, quantity, price::text, notes, created_at
		FROM order_items WHERE order_id = $1 ORDER BY created_at ASC`, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list order items: %w", err)
	}
	defer rows.Close()

	var items []*models.OrderItem
	for rows.Next() {
		var (
			item     models.OrderItem
			priceStr string
		)
		err := rows.Scan(&item.ID, &item.OrderID, &item.MenuItemID,
			&item.Quantity, &priceStr, &item.Notes, &item.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}
		if item.Price, err = parseDecimal(priceStr); err != nil {
			return nil, err
		}
		items = append(items, &item)
	}
	return items, rows.Err()
}

// UpdateOrderStatus sets the order's status, stores the estimated time
// when provided, and stamps delivered_at when the order is delivered.
func (s *Store) UpdateOrderStatus(ctx context.Context, id string, status models.OrderStatus, estimatedTime *int32) (*models.Order, error) {
	row := s.db.Pool.QueryRow(ctx, `
		UPDATE orders SET
			status = $2,
			estimated_time = COALESCE($3, estimated_time),
			delivered_at = CASE WHEN $2 = 'DELIVERED' THEN NOW() ELSE delivered_at END,
			updated_at = NOW()
		WHERE id = $1
		RETURNING `+orderColumns,
		id, status, estimatedTime)
	order, err := scanOrder(row)
	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}
	return order, nil
}

// SetPaymentStatus overwrites the order's payment status. Overwriting
// with the same value is a no-op, which keeps duplicate webhook
// deliveries idempotent.
func (s *Store) SetPaymentStatus(ctx context.Context, orderNumber string, status models.PaymentStatus) (*models.Order, error) {
	row := s.db.Pool.QueryRow(ctx, `
		UPDATE orders SET payment_status = $2, updated_at = NOW()
		WHERE order_number = $1
		RETURNING `+orderColumns,
		orderNumber, status)
	order, err := scanOrder(row)
	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to set payment status: %w", err)
	}
	return order, nil
}

func (s *Store) queryOrders(ctx context.Context, sql string, args ...any) ([]*models.Order, error) {
	rows, err := s.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var orders []*models.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

func scanOrder(row rowScanner) (*models.Order, error) {
	var (
		o        models.Order
		totalStr string
		feeStr   *string
	)
	err := row.Scan(&o.ID, &o.OrderNumber, &o.UserID, &o.Type, &o.Status,
		&totalStr, &feeStr, &o.CustomerName, &o.CustomerPhone, &o.CustomerEmail,
		&o.DeliveryAddress, &o.DeliveryNotes, &o.RequestedTime, &o.EstimatedTime,
		&o.PaymentMethod, &o.PaymentStatus, &o.DeliveredAt, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if o.TotalAmount, err = parseDecimal(totalStr); err != nil {
		return nil, err
	}
	if o.DeliveryFee, err = parseDecimalPtr(feeStr); err != nil {
		return nil, err
	}
	return &o, nil
}
