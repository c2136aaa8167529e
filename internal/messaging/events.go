package messaging

import (
	"time"
)

// Event types published on the bus. The routing key is the event type.
const (
	EventOrderCreated          = "order.created"
	EventOrderStatusChanged    = "order.status_changed"
	EventOrderCancelled        = "order.cancelled"
	EventPaymentSucceeded      = "payment.succeeded"
	EventPaymentFailed         = "payment.failed"
	EventCateringCreated       = "catering.created"
	EventCateringStatusChanged = "catering.status_changed"
)

// Event is the envelope published for every domain event. Fields are
// populated per event type; consumers must tolerate absent fields.
type Event struct {
	Type       string    `json:"type"`
	RequestID  string    `json:"request_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`

	OrderNumber   string `json:"order_number,omitempty"`
	OrderStatus   string `json:"order_status,omitempty"`
	OrderType     string `json:"order_type,omitempty"`
	TotalAmount   string `json:"total_amount,omitempty"`
	PaymentStatus string `json:"payment_status,omitempty"`

	CustomerName  string `json:"customer_name,omitempty"`
	CustomerEmail string `json:"customer_email,omitempty"`

	InquiryID     string `json:"inquiry_id,omitempty"`
	InquiryStatus string `json:"inquiry_status,omitempty"`
	InquiryEvent  string `json:"inquiry_event,omitempty"`
	InquiryEmail  string `json:"inquiry_email,omitempty"`
	QuotedAmount  string `json:"quoted_amount,omitempty"`
}
