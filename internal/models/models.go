// Package models holds the domain entities shared by the repositories,
// services and the GraphQL layer.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Role is a user's access role.
type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleAdmin    Role = "ADMIN"
)

// OrderType distinguishes delivery orders from pickup orders.
type OrderType string

const (
	OrderTypeDelivery OrderType = "DELIVERY"
	OrderTypePickup   OrderType = "PICKUP"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderPending   OrderStatus = "PENDING"
	OrderConfirmed OrderStatus = "CONFIRMED"
	OrderPreparing OrderStatus = "PREPARING"
	OrderReady     OrderStatus = "READY"
	OrderDelivered OrderStatus = "DELIVERED"
	OrderCancelled OrderStatus = "CANCELLED"
)

// Valid reports whether s is a known order status.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderConfirmed, OrderPreparing, OrderReady, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further transition is permitted from s.
func (s OrderStatus) Terminal() bool {
	return s == OrderDelivered || s == OrderCancelled
}

// PaymentStatus tracks payment settlement for an order.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

// PaymentMethod is how the customer intends to pay.
type PaymentMethod string

const (
	PayCard     PaymentMethod = "stripe"
	PayTransfer PaymentMethod = "transfer"
	PayCash     PaymentMethod = "cash"
)

// Valid reports whether m is a supported payment method.
func (m PaymentMethod) Valid() bool {
	return m == PayCard || m == PayTransfer || m == PayCash
}

// CateringStatus is the lifecycle state of a catering inquiry.
type CateringStatus string

const (
	CateringInquiryOpen CateringStatus = "INQUIRY"
	CateringQuoted      CateringStatus = "QUOTED"
	CateringConfirmed   CateringStatus = "CONFIRMED"
	CateringCompleted   CateringStatus = "COMPLETED"
	CateringCancelled   CateringStatus = "CANCELLED"
)

// Valid reports whether s is a known catering status.
func (s CateringStatus) Valid() bool {
	switch s {
	case CateringInquiryOpen, CateringQuoted, CateringConfirmed, CateringCompleted, CateringCancelled:
		return true
	}
	return false
}

// User is a registered account.
type User struct {
	ID         string
	Email      string
	Username   string
	Phone      string
	Password   string // bcrypt hash, never serialized
	Role       Role
	IsVerified bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Category groups menu items.
type Category struct {
	ID          string
	Name        string
	Description *string
	ImageURL    *string
	IsActive    bool
	SortOrder   int32
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// MenuItem is a purchasable dish. Price is the live catalog price;
// orders snapshot it into their line items at creation time.
type MenuItem struct {
	ID           string
	Name         string
	Description  string
	Price        decimal.Decimal
	ImageURL     *string
	IsAvailable  bool
	IsSpicy      bool
	IsVegetarian bool
	PrepTime     *int32 // minutes
	CategoryID   string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Order is a placed order. TotalAmount always equals the sum of line
// price*quantity at creation time plus DeliveryFee; it is never
// recomputed from live menu data.
type Order struct {
	ID              string
	OrderNumber     string
	UserID          string
	Type            OrderType
	Status          OrderStatus
	TotalAmount     decimal.Decimal
	DeliveryFee     *decimal.Decimal
	CustomerName    string
	CustomerPhone   string
	CustomerEmail   string
	DeliveryAddress *string
	DeliveryNotes   *string
	RequestedTime   *time.Time
	EstimatedTime   *int32 // minutes
	PaymentMethod   PaymentMethod
	PaymentStatus   PaymentStatus
	DeliveredAt     *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// OrderItem is one line of an order with its snapshot price.
type OrderItem struct {
	ID         string
	OrderID    string
	MenuItemID string
	Quantity   int32
	Price      decimal.Decimal
	Notes      *string
	CreatedAt  time.Time
}

// Review is a customer review, hidden until approved.
type Review struct {
	ID         string
	UserID     string
	Rating     int32
	Comment    string
	IsApproved bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// GalleryItem is a photo shown on the public site.
type GalleryItem struct {
	ID          string
	Title       string
	Description *string
	ImageURL    string
	Category    string
	IsActive    bool
	SortOrder   int32
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CateringInquiry is a catering request. UserID is set only when the
// inquiry was created by an authenticated caller; anonymous inquiries
// are later located by their contact email.
type CateringInquiry struct {
	ID           string
	UserID       *string
	Name         string
	Email        string
	Phone        string
	EventType    string
	EventDate    time.Time
	GuestCount   int32
	Location     string
	Requirements string
	Budget       *decimal.Decimal
	Status       CateringStatus
	QuotedAmount *decimal.Decimal
	Notes        *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Setting is a key-value configuration row editable by admins.
type Setting struct {
	Key       string
	Value     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
