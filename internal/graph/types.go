package graph

import (
	"context"
	"time"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/shopspring/decimal"

	"naija-aroma/internal/models"
	"naija-aroma/internal/payments"
	"naija-aroma/internal/services/accounts"
)

type userResolver struct {
	u *models.User
}

func (r *userResolver) ID() graphql.ID       { return graphql.ID(r.u.ID) }
func (r *userResolver) Email() string        { return r.u.Email }
func (r *userResolver) Username() string     { return r.u.Username }
func (r *userResolver) Phone() string        { return r.u.Phone }
func (r *userResolver) Role() string         { return string(r.u.Role) }
func (r *userResolver) IsVerified() bool     { return r.u.IsVerified }
func (r *userResolver) CreatedAt() graphql.Time {
	return graphql.Time{Time: r.u.CreatedAt}
}

type authPayloadResolver struct {
	p *accounts.AuthPayload
}

func (r *authPayloadResolver) Token() string { return r.p.Token }
func (r *authPayloadResolver) User() *userResolver {
	return &userResolver{u: r.p.User}
}

type categoryResolver struct {
	root *Resolver
	c    *models.Category
}

func (r *categoryResolver) ID() graphql.ID      { return graphql.ID(r.c.ID) }
func (r *categoryResolver) Name() string        { return r.c.Name }
func (r *categoryResolver) Description() *string { return r.c.Description }
func (r *categoryResolver) ImageUrl() *string   { return r.c.ImageURL }
func (r *categoryResolver) IsActive() bool      { return r.c.IsActive }
func (r *categoryResolver) SortOrder() int32    { return r.c.SortOrder }
func (r *categoryResolver) CreatedAt() graphql.Time {
	return graphql.Time{Time: r.c.CreatedAt}
}
func (r *categoryResolver) UpdatedAt() graphql.Time {
	return graphql.Time{Time: r.c.UpdatedAt}
}

func (r *categoryResolver) MenuItems(ctx context.Context) ([]*menuItemResolver, error) {
	items, err := r.root.catalog.CategoryMenuItems(ctx, r.c.ID)
	if err != nil {
		return nil, err
	}
	return r.root.menuItemResolvers(items), nil
}

type menuItemResolver struct {
	root *Resolver
	m    *models.MenuItem
}

func (r *menuItemResolver) ID() graphql.ID     { return graphql.ID(r.m.ID) }
func (r *menuItemResolver) Name() string       { return r.m.Name }
func (r *menuItemResolver) Description() string { return r.m.Description }
func (r *menuItemResolver) Price() Decimal     { return NewDecimal(r.m.Price) }
func (r *menuItemResolver) ImageUrl() *string  { return r.m.ImageURL }
func (r *menuItemResolver) IsAvailable() bool  { return r.m.IsAvailable }
func (r *menuItemResolver) IsSpicy() bool      { return r.m.IsSpicy }
func (r *menuItemResolver) IsVegetarian() bool { return r.m.IsVegetarian }
func (r *menuItemResolver) PrepTime() *int32   { return r.m.PrepTime }
func (r *menuItemResolver) CreatedAt() graphql.Time {
	return graphql.Time{Time: r.m.CreatedAt}
}
func (r *menuItemResolver) UpdatedAt() graphql.Time {
	return graphql.Time{Time: r.m.UpdatedAt}
}

func (r *menuItemResolver) Category(ctx context.Context) (*categoryResolver, error) {
	category, err := r.root.catalog.Category(ctx, r.m.CategoryID)
	if err != nil || category == nil {
		return nil, err
	}
	return &categoryResolver{root: r.root, c: category}, nil
}

type orderResolver struct {
	root *Resolver
	o    *models.Order
}

func (r *orderResolver) ID() graphql.ID         { return graphql.ID(r.o.ID) }
func (r *orderResolver) OrderNumber() string    { return r.o.OrderNumber }
func (r *orderResolver) Type() string           { return string(r.o.Type) }
func (r *orderResolver) Status() string         { return string(r.o.Status) }
func (r *orderResolver) TotalAmount() Decimal   { return NewDecimal(r.o.TotalAmount) }
func (r *orderResolver) CustomerName() string   { return r.o.CustomerName }
func (r *orderResolver) CustomerPhone() string  { return r.o.CustomerPhone }
func (r *orderResolver) CustomerEmail() string  { return r.o.CustomerEmail }
func (r *orderResolver) DeliveryAddress() *string { return r.o.DeliveryAddress }
func (r *orderResolver) DeliveryNotes() *string { return r.o.DeliveryNotes }
func (r *orderResolver) EstimatedTime() *int32  { return r.o.EstimatedTime }
func (r *orderResolver) PaymentMethod() string  { return string(r.o.PaymentMethod) }
func (r *orderResolver) PaymentStatus() string  { return string(r.o.PaymentStatus) }

func (r *orderResolver) DeliveryFee() *Decimal {
	if r.o.DeliveryFee == nil {
		return nil
	}
	fee := NewDecimal(*r.o.DeliveryFee)
	return &fee
}

func (r *orderResolver) RequestedTime() *graphql.Time {
	return timePtr(r.o.RequestedTime)
}

func (r *orderResolver) DeliveredAt() *graphql.Time {
	return timePtr(r.o.DeliveredAt)
}

func (r *orderResolver) CreatedAt() graphql.Time {
	return graphql.Time{Time: r.o.CreatedAt}
}
func (r *orderResolver) UpdatedAt() graphql.Time {
	return graphql.Time{Time: r.o.UpdatedAt}
}

func (r *orderResolver) User(ctx context.Context) (*userResolver, error) {
	return r.root.userByID(ctx, r.o.UserID)
}

func (r *orderResolver) Items(ctx context.Context) ([]*orderItemResolver, error) {
	items, err := r.root.orders.Items(ctx, r.o.ID)
	if err != nil {
		return nil, err
	}
	resolvers := make([]*orderItemResolver, 0, len(items))
	for _, item := range items {
		resolvers = append(resolvers, &orderItemResolver{root: r.root, i: item})
	}
	return resolvers, nil
}

type orderItemResolver struct {
	root *Resolver
	i    *models.OrderItem
}

func (r *orderItemResolver) ID() graphql.ID { return graphql.ID(r.i.ID) }
func (r *orderItemResolver) Quantity() int32 { return r.i.Quantity }
func (r *orderItemResolver) Price() Decimal { return NewDecimal(r.i.Price) }
func (r *orderItemResolver) Notes() *string { return r.i.Notes }

func (r *orderItemResolver) MenuItem(ctx context.Context) (*menuItemResolver, error) {
	item, err := r.root.catalog.MenuItem(ctx, r.i.MenuItemID)
	if err != nil || item == nil {
		return nil, err
	}
	return &menuItemResolver{root: r.root, m: item}, nil
}

type paymentIntentResolver struct {
	i *payments.Intent
}

func (r *paymentIntentResolver) ID() graphql.ID      { return graphql.ID(r.i.ID) }
func (r *paymentIntentResolver) ClientSecret() string { return r.i.ClientSecret }
func (r *paymentIntentResolver) Status() string      { return r.i.Status }

type reviewResolver struct {
	root *Resolver
	rev  *models.Review
}

func (r *reviewResolver) ID() graphql.ID  { return graphql.ID(r.rev.ID) }
func (r *reviewResolver) Rating() int32   { return r.rev.Rating }
func (r *reviewResolver) Comment() string { return r.rev.Comment }
func (r *reviewResolver) IsApproved() bool { return r.rev.IsApproved }
func (r *reviewResolver) CreatedAt() graphql.Time {
	return graphql.Time{Time: r.rev.CreatedAt}
}

func (r *reviewResolver) User(ctx context.Context) (*userResolver, error) {
	return r.root.userByID(ctx, r.rev.UserID)
}

type galleryItemResolver struct {
	g *models.GalleryItem
}

func (r *galleryItemResolver) ID() graphql.ID       { return graphql.ID(r.g.ID) }
func (r *galleryItemResolver) Title() string        { return r.g.Title }
func (r *galleryItemResolver) Description() *string { return r.g.Description }
func (r *galleryItemResolver) ImageUrl() string     { return r.g.ImageURL }
func (r *galleryItemResolver) Category() string     { return r.g.Category }
func (r *galleryItemResolver) IsActive() bool       { return r.g.IsActive }
func (r *galleryItemResolver) SortOrder() int32     { return r.g.SortOrder }
func (r *galleryItemResolver) CreatedAt() graphql.Time {
	return graphql.Time{Time: r.g.CreatedAt}
}

type cateringInquiryResolver struct {
	root *Resolver
	c    *models.CateringInquiry
}

func (r *cateringInquiryResolver) ID() graphql.ID      { return graphql.ID(r.c.ID) }
func (r *cateringInquiryResolver) Name() string        { return r.c.Name }
func (r *cateringInquiryResolver) Email() string       { return r.c.Email }
func (r *cateringInquiryResolver) Phone() string       { return r.c.Phone }
func (r *cateringInquiryResolver) EventType() string   { return r.c.EventType }
func (r *cateringInquiryResolver) GuestCount() int32   { return r.c.GuestCount }
func (r *cateringInquiryResolver) Location() string    { return r.c.Location }
func (r *cateringInquiryResolver) Requirements() string { return r.c.Requirements }
func (r *cateringInquiryResolver) Status() string      { return string(r.c.Status) }
func (r *cateringInquiryResolver) Notes() *string      { return r.c.Notes }

func (r *cateringInquiryResolver) EventDate() graphql.Time {
	return graphql.Time{Time: r.c.EventDate}
}

func (r *cateringInquiryResolver) Budget() *Decimal {
	return decimalPtr(r.c.Budget)
}

func (r *cateringInquiryResolver) QuotedAmount() *Decimal {
	return decimalPtr(r.c.QuotedAmount)
}

func (r *cateringInquiryResolver) CreatedAt() graphql.Time {
	return graphql.Time{Time: r.c.CreatedAt}
}
func (r *cateringInquiryResolver) UpdatedAt() graphql.Time {
	return graphql.Time{Time: r.c.UpdatedAt}
}

func (r *cateringInquiryResolver) User(ctx context.Context) (*userResolver, error) {
	if r.c.UserID == nil {
		return nil, nil
	}
	return r.root.userByID(ctx, *r.c.UserID)
}

type settingResolver struct {
	s *models.Setting
}

func (r *settingResolver) Key() string   { return r.s.Key }
func (r *settingResolver) Value() string { return r.s.Value }
func (r *settingResolver) UpdatedAt() graphql.Time {
	return graphql.Time{Time: r.s.UpdatedAt}
}

func timePtr(t *time.Time) *graphql.Time {
	if t == nil {
		return nil
	}
	return &graphql.Time{Time: *t}
}

func decimalPtr(d *decimal.Decimal) *Decimal {
	if d == nil {
		return nil
	}
	wrapped := NewDecimal(*d)
	return &wrapped
}
