package graph

import (
	"context"
	"time"

	graphql "github.com/graph-gophers/graphql-go"

	"naija-aroma/internal/auth"
	"naija-aroma/internal/logger"
	"naija-aroma/internal/models"
	"naija-aroma/internal/payments"
	"naija-aroma/internal/services/accounts"
	"naija-aroma/internal/services/catalog"
	"naija-aroma/internal/services/catering"
	"naija-aroma/internal/services/gallery"
	"naija-aroma/internal/services/orders"
	"naija-aroma/internal/services/reviews"
	"naija-aroma/internal/services/settings"
)

// Resolver is the schema root. Every field resolver delegates to a
// service; no business rules live in this package.
type Resolver struct {
	accounts *accounts.Service
	catalog  *catalog.Service
	orders   *orders.Service
	catering *catering.Service
	reviews  *reviews.Service
	gallery  *gallery.Service
	settings *settings.Service
	payments *payments.Service
	users    auth.UserFinder
	log      *logger.Logger
}

// Services bundles everything the root resolver delegates to.
type Services struct {
	Accounts *accounts.Service
	Catalog  *catalog.Service
	Orders   *orders.Service
	Catering *catering.Service
	Reviews  *reviews.Service
	Gallery  *gallery.Service
	Settings *settings.Service
	Payments *payments.Service
	Users    auth.UserFinder
}

// NewResolver creates the schema root.
func NewResolver(s Services, log *logger.Logger) *Resolver {
	return &Resolver{
		accounts: s.Accounts,
		catalog:  s.Catalog,
		orders:   s.Orders,
		catering: s.Catering,
		reviews:  s.Reviews,
		gallery:  s.Gallery,
		settings: s.Settings,
		payments: s.Payments,
		users:    s.Users,
		log:      log,
	}
}

func (r *Resolver) userByID(ctx context.Context, id string) (*userResolver, error) {
	if id == "" {
		return nil, nil
	}
	user, err := r.users.GetUserByID(ctx, id)
	if err != nil || user == nil {
		return nil, err
	}
	return &userResolver{u: user}, nil
}

func (r *Resolver) menuItemResolvers(items []*models.MenuItem) []*menuItemResolver {
	resolvers := make([]*menuItemResolver, 0, len(items))
	for _, item := range items {
		resolvers = append(resolvers, &menuItemResolver{root: r, m: item})
	}
	return resolvers
}

func (r *Resolver) orderResolvers(list []*models.Order) []*orderResolver {
	resolvers := make([]*orderResolver, 0, len(list))
	for _, o := range list {
		resolvers = append(resolvers, &orderResolver{root: r, o: o})
	}
	return resolvers
}

// --- catalog queries ---

func (r *Resolver) Categories(ctx context.Context) ([]*categoryResolver, error) {
	list, err := r.catalog.Categories(ctx)
	if err != nil {
		return nil, err
	}
	resolvers := make([]*categoryResolver, 0, len(list))
	for _, c := range list {
		resolvers = append(resolvers, &categoryResolver{root: r, c: c})
	}
	return resolvers, nil
}

func (r *Resolver) Category(ctx context.Context, args struct{ ID graphql.ID }) (*categoryResolver, error) {
	category, err := r.catalog.Category(ctx, string(args.ID))
	if err != nil || category == nil {
		return nil, err
	}
	return &categoryResolver{root: r, c: category}, nil
}

func (r *Resolver) MenuItems(ctx context.Context) ([]*menuItemResolver, error) {
	items, err := r.catalog.MenuItems(ctx)
	if err != nil {
		return nil, err
	}
	return r.menuItemResolvers(items), nil
}

func (r *Resolver) AvailableMenuItems(ctx context.Context) ([]*menuItemResolver, error) {
	items, err := r.catalog.AvailableMenuItems(ctx)
	if err != nil {
		return nil, err
	}
	return r.menuItemResolvers(items), nil
}

func (r *Resolver) MenuItem(ctx context.Context, args struct{ ID graphql.ID }) (*menuItemResolver, error) {
	item, err := r.catalog.MenuItem(ctx, string(args.ID))
	if err != nil || item == nil {
		return nil, err
	}
	return &menuItemResolver{root: r, m: item}, nil
}

func (r *Resolver) MenuItemsByCategory(ctx context.Context, args struct{ CategoryID graphql.ID }) ([]*menuItemResolver, error) {
	items, err := r.catalog.MenuItemsByCategory(ctx, string(args.CategoryID))
	if err != nil {
		return nil, err
	}
	return r.menuItemResolvers(items), nil
}

// --- account queries ---

func (r *Resolver) Me(ctx context.Context) (*userResolver, error) {
	user, err := r.accounts.Me(ctx, auth.CallerFromContext(ctx))
	if err != nil || user == nil {
		return nil, err
	}
	return &userResolver{u: user}, nil
}

func (r *Resolver) Users(ctx context.Context) ([]*userResolver, error) {
	list, err := r.accounts.Users(ctx, auth.CallerFromContext(ctx))
	if err != nil {
		return nil, err
	}
	resolvers := make([]*userResolver, 0, len(list))
	for _, u := range list {
		resolvers = append(resolvers, &userResolver{u: u})
	}
	return resolvers, nil
}

// --- order queries ---

func (r *Resolver) Orders(ctx context.Context) ([]*orderResolver, error) {
	list, err := r.orders.List(ctx, auth.CallerFromContext(ctx))
	if err != nil {
		return nil, err
	}
	return r.orderResolvers(list), nil
}

func (r *Resolver) Order(ctx context.Context, args struct{ ID graphql.ID }) (*orderResolver, error) {
	order, err := r.orders.Get(ctx, auth.CallerFromContext(ctx), string(args.ID))
	if err != nil || order == nil {
		return nil, err
	}
	return &orderResolver{root: r, o: order}, nil
}

func (r *Resolver) OrderByNumber(ctx context.Context, args struct{ OrderNumber string }) (*orderResolver, error) {
	order, err := r.orders.GetByNumber(ctx, auth.CallerFromContext(ctx), args.OrderNumber)
	if err != nil || order == nil {
		return nil, err
	}
	return &orderResolver{root: r, o: order}, nil
}

// --- review queries ---

func (r *Resolver) Reviews(ctx context.Context) ([]*reviewResolver, error) {
	list, err := r.reviews.List(ctx, auth.CallerFromContext(ctx))
	if err != nil {
		return nil, err
	}
	return r.reviewResolvers(list), nil
}

func (r *Resolver) ApprovedReviews(ctx context.Context) ([]*reviewResolver, error) {
	list, err := r.reviews.ListApproved(ctx)
	if err != nil {
		return nil, err
	}
	return r.reviewResolvers(list), nil
}

func (r *Resolver) Review(ctx context.Context, args struct{ ID graphql.ID }) (*reviewResolver, error) {
	review, err := r.reviews.Get(ctx, auth.CallerFromContext(ctx), string(args.ID))
	if err != nil || review == nil {
		return nil, err
	}
	return &reviewResolver{root: r, rev: review}, nil
}

func (r *Resolver) reviewResolvers(list []*models.Review) []*reviewResolver {
	resolvers := make([]*reviewResolver, 0, len(list))
	for _, rev := range list {
		resolvers = append(resolvers, &reviewResolver{root: r, rev: rev})
	}
	return resolvers
}

// --- gallery queries ---

func (r *Resolver) GalleryItems(ctx context.Context, args struct{ Category *string }) ([]*galleryItemResolver, error) {
	var list []*models.GalleryItem
	var err error
	if args.Category != nil {
		list, err = r.gallery.ListByCategory(ctx, *args.Category)
	} else {
		list, err = r.gallery.List(ctx)
	}
	if err != nil {
		return nil, err
	}
	resolvers := make([]*galleryItemResolver, 0, len(list))
	for _, g := range list {
		resolvers = append(resolvers, &galleryItemResolver{g: g})
	}
	return resolvers, nil
}

func (r *Resolver) GalleryItem(ctx context.Context, args struct{ ID graphql.ID }) (*galleryItemResolver, error) {
	item, err := r.gallery.Get(ctx, string(args.ID))
	if err != nil || item == nil {
		return nil, err
	}
	return &galleryItemResolver{g: item}, nil
}

// --- catering queries ---

func (r *Resolver) CateringInquiries(ctx context.Context) ([]*cateringInquiryResolver, error) {
	list, err := r.catering.List(ctx, auth.CallerFromContext(ctx))
	if err != nil {
		return nil, err
	}
	resolvers := make([]*cateringInquiryResolver, 0, len(list))
	for _, c := range list {
		resolvers = append(resolvers, &cateringInquiryResolver{root: r, c: c})
	}
	return resolvers, nil
}

func (r *Resolver) CateringInquiry(ctx context.Context, args struct{ ID graphql.ID }) (*cateringInquiryResolver, error) {
	inquiry, err := r.catering.Get(ctx, auth.CallerFromContext(ctx), string(args.ID))
	if err != nil || inquiry == nil {
		return nil, err
	}
	return &cateringInquiryResolver{root: r, c: inquiry}, nil
}

// --- settings queries ---

func (r *Resolver) Settings(ctx context.Context) ([]*settingResolver, error) {
	list, err := r.settings.List(ctx, auth.CallerFromContext(ctx))
	if err != nil {
		return nil, err
	}
	resolvers := make([]*settingResolver, 0, len(list))
	for _, s := range list {
		resolvers = append(resolvers, &settingResolver{s: s})
	}
	return resolvers, nil
}

func (r *Resolver) Setting(ctx context.Context, args struct{ Key string }) (*settingResolver, error) {
	setting, err := r.settings.Get(ctx, args.Key)
	if err != nil || setting == nil {
		return nil, err
	}
	return &settingResolver{s: setting}, nil
}

// --- account mutations ---

type registerInput struct {
	Email    string
	Username string
	Phone    string
	Password string
}

func (r *Resolver) Register(ctx context.Context, args struct{ Input registerInput }) (*authPayloadResolver, error) {
	payload, err := r.accounts.Register(ctx, accounts.RegisterInput{
		Email:    args.Input.Email,
		Username: args.Input.Username,
		Phone:    args.Input.Phone,
		Password: args.Input.Password,
	}, RequestIDFromContext(ctx))
	if err != nil {
		return nil, err
	}
	return &authPayloadResolver{p: payload}, nil
}

type loginInput struct {
	Email    string
	Password string
}

func (r *Resolver) Login(ctx context.Context, args struct{ Input loginInput }) (*authPayloadResolver, error) {
	payload, err := r.accounts.Login(ctx, accounts.LoginInput{
		Email:    args.Input.Email,
		Password: args.Input.Password,
	}, RequestIDFromContext(ctx))
	if err != nil {
		return nil, err
	}
	return &authPayloadResolver{p: payload}, nil
}

// --- catalog mutations ---

type createCategoryInput struct {
	Name        string
	Description *string
	ImageUrl    *string
	SortOrder   *int32
}

func (r *Resolver) CreateCategory(ctx context.Context, args struct{ Input createCategoryInput }) (*categoryResolver, error) {
	category, err := r.catalog.CreateCategory(ctx, auth.CallerFromContext(ctx), catalog.CreateCategoryInput{
		Name:        args.Input.Name,
		Description: args.Input.Description,
		ImageURL:    args.Input.ImageUrl,
		SortOrder:   args.Input.SortOrder,
	})
	if err != nil {
		return nil, err
	}
	return &categoryResolver{root: r, c: category}, nil
}

type updateCategoryInput struct {
	Name        *string
	Description *string
	ImageUrl    *string
	IsActive    *bool
	SortOrder   *int32
}

func (r *Resolver) UpdateCategory(ctx context.Context, args struct {
	ID    graphql.ID
	Input updateCategoryInput
}) (*categoryResolver, error) {
	category, err := r.catalog.UpdateCategory(ctx, auth.CallerFromContext(ctx), string(args.ID), catalog.UpdateCategoryInput{
		Name:        args.Input.Name,
		Description: args.Input.Description,
		ImageURL:    args.Input.ImageUrl,
		IsActive:    args.Input.IsActive,
		SortOrder:   args.Input.SortOrder,
	})
	if err != nil {
		return nil, err
	}
	return &categoryResolver{root: r, c: category}, nil
}

func (r *Resolver) DeleteCategory(ctx context.Context, args struct{ ID graphql.ID }) (bool, error) {
	return r.catalog.DeleteCategory(ctx, auth.CallerFromContext(ctx), string(args.ID))
}

type createMenuItemInput struct {
	Name         string
	Description  string
	Price        Decimal
	ImageUrl     *string
	IsSpicy      *bool
	IsVegetarian *bool
	PrepTime     *int32
	CategoryID   graphql.ID
}

func (r *Resolver) CreateMenuItem(ctx context.Context, args struct{ Input createMenuItemInput }) (*menuItemResolver, error) {
	item, err := r.catalog.CreateMenuItem(ctx, auth.CallerFromContext(ctx), catalog.CreateMenuItemInput{
		Name:         args.Input.Name,
		Description:  args.Input.Description,
		Price:        args.Input.Price.Decimal,
		ImageURL:     args.Input.ImageUrl,
		IsSpicy:      args.Input.IsSpicy,
		IsVegetarian: args.Input.IsVegetarian,
		PrepTime:     args.Input.PrepTime,
		CategoryID:   string(args.Input.CategoryID),
	})
	if err != nil {
		return nil, err
	}
	return &menuItemResolver{root: r, m: item}, nil
}

type updateMenuItemInput struct {
	Name         *string
	Description  *string
	Price        *Decimal
	ImageUrl     *string
	IsAvailable  *bool
	IsSpicy      *bool
	IsVegetarian *bool
	PrepTime     *int32
	CategoryID   *graphql.ID
}

func (r *Resolver) UpdateMenuItem(ctx context.Context, args struct {
	ID    graphql.ID
	Input updateMenuItemInput
}) (*menuItemResolver, error) {
	input := catalog.UpdateMenuItemInput{
		Name:         args.Input.Name,
		Description:  args.Input.Description,
		ImageURL:     args.Input.ImageUrl,
		IsAvailable:  args.Input.IsAvailable,
		IsSpicy:      args.Input.IsSpicy,
		IsVegetarian: args.Input.IsVegetarian,
		PrepTime:     args.Input.PrepTime,
	}
	if args.Input.Price != nil {
		input.Price = &args.Input.Price.Decimal
	}
	if args.Input.CategoryID != nil {
		id := string(*args.Input.CategoryID)
		input.CategoryID = &id
	}

	item, err := r.catalog.UpdateMenuItem(ctx, auth.CallerFromContext(ctx), string(args.ID), input)
	if err != nil {
		return nil, err
	}
	return &menuItemResolver{root: r, m: item}, nil
}

func (r *Resolver) DeleteMenuItem(ctx context.Context, args struct{ ID graphql.ID }) (bool, error) {
	return r.catalog.DeleteMenuItem(ctx, auth.CallerFromContext(ctx), string(args.ID))
}

// --- order mutations ---

type orderItemInput struct {
	MenuItemID graphql.ID
	Quantity   int32
	Notes      *string
}

type createOrderInput struct {
	Type            string
	Items           []orderItemInput
	CustomerName    string
	CustomerPhone   string
	CustomerEmail   string
	DeliveryAddress *string
	DeliveryNotes   *string
	RequestedTime   *graphql.Time
	PaymentMethod   string
}

func (r *Resolver) CreateOrder(ctx context.Context, args struct{ Input createOrderInput }) (*orderResolver, error) {
	lines := make([]orders.CreateLine, 0, len(args.Input.Items))
	for _, item := range args.Input.Items {
		lines = append(lines, orders.CreateLine{
			MenuItemID: string(item.MenuItemID),
			Quantity:   item.Quantity,
			Notes:      item.Notes,
		})
	}

	var requestedTime *time.Time
	if args.Input.RequestedTime != nil {
		t := args.Input.RequestedTime.Time
		requestedTime = &t
	}

	order, err := r.orders.Create(ctx, auth.CallerFromContext(ctx), orders.CreateInput{
		Type:            models.OrderType(args.Input.Type),
		Items:           lines,
		CustomerName:    args.Input.CustomerName,
		CustomerPhone:   args.Input.CustomerPhone,
		CustomerEmail:   args.Input.CustomerEmail,
		DeliveryAddress: args.Input.DeliveryAddress,
		DeliveryNotes:   args.Input.DeliveryNotes,
		RequestedTime:   requestedTime,
		PaymentMethod:   models.PaymentMethod(args.Input.PaymentMethod),
	}, RequestIDFromContext(ctx))
	if err != nil {
		return nil, err
	}
	return &orderResolver{root: r, o: order}, nil
}

func (r *Resolver) UpdateOrderStatus(ctx context.Context, args struct {
	ID            graphql.ID
	Status        string
	EstimatedTime *int32
}) (*orderResolver, error) {
	order, err := r.orders.UpdateStatus(ctx, auth.CallerFromContext(ctx), string(args.ID), orders.UpdateStatusInput{
		Status:        models.OrderStatus(args.Status),
		EstimatedTime: args.EstimatedTime,
	}, RequestIDFromContext(ctx))
	if err != nil {
		return nil, err
	}
	return &orderResolver{root: r, o: order}, nil
}

func (r *Resolver) CancelOrder(ctx context.Context, args struct{ ID graphql.ID }) (*orderResolver, error) {
	order, err := r.orders.Cancel(ctx, auth.CallerFromContext(ctx), string(args.ID), RequestIDFromContext(ctx))
	if err != nil {
		return nil, err
	}
	return &orderResolver{root: r, o: order}, nil
}

func (r *Resolver) CreatePaymentIntent(ctx context.Context, args struct{ OrderID graphql.ID }) (*paymentIntentResolver, error) {
	intent, err := r.payments.CreateIntent(ctx, auth.CallerFromContext(ctx), string(args.OrderID), RequestIDFromContext(ctx))
	if err != nil {
		return nil, err
	}
	return &paymentIntentResolver{i: intent}, nil
}

// --- catering mutations ---

type createCateringInquiryInput struct {
	Name         string
	Email        string
	Phone        string
	EventType    string
	EventDate    graphql.Time
	GuestCount   int32
	Location     string
	Requirements string
	Budget       *Decimal
}

func (r *Resolver) CreateCateringInquiry(ctx context.Context, args struct{ Input createCateringInquiryInput }) (*cateringInquiryResolver, error) {
	input := catering.CreateInput{
		Name:         args.Input.Name,
		Email:        args.Input.Email,
		Phone:        args.Input.Phone,
		EventType:    args.Input.EventType,
		EventDate:    args.Input.EventDate.Time,
		GuestCount:   args.Input.GuestCount,
		Location:     args.Input.Location,
		Requirements: args.Input.Requirements,
	}
	if args.Input.Budget != nil {
		input.Budget = &args.Input.Budget.Decimal
	}

	inquiry, err := r.catering.Create(ctx, auth.CallerFromContext(ctx), input, RequestIDFromContext(ctx))
	if err != nil {
		return nil, err
	}
	return &cateringInquiryResolver{root: r, c: inquiry}, nil
}

func (r *Resolver) UpdateCateringInquiryStatus(ctx context.Context, args struct {
	ID           graphql.ID
	Status       string
	QuotedAmount *Decimal
	Notes        *string
}) (*cateringInquiryResolver, error) {
	input := catering.UpdateStatusInput{
		Status: models.CateringStatus(args.Status),
		Notes:  args.Notes,
	}
	if args.QuotedAmount != nil {
		input.QuotedAmount = &args.QuotedAmount.Decimal
	}

	inquiry, err := r.catering.UpdateStatus(ctx, auth.CallerFromContext(ctx), string(args.ID), input, RequestIDFromContext(ctx))
	if err != nil {
		return nil, err
	}
	return &cateringInquiryResolver{root: r, c: inquiry}, nil
}

// --- review mutations ---

type createReviewInput struct {
	Rating  int32
	Comment string
}

func (r *Resolver) CreateReview(ctx context.Context, args struct{ Input createReviewInput }) (*reviewResolver, error) {
	review, err := r.reviews.Create(ctx, auth.CallerFromContext(ctx), reviews.CreateInput{
		Rating:  args.Input.Rating,
		Comment: args.Input.Comment,
	})
	if err != nil {
		return nil, err
	}
	return &reviewResolver{root: r, rev: review}, nil
}

func (r *Resolver) ApproveReview(ctx context.Context, args struct{ ID graphql.ID }) (*reviewResolver, error) {
	review, err := r.reviews.Approve(ctx, auth.CallerFromContext(ctx), string(args.ID))
	if err != nil {
		return nil, err
	}
	return &reviewResolver{root: r, rev: review}, nil
}

func (r *Resolver) DeleteReview(ctx context.Context, args struct{ ID graphql.ID }) (bool, error) {
	return r.reviews.Delete(ctx, auth.CallerFromContext(ctx), string(args.ID))
}

// --- gallery mutations ---

type createGalleryItemInput struct {
	Title       string
	Description *string
	ImageUrl    string
	Category    string
	SortOrder   *int32
}

func (r *Resolver) CreateGalleryItem(ctx context.Context, args struct{ Input createGalleryItemInput }) (*galleryItemResolver, error) {
	item, err := r.gallery.Create(ctx, auth.CallerFromContext(ctx), gallery.CreateInput{
		Title:       args.Input.Title,
		Description: args.Input.Description,
		ImageURL:    args.Input.ImageUrl,
		Category:    args.Input.Category,
		SortOrder:   args.Input.SortOrder,
	})
	if err != nil {
		return nil, err
	}
	return &galleryItemResolver{g: item}, nil
}

type updateGalleryItemInput struct {
	Title       *string
	Description *string
	ImageUrl    *string
	Category    *string
	IsActive    *bool
	SortOrder   *int32
}

func (r *Resolver) UpdateGalleryItem(ctx context.Context, args struct {
	ID    graphql.ID
	Input updateGalleryItemInput
}) (*galleryItemResolver, error) {
	item, err := r.gallery.Update(ctx, auth.CallerFromContext(ctx), string(args.ID), gallery.UpdateInput{
		Title:       args.Input.Title,
		Description: args.Input.Description,
		ImageURL:    args.Input.ImageUrl,
		Category:    args.Input.Category,
		IsActive:    args.Input.IsActive,
		SortOrder:   args.Input.SortOrder,
	})
	if err != nil {
		return nil, err
	}
	return &galleryItemResolver{g: item}, nil
}

func (r *Resolver) DeleteGalleryItem(ctx context.Context, args struct{ ID graphql.ID }) (bool, error) {
	return r.gallery.Delete(ctx, auth.CallerFromContext(ctx), string(args.ID))
}

// --- settings mutations ---

func (r *Resolver) UpdateSetting(ctx context.Context, args struct{ Key, Value string }) (*settingResolver, error) {
	setting, err := r.settings.Update(ctx, auth.CallerFromContext(ctx), args.Key, args.Value)
	if err != nil {
		return nil, err
	}
	return &settingResolver{s: setting}, nil
}
