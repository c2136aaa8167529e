// Package graph exposes the service layer over GraphQL. The schema is
// defined in SDL and resolved by hand-written resolver types.
package graph

// Schema is the full API surface. Admin-only fields are enforced in
// the service layer, not in the schema.
const Schema = `
	schema {
		query: Query
		mutation: Mutation
	}

	scalar Time
	scalar Decimal

	enum OrderType {
		DELIVERY
		PICKUP
	}

	enum OrderStatus {
		PENDING
		CONFIRMED
		PREPARING
		READY
		DELIVERED
		CANCELLED
	}

	enum CateringStatus {
		INQUIRY
		QUOTED
		CONFIRMED
		COMPLETED
		CANCELLED
	}

	type User {
		id: ID!
		email: String!
		username: String!
		phone: String!
		role: String!
		isVerified: Boolean!
		createdAt: Time!
	}

	type AuthPayload {
		token: String!
		user: User!
	}

	type Category {
		id: ID!
		name: String!
		description: String
		imageUrl: String
		isActive: Boolean!
		sortOrder: Int!
		menuItems: [MenuItem!]!
		createdAt: Time!
		updatedAt: Time!
	}

	type MenuItem {
		id: ID!
		name: String!
		description: String!
		price: Decimal!
		imageUrl: String
		isAvailable: Boolean!
		isSpicy: Boolean!
		isVegetarian: Boolean!
		prepTime: Int
		category: Category
		createdAt: Time!
		updatedAt: Time!
	}

	type OrderItem {
		id: ID!
		menuItem: MenuItem
		quantity: Int!
		price: Decimal!
		notes: String
	}

	type Order {
		id: ID!
		orderNumber: String!
		user: User
		type: OrderType!
		status: OrderStatus!
		items: [OrderItem!]!
		totalAmount: Decimal!
		deliveryFee: Decimal
		customerName: String!
		customerPhone: String!
		customerEmail: String!
		deliveryAddress: String
		deliveryNotes: String
		requestedTime: Time
		estimatedTime: Int
		paymentMethod: String!
		paymentStatus: String!
		deliveredAt: Time
		createdAt: Time!
		updatedAt: Time!
	}

	type PaymentIntent {
		id: ID!
		clientSecret: String!
		status: String!
	}

	type Review {
		id: ID!
		user: User
		rating: Int!
		comment: String!
		isApproved: Boolean!
		createdAt: Time!
	}

	type GalleryItem {
		id: ID!
		title: String!
		description: String
		imageUrl: String!
		category: String!
		isActive: Boolean!
		sortOrder: Int!
		createdAt: Time!
	}

	type CateringInquiry {
		id: ID!
		user: User
		name: String!
		email: String!
		phone: String!
		eventType: String!
		eventDate: Time!
		guestCount: Int!
		location: String!
		requirements: String!
		budget: Decimal
		status: CateringStatus!
		quotedAmount: Decimal
		notes: String
		createdAt: Time!
		updatedAt: Time!
	}

	type Setting {
		key: String!
		value: String!
		updatedAt: Time!
	}

	input RegisterInput {
		email: String!
		username: String!
		phone: String!
		password: String!
	}

	input LoginInput {
		email: String!
		password: String!
	}

	input CreateCategoryInput {
		name: String!
		description: String
		imageUrl: String
		sortOrder: Int
	}

	input UpdateCategoryInput {
		name: String
		description: String
		imageUrl: String
		isActive: Boolean
		sortOrder: Int
	}

	input CreateMenuItemInput {
		name: String!
		description: String!
		price: Decimal!
		imageUrl: String
		isSpicy: Boolean
		isVegetarian: Boolean
		prepTime: Int
		categoryId: ID!
	}

	input UpdateMenuItemInput {
		name: String
		description: String
		price: Decimal
		imageUrl: String
		isAvailable: Boolean
		isSpicy: Boolean
		isVegetarian: Boolean
		prepTime: Int
		categoryId: ID
	}

	input OrderItemInput {
		menuItemId: ID!
		quantity: Int!
		notes: String
	}

	input CreateOrderInput {
		type: OrderType!
		items: [OrderItemInput!]!
		customerName: String!
		customerPhone: String!
		customerEmail: String!
		deliveryAddress: String
		deliveryNotes: String
		requestedTime: Time
		paymentMethod: String!
	}

	input CreateCateringInquiryInput {
		name: String!
		email: String!
		phone: String!
		eventType: String!
		eventDate: Time!
		guestCount: Int!
		location: String!
		requirements: String!
		budget: Decimal
	}

	input CreateReviewInput {
		rating: Int!
		comment: String!
	}

	input CreateGalleryItemInput {
		title: String!
		description: String
		imageUrl: String!
		category: String!
		sortOrder: Int
	}

	input UpdateGalleryItemInput {
		title: String
		description: String
		imageUrl: String
		category: String
		isActive: Boolean
		sortOrder: Int
	}

	type Query {
		categories: [Category!]!
		category(id: ID!): Category
		menuItems: [MenuItem!]!
		availableMenuItems: [MenuItem!]!
		menuItem(id: ID!): MenuItem
		menuItemsByCategory(categoryId: ID!): [MenuItem!]!

		me: User
		users: [User!]!

		orders: [Order!]!
		order(id: ID!): Order
		orderByNumber(orderNumber: String!): Order

		reviews: [Review!]!
		approvedReviews: [Review!]!
		review(id: ID!): Review

		galleryItems(category: String): [GalleryItem!]!
		galleryItem(id: ID!): GalleryItem

		cateringInquiries: [CateringInquiry!]!
		cateringInquiry(id: ID!): CateringInquiry

		settings: [Setting!]!
		setting(key: String!): Setting
	}

	type Mutation {
		register(input: RegisterInput!): AuthPayload!
		login(input: LoginInput!): AuthPayload!

		createCategory(input: CreateCategoryInput!): Category!
		updateCategory(id: ID!, input: UpdateCategoryInput!): Category!
		deleteCategory(id: ID!): Boolean!

		createMenuItem(input: CreateMenuItemInput!): MenuItem!
		updateMenuItem(id: ID!, input: UpdateMenuItemInput!): MenuItem!
		deleteMenuItem(id: ID!): Boolean!

		createOrder(input: CreateOrderInput!): Order!
		updateOrderStatus(id: ID!, status: OrderStatus!, estimatedTime: Int): Order!
		cancelOrder(id: ID!): Order!

		createPaymentIntent(orderId: ID!): PaymentIntent!

		createCateringInquiry(input: CreateCateringInquiryInput!): CateringInquiry!
		updateCateringInquiryStatus(id: ID!, status: CateringStatus!, quotedAmount: Decimal, notes: String): CateringInquiry!

		createReview(input: CreateReviewInput!): Review!
		approveReview(id: ID!): Review!
		deleteReview(id: ID!): Boolean!

		createGalleryItem(input: CreateGalleryItemInput!): GalleryItem!
		updateGalleryItem(id: ID!, input: UpdateGalleryItemInput!): GalleryItem!
		deleteGalleryItem(id: ID!): Boolean!

		updateSetting(key: String!, value: String!): Setting!
	}
`
