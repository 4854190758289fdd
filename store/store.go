// Package store persists the shop's documents. Two implementations exist:
// Mongo for production and Memory for tests and local development.
package store

import (
	"context"
	"errors"

	"shopapi/models"
)

var (
	// ErrNotFound is returned when a requested document does not exist.
	ErrNotFound = errors.New("store: not found")
	// ErrDuplicate is returned when an insert violates a uniqueness rule.
	ErrDuplicate = errors.New("store: duplicate")
)

// ProductFilter holds the exact-match catalog filters. Empty fields are
// ignored. Size and Color match against the product's variant lists.
type ProductFilter struct {
	Size   string
	Color  string
	Design string
}

type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUser(ctx context.Context, id string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateWishlist(ctx context.Context, userId string, wishlist []string) error
	UpdatePassword(ctx context.Context, userId, passwordHash string) error
}

type ProductStore interface {
	CreateProduct(ctx context.Context, product *models.Product) error
	GetProduct(ctx context.Context, id string) (*models.Product, error)
	ListProducts(ctx context.Context, filter ProductFilter) ([]models.Product, error)
	ListProductsByIds(ctx context.Context, ids []string) ([]models.Product, error)
	UpdateProduct(ctx context.Context, product *models.Product) error
	UpdateProductRating(ctx context.Context, id string, rating float64, reviewCount int) error
	DeleteProduct(ctx context.Context, id string) error
}

type ReviewStore interface {
	CreateReview(ctx context.Context, review *models.Review) error
	ListReviews(ctx context.Context, productId string) ([]models.Review, error)
	GetReviewByProductUser(ctx context.Context, productId, userId string) (*models.Review, error)
}

type CartStore interface {
	GetCart(ctx context.Context, userId string) (*models.Cart, error)
	SaveCart(ctx context.Context, cart *models.Cart) error
	DeleteCart(ctx context.Context, userId string) error
}

type OrderStore interface {
	CreateOrder(ctx context.Context, order *models.Order) error
	// ListOrdersByUser returns the user's orders, newest first.
	ListOrdersByUser(ctx context.Context, userId string) ([]models.Order, error)
	// ListAllOrders returns every order, newest first.
	ListAllOrders(ctx context.Context) ([]models.Order, error)
}

// Store is the full persistence surface threaded through the controllers.
type Store interface {
	UserStore
	ProductStore
	ReviewStore
	CartStore
	OrderStore
}
