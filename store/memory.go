package store

import (
	"context"
	"sort"
	"sync"

	"shopapi/models"
)

// Memory is an in-memory implementation of Store. It is safe for concurrent
// use and is primarily intended for tests and local development.
type Memory struct {
	mu       sync.RWMutex
	users    map[string]models.User
	products map[string]models.Product
	reviews  map[string]models.Review
	carts    map[string]models.Cart
	orders   map[string]models.Order
}

var _ Store = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{
		users:    make(map[string]models.User),
		products: make(map[string]models.Product),
		reviews:  make(map[string]models.Review),
		carts:    make(map[string]models.Cart),
		orders:   make(map[string]models.Order),
	}
}

// Users

func (s *Memory) CreateUser(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == user.Email {
			return ErrDuplicate
		}
	}
	s.users[user.Id] = *user
	return nil
}

func (s *Memory) GetUser(_ context.Context, id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

func (s *Memory) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

func (s *Memory) UpdateWishlist(_ context.Context, userId string, wishlist []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[userId]
	if !ok {
		return ErrNotFound
	}
	user.Wishlist = wishlist
	s.users[userId] = user
	return nil
}

func (s *Memory) UpdatePassword(_ context.Context, userId, passwordHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[userId]
	if !ok {
		return ErrNotFound
	}
	user.PasswordHash = passwordHash
	s.users[userId] = user
	return nil
}

// Products

func (s *Memory) CreateProduct(_ context.Context, product *models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products[product.Id] = *product
	return nil
}

func (s *Memory) GetProduct(_ context.Context, id string) (*models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	product, ok := s.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &product, nil
}

func (s *Memory) ListProducts(_ context.Context, filter ProductFilter) ([]models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	products := []models.Product{}
	for _, p := range s.products {
		if filter.Size != "" && !contains(p.Sizes, filter.Size) {
			continue
		}
		if filter.Color != "" && !contains(p.Colors, filter.Color) {
			continue
		}
		if filter.Design != "" && p.DesignCategory != filter.Design {
			continue
		}
		products = append(products, p)
	}
	sort.Slice(products, func(i, j int) bool { return products[i].Id < products[j].Id })
	return products, nil
}

func (s *Memory) ListProductsByIds(_ context.Context, ids []string) ([]models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	products := []models.Product{}
	for _, id := range ids {
		if p, ok := s.products[id]; ok {
			products = append(products, p)
		}
	}
	return products, nil
}

func (s *Memory) UpdateProduct(_ context.Context, product *models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[product.Id]; !ok {
		return ErrNotFound
	}
	s.products[product.Id] = *product
	return nil
}

func (s *Memory) UpdateProductRating(_ context.Context, id string, rating float64, reviewCount int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	product, ok := s.products[id]
	if !ok {
		return ErrNotFound
	}
	product.Rating = rating
	product.ReviewCount = reviewCount
	s.products[id] = product
	return nil
}

func (s *Memory) DeleteProduct(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[id]; !ok {
		return ErrNotFound
	}
	delete(s.products, id)
	return nil
}

// Reviews

func (s *Memory) CreateReview(_ context.Context, review *models.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.reviews {
		if r.ProductId == review.ProductId && r.UserId == review.UserId {
			return ErrDuplicate
		}
	}
	s.reviews[review.Id] = *review
	return nil
}

func (s *Memory) ListReviews(_ context.Context, productId string) ([]models.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	reviews := []models.Review{}
	for _, r := range s.reviews {
		if r.ProductId == productId {
			reviews = append(reviews, r)
		}
	}
	sort.Slice(reviews, func(i, j int) bool {
		return reviews[i].CreatedAt.Before(reviews[j].CreatedAt)
	})
	return reviews, nil
}

func (s *Memory) GetReviewByProductUser(_ context.Context, productId, userId string) (*models.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.reviews {
		if r.ProductId == productId && r.UserId == userId {
			review := r
			return &review, nil
		}
	}
	return nil, ErrNotFound
}

// Carts

func (s *Memory) GetCart(_ context.Context, userId string) (*models.Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cart, ok := s.carts[userId]
	if !ok {
		return nil, ErrNotFound
	}
	items := make([]models.CartItem, len(cart.Items))
	copy(items, cart.Items)
	cart.Items = items
	return &cart, nil
}

func (s *Memory) SaveCart(_ context.Context, cart *models.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := *cart
	stored.Items = make([]models.CartItem, len(cart.Items))
	copy(stored.Items, cart.Items)
	s.carts[cart.UserId] = stored
	return nil
}

func (s *Memory) DeleteCart(_ context.Context, userId string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, userId)
	return nil
}

// Orders

func (s *Memory) CreateOrder(_ context.Context, order *models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[order.Id] = *order
	return nil
}

func (s *Memory) ListOrdersByUser(_ context.Context, userId string) ([]models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	orders := []models.Order{}
	for _, o := range s.orders {
		if o.UserId == userId {
			orders = append(orders, o)
		}
	}
	sortOrdersNewestFirst(orders)
	return orders, nil
}

func (s *Memory) ListAllOrders(_ context.Context) ([]models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	orders := []models.Order{}
	for _, o := range s.orders {
		orders = append(orders, o)
	}
	sortOrdersNewestFirst(orders)
	return orders, nil
}

func sortOrdersNewestFirst(orders []models.Order) {
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
}

func contains(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}
