package controller_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"shopapi/auth"
	"shopapi/controller"
	"shopapi/models"
	"shopapi/routes"
	"shopapi/store"
)

const testSecret = "test-secret"

// fakeNotifier records notifications instead of sending them.
type fakeNotifier struct {
	mu     sync.Mutex
	orders []*models.Order
	resets []string
}

func (n *fakeNotifier) OrderConfirmation(order *models.Order) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.orders = append(n.orders, order)
	return nil
}

func (n *fakeNotifier) PasswordReset(email, token string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.resets = append(n.resets, token)
	return nil
}

func (n *fakeNotifier) lastReset() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.resets) == 0 {
		return ""
	}
	return n.resets[len(n.resets)-1]
}

type env struct {
	router   *gin.Engine
	store    *store.Memory
	notifier *fakeNotifier
}

func newEnv(t *testing.T) *env {
	return newEnvWithCarts(t, nil)
}

// newEnvWithCarts lets a test swap the cart store for a wrapped one, e.g. to
// inject store failures. A nil wrap uses the memory store directly.
func newEnvWithCarts(t *testing.T, wrap func(*store.Memory) store.CartStore) *env {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s := store.NewMemory()
	var carts store.CartStore = s
	if wrap != nil {
		carts = wrap(s)
	}
	notifier := &fakeNotifier{}
	router := gin.New()

	routes.Register(router, routes.Deps{
		Store:     s,
		JWTSecret: testSecret,
		Redis:     nil, // limiter passes through
		Auth:      controller.NewAuthController(s, testSecret, notifier),
		Products:  controller.NewProductController(s),
		Reviews:   controller.NewReviewController(s, s),
		Carts:     controller.NewCartController(carts),
		Wishlist:  controller.NewWishlistController(s, s),
		Orders:    controller.NewOrderController(s, carts, notifier),
	})
	return &env{router: router, store: s, notifier: notifier}
}

// do sends a JSON request, with a bearer token when given.
func (e *env) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

// newUser seeds a user directly in the store and returns it with a token.
func (e *env) newUser(t *testing.T, name, email string, admin bool) (*models.User, string) {
	t.Helper()
	hash, err := auth.HashPassword("password123")
	require.NoError(t, err)

	user := &models.User{
		Id:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		IsAdmin:      admin,
		Wishlist:     []string{},
		CreatedAt:    time.Now().UTC(),
	}
	require.NoError(t, e.store.CreateUser(context.Background(), user))

	token, err := auth.IssueToken(testSecret, user.Id)
	require.NoError(t, err)
	return user, token
}

// newProduct seeds a catalog entry directly in the store.
func (e *env) newProduct(t *testing.T, name string, price float64, sizes, colors []string, design string) *models.Product {
	t.Helper()
	product := &models.Product{
		Id:             uuid.NewString(),
		Name:           name,
		Description:    "test product",
		Price:          price,
		Images:         []string{},
		Sizes:          sizes,
		Colors:         colors,
		DesignCategory: design,
		Stock:          5,
		CreatedAt:      time.Now().UTC(),
	}
	require.NoError(t, e.store.CreateProduct(context.Background(), product))
	return product
}
