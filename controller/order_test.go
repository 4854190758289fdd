package controller_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopapi/models"
)

func orderBody(items []map[string]interface{}, total float64) map[string]interface{} {
	return map[string]interface{}{
		"items":        items,
		"total_amount": total,
		"shipping_address": map[string]string{
			"name": "Alice", "address": "1 Main St", "city": "Springfield", "state": "IL", "zip": "62704",
		},
	}
}

func orderItem(productId, name string, qty int, price float64) map[string]interface{} {
	return map[string]interface{}{
		"product_id": productId, "product_name": name, "quantity": qty,
		"size": "M", "color": "red", "price": price,
	}
}

func TestCreateOrderClearsCartAndNotifies(t *testing.T) {
	e := newEnv(t)
	user, token := e.newUser(t, "Alice", "alice@example.com", false)

	w := e.do(t, http.MethodPost, "/api/cart", token, cartItem("p1", 2, "M", "red"))
	require.Equal(t, http.StatusOK, w.Code)

	w = e.do(t, http.MethodPost, "/api/orders", token,
		orderBody([]map[string]interface{}{orderItem("p1", "Tee", 2, 39.9)}, 79.8))
	require.Equal(t, http.StatusOK, w.Code)

	var order models.Order
	decode(t, w, &order)
	assert.NotEmpty(t, order.Id)
	assert.Equal(t, "pending", order.Status)
	assert.Equal(t, user.Id, order.UserId)
	assert.Equal(t, "Alice", order.UserName)
	assert.Equal(t, "alice@example.com", order.UserEmail)
	assert.Equal(t, 79.8, order.TotalAmount)

	// Cart is gone.
	cart := e.fetchCart(t, token)
	assert.Empty(t, cart.Items)

	// Confirmation was fired exactly once.
	require.Len(t, e.notifier.orders, 1)
	assert.Equal(t, order.Id, e.notifier.orders[0].Id)
}

func TestCreateOrderValidation(t *testing.T) {
	e := newEnv(t)
	_, token := e.newUser(t, "Alice", "alice@example.com", false)

	// No items.
	w := e.do(t, http.MethodPost, "/api/orders", token, orderBody(nil, 10))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Missing shipping address fields.
	w = e.do(t, http.MethodPost, "/api/orders", token, map[string]interface{}{
		"items":        []map[string]interface{}{orderItem("p1", "Tee", 1, 10)},
		"total_amount": 10,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Unauthenticated.
	w = e.do(t, http.MethodPost, "/api/orders", "",
		orderBody([]map[string]interface{}{orderItem("p1", "Tee", 1, 10)}, 10))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetOrdersNewestFirstAndScoped(t *testing.T) {
	e := newEnv(t)
	_, aliceToken := e.newUser(t, "Alice", "alice@example.com", false)
	_, bobToken := e.newUser(t, "Bob", "bob@example.com", false)
	_, adminToken := e.newUser(t, "Admin", "admin@example.com", true)

	for i, total := range []float64{10, 20} {
		w := e.do(t, http.MethodPost, "/api/orders", aliceToken,
			orderBody([]map[string]interface{}{orderItem("p1", "Tee", i+1, total)}, total))
		require.Equal(t, http.StatusOK, w.Code)
	}
	w := e.do(t, http.MethodPost, "/api/orders", bobToken,
		orderBody([]map[string]interface{}{orderItem("p2", "Hoodie", 1, 50)}, 50))
	require.Equal(t, http.StatusOK, w.Code)

	// Own orders only, newest first.
	w = e.do(t, http.MethodGet, "/api/orders", aliceToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var mine []models.Order
	decode(t, w, &mine)
	require.Len(t, mine, 2)
	assert.Equal(t, 20.0, mine[0].TotalAmount)
	assert.False(t, mine[0].CreatedAt.Before(mine[1].CreatedAt))

	// Admin listing covers everyone.
	w = e.do(t, http.MethodGet, "/api/admin/orders", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var all []models.Order
	decode(t, w, &all)
	assert.Len(t, all, 3)

	// Non-admin is rejected.
	w = e.do(t, http.MethodGet, "/api/admin/orders", aliceToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

// TestEndToEndCheckout exercises the full flow: register, login, admin adds
// a product, the shopper merges duplicate cart adds, places the order, and
// the order shows up first in the listing with the cart cleared.
func TestEndToEndCheckout(t *testing.T) {
	e := newEnv(t)
	_, adminToken := e.newUser(t, "Admin", "admin@example.com", true)

	// Register + login.
	w := e.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name": "Uma", "email": "uma@example.com", "password": "password123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = e.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "uma@example.com", "password": "password123",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var login struct {
		Token string `json:"token"`
	}
	decode(t, w, &login)
	token := login.Token

	// Admin adds the product with stock 5.
	w = e.do(t, http.MethodPost, "/api/products", adminToken, tshirtBody)
	require.Equal(t, http.StatusOK, w.Code)
	var product models.Product
	decode(t, w, &product)

	// Add the same (product, M, red) twice with qty 2 → one line, qty 4.
	for i := 0; i < 2; i++ {
		w = e.do(t, http.MethodPost, "/api/cart", token, cartItem(product.Id, 2, "M", "red"))
		require.Equal(t, http.StatusOK, w.Code)
	}
	cart := e.fetchCart(t, token)
	require.Len(t, cart.Items, 1)
	require.Equal(t, 4, cart.Items[0].Quantity)

	// Place the order with the cart's items.
	total := product.Price * 4
	w = e.do(t, http.MethodPost, "/api/orders", token,
		orderBody([]map[string]interface{}{orderItem(product.Id, product.Name, 4, product.Price)}, total))
	require.Equal(t, http.StatusOK, w.Code)
	var order models.Order
	decode(t, w, &order)
	assert.Equal(t, total, order.TotalAmount)

	// Cart is now empty and the order is first in the listing.
	assert.Empty(t, e.fetchCart(t, token).Items)

	w = e.do(t, http.MethodGet, "/api/orders", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var orders []models.Order
	decode(t, w, &orders)
	require.NotEmpty(t, orders)
	assert.Equal(t, order.Id, orders[0].Id)
}
