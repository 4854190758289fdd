package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"shopapi/middleware"
	"shopapi/models"
	"shopapi/store"
)

type CartController struct {
	Carts store.CartStore
}

func NewCartController(carts store.CartStore) *CartController {
	return &CartController{Carts: carts}
}

// GetCart returns an empty cart shape for a user without one; only a
// store-level failure is an error.
func (cc *CartController) GetCart(c *gin.Context) {
	user := middleware.CurrentUser(c)
	cart, err := cc.Carts.GetCart(c.Request.Context(), user.Id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusOK, models.Cart{
				UserId:    user.Id,
				Items:     []models.CartItem{},
				UpdatedAt: time.Now().UTC(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch cart"})
		return
	}
	c.JSON(http.StatusOK, cart)
}

// AddToCart merges the item into the cart on the (product, size, color) key:
// an existing line item gains the quantity, otherwise the item is appended.
func (cc *CartController) AddToCart(c *gin.Context) {
	var item models.CartItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	user := middleware.CurrentUser(c)

	cart, err := cc.Carts.GetCart(ctx, user.Id)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		// A failed read must not replace the stored cart wholesale.
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch cart"})
		return
	}
	if err != nil {
		cart = &models.Cart{UserId: user.Id, Items: []models.CartItem{item}}
	} else {
		found := false
		for i := range cart.Items {
			if cart.Items[i].Matches(item.ProductId, item.Size, item.Color) {
				cart.Items[i].Quantity += item.Quantity
				found = true
				break
			}
		}
		if !found {
			cart.Items = append(cart.Items, item)
		}
	}
	cart.UpdatedAt = time.Now().UTC()

	if err := cc.Carts.SaveCart(ctx, cart); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item added to cart"})
}

// UpdateCartItem overwrites the matching line item's quantity. A key that
// matches nothing leaves the items unchanged and still succeeds.
func (cc *CartController) UpdateCartItem(c *gin.Context) {
	quantity, err := strconv.Atoi(c.Query("quantity"))
	if err != nil || quantity < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quantity"})
		return
	}

	ctx := c.Request.Context()
	user := middleware.CurrentUser(c)

	cart, err := cc.Carts.GetCart(ctx, user.Id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch cart"})
		return
	}

	productId := c.Param("productId")
	size := c.Query("size")
	color := c.Query("color")
	for i := range cart.Items {
		if cart.Items[i].Matches(productId, size, color) {
			cart.Items[i].Quantity = quantity
			break
		}
	}
	cart.UpdatedAt = time.Now().UTC()

	if err := cc.Carts.SaveCart(ctx, cart); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cart updated"})
}

// RemoveFromCart drops every line item matching the key and keeps the rest.
func (cc *CartController) RemoveFromCart(c *gin.Context) {
	ctx := c.Request.Context()
	user := middleware.CurrentUser(c)

	cart, err := cc.Carts.GetCart(ctx, user.Id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch cart"})
		return
	}

	productId := c.Param("productId")
	size := c.Query("size")
	color := c.Query("color")
	kept := cart.Items[:0]
	for _, item := range cart.Items {
		if !item.Matches(productId, size, color) {
			kept = append(kept, item)
		}
	}
	cart.Items = kept
	cart.UpdatedAt = time.Now().UTC()

	if err := cc.Carts.SaveCart(ctx, cart); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item removed from cart"})
}
