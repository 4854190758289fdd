package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shopapi/middleware"
	"shopapi/store"
)

type WishlistController struct {
	Users    store.UserStore
	Products store.ProductStore
}

func NewWishlistController(users store.UserStore, products store.ProductStore) *WishlistController {
	return &WishlistController{Users: users, Products: products}
}

// AddToWishlist is idempotent; adding a present id changes nothing.
func (wc *WishlistController) AddToWishlist(c *gin.Context) {
	user := middleware.CurrentUser(c)
	productId := c.Param("productId")

	for _, id := range user.Wishlist {
		if id == productId {
			c.JSON(http.StatusOK, gin.H{"message": "Added to wishlist"})
			return
		}
	}

	wishlist := append(append([]string{}, user.Wishlist...), productId)
	if err := wc.Users.UpdateWishlist(c.Request.Context(), user.Id, wishlist); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update wishlist"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Added to wishlist"})
}

func (wc *WishlistController) RemoveFromWishlist(c *gin.Context) {
	user := middleware.CurrentUser(c)
	productId := c.Param("productId")

	wishlist := []string{}
	removed := false
	for _, id := range user.Wishlist {
		if id == productId {
			removed = true
			continue
		}
		wishlist = append(wishlist, id)
	}
	if removed {
		if err := wc.Users.UpdateWishlist(c.Request.Context(), user.Id, wishlist); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update wishlist"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"message": "Removed from wishlist"})
}

// GetWishlist hydrates the stored product ids into product documents.
func (wc *WishlistController) GetWishlist(c *gin.Context) {
	user := middleware.CurrentUser(c)
	products, err := wc.Products.ListProductsByIds(c.Request.Context(), user.Wishlist)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch wishlist"})
		return
	}
	c.JSON(http.StatusOK, products)
}
