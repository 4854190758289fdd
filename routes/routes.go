package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"shopapi/controller"
	"shopapi/middleware"
	"shopapi/store"
)

// Deps carries everything route registration needs. Tests wire it to the
// in-memory store; main wires it to mongo and redis.
type Deps struct {
	Store     store.Store
	JWTSecret string
	Redis     *redis.Client

	Auth     *controller.AuthController
	Products *controller.ProductController
	Reviews  *controller.ReviewController
	Carts    *controller.CartController
	Wishlist *controller.WishlistController
	Orders   *controller.OrderController
}

// Register mounts every endpoint under the /api prefix.
func Register(router *gin.Engine, deps Deps) {
	api := router.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	limited := middleware.RateLimiter(deps.Redis)
	api.POST("/auth/register", limited, deps.Auth.Register)
	api.POST("/auth/login", limited, deps.Auth.Login)
	api.POST("/auth/forgot-password", limited, deps.Auth.ForgotPassword)
	api.POST("/auth/reset-password", limited, deps.Auth.ResetPassword)

	api.GET("/products", deps.Products.GetProducts)
	api.GET("/products/:id", deps.Products.GetProductByID)
	api.GET("/products/:id/reviews", deps.Reviews.GetReviews)

	authorized := api.Group("/")
	authorized.Use(middleware.RequireAuth(deps.Store, deps.JWTSecret))
	{
		authorized.GET("/auth/me", deps.Auth.Me)

		authorized.POST("/products/:id/reviews", deps.Reviews.CreateReview)

		authorized.GET("/cart", deps.Carts.GetCart)
		authorized.POST("/cart", deps.Carts.AddToCart)
		authorized.PUT("/cart/:productId", deps.Carts.UpdateCartItem)
		authorized.DELETE("/cart/:productId", deps.Carts.RemoveFromCart)

		authorized.GET("/wishlist", deps.Wishlist.GetWishlist)
		authorized.POST("/wishlist/:productId", deps.Wishlist.AddToWishlist)
		authorized.DELETE("/wishlist/:productId", deps.Wishlist.RemoveFromWishlist)

		authorized.POST("/orders", deps.Orders.CreateOrder)
		authorized.GET("/orders", deps.Orders.GetOrders)

		admin := authorized.Group("/")
		admin.Use(middleware.RequireAdmin())
		{
			admin.POST("/products", deps.Products.CreateProduct)
			admin.PUT("/products/:id", deps.Products.UpdateProduct)
			admin.DELETE("/products/:id", deps.Products.DeleteProduct)
			admin.GET("/admin/orders", deps.Orders.GetAllOrders)
		}
	}
}
