package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"shopapi/middleware"
	"shopapi/models"
	"shopapi/store"
	"shopapi/utils"
)

type OrderController struct {
	Orders   store.OrderStore
	Carts    store.CartStore
	Notifier utils.Notifier
}

func NewOrderController(orders store.OrderStore, carts store.CartStore, notifier utils.Notifier) *OrderController {
	return &OrderController{Orders: orders, Carts: carts, Notifier: notifier}
}

type orderInput struct {
	Items           []models.OrderItem     `json:"items" binding:"required,min=1,dive"`
	TotalAmount     float64                `json:"total_amount" binding:"required,gt=0"`
	ShippingAddress models.ShippingAddress `json:"shipping_address" binding:"required"`
}

// CreateOrder snapshots the submitted items into an immutable order, clears
// the user's cart unconditionally, and fires the confirmation notification.
// Items and total are trusted as submitted; there is no recheck against the
// catalog.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var input orderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	user := middleware.CurrentUser(c)

	order := &models.Order{
		Id:              uuid.NewString(),
		UserId:          user.Id,
		UserName:        user.Name,
		UserEmail:       user.Email,
		Items:           input.Items,
		TotalAmount:     input.TotalAmount,
		ShippingAddress: input.ShippingAddress,
		Status:          "pending",
		CreatedAt:       time.Now().UTC(),
	}
	if err := oc.Orders.CreateOrder(ctx, order); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create order"})
		return
	}

	if err := oc.Carts.DeleteCart(ctx, user.Id); err != nil {
		logrus.WithError(err).WithField("user_id", user.Id).Error("Failed to clear cart after order")
	}

	// Fire and forget; a lost confirmation email does not fail the order.
	if err := oc.Notifier.OrderConfirmation(order); err != nil {
		logrus.WithError(err).WithField("order_id", order.Id).Error("Failed to send order confirmation")
	}

	c.JSON(http.StatusOK, order)
}

// GetOrders lists the caller's own orders, newest first.
func (oc *OrderController) GetOrders(c *gin.Context) {
	user := middleware.CurrentUser(c)
	orders, err := oc.Orders.ListOrdersByUser(c.Request.Context(), user.Id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch orders"})
		return
	}
	c.JSON(http.StatusOK, orders)
}

// GetAllOrders lists every order, newest first. Admin only.
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	orders, err := oc.Orders.ListAllOrders(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch orders"})
		return
	}
	c.JSON(http.StatusOK, orders)
}
