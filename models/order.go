package models

import (
	"time"
)

// OrderItem is a priced snapshot of a cart line item. The price comes from
// the client and is not re-checked against the catalog.
type OrderItem struct {
	ProductId   string  `bson:"product_id" json:"product_id" binding:"required"`
	ProductName string  `bson:"product_name" json:"product_name" binding:"required"`
	Quantity    int     `bson:"quantity" json:"quantity" binding:"required,min=1"`
	Size        string  `bson:"size" json:"size" binding:"required"`
	Color       string  `bson:"color" json:"color" binding:"required"`
	Price       float64 `bson:"price" json:"price" binding:"required"`
}

type ShippingAddress struct {
	Name    string `bson:"name" json:"name" binding:"required"`
	Address string `bson:"address" json:"address" binding:"required"`
	City    string `bson:"city" json:"city" binding:"required"`
	State   string `bson:"state" json:"state"`
	Zip     string `bson:"zip" json:"zip" binding:"required"`
}

// Order is never mutated after creation; status transitions happen outside
// this service.
type Order struct {
	Id              string          `bson:"_id" json:"id"`
	UserId          string          `bson:"user_id" json:"user_id"`
	UserName        string          `bson:"user_name" json:"user_name"`
	UserEmail       string          `bson:"user_email" json:"user_email"`
	Items           []OrderItem     `bson:"items" json:"items"`
	TotalAmount     float64         `bson:"total_amount" json:"total_amount"`
	ShippingAddress ShippingAddress `bson:"shipping_address" json:"shipping_address"`
	Status          string          `bson:"status" json:"status"`
	CreatedAt       time.Time       `bson:"created_at" json:"created_at"`
}
