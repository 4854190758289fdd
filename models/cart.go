package models

import (
	"time"
)

// CartItem is one line item; a cart holds at most one item per
// (product, size, color) key.
type CartItem struct {
	ProductId string `bson:"product_id" json:"product_id" binding:"required"`
	Quantity  int    `bson:"quantity" json:"quantity" binding:"required,min=1"`
	Size      string `bson:"size" json:"size" binding:"required"`
	Color     string `bson:"color" json:"color" binding:"required"`
}

// Matches reports whether the item carries the given merge key.
func (i CartItem) Matches(productId, size, color string) bool {
	return i.ProductId == productId && i.Size == size && i.Color == color
}

type Cart struct {
	UserId    string     `bson:"_id" json:"user_id"`
	Items     []CartItem `bson:"items" json:"items"`
	UpdatedAt time.Time  `bson:"updated_at" json:"updated_at"`
}
