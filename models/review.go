package models

import (
	"time"
)

// Review is immutable once created; at most one per (product, user) pair.
type Review struct {
	Id        string    `bson:"_id" json:"id"`
	ProductId string    `bson:"product_id" json:"product_id"`
	UserId    string    `bson:"user_id" json:"user_id"`
	UserName  string    `bson:"user_name" json:"user_name"`
	Rating    int       `bson:"rating" json:"rating"`
	Comment   string    `bson:"comment" json:"comment"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
