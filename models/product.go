package models

import (
	"time"
)

// Product corresponds to the 'products' collection. Rating and ReviewCount
// are derived from the reviews collection and rewritten on every new review.
type Product struct {
	Id             string    `bson:"_id" json:"id"`
	Name           string    `bson:"name" json:"name"`
	Description    string    `bson:"description" json:"description"`
	Price          float64   `bson:"price" json:"price"`
	Images         []string  `bson:"images" json:"images"`
	Sizes          []string  `bson:"sizes" json:"sizes"`
	Colors         []string  `bson:"colors" json:"colors"`
	DesignCategory string    `bson:"design_category" json:"design_category"`
	Stock          int       `bson:"stock" json:"stock"`
	Rating         float64   `bson:"rating" json:"rating"`
	ReviewCount    int       `bson:"review_count" json:"review_count"`
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
}
