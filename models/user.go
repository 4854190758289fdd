package models

import (
	"time"
)

type User struct {
	Id           string    `bson:"_id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password" json:"-"` // never serialized
	IsAdmin      bool      `bson:"is_admin" json:"is_admin"`
	Wishlist     []string  `bson:"wishlist" json:"wishlist"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}

// PublicUser is the shape returned alongside a freshly issued token.
type PublicUser struct {
	Id      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
}

func (u *User) Public() PublicUser {
	return PublicUser{Id: u.Id, Name: u.Name, Email: u.Email, IsAdmin: u.IsAdmin}
}
