// Package auth covers password hashing and bearer-token issuance. Both are
// pure CPU-bound steps; nothing here touches the store.
package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPassword produces a salted, irreversible hash of the password.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword reports whether the password matches the stored hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
