package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// TokenTTL is the lifetime of a login bearer token.
	TokenTTL = 7 * 24 * time.Hour
	// ResetTokenTTL is the lifetime of a password reset token.
	ResetTokenTTL = 15 * time.Minute

	resetTokenType = "reset_password"
)

var (
	ErrTokenExpired = errors.New("auth: token expired")
	ErrTokenInvalid = errors.New("auth: token invalid")
)

// IssueToken signs an HS256 bearer token carrying the user id, valid for
// TokenTTL from now.
func IssueToken(secret, userId string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": userId,
		"exp": now.Add(TokenTTL).Unix(),
		"iat": now.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// IssueResetToken signs a short-lived token usable only for password resets.
func IssueResetToken(secret, userId string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  userId,
		"exp":  now.Add(ResetTokenTTL).Unix(),
		"iat":  now.Unix(),
		"type": resetTokenType,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken verifies signature and expiry and returns the user id. Expired
// tokens and otherwise-invalid tokens fail distinctly.
func ParseToken(secret, tokenString string) (string, error) {
	claims, err := parseClaims(secret, tokenString)
	if err != nil {
		return "", err
	}
	if claims["type"] == resetTokenType {
		// Reset tokens cannot be used as bearer credentials.
		return "", ErrTokenInvalid
	}
	return subject(claims)
}

// ParseResetToken verifies a password reset token and returns the user id.
func ParseResetToken(secret, tokenString string) (string, error) {
	claims, err := parseClaims(secret, tokenString)
	if err != nil {
		return "", err
	}
	if claims["type"] != resetTokenType {
		return "", ErrTokenInvalid
	}
	return subject(claims)
}

func parseClaims(secret, tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

func subject(claims jwt.MapClaims) (string, error) {
	userId, ok := claims["sub"].(string)
	if !ok || userId == "" {
		return "", ErrTokenInvalid
	}
	return userId, nil
}
