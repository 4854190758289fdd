package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestIssueAndParseToken(t *testing.T) {
	token, err := IssueToken(testSecret, "user-1")
	require.NoError(t, err)

	userId, err := ParseToken(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userId)
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, err := IssueToken(testSecret, "user-1")
	require.NoError(t, err)

	_, err = ParseToken("other-secret", token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestParseTokenExpired(t *testing.T) {
	claims := jwt.MapClaims{
		"sub": "user-1",
		"exp": time.Now().Add(-time.Minute).Unix(),
		"iat": time.Now().Add(-time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = ParseToken(testSecret, token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestParseTokenGarbage(t *testing.T) {
	_, err := ParseToken(testSecret, "not-a-token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestParseTokenMissingSubject(t *testing.T) {
	claims := jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = ParseToken(testSecret, token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestResetTokenIsNotABearerToken(t *testing.T) {
	token, err := IssueResetToken(testSecret, "user-1")
	require.NoError(t, err)

	_, err = ParseToken(testSecret, token)
	assert.ErrorIs(t, err, ErrTokenInvalid)

	userId, err := ParseResetToken(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userId)
}

func TestBearerTokenIsNotAResetToken(t *testing.T) {
	token, err := IssueToken(testSecret, "user-1")
	require.NoError(t, err)

	_, err = ParseResetToken(testSecret, token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenLifetimeIsSevenDays(t *testing.T) {
	token, err := IssueToken(testSecret, "user-1")
	require.NoError(t, err)

	parsed, err := jwt.Parse(token, func(*jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)

	exp, err := parsed.Claims.GetExpirationTime()
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), exp.Time, time.Minute)
}
