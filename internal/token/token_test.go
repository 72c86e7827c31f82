package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-secret"

func TestSignVerifyRoundTrip(t *testing.T) {
	tok, err := Sign(testSecret, "64a000000000000000000001", "alice")
	require.NoError(t, err)

	claims, err := Verify(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, "64a000000000000000000001", claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.WithinDuration(t, time.Now().Add(TokenTTL), claims.ExpiresAt.Time, time.Minute)
}

func TestVerifyWrongSecret(t *testing.T) {
	tok, err := Sign(testSecret, "64a000000000000000000001", "alice")
	require.NoError(t, err)

	_, err = Verify("other-secret", tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyGarbage(t *testing.T) {
	_, err := Verify(testSecret, "not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyExpired(t *testing.T) {
	claims := Claims{
		UserID:   "64a000000000000000000001",
		Username: "alice",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = Verify(testSecret, tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsNonHMAC(t *testing.T) {
	// alg=none must never pass even with a well-formed claim set.
	tok, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		UserID:   "64a000000000000000000001",
		Username: "alice",
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = Verify(testSecret, tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyMissingClaims(t *testing.T) {
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = Verify(testSecret, tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
