package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shop-service/internal/config"
)

func newTestManager() *TokenManager {
	return NewTokenManager(&config.JWTConfig{
		Secret: "test-secret",
		TTL:    time.Hour,
		Issuer: "shop-service",
	})
}

func TestTokenManager_IssueAndVerify(t *testing.T) {
	m := newTestManager()

	token, err := m.Issue(42)
	require.NoError(t, err)

	userID, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), userID)
}

func TestTokenManager_Verify_Rejects(t *testing.T) {
	m := newTestManager()
	valid, err := m.Issue(7)
	require.NoError(t, err)

	expired := newTestManager()
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expiredToken, err := expired.Issue(7)
	require.NoError(t, err)

	other := NewTokenManager(&config.JWTConfig{Secret: "other-secret", TTL: time.Hour, Issuer: "shop-service"})
	foreignToken, err := other.Issue(7)
	require.NoError(t, err)

	wrongIssuer := NewTokenManager(&config.JWTConfig{Secret: "test-secret", TTL: time.Hour, Issuer: "someone-else"})
	wrongIssuerToken, err := wrongIssuer.Issue(7)
	require.NoError(t, err)

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.RegisteredClaims{
		Subject:   "7",
		Issuer:    "shop-service",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject: "7",
		Issuer:  "shop-service",
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	badSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "alice",
		Issuer:    "shop-service",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "malformed", token: "not-a-jwt"},
		{name: "tampered", token: valid + "x"},
		{name: "expired", token: expiredToken},
		{name: "wrong secret", token: foreignToken},
		{name: "wrong issuer", token: wrongIssuerToken},
		{name: "wrong algorithm", token: hs512},
		{name: "missing expiry", token: noExpiry},
		{name: "non-numeric subject", token: badSubject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userID, err := m.Verify(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
			assert.Zero(t, userID)
		})
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)

	assert.NotEqual(t, "s3cret", hash)
	assert.True(t, CheckPassword(hash, "s3cret"))
	assert.False(t, CheckPassword(hash, "wrong"))
	assert.False(t, CheckPassword("not-a-hash", "s3cret"))
}
