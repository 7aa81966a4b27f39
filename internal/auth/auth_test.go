package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHash(t *testing.T) {
	h, err := HashPassword("secret1")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", h)
	assert.True(t, CheckPassword(h, "secret1"))
	assert.False(t, CheckPassword(h, "secret2"))
}

func TestTokenRoundTrip(t *testing.T) {
	raw, hash, err := NewSessionID()
	require.NoError(t, err)
	assert.Equal(t, HashSessionID(raw), hash)
	assert.NotEqual(t, raw, hash)

	tok, err := MakeToken(raw, "a@b.co", "k", time.Hour)
	require.NoError(t, err)

	c, err := ParseToken(tok, "k")
	require.NoError(t, err)
	assert.Equal(t, raw, c.SessionID)
	assert.Equal(t, "a@b.co", c.Subject)
}

func TestParseTokenRejects(t *testing.T) {
	good, err := MakeToken("sid", "a@b.co", "k", time.Hour)
	require.NoError(t, err)
	expired, err := MakeToken("sid", "a@b.co", "k", -time.Minute)
	require.NoError(t, err)
	noSID, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "a@b.co"},
	}).SignedString([]byte("k"))
	require.NoError(t, err)
	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{SessionID: "sid"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name, tok, secret string
	}{
		{"wrong secret", good, "other"},
		{"expired", expired, "k"},
		{"missing session id", noSID, "k"},
		{"alg none", none, "k"},
		{"garbage", "not.a.token", "k"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseToken(tt.tok, tt.secret)
			assert.Error(t, err)
		})
	}
}
