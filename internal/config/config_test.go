package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var keys = []string{
	"PORT", "WEB_PORT", "JWT_SECRET", "STORE_DRIVER", "STORE_DSN", "CATALOG_FILE",
	"SESSION_TTL", "SUBMIT_LATENCY", "NOTICE_TTL", "STRICT_EMAIL", "TIMEZONE",
	"ALLOWED_ORIGINS", "RATE_RPS", "RATE_BURST", "SWEEP_SCHEDULE", "LOG_MODE", "LOG_FILE",
	"MODAL_MAX_AGE", "NOTICE_FEED_CAP", "TRUSTED_PROXIES",
}

// clearEnv unsets every setting for the test; t.Setenv restores them after.
func clearEnv(t *testing.T) {
	for _, k := range keys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", "s3cret")

	c, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "50051", c.GRPCPort)
	assert.Equal(t, "8080", c.WebPort)
	assert.Equal(t, "bolt", c.StoreDriver)
	assert.Equal(t, "booking.db", c.StoreDSN)
	assert.Equal(t, 24*time.Hour, c.SessionTTL)
	assert.Equal(t, 1500*time.Millisecond, c.SubmitLatency)
	assert.Equal(t, 5*time.Second, c.NoticeTTL)
	assert.Equal(t, 24*time.Hour, c.ModalMaxAge)
	assert.Equal(t, 50, c.NoticeFeedCap)
	assert.Empty(t, c.TrustedProxies)
	assert.False(t, c.StrictEmail)
	assert.Equal(t, []string{"http://localhost:3000"}, c.AllowedOrigins)
	assert.Equal(t, 5.0, c.RateRPS)
	assert.Equal(t, 10, c.RateBurst)
	assert.Equal(t, "@every 1m", c.SweepSchedule)
	assert.Equal(t, time.Local, c.Location)
}

func TestSecretRequired(t *testing.T) {
	clearEnv(t)
	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.ErrorIs(t, err, ErrNoSecret)
}

func TestOverridesAndDotenv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("JWT_SECRET=from-file\nSTORE_DRIVER=sqlite\n"), 0o600))
	t.Setenv("SUBMIT_LATENCY", "0")
	t.Setenv("STRICT_EMAIL", "true")
	t.Setenv("ALLOWED_ORIGINS", "http://a.test, http://b.test,")
	t.Setenv("TIMEZONE", "UTC")
	t.Setenv("RATE_BURST", "3")
	t.Setenv("TRUSTED_PROXIES", "10.0.0.0/8, 192.0.2.7")

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-file", c.Secret)
	assert.Equal(t, "sqlite", c.StoreDriver)
	assert.Zero(t, c.SubmitLatency)
	assert.True(t, c.StrictEmail)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, c.AllowedOrigins)
	assert.Equal(t, time.UTC, c.Location)
	assert.Equal(t, 3, c.RateBurst)
	require.Len(t, c.TrustedProxies, 2)
	assert.Equal(t, "10.0.0.0/8", c.TrustedProxies[0].String())
	assert.Equal(t, "192.0.2.7/32", c.TrustedProxies[1].String())
}

func TestBadValues(t *testing.T) {
	tests := map[string]string{
		"SESSION_TTL":     "forever",
		"RATE_RPS":        "fast",
		"TIMEZONE":        "Mars/Olympus",
		"NOTICE_TTL":      "-5s",
		"MODAL_MAX_AGE":   "soon",
		"TRUSTED_PROXIES": "10.0.0.0/99",
		"NOTICE_FEED_CAP": "lots",
	}
	for key, val := range tests {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("JWT_SECRET", "x")
			t.Setenv(key, val)
			_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
			assert.Error(t, err)
		})
	}
}
