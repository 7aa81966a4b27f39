// Package config reads the server settings from the environment, after
// loading an optional .env file.
package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

type Config struct {
	GRPCPort string
	WebPort  string
	Secret   string

	StoreDriver string
	StoreDSN    string
	CatalogFile string

	SessionTTL    time.Duration
	SubmitLatency time.Duration
	NoticeTTL     time.Duration
	ModalMaxAge   time.Duration
	NoticeFeedCap int
	StrictEmail   bool
	Location      *time.Location

	AllowedOrigins []string
	TrustedProxies []*net.IPNet
	RateRPS        float64
	RateBurst      int
	SweepSchedule  string

	LogMode string
	LogFile string
}

var ErrNoSecret = errors.New("JWT_SECRET is required")

// Load reads .env files (missing ones are fine) and then the environment.
func Load(files ...string) (*Config, error) {
	_ = godotenv.Load(files...)

	c := &Config{
		GRPCPort:       env("PORT", "50051"),
		WebPort:        env("WEB_PORT", "8080"),
		Secret:         os.Getenv("JWT_SECRET"),
		StoreDriver:    env("STORE_DRIVER", "bolt"),
		StoreDSN:       env("STORE_DSN", "booking.db"),
		CatalogFile:    os.Getenv("CATALOG_FILE"),
		AllowedOrigins: splitList(env("ALLOWED_ORIGINS", "http://localhost:3000")),
		SweepSchedule:  env("SWEEP_SCHEDULE", "@every 1m"),
		LogMode:        env("LOG_MODE", "development"),
		LogFile:        os.Getenv("LOG_FILE"),
	}
	if c.Secret == "" {
		return nil, ErrNoSecret
	}

	var err error
	if c.SessionTTL, err = duration("SESSION_TTL", "24h"); err != nil {
		return nil, err
	}
	if c.SubmitLatency, err = duration("SUBMIT_LATENCY", "1.5s"); err != nil {
		return nil, err
	}
	if c.NoticeTTL, err = duration("NOTICE_TTL", "5s"); err != nil {
		return nil, err
	}
	if c.ModalMaxAge, err = duration("MODAL_MAX_AGE", "24h"); err != nil {
		return nil, err
	}
	if c.NoticeFeedCap, err = cast.ToIntE(env("NOTICE_FEED_CAP", "50")); err != nil {
		return nil, fmt.Errorf("NOTICE_FEED_CAP: %w", err)
	}
	if c.TrustedProxies, err = parseNets(os.Getenv("TRUSTED_PROXIES")); err != nil {
		return nil, err
	}
	if c.StrictEmail, err = cast.ToBoolE(env("STRICT_EMAIL", "false")); err != nil {
		return nil, fmt.Errorf("STRICT_EMAIL: %w", err)
	}
	if c.RateRPS, err = cast.ToFloat64E(env("RATE_RPS", "5")); err != nil {
		return nil, fmt.Errorf("RATE_RPS: %w", err)
	}
	if c.RateBurst, err = cast.ToIntE(env("RATE_BURST", "10")); err != nil {
		return nil, fmt.Errorf("RATE_BURST: %w", err)
	}

	c.Location = time.Local
	if tz := os.Getenv("TIMEZONE"); tz != "" && tz != "Local" {
		if c.Location, err = time.LoadLocation(tz); err != nil {
			return nil, fmt.Errorf("TIMEZONE: %w", err)
		}
	}
	return c, nil
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func duration(key, fallback string) (time.Duration, error) {
	d, err := cast.ToDurationE(env(key, fallback))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%s: negative duration", key)
	}
	return d, nil
}

// parseNets reads a comma list of CIDRs or bare addresses.
func parseNets(s string) ([]*net.IPNet, error) {
	var out []*net.IPNet
	for _, p := range splitList(s) {
		if !strings.Contains(p, "/") {
			ip := net.ParseIP(p)
			if ip == nil {
				return nil, fmt.Errorf("TRUSTED_PROXIES: bad address %q", p)
			}
			bits := 8 * net.IPv6len
			if ip4 := ip.To4(); ip4 != nil {
				ip, bits = ip4, 8*net.IPv4len
			}
			out = append(out, &net.IPNet{IP: ip, Mask: net.CIDRMask(bits, bits)})
			continue
		}
		_, n, err := net.ParseCIDR(p)
		if err != nil {
			return nil, fmt.Errorf("TRUSTED_PROXIES: %w", err)
		}
		out = append(out, n)
	}
	return out, nil
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
