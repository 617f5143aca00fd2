package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	EnvVerificationCacheTTL       = "ATTEST_VERIFICATION_CACHE_TTL"
	EnvVerificationConfidenceSeed = "ATTEST_VERIFICATION_CONFIDENCE_SEED"
)

// VerificationConfig tunes landlord and tenant report caching and the random
// source behind confidence-scored vehicle and land checks.
type VerificationConfig struct {
	CacheTTL string `toml:"cache_ttl"`
	// ConfidenceSeed fixes the confidence source for reproducible runs.
	// Zero seeds from the runtime.
	ConfidenceSeed uint64 `toml:"confidence_seed"`
}

// CacheTTLDuration returns CacheTTL as a time.Duration.
func (c *VerificationConfig) CacheTTLDuration() time.Duration {
	d, _ := time.ParseDuration(c.CacheTTL)
	return d
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *VerificationConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *VerificationConfig) Merge(overlay *VerificationConfig) {
	if overlay.CacheTTL != "" {
		c.CacheTTL = overlay.CacheTTL
	}
	if overlay.ConfidenceSeed != 0 {
		c.ConfidenceSeed = overlay.ConfidenceSeed
	}
}

func (c *VerificationConfig) loadDefaults() {
	if c.CacheTTL == "" {
		c.CacheTTL = "30s"
	}
}

func (c *VerificationConfig) loadEnv() {
	if v := os.Getenv(EnvVerificationCacheTTL); v != "" {
		c.CacheTTL = v
	}
	if v := os.Getenv(EnvVerificationConfidenceSeed); v != "" {
		if seed, err := strconv.ParseUint(v, 10, 64); err == nil {
			c.ConfidenceSeed = seed
		}
	}
}

func (c *VerificationConfig) validate() error {
	d, err := time.ParseDuration(c.CacheTTL)
	if err != nil {
		return fmt.Errorf("invalid cache_ttl: %w", err)
	}
	if d <= 0 {
		return fmt.Errorf("cache_ttl must be positive")
	}
	return nil
}
