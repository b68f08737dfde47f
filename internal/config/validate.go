package config

import (
	"errors"
	"fmt"
	"time"
)

// Validation constants define acceptable bounds for configuration values
const (
	// Token validation
	minTokenLength = 50 // Discord tokens are typically 50+ characters

	// RateLimitFallback validation
	minRateLimitFallback = 1 * time.Second
	maxRateLimitFallback = 5 * time.Minute
)

// Validate checks if the configuration values are valid and within acceptable
// ranges. It returns all validation errors at once using errors.Join.
func (c *Config) Validate() error {
	var errs []error

	if err := c.validateToken(); err != nil {
		errs = append(errs, err)
	}

	if err := c.validateDefaultGuildID(); err != nil {
		errs = append(errs, err)
	}

	if err := c.validateRateLimitFallback(); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n  %w", errors.Join(errs...))
	}

	return nil
}

func (c *Config) validateToken() error {
	if c.Token == "" {
		return fmt.Errorf("DISCORD_TOKEN is required but not set")
	}

	if len(c.Token) < minTokenLength {
		return fmt.Errorf(
			"DISCORD_TOKEN appears invalid (too short: %d chars, expected %d+)",
			len(c.Token), minTokenLength,
		)
	}

	return nil
}

func (c *Config) validateDefaultGuildID() error {
	if c.DefaultGuildID == "" {
		return nil
	}

	if !IsGuildID(c.DefaultGuildID) {
		return fmt.Errorf(
			"DISCORD_GUILD_ID must be an all-digits snowflake, got %q",
			c.DefaultGuildID,
		)
	}

	return nil
}

func (c *Config) validateRateLimitFallback() error {
	if c.RateLimitFallback < minRateLimitFallback {
		return fmt.Errorf(
			"RATE_LIMIT_FALLBACK must be at least %v, got %v",
			minRateLimitFallback, c.RateLimitFallback,
		)
	}

	if c.RateLimitFallback > maxRateLimitFallback {
		return fmt.Errorf(
			"RATE_LIMIT_FALLBACK must be at most %v, got %v",
			maxRateLimitFallback, c.RateLimitFallback,
		)
	}

	return nil
}

// IsGuildID reports whether s looks like a Discord guild snowflake:
// non-empty and all digits.
func IsGuildID(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
