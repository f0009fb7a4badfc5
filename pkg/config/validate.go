package config

import (
	"fmt"
	"strconv"
)

// ValidateCore checks the settings the server cannot start without.
func (c *Config) ValidateCore() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET must not be empty")
	}
	if _, err := strconv.Atoi(c.Server.Port); err != nil {
		return fmt.Errorf("SERVER_PORT must be numeric: %q", c.Server.Port)
	}
	if c.Session.TTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}
	if c.RateLimit.Limit <= 0 {
		return fmt.Errorf("RATE_LIMIT must be positive")
	}
	return nil
}
