package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var logLevels = []string{"debug", "info", "warn", "error"}

// Validate reports every rule the configuration breaks, joined.
// Load calls it after reading.
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(strings.TrimSpace(c.App.Name) != "", "app.name must not be empty")

	check(len(c.Auth.JWTSecret) >= 32, "auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	check(c.Auth.AccessTokenTTL > 0, "auth.access_token_ttl must be > 0 (got %s)", c.Auth.AccessTokenTTL)
	check(c.Auth.ClockSkew >= 0, "auth.clock_skew must be >= 0 (got %s)", c.Auth.ClockSkew)

	check(c.Server.Port >= 1 && c.Server.Port <= 65535, "server.port must be in 1..65535 (got %d)", c.Server.Port)

	check(c.Database.MaxConns >= 0 && c.Database.MinConns >= 0,
		"database.max_conns and min_conns must be >= 0 (got %d, %d)", c.Database.MaxConns, c.Database.MinConns)
	check(c.Database.MaxConns == 0 || c.Database.MinConns <= c.Database.MaxConns,
		"database.min_conns must be <= max_conns (got %d > %d)", c.Database.MinConns, c.Database.MaxConns)
	check(c.Database.StatementTimeout >= 0, "database.statement_timeout must be >= 0 (got %s)", c.Database.StatementTimeout)

	check(slices.Contains(logLevels, strings.ToLower(c.Log.Level)),
		"log.level must be one of %v (got %q)", logLevels, c.Log.Level)

	check(c.RateLimit.RequestsPerMinute >= 0,
		"rate_limit.requests_per_minute must be >= 0 (got %d)", c.RateLimit.RequestsPerMinute)

	check(c.Cleanup.DoneRetentionDays >= 1,
		"cleanup.done_retention_days must be >= 1 (got %d)", c.Cleanup.DoneRetentionDays)

	check(c.Pagination.DefaultSize > 0, "pagination.default_size must be > 0 (got %d)", c.Pagination.DefaultSize)
	check(c.Pagination.MaxSize >= c.Pagination.DefaultSize,
		"pagination.max_size must be >= default_size (got %d < %d)", c.Pagination.MaxSize, c.Pagination.DefaultSize)

	return errors.Join(errs...)
}
