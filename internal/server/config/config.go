// Package config handles configuration for the itemkeeper server: defaults,
// a dotenv file, environment variables, a JSON overlay and command-line flags,
// applied in that order.
package config

import (
	"fmt"
	"os"
	"time"
)

// Config holds runtime settings for the itemkeeper server.
//
// Fields:
//   - EndpointAddrHTTP: bind address of the REST API.
//   - EndpointAddrGRPC: bind address of the gRPC health service; empty disables it.
//   - SecretKey: HMAC secret for signing JWTs (HS256). Do not use the default in prod.
//   - TokenValidityDuration: lifetime of issued bearer tokens.
//   - BcryptCost: work factor for password hashing.
//   - RateLimitMax / RateLimitWindow: per-client request budget on /api/ routes.
//   - CORSOrigin: allowed CORS origin ("*" allows any).
//   - Environment: reported by the health endpoint.
//   - LogLevel: debug, info, warn or error.
//   - SeedDemoData: preload the demo users and items on startup.
type Config struct {
	EndpointAddrHTTP      string
	EndpointAddrGRPC      string
	SecretKey             string
	TokenValidityDuration time.Duration
	BcryptCost            int
	RateLimitMax          int
	RateLimitWindow       time.Duration
	CORSOrigin            string
	Environment           string
	LogLevel              string
	SeedDemoData          bool
}

// LoadDefaults populates Config with development defaults.
// NOTE: the secret key is insecure and must be overridden in production.
func (c *Config) LoadDefaults() {
	c.EndpointAddrHTTP = ":3000"
	c.EndpointAddrGRPC = ":50051"
	c.SecretKey = "your-secret-key-change-in-production"
	c.TokenValidityDuration = 24 * time.Hour
	c.BcryptCost = 10
	c.RateLimitMax = 100
	c.RateLimitWindow = 15 * time.Minute
	c.CORSOrigin = "*"
	c.Environment = "development"
	c.LogLevel = "info"
	c.SeedDemoData = true
}

// LoadConfig builds a Config from os.Args and the process environment.
func LoadConfig() (*Config, error) {
	return load(os.Args[1:])
}

func load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseEnv(cfg, args); err != nil {
		return nil, fmt.Errorf("env config: %w", err)
	}
	if err := parseJson(cfg, args); err != nil {
		return nil, fmt.Errorf("json config: %w", err)
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, fmt.Errorf("flags: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the server cannot run with.
func (c *Config) Validate() error {
	if c.EndpointAddrHTTP == "" {
		return fmt.Errorf("http address must not be empty")
	}
	if c.SecretKey == "" {
		return fmt.Errorf("secret key must not be empty")
	}
	if c.TokenValidityDuration <= 0 {
		return fmt.Errorf("token validity must be positive, got %s", c.TokenValidityDuration)
	}
	if c.BcryptCost < 4 || c.BcryptCost > 31 {
		return fmt.Errorf("bcrypt cost must be between 4 and 31, got %d", c.BcryptCost)
	}
	if c.RateLimitMax < 0 || (c.RateLimitMax > 0 && c.RateLimitWindow <= 0) {
		return fmt.Errorf("invalid rate limit %d per %s", c.RateLimitMax, c.RateLimitWindow)
	}
	return nil
}
