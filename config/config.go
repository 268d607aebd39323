package config

import (
	"errors"
	"time"

	"github.com/skillsenselab/fintrust/logger"
)

// ErrMissingSecret is returned when JWT_SECRET is absent or blank. Services
// must treat it as fatal at startup.
var ErrMissingSecret = errors.New("JWT_SECRET must be set in the environment (generate with: openssl rand -hex 32)")

// RateLimit holds a window/max pair for a sliding-window rate limiter.
type RateLimit struct {
	Window time.Duration
	Max    int
}

// Metrics holds OpenTelemetry exporter settings. An empty endpoint disables
// metric export entirely.
type Metrics struct {
	Endpoint string
}

// Auth is the configuration for the authentication service.
type Auth struct {
	Port           int
	JWTSecret      string
	TokenTTL       time.Duration
	LoginRateLimit RateLimit
	LoginBodyLimit string
	Logging        logger.Config
	Metrics        Metrics
}

// API is the configuration for the resource API service.
type API struct {
	Port              int
	JWTSecret         string
	APIRateLimit      RateLimit
	MaxTransferAmount float64
	MaxPaymentAmount  float64
	Logging           logger.Config
	Metrics           Metrics
}

// LoadAuth reads the authentication service configuration from the
// environment (and .env files in development).
func LoadAuth() *Auth {
	loadEnvFiles("auth")
	v := newViper()

	cfg := &Auth{
		Port:      positiveIntOr(v, "PORT", 5001),
		JWTSecret: secret(v),
		TokenTTL:  time.Hour,
		LoginRateLimit: RateLimit{
			Window: windowOr(v, "LOGIN_RATE_LIMIT_WINDOW_MS", 15*time.Minute),
			Max:    positiveIntOr(v, "LOGIN_RATE_LIMIT_MAX", 10),
		},
		LoginBodyLimit: "2KB",
		Logging:        loggingFromEnv(v),
		Metrics:        Metrics{Endpoint: v.GetString("OTEL_ENDPOINT")},
	}
	return cfg
}

// LoadAPI reads the resource API configuration from the environment.
func LoadAPI() *API {
	loadEnvFiles("api")
	v := newViper()

	cfg := &API{
		Port:      positiveIntOr(v, "PORT", 4000),
		JWTSecret: secret(v),
		APIRateLimit: RateLimit{
			Window: windowOr(v, "API_RATE_LIMIT_WINDOW_MS", 15*time.Minute),
			Max:    positiveIntOr(v, "API_RATE_LIMIT_MAX", 300),
		},
		MaxTransferAmount: positiveFloatOr(v, "MAX_TRANSFER_AMOUNT", 50000),
		MaxPaymentAmount:  positiveFloatOr(v, "MAX_PAYMENT_AMOUNT", 50000),
		Logging:           loggingFromEnv(v),
		Metrics:           Metrics{Endpoint: v.GetString("OTEL_ENDPOINT")},
	}
	return cfg
}

// Validate enforces the startup preconditions for the auth service.
func (c *Auth) Validate() error {
	if c.JWTSecret == "" {
		return ErrMissingSecret
	}
	return c.Logging.Validate()
}

// Validate enforces the startup preconditions for the API service. The
// verifier must use the same secret as the issuer; operating the two with
// mismatched secrets is a deployment error this code cannot detect.
func (c *API) Validate() error {
	if c.JWTSecret == "" {
		return ErrMissingSecret
	}
	return c.Logging.Validate()
}

func loggingFromEnv(v interface{ GetString(string) string }) logger.Config {
	cfg := logger.Config{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
		Output: v.GetString("LOG_OUTPUT"),
	}
	cfg.ApplyDefaults()
	return cfg
}
