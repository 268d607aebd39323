package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// loadEnvFiles loads .env files for local development. Missing files are
// fine; real deployments set the environment directly.
func loadEnvFiles(serviceName string) {
	candidates := []string{
		fmt.Sprintf(".env.%s", serviceName),
		".env",
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
		}
	}
}

// newViper returns a viper instance reading directly from the environment.
func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()
	return v
}

// positiveIntOr reads an integer environment value, falling back to def when
// the value is unset, unparseable, or not strictly positive. Mirrors the
// guard the limits have always had: a bad override must not disable a limit.
func positiveIntOr(v *viper.Viper, key string, def int) int {
	if n := v.GetInt(key); n > 0 {
		return n
	}
	return def
}

// positiveFloatOr reads a float environment value with the same fallback rule.
func positiveFloatOr(v *viper.Viper, key string, def float64) float64 {
	if f := v.GetFloat64(key); f > 0 {
		return f
	}
	return def
}

// windowOr reads a millisecond window value as a duration.
func windowOr(v *viper.Viper, key string, def time.Duration) time.Duration {
	if ms := v.GetInt64(key); ms > 0 {
		return time.Duration(ms) * time.Millisecond
	}
	return def
}

// secret reads and trims the signing secret. Validation of presence happens
// in Validate, not here.
func secret(v *viper.Viper) string {
	return strings.TrimSpace(v.GetString("JWT_SECRET"))
}
