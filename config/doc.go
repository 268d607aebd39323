// Package config loads service configuration from the environment, with
// optional .env files for development, and validates it at startup.
//
// The signing secret is a hard precondition: Validate fails when JWT_SECRET
// is missing or blank, and both service mains refuse to start on that error.
// An absent or guessable secret is a total authentication bypass, so the
// failure happens before a port is ever bound, not on first request.
package config
