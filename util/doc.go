// Package util provides small shared helpers: size parsing for body caps,
// secret masking for safe logging, and string sanitization for anything
// rendered back to a client.
package util
