// Package errors provides unified error handling for the FinTrust services.
// It implements structured error types with machine-readable codes, HTTP
// status mapping, and a stable JSON envelope returned to clients.
//
// Authentication failures deliberately carry a single undifferentiated
// message: InvalidCredentials never reveals whether the account exists,
// and Unauthorized never reveals which token check failed.
package errors
