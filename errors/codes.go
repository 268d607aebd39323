package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Validation errors
const (
	// ErrCodeInvalidInput indicates a malformed request body or field.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
)

// Authentication/Authorization errors
const (
	// ErrCodeInvalidCredentials indicates a failed login. The cause is
	// deliberately undifferentiated: unknown account and wrong password
	// produce the same code and message.
	ErrCodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	// ErrCodeUnauthorized indicates a missing, invalid, or expired token.
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	// ErrCodeForbidden indicates a valid token presented for another
	// identity's resource.
	ErrCodeForbidden ErrorCode = "FORBIDDEN"
)

// Business-rule errors
const (
	// ErrCodeInsufficientFunds indicates the amount exceeds the caller's balance.
	ErrCodeInsufficientFunds ErrorCode = "INSUFFICIENT_FUNDS"
	// ErrCodeNotFound indicates the requested resource was not found.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
)

// Operational errors
const (
	// ErrCodeRateLimited indicates the client exceeded a rate limit.
	ErrCodeRateLimited ErrorCode = "RATE_LIMITED"
	// ErrCodeInternal indicates an unexpected server error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)
