package credential

import (
	"errors"
	"regexp"

	"golang.org/x/crypto/bcrypt"
)

// Input bounds. Oversized values are rejected before any store access.
const (
	MaxEmailLength    = 254
	MaxPasswordLength = 1024
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Verification failures. ErrEmailRequired is the only failure with its own
// message; everything else collapses into two generic outcomes so responses
// cannot be used to probe which accounts exist.
var (
	// ErrEmailRequired means the email field was empty.
	ErrEmailRequired = errors.New("credential: email is required")
	// ErrMalformedInput means the email or password failed a format or
	// length check. Which check failed is not reported.
	ErrMalformedInput = errors.New("credential: malformed credentials")
	// ErrInvalidCredentials means the account is unknown or the password is
	// wrong. The two causes are indistinguishable.
	ErrInvalidCredentials = errors.New("credential: invalid credentials")
)

// Verifier checks a password against the store.
type Verifier struct {
	store *Store
}

// NewVerifier creates a verifier bound to a store.
func NewVerifier(store *Store) *Verifier {
	return &Verifier{store: store}
}

// Verify checks email/password and returns the identity id on success.
//
// Input validation runs before the store is touched. On a lookup miss the
// decoy hash is compared instead, so the bcrypt work happens whether or not
// the account exists. Unknown account and wrong password return the same
// error.
func (v *Verifier) Verify(email, password string) (string, error) {
	key := NormalizeEmail(email)
	if key == "" {
		return "", ErrEmailRequired
	}
	if len(key) > MaxEmailLength || !emailRegex.MatchString(key) {
		return "", ErrMalformedInput
	}
	if password == "" || len(password) > MaxPasswordLength {
		return "", ErrMalformedInput
	}

	rec, found := v.store.lookup(key)
	hash := v.store.decoy
	if found {
		hash = rec.passwordHash
	}
	compareErr := bcrypt.CompareHashAndPassword(hash, []byte(password))
	if !found || compareErr != nil {
		return "", ErrInvalidCredentials
	}
	return rec.id, nil
}
