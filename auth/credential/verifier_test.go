package credential

import (
	"errors"
	"strings"
	"testing"
)

func newTestVerifier(t *testing.T) *Verifier {
	t.Helper()
	store, err := NewStore(DefaultSeeds())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return NewVerifier(store)
}

func TestVerify_Success(t *testing.T) {
	v := newTestVerifier(t)

	id, err := v.Verify("alice@example.com", "Password1")
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if id != "1" {
		t.Fatalf("expected id 1, got %s", id)
	}
}

func TestVerify_NormalizesEmail(t *testing.T) {
	v := newTestVerifier(t)

	id, err := v.Verify("  ALICE@Example.COM  ", "Password1")
	if err != nil {
		t.Fatalf("expected success for unnormalized email, got %v", err)
	}
	if id != "1" {
		t.Fatalf("expected id 1, got %s", id)
	}
}

func TestVerify_UnknownAndWrongPasswordIndistinguishable(t *testing.T) {
	v := newTestVerifier(t)

	_, unknownErr := v.Verify("nobody@example.com", "Password1")
	_, wrongErr := v.Verify("alice@example.com", "WrongPassword")

	if !errors.Is(unknownErr, ErrInvalidCredentials) {
		t.Fatalf("unknown account: expected ErrInvalidCredentials, got %v", unknownErr)
	}
	if !errors.Is(wrongErr, ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongErr)
	}
	if unknownErr.Error() != wrongErr.Error() {
		t.Fatalf("errors must be identical: %q vs %q", unknownErr, wrongErr)
	}
}

func TestVerify_InputValidation(t *testing.T) {
	v := newTestVerifier(t)

	tests := []struct {
		name     string
		email    string
		password string
		want     error
	}{
		{"empty email", "", "Password1", ErrEmailRequired},
		{"whitespace email", "   ", "Password1", ErrEmailRequired},
		{"no at sign", "aliceexample.com", "Password1", ErrMalformedInput},
		{"no tld", "alice@example", "Password1", ErrMalformedInput},
		{"embedded space", "al ice@example.com", "Password1", ErrMalformedInput},
		{"oversized email", strings.Repeat("a", 250) + "@example.com", "Password1", ErrMalformedInput},
		{"empty password", "alice@example.com", "", ErrMalformedInput},
		{"oversized password", "alice@example.com", strings.Repeat("x", 1025), ErrMalformedInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := v.Verify(tt.email, tt.password)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestVerify_ConcurrentCallers(t *testing.T) {
	v := newTestVerifier(t)

	done := make(chan error, 8)
	for i := 0; i < 8; i++ {
		go func(i int) {
			if i%2 == 0 {
				_, err := v.Verify("alice@example.com", "Password1")
				done <- err
				return
			}
			_, err := v.Verify("nobody@example.com", "whatever")
			if errors.Is(err, ErrInvalidCredentials) {
				err = nil
			}
			done <- err
		}(i)
	}
	for i := 0; i < 8; i++ {
		if err := <-done; err != nil {
			t.Fatalf("concurrent verify: %v", err)
		}
	}
}

func TestNewStore_DecoyCostMatchesRealHashes(t *testing.T) {
	store, err := NewStore(DefaultSeeds())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	// bcrypt hashes encode their cost in the prefix: $2a$10$...
	decoy := string(store.decoy)
	if !strings.HasPrefix(decoy, "$2a$10$") {
		t.Fatalf("decoy cost does not match HashCost: %s", decoy[:7])
	}
	for key, rec := range store.records {
		if !strings.HasPrefix(string(rec.passwordHash), "$2a$10$") {
			t.Fatalf("record %s cost does not match HashCost", key)
		}
	}
}
