package credential

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// HashCost is the bcrypt cost for every hash in the store, decoy included.
// The decoy only equalizes timing if its cost matches the real hashes.
const HashCost = 10

// Seed describes one identity provisioned at startup.
type Seed struct {
	ID       string
	Email    string
	Password string
}

// record pairs an identity id with its password hash. It never leaves the
// package.
type record struct {
	id           string
	passwordHash []byte
}

// Store holds the per-identity password hashes, keyed by normalized email.
// It is immutable after construction.
type Store struct {
	records map[string]record
	decoy   []byte
}

// NewStore hashes the seed passwords and builds the store, including the
// decoy hash used for unknown-account comparisons.
func NewStore(seeds []Seed) (*Store, error) {
	records := make(map[string]record, len(seeds))
	for _, s := range seeds {
		hash, err := bcrypt.GenerateFromPassword([]byte(s.Password), HashCost)
		if err != nil {
			return nil, fmt.Errorf("credential: hash seed %s: %w", s.ID, err)
		}
		records[NormalizeEmail(s.Email)] = record{id: s.ID, passwordHash: hash}
	}

	decoy, err := bcrypt.GenerateFromPassword([]byte("decoy-constant-cost-compare"), HashCost)
	if err != nil {
		return nil, fmt.Errorf("credential: hash decoy: %w", err)
	}

	return &Store{records: records, decoy: decoy}, nil
}

// lookup returns the record for a normalized email key. It never logs the
// key and never errors; absence is an ordinary outcome.
func (s *Store) lookup(key string) (record, bool) {
	rec, ok := s.records[key]
	return rec, ok
}

// NormalizeEmail lowercases and trims an email for use as a store key.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// DefaultSeeds returns the demo identities. IDs align with the account
// store fixtures (1=alice, 2=bob, 3=charlie).
func DefaultSeeds() []Seed {
	return []Seed{
		{ID: "1", Email: "alice@example.com", Password: "Password1"},
		{ID: "2", Email: "bob@example.com", Password: "Password2"},
		{ID: "3", Email: "charlie@example.com", Password: "Password3"},
	}
}
