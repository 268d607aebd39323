// Package account holds the in-memory account fixtures the resource API
// serves: user profiles, balances, and recent transactions. The store is
// read-only after construction, so concurrent request handlers share it
// without locking. A real deployment would replace this with database
// lookups behind the same interface.
package account

import "time"

// User is an account profile with its current balance.
type User struct {
	ID      string  `json:"id"`
	Email   string  `json:"email"`
	Balance float64 `json:"balance"`
}

// Transaction is one statement line for an account.
type Transaction struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Type        string  `json:"type"`
}

// Store provides read-only access to accounts and transactions.
type Store struct {
	users        map[string]User
	transactions map[string][]Transaction
}

// NewStore builds the demo store. IDs align with the credential seeds.
func NewStore() *Store {
	day := func(offset int) string {
		return time.Now().AddDate(0, 0, offset).Format("2006-01-02")
	}

	return &Store{
		users: map[string]User{
			"1": {ID: "1", Email: "alice@example.com", Balance: 1000},
			"2": {ID: "2", Email: "bob@example.com", Balance: 2500},
			"3": {ID: "3", Email: "charlie@example.com", Balance: 500},
		},
		transactions: map[string][]Transaction{
			"1": {
				{ID: "T1", Date: day(0), Description: "Salary credit", Amount: 1200, Type: "credit"},
				{ID: "T2", Date: day(-1), Description: "Card payment - Supermarket", Amount: -45.32, Type: "debit"},
				{ID: "T3", Date: day(-2), Description: "Direct debit - Utilities", Amount: -62, Type: "debit"},
				{ID: "T4", Date: day(-3), Description: "Transfer in", Amount: 50, Type: "credit"},
			},
			"2": {
				{ID: "T5", Date: day(0), Description: "Transfer from Alice", Amount: 100, Type: "credit"},
				{ID: "T6", Date: day(-1), Description: "Card payment", Amount: -30, Type: "debit"},
			},
			"3": {
				{ID: "T7", Date: day(0), Description: "Deposit", Amount: 500, Type: "credit"},
			},
		},
	}
}

// User returns the profile for an account id.
func (s *Store) User(id string) (User, bool) {
	u, ok := s.users[id]
	return u, ok
}

// Balance returns the available balance for an account id, 0 for unknown
// accounts. Transfer and payment validation treat this as a read-only
// oracle.
func (s *Store) Balance(id string) float64 {
	return s.users[id].Balance
}

// Transactions returns the statement lines for an account id. Unknown
// accounts get an empty list, not an error.
func (s *Store) Transactions(id string) []Transaction {
	list, ok := s.transactions[id]
	if !ok {
		return []Transaction{}
	}
	return list
}
