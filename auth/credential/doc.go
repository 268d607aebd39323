// Package credential implements password verification for FinTrust
// identities.
//
// The store is populated once at startup and read-only afterwards, so
// verification is safe under concurrent requests. Password hashes never
// leave this package: lookup is unexported and the verifier is the only
// consumer.
//
// When a login names an unknown account, the verifier compares the supplied
// password against a precomputed decoy hash with the same cost as every real
// hash. A bcrypt comparison therefore runs on both branches and response
// timing does not reveal whether the account exists.
package credential
