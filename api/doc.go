// Package api implements the HTTP handlers and route wiring for the two
// FinTrust services: the authentication surface (login) and the resource
// surface (users, transfers, payments).
//
// Money-movement handlers never read a sender identity from the request
// body. The debited account is always the authenticated caller; request
// structs have no sender field to bind.
package api
