// Package ledger holds the authoritative in-memory account balances.
//
// The ledger is the only state shared across concurrent calls. Every
// operation takes the ledger lock for its own check-and-mutate step and
// nothing else, so no caller ever holds it across a network wait.
package ledger
