// Package service holds the per-call state machines of the bank: deposit,
// withdraw, transfer and the guessing game. Each session owns its own
// state, reads and writes the shared ledger, and records exactly one
// terminal outcome.
//
// It is decoupled from gRPC; api/grpcserver drives the sessions from
// streams.
package service
