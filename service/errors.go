package service

import "errors"

// ErrProtocolViolation means a client sent a message the session cannot
// accept in its current state.
var ErrProtocolViolation = errors.New("protocol violation")
