// Package common defines sentinel errors shared by the dialogue engine, the
// order collaborator and the shell. Callers should use errors.Is to match
// these values; producers wrap them with fmt.Errorf("...: %w", err).
package common

import "errors"

var (
	// Storage failed underneath a service call.
	ErrorInternal = errors.New("internal error")

	// Login rejected: identity is empty or has no "@".
	ErrInvalidCredentialFormat = errors.New("invalid credential format")

	// Submit rejected: blank utterance or no active session.
	ErrInvalidInput = errors.New("invalid input")
)
