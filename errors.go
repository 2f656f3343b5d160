package blake3

import "errors"

// These are programmer errors, not recoverable runtime conditions. The
// core does no I/O of its own, so every failure is a precondition
// violation reported by the call that violates it.
var (
	// ErrInvalidKeyLength is returned when a keyed-hash key or a
	// derive-key context key is not exactly KeyLen bytes.
	ErrInvalidKeyLength = errors.New("blake3: key must be exactly KeyLen bytes")
	// ErrInputTooLong is returned when absorbing more input would
	// require a 54th subtree stack slot (more than 2^64 bytes hashed in
	// one Hasher's lifetime).
	ErrInputTooLong = errors.New("blake3: input exceeds maximum length")
)
