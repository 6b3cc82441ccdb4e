package aead

import "errors"

var (
	// Length validation errors
	ErrInvalidKeyLength   = errors.New("invalid key length: must be 32 bytes")
	ErrInvalidNonceLength = errors.New("invalid nonce length: must be 12 bytes")

	// ErrAuthenticationFailed covers any tag mismatch: corrupted ciphertext,
	// wrong key, wrong associated data or tampering.
	ErrAuthenticationFailed = errors.New("message authentication failed")

	ErrNonceGeneration  = errors.New("nonce generation failed")
	ErrKeyGeneration    = errors.New("key generation failed")
	ErrUnknownAlgorithm = errors.New("unknown aead algorithm")
)
