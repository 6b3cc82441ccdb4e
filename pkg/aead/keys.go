package aead

import (
	"crypto/rand"
	"errors"
	"io"
)

// GenerateNonce reads a fresh nonce from r, or from crypto/rand when r is nil.
// The bytes are not buffered or cached.
func GenerateNonce(r io.Reader) ([]byte, error) {
	if r == nil {
		r = rand.Reader
	}

	nonce := make([]byte, NonceSize)
	if _, err := io.ReadFull(r, nonce); err != nil {
		return nil, errors.Join(ErrNonceGeneration, err)
	}
	return nonce, nil
}

// GenerateKey creates a new random 32-byte key.
func GenerateKey() ([]byte, error) {
	key := make([]byte, KeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, errors.Join(ErrKeyGeneration, err)
	}
	return key, nil
}
