package aead

import (
	"crypto/aes"
	"crypto/cipher"
	"errors"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
)

const (
	// KeySize is the required key size for both algorithms.
	KeySize = 32 // 256 bits

	// NonceSize is the standard 96-bit nonce size of GCM and RFC 8439.
	NonceSize = 12

	// TagSize is the authentication tag size.
	TagSize = 16
)

// Algorithm identifies the AEAD primitive.
type Algorithm string

const (
	AES256GCM        Algorithm = "aes-256-gcm"
	ChaCha20Poly1305 Algorithm = "chacha20-poly1305"
)

// ParseAlgorithm maps a configuration value to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch a := Algorithm(s); a {
	case AES256GCM, ChaCha20Poly1305:
		return a, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
	}
}

// Engine seals and opens messages with one algorithm. The zero value is not
// usable; create engines with New.
type Engine struct {
	algorithm Algorithm
}

var defaultEngine = &Engine{algorithm: AES256GCM}

// New returns an engine for the given algorithm.
func New(algorithm Algorithm) (*Engine, error) {
	if _, err := ParseAlgorithm(string(algorithm)); err != nil {
		return nil, err
	}
	return &Engine{algorithm: algorithm}, nil
}

// Default returns the AES-256-GCM engine.
func Default() *Engine {
	return defaultEngine
}

// Algorithm returns the engine's algorithm.
func (e *Engine) Algorithm() Algorithm {
	return e.algorithm
}

// Seal encrypts and authenticates plaintext and associatedData under key and
// nonce. The returned ciphertext has the same length as plaintext.
func (e *Engine) Seal(key, nonce, plaintext, associatedData []byte) (ciphertext, tag []byte, err error) {
	aead, err := e.primitive(key, nonce)
	if err != nil {
		return nil, nil, err
	}

	sealed := aead.Seal(nil, nonce, plaintext, associatedData)
	split := len(sealed) - TagSize

	// Capacity is capped so appending to ciphertext cannot overwrite the tag.
	return sealed[:split:split], sealed[split:], nil
}

// Open verifies tag over ciphertext and associatedData and returns the
// plaintext. Any verification failure, including a tag of the wrong size,
// yields ErrAuthenticationFailed and a nil plaintext.
func (e *Engine) Open(key, nonce, ciphertext, tag, associatedData []byte) ([]byte, error) {
	aead, err := e.primitive(key, nonce)
	if err != nil {
		return nil, err
	}

	if len(tag) != TagSize {
		return nil, ErrAuthenticationFailed
	}

	sealed := make([]byte, 0, len(ciphertext)+TagSize)
	sealed = append(sealed, ciphertext...)
	sealed = append(sealed, tag...)

	plaintext, err := aead.Open(nil, nonce, sealed, associatedData)
	if err != nil {
		return nil, ErrAuthenticationFailed
	}

	return plaintext, nil
}

// primitive validates the lengths and instantiates the underlying
// cipher.AEAD. The key is only borrowed; nothing is kept after the call.
func (e *Engine) primitive(key, nonce []byte) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, ErrInvalidKeyLength
	}
	if len(nonce) != NonceSize {
		return nil, ErrInvalidNonceLength
	}

	switch e.algorithm {
	case AES256GCM:
		block, err := aes.NewCipher(key)
		if err != nil {
			return nil, errors.Join(ErrInvalidKeyLength, err)
		}
		return cipher.NewGCM(block)
	case ChaCha20Poly1305:
		aead, err := chacha20poly1305.New(key)
		if err != nil {
			return nil, errors.Join(ErrInvalidKeyLength, err)
		}
		return aead, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, e.algorithm)
	}
}

// Seal seals with the default AES-256-GCM engine.
func Seal(key, nonce, plaintext, associatedData []byte) (ciphertext, tag []byte, err error) {
	return defaultEngine.Seal(key, nonce, plaintext, associatedData)
}

// Open opens with the default AES-256-GCM engine.
func Open(key, nonce, ciphertext, tag, associatedData []byte) ([]byte, error) {
	return defaultEngine.Open(key, nonce, ciphertext, tag, associatedData)
}
