// Package aead seals and opens byte sequences with a 256-bit-key
// authenticated-encryption primitive and explicit nonce management.
//
// Two algorithms are supported, both with a 32-byte key, a 12-byte nonce and
// a 16-byte tag:
//
//   - AES256GCM – AES-256 in GCM mode from the standard library. Default, and
//     the algorithm every token issued by older services uses.
//   - ChaCha20Poly1305 – RFC 8439 via golang.org/x/crypto, for platforms
//     without AES hardware support.
//
// Unlike cipher.AEAD, Seal returns the ciphertext and the tag separately and
// Open takes them separately, matching the three-part token layout of package
// token. The ciphertext is always exactly as long as the plaintext.
//
// # Nonces
//
// The engine never generates or remembers nonces. The caller supplies a fresh
// 12-byte nonce per Seal, read from a cryptographically secure source with
// GenerateNonce. A nonce must never be reused under the same key; counters
// that are not persisted across restarts must not be used.
//
// # Usage
//
//	import "github.com/dmitrymomot/tokenkit/pkg/aead"
//
//	key, _ := aead.GenerateKey()
//	nonce, _ := aead.GenerateNonce(nil)
//
//	ciphertext, tag, err := aead.Seal(key, nonce, plaintext, nil)
//	if err != nil {
//	    // handle error
//	}
//
//	plain, err := aead.Open(key, nonce, ciphertext, tag, nil)
//	if errors.Is(err, aead.ErrAuthenticationFailed) {
//	    // reject: tampered, wrong key or wrong associated data
//	}
//
// # Error Handling
//
// Length violations (ErrInvalidKeyLength, ErrInvalidNonceLength) are
// programmer errors and are reported before any cryptographic work is done.
// ErrAuthenticationFailed is returned for every verification failure without
// saying why, and Open never returns partial plaintext.
//
// An Engine holds no key and no mutable state; it is safe for concurrent use.
package aead
