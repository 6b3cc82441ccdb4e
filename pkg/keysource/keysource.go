package keysource

import (
	"encoding/hex"
	"errors"
	"strings"

	"github.com/zeebo/blake3"

	"github.com/dmitrymomot/tokenkit/pkg/aead"
	"github.com/dmitrymomot/tokenkit/pkg/secret"
)

// keyIDContext domain-separates fingerprints from any other BLAKE3 use.
const keyIDContext = "tokenkit 2026-01 key fingerprint v1"

// FromHex decodes a hex secret into a locked buffer. Secrets that do not
// decode to exactly aead.KeySize bytes are rejected rather than truncated.
func FromHex(s string) (*secret.Buffer, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ErrSecretNotSet
	}

	raw, err := hex.DecodeString(s)
	if err != nil {
		clear(raw)
		return nil, errors.Join(ErrInvalidSecret, err)
	}
	if len(raw) != aead.KeySize {
		clear(raw)
		return nil, ErrInvalidSecretLength
	}

	// NewFromBytes zeroes raw.
	return secret.NewFromBytes(raw)
}

// GenerateHex returns a new random key encoded as hex, suitable for
// TOKEN_SECRET_KEY.
func GenerateHex() (string, error) {
	key, err := aead.GenerateKey()
	if err != nil {
		return "", errors.Join(ErrGenerateSecret, err)
	}
	defer clear(key)

	return hex.EncodeToString(key), nil
}

// KeyID returns a 16-character hex fingerprint of key.
func KeyID(key []byte) string {
	var out [8]byte
	blake3.DeriveKey(keyIDContext, key, out[:])
	return hex.EncodeToString(out[:])
}
