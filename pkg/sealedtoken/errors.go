package sealedtoken

import (
	"errors"

	"github.com/dmitrymomot/tokenkit/pkg/aead"
	"github.com/dmitrymomot/tokenkit/pkg/token"
)

var (
	ErrInvalidKeyLength     = aead.ErrInvalidKeyLength
	ErrInvalidNonceLength   = aead.ErrInvalidNonceLength
	ErrAuthenticationFailed = aead.ErrAuthenticationFailed
	ErrNonceGeneration      = aead.ErrNonceGeneration
	ErrMalformedToken       = token.ErrMalformedToken

	ErrInvalidPayload = errors.New("invalid payload")
	ErrPayloadEncode  = errors.New("payload encoding failed")
	ErrPayloadDecode  = errors.New("payload decoding failed")
	ErrInvalidOption  = errors.New("invalid token service option")
	ErrInvalidConfig  = errors.New("invalid token configuration")

	// ErrInvalidToken is the single error reported to clients for any
	// rejected token. See Public.
	ErrInvalidToken = errors.New("invalid token")
)

// Public maps an error from Redeem to what may be shown outside the process.
// Malformed, unauthenticated and undecodable tokens all become
// ErrInvalidToken so callers cannot learn which check failed. Other errors
// are returned unchanged.
func Public(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrMalformedToken),
		errors.Is(err, ErrAuthenticationFailed),
		errors.Is(err, ErrPayloadDecode):
		return ErrInvalidToken
	default:
		return err
	}
}

// reason names the error kind for logs.
func reason(err error) string {
	switch {
	case errors.Is(err, ErrMalformedToken):
		return "malformed_token"
	case errors.Is(err, ErrAuthenticationFailed):
		return "authentication_failed"
	case errors.Is(err, ErrPayloadDecode):
		return "payload_decode"
	case errors.Is(err, ErrInvalidKeyLength):
		return "invalid_key_length"
	default:
		return "unknown"
	}
}
