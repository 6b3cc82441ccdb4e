package token

import "errors"

// ErrMalformedToken is returned when a token does not consist of exactly
// three base64url parts.
var ErrMalformedToken = errors.New("malformed token")
