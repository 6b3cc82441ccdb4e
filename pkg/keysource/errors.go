package keysource

import "errors"

var (
	ErrSecretNotSet        = errors.New("token secret key not set")
	ErrInvalidSecret       = errors.New("token secret key is not valid hex")
	ErrInvalidSecretLength = errors.New("token secret key must decode to 32 bytes")
	ErrGenerateSecret      = errors.New("failed to generate token secret key")
)
