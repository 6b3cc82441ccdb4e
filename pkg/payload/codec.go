package payload

import (
	"fmt"
	"strings"
)

// Codec converts a payload to and from its canonical byte form.
type Codec interface {
	// Name identifies the codec in configuration and logs.
	Name() string
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

var (
	JSON Codec = jsonCodec{}
	CBOR Codec = cborCodec{}
)

// ByName returns the codec registered under name ("json" or "cbor").
func ByName(name string) (Codec, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case JSON.Name():
		return JSON, nil
	case CBOR.Name():
		return CBOR, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, name)
	}
}
