package sealedtoken

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/dmitrymomot/tokenkit/pkg/aead"
	"github.com/dmitrymomot/tokenkit/pkg/payload"
)

// Option configures a Service.
type Option func(*options) error

type options struct {
	engine *aead.Engine
	codec  payload.Codec
	random io.Reader
	ad     []byte
	log    *slog.Logger
}

// WithEngine sets the AEAD engine.
func WithEngine(e *aead.Engine) Option {
	return func(o *options) error {
		if e == nil {
			return fmt.Errorf("%w: nil engine", ErrInvalidOption)
		}
		o.engine = e
		return nil
	}
}

// WithAlgorithm selects the AEAD algorithm.
func WithAlgorithm(a aead.Algorithm) Option {
	return func(o *options) error {
		e, err := aead.New(a)
		if err != nil {
			return err
		}
		o.engine = e
		return nil
	}
}

// WithPayloadCodec sets the payload serialization.
func WithPayloadCodec(c payload.Codec) Option {
	return func(o *options) error {
		if c == nil {
			return fmt.Errorf("%w: nil payload codec", ErrInvalidOption)
		}
		o.codec = c
		return nil
	}
}

// WithRandom sets the nonce source. It must be safe for concurrent use if the
// Service is shared between goroutines.
func WithRandom(r io.Reader) Option {
	return func(o *options) error {
		if r == nil {
			return fmt.Errorf("%w: nil random source", ErrInvalidOption)
		}
		o.random = r
		return nil
	}
}

// WithPurpose binds purpose as associated data. An empty purpose binds
// nothing.
func WithPurpose(purpose string) Option {
	return func(o *options) error {
		if purpose == "" {
			o.ad = nil
			return nil
		}
		o.ad = []byte(purpose)
		return nil
	}
}

// WithLogger sets the logger. Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) error {
		if l != nil {
			o.log = l
		}
		return nil
	}
}
