package sealedtoken

import (
	"context"
	"crypto/rand"
	"errors"
	"io"
	"log/slog"
	"reflect"

	"github.com/dmitrymomot/tokenkit/pkg/aead"
	"github.com/dmitrymomot/tokenkit/pkg/keysource"
	"github.com/dmitrymomot/tokenkit/pkg/logger"
	"github.com/dmitrymomot/tokenkit/pkg/payload"
	"github.com/dmitrymomot/tokenkit/pkg/token"
)

// Service issues and redeems tokens carrying payloads of type T.
type Service[T any] struct {
	engine *aead.Engine
	codec  payload.Codec
	random io.Reader
	ad     []byte
	log    *slog.Logger
}

// validator is implemented by payloads that can check themselves, such as
// payload.Inventory.
type validator interface {
	Validate() error
}

// New creates a Service. Defaults: AES-256-GCM, JSON payloads, crypto/rand
// nonces, no purpose, no logging.
func New[T any](opts ...Option) (*Service[T], error) {
	o := options{
		engine: aead.Default(),
		codec:  payload.JSON,
		random: rand.Reader,
		log:    logger.Discard(),
	}
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return nil, err
		}
	}

	return &Service[T]{
		engine: o.engine,
		codec:  o.codec,
		random: o.random,
		ad:     o.ad,
		log:    o.log.With(logger.Component("sealedtoken")),
	}, nil
}

// Issue seals p under key and returns the encoded token. The key is only
// borrowed for the duration of the call.
func (s *Service[T]) Issue(p T, key []byte) (string, error) {
	// Fail before consuming randomness.
	if len(key) != aead.KeySize {
		return "", ErrInvalidKeyLength
	}

	if isNil(p) {
		return "", errors.Join(ErrInvalidPayload, errNilPayload)
	}
	if v, ok := any(p).(validator); ok {
		if err := v.Validate(); err != nil {
			return "", errors.Join(ErrInvalidPayload, err)
		}
	}

	plaintext, err := s.codec.Marshal(p)
	if err != nil {
		return "", errors.Join(ErrPayloadEncode, err)
	}
	defer clear(plaintext)

	nonce, err := aead.GenerateNonce(s.random)
	if err != nil {
		return "", err
	}

	ciphertext, tag, err := s.engine.Seal(key, nonce, plaintext, s.ad)
	if err != nil {
		return "", err
	}

	tok := token.Encode(nonce, ciphertext, tag)

	if s.log.Enabled(context.Background(), slog.LevelDebug) {
		s.log.Debug("token issued",
			logger.KeyID(keysource.KeyID(key)),
			logger.Algorithm(s.engine.Algorithm()),
			logger.Codec(s.codec.Name()),
			logger.TokenSize(len(tok)),
		)
	}

	return tok, nil
}

// Redeem verifies tok under key and returns its payload. On any failure the
// zero T is returned.
func (s *Service[T]) Redeem(tok string, key []byte) (T, error) {
	p, err := s.redeem(tok, key)
	if err != nil {
		if s.log.Enabled(context.Background(), slog.LevelWarn) {
			s.log.Warn("token rejected",
				logger.KeyID(keysource.KeyID(key)),
				logger.Algorithm(s.engine.Algorithm()),
				logger.Reason(reason(err)),
			)
		}
		var zero T
		return zero, err
	}
	return p, nil
}

func (s *Service[T]) redeem(tok string, key []byte) (T, error) {
	var p T

	nonce, ciphertext, tag, err := token.Decode(tok)
	if err != nil {
		return p, err
	}
	// A wrong-size nonce inside a well-formed token is bad input, not a
	// programming error.
	if len(nonce) != aead.NonceSize {
		return p, errors.Join(ErrMalformedToken, ErrInvalidNonceLength)
	}

	plaintext, err := s.engine.Open(key, nonce, ciphertext, tag, s.ad)
	if err != nil {
		return p, err
	}
	defer clear(plaintext)

	if err := s.codec.Unmarshal(plaintext, &p); err != nil {
		return p, errors.Join(ErrPayloadDecode, err)
	}
	// A JSON or CBOR null leaves a pointer payload nil.
	if isNil(p) {
		return p, errors.Join(ErrPayloadDecode, errNilPayload)
	}
	if v, ok := any(p).(validator); ok {
		if err := v.Validate(); err != nil {
			return p, errors.Join(ErrPayloadDecode, err)
		}
	}

	return p, nil
}

var errNilPayload = errors.New("nil payload")

// isNil reports whether v is a nil interface or a nil pointer.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// Issue builds a Service from opts and issues a single token.
func Issue[T any](p T, key []byte, opts ...Option) (string, error) {
	s, err := New[T](opts...)
	if err != nil {
		return "", err
	}
	return s.Issue(p, key)
}

// Redeem builds a Service from opts and redeems a single token.
func Redeem[T any](tok string, key []byte, opts ...Option) (T, error) {
	s, err := New[T](opts...)
	if err != nil {
		var zero T
		return zero, err
	}
	return s.Redeem(tok, key)
}
