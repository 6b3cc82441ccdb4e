// Portions adapted from Bureau lib/secret/buffer.go.
// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package secret

import (
	"errors"
	"fmt"
	"sync"
)

var ErrEmptySource = errors.New("secret: cannot create buffer from empty source")

// Buffer holds sensitive bytes until Close.
type Buffer struct {
	mu     sync.Mutex
	data   []byte
	closed bool
}

// New allocates a zero-filled buffer of the given size.
func New(size int) (*Buffer, error) {
	if size <= 0 {
		return nil, fmt.Errorf("secret: buffer size must be positive, got %d", size)
	}

	data, err := allocate(size)
	if err != nil {
		return nil, err
	}
	return &Buffer{data: data}, nil
}

// NewFromBytes copies source into a new buffer and then zeroes source, so the
// caller's slice no longer holds the secret.
func NewFromBytes(source []byte) (*Buffer, error) {
	if len(source) == 0 {
		return nil, ErrEmptySource
	}

	b, err := New(len(source))
	if err != nil {
		return nil, err
	}

	copy(b.data, source)
	clear(source)

	return b, nil
}

// Bytes returns the secret. The slice points into the buffer; do not keep it
// past Close.
func (b *Buffer) Bytes() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		panic("secret: read from closed buffer")
	}
	return b.data
}

// Len returns the size of the secret, or 0 after Close.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return len(b.data)
}

// Close zeroes and releases the buffer. It is idempotent.
func (b *Buffer) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true

	clear(b.data)
	err := release(b.data)
	b.data = nil

	return err
}
