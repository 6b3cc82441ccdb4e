// Portions adapted from Bureau lib/secret/buffer.go.
// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build linux

package secret

import (
	"fmt"

	"golang.org/x/sys/unix"
)

func allocate(size int) ([]byte, error) {
	data, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANONYMOUS)
	if err != nil {
		return nil, fmt.Errorf("secret: mmap failed: %w", err)
	}

	if err := unix.Mlock(data); err != nil {
		_ = unix.Munmap(data)
		return nil, fmt.Errorf("secret: mlock failed: %w", err)
	}

	if err := unix.Madvise(data, unix.MADV_DONTDUMP); err != nil {
		_ = unix.Munlock(data)
		_ = unix.Munmap(data)
		return nil, fmt.Errorf("secret: madvise(MADV_DONTDUMP) failed: %w", err)
	}

	return data, nil
}

func release(data []byte) error {
	var firstErr error
	if err := unix.Munlock(data); err != nil {
		firstErr = fmt.Errorf("secret: munlock failed: %w", err)
	}
	if err := unix.Munmap(data); err != nil && firstErr == nil {
		firstErr = fmt.Errorf("secret: munmap failed: %w", err)
	}
	return firstErr
}
