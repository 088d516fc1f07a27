// Copyright 2025 The go-soltx Authors
// This file is part of the go-soltx library.

package core

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidHexString the input is not an even-length hex string
	ErrInvalidHexString = errors.New("invalid hex string")
	// ErrNotEnoughBytes the reader ran off the end of the buffer
	ErrNotEnoughBytes = errors.New("not enough bytes")
	// ErrCompactU16Overflow a compact-u16 varint carried data past its range
	ErrCompactU16Overflow = errors.New("compact u16 overflow")
	// ErrInvalidInstruction a program decoder rejected the payload
	ErrInvalidInstruction = errors.New("invalid instruction")
	// ErrNoLutFetchFn a lookup table fetch was requested but no fetcher is registered
	ErrNoLutFetchFn = errors.New("no lut fetch fn registered")
)

var (
	ErrEmptyRpcUrl     = errors.New("empty rpc url found")
	ErrAccountNotFound = errors.New("account not found")
)

// StdErr return standard Err
func StdErr(reason string, err error) error {
	return fmt.Errorf("%s Failed. Err: %w", reason, err)
}
