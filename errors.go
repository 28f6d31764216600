// go-vpicc
// Copyright (c) 2026 The go-vpicc Authors.
// SPDX-License-Identifier: MIT
//
// This file is part of go-vpicc.
//
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.

package vpicc

import (
	"errors"
	"fmt"
)

// Sentinel protocol errors.
var (
	// ErrEmptyMessage is returned by Poll when the peer sends a
	// well-formed zero-length frame. A true disconnect surfaces as a
	// *TransportError instead, because it fails the stream read itself.
	ErrEmptyMessage = errors.New("received an empty message")

	// ErrFrameTooLarge is returned by WriteFrame for payloads that cannot
	// be represented by the 2-byte length prefix.
	ErrFrameTooLarge = errors.New("frame payload exceeds 65535 bytes")
)

// CommandError reports a control frame carrying a byte outside the
// protocol's command set. It ends the session.
type CommandError struct {
	// Code is the unrecognized control byte.
	Code byte
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("unsupported control command 0x%02X", e.Code)
}

// TransportError wraps a failure to read or write the stream, including
// end-of-stream in the middle of a frame. It ends the session.
type TransportError struct {
	// Err is the underlying I/O error.
	Err error
	// Op is the operation that failed, "read" or "write".
	Op string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport %s failed: %v", e.Op, e.Err)
}

// Unwrap returns the underlying I/O error.
func (e *TransportError) Unwrap() error { return e.Err }
