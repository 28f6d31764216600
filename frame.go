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
	"encoding/binary"
	"io"
)

// MaxFrameLen is the largest payload the 2-byte length prefix can describe.
const MaxFrameLen = 0xFFFF

// Framer reads and writes length-prefixed frames on a byte stream. Each
// frame is a big-endian uint16 payload length followed by exactly that many
// payload bytes. The framer carries no protocol state beyond the stream.
type Framer struct {
	rw io.ReadWriter
}

// NewFramer returns a Framer operating on rw.
func NewFramer(rw io.ReadWriter) *Framer {
	return &Framer{rw: rw}
}

// ReadFrame reads one complete frame and returns its payload, which may be
// empty. A short read anywhere, including end-of-stream inside the length
// prefix, fails with a *TransportError.
func (f *Framer) ReadFrame() ([]byte, error) {
	var prefix [2]byte
	if _, err := io.ReadFull(f.rw, prefix[:]); err != nil {
		return nil, &TransportError{Op: "read", Err: err}
	}

	payload := make([]byte, binary.BigEndian.Uint16(prefix[:]))
	if _, err := io.ReadFull(f.rw, payload); err != nil {
		return nil, &TransportError{Op: "read", Err: err}
	}
	return payload, nil
}

// WriteFrame writes payload as one frame, prefix and payload in a single
// Write call. Payloads longer than MaxFrameLen fail with ErrFrameTooLarge
// before touching the wire; a short write surfaces as a *TransportError and
// leaves the stream unusable.
func (f *Framer) WriteFrame(payload []byte) error {
	if len(payload) > MaxFrameLen {
		return ErrFrameTooLarge
	}

	msg := make([]byte, 2+len(payload))
	binary.BigEndian.PutUint16(msg, uint16(len(payload)))
	copy(msg[2:], payload)

	if _, err := f.rw.Write(msg); err != nil {
		return &TransportError{Op: "write", Err: err}
	}
	return nil
}
