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
	"bytes"
	"io"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFramer_RoundTrip verifies that any payload representable by the
// length prefix survives a write-then-read cycle unchanged.
func TestFramer_RoundTrip(t *testing.T) {
	t.Parallel()

	lengths := []int{0, 1, 2, 11, 255, 256, 4096, MaxFrameLen}

	for _, n := range lengths {
		n := n
		t.Run("len "+strconv.Itoa(n), func(t *testing.T) {
			t.Parallel()

			payload := make([]byte, n)
			for i := range payload {
				payload[i] = byte(i)
			}

			var stream bytes.Buffer
			framer := NewFramer(&stream)

			require.NoError(t, framer.WriteFrame(payload))
			assert.Equal(t, 2+n, stream.Len())

			got, err := framer.ReadFrame()
			require.NoError(t, err)
			assert.Equal(t, payload, got)
		})
	}
}

// TestFramer_WriteFrame_WireFormat pins the exact wire encoding.
func TestFramer_WriteFrame_WireFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		payload []byte
		want    []byte
	}{
		{
			name:    "status word",
			payload: []byte{0x90, 0x00},
			want:    []byte{0x00, 0x02, 0x90, 0x00},
		},
		{
			name:    "empty payload",
			payload: nil,
			want:    []byte{0x00, 0x00},
		},
		{
			name:    "default ATR",
			payload: DefaultATR,
			want: []byte{
				0x00, 0x0B,
				0x3B, 0x95, 0x13, 0x81, 0x01, 0x80, 0x73, 0xFF, 0x01, 0x00, 0x0B,
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var stream bytes.Buffer
			require.NoError(t, NewFramer(&stream).WriteFrame(tt.payload))
			assert.Equal(t, tt.want, stream.Bytes())
		})
	}
}

// TestFramer_WriteFrame_TooLarge verifies oversized payloads are rejected
// before any byte reaches the wire.
func TestFramer_WriteFrame_TooLarge(t *testing.T) {
	t.Parallel()

	var stream bytes.Buffer
	err := NewFramer(&stream).WriteFrame(make([]byte, MaxFrameLen+1))

	require.ErrorIs(t, err, ErrFrameTooLarge)
	assert.Zero(t, stream.Len())
}

// TestFramer_ReadFrame_ShortStream verifies that end-of-stream anywhere
// inside a frame, including the length prefix, is a transport error and
// never a silently accepted short read.
func TestFramer_ReadFrame_ShortStream(t *testing.T) {
	t.Parallel()

	tests := []struct {
		wantCause error
		name      string
		input     []byte
	}{
		{
			name:      "no bytes at all",
			input:     nil,
			wantCause: io.EOF,
		},
		{
			name:      "truncated length prefix",
			input:     []byte{0x00},
			wantCause: io.ErrUnexpectedEOF,
		},
		{
			name:      "missing payload",
			input:     []byte{0x00, 0x04},
			wantCause: io.EOF,
		},
		{
			name:      "truncated payload",
			input:     []byte{0x00, 0x04, 0xAA, 0xBB},
			wantCause: io.ErrUnexpectedEOF,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			stream := struct {
				io.Reader
				io.Writer
			}{bytes.NewReader(tt.input), io.Discard}
			_, err := NewFramer(stream).ReadFrame()

			var terr *TransportError
			require.ErrorAs(t, err, &terr)
			assert.Equal(t, "read", terr.Op)
			assert.ErrorIs(t, err, tt.wantCause)
		})
	}
}
