// go-vpicc
// Copyright (c) 2026 The go-vpicc Authors.
// SPDX-License-Identifier: MIT
//
// This file is part of go-vpicc.
//
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.

// Package vpcdtest provides a scripted vpcd-side peer for exercising the
// card side of the wire protocol in tests without a real daemon.
package vpcdtest

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Control command codes as sent by vpcd.
const (
	CtrlPowerOff = 0x00
	CtrlPowerOn  = 0x01
	CtrlReset    = 0x02
	CtrlGetATR   = 0x04
)

// Peer drives the daemon side of a vpcd session: it sends control frames
// and APDUs and collects the card's response frames.
type Peer struct {
	rw io.ReadWriter
}

// NewPeer returns a Peer speaking the wire protocol on rw.
func NewPeer(rw io.ReadWriter) *Peer {
	return &Peer{rw: rw}
}

// SendControl sends a 1-byte control frame with the given code.
func (p *Peer) SendControl(code byte) error {
	return p.SendFrame([]byte{code})
}

// SendAPDU sends apdu as a single frame.
func (p *Peer) SendAPDU(apdu []byte) error {
	return p.SendFrame(apdu)
}

// SendFrame sends payload as one length-prefixed frame. A zero-length
// payload produces the 00 00 anomaly frame.
func (p *Peer) SendFrame(payload []byte) error {
	msg := make([]byte, 2+len(payload))
	binary.BigEndian.PutUint16(msg, uint16(len(payload)))
	copy(msg[2:], payload)
	if _, err := p.rw.Write(msg); err != nil {
		return fmt.Errorf("peer write failed: %w", err)
	}
	return nil
}

// SendRaw writes bytes to the stream as-is, with no framing. Useful for
// truncated or otherwise malformed input.
func (p *Peer) SendRaw(raw []byte) error {
	if _, err := p.rw.Write(raw); err != nil {
		return fmt.Errorf("peer write failed: %w", err)
	}
	return nil
}

// ReadResponse reads one response frame from the card and returns its
// payload.
func (p *Peer) ReadResponse() ([]byte, error) {
	var prefix [2]byte
	if _, err := io.ReadFull(p.rw, prefix[:]); err != nil {
		return nil, fmt.Errorf("peer read failed: %w", err)
	}
	payload := make([]byte, binary.BigEndian.Uint16(prefix[:]))
	if _, err := io.ReadFull(p.rw, payload); err != nil {
		return nil, fmt.Errorf("peer read failed: %w", err)
	}
	return payload, nil
}
