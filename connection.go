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
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

// Connection is a session with a vpcd daemon over a single duplex stream.
// It owns the stream exclusively for its lifetime; closing the stream ends
// the session. A Connection holds no other mutable state and never
// reconnects — every error from Poll or Run is session-fatal, and the
// caller decides whether to dial again.
type Connection struct {
	stream io.ReadWriteCloser
	framer *Framer
	logger zerolog.Logger
}

// New wraps an already-established duplex stream. Timeouts, if wanted, must
// be configured on the stream by the caller; the connection itself blocks
// indefinitely on reads and writes.
func New(stream io.ReadWriteCloser, opts ...Option) (*Connection, error) {
	conn := &Connection{
		stream: stream,
		framer: NewFramer(stream),
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		if err := opt(conn); err != nil {
			return nil, err
		}
	}
	return conn, nil
}

// Run handles commands from the daemon using card until a Poll call fails,
// and returns that error. It is equivalent to calling Poll in a loop.
func (c *Connection) Run(card Card) error {
	for {
		if err := c.Poll(card); err != nil {
			return err
		}
	}
}

// Poll reads exactly one frame from the daemon and dispatches it to card.
//
// A 1-byte frame is a control command: power and reset commands invoke the
// matching hook and produce no response; GetATR answers with one frame
// holding the card's ATR. Any longer frame is an APDU passed verbatim to
// Execute, whose return value is written back as one frame. A zero-length
// frame fails with ErrEmptyMessage, an unknown control byte with a
// *CommandError, and any stream failure with a *TransportError.
func (c *Connection) Poll(card Card) error {
	msg, err := c.framer.ReadFrame()
	if err != nil {
		return err
	}
	c.logger.Trace().Hex("msg", msg).Msg("received message")

	if len(msg) == 0 {
		return ErrEmptyMessage
	}

	if len(msg) != controlFrameLen {
		c.logger.Debug().Int("len", len(msg)).Msg("APDU received")
		return c.send(card.Execute(msg))
	}

	cmd, err := parseCommand(msg[0])
	if err != nil {
		return err
	}
	switch cmd {
	case CommandPowerOff:
		card.PowerOff()
	case CommandPowerOn:
		card.PowerOn()
	case CommandReset:
		card.Reset()
	case CommandGetATR:
		c.logger.Debug().Msg("sending ATR")
		return c.send(card.ATR())
	}
	return nil
}

// Close closes the underlying stream, ending the session. A blocked Run
// returns with a *TransportError once the stream is closed.
func (c *Connection) Close() error {
	if err := c.stream.Close(); err != nil {
		return fmt.Errorf("failed to close stream: %w", err)
	}
	return nil
}

func (c *Connection) send(data []byte) error {
	c.logger.Trace().Hex("msg", data).Msg("sending message")
	return c.framer.WriteFrame(data)
}
