// go-vpicc
// Copyright (c) 2026 The go-vpicc Authors.
// SPDX-License-Identifier: MIT
//
// This file is part of go-vpicc.
//
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.

// Package serial opens serial ports as duplex byte streams for vpicc
// connections, for setups where vpcd is reached through a USB or UART
// bridge instead of TCP.
package serial

import (
	"fmt"
	"io"

	bserial "go.bug.st/serial"
)

// DefaultBaudRate is used when no baud rate option is given.
const DefaultBaudRate = 115200

// Option is a functional option for Open.
type Option func(*config)

type config struct {
	baudRate int
}

// WithBaudRate sets the port baud rate.
func WithBaudRate(baudRate int) Option {
	return func(c *config) {
		c.baudRate = baudRate
	}
}

// Open opens the serial port at path (e.g. /dev/ttyUSB0 or COM3) in 8N1
// mode and returns it as a duplex stream suitable for vpicc.New. The caller
// owns the returned stream; handing it to a Connection transfers that
// ownership.
func Open(path string, opts ...Option) (io.ReadWriteCloser, error) {
	cfg := config{baudRate: DefaultBaudRate}
	for _, opt := range opts {
		opt(&cfg)
	}

	mode := &bserial.Mode{
		BaudRate: cfg.baudRate,
		DataBits: 8,
		Parity:   bserial.NoParity,
		StopBits: bserial.OneStopBit,
	}
	port, err := bserial.Open(path, mode)
	if err != nil {
		return nil, fmt.Errorf("failed to open serial port %s: %w", path, err)
	}
	return port, nil
}
