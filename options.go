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
	"github.com/rs/zerolog"
)

// Option is a functional option for configuring a Connection.
type Option func(*Connection) error

// WithLogger sets the logger used by the connection. Frames are logged at
// trace level with full hex payloads, dispatch events at debug level. The
// default is a disabled logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Connection) error {
		c.logger = logger
		return nil
	}
}
