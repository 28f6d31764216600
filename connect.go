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
	"context"
	"fmt"
	"net"
	"strconv"
)

// Default vpcd endpoint.
const (
	// DefaultHost is the host used by Connect.
	DefaultHost = "127.0.0.1"
	// DefaultPort is the TCP port vpcd listens on by default.
	DefaultPort = 35963
)

// Connect dials the vpcd daemon on DefaultHost:DefaultPort.
func Connect(opts ...Option) (*Connection, error) {
	return ConnectAddr(net.JoinHostPort(DefaultHost, strconv.Itoa(DefaultPort)), opts...)
}

// ConnectAddr dials the vpcd daemon at the given host:port address.
func ConnectAddr(addr string, opts ...Option) (*Connection, error) {
	return ConnectContext(context.Background(), addr, opts...)
}

// ConnectContext dials the vpcd daemon at the given address, honoring ctx
// for cancellation and deadline during the dial. The context does not bound
// the lifetime of the returned connection.
func ConnectContext(ctx context.Context, addr string, opts ...Option) (*Connection, error) {
	var dialer net.Dialer
	stream, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to vpcd at %s: %w", addr, err)
	}

	conn, err := New(stream, opts...)
	if err != nil {
		_ = stream.Close()
		return nil, err
	}
	return conn, nil
}
