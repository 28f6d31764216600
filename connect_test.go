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
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConnectAddr dials a live listener and hands the socket to the
// connection.
func TestConnectAddr(t *testing.T) {
	t.Parallel()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer func() { _ = listener.Close() }()

	accepted := make(chan net.Conn, 1)
	go func() {
		peer, acceptErr := listener.Accept()
		if acceptErr != nil {
			close(accepted)
			return
		}
		accepted <- peer
	}()

	conn, err := ConnectAddr(listener.Addr().String())
	require.NoError(t, err)
	defer func() { _ = conn.Close() }()

	peer, ok := <-accepted
	require.True(t, ok, "listener did not accept the dial")
	_ = peer.Close()
}

// TestConnectAddr_Refused surfaces the dial failure.
func TestConnectAddr_Refused(t *testing.T) {
	t.Parallel()

	// Grab a port and close it again so nothing listens there.
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	_, err = ConnectAddr(addr)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to connect to vpcd")
}

// TestConnectContext_Canceled verifies the dial honors the context.
func TestConnectContext_Canceled(t *testing.T) {
	t.Parallel()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer func() { _ = listener.Close() }()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = ConnectContext(ctx, listener.Addr().String())
	require.ErrorIs(t, err, context.Canceled)
}
