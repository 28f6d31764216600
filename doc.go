// go-vpicc
// Copyright (c) 2026 The go-vpicc Authors.
// SPDX-License-Identifier: MIT
//
// This file is part of go-vpicc.
//
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.

/*
Package vpicc implements the card side of the vsmartcard wire protocol,
letting a Go program appear as a virtual smartcard reader/card pair attached
to a vpcd daemon.

The daemon owns the reader side of the session. This package supplies the
card side: it receives control signals (power on/off, reset, ATR request)
and APDUs over a length-prefixed TCP stream and answers them by delegating
to a Card implementation.

Basic Usage:

	import "github.com/vsmartcard/go-vpicc"

	func main() {
	    conn, err := vpicc.Connect()
	    if err != nil {
	        log.Fatal(err)
	    }
	    defer conn.Close()

	    if err := conn.Run(vpicc.DummyCard{}); err != nil {
	        log.Fatal(err)
	    }
	}

Custom Cards:

A card only has to implement Execute; embedding NopHooks supplies the
default ATR and no-op power hooks:

	type MyCard struct {
	    vpicc.NopHooks
	}

	func (MyCard) Execute(apdu []byte) []byte {
	    return []byte{0x90, 0x00} // success
	}

Wire Protocol:

Every message is a frame: a 2-byte big-endian length followed by that many
payload bytes. A 1-byte frame is a control command (power off, power on,
reset, ATR request); any longer frame is an APDU handed verbatim to the
card. GetATR and APDU frames produce exactly one response frame each; the
other control commands produce none.

Error Handling:

Every error ends the session; there is no internal retry or reconnect.
Errors are typed and can be inspected:

	if errors.Is(err, vpicc.ErrEmptyMessage) {
	    // peer sent a zero-length frame
	}
	var terr *vpicc.TransportError
	if errors.As(err, &terr) {
	    // stream read or write failed; terr.Unwrap() is the cause
	}

Thread Safety:

A Connection is not safe for concurrent use. It owns its stream exclusively
and drives the card from a single goroutine; Poll and Run must not be called
concurrently.
*/
package vpicc
