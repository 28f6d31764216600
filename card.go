// go-vpicc
// Copyright (c) 2026 The go-vpicc Authors.
// SPDX-License-Identifier: MIT
//
// This file is part of go-vpicc.
//
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.

package vpicc

// DefaultATR is the Answer-To-Reset advertised by NopHooks and therefore by
// any card that does not override ATR.
var DefaultATR = []byte{0x3B, 0x95, 0x13, 0x81, 0x01, 0x80, 0x73, 0xFF, 0x01, 0x00, 0x0B}

// Card is a virtual smartcard driven by a Connection.
//
// The connection borrows the card exclusively for the duration of each
// dispatch, so implementations never see concurrent calls. Execute is the
// only operation without a ready-made default; the power hooks and ATR can
// be inherited by embedding NopHooks.
//
// See the vsmartcard documentation for the semantics of each operation:
// https://frankmorgner.github.io/vsmartcard/virtualsmartcard/api.html
type Card interface {
	// ATR returns the Answer-To-Reset bytes advertised to the daemon.
	// The value is sent verbatim as a single response frame.
	ATR() []byte

	// PowerOn handles a Power On control command.
	PowerOn()

	// PowerOff handles a Power Off control command.
	PowerOff()

	// Reset handles a Reset control command.
	Reset()

	// Execute computes the response APDU for the given command APDU.
	// Both are opaque to the engine; no length or content validation is
	// performed on either side of the call.
	Execute(apdu []byte) []byte
}

// NopHooks provides default implementations for the optional Card
// operations: DefaultATR and no-op power hooks. Embed it and implement
// Execute to obtain a complete card.
type NopHooks struct{}

// ATR returns DefaultATR.
func (NopHooks) ATR() []byte { return DefaultATR }

// PowerOn does nothing.
func (NopHooks) PowerOn() {}

// PowerOff does nothing.
func (NopHooks) PowerOff() {}

// Reset does nothing.
func (NopHooks) Reset() {}
