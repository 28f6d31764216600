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
	"github.com/rs/zerolog/log"
)

// DummyCard is a Card that logs every event instead of performing any
// action. It advertises DefaultATR and answers every APDU with the success
// status word 9000. Useful for demos and for smoke-testing a vpcd setup.
type DummyCard struct {
	NopHooks
}

// PowerOn logs the power-on event.
func (DummyCard) PowerOn() {
	log.Info().Msg("power on")
}

// PowerOff logs the power-off event.
func (DummyCard) PowerOff() {
	log.Info().Msg("power off")
}

// Reset logs the reset event.
func (DummyCard) Reset() {
	log.Info().Msg("reset")
}

// Execute logs the received APDU and reports success.
func (DummyCard) Execute(apdu []byte) []byte {
	log.Info().Hex("apdu", apdu).Msg("received APDU command")
	return []byte{0x90, 0x00}
}
