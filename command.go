// go-vpicc
// Copyright (c) 2026 The go-vpicc Authors.
// SPDX-License-Identifier: MIT
//
// This file is part of go-vpicc.
//
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.

package vpicc

// Command is a reader-level control command carried in a 1-byte frame.
type Command byte

// Control command codes defined by the vpcd wire protocol.
const (
	CommandPowerOff Command = 0x00
	CommandPowerOn  Command = 0x01
	CommandReset    Command = 0x02
	CommandGetATR   Command = 0x04
)

// controlFrameLen is the payload length that marks a frame as a control
// command rather than an APDU.
const controlFrameLen = 1

// parseCommand decodes a control byte. Any code outside the protocol's
// command set yields a *CommandError carrying the offending byte.
func parseCommand(code byte) (Command, error) {
	switch cmd := Command(code); cmd {
	case CommandPowerOff, CommandPowerOn, CommandReset, CommandGetATR:
		return cmd, nil
	default:
		return 0, &CommandError{Code: code}
	}
}

// String returns the command name.
func (c Command) String() string {
	switch c {
	case CommandPowerOff:
		return "PowerOff"
	case CommandPowerOn:
		return "PowerOn"
	case CommandReset:
		return "Reset"
	case CommandGetATR:
		return "GetATR"
	default:
		return "Unknown"
	}
}
