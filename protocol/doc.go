// Package protocol implements the SPI wire protocol of the GP22 time-to-digital converter.
//
// This package provides functions to build command frames and parse response frames.
// It does not talk to hardware; see package gp22 for the driver.
//
// # Protocol Overview
//
// Every exchange starts with a one-byte opcode. Commands consist of the opcode alone,
// register accesses are followed by 1, 2 or 4 data bytes clocked in the same
// chip-select window:
//
//	Command: [OPCODE]
//	Write:   [0x80+N][B0][B1][B2][B3]
//	Read:    [OPCODE][0x00]...[0x00]
//
// The bus is full duplex, so a read returns the register content on the bytes that
// follow the opcode. Multi-byte values travel most significant byte first.
//
// # Command Builders
//
//	frame := protocol.BuildCommand(protocol.OpPowerOnReset)
//	frame, err := protocol.BuildWriteConfigCmd(1, [4]byte{0x21, 0x42, 0x00, 0x00})
//	frame, err := protocol.BuildReadResultCmd(0)
//
// # Response Parsers
//
//	raw, err := protocol.ParseResultResponse(rx)
//	us := protocol.ToMicroseconds(uint64(raw))
//
// # Results
//
// Results are unsigned Q16.16 numbers: 16 integer and 16 fractional bits,
// counted in periods of the 4 MHz reference clock.
package protocol
