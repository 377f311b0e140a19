package protocol

import (
	"errors"
	"fmt"
)

// ProtocolError represents a failed exchange with the chip.
// It carries the opcode of the burst and the underlying cause.
type ProtocolError struct {
	// Operation is the command that failed
	Operation string

	// Opcode is the first byte of the failed burst
	Opcode byte

	// Err is the underlying bus or framing error
	Err error
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("%s failed: %s (0x%02X): %v", e.Operation, OpcodeName(e.Opcode), e.Opcode, e.Err)
}

func (e *ProtocolError) Unwrap() error {
	return e.Err
}

// IsProtocolError returns true if err is or wraps a ProtocolError.
func IsProtocolError(err error) bool {
	var pe *ProtocolError
	return errors.As(err, &pe)
}

// FrameError indicates a received frame of unexpected length.
type FrameError struct {
	Got  int
	Want int
}

func (e *FrameError) Error() string {
	return fmt.Sprintf("frame length mismatch: got %d bytes, expected %d", e.Got, e.Want)
}

// OpcodeName returns a human-readable name for an opcode.
func OpcodeName(op byte) string {
	switch {
	case op == OpPowerOnReset:
		return "power-on reset"
	case op == OpInitMeasurement:
		return "init measurement"
	case op >= OpWriteConfig && op < OpWriteConfig+NumConfigRegisters:
		return fmt.Sprintf("write config %d", op-OpWriteConfig)
	case op >= OpReadResult && op < OpReadResult+NumResultRegisters:
		return fmt.Sprintf("read result %d", op-OpReadResult)
	case op == OpReadStatus:
		return "read status"
	case op == OpReadReg1High:
		return "read register 1 high byte"
	default:
		return fmt.Sprintf("unknown opcode 0x%02X", op)
	}
}
