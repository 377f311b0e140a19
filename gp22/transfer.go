package gp22

import (
	"fmt"

	"github.com/moffa90/go-gp22/protocol"
)

// A burst is an opcode followed by 1, 2 or 4 data bytes, sent as one Tx
// so that chip select stays asserted until the last byte. Frames come
// from the protocol builders and responses go back through the matching
// protocol parsers.

// command sends a single-byte opcode.
func (d *Driver) command(operation string, opcode byte) error {
	return d.tx(operation, protocol.BuildCommand(opcode), nil)
}

// exchange clocks out frame and returns the bytes clocked in, one per
// frame byte. The first returned byte arrived with the opcode.
func (d *Driver) exchange(operation string, frame []byte) ([]byte, error) {
	rx := make([]byte, len(frame))
	if err := d.tx(operation, frame, rx); err != nil {
		return nil, err
	}
	return rx, nil
}

// responseError attributes a response that failed to parse to the
// operation and opcode that produced it.
func responseError(operation string, frame []byte, err error) error {
	return &protocol.ProtocolError{Operation: operation, Opcode: frame[0], Err: err}
}

// tx performs one full-duplex exchange with chip select held for all of w.
func (d *Driver) tx(operation string, w, r []byte) error {
	if d.dev == nil {
		return ErrNotInitialized
	}
	if r == nil {
		r = make([]byte, len(w))
	}

	d.logDebug("spi tx",
		"op", operation,
		"opcode", fmt.Sprintf("0x%02X", w[0]),
		"tx", fmt.Sprintf("% X", w),
	)

	if err := d.dev.Tx(w, r); err != nil {
		return &protocol.ProtocolError{Operation: operation, Opcode: w[0], Err: err}
	}

	d.logDebug("spi rx",
		"op", operation,
		"rx", fmt.Sprintf("% X", r),
	)
	return nil
}
