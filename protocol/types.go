package protocol

import "fmt"

// Status is the raw content of the chip's 16-bit status register.
// Individual flags are not decoded.
type Status uint16

func (s Status) String() string {
	return fmt.Sprintf("0x%04X", uint16(s))
}

// validWidth reports whether n is a supported burst data width:
// a probe, status or result register.
func validWidth(n int) bool {
	return n == ProbeSize || n == StatusSize || n == ResultSize
}
