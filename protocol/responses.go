package protocol

// AssembleMSBFirst combines data bytes into a single value, the first byte
// landing in the most significant position.
//
//	[A][B][C][D] -> 0xAABBCCDD
func AssembleMSBFirst(data []byte) uint32 {
	var v uint32
	for _, b := range data {
		v = v<<8 | uint32(b)
	}
	return v
}

// ParseBurst extracts the value returned by a burst of the given width.
// rx is the full received frame, including the byte clocked in while
// the opcode was sent, which carries no data.
//
// Response frame structure:
//
//	[IGNORED][DATA1]...[DATAn]
func ParseBurst(rx []byte, width int) (uint32, error) {
	if len(rx) != 1+width {
		return 0, &FrameError{Got: len(rx), Want: 1 + width}
	}

	return AssembleMSBFirst(rx[1:]), nil
}

// ParseStatusResponse parses the Read Status response frame.
func ParseStatusResponse(rx []byte) (Status, error) {
	v, err := ParseBurst(rx, StatusSize)
	if err != nil {
		return 0, err
	}

	return Status(v), nil
}

// ParseResultResponse parses a Read Result response frame into the raw Q16.16 value.
func ParseResultResponse(rx []byte) (uint32, error) {
	return ParseBurst(rx, ResultSize)
}

// ParseProbeResponse parses the register 1 probe response frame.
func ParseProbeResponse(rx []byte) (byte, error) {
	v, err := ParseBurst(rx, ProbeSize)
	if err != nil {
		return 0, err
	}

	return byte(v), nil
}
