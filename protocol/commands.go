package protocol

import "fmt"

// BuildCommand constructs a single-byte command frame such as
// OpPowerOnReset or OpInitMeasurement.
//
// Frame structure:
//
//	[OPCODE]
func BuildCommand(opcode byte) []byte {
	return []byte{opcode}
}

// BuildBurst constructs a burst frame: the opcode followed by 1, 2 or 4 data bytes.
// The data bytes are transmitted in the order given, so data[0] ends up in the
// most significant position of the register.
//
// Frame structure:
//
//	[OPCODE][DATA1]...[DATAn]
//
// The whole frame must be clocked out with chip select held asserted.
func BuildBurst(opcode byte, data ...byte) ([]byte, error) {
	if !validWidth(len(data)) {
		return nil, fmt.Errorf("burst width must be 1, 2 or 4 bytes, got %d", len(data))
	}

	frame := make([]byte, 0, 1+len(data))
	frame = append(frame, opcode)
	frame = append(frame, data...)

	return frame, nil
}

// BuildReadBurst constructs a read burst: the opcode followed by width placeholder bytes.
func BuildReadBurst(opcode byte, width int) ([]byte, error) {
	if !validWidth(width) {
		return nil, fmt.Errorf("burst width must be 1, 2 or 4 bytes, got %d", width)
	}

	frame := make([]byte, 1+width)
	frame[0] = opcode
	for i := 1; i < len(frame); i++ {
		frame[i] = Placeholder
	}

	return frame, nil
}

// BuildWriteConfigCmd constructs a Write Config frame for register reg (0-6).
//
// Frame structure:
//
//	[0x80+REG][BYTE0][BYTE1][BYTE2][BYTE3]
func BuildWriteConfigCmd(reg int, data [ConfigRegisterSize]byte) ([]byte, error) {
	if reg < 0 || reg >= NumConfigRegisters {
		return nil, fmt.Errorf("config register %d is out of range: valid range is 0-%d", reg, NumConfigRegisters-1)
	}

	return BuildBurst(byte(OpWriteConfig+reg), data[:]...)
}

// BuildReadResultCmd constructs a Read Result frame for result register index (0-3).
//
// Frame structure:
//
//	[0xB0+INDEX][0x00][0x00][0x00][0x00]
func BuildReadResultCmd(index int) ([]byte, error) {
	if index < 0 || index >= NumResultRegisters {
		return nil, fmt.Errorf("result register %d is out of range: valid range is 0-%d", index, NumResultRegisters-1)
	}

	return BuildReadBurst(byte(OpReadResult+index), ResultSize)
}

// BuildReadStatusCmd constructs a Read Status frame.
//
// Frame structure:
//
//	[0xB4][0x00][0x00]
func BuildReadStatusCmd() []byte {
	frame, _ := BuildReadBurst(OpReadStatus, StatusSize)
	return frame
}

// BuildReadProbeCmd constructs the frame reading the high byte of config register 1.
//
// Frame structure:
//
//	[0xB5][0x00]
func BuildReadProbeCmd() []byte {
	frame, _ := BuildReadBurst(OpReadReg1High, ProbeSize)
	return frame
}
