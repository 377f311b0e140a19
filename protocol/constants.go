package protocol

// Opcodes understood by the GP22 on its SPI interface.
const (
	// OpPowerOnReset resets the chip to its power-on state (opcode only)
	OpPowerOnReset = 0x50

	// OpInitMeasurement arms the TDC for a new measurement (opcode only)
	OpInitMeasurement = 0x70

	// OpWriteConfig writes configuration register N when N is added to it.
	// Followed by 4 data bytes, most significant first.
	OpWriteConfig = 0x80

	// OpReadResult reads result register N when N is added to it.
	// Followed by 4 placeholder bytes.
	OpReadResult = 0xB0

	// OpReadStatus reads the 16-bit status register.
	// Followed by 2 placeholder bytes.
	OpReadStatus = 0xB4

	// OpReadReg1High reads back the highest byte of configuration register 1.
	// Followed by 1 placeholder byte. Used as a communication probe.
	OpReadReg1High = 0xB5
)

// Register file layout.
const (
	// NumConfigRegisters is the number of 32-bit configuration registers
	NumConfigRegisters = 7

	// ConfigRegisterSize is the size of a configuration register in bytes
	ConfigRegisterSize = 4

	// NumResultRegisters is the number of 32-bit result registers
	NumResultRegisters = 4

	// ResultSize is the data size of a result read burst
	ResultSize = 4

	// StatusSize is the data size of a status read burst
	StatusSize = 2

	// ProbeSize is the data size of the register 1 probe burst
	ProbeSize = 1
)

// Timing constants.
const (
	// ReferenceClockHz is the reference clock the results are counted in (4 MHz)
	ReferenceClockHz = 4_000_000

	// FractionalBits is the number of fractional bits in a Q16.16 result
	FractionalBits = 16

	// MaxClockSpeed is the highest SPI clock the chip is rated for (20 MHz)
	MaxClockSpeed = 20_000_000

	// DefaultClockSpeed is the SPI clock used unless overridden (14 MHz)
	DefaultClockSpeed = 14_000_000

	// Placeholder is the byte clocked out while reading a register
	Placeholder = 0x00
)
