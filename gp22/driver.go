package gp22

import (
	"fmt"

	"golang.org/x/exp/io/spi"
	"golang.org/x/exp/io/spi/driver"

	"github.com/moffa90/go-gp22/protocol"
)

// Driver controls a GP22 time-to-digital converter on an SPI bus.
// It owns a local image of the configuration registers; field accessors
// only change the image, and PushConfiguration copies it to the chip.
//
// Driver is not safe for concurrent use. Callers sharing one Driver
// between goroutines must serialize access to it.
type Driver struct {
	opener driver.Opener
	dev    *spi.Device
	config Config
	image  Image
}

// New creates a new Driver for the chip reachable through opener.
// The opener identifies the bus and chip select, e.g. a *spi.Devfs.
// New does not touch the hardware; call Initialize for that.
//
// Example:
//
//	tdc := gp22.New(&spi.Devfs{Dev: "/dev/spidev0.0"},
//	    gp22.WithLogger(myLogger),
//	)
//	defer tdc.Close()
func New(opener driver.Opener, opts ...Option) *Driver {
	if opener == nil {
		panic("opener cannot be nil")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Driver{
		opener: opener,
		config: cfg,
		image:  cfg.Image,
	}
}

// Initialize performs the start-up sequence:
//  1. Open the SPI device
//  2. Configure the bus: clock speed, mode 1 (CPOL=0, CPHA=1), MSB first, 8-bit words
//  3. Send the power-on reset opcode
//  4. Push the configuration image
//
// If any step fails the bus is released again.
func (d *Driver) Initialize() error {
	if d.dev == nil {
		dev, err := spi.Open(d.opener)
		if err != nil {
			return fmt.Errorf("open bus: %w", err)
		}
		d.dev = dev
	}

	if err := d.initialize(); err != nil {
		d.logError("initialize failed", "error", err)
		_ = d.Close()
		return err
	}

	d.logInfo("initialized", "speed_hz", d.config.MaxSpeed)
	return nil
}

func (d *Driver) initialize() error {
	if err := d.dev.SetMode(spi.Mode1); err != nil {
		return fmt.Errorf("set mode: %w", err)
	}
	if err := d.dev.SetMaxSpeed(d.config.MaxSpeed); err != nil {
		return fmt.Errorf("set max speed: %w", err)
	}
	if err := d.dev.SetBitOrder(spi.MSBFirst); err != nil {
		return fmt.Errorf("set bit order: %w", err)
	}
	if err := d.dev.SetBitsPerWord(8); err != nil {
		return fmt.Errorf("set bits per word: %w", err)
	}

	if err := d.command("power-on reset", protocol.OpPowerOnReset); err != nil {
		return err
	}

	return d.PushConfiguration()
}

// Close releases the SPI device. It is safe to call before Initialize
// and more than once.
func (d *Driver) Close() error {
	if d.dev == nil {
		return nil
	}

	err := d.dev.Close()
	d.dev = nil
	if err != nil {
		return fmt.Errorf("close bus: %w", err)
	}
	return nil
}

// PushConfiguration writes all 7 configuration registers from the local
// image to the chip, register 0 first.
//
// Field accessors never push on their own, so several changes can be
// made before a single push.
func (d *Driver) PushConfiguration() error {
	for i := 0; i < protocol.NumConfigRegisters; i++ {
		frame, err := protocol.BuildWriteConfigCmd(i, d.image[i])
		if err != nil {
			return err
		}
		if _, err := d.exchange("write config", frame); err != nil {
			return fmt.Errorf("push config register %d: %w", i, err)
		}
	}

	d.logDebug("configuration pushed")
	return nil
}

// TriggerMeasurement arms the chip for a measurement. It does not wait;
// poll ReadStatus or ReadResult to find out when it has completed.
func (d *Driver) TriggerMeasurement() error {
	return d.command("init measurement", protocol.OpInitMeasurement)
}

// ReadStatus returns the status register.
func (d *Driver) ReadStatus() (protocol.Status, error) {
	frame := protocol.BuildReadStatusCmd()
	rx, err := d.exchange("read status", frame)
	if err != nil {
		return 0, err
	}

	st, err := protocol.ParseStatusResponse(rx)
	if err != nil {
		return 0, responseError("read status", frame, err)
	}
	return st, nil
}

// ReadResult returns the raw Q16.16 content of result register index (0-3).
// An index out of range returns 0 and a *RegisterOutOfRangeError
// without touching the bus.
func (d *Driver) ReadResult(index int) (uint32, error) {
	if index < 0 || index >= protocol.NumResultRegisters {
		return 0, &RegisterOutOfRangeError{Kind: "result", Index: index, Max: protocol.NumResultRegisters - 1}
	}

	frame, err := protocol.BuildReadResultCmd(index)
	if err != nil {
		return 0, err
	}
	rx, err := d.exchange("read result", frame)
	if err != nil {
		return 0, err
	}

	raw, err := protocol.ParseResultResponse(rx)
	if err != nil {
		return 0, responseError("read result", frame, err)
	}
	return raw, nil
}

// ReadMicroseconds reads result register index and converts it to microseconds.
func (d *Driver) ReadMicroseconds(index int) (float64, error) {
	raw, err := d.ReadResult(index)
	if err != nil {
		return 0, err
	}
	return ConvertToMicroseconds(raw), nil
}

// TestCommunication reads back the highest byte of configuration register 1
// and compares it with the local image. It returns false on a mismatch.
//
// The result is only meaningful after the image has been pushed.
func (d *Driver) TestCommunication() (bool, error) {
	frame := protocol.BuildReadProbeCmd()
	rx, err := d.exchange("test communication", frame)
	if err != nil {
		return false, err
	}
	got, err := protocol.ParseProbeResponse(rx)
	if err != nil {
		return false, responseError("test communication", frame, err)
	}

	want := d.image[1][0]
	if got != want {
		d.logError("communication test mismatch",
			"expected", fmt.Sprintf("0x%02X", want),
			"actual", fmt.Sprintf("0x%02X", got),
		)
		return false, nil
	}
	return true, nil
}

// ConvertToMicroseconds converts a raw Q16.16 result, counted in periods
// of the 4 MHz reference clock, into microseconds.
func ConvertToMicroseconds(raw uint32) float64 {
	return protocol.ToMicroseconds(uint64(raw))
}

// Image returns a copy of the local configuration image.
func (d *Driver) Image() Image {
	return d.image
}

// SetImage replaces the local configuration image. The chip is not
// updated until PushConfiguration.
func (d *Driver) SetImage(img Image) {
	d.image = img
}

// Register returns configuration register n of the local image.
func (d *Driver) Register(n int) (uint32, error) {
	return d.image.Register(n)
}

// SetRegister replaces configuration register n of the local image.
func (d *Driver) SetRegister(n int, v uint32) error {
	return d.image.SetRegister(n, v)
}

// SetExpectedHits sets the expected hit count (2, 3 or 4) in the local image.
func (d *Driver) SetExpectedHits(hits int) error {
	return d.image.SetExpectedHits(hits)
}

// ExpectedHitsBits returns the raw 3-bit hit count field of the local image.
func (d *Driver) ExpectedHitsBits() byte {
	return d.image.ExpectedHitsBits()
}

// ExpectedHits decodes the hit count field of the local image.
func (d *Driver) ExpectedHits() (int, bool) {
	return d.image.ExpectedHits()
}

// SetSingleRes selects single resolution in the local image.
func (d *Driver) SetSingleRes(on bool) { d.image.SetSingleRes(on) }

// SetDoubleRes sets or clears double resolution in the local image.
func (d *Driver) SetDoubleRes(on bool) { d.image.SetDoubleRes(on) }

// SetQuadRes sets or clears quad resolution in the local image.
func (d *Driver) SetQuadRes(on bool) { d.image.SetQuadRes(on) }

// IsSingleRes reports whether the local image selects single resolution.
func (d *Driver) IsSingleRes() bool { return d.image.IsSingleRes() }

// IsDoubleRes reports whether the local image selects double resolution.
func (d *Driver) IsDoubleRes() bool { return d.image.IsDoubleRes() }

// IsQuadRes reports whether the local image selects quad resolution.
func (d *Driver) IsQuadRes() bool { return d.image.IsQuadRes() }

// logDebug logs a debug message if a logger is configured.
func (d *Driver) logDebug(msg string, keysAndValues ...interface{}) {
	if d.config.Logger != nil {
		d.config.Logger.Debug(msg, keysAndValues...)
	}
}

// logInfo logs an info message if a logger is configured.
func (d *Driver) logInfo(msg string, keysAndValues ...interface{}) {
	if d.config.Logger != nil {
		d.config.Logger.Info(msg, keysAndValues...)
	}
}

// logError logs an error message if a logger is configured.
func (d *Driver) logError(msg string, keysAndValues ...interface{}) {
	if d.config.Logger != nil {
		d.config.Logger.Error(msg, keysAndValues...)
	}
}
