// Package gp22sim simulates a GP22 on the far side of an SPI bus.
//
// A Chip implements both driver.Opener and driver.Conn from
// golang.org/x/exp/io/spi/driver, so it can stand in for a real
// spidev device in tests and examples:
//
//	chip := gp22sim.New()
//	tdc := gp22.New(chip)
package gp22sim

import (
	"errors"
	"fmt"

	"golang.org/x/exp/io/spi/driver"

	"github.com/moffa90/go-gp22/protocol"
)

// ErrBusy is returned by Open while the chip is already open.
var ErrBusy = errors.New("gp22sim: device busy")

// Chip is a simulated GP22. It is not safe for concurrent use.
type Chip struct {
	config  [protocol.NumConfigRegisters][protocol.ConfigRegisterSize]byte
	results [protocol.NumResultRegisters]uint32
	status  uint16

	nextResults [protocol.NumResultRegisters]uint32
	nextStatus  uint16

	settings map[int]int
	open     bool

	resets       int
	measurements int
	frames       [][]byte

	// ProbeOverride, when set, replaces the register 1 probe response.
	ProbeOverride *byte

	// TxErr, when set, is returned by every Tx.
	TxErr error
}

// New returns a powered-up chip with all registers cleared.
func New() *Chip {
	return &Chip{settings: make(map[int]int)}
}

// Open implements driver.Opener.
func (c *Chip) Open() (driver.Conn, error) {
	if c.open {
		return nil, ErrBusy
	}
	c.open = true
	return c, nil
}

// Configure implements driver.Conn and records the setting.
func (c *Chip) Configure(k, v int) error {
	c.settings[k] = v
	return nil
}

// Close implements driver.Conn.
func (c *Chip) Close() error {
	c.open = false
	return nil
}

// Tx implements driver.Conn. w holds one burst: an opcode followed by
// its data bytes.
func (c *Chip) Tx(w, r []byte) error {
	if !c.open {
		return errors.New("gp22sim: tx on closed device")
	}
	if c.TxErr != nil {
		return c.TxErr
	}
	if len(w) == 0 {
		return errors.New("gp22sim: empty frame")
	}
	if r != nil && len(r) != len(w) {
		return fmt.Errorf("gp22sim: rx length %d does not match tx length %d", len(r), len(w))
	}
	if r == nil {
		r = make([]byte, len(w))
	}

	frame := append([]byte(nil), w...)
	c.frames = append(c.frames, frame)

	op := w[0]
	data := w[1:]
	r[0] = 0

	switch {
	case op == protocol.OpPowerOnReset:
		c.reset()
	case op == protocol.OpInitMeasurement:
		c.results = c.nextResults
		c.status = c.nextStatus
		c.measurements++
	case op >= protocol.OpWriteConfig && op < protocol.OpWriteConfig+protocol.NumConfigRegisters:
		if len(data) != protocol.ConfigRegisterSize {
			return fmt.Errorf("gp22sim: write config needs %d bytes, got %d", protocol.ConfigRegisterSize, len(data))
		}
		copy(c.config[op-protocol.OpWriteConfig][:], data)
	case op >= protocol.OpReadResult && op < protocol.OpReadResult+protocol.NumResultRegisters:
		v := c.results[op-protocol.OpReadResult]
		copy(r[1:], uint32ToBytes(v))
	case op == protocol.OpReadStatus:
		copy(r[1:], []byte{byte(c.status >> 8), byte(c.status)})
	case op == protocol.OpReadReg1High:
		b := c.config[1][0]
		if c.ProbeOverride != nil {
			b = *c.ProbeOverride
		}
		copy(r[1:], []byte{b})
	default:
		return fmt.Errorf("gp22sim: unsupported opcode 0x%02X", op)
	}
	return nil
}

func (c *Chip) reset() {
	c.config = [protocol.NumConfigRegisters][protocol.ConfigRegisterSize]byte{}
	c.results = [protocol.NumResultRegisters]uint32{}
	c.status = 0
	c.resets++
}

// SetNextMeasurement sets the result registers and status the chip
// reports after the next init measurement opcode.
func (c *Chip) SetNextMeasurement(results [protocol.NumResultRegisters]uint32, status uint16) {
	c.nextResults = results
	c.nextStatus = status
}

// Register returns configuration register n as the chip holds it.
// ok is false when n is not a configuration register.
func (c *Chip) Register(n int) (v uint32, ok bool) {
	if n < 0 || n >= protocol.NumConfigRegisters {
		return 0, false
	}
	return protocol.AssembleMSBFirst(c.config[n][:]), true
}

// Setting returns the bus setting stored under driver key k.
func (c *Chip) Setting(k int) (int, bool) {
	v, ok := c.settings[k]
	return v, ok
}

// IsOpen reports whether a connection is currently open.
func (c *Chip) IsOpen() bool { return c.open }

// Resets returns the number of power-on resets received.
func (c *Chip) Resets() int { return c.resets }

// Measurements returns the number of measurements started.
func (c *Chip) Measurements() int { return c.measurements }

// Frames returns copies of every frame received, in order.
func (c *Chip) Frames() [][]byte {
	out := make([][]byte, len(c.frames))
	for i, f := range c.frames {
		out[i] = append([]byte(nil), f...)
	}
	return out
}

// uint32ToBytes splits v most significant byte first.
func uint32ToBytes(v uint32) []byte {
	return []byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}
}
