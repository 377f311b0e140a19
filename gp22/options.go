package gp22

import "github.com/moffa90/go-gp22/protocol"

// Config holds the driver configuration.
type Config struct {
	// Logger is used for logging operations (optional)
	Logger Logger

	// MaxSpeed is the SPI clock in Hz.
	// Default is 14 MHz, the chip is rated for 20 MHz.
	MaxSpeed int

	// Image is the configuration register image the driver starts with
	Image Image
}

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		MaxSpeed: protocol.DefaultClockSpeed,
	}
}

// Option is a functional option for configuring the Driver.
type Option func(*Config)

// WithLogger sets a logger for the driver operations.
//
// Example:
//
//	tdc := gp22.New(opener, gp22.WithLogger(myLogger))
func WithLogger(logger Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithMaxSpeed sets the SPI clock in Hz.
// Values above the chip's 20 MHz rating, or not positive, are ignored.
//
// Example:
//
//	tdc := gp22.New(opener, gp22.WithMaxSpeed(10_000_000))
func WithMaxSpeed(hz int) Option {
	return func(c *Config) {
		if hz > 0 && hz <= protocol.MaxClockSpeed {
			c.MaxSpeed = hz
		}
	}
}

// WithImage sets the configuration image the driver starts with.
// Without it the image is all zeroes.
//
// Example:
//
//	img, _ := regfile.Parse("gp22.conf")
//	tdc := gp22.New(opener, gp22.WithImage(*img))
func WithImage(img Image) Option {
	return func(c *Config) {
		c.Image = img
	}
}
