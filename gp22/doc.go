// Package gp22 drives the GP22 time-to-digital converter over SPI.
//
// # Overview
//
// The driver keeps a local image of the chip's 7 configuration registers and
// offers:
//   - Bus set-up, power-on reset and configuration push (Initialize)
//   - Explicit configuration pushes after a batch of field changes
//   - Measurement triggering
//   - Status and result register reads
//   - Conversion of Q16.16 results to microseconds
//   - A communication self-test against the local image
//
// # Basic Usage
//
//	tdc := gp22.New(&spi.Devfs{Dev: "/dev/spidev0.0", Mode: spi.Mode1, MaxSpeed: 14000000})
//	defer tdc.Close()
//
//	if err := tdc.Initialize(); err != nil {
//	    log.Fatal(err)
//	}
//
//	_ = tdc.SetExpectedHits(3)
//	tdc.SetQuadRes(true)
//	if err := tdc.PushConfiguration(); err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := tdc.TriggerMeasurement(); err != nil {
//	    log.Fatal(err)
//	}
//	raw, err := tdc.ReadResult(0)
//	fmt.Printf("%.3f us\n", gp22.ConvertToMicroseconds(raw))
//
// # Configuration Options
//
//	tdc := gp22.New(opener,
//	    gp22.WithLogger(myLogger),
//	    gp22.WithMaxSpeed(10_000_000),
//	    gp22.WithImage(img),
//	)
//
// # Error Handling
//
// Bus failures are returned as *protocol.ProtocolError wrapping the cause.
// Invalid arguments are rejected before any bus traffic:
//   - RegisterOutOfRangeError: result or configuration register index out of range
//   - InvalidHitsError: expected hit count other than 2, 3 or 4
//   - ErrNotInitialized: bus operation before Initialize or after Close
//
// # Concurrency
//
// A Driver is not safe for concurrent use. Every call blocks until its SPI
// transfer completes; there are no timeouts or retries.
package gp22
