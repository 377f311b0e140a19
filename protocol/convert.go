package protocol

import "time"

// Conversion constants for Q16.16 results.
const (
	// qScale is one unit of the fractional part, 2^-16
	qScale = 1.0 / (1 << FractionalBits)

	// microsPerCycle is the period of the reference clock in microseconds
	microsPerCycle = 1e6 / ReferenceClockHz

	// nanosPerCycle is the period of the reference clock in nanoseconds
	nanosPerCycle = 1e9 / ReferenceClockHz

	// fractionMask selects the fractional bits of a Q16.16 value
	fractionMask = 1<<FractionalBits - 1
)

// ToMicroseconds converts a raw Q16.16 result, counted in periods of the
// 4 MHz reference clock, into microseconds:
//
//	us = raw * 2^-16 * (1 / 4 MHz) * 1e6
//
// The argument is wider than a result register so that scaled or
// accumulated values convert the same way.
func ToMicroseconds(raw uint64) float64 {
	return float64(raw) * qScale * microsPerCycle
}

// ToDuration converts a raw Q16.16 result into a time.Duration.
// Sub-nanosecond remainders are truncated.
func ToDuration(raw uint64) time.Duration {
	cycles := raw >> FractionalBits
	frac := raw & fractionMask

	ns := cycles*nanosPerCycle + (frac*nanosPerCycle)>>FractionalBits
	return time.Duration(ns)
}
