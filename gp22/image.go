package gp22

import "github.com/moffa90/go-gp22/protocol"

// Image is the local copy of the chip's configuration registers,
// indexed [register][byte]. Byte 0 is the most significant byte of
// the register and is transmitted first.
//
// Only the fields below have accessors; all other bits are passed
// through untouched.
type Image [protocol.NumConfigRegisters][protocol.ConfigRegisterSize]byte

// Hit count field: register 1, byte 1, bits 0-2.
const (
	hitsReg  = 1
	hitsByte = 1
	hitsMask = 0x07
)

// Resolution field: register 6, byte 2, bits 4 and 5.
const (
	resReg       = 6
	resByte      = 2
	doubleResBit = 1 << 4
	quadResBit   = 1 << 5
)

// hitsPatterns maps an expected hit count to its encoding in the hit count field.
var hitsPatterns = map[int]byte{
	2: 0b010,
	3: 0b011,
	4: 0b100,
}

// Register returns configuration register n as a 32-bit word.
func (im *Image) Register(n int) (uint32, error) {
	if n < 0 || n >= protocol.NumConfigRegisters {
		return 0, &RegisterOutOfRangeError{Kind: "config", Index: n, Max: protocol.NumConfigRegisters - 1}
	}
	return protocol.AssembleMSBFirst(im[n][:]), nil
}

// SetRegister replaces configuration register n with the 32-bit word v.
func (im *Image) SetRegister(n int, v uint32) error {
	if n < 0 || n >= protocol.NumConfigRegisters {
		return &RegisterOutOfRangeError{Kind: "config", Index: n, Max: protocol.NumConfigRegisters - 1}
	}
	im[n] = [protocol.ConfigRegisterSize]byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}
	return nil
}

// SetExpectedHits sets the number of hits the first channel waits for.
// Valid values are 2, 3 and 4; anything else returns an
// *InvalidHitsError and leaves the image unchanged.
func (im *Image) SetExpectedHits(hits int) error {
	pattern, ok := hitsPatterns[hits]
	if !ok {
		return &InvalidHitsError{Hits: hits}
	}

	im[hitsReg][hitsByte] = im[hitsReg][hitsByte]&^hitsMask | pattern
	return nil
}

// ExpectedHitsBits returns the raw 3-bit hit count field.
func (im *Image) ExpectedHitsBits() byte {
	return im[hitsReg][hitsByte] & hitsMask
}

// ExpectedHits decodes the hit count field. ok is false when the
// field holds a pattern SetExpectedHits never writes.
func (im *Image) ExpectedHits() (hits int, ok bool) {
	bits := im.ExpectedHitsBits()
	for h, p := range hitsPatterns {
		if p == bits {
			return h, true
		}
	}
	return 0, false
}

// SetSingleRes selects single resolution by clearing the double and
// quad bits. Passing false changes nothing; pick another mode instead.
func (im *Image) SetSingleRes(on bool) {
	if on {
		im.SetDoubleRes(false)
		im.SetQuadRes(false)
	}
}

// SetDoubleRes sets or clears the double resolution bit.
// Setting it clears quad resolution.
func (im *Image) SetDoubleRes(on bool) {
	if on {
		im[resReg][resByte] = im[resReg][resByte]&^quadResBit | doubleResBit
		return
	}
	im[resReg][resByte] &^= doubleResBit
}

// SetQuadRes sets or clears the quad resolution bit.
// Setting it clears double resolution.
func (im *Image) SetQuadRes(on bool) {
	if on {
		im[resReg][resByte] = im[resReg][resByte]&^doubleResBit | quadResBit
		return
	}
	im[resReg][resByte] &^= quadResBit
}

// IsSingleRes reports whether neither double nor quad resolution is set.
func (im *Image) IsSingleRes() bool {
	return !im.IsDoubleRes() && !im.IsQuadRes()
}

// IsDoubleRes reports whether the double resolution bit is set.
func (im *Image) IsDoubleRes() bool {
	return im[resReg][resByte]&doubleResBit != 0
}

// IsQuadRes reports whether the quad resolution bit is set.
func (im *Image) IsQuadRes() bool {
	return im[resReg][resByte]&quadResBit != 0
}
