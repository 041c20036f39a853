package huffman

import (
	"fmt"
	"strconv"

	"github.com/chronos-tachyon/assert"
)

// maxCodeSize is the longest path a Code can hold.
const maxCodeSize = 64

// Code represents the path from the root of a code tree to one of its leaves.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  The most significant of
	// the Size valid bits is the first step taken from the root, and a 1
	// bit means "go right".
	Bits uint64
}

// MakeCode is a convenience function that constructs a Code.
func MakeCode(size byte, bits uint64) Code {
	assert.Assertf(size <= maxCodeSize, "code size %d > max %d", size, maxCodeSize)
	return Code{Size: size, Bits: bits}
}

// Extend returns the Code for the child reached by taking one more step.
func (hc Code) Extend(right bool) Code {
	assert.Assertf(hc.Size < maxCodeSize, "code %s cannot be extended past %d bits", hc, maxCodeSize)
	bits := hc.Bits << 1
	if right {
		bits |= 1
	}
	return MakeCode(hc.Size+1, bits)
}

// Bit returns the i'th step of the path, counting from the root.
func (hc Code) Bit(i byte) bool {
	assert.Assertf(i < hc.Size, "bit index %d out of range for code of size %d", i, hc.Size)
	return (hc.Bits>>(hc.Size-1-i))&1 != 0
}

// HasPrefix returns true iff the path p is a prefix of (or equal to) hc.
func (hc Code) HasPrefix(p Code) bool {
	if p.Size > hc.Size {
		return false
	}
	return hc.Bits>>(hc.Size-p.Size) == p.Bits
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	if hc.Size == 0 {
		return "\"\""
	}
	format := "%0" + strconv.FormatUint(uint64(hc.Size), 10) + "b"
	return strconv.Quote(fmt.Sprintf(format, hc.Bits))
}

var _ fmt.Stringer = Code{}
