package huffman

import (
	"fmt"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/chronos-tachyon/assert"
	"github.com/pkg/errors"
)

// SymbolBits is the fixed width of a Symbol on the wire.
const SymbolBits = 16

// sentinelUnit is the wire value of EndOfStream.  U+FFFF is a noncharacter
// and is never half of a UTF-16 surrogate pair.
const sentinelUnit = 0xffff

// sentinelRank sorts after every real code unit.  Internal nodes share it.
const sentinelRank = 1 << SymbolBits

// Symbol represents one unit of the input alphabet: either a real UTF-16 code
// unit or the EndOfStream sentinel.
type Symbol struct {
	unit uint16
	eos  bool
}

// EndOfStream is the reserved sentinel that terminates every payload.
var EndOfStream = Symbol{unit: sentinelUnit, eos: true}

// RealSymbol returns the Symbol for a UTF-16 code unit.  The code unit 0xFFFF
// is reserved for EndOfStream.
func RealSymbol(unit uint16) Symbol {
	assert.Assertf(unit != sentinelUnit, "code unit %#04x is reserved for EndOfStream", unit)
	return Symbol{unit: unit}
}

// IsEndOfStream returns true iff this is the sentinel.
func (s Symbol) IsEndOfStream() bool {
	return s.eos
}

// CodeUnit returns the UTF-16 code unit of a real Symbol.
func (s Symbol) CodeUnit() uint16 {
	assert.Assertf(!s.eos, "EndOfStream has no code unit")
	return s.unit
}

// String returns the string representation of this Symbol.
func (s Symbol) String() string {
	if s.eos {
		return "EOS"
	}
	return fmt.Sprintf("U+%04X", s.unit)
}

var _ fmt.Stringer = Symbol{}

func (s Symbol) wire() uint16 {
	if s.eos {
		return sentinelUnit
	}
	return s.unit
}

func (s Symbol) rank() uint32 {
	if s.eos {
		return sentinelRank
	}
	return uint32(s.unit)
}

func symbolFromWire(unit uint16) Symbol {
	if unit == sentinelUnit {
		return EndOfStream
	}
	return Symbol{unit: unit}
}

// textToUnits converts UTF-8 text into UTF-16 code units.
func textToUnits(text string) ([]uint16, error) {
	if !utf8.ValidString(text) {
		return nil, ErrInvalidText
	}
	units := utf16.Encode([]rune(text))
	for i, unit := range units {
		if unit == sentinelUnit {
			return nil, errors.Wrapf(ErrReservedSymbol, "code unit %d", i)
		}
	}
	return units, nil
}

func unitsToText(units []uint16) string {
	return string(utf16.Decode(units))
}
