package huffman

import (
	"github.com/chronos-tachyon/assert"
	"github.com/pkg/errors"
)

// BitWriter is the sink side of a bit-granular stream.  *BitStream and
// *bitio.Writer both satisfy it.
type BitWriter interface {
	WriteBool(b bool) error
	WriteBits(r uint64, n uint8) error
}

// BitReader is the source side of a bit-granular stream.  *BitStream and
// *bitio.Reader both satisfy it.
type BitReader interface {
	ReadBool() (bool, error)
	ReadBits(n uint8) (uint64, error)
}

// BitStream is a FIFO sequence of bits backed by byte storage.
//
// Appended bits collect in a staging byte at the back until eight of them
// are available, at which point they are packed onto the core.  Consumed
// bits are tracked by a read cursor; nothing is ever discarded, so Bytes
// always returns every bit ever appended.
//
// The zero value is an empty BitStream ready for use.
type BitStream struct {
	core    []byte
	back    byte
	backLen uint8
	read    uint64
}

// NewBitStream returns a BitStream whose unread bits are the contents of data.
func NewBitStream(data []byte) *BitStream {
	core := make([]byte, len(data))
	copy(core, data)
	return &BitStream{core: core}
}

// Len returns the number of unread bits.
func (bs *BitStream) Len() uint64 {
	return bs.total() - bs.read
}

func (bs *BitStream) total() uint64 {
	return uint64(len(bs.core))*8 + uint64(bs.backLen)
}

// Append appends bits in order.
func (bs *BitStream) Append(bits ...bool) {
	for _, bit := range bits {
		bs.appendBit(bit)
	}
}

// AppendCode appends the path of hc, first step first.
func (bs *BitStream) AppendCode(hc Code) {
	bs.appendBits(hc.Bits, hc.Size)
}

// AppendSymbol appends the fixed 16-bit wire value of s, most significant
// bit first.
func (bs *BitStream) AppendSymbol(s Symbol) {
	bs.appendBits(uint64(s.wire()), SymbolBits)
}

func (bs *BitStream) appendBit(bit bool) {
	bs.back <<= 1
	if bit {
		bs.back |= 1
	}
	bs.backLen++
	if bs.backLen == 8 {
		bs.core = append(bs.core, bs.back)
		bs.back = 0
		bs.backLen = 0
	}
}

func (bs *BitStream) appendBits(bits uint64, n uint8) {
	assert.Assertf(n <= 64, "cannot append %d bits at once", n)
	for n > 0 {
		n--
		bs.appendBit((bits>>n)&1 != 0)
	}
}

// PopBit removes and returns the oldest unread bit.
func (bs *BitStream) PopBit() (bool, error) {
	if bs.read >= bs.total() {
		return false, errors.WithStack(ErrUnderflow)
	}
	bit := bs.bitAt(bs.read)
	bs.read++
	return bit, nil
}

// PopSymbol removes the oldest 16 unread bits and returns them as a Symbol.
// Nothing is consumed if fewer than 16 bits remain.
func (bs *BitStream) PopSymbol() (Symbol, error) {
	u, err := bs.popBits(SymbolBits)
	if err != nil {
		return Symbol{}, err
	}
	return symbolFromWire(uint16(u)), nil
}

func (bs *BitStream) popBits(n uint8) (uint64, error) {
	assert.Assertf(n <= 64, "cannot pop %d bits at once", n)
	if bs.Len() < uint64(n) {
		return 0, errors.Wrapf(ErrUnderflow, "need %d bits, have %d", n, bs.Len())
	}
	var u uint64
	for i := uint8(0); i < n; i++ {
		u <<= 1
		if bs.bitAt(bs.read) {
			u |= 1
		}
		bs.read++
	}
	return u, nil
}

func (bs *BitStream) bitAt(pos uint64) bool {
	index := pos >> 3
	if index < uint64(len(bs.core)) {
		return (bs.core[index]>>(7-pos&7))&1 != 0
	}
	shift := bs.backLen - 1 - uint8(pos&7)
	return (bs.back>>shift)&1 != 0
}

// Bytes returns every bit appended so far, read or unread, packed most
// significant bit first.  A partial final byte is padded with zero bits.
// The padding is not added to the stream itself.
func (bs *BitStream) Bytes() []byte {
	out := make([]byte, len(bs.core), len(bs.core)+1)
	copy(out, bs.core)
	if bs.backLen != 0 {
		out = append(out, bs.back<<(8-bs.backLen))
	}
	return out
}

// WriteBool implements BitWriter.
func (bs *BitStream) WriteBool(b bool) error {
	bs.appendBit(b)
	return nil
}

// WriteBits implements BitWriter.  The low n bits of r are appended, most
// significant first.
func (bs *BitStream) WriteBits(r uint64, n uint8) error {
	bs.appendBits(r, n)
	return nil
}

// ReadBool implements BitReader.
func (bs *BitStream) ReadBool() (bool, error) {
	return bs.PopBit()
}

// ReadBits implements BitReader.
func (bs *BitStream) ReadBits(n uint8) (uint64, error) {
	return bs.popBits(n)
}

var (
	_ BitWriter = (*BitStream)(nil)
	_ BitReader = (*BitStream)(nil)
)
