package huffman

import (
	"io"

	"github.com/icza/bitio"
)

// Codec converts between text and containers.
//
// The zero value is ready for use and ignores whatever follows the
// EndOfStream code when decoding.
type Codec struct {
	// Strict requires the bits after EndOfStream to be zero padding up to
	// the next byte boundary, with no further bytes.  Violations are
	// reported as ErrTrailingData.
	Strict bool
}

// Encode compresses text into a new container.  The text must be valid UTF-8
// and must not contain U+FFFF.
func Encode(text string) ([]byte, error) {
	return Codec{}.Encode(text)
}

// Decode recovers the text stored in a container.
func Decode(data []byte) (string, error) {
	return Codec{}.Decode(data)
}

// Encode compresses text into a new container.  Nothing is returned unless
// the whole container was built.
func (c Codec) Encode(text string) ([]byte, error) {
	var bs BitStream
	if err := c.encode(&bs, text); err != nil {
		return nil, err
	}
	return bs.Bytes(), nil
}

// EncodeTo compresses text and streams the container to w.  The input is
// validated before anything is written, but if w fails part of the
// container may already have been written to it.
func (c Codec) EncodeTo(w io.Writer, text string) error {
	bw := bitio.NewWriter(w)
	if err := c.encode(bw, text); err != nil {
		return err
	}
	return bw.Close()
}

func (c Codec) encode(w BitWriter, text string) error {
	units, err := textToUnits(text)
	if err != nil {
		return err
	}

	var e Encoder
	e.Init(CountFrequencies(units))

	symbols := make([]Symbol, len(units))
	for i, unit := range units {
		symbols[i] = Symbol{unit: unit}
	}

	if err := e.WriteHeader(w); err != nil {
		return err
	}
	return e.WriteSymbols(w, symbols)
}

// Decode recovers the text stored in a container.
func (c Codec) Decode(data []byte) (string, error) {
	return c.decode(NewBitStream(data))
}

// DecodeFrom reads a container from r and recovers the text stored in it.
// In strict mode, r is read to EOF.
func (c Codec) DecodeFrom(r io.Reader) (string, error) {
	return c.decode(bitio.NewReader(r))
}

func (c Codec) decode(r BitReader) (string, error) {
	var d Decoder
	if err := d.Init(r); err != nil {
		return "", err
	}
	units, err := d.Decode()
	if err != nil {
		return "", err
	}
	if c.Strict {
		if err := d.CheckPadding(); err != nil {
			return "", err
		}
	}
	return unitsToText(units), nil
}
