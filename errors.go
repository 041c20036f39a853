package huffman

import (
	"github.com/pkg/errors"
)

var (
	// ErrUnderflow is returned when a bit or Symbol is requested from an
	// exhausted stream.  Inside a container this means it was truncated.
	ErrUnderflow = errors.New("huffman: bit stream underflow")

	// ErrMalformedHeader is returned when the serialized code tree at the
	// start of a container is truncated or violates the header grammar.
	ErrMalformedHeader = errors.New("huffman: malformed tree header")

	// ErrTrailingData is returned by strict decoding when the bits that
	// follow the EndOfStream code are not pure zero padding.
	ErrTrailingData = errors.New("huffman: non-zero data after end of stream")

	// ErrReservedSymbol is returned when the input text contains U+FFFF,
	// which is the wire value of EndOfStream.
	ErrReservedSymbol = errors.New("huffman: input contains reserved character U+FFFF")

	// ErrInvalidText is returned when the input text is not valid UTF-8.
	ErrInvalidText = errors.New("huffman: input is not valid UTF-8")
)
