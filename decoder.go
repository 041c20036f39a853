package huffman

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// Decoder rebuilds a code tree from a container header and walks it to
// recover the payload.
type Decoder struct {
	root *Node
	in   *countingReader
}

// Init initializes this Decoder by reading the tree header from r.  On
// success, r is positioned at the first payload bit.
//
// Any failure, including running out of bits, is reported as
// ErrMalformedHeader.
//
func (d *Decoder) Init(r BitReader) error {
	in := &countingReader{r: r}
	root, err := readTree(in)
	if err != nil {
		return err
	}
	*d = Decoder{root: root, in: in}
	return nil
}

// Tree returns the root of the rebuilt code tree.
func (d Decoder) Tree() *Node {
	return d.root
}

// Decode walks the tree one bit at a time, emitting the code unit of every
// leaf reached, until the EndOfStream leaf is reached.  EndOfStream itself
// is not emitted.
//
// Running out of bits before EndOfStream is reported as ErrUnderflow.
//
func (d Decoder) Decode() ([]uint16, error) {
	var out []uint16
	if d.root.IsLeaf() {
		// Only EndOfStream: its path is empty.
		return out, nil
	}
	t := d.root
	for {
		right, err := d.in.ReadBool()
		if err != nil {
			return nil, errors.Wrapf(err, "payload symbol %d", len(out))
		}
		if right {
			t = t.right
		} else {
			t = t.left
		}
		if !t.IsLeaf() {
			continue
		}
		if t.symbol.IsEndOfStream() {
			return out, nil
		}
		out = append(out, t.symbol.unit)
		t = d.root
	}
}

// CheckPadding verifies that the bits which follow EndOfStream are zero
// padding up to the next byte boundary, and that nothing else follows.
// It must be called after Decode.
func (d Decoder) CheckPadding() error {
	if pad := uint8((8 - d.in.n%8) % 8); pad != 0 {
		u, err := d.in.ReadBits(pad)
		if err != nil {
			return errors.Wrapf(ErrTrailingData, "short padding: %v", err)
		}
		if u != 0 {
			return errors.Wrapf(ErrTrailingData, "padding bits %0*b", int(pad), u)
		}
	}
	if _, err := d.in.ReadBool(); err == nil {
		return errors.Wrapf(ErrTrailingData, "extra bytes after bit %d", d.in.n-1)
	} else if !errors.Is(err, ErrUnderflow) {
		return err
	}
	return nil
}

// Dump writes a programmer-readable debugging dump of the Decoder's current
// state to the given writer.
func (d Decoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Decoder{\n")
	if d.root != nil {
		dumpNode(&buf, d.root, 1)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

func dumpNode(buf *bytes.Buffer, n *Node, depth int) {
	indent := strings.Repeat("\t", depth)
	if n.IsLeaf() {
		fmt.Fprintf(buf, "%s%s\n", indent, n.symbol)
		return
	}
	fmt.Fprintf(buf, "%s*\n", indent)
	dumpNode(buf, n.left, depth+1)
	dumpNode(buf, n.right, depth+1)
}

// countingReader tracks how many bits have been consumed, and reports
// end of input from any BitReader as ErrUnderflow.
type countingReader struct {
	r BitReader
	n uint64
}

func (cr *countingReader) ReadBool() (bool, error) {
	b, err := cr.r.ReadBool()
	if err != nil {
		return false, underflow(err)
	}
	cr.n++
	return b, nil
}

func (cr *countingReader) ReadBits(n uint8) (uint64, error) {
	u, err := cr.r.ReadBits(n)
	if err != nil {
		return 0, underflow(err)
	}
	cr.n += uint64(n)
	return u, nil
}

func underflow(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return errors.WithStack(ErrUnderflow)
	}
	return err
}

var _ BitReader = (*countingReader)(nil)
