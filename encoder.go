package huffman

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/pkg/errors"
)

// Encoder holds the code tree and code table for one input.
type Encoder struct {
	root  *Node
	codes CodeTable
}

// Init initializes this Encoder from the frequency of each real Symbol in
// the input.  EndOfStream is added automatically and must not appear in freq.
func (e *Encoder) Init(freq FrequencyTable) {
	root := BuildTree(freq)
	*e = Encoder{
		root:  root,
		codes: BuildCodeTable(root),
	}
}

// Encode returns the path for a Symbol.  The second result is false if the
// Symbol did not occur in the frequencies passed to Init.
func (e Encoder) Encode(symbol Symbol) (Code, bool) {
	hc, found := e.codes[symbol]
	return hc, found
}

// Tree returns the root of the code tree.
func (e Encoder) Tree() *Node {
	return e.root
}

// WriteHeader writes the pre-order serialization of the code tree.
func (e Encoder) WriteHeader(w BitWriter) error {
	return writeTree(w, e.root)
}

// WriteSymbols writes the path of each Symbol, then the path of EndOfStream.
func (e Encoder) WriteSymbols(w BitWriter, symbols []Symbol) error {
	for _, symbol := range symbols {
		hc, found := e.codes[symbol]
		if !found {
			return errors.Errorf("huffman: symbol %s is not in the code table", symbol)
		}
		if err := w.WriteBits(hc.Bits, hc.Size); err != nil {
			return err
		}
	}
	hc := e.codes[EndOfStream]
	if hc.Size == 0 {
		return nil
	}
	return w.WriteBits(hc.Bits, hc.Size)
}

// Dump writes a programmer-readable debugging dump of the Encoder's current
// state to the given writer.
func (e Encoder) Dump(w io.Writer) (int64, error) {
	symbols := make(bySymbol, 0, len(e.codes))
	for symbol := range e.codes {
		symbols = append(symbols, symbol)
	}
	symbols.Sort()

	var buf bytes.Buffer
	buf.WriteString("Encoder{\n")
	for _, symbol := range symbols {
		fmt.Fprintf(&buf, "\tEncode(%s) = %s\n", symbol, e.codes[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// type bySymbol {{{

type bySymbol []Symbol

func (list bySymbol) Len() int {
	return len(list)
}

func (list bySymbol) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list bySymbol) Less(i, j int) bool {
	return list[i].rank() < list[j].rank()
}

func (list bySymbol) Sort() {
	sort.Sort(list)
}

var _ sort.Interface = bySymbol(nil)

// }}}
