package huffman

import (
	"container/heap"
	"fmt"

	"github.com/chronos-tachyon/assert"
	"github.com/pkg/errors"
)

// maxLeaves is the number of distinct Symbols: every 16-bit code unit except
// the sentinel's, plus EndOfStream itself.
const maxLeaves = 1 << SymbolBits

// FrequencyTable maps each Symbol to its number of occurrences.
type FrequencyTable map[Symbol]uint64

// CountFrequencies tallies the occurrences of each code unit in units.
func CountFrequencies(units []uint16) FrequencyTable {
	freq := make(FrequencyTable)
	for _, unit := range units {
		freq[RealSymbol(unit)]++
	}
	return freq
}

// Node is one node of an immutable code tree.  A leaf carries a Symbol; an
// internal node carries exactly two children and no Symbol.
type Node struct {
	symbol Symbol
	weight uint64
	left   *Node
	right  *Node
}

func newLeaf(symbol Symbol, weight uint64) *Node {
	return &Node{symbol: symbol, weight: weight}
}

func newInternal(left *Node, right *Node) *Node {
	return &Node{weight: left.weight + right.weight, left: left, right: right}
}

// IsLeaf returns true iff this node has no children.
func (n *Node) IsLeaf() bool {
	return n.left == nil
}

// Symbol returns the Symbol of a leaf.
func (n *Node) Symbol() Symbol {
	assert.Assertf(n.IsLeaf(), "internal node has no symbol")
	return n.symbol
}

// Weight is the total frequency of every Symbol below this node.  Trees
// rebuilt from a container have weight 0 everywhere.
func (n *Node) Weight() uint64 {
	return n.weight
}

// Left returns the child reached by a 0 bit, or nil for a leaf.
func (n *Node) Left() *Node {
	return n.left
}

// Right returns the child reached by a 1 bit, or nil for a leaf.
func (n *Node) Right() *Node {
	return n.right
}

// String returns the string representation of this node alone.
func (n *Node) String() string {
	if n.IsLeaf() {
		return fmt.Sprintf("Leaf(%s, %d)", n.symbol, n.weight)
	}
	return fmt.Sprintf("Internal(%d)", n.weight)
}

var _ fmt.Stringer = (*Node)(nil)

// BuildTree builds the code tree for the given frequencies, plus one
// EndOfStream leaf of weight 0.
//
// The two lightest trees of the forest are merged until one remains, the
// first one removed becoming the left child.  Ties in weight go to real
// Symbols in ascending code unit order, then to EndOfStream and internal
// nodes in order of creation, so the result does not depend on map order.
//
func BuildTree(freq FrequencyTable) *Node {
	h := forestHeap{list: make([]forestItem, 0, len(freq)+1)}
	for symbol, count := range freq {
		assert.Assertf(!symbol.IsEndOfStream(), "frequency table must not count EndOfStream")
		h.list = append(h.list, forestItem{node: newLeaf(symbol, count), rank: symbol.rank()})
	}
	h.list = append(h.list, forestItem{node: newLeaf(EndOfStream, 0), rank: sentinelRank})
	h.Init()

	seq := uint64(1)
	for h.Len() > 1 {
		a := heap.Pop(&h).(forestItem)
		b := heap.Pop(&h).(forestItem)
		heap.Push(&h, forestItem{node: newInternal(a.node, b.node), rank: sentinelRank, seq: seq})
		seq++
	}
	return heap.Pop(&h).(forestItem).node
}

// CodeTable maps each Symbol in a tree to its path from the root.
type CodeTable map[Symbol]Code

// BuildCodeTable derives the path of every leaf of root.  A root that is
// itself a leaf gets the empty path.
func BuildCodeTable(root *Node) CodeTable {
	table := make(CodeTable)
	var walk func(n *Node, path Code)
	walk = func(n *Node, path Code) {
		if n.IsLeaf() {
			table[n.symbol] = path
			return
		}
		walk(n.left, path.Extend(false))
		walk(n.right, path.Extend(true))
	}
	walk(root, Code{})
	return table
}

// writeTree serializes the tree in pre-order: '0' Left Right for an internal
// node, '1' Symbol16 for a leaf.
func writeTree(w BitWriter, n *Node) error {
	if n.IsLeaf() {
		if err := w.WriteBool(true); err != nil {
			return err
		}
		return w.WriteBits(uint64(n.symbol.wire()), SymbolBits)
	}
	if err := w.WriteBool(false); err != nil {
		return err
	}
	if err := writeTree(w, n.left); err != nil {
		return err
	}
	return writeTree(w, n.right)
}

// readTree reverses writeTree, consuming exactly the bits it wrote.
func readTree(r BitReader) (*Node, error) {
	tr := treeReader{r: r, seen: make(map[Symbol]struct{})}
	root, err := tr.node(0)
	if err != nil {
		return nil, err
	}
	if _, found := tr.seen[EndOfStream]; !found {
		return nil, errors.Wrap(ErrMalformedHeader, "tree has no end-of-stream leaf")
	}
	return root, nil
}

type treeReader struct {
	r     BitReader
	seen  map[Symbol]struct{}
	nodes uint64
}

func (tr *treeReader) node(depth uint) (*Node, error) {
	if depth >= maxLeaves {
		return nil, errors.Wrapf(ErrMalformedHeader, "tree nested deeper than %d", maxLeaves)
	}
	index := tr.nodes
	tr.nodes++

	isLeaf, err := tr.r.ReadBool()
	if err != nil {
		return nil, errors.Wrapf(ErrMalformedHeader, "node %d: %v", index, err)
	}

	if !isLeaf {
		left, err := tr.node(depth + 1)
		if err != nil {
			return nil, err
		}
		right, err := tr.node(depth + 1)
		if err != nil {
			return nil, err
		}
		return newInternal(left, right), nil
	}

	u, err := tr.r.ReadBits(SymbolBits)
	if err != nil {
		return nil, errors.Wrapf(ErrMalformedHeader, "leaf symbol at node %d: %v", index, err)
	}
	symbol := symbolFromWire(uint16(u))
	if _, dupe := tr.seen[symbol]; dupe {
		return nil, errors.Wrapf(ErrMalformedHeader, "duplicate leaf %s at node %d", symbol, index)
	}
	tr.seen[symbol] = struct{}{}
	return newLeaf(symbol, 0), nil
}

// type forestItem + type forestHeap {{{

type forestItem struct {
	node *Node
	rank uint32
	seq  uint64
}

type forestHeap struct {
	list []forestItem
}

func (h *forestHeap) Init() {
	heap.Init(h)
}

func (h *forestHeap) Len() int {
	return len(h.list)
}

func (h *forestHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *forestHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.node.weight != b.node.weight {
		return a.node.weight < b.node.weight
	}
	if a.rank != b.rank {
		return a.rank < b.rank
	}
	return a.seq < b.seq
}

func (h *forestHeap) Push(x interface{}) {
	h.list = append(h.list, x.(forestItem))
}

func (h *forestHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = forestItem{}
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*forestHeap)(nil)

// }}}
