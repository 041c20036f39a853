// Package huffman implements a self-describing Huffman text codec.
//
// The container produced by Encode holds a pre-order serialization of the
// code tree, followed by the code of each input symbol and finally the code
// of the EndOfStream sentinel, zero-padded to a byte boundary.  Decode
// rebuilds the tree from the container itself, so no side channel is needed.
//
// Container grammar, bits are most significant first within each byte:
//
//     Container := Node Code* SentinelCode Padding
//     Node      := '0' Node Node | '1' Symbol16
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman
