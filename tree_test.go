package huffman

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	randSeed   = 0x5a025ca11825a5e7
	iterations = 20
)

func randomText(rng *rand.Rand, n int) string {
	alphabet := []rune("abcdefghij \né世\U0001f600")
	runes := make([]rune, n)
	for i := range runes {
		// Skew the distribution so the tree is not balanced.
		runes[i] = alphabet[rng.Intn(1+rng.Intn(len(alphabet)))]
	}
	return string(runes)
}

func treeFor(t *testing.T, text string) *Node {
	units, err := textToUnits(text)
	require.NoError(t, err)
	return BuildTree(CountFrequencies(units))
}

func checkTree(t *testing.T, n *Node) {
	if n.IsLeaf() {
		return
	}
	require.NotNil(t, n.Left())
	require.NotNil(t, n.Right())
	require.Equal(t, n.Left().Weight()+n.Right().Weight(), n.Weight())
	checkTree(t, n.Left())
	checkTree(t, n.Right())
}

func TestBuildTree_Shape(t *testing.T) {
	root := treeFor(t, "aaab")
	checkTree(t, root)

	require.Equal(t, uint64(4), root.Weight())
	require.True(t, root.Right().IsLeaf())
	require.Equal(t, RealSymbol('a'), root.Right().Symbol())

	inner := root.Left()
	require.False(t, inner.IsLeaf())
	require.True(t, inner.Left().Symbol().IsEndOfStream())
	require.Equal(t, uint64(0), inner.Left().Weight())
	require.Equal(t, RealSymbol('b'), inner.Right().Symbol())
}

func TestBuildTree_SingleSymbol(t *testing.T) {
	root := treeFor(t, "zzzz")
	require.False(t, root.IsLeaf())
	require.True(t, root.Left().Symbol().IsEndOfStream())
	require.Equal(t, RealSymbol('z'), root.Right().Symbol())
}

func TestBuildTree_TieBreak(t *testing.T) {
	// Every weight is 1: real symbols leave the forest in code unit order.
	root := treeFor(t, "dcba")
	table := BuildCodeTable(root)
	require.Equal(t, "\"111\"", table[RealSymbol('a')].String())
	require.Equal(t, "\"00\"", table[RealSymbol('b')].String())
	require.Equal(t, "\"01\"", table[RealSymbol('c')].String())
	require.Equal(t, "\"10\"", table[RealSymbol('d')].String())
	require.Equal(t, "\"110\"", table[EndOfStream].String())
}

func TestBuildTree_Deterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(randSeed))
	for i := 0; i < iterations; i++ {
		text := randomText(rng, 1+rng.Intn(500))
		units, err := textToUnits(text)
		require.NoError(t, err)

		var first BitStream
		require.NoError(t, writeTree(&first, BuildTree(CountFrequencies(units))))

		// Rebuild the frequency table in a different insertion order.
		freq := make(FrequencyTable)
		for j := len(units) - 1; j >= 0; j-- {
			freq[RealSymbol(units[j])]++
		}
		var second BitStream
		require.NoError(t, writeTree(&second, BuildTree(freq)))

		require.Equal(t, first.Bytes(), second.Bytes())
	}
}

func TestBuildCodeTable_PrefixFree(t *testing.T) {
	rng := rand.New(rand.NewSource(randSeed))
	for i := 0; i < iterations; i++ {
		text := randomText(rng, rng.Intn(500))
		root := treeFor(t, text)
		checkTree(t, root)

		table := BuildCodeTable(root)
		units, _ := textToUnits(text)
		for _, unit := range units {
			require.Contains(t, table, RealSymbol(unit))
		}
		require.Contains(t, table, EndOfStream)

		for a, ca := range table {
			for b, cb := range table {
				if a == b {
					continue
				}
				require.Falsef(t, ca.HasPrefix(cb), "%s %s has prefix %s %s", a, ca, b, cb)
			}
		}
	}
}

func TestReadTree_SelfDelimiting(t *testing.T) {
	rng := rand.New(rand.NewSource(randSeed))
	marker := []bool{true, false, false, true, true}
	for i := 0; i < iterations; i++ {
		root := treeFor(t, randomText(rng, rng.Intn(300)))

		var bs BitStream
		require.NoError(t, writeTree(&bs, root))
		bs.Append(marker...)

		rebuilt, err := readTree(&bs)
		require.NoError(t, err)
		require.Equal(t, uint64(len(marker)), bs.Len())
		for _, expect := range marker {
			actual, err := bs.PopBit()
			require.NoError(t, err)
			require.Equal(t, expect, actual)
		}

		expectTable := BuildCodeTable(root)
		actualTable := BuildCodeTable(rebuilt)
		require.Equal(t, expectTable, actualTable)
	}
}
