package huffman

import (
	"testing"
)

func TestCode(t *testing.T) {
	hc := Code{}.Extend(true).Extend(false).Extend(true)

	if expect, actual := "\"101\"", hc.String(); expect != actual {
		t.Errorf("wrong string:\n\texpect: %s\n\tactual: %s", expect, actual)
	}
	if hc != MakeCode(3, 0x5) {
		t.Errorf("expected %#v, got %#v", MakeCode(3, 0x5), hc)
	}
	for i, expect := range []bool{true, false, true} {
		if actual := hc.Bit(byte(i)); actual != expect {
			t.Errorf("bit %d: expected %v, got %v", i, expect, actual)
		}
	}
}

func TestCode_HasPrefix(t *testing.T) {
	type testRow struct {
		code   Code
		prefix Code
		expect bool
	}

	testData := [...]testRow{
		{code: MakeCode(3, 0x5), prefix: Code{}, expect: true},
		{code: MakeCode(3, 0x5), prefix: MakeCode(1, 0x1), expect: true},
		{code: MakeCode(3, 0x5), prefix: MakeCode(2, 0x2), expect: true},
		{code: MakeCode(3, 0x5), prefix: MakeCode(2, 0x3), expect: false},
		{code: MakeCode(3, 0x5), prefix: MakeCode(3, 0x5), expect: true},
		{code: MakeCode(2, 0x2), prefix: MakeCode(3, 0x5), expect: false},
	}
	for _, row := range testData {
		t.Run(row.code.String()+"/"+row.prefix.String(), func(t *testing.T) {
			if actual := row.code.HasPrefix(row.prefix); actual != row.expect {
				t.Errorf("expected %v, got %v", row.expect, actual)
			}
		})
	}
}

func TestSymbol(t *testing.T) {
	if s := RealSymbol('a'); s.String() != "U+0061" || s.CodeUnit() != 'a' || s.IsEndOfStream() {
		t.Errorf("wrong real symbol: %s", s)
	}
	if EndOfStream.String() != "EOS" || !EndOfStream.IsEndOfStream() {
		t.Errorf("wrong sentinel: %s", EndOfStream)
	}
	if symbolFromWire(0xffff) != EndOfStream {
		t.Errorf("wire value 0xffff must decode to EOS")
	}
	if RealSymbol(0xfffe).rank() >= EndOfStream.rank() {
		t.Errorf("EOS must rank after every real symbol")
	}
}
