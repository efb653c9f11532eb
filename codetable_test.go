package huffman

import (
	"bytes"
	"errors"
	"math/rand"
	"strings"
	"testing"
)

func makeTestTable(counts []uint64) *FrequencyTable {
	var ft FrequencyTable
	for symbol, count := range counts {
		ft.Add(Symbol(symbol), count)
	}
	return &ft
}

func TestGenerate(t *testing.T) {
	tree, err := Build(makeTestTable([]uint64{5, 9, 12, 13, 16, 45}))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	ct := Generate(tree)

	expectDump := strings.Join([]string{
		"CodeTable{\n",
		"\tMinSize() = 1\n",
		"\tMaxSize() = 4\n",
		"\tEncode(0) = \"1100\"\n",
		"\tEncode(1) = \"1101\"\n",
		"\tEncode(2) = \"100\"\n",
		"\tEncode(3) = \"101\"\n",
		"\tEncode(4) = \"111\"\n",
		"\tEncode(5) = \"0\"\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = ct.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}

	actualSizes := ct.SizeBySymbol()[:6]
	expectSizes := []byte{4, 4, 3, 3, 3, 1}
	if !bytes.Equal(expectSizes, actualSizes) {
		t.Errorf("wrong sizes:\n\texpect: %#v\n\tactual: %#v", expectSizes, actualSizes)
	}

	if ct.Len() != 6 {
		t.Errorf("expected 6 codes, got %d", ct.Len())
	}
}

func TestGenerate_Example(t *testing.T) {
	ft := Tally([]byte("AAAAABBBCC"))
	tree, err := Build(&ft)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	ct := Generate(tree)

	type testRow struct {
		sym  Symbol
		code string
	}

	testData := [...]testRow{
		{sym: 'A', code: "0"},
		{sym: 'B', code: "11"},
		{sym: 'C', code: "10"},
	}
	for _, row := range testData {
		if actual := ct.Encode(row.sym).Digits(); actual != row.code {
			t.Errorf("Encode(%q): expected %q, got %q", byte(row.sym), row.code, actual)
		}
	}
	if ct.Has('D') {
		t.Errorf("Has('D') = true for a symbol absent from the input")
	}
}

func TestGenerate_SingleSymbol(t *testing.T) {
	ft := Tally([]byte("zzzz"))
	tree, err := Build(&ft)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	ct := Generate(tree)

	if ct.Len() != 1 {
		t.Errorf("expected 1 code, got %d", ct.Len())
	}
	if actual := ct.Encode('z'); actual.Digits() != "0" {
		t.Errorf("expected code \"0\", got %s", actual)
	}
}

func TestGenerate_FreshTable(t *testing.T) {
	ftA := Tally([]byte("abcabc"))
	treeA, _ := Build(&ftA)
	ftB := Tally([]byte("xxy"))
	treeB, _ := Build(&ftB)

	ctA := Generate(treeA)
	ctB := Generate(treeB)

	if ctB.Len() != 2 {
		t.Errorf("expected 2 codes, got %d", ctB.Len())
	}
	for _, symbol := range []Symbol{'a', 'b', 'c'} {
		if ctB.Has(symbol) {
			t.Errorf("second table leaked symbol %q from the first", byte(symbol))
		}
		if !ctA.Has(symbol) {
			t.Errorf("first table lost symbol %q", byte(symbol))
		}
	}
}

func TestGenerate_PrefixFree(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 50; trial++ {
		var ft FrequencyTable
		numSymbols := 2 + rng.Intn(NumSymbols-1)
		for _, symbol := range rng.Perm(NumSymbols)[:numSymbols] {
			ft.Add(Symbol(symbol), 1+uint64(rng.Intn(1000)))
		}

		tree, err := Build(&ft)
		if err != nil {
			t.Fatalf("trial %d: Build failed: %v", trial, err)
		}
		ct := Generate(tree)
		if ct.Len() != numSymbols {
			t.Fatalf("trial %d: expected %d codes, got %d", trial, numSymbols, ct.Len())
		}

		symbols := ft.Symbols()
		for _, a := range symbols {
			for _, b := range symbols {
				if a == b {
					continue
				}
				if ct.Encode(a).HasPrefix(ct.Encode(b)) {
					t.Fatalf("trial %d: code %s of %d has prefix %s of %d", trial, ct.Encode(a), a, ct.Encode(b), b)
				}
			}
		}
	}
}

func TestCodeTable_EncodeBits(t *testing.T) {
	ft := Tally([]byte("AAAAABBBCC"))
	tree, _ := Build(&ft)
	ct := Generate(tree)

	bits, err := ct.EncodeBits([]byte("AAAAABBBCC"))
	if err != nil {
		t.Fatalf("EncodeBits failed: %v", err)
	}
	if expect, actual := "000001111111010", bits.String(); expect != actual {
		t.Errorf("wrong bits:\n\texpect: %s\n\tactual: %s", expect, actual)
	}

	_, err = ct.EncodeBits([]byte("ABD"))
	if !errors.Is(err, ErrUnknownSymbol) {
		t.Errorf("expected ErrUnknownSymbol, got %v", err)
	}
}
