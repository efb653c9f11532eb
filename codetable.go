package huffman

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
	"github.com/icza/bitio"
)

// CodeTable maps each Symbol to its Huffman code.  Symbols absent from the
// tree have a zero-length code.
type CodeTable struct {
	codes   [NumSymbols]Code
	count   int
	minSize byte
	maxSize byte
}

// Generate derives the code of every leaf in t.  The code of a leaf is the
// path from the root to it, a 0 bit for each step to a zero-child and a 1 bit
// for each step to a one-child.  Each call returns a new table.
func Generate(t *Tree) *CodeTable {
	ct := new(CodeTable)

	// Walk the tree with an explicit stack.  Pushing the one-child before
	// the zero-child makes the walk visit zero-children first.

	type stackItem struct {
		index NodeIndex
		code  Code
	}

	stack := make([]stackItem, 0, t.Len())
	stack = append(stack, stackItem{index: t.root})
	for len(stack) != 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		node := t.nodes[top.index]
		if node.IsLeaf() {
			ct.record(node.Symbol, top.code)
			continue
		}
		if node.One != NoNode {
			stack = append(stack, stackItem{node.One, top.code.Append(1)})
		}
		if node.Zero != NoNode {
			stack = append(stack, stackItem{node.Zero, top.code.Append(0)})
		}
	}
	return ct
}

func (ct *CodeTable) record(symbol Symbol, hc Code) {
	assert.Assertf(hc.Size != 0, "symbol %d has an empty code", symbol)
	assert.Assertf(ct.codes[symbol].Size == 0, "symbol %d appears twice in the tree", symbol)

	ct.codes[symbol] = hc
	if ct.count == 0 {
		ct.minSize = hc.Size
		ct.maxSize = hc.Size
	} else if ct.minSize > hc.Size {
		ct.minSize = hc.Size
	} else if ct.maxSize < hc.Size {
		ct.maxSize = hc.Size
	}
	ct.count++
}

// Encode returns the code for symbol.  The code is empty if symbol does not
// appear in the tree.
func (ct *CodeTable) Encode(symbol Symbol) Code {
	return ct.codes[symbol]
}

// Has reports whether symbol has a code.
func (ct *CodeTable) Has(symbol Symbol) bool {
	return ct.codes[symbol].Size != 0
}

// Len returns the number of symbols with a code.
func (ct *CodeTable) Len() int {
	return ct.count
}

// MinSize is the bit length of the shortest code.
func (ct *CodeTable) MinSize() byte {
	return ct.minSize
}

// MaxSize is the bit length of the longest code.
func (ct *CodeTable) MaxSize() byte {
	return ct.maxSize
}

// SizeBySymbol returns an array containing the bit length for each Symbol in
// the alphabet, 0 for symbols without a code.
func (ct *CodeTable) SizeBySymbol() []byte {
	out := make([]byte, NumSymbols)
	for symbol := range ct.codes {
		out[symbol] = ct.codes[symbol].Size
	}
	return out
}

// EncodeBits concatenates the codes of every byte of data, in order.  It
// fails with ErrUnknownSymbol if a byte of data has no code.
func (ct *CodeTable) EncodeBits(data []byte) (BitString, error) {
	var buf bytes.Buffer
	buf.Grow(len(data) * int(ct.maxSize) / 8)

	var size int
	w := bitio.NewWriter(&buf)
	for offset, b := range data {
		hc := ct.codes[b]
		if hc.Size == 0 {
			return BitString{}, fmt.Errorf("%w: byte %d at offset %d", ErrUnknownSymbol, b, offset)
		}
		if err := writeCode(w, hc); err != nil {
			return BitString{}, err
		}
		size += int(hc.Size)
	}
	if err := w.Close(); err != nil {
		return BitString{}, err
	}
	return BitString{data: buf.Bytes(), size: size}, nil
}

// Dump writes a programmer-readable debugging dump of the CodeTable's
// current state to the given writer.
func (ct *CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", ct.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", ct.maxSize)
	for symbol := range ct.codes {
		hc := ct.codes[symbol]
		if hc.Size != 0 {
			fmt.Fprintf(&buf, "\tEncode(%d) = %s\n", symbol, hc)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

func writeCode(w *bitio.Writer, hc Code) error {
	remaining := uint(hc.Size)
	for word := 0; remaining > 0; word++ {
		n := minUint(remaining, 64)
		if err := w.WriteBits(hc.Bits[word]>>(64-n), uint8(n)); err != nil {
			return err
		}
		remaining -= n
	}
	return nil
}
