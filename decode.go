package huffman

import (
	"bytes"
	"fmt"

	"github.com/icza/bitio"
)

// Decode walks the tree one bit at a time, starting from the root.  Each time
// the walk lands on a leaf, that leaf's symbol is emitted and the walk
// restarts from the root.
//
// Decode fails with ErrMalformedStream if bs ends while the walk is between
// the root and a leaf, or if a bit leads to a child that does not exist.
//
func (t *Tree) Decode(bs BitString) ([]byte, error) {
	out := make([]byte, 0, bs.size)
	r := bitio.NewReader(bytes.NewReader(bs.data))

	cursor := t.root
	for i := 0; i < bs.size; i++ {
		one, err := r.ReadBool()
		if err != nil {
			return nil, fmt.Errorf("%w: reading bit %d: %v", ErrMalformedStream, i, err)
		}

		var bit uint
		if one {
			bit = 1
		}

		next := t.nodes[cursor].Child(bit)
		if next == NoNode {
			return nil, fmt.Errorf("%w: bit %d selects a missing child of node %d", ErrMalformedStream, i, cursor)
		}

		cursor = next
		if node := t.nodes[cursor]; node.IsLeaf() {
			out = append(out, byte(node.Symbol))
			cursor = t.root
		}
	}

	if cursor != t.root {
		return nil, fmt.Errorf("%w: stream ends inside a code after %d bits", ErrMalformedStream, bs.size)
	}
	return out, nil
}
