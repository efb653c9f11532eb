package huffman

import (
	"encoding/binary"
	"fmt"

	"github.com/chronos-tachyon/assert"
)

// containerMagic identifies a serialized Container.
const containerMagic = "HUF\x01"

// Tags of the pre-order tree encoding.
const (
	tagInternal byte = 0x00 // followed by the zero-child, then the one-child
	tagLeaf     byte = 0x01 // followed by the symbol
	tagSingle   byte = 0x02 // root of a one-symbol tree; followed by the symbol
)

// Container is the unit written to disk: the code tree, the length of the
// original input, and the packed payload produced by Pack.
type Container struct {
	Tree    *Tree
	Length  uint64
	Payload []byte
}

// Serialize encodes c as:
//
//     magic "HUF\x01"
//     tree, pre-order (see tagInternal, tagLeaf, tagSingle)
//     uvarint original length
//     uvarint payload length
//     payload
//
// Frequencies are not stored.
//
func Serialize(c Container) []byte {
	out := make([]byte, 0, len(containerMagic)+2*c.Tree.Len()+2*binary.MaxVarintLen64+len(c.Payload))
	out = append(out, containerMagic...)
	out = appendTree(out, c.Tree)
	out = binary.AppendUvarint(out, c.Length)
	out = binary.AppendUvarint(out, uint64(len(c.Payload)))
	out = append(out, c.Payload...)
	return out
}

// Deserialize is the inverse of Serialize.  It fails with ErrCorruptContainer
// if data does not hold exactly one well-formed container.  The returned
// Payload aliases data.
func Deserialize(data []byte) (Container, error) {
	if len(data) < len(containerMagic) || string(data[:len(containerMagic)]) != containerMagic {
		return Container{}, fmt.Errorf("%w: bad magic", ErrCorruptContainer)
	}

	p := treeParser{data: data, pos: len(containerMagic)}
	tree, err := p.parse()
	if err != nil {
		return Container{}, err
	}

	length, err := p.uvarint("original length")
	if err != nil {
		return Container{}, err
	}

	payloadLen, err := p.uvarint("payload length")
	if err != nil {
		return Container{}, err
	}

	remaining := uint64(len(data) - p.pos)
	if payloadLen != remaining {
		return Container{}, fmt.Errorf("%w: size mismatch: header says %d payload bytes, found %d", ErrCorruptContainer, payloadLen, remaining)
	}

	return Container{
		Tree:    tree,
		Length:  length,
		Payload: data[p.pos:],
	}, nil
}

func appendTree(out []byte, t *Tree) []byte {
	root := t.nodes[t.root]
	if root.One == NoNode {
		leaf := t.nodes[root.Zero]
		assert.Assertf(leaf.IsLeaf(), "single-child root %d has non-leaf child %d", t.root, root.Zero)
		return append(out, tagSingle, byte(leaf.Symbol))
	}
	return appendNode(out, t, t.root)
}

func appendNode(out []byte, t *Tree, index NodeIndex) []byte {
	node := t.nodes[index]
	if node.IsLeaf() {
		return append(out, tagLeaf, byte(node.Symbol))
	}
	out = append(out, tagInternal)
	out = appendNode(out, t, node.Zero)
	out = appendNode(out, t, node.One)
	return out
}

type treeParser struct {
	data []byte
	pos  int
	tree *Tree
	seen [NumSymbols]bool
}

func (p *treeParser) parse() (*Tree, error) {
	p.tree = &Tree{root: NoNode}

	offset := p.pos
	tag, err := p.byte("root tag")
	if err != nil {
		return nil, err
	}

	switch tag {
	case tagSingle:
		symbol, err := p.byte("symbol")
		if err != nil {
			return nil, err
		}
		leaf := p.tree.addLeaf(Symbol(symbol), 0)
		p.tree.root = p.tree.addInternal(leaf, NoNode, 0)
		return p.tree, nil

	case tagLeaf:
		return nil, fmt.Errorf("%w: root at offset %d is a bare leaf", ErrCorruptContainer, offset)
	}

	p.pos = offset
	root, err := p.node(0)
	if err != nil {
		return nil, err
	}
	p.tree.root = root
	return p.tree, nil
}

func (p *treeParser) node(depth int) (NodeIndex, error) {
	offset := p.pos
	if depth > maxBitsPerCode {
		return NoNode, fmt.Errorf("%w: tree at offset %d is deeper than %d levels", ErrCorruptContainer, offset, maxBitsPerCode)
	}

	tag, err := p.byte("node tag")
	if err != nil {
		return NoNode, err
	}

	switch tag {
	case tagLeaf:
		symbol, err := p.byte("symbol")
		if err != nil {
			return NoNode, err
		}
		if p.seen[symbol] {
			return NoNode, fmt.Errorf("%w: duplicate symbol %d at offset %d", ErrCorruptContainer, symbol, offset)
		}
		p.seen[symbol] = true
		return p.tree.addLeaf(Symbol(symbol), 0), nil

	case tagInternal:
		zero, err := p.node(depth + 1)
		if err != nil {
			return NoNode, err
		}
		one, err := p.node(depth + 1)
		if err != nil {
			return NoNode, err
		}
		return p.tree.addInternal(zero, one, 0), nil

	default:
		return NoNode, fmt.Errorf("%w: invalid node tag 0x%02x at offset %d", ErrCorruptContainer, tag, offset)
	}
}

func (p *treeParser) byte(what string) (byte, error) {
	if p.pos >= len(p.data) {
		return 0, fmt.Errorf("%w: truncated at offset %d while reading %s", ErrCorruptContainer, p.pos, what)
	}
	b := p.data[p.pos]
	p.pos++
	return b, nil
}

func (p *treeParser) uvarint(what string) (uint64, error) {
	x, n := binary.Uvarint(p.data[p.pos:])
	if n <= 0 {
		return 0, fmt.Errorf("%w: invalid %s at offset %d", ErrCorruptContainer, what, p.pos)
	}
	p.pos += n
	return x, nil
}
