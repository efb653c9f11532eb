package huffman

import (
	"bytes"
	"container/heap"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// NodeIndex addresses a Node inside its Tree.
type NodeIndex int32

// NoNode is the NodeIndex of a missing child.
const NoNode = NodeIndex(-1)

// maxNodes is the size of the largest strict binary tree with one leaf per
// Symbol.
const maxNodes = 2*NumSymbols - 1

// NodeKind distinguishes leaves from internal nodes.
type NodeKind byte

const (
	// LeafNode carries a Symbol.
	LeafNode NodeKind = iota

	// InternalNode carries two children.
	InternalNode
)

// Node is one element of a Tree.
//
// For a LeafNode, Symbol is meaningful and Zero/One are NoNode.  For an
// InternalNode, Symbol is zero and Zero/One index the children reached by a
// 0 bit and a 1 bit respectively.
//
// Freq is the aggregate frequency of the subtree.  Trees read back by
// Deserialize do not carry frequencies, so Freq is zero for their nodes.
//
type Node struct {
	Kind   NodeKind
	Symbol Symbol
	Freq   uint64
	Zero   NodeIndex
	One    NodeIndex
}

// IsLeaf reports whether n is a LeafNode.
func (n Node) IsLeaf() bool {
	return n.Kind == LeafNode
}

// Child returns the child reached by the given bit.
func (n Node) Child(bit uint) NodeIndex {
	if bit == 0 {
		return n.Zero
	}
	return n.One
}

// String returns the string representation of this Node.
func (n Node) String() string {
	if n.IsLeaf() {
		return fmt.Sprintf("Leaf{Symbol: %d, Freq: %d}", n.Symbol, n.Freq)
	}
	return fmt.Sprintf("Internal{Zero: %d, One: %d, Freq: %d}", n.Zero, n.One, n.Freq)
}

// Tree is a Huffman code tree.  Nodes live in a single slice and refer to
// their children by index; every node except the root has exactly one
// parent.
//
// A Tree is read-only once built, and may be shared between goroutines.
//
type Tree struct {
	nodes []Node
	root  NodeIndex
}

// Build constructs the Huffman code tree for the given frequencies.
//
// Each symbol with a non-zero count becomes a leaf.  The two lowest-frequency
// nodes are repeatedly merged under a new internal node, the first one popped
// becoming its zero-child, until a single root remains.  Frequency ties are
// broken by insertion order, so the result depends only on ft.
//
// A table with a single symbol produces a root whose only child is that
// symbol's leaf on the 0 side, so that the symbol's code is "0".  An empty
// table yields ErrEmptyInput.
//
func Build(ft *FrequencyTable) (*Tree, error) {
	symbols := ft.Symbols()
	numLeaves := len(symbols)
	if numLeaves == 0 {
		return nil, ErrEmptyInput
	}

	t := &Tree{
		nodes: make([]Node, 0, 2*numLeaves),
		root:  NoNode,
	}

	// Step 1: one leaf per symbol, in ascending symbol order.

	h := freqHeap{make([]indexAndFreq, 0, numLeaves)}
	for _, symbol := range symbols {
		freq := ft.Count(symbol)
		index := t.addLeaf(symbol, freq)
		h.list = append(h.list, indexAndFreq{index, freq})
	}

	if numLeaves == 1 {
		leaf := h.list[0]
		t.root = t.addInternal(leaf.index, NoNode, leaf.freq)
		return t, nil
	}

	// Step 2: merge the two cheapest nodes until one remains.  A merged
	// node is appended to the arena, so its index doubles as its
	// insertion sequence number for tie-breaking.

	h.Init()
	for h.Len() > 1 {
		a := heap.Pop(&h).(indexAndFreq)
		b := heap.Pop(&h).(indexAndFreq)

		freqSum := a.freq + b.freq
		assert.Assertf(freqSum >= a.freq, "frequency overflow: %d + %d", a.freq, b.freq)

		index := t.addInternal(a.index, b.index, freqSum)
		heap.Push(&h, indexAndFreq{index, freqSum})
	}

	t.root = heap.Pop(&h).(indexAndFreq).index
	return t, nil
}

// Root returns the index of the root node.
func (t *Tree) Root() NodeIndex {
	return t.root
}

// Node returns the node at the given index.
func (t *Tree) Node(index NodeIndex) Node {
	return t.nodes[index]
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// NumLeaves returns the number of leaves, i.e. the number of symbols with a
// code.
func (t *Tree) NumLeaves() int {
	var n int
	for _, node := range t.nodes {
		if node.IsLeaf() {
			n++
		}
	}
	return n
}

// Dump writes a programmer-readable debugging dump of the Tree to the given
// writer.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	fmt.Fprintf(&buf, "\tRoot() = %d\n", t.root)
	for index, node := range t.nodes {
		fmt.Fprintf(&buf, "\tNode(%d) = %s\n", index, node)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// String returns a short description of the Tree.
func (t *Tree) String() string {
	return fmt.Sprintf("(Huffman tree with %d symbols in %d nodes)", t.NumLeaves(), t.Len())
}

var _ fmt.Stringer = (*Tree)(nil)

func (t *Tree) addLeaf(symbol Symbol, freq uint64) NodeIndex {
	assert.Assertf(len(t.nodes) < maxNodes, "tree already holds %d nodes", len(t.nodes))
	index := NodeIndex(len(t.nodes))
	t.nodes = append(t.nodes, Node{
		Kind:   LeafNode,
		Symbol: symbol,
		Freq:   freq,
		Zero:   NoNode,
		One:    NoNode,
	})
	return index
}

func (t *Tree) addInternal(zero NodeIndex, one NodeIndex, freq uint64) NodeIndex {
	assert.Assertf(len(t.nodes) < maxNodes, "tree already holds %d nodes", len(t.nodes))
	index := NodeIndex(len(t.nodes))
	t.nodes = append(t.nodes, Node{
		Kind: InternalNode,
		Freq: freq,
		Zero: zero,
		One:  one,
	})
	return index
}

// type indexAndFreq + type freqHeap {{{

type indexAndFreq struct {
	index NodeIndex
	freq  uint64
}

type freqHeap struct {
	list []indexAndFreq
}

func (h *freqHeap) Init() {
	heap.Init(h)
}

func (h *freqHeap) Len() int {
	return len(h.list)
}

func (h *freqHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *freqHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.freq != b.freq {
		return a.freq < b.freq
	}
	return a.index < b.index
}

func (h *freqHeap) Push(x interface{}) {
	h.list = append(h.list, x.(indexAndFreq))
}

func (h *freqHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*freqHeap)(nil)

// }}}
