package huffman

import (
	"fmt"
)

// Compress encodes data into a self-describing container.  It fails with
// ErrEmptyInput if data is empty.
func Compress(data []byte) ([]byte, error) {
	ft := Tally(data)
	tree, err := Build(&ft)
	if err != nil {
		return nil, err
	}

	bits, err := Generate(tree).EncodeBits(data)
	if err != nil {
		return nil, err
	}

	return Serialize(Container{
		Tree:    tree,
		Length:  uint64(len(data)),
		Payload: Pack(bits),
	}), nil
}

// Decompress recovers the original bytes from a container produced by
// Compress.  It fails with ErrCorruptContainer if the container cannot be
// parsed and with ErrMalformedStream if its payload does not decode to
// exactly the recorded number of bytes.
func Decompress(data []byte) ([]byte, error) {
	c, err := Deserialize(data)
	if err != nil {
		return nil, err
	}

	bits, err := Unpack(c.Payload)
	if err != nil {
		return nil, err
	}

	out, err := c.Tree.Decode(bits)
	if err != nil {
		return nil, err
	}

	if uint64(len(out)) != c.Length {
		return nil, fmt.Errorf("%w: decoded %d bytes, expected %d", ErrMalformedStream, len(out), c.Length)
	}
	return out, nil
}

// Stats summarizes a container.
type Stats struct {
	OriginalSize  uint64     `json:"originalSize"`
	ContainerSize int        `json:"containerSize"`
	TreeNodes     int        `json:"treeNodes"`
	PayloadBits   int        `json:"payloadBits"`
	MinCodeSize   byte       `json:"minCodeSize"`
	MaxCodeSize   byte       `json:"maxCodeSize"`
	Codes         []CodeStat `json:"codes"`
}

// CodeStat describes the code assigned to one symbol.
type CodeStat struct {
	Symbol Symbol `json:"symbol"`
	Code   string `json:"code"`
}

// Ratio returns the container size relative to the original size.
func (s Stats) Ratio() float64 {
	if s.OriginalSize == 0 {
		return 0
	}
	return float64(s.ContainerSize) / float64(s.OriginalSize)
}

// Inspect parses a container without decoding its payload and describes its
// code tree.
func Inspect(data []byte) (Stats, error) {
	c, err := Deserialize(data)
	if err != nil {
		return Stats{}, err
	}

	bits, err := Unpack(c.Payload)
	if err != nil {
		return Stats{}, err
	}

	ct := Generate(c.Tree)
	codes := make([]CodeStat, 0, ct.Len())
	for symbol := 0; symbol < NumSymbols; symbol++ {
		if hc := ct.Encode(Symbol(symbol)); hc.Size != 0 {
			codes = append(codes, CodeStat{Symbol: Symbol(symbol), Code: hc.Digits()})
		}
	}

	return Stats{
		OriginalSize:  c.Length,
		ContainerSize: len(data),
		TreeNodes:     c.Tree.Len(),
		PayloadBits:   bits.Len(),
		MinCodeSize:   ct.MinSize(),
		MaxCodeSize:   ct.MaxSize(),
		Codes:         codes,
	}, nil
}
