package huffman

import (
	"errors"
)

// ErrEmptyInput is returned when compression is requested on zero-length
// data.  No code tree can be built from an empty frequency table.
var ErrEmptyInput = errors.New("huffman: empty input")

// ErrMalformedStream is returned when the payload bits do not decode to a
// whole number of symbols, or decode to the wrong number of symbols.
var ErrMalformedStream = errors.New("huffman: malformed stream")

// ErrCorruptContainer is returned when container bytes cannot be parsed into
// a code tree and a payload.
var ErrCorruptContainer = errors.New("huffman: corrupt container")

// ErrUnknownSymbol is returned when encoding a byte that has no code in the
// table being used.
var ErrUnknownSymbol = errors.New("huffman: symbol has no code")
