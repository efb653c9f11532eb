package huffman

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// maxBitsPerCode is the longest code a tree over a byte alphabet can produce:
// 256 leaves in a degenerate chain are at most 255 levels deep.
const maxBitsPerCode = NumSymbols - 1

// Code represents a sequence of bits.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  The most significant bit
	// of Bits[0] is the first bit; bits past Size are always zero.
	Bits [4]uint64
}

// ParseCode parses a string of '0' and '1' characters into a Code.
func ParseCode(str string) (Code, error) {
	if len(str) > maxBitsPerCode {
		return Code{}, fmt.Errorf("code %q is too long: %d bits, max %d", str, len(str), maxBitsPerCode)
	}
	var hc Code
	for i := 0; i < len(str); i++ {
		switch str[i] {
		case '0':
			hc = hc.Append(0)
		case '1':
			hc = hc.Append(1)
		default:
			return Code{}, fmt.Errorf("invalid character %q at index %d in code %q", str[i], i, str)
		}
	}
	return hc, nil
}

// Bit returns the i'th bit of the code, counting from the first.
func (hc Code) Bit(i int) uint {
	assert.Assertf(i >= 0 && i < int(hc.Size), "bit index %d out of range [0, %d)", i, hc.Size)
	return uint(hc.Bits[i>>6]>>(63-uint(i&63))) & 1
}

// Append returns hc extended by one bit.
func (hc Code) Append(bit uint) Code {
	assert.Assertf(hc.Size < maxBitsPerCode, "code %s cannot grow past %d bits", hc, maxBitsPerCode)
	if bit != 0 {
		hc.Bits[hc.Size>>6] |= uint64(1) << (63 - uint(hc.Size&63))
	}
	hc.Size++
	return hc
}

// HasPrefix reports whether prefix is a prefix of hc.  Every code has the
// empty code as a prefix, and every code is a prefix of itself.
func (hc Code) HasPrefix(prefix Code) bool {
	if prefix.Size > hc.Size {
		return false
	}
	remaining := uint(prefix.Size)
	for word := 0; remaining > 0; word++ {
		n := remaining
		if n > 64 {
			n = 64
		}
		mask := ^uint64(0) << (64 - n)
		if hc.Bits[word]&mask != prefix.Bits[word]&mask {
			return false
		}
		remaining -= n
	}
	return true
}

// Digits returns the code as a string of '0' and '1' characters.
func (hc Code) Digits() string {
	var sb strings.Builder
	sb.Grow(int(hc.Size))
	for i := 0; i < int(hc.Size); i++ {
		sb.WriteByte('0' + byte(hc.Bit(i)))
	}
	return sb.String()
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	if hc.Size == 0 {
		return "\"\""
	}
	return strconv.Quote(hc.Digits())
}

var _ fmt.Stringer = Code{}
