package huffman

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/chronos-tachyon/assert"
	"github.com/icza/bitio"
)

// BitString is an ordered sequence of bits.  Bits are packed MSB-first into
// bytes; the bits of the last byte past Len are always zero.
type BitString struct {
	data []byte
	size int
}

// NewBitString returns the first size bits of data as a BitString.  The
// bytes are copied.
func NewBitString(data []byte, size int) BitString {
	assert.Assertf(size >= 0 && size <= 8*len(data), "size %d out of range [0, %d]", size, 8*len(data))
	n := bytesForBits(size)
	out := make([]byte, n)
	copy(out, data[:n])
	if rem := size & 7; rem != 0 {
		out[n-1] &= byte(0xff) << (8 - rem)
	}
	return BitString{data: out, size: size}
}

// ParseBitString parses a string of '0' and '1' characters into a BitString.
func ParseBitString(str string) (BitString, error) {
	out := make([]byte, bytesForBits(len(str)))
	for i := 0; i < len(str); i++ {
		switch str[i] {
		case '0':
		case '1':
			out[i>>3] |= 0x80 >> uint(i&7)
		default:
			return BitString{}, fmt.Errorf("invalid character %q at index %d in bit string", str[i], i)
		}
	}
	return BitString{data: out, size: len(str)}, nil
}

// Len returns the number of bits.
func (bs BitString) Len() int {
	return bs.size
}

// At returns the i'th bit.
func (bs BitString) At(i int) uint {
	assert.Assertf(i >= 0 && i < bs.size, "bit index %d out of range [0, %d)", i, bs.size)
	return uint(bs.data[i>>3]>>(7-uint(i&7))) & 1
}

// Bytes returns the packed bits, zero-padded to a whole number of bytes.  The
// caller must not modify the result.
func (bs BitString) Bytes() []byte {
	return bs.data[:bytesForBits(bs.size)]
}

// Equal reports whether bs and other hold the same bits.
func (bs BitString) Equal(other BitString) bool {
	return bs.size == other.size && bytes.Equal(bs.Bytes(), other.Bytes())
}

// String returns the bits as a string of '0' and '1' characters.
func (bs BitString) String() string {
	var sb strings.Builder
	sb.Grow(bs.size)
	for i := 0; i < bs.size; i++ {
		sb.WriteByte('0' + byte(bs.At(i)))
	}
	return sb.String()
}

// Pack converts bs into a payload: one header byte holding the number of
// padding bits, followed by the bits of bs packed MSB-first and then the
// padding.  The padding is 8 - Len()%8 zero bits, so a bit string that is
// already byte-aligned gains a whole zero byte.
func Pack(bs BitString) []byte {
	extra := 8 - bs.size%8

	buf := bytes.NewBuffer(make([]byte, 0, 1+bytesForBits(bs.size+extra)))
	buf.WriteByte(byte(extra))

	w := bitio.NewWriter(buf)
	err := writeBitString(w, bs)
	if err == nil {
		err = w.WriteBits(0, uint8(extra))
	}
	if err == nil {
		err = w.Close()
	}
	assert.Assertf(err == nil, "writing to bytes.Buffer failed: %v", err)
	return buf.Bytes()
}

// Unpack is the inverse of Pack.  It reads the padding length from the
// header byte, then returns the remaining bits minus the padding.
//
// Unpack fails with ErrCorruptContainer if the payload is empty, if the
// padding length exceeds 8 or the number of available bits, or if any
// padding bit is set.
//
func Unpack(payload []byte) (BitString, error) {
	if len(payload) == 0 {
		return BitString{}, fmt.Errorf("%w: payload is missing its padding header", ErrCorruptContainer)
	}

	extra := int(payload[0])
	if extra > 8 {
		return BitString{}, fmt.Errorf("%w: invalid padding length: got %d, max 8", ErrCorruptContainer, extra)
	}

	body := payload[1:]
	size := 8*len(body) - extra
	if size < 0 {
		return BitString{}, fmt.Errorf("%w: padding length %d exceeds %d payload bits", ErrCorruptContainer, extra, 8*len(body))
	}

	for i := size; i < 8*len(body); i++ {
		if (body[i>>3]>>(7-uint(i&7)))&1 != 0 {
			return BitString{}, fmt.Errorf("%w: padding bit %d is set", ErrCorruptContainer, i-size)
		}
	}

	return NewBitString(body, size), nil
}

func writeBitString(w *bitio.Writer, bs BitString) error {
	whole := bs.size >> 3
	if _, err := w.Write(bs.data[:whole]); err != nil {
		return err
	}
	if rem := uint8(bs.size & 7); rem != 0 {
		return w.WriteBits(uint64(bs.data[whole]>>(8-rem)), rem)
	}
	return nil
}
