package huffman

func minUint(a, b uint) uint {
	if a < b {
		return a
	}
	return b
}

// bytesForBits returns the number of bytes needed to hold n bits.
func bytesForBits(n int) int {
	return (n + 7) >> 3
}
