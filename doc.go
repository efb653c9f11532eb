// Package huffman implements a lossless byte compressor based on classic
// (non-canonical) Huffman codes.  The code tree is derived from the byte
// frequencies of the input and stored alongside the packed bit payload, so a
// container produced by Compress is self-describing.
//
// The pipeline is exposed piece by piece (Tally, Build, Generate, Pack,
// Unpack, Decode, Serialize, Deserialize) as well as through the Compress and
// Decompress convenience functions.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman
