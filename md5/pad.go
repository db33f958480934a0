//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package md5

import (
	"encoding/binary"
)

// PadLength returns the number of padding bytes, the 0x80 marker
// included, that bring a message of size bytes to 56 mod 64.
func PadLength(size int) int {
	if size%BlockSize < 56 {
		return 56 - size%BlockSize
	}
	return 56 + BlockSize - size%BlockSize
}

// Pad returns the padded message: the message bytes, the 0x80
// marker, zero bytes until 56 mod 64, and the message length in bits
// as a little-endian 64-bit value. The message is not modified.
func Pad(message []byte) []byte {
	size := len(message)
	p := PadLength(size)

	padded := make([]byte, size+p+8)
	copy(padded, message)
	padded[size] = 0x80

	// Length in bits, lower word first.
	length := uint64(size) << 3
	binary.LittleEndian.PutUint32(padded[size+p:], uint32(length))
	binary.LittleEndian.PutUint32(padded[size+p+4:], uint32(length>>32))

	return padded
}

// Blocks splits the padded message into BlockSize byte blocks. The
// blocks share storage with padded.
func Blocks(padded []byte) [][]byte {
	if len(padded)%BlockSize != 0 {
		panic("md5: padded length is not a multiple of block size")
	}
	var blocks [][]byte
	for len(padded) >= BlockSize {
		blocks = append(blocks, padded[:BlockSize])
		padded = padded[BlockSize:]
	}
	return blocks
}

// Words returns the block as 16 little-endian 32-bit words.
func Words(block []byte) [16]uint32 {
	var m [16]uint32
	for i := 0; i < 16; i++ {
		m[i] = binary.LittleEndian.Uint32(block[i*4:])
	}
	return m
}
