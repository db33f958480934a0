//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package md5

import (
	"bytes"
	"encoding/binary"
	"testing"
)

var padLengthTests = []struct {
	size   int
	padLen int
}{
	{0, 56},
	{1, 55},
	{55, 1},
	{56, 64},
	{63, 57},
	{64, 56},
	{119, 1},
	{120, 64},
	{128, 56},
}

func TestPadLength(t *testing.T) {
	for _, test := range padLengthTests {
		if l := PadLength(test.size); l != test.padLen {
			t.Errorf("PadLength(%d)=%d, expected %d", test.size, l, test.padLen)
		}
	}
}

func TestPad(t *testing.T) {
	for size := 0; size < 200; size++ {
		message := bytes.Repeat([]byte{0xa5}, size)
		padded := Pad(message)

		if len(padded) == 0 || len(padded)%BlockSize != 0 {
			t.Fatalf("size %d: invalid padded length %d", size, len(padded))
		}
		if expected := (size + 9 + 63) / 64 * 64; len(padded) != expected {
			t.Fatalf("size %d: padded length %d, expected %d",
				size, len(padded), expected)
		}
		if !bytes.Equal(padded[:size], message) {
			t.Fatalf("size %d: message bytes modified", size)
		}
		if padded[size] != 0x80 {
			t.Fatalf("size %d: marker %02x", size, padded[size])
		}
		for i := size + 1; i < len(padded)-8; i++ {
			if padded[i] != 0 {
				t.Fatalf("size %d: non-zero padding at %d", size, i)
			}
		}
		bitLen := binary.LittleEndian.Uint64(padded[len(padded)-8:])
		if bitLen != uint64(size)*8 {
			t.Fatalf("size %d: length field %d", size, bitLen)
		}
	}
}

func TestPadEmpty(t *testing.T) {
	padded := Pad(nil)
	expected := make([]byte, BlockSize)
	expected[0] = 0x80
	if !bytes.Equal(padded, expected) {
		t.Errorf("Pad(nil)=%x", padded)
	}
}

func TestBlocks(t *testing.T) {
	padded := Pad(make([]byte, 100))
	blocks := Blocks(padded)
	if len(blocks) != 2 {
		t.Fatalf("got %d blocks, expected 2", len(blocks))
	}
	for idx, block := range blocks {
		if !bytes.Equal(block, padded[idx*BlockSize:(idx+1)*BlockSize]) {
			t.Errorf("block %d mismatch", idx)
		}
	}
}

func TestWords(t *testing.T) {
	block := make([]byte, BlockSize)
	copy(block, []byte{0x01, 0x02, 0x03, 0x04, 0xff})
	m := Words(block)
	if m[0] != 0x04030201 {
		t.Errorf("m[0]=%08x", m[0])
	}
	if m[1] != 0x000000ff {
		t.Errorf("m[1]=%08x", m[1])
	}
}
