//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package md5

import (
	"crypto/md5"
	"testing"
)

var rotateTests = []struct {
	x        uint32
	n        int
	expected uint32
}{
	{0x00000001, 0, 0x00000001},
	{0x00000001, 1, 0x00000002},
	{0x80000000, 1, 0x00000001},
	{0x12345678, 4, 0x23456781},
	{0x12345678, 31, 0x091a2b3c},
}

func TestRotateLeft(t *testing.T) {
	for _, test := range rotateTests {
		r, err := RotateLeft(test.x, test.n)
		if err != nil {
			t.Fatalf("RotateLeft(%08x, %d): %v", test.x, test.n, err)
		}
		if r != test.expected {
			t.Errorf("RotateLeft(%08x, %d)=%08x, expected %08x",
				test.x, test.n, r, test.expected)
		}
	}
	for _, n := range []int{-1, 32, 100} {
		if _, err := RotateLeft(1, n); err != ErrInvalidRotation {
			t.Errorf("RotateLeft(1, %d): expected ErrInvalidRotation, got %v",
				n, err)
		}
	}
}

func TestConstants(t *testing.T) {
	if K[0] != 0xd76aa478 || K[31] != 0x8d2a4c8a || K[63] != 0xeb86d391 {
		t.Errorf("K table mismatch")
	}
	groups := [4][4]int{
		{7, 12, 17, 22},
		{5, 9, 14, 20},
		{4, 11, 16, 23},
		{6, 10, 15, 21},
	}
	for i := 0; i < 64; i++ {
		if S[i] != groups[i/16][i%4] {
			t.Errorf("S[%d]=%d", i, S[i])
		}
	}
}

func TestRoundFunctions(t *testing.T) {
	x, y, z := uint32(0xf0f0f0f0), uint32(0xcccccccc), uint32(0xaaaaaaaa)
	if v := F(x, y, z); v != 0xcacacaca {
		t.Errorf("F=%08x", v)
	}
	if v := G(x, y, z); v != 0xe4e4e4e4 {
		t.Errorf("G=%08x", v)
	}
	if v := H(x, y, z); v != 0x96969696 {
		t.Errorf("H=%08x", v)
	}
	if v := I(x, y, z); v != 0x39393939 {
		t.Errorf("I=%08x", v)
	}
}

func TestCompress(t *testing.T) {
	padded := Pad([]byte("abc"))
	state := Compress(InitialState(), padded)
	sum := Finalize(state)
	if sum != md5.Sum([]byte("abc")) {
		t.Errorf("Compress: got %x", sum)
	}
}

func TestFinalize(t *testing.T) {
	sum := Finalize(State{
		A: 0x04030201,
		B: 0x08070605,
		C: 0x0c0b0a09,
		D: 0x100f0e0d,
	})
	if h := Hex(sum); h != "0102030405060708090a0b0c0d0e0f10" {
		t.Errorf("Finalize: %s", h)
	}
}

func TestFormat(t *testing.T) {
	if s := BinaryByte(0x80); s != "10000000" {
		t.Errorf("BinaryByte: %s", s)
	}
	if s := BinaryWord(5); s != "00000000000000000000000000000101" {
		t.Errorf("BinaryWord: %s", s)
	}
	if s := HexWord(0xabc); s != "00000abc" {
		t.Errorf("HexWord: %s", s)
	}
}
