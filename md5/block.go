//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package md5

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"math/bits"
)

// ErrInvalidRotation is returned for rotation amounts outside [0,32).
var ErrInvalidRotation = errors.New("md5: invalid rotation amount")

// State holds the four 32-bit digest registers.
type State struct {
	A, B, C, D uint32
}

// InitialState returns the initial digest state.
func InitialState() State {
	return State{
		A: A0,
		B: B0,
		C: C0,
		D: D0,
	}
}

// F is the nonlinear function of round 1.
func F(x, y, z uint32) uint32 {
	return (x & y) | (^x & z)
}

// G is the nonlinear function of round 2.
func G(x, y, z uint32) uint32 {
	return (x & z) | (y & ^z)
}

// H is the nonlinear function of round 3.
func H(x, y, z uint32) uint32 {
	return x ^ y ^ z
}

// I is the nonlinear function of round 4.
func I(x, y, z uint32) uint32 {
	return y ^ (x | ^z)
}

// RotateLeft rotates x left by n bits. The rotation amount must be
// in range [0,32).
func RotateLeft(x uint32, n int) (uint32, error) {
	if n < 0 || n >= 32 {
		return 0, ErrInvalidRotation
	}
	return bits.RotateLeft32(x, n), nil
}

// Compress runs the 64 compression steps over the BlockSize byte
// block and folds the result into state.
func Compress(state State, block []byte) State {
	return compress(state, Words(block), NopRecorder{})
}

// step returns the nonlinear function value and the message word
// index of step j.
func step(j int, b, c, d uint32) (uint32, int) {
	switch j / 16 {
	case 0:
		return F(b, c, d), j
	case 1:
		return G(b, c, d), (5*j + 1) % 16
	case 2:
		return H(b, c, d), (3*j + 5) % 16
	default:
		return I(b, c, d), (7 * j) % 16
	}
}

func compress(state State, m [16]uint32, rec Recorder) State {
	aa, bb, cc, dd := state.A, state.B, state.C, state.D

	for j := 0; j < 64; j++ {
		e, g := step(j, bb, cc, dd)

		r, err := RotateLeft(aa+e+K[j]+m[g], S[j])
		if err != nil {
			panic(err)
		}
		aa, bb, cc, dd = dd, bb+r, bb, cc

		if j%16 == 0 {
			rec.RoundBoundary(j/16+1, Registers{
				A: BinaryWord(aa),
				B: BinaryWord(bb),
				C: BinaryWord(cc),
				D: BinaryWord(dd),
			})
		}
	}

	state.A += aa
	state.B += bb
	state.C += cc
	state.D += dd

	return state
}

// Finalize packs the digest state into the checksum: registers A, B,
// C, and D, each in little-endian order.
func Finalize(state State) [Size]byte {
	var digest [Size]byte

	binary.LittleEndian.PutUint32(digest[0:], state.A)
	binary.LittleEndian.PutUint32(digest[4:], state.B)
	binary.LittleEndian.PutUint32(digest[8:], state.C)
	binary.LittleEndian.PutUint32(digest[12:], state.D)

	return digest
}

// Hex returns the checksum as a lowercase hex string.
func Hex(sum [Size]byte) string {
	return hex.EncodeToString(sum[:])
}
