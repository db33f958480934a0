//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package md5 implements the MD5 message digest with an observation
// channel for its intermediate state. The digest is computed in a
// single pass: padding, one compression per 64-byte block, and
// finalization. An optional Recorder receives the padded block
// layout, the register state at every round boundary, and the last
// block's working and saved registers.
//
// MD5 is cryptographically broken and should not be used for secure
// applications.
package md5

import (
	"fmt"
	"strconv"
)

// Size is the size of an MD5 checksum in bytes.
const Size = 16

// BlockSize is the block size of MD5 in bytes.
const BlockSize = 64

// Sum returns the MD5 checksum of the data. The recorder rec, if not
// nil, is called synchronously with the stage data of the
// computation. The recorder never affects the returned checksum.
func Sum(data []byte, rec Recorder) [Size]byte {
	if rec == nil {
		rec = NopRecorder{}
	}

	padded := Pad(data)
	blocks := Blocks(padded)

	rec.Padded(BinaryBlocks(blocks))

	state := InitialState()
	var saved, final State

	for idx, block := range blocks {
		last := idx == len(blocks)-1
		if last {
			saved = state
		}
		state = compress(state, Words(block), rec)
		if last {
			final = state
		}
	}

	sum := Finalize(state)

	rec.Final(FinalStage{
		Working: Registers{
			A: HexWord(final.A - saved.A),
			B: HexWord(final.B - saved.B),
			C: HexWord(final.C - saved.C),
			D: HexWord(final.D - saved.D),
		},
		Saved: SavedRegisters{
			AA: HexWord(saved.A),
			BB: HexWord(saved.B),
			CC: HexWord(saved.C),
			DD: HexWord(saved.D),
		},
		Final: Hex(sum),
	})

	return sum
}

// Digest returns the MD5 checksum of the textual representation of
// the input value. Byte slices and strings are used as-is, numbers
// and booleans are formatted with strconv, fmt.Stringer values with
// their String method, and everything else with fmt.Sprint.
func Digest(input interface{}, rec Recorder) [Size]byte {
	return Sum(Bytes(input), rec)
}

// Bytes converts the input value into the byte sequence that Digest
// computes the checksum over.
func Bytes(input interface{}) []byte {
	switch v := input.(type) {
	case []byte:
		return v
	case string:
		return []byte(v)
	case fmt.Stringer:
		return []byte(v.String())

	case int:
		return strconv.AppendInt(nil, int64(v), 10)
	case int8:
		return strconv.AppendInt(nil, int64(v), 10)
	case int16:
		return strconv.AppendInt(nil, int64(v), 10)
	case int32:
		return strconv.AppendInt(nil, int64(v), 10)
	case int64:
		return strconv.AppendInt(nil, v, 10)

	case uint:
		return strconv.AppendUint(nil, uint64(v), 10)
	case uint8:
		return strconv.AppendUint(nil, uint64(v), 10)
	case uint16:
		return strconv.AppendUint(nil, uint64(v), 10)
	case uint32:
		return strconv.AppendUint(nil, uint64(v), 10)
	case uint64:
		return strconv.AppendUint(nil, v, 10)

	case float32:
		return strconv.AppendFloat(nil, float64(v), 'g', -1, 32)
	case float64:
		return strconv.AppendFloat(nil, v, 'g', -1, 64)

	case bool:
		return strconv.AppendBool(nil, v)

	default:
		return []byte(fmt.Sprint(v))
	}
}
