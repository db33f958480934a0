//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package md5

import (
	"fmt"
)

// Recorder receives the intermediate stage data of a checksum
// computation. The methods are called synchronously and in order from
// within Sum and Digest: Padded once, RoundBoundary four times per
// block, and Final once.
type Recorder interface {
	// Padded is called after padding with the padded message split
	// into blocks. Each block holds 64 bytes as 8-digit binary
	// strings.
	Padded(blocks [][]string)

	// RoundBoundary is called after the first step of each round
	// with the round number 1-4 and the working registers as 32-digit
	// binary strings.
	RoundBoundary(round int, state Registers)

	// Final is called after the last block has been folded into the
	// digest state.
	Final(result FinalStage)
}

// Registers holds the textual form of the A, B, C, and D registers.
type Registers struct {
	A string
	B string
	C string
	D string
}

// SavedRegisters holds the textual form of the last block's entry
// registers.
type SavedRegisters struct {
	AA string
	BB string
	CC string
	DD string
}

// FinalStage describes the final stage of the computation. Working
// holds the last block's compression output before it was added to
// Saved, and Final is the hex checksum.
type FinalStage struct {
	Working Registers
	Saved   SavedRegisters
	Final   string
}

// NopRecorder implements a Recorder that ignores all stage data.
type NopRecorder struct{}

// Padded implements Recorder.Padded.
func (r NopRecorder) Padded(blocks [][]string) {}

// RoundBoundary implements Recorder.RoundBoundary.
func (r NopRecorder) RoundBoundary(round int, state Registers) {}

// Final implements Recorder.Final.
func (r NopRecorder) Final(result FinalStage) {}

// BinaryByte returns b as an 8-digit binary string.
func BinaryByte(b byte) string {
	return fmt.Sprintf("%08b", b)
}

// BinaryWord returns w as a 32-digit binary string.
func BinaryWord(w uint32) string {
	return fmt.Sprintf("%032b", w)
}

// HexWord returns w as an 8-digit lowercase hex string.
func HexWord(w uint32) string {
	return fmt.Sprintf("%08x", w)
}

// BinaryBlocks renders the blocks as 8-digit binary strings.
func BinaryBlocks(blocks [][]byte) [][]string {
	result := make([][]string, 0, len(blocks))
	for _, block := range blocks {
		row := make([]string, len(block))
		for i, b := range block {
			row[i] = BinaryByte(b)
		}
		result = append(result, row)
	}
	return result
}
