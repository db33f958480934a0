//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package stage implements a recorder that captures the intermediate
// stages of an MD5 computation.
package stage

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/markkurossi/md5stages/md5"
)

// Stage identifies one of the three stages of the computation.
type Stage int

// Computation stages.
const (
	Padding Stage = iota + 1
	Processing
	Result
)

var stageNames = map[Stage]string{
	Padding:    "Padding",
	Processing: "Block Processing",
	Result:     "Final Result",
}

func (s Stage) String() string {
	name, ok := stageNames[s]
	if ok {
		return name
	}
	return fmt.Sprintf("{Stage %d}", s)
}

// Round holds the register snapshot of one round boundary.
type Round struct {
	Block int
	Round int
	State md5.Registers
}

// Log implements md5.Recorder and captures all stage data in call
// order.
type Log struct {
	Verbose bool
	Out     io.Writer
	Blocks  [][]string
	Rounds  []Round
	Result  *md5.FinalStage

	block int
}

// Debugf prints debugging message to Out, or to os.Stdout if Out is
// nil, if Verbose debugging is enabled for this Log.
func (l *Log) Debugf(format string, a ...interface{}) {
	if !l.Verbose {
		return
	}
	out := l.Out
	if out == nil {
		out = os.Stdout
	}
	fmt.Fprintf(out, format, a...)
}

// Reset clears all captured stage data.
func (l *Log) Reset() {
	l.Blocks = nil
	l.Rounds = nil
	l.Result = nil
	l.block = 0
}

// Padded implements md5.Recorder.Padded.
func (l *Log) Padded(blocks [][]string) {
	l.Debugf(" - padded: %d blocks\n", len(blocks))
	l.Blocks = blocks
}

// RoundBoundary implements md5.Recorder.RoundBoundary.
func (l *Log) RoundBoundary(round int, state md5.Registers) {
	if round == 1 && len(l.Rounds) > 0 {
		l.block++
	}
	l.Debugf(" - block %d round %d: A=%s\n", l.block, round, state.A)
	l.Rounds = append(l.Rounds, Round{
		Block: l.block,
		Round: round,
		State: state,
	})
}

// Final implements md5.Recorder.Final.
func (l *Log) Final(result md5.FinalStage) {
	l.Debugf(" - final: %s\n", result.Final)
	l.Result = &result
}

// NumStages returns the number of stages captured.
func (l *Log) NumStages() int {
	var count int
	if len(l.Blocks) > 0 {
		count++
	}
	if len(l.Rounds) > 0 {
		count++
	}
	if l.Result != nil {
		count++
	}
	return count
}

// Verify checks the captured stage data for consistency: each block
// has 64 bytes, each block has four round boundaries in order, and
// the final working and saved registers add up to the digest.
func (l *Log) Verify() error {
	if len(l.Blocks) == 0 {
		return errors.New("no padded blocks")
	}
	for idx, block := range l.Blocks {
		if len(block) != md5.BlockSize {
			return fmt.Errorf("block %d: invalid size %d", idx, len(block))
		}
	}
	if len(l.Rounds) != 4*len(l.Blocks) {
		return fmt.Errorf("%d round boundaries for %d blocks",
			len(l.Rounds), len(l.Blocks))
	}
	for idx, r := range l.Rounds {
		if r.Round != idx%4+1 || r.Block != idx/4 {
			return fmt.Errorf("boundary %d: unexpected block %d round %d",
				idx, r.Block, r.Round)
		}
	}
	if l.Result == nil {
		return errors.New("no final stage")
	}
	state, err := Reconstruct(l.Result)
	if err != nil {
		return err
	}
	sum := md5.Finalize(state)
	if md5.Hex(sum) != l.Result.Final {
		return fmt.Errorf("working+saved %x does not match digest %s",
			sum, l.Result.Final)
	}
	return nil
}

// Reconstruct adds the final stage's working and saved registers
// modulo 2^32, reproducing the final digest state.
func Reconstruct(f *md5.FinalStage) (md5.State, error) {
	var words [8]uint32
	for idx, s := range []string{
		f.Working.A, f.Working.B, f.Working.C, f.Working.D,
		f.Saved.AA, f.Saved.BB, f.Saved.CC, f.Saved.DD,
	} {
		v, err := strconv.ParseUint(s, 16, 32)
		if err != nil {
			return md5.State{}, fmt.Errorf("invalid register %q: %w", s, err)
		}
		words[idx] = uint32(v)
	}
	return md5.State{
		A: words[0] + words[4],
		B: words[1] + words[5],
		C: words[2] + words[6],
		D: words[3] + words[7],
	}, nil
}

// LengthField returns the message length in bits encoded in the last
// eight bytes of the padded message.
func (l *Log) LengthField() (uint64, error) {
	if len(l.Blocks) == 0 {
		return 0, errors.New("no padded blocks")
	}
	last := l.Blocks[len(l.Blocks)-1]
	var buf [8]byte
	for i := 0; i < 8; i++ {
		v, err := strconv.ParseUint(last[md5.BlockSize-8+i], 2, 8)
		if err != nil {
			return 0, err
		}
		buf[i] = byte(v)
	}
	return binary.LittleEndian.Uint64(buf[:]), nil
}
