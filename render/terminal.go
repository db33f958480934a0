//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package render implements output formats for the captured stages
// of an MD5 computation.
package render

import (
	"errors"
	"fmt"
	"io"

	"github.com/markkurossi/md5stages/md5"
	"github.com/markkurossi/md5stages/stage"
	"github.com/markkurossi/tabulate"
	"github.com/markkurossi/text/superscript"
)

// MaxStages is the number of stages a computation produces.
const MaxStages = 3

// ErrStages is returned when the number of stages to render is
// invalid.
var ErrStages = errors.New("render: invalid number of stages")

// Terminal prints the first stages of the log as tables to w. The
// stages argument specifies how many of the stages Padding,
// Processing, and Result are shown.
func Terminal(w io.Writer, log *stage.Log, stages int) error {
	if stages < 0 || stages > MaxStages {
		return ErrStages
	}
	if stages > log.NumStages() {
		return fmt.Errorf("render: %d stages requested, %d captured",
			stages, log.NumStages())
	}
	if stages >= int(stage.Padding) {
		printPadding(w, log)
	}
	if stages >= int(stage.Processing) {
		printProcessing(w, log)
	}
	if stages >= int(stage.Result) {
		return printResult(w, log)
	}
	return nil
}

func heading(w io.Writer, s stage.Stage) {
	fmt.Fprintf(w, "Stage %d - %s:\n", int(s), s)
}

// isLengthField tests if the byte at index idx of block is part of
// the message length field.
func isLengthField(log *stage.Log, block, idx int) bool {
	return block == len(log.Blocks)-1 && idx >= md5.BlockSize-8
}

func printPadding(w io.Writer, log *stage.Log) {
	heading(w, stage.Padding)

	for blockIdx, block := range log.Blocks {
		tab := tabulate.New(tabulate.UnicodeLight)
		tab.Header("Block" + superscript.Itoa(blockIdx)).SetAlign(tabulate.MR)
		for i := 0; i < 4; i++ {
			tab.Header(fmt.Sprintf("+%d", i)).SetAlign(tabulate.ML)
		}

		for i := 0; i < len(block); i += 4 {
			row := tab.Row()
			row.Column(fmt.Sprintf("%d", i))
			for j := i; j < i+4 && j < len(block); j++ {
				col := row.Column(block[j])
				if isLengthField(log, blockIdx, j) {
					col.SetFormat(tabulate.FmtBold)
				}
			}
		}
		tab.Print(w)
	}
	fmt.Fprintln(w)
}

func printProcessing(w io.Writer, log *stage.Log) {
	heading(w, stage.Processing)

	for i := 0; i < len(log.Rounds); i += 4 {
		end := i + 4
		if end > len(log.Rounds) {
			end = len(log.Rounds)
		}
		rounds := log.Rounds[i:end]

		tab := tabulate.New(tabulate.UnicodeLight)
		tab.Header("Block" + superscript.Itoa(rounds[0].Block)).
			SetAlign(tabulate.ML)
		for _, r := range rounds {
			tab.Header(fmt.Sprintf("Round %d", r.Round)).SetAlign(tabulate.ML)
		}

		for _, reg := range []string{"A", "B", "C", "D"} {
			row := tab.Row()
			row.Column(reg)
			for _, r := range rounds {
				row.Column(register(r.State, reg))
			}
		}
		tab.Print(w)
	}
	fmt.Fprintln(w)
}

func register(regs md5.Registers, name string) string {
	switch name {
	case "A":
		return regs.A
	case "B":
		return regs.B
	case "C":
		return regs.C
	default:
		return regs.D
	}
}

func printResult(w io.Writer, log *stage.Log) error {
	f := log.Result
	state, err := stage.Reconstruct(f)
	if err != nil {
		return err
	}

	heading(w, stage.Result)

	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Reg").SetAlign(tabulate.ML)
	tab.Header("Working").SetAlign(tabulate.MR)
	tab.Header("Saved").SetAlign(tabulate.MR)
	tab.Header("Sum mod 2" + superscript.Itoa(32)).SetAlign(tabulate.MR)

	rows := []struct {
		name    string
		working string
		saved   string
		sum     uint32
	}{
		{"A", f.Working.A, f.Saved.AA, state.A},
		{"B", f.Working.B, f.Saved.BB, state.B},
		{"C", f.Working.C, f.Saved.CC, state.C},
		{"D", f.Working.D, f.Saved.DD, state.D},
	}
	for _, r := range rows {
		row := tab.Row()
		row.Column(r.name)
		row.Column(r.working)
		row.Column(r.saved).SetFormat(tabulate.FmtItalic)
		row.Column(md5.HexWord(r.sum))
	}
	tab.Print(w)

	fmt.Fprintf(w, "Hash: %s\n", f.Final)

	return nil
}
