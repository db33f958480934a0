//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package render

import (
	"fmt"
	"io"
	"time"

	"github.com/markkurossi/md5stages/md5"
	"github.com/markkurossi/tabulate"
)

// FileSize specifies a size in bytes.
type FileSize uint64

func (s FileSize) String() string {
	if s > 1000*1000*1000*1000 {
		return fmt.Sprintf("%dTB", s/(1000*1000*1000*1000))
	} else if s > 1000*1000*1000 {
		return fmt.Sprintf("%dGB", s/(1000*1000*1000))
	} else if s > 1000*1000 {
		return fmt.Sprintf("%dMB", s/(1000*1000))
	} else if s > 1000 {
		return fmt.Sprintf("%dkB", s/1000)
	} else {
		return fmt.Sprintf("%dB", s)
	}
}

// Timing records timing samples and renders a profiling report.
type Timing struct {
	Start   time.Time
	Samples []*Sample
}

// NewTiming creates a new Timing instance.
func NewTiming() *Timing {
	return &Timing{
		Start: time.Now(),
	}
}

// Sample adds a timing sample with label and data columns.
func (t *Timing) Sample(label string, cols []string) *Sample {
	start := t.Start
	if len(t.Samples) > 0 {
		start = t.Samples[len(t.Samples)-1].End
	}
	sample := &Sample{
		Label: label,
		Start: start,
		End:   time.Now(),
		Cols:  cols,
	}
	t.Samples = append(t.Samples, sample)
	return sample
}

// Print prints profiling report to w.
func (t *Timing) Print(w io.Writer, size FileSize) {
	if len(t.Samples) == 0 {
		return
	}

	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Op").SetAlign(tabulate.ML)
	tab.Header("Time").SetAlign(tabulate.MR)
	tab.Header("%").SetAlign(tabulate.MR)
	tab.Header("Data").SetAlign(tabulate.MR)

	total := t.Samples[len(t.Samples)-1].End.Sub(t.Start)
	for _, sample := range t.Samples {
		row := tab.Row()
		row.Column(sample.Label)

		duration := sample.End.Sub(sample.Start)
		row.Column(duration.String())
		if total > 0 {
			row.Column(fmt.Sprintf("%.2f%%",
				float64(duration)/float64(total)*100))
		} else {
			row.Column("")
		}
		for _, col := range sample.Cols {
			row.Column(col)
		}
	}
	row := tab.Row()
	row.Column("Total").SetFormat(tabulate.FmtBold)
	row.Column(total.String()).SetFormat(tabulate.FmtBold)
	row.Column("").SetFormat(tabulate.FmtBold)
	row.Column(size.String()).SetFormat(tabulate.FmtBold)

	tab.Print(w)
}

// Sample contains information about one timing sample.
type Sample struct {
	Label string
	Start time.Time
	End   time.Time
	Cols  []string
}

// TimingRecorder implements md5.Recorder that samples the computation
// phases to Timing and forwards all stage data to Next.
type TimingRecorder struct {
	Timing *Timing
	Next   md5.Recorder
	blocks int
}

// Padded implements md5.Recorder.Padded.
func (r *TimingRecorder) Padded(blocks [][]string) {
	r.blocks = len(blocks)
	r.Timing.Sample("Pad", []string{
		FileSize(len(blocks) * md5.BlockSize).String(),
	})
	if r.Next != nil {
		r.Next.Padded(blocks)
	}
}

// RoundBoundary implements md5.Recorder.RoundBoundary.
func (r *TimingRecorder) RoundBoundary(round int, state md5.Registers) {
	if r.Next != nil {
		r.Next.RoundBoundary(round, state)
	}
}

// Final implements md5.Recorder.Final.
func (r *TimingRecorder) Final(result md5.FinalStage) {
	r.Timing.Sample("Compress", []string{
		fmt.Sprintf("%d blocks", r.blocks),
	})
	if r.Next != nil {
		r.Next.Final(result)
	}
}
