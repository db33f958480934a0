//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package render

import (
	"fmt"
	"io"

	"github.com/markkurossi/md5stages/stage"
	"github.com/markkurossi/text"
)

const htmlHeader = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>MD5 %s</title>
<style>
body { font-family: sans-serif; }
.stage { background: #f9fafb; padding: 1em; margin: 1em 0; }
.block, .round { font-family: monospace; white-space: pre; display: inline-block; margin-right: 2em; vertical-align: top; }
.block i, .block em { color: #22c55e; font-style: normal; }
</style>
</head>
<body>
`

const htmlFooter = `</body>
</html>
`

// HTML writes the first stages of the log as an HTML page to w. The
// input is the digested message, shown in the page title.
func HTML(w io.Writer, log *stage.Log, stages int, input string) error {
	if stages < 0 || stages > MaxStages {
		return ErrStages
	}
	if stages > log.NumStages() {
		return fmt.Errorf("render: %d stages requested, %d captured",
			stages, log.NumStages())
	}

	_, err := fmt.Fprintf(w, htmlHeader, text.New().Plain(input).HTML())
	if err != nil {
		return err
	}
	if stages >= int(stage.Padding) {
		if err := htmlPadding(w, log); err != nil {
			return err
		}
	}
	if stages >= int(stage.Processing) {
		if err := htmlProcessing(w, log); err != nil {
			return err
		}
	}
	if stages >= int(stage.Result) {
		if err := htmlResult(w, log); err != nil {
			return err
		}
	}
	_, err = io.WriteString(w, htmlFooter)
	return err
}

func htmlHeading(w io.Writer, s stage.Stage) error {
	_, err := fmt.Fprintf(w, "<div class=\"stage\">\n<h3>%s</h3>\n",
		text.New().Plainf("Stage %d - %s:", int(s), s).HTML())
	return err
}

func htmlPadding(w io.Writer, log *stage.Log) error {
	if err := htmlHeading(w, stage.Padding); err != nil {
		return err
	}
	for blockIdx, block := range log.Blocks {
		txt := text.New()
		for idx, b := range block {
			if idx > 0 && idx%4 == 0 {
				txt.Plain("\n")
			}
			if isLengthField(log, blockIdx, idx) {
				txt.Oblique(b)
				txt.Plain(" ")
			} else {
				txt.Plainf("%s ", b)
			}
		}
		_, err := fmt.Fprintf(w, "<div class=\"block\">%s</div>\n", txt.HTML())
		if err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</div>\n")
	return err
}

func htmlProcessing(w io.Writer, log *stage.Log) error {
	if err := htmlHeading(w, stage.Processing); err != nil {
		return err
	}
	for idx, r := range log.Rounds {
		if idx%4 == 0 {
			if _, err := io.WriteString(w, "<div>\n"); err != nil {
				return err
			}
		}
		txt := text.New().
			Plainf("A %s\n", r.State.A).
			Plainf("B %s\n", r.State.B).
			Plainf("C %s\n", r.State.C).
			Plainf("D %s", r.State.D)
		_, err := fmt.Fprintf(w, "<div class=\"round\">%s</div>\n", txt.HTML())
		if err != nil {
			return err
		}
		if idx%4 == 3 || idx == len(log.Rounds)-1 {
			if _, err := io.WriteString(w, "</div>\n"); err != nil {
				return err
			}
		}
	}
	_, err := io.WriteString(w, "</div>\n")
	return err
}

func htmlResult(w io.Writer, log *stage.Log) error {
	if err := htmlHeading(w, stage.Result); err != nil {
		return err
	}
	f := log.Result
	working := text.New().
		Plainf("A %s\n", f.Working.A).
		Plainf("B %s\n", f.Working.B).
		Plainf("C %s\n", f.Working.C).
		Plainf("D %s", f.Working.D)

	_, err := fmt.Fprintf(w, `<p><b>Concatenate variables</b></p>
<div class="round">%s</div>
<p><b>Hash:</b></p>
<pre>%s</pre>
</div>
`,
		working.HTML(), text.New().Plain(f.Final).HTML())
	return err
}
