//
// main.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/markkurossi/md5stages/env"
	"github.com/markkurossi/md5stages/md5"
	"github.com/markkurossi/md5stages/render"
	"github.com/markkurossi/md5stages/selftest"
	"github.com/markkurossi/md5stages/stage"
)

var (
	verbose = false
)

func main() {
	stages := flag.Int("stages", render.MaxStages,
		"number of stages to show: 1=padding, 2=block processing, 3=result")
	files := flag.Bool("f", false, "arguments are files")
	html := flag.String("html", "", "write HTML report to the argument file")
	timing := flag.Bool("timing", false, "print timing information")
	check := flag.Int("selftest", 0, "check the argument number of messages")
	fVerbose := flag.Bool("v", false, "verbose output")
	flag.Parse()

	log.SetFlags(0)

	verbose = *fVerbose
	config := &env.Config{
		Verbose: verbose,
	}

	if *check > 0 {
		if err := selfTest(config, *check); err != nil {
			log.Fatal(err)
		}
		return
	}

	if len(flag.Args()) == 0 {
		fmt.Printf("no input specified\n")
		os.Exit(1)
	}
	if len(*html) > 0 && len(flag.Args()) != 1 {
		fmt.Printf("HTML report requires a single input\n")
		os.Exit(1)
	}

	for _, arg := range flag.Args() {
		input := []byte(arg)
		if *files {
			data, err := os.ReadFile(arg)
			if err != nil {
				log.Fatal(err)
			}
			input = data
		}
		err := process(config, arg, input, *stages, *html, *timing)
		if err != nil {
			log.Fatal(err)
		}
	}
}

func debugf(format string, a ...interface{}) {
	if !verbose {
		return
	}
	fmt.Printf(format, a...)
}

func process(config *env.Config, name string, input []byte, stages int,
	html string, timing bool) error {

	if stages < 0 || stages > render.MaxStages {
		return fmt.Errorf("invalid stages %d: expected 0-%d",
			stages, render.MaxStages)
	}

	debugf("Input: %s (%s)\n", name, render.FileSize(len(input)))

	trace := &stage.Log{
		Verbose: config.Verbose,
		Out:     config.GetOutput(),
	}
	var rec md5.Recorder = trace

	var t *render.Timing
	if timing {
		t = render.NewTiming()
		rec = &render.TimingRecorder{
			Timing: t,
			Next:   trace,
		}
	}

	sum := md5.Sum(input, rec)

	if err := trace.Verify(); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	out := config.GetOutput()
	if stages == 0 {
		fmt.Fprintf(out, "%x  %s\n", sum, name)
	} else {
		if err := render.Terminal(out, trace, stages); err != nil {
			return err
		}
	}

	if len(html) > 0 {
		f, err := os.Create(html)
		if err != nil {
			return err
		}
		// The HTML report always shows stages, even with hash-only
		// terminal output.
		htmlStages := stages
		if htmlStages == 0 {
			htmlStages = render.MaxStages
		}
		err = render.HTML(f, trace, htmlStages, name)
		cerr := f.Close()
		if err != nil {
			return err
		}
		if cerr != nil {
			return cerr
		}
	}

	if t != nil {
		t.Sample("Render", nil)
		t.Print(out, render.FileSize(len(input)))
	}
	return nil
}

func selfTest(config *env.Config, count int) error {
	runner, err := selftest.NewRunner(config)
	if err != nil {
		return err
	}
	result, err := runner.Run(count)
	if err != nil {
		return fmt.Errorf("self-test failed: %w", err)
	}
	fmt.Fprintf(config.GetOutput(), "%d messages, %s, %d blocks: ok\n",
		result.Messages, render.FileSize(result.Bytes), result.Blocks)
	return nil
}
