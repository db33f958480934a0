//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/markkurossi/md5stages/env"
)

func TestProcessHashOnly(t *testing.T) {
	var out bytes.Buffer
	config := &env.Config{Out: &out}

	err := process(config, "abc", []byte("abc"), 0, "", false)
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	expected := "900150983cd24fb0d6963f7d28e17f72  abc\n"
	if out.String() != expected {
		t.Errorf("got %q, expected %q", out.String(), expected)
	}
}

func TestProcessStages(t *testing.T) {
	var out bytes.Buffer
	config := &env.Config{Out: &out}
	html := filepath.Join(t.TempDir(), "report.html")

	err := process(config, "hello", []byte("hello"), 3, html, true)
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	for _, s := range []string{"Stage 1", "Stage 3", "Total"} {
		if !strings.Contains(out.String(), s) {
			t.Errorf("output does not contain %q", s)
		}
	}
	data, err := os.ReadFile(html)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !bytes.Contains(data, []byte("5d41402abc4b2a76b9719d911017c592")) {
		t.Errorf("HTML report does not contain the hash")
	}
}

func TestProcessHashOnlyHTML(t *testing.T) {
	var out bytes.Buffer
	config := &env.Config{Out: &out}
	html := filepath.Join(t.TempDir(), "report.html")

	err := process(config, "abc", []byte("abc"), 0, html, false)
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if strings.Contains(out.String(), "Stage 1") {
		t.Errorf("terminal output contains stages")
	}
	data, err := os.ReadFile(html)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	for _, s := range []string{
		"Padding", "Block Processing", "Final Result",
		"900150983cd24fb0d6963f7d28e17f72",
	} {
		if !bytes.Contains(data, []byte(s)) {
			t.Errorf("HTML report does not contain %q", s)
		}
	}
}

func TestProcessVerbose(t *testing.T) {
	var out bytes.Buffer
	config := &env.Config{
		Out:     &out,
		Verbose: true,
	}
	err := process(config, "abc", []byte("abc"), 0, "", false)
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if !strings.Contains(out.String(), " - final: ") {
		t.Errorf("stage debug output not written to config output")
	}
}

func TestProcessInvalidStages(t *testing.T) {
	config := &env.Config{Out: new(bytes.Buffer)}
	if err := process(config, "x", []byte("x"), 5, "", false); err == nil {
		t.Errorf("process succeeded with invalid stages")
	}
}

func TestSelfTest(t *testing.T) {
	var out bytes.Buffer
	if err := selfTest(&env.Config{Out: &out}, 10); err != nil {
		t.Fatalf("selfTest: %v", err)
	}
	if !strings.HasSuffix(out.String(), "ok\n") {
		t.Errorf("unexpected output %q", out.String())
	}
}
