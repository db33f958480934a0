//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package env

import (
	"bytes"
	"crypto/rand"
	"os"
	"testing"
)

func TestDefaults(t *testing.T) {
	config := new(Config)
	if config.GetRandom() != rand.Reader {
		t.Errorf("GetRandom: expected crypto/rand.Reader")
	}
	if config.GetOutput() != os.Stdout {
		t.Errorf("GetOutput: expected os.Stdout")
	}
}

func TestOverrides(t *testing.T) {
	r := bytes.NewReader([]byte{1, 2, 3})
	var out bytes.Buffer
	config := &Config{
		Rand: r,
		Out:  &out,
	}
	if config.GetRandom() != r {
		t.Errorf("GetRandom: override ignored")
	}
	if config.GetOutput() != &out {
		t.Errorf("GetOutput: override ignored")
	}
}
