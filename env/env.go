//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package env implements global configuration for the digest tools.
package env

import (
	"crypto/rand"
	"io"
	"os"
)

// Config defines the global configuration for the digest tools.
// Config must not be modified after being passed to any module.
type Config struct {
	// Rand is the source of entropy for self-test message
	// generation. If nil, crypto/rand.Reader is used.
	Rand io.Reader

	// Out is the destination of reports. If nil, os.Stdout is used.
	Out io.Writer

	Verbose bool
}

// GetRandom returns the source of entropy for self-test message
// generation.
func (config *Config) GetRandom() io.Reader {
	if config.Rand != nil {
		return config.Rand
	}
	return rand.Reader
}

// GetOutput returns the report output.
func (config *Config) GetOutput() io.Writer {
	if config.Out != nil {
		return config.Out
	}
	return os.Stdout
}
