//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package selftest checks the MD5 implementation against the Go
// standard library. The test messages are pseudorandom byte strings
// generated from a ChaCha20 keystream whose key and nonce are drawn
// from the configured entropy source.
package selftest

import (
	"crypto/md5"
	"fmt"
	"io"

	md5stages "github.com/markkurossi/md5stages/md5"
	"github.com/markkurossi/md5stages/env"
	"github.com/markkurossi/md5stages/stage"
	"golang.org/x/crypto/chacha20"
)

// MaxMessage is the maximum test message size in bytes. It covers all
// padding cases over the first four block boundaries.
const MaxMessage = 4*md5stages.BlockSize + 1

// Result describes a self-test run.
type Result struct {
	Messages int
	Bytes    uint64
	Blocks   int
}

// Runner generates test messages and checks their digests.
type Runner struct {
	config *env.Config
	cipher *chacha20.Cipher
}

// NewRunner creates a new self-test runner. The keystream key and
// nonce are read from the config's entropy source.
func NewRunner(config *env.Config) (*Runner, error) {
	var seed [chacha20.KeySize + chacha20.NonceSize]byte
	_, err := io.ReadFull(config.GetRandom(), seed[:])
	if err != nil {
		return nil, fmt.Errorf("selftest: failed to read seed: %w", err)
	}
	c, err := chacha20.NewUnauthenticatedCipher(seed[:chacha20.KeySize],
		seed[chacha20.KeySize:])
	if err != nil {
		return nil, err
	}
	return &Runner{
		config: config,
		cipher: c,
	}, nil
}

// Debugf prints debugging message if Verbose debugging is enabled.
func (r *Runner) Debugf(format string, a ...interface{}) {
	if !r.config.Verbose {
		return
	}
	fmt.Fprintf(r.config.GetOutput(), format, a...)
}

// Message returns the next pseudorandom message of size bytes.
func (r *Runner) Message(size int) []byte {
	out := make([]byte, size)
	// Keystream XOR zeros is the keystream.
	r.cipher.XORKeyStream(out, out)
	return out
}

// Check computes the digest of data with a stage log and verifies it
// against crypto/md5 and the stage invariants. It returns the number
// of blocks processed.
func Check(data []byte) (int, error) {
	log := new(stage.Log)

	sum := md5stages.Sum(data, log)
	expected := md5.Sum(data)
	if sum != expected {
		return 0, fmt.Errorf("digest mismatch for %d bytes: got %x, want %x",
			len(data), sum, expected)
	}
	if plain := md5stages.Sum(data, nil); plain != sum {
		return 0, fmt.Errorf("observed digest %x differs from %x",
			sum, plain)
	}
	if err := log.Verify(); err != nil {
		return 0, fmt.Errorf("stages for %d bytes: %w", len(data), err)
	}
	bits, err := log.LengthField()
	if err != nil {
		return 0, err
	}
	if bits != uint64(len(data))*8 {
		return 0, fmt.Errorf("length field %d for %d bytes", bits, len(data))
	}
	return len(log.Blocks), nil
}

// Run checks count messages. Message sizes cycle through 0 to
// MaxMessage bytes.
func (r *Runner) Run(count int) (*Result, error) {
	result := new(Result)

	for i := 0; i < count; i++ {
		data := r.Message(i % (MaxMessage + 1))
		blocks, err := Check(data)
		if err != nil {
			return result, fmt.Errorf("message %d: %w", i, err)
		}
		r.Debugf(" - message %d: %d bytes, %d blocks\n", i, len(data), blocks)

		result.Messages++
		result.Bytes += uint64(len(data))
		result.Blocks += blocks
	}
	return result, nil
}
