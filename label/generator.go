//
// generator.go
//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package label

import (
	"encoding/hex"
	"io"

	"github.com/cockroachdb/errors"
	"golang.org/x/crypto/chacha20"
)

// SeedSize specifies the label generator seed size in bytes.
const SeedSize = chacha20.KeySize

// Seed defines the 256 bit seed of the label generator.
type Seed [SeedSize]byte

// ZeroSeed is the all-zero reference seed. Labels drawn with it are
// predictable so it must only be used for tests and test vectors.
// The vectors come from the ChaCha20 keystream and do not match
// vectors produced with a ChaCha12 generator.
var ZeroSeed Seed

// ParseSeed parses the seed from its hex representation.
func ParseSeed(val string) (Seed, error) {
	var seed Seed

	data, err := hex.DecodeString(val)
	if err != nil {
		return seed, errors.Wrapf(err, "invalid seed %q", val)
	}
	if len(data) != SeedSize {
		return seed, errors.Newf("invalid seed length %d, expected %d",
			len(data), SeedSize)
	}
	copy(seed[:], data)
	return seed, nil
}

// Stream implements a deterministic random stream. The stream is the
// ChaCha20 keystream keyed by the seed with an all-zero nonce. It is
// not compatible with ChaCha12 based generators using the same seed.
type Stream struct {
	cipher *chacha20.Cipher
}

// NewRand creates a new random stream from the seed.
func NewRand(seed Seed) *Stream {
	var nonce [chacha20.NonceSize]byte

	c, err := chacha20.NewUnauthenticatedCipher(seed[:], nonce[:])
	if err != nil {
		// Key and nonce sizes are fixed by the types.
		panic(err)
	}
	return &Stream{
		cipher: c,
	}
}

// Read implements io.Reader.
func (s *Stream) Read(p []byte) (int, error) {
	clear(p)
	s.cipher.XORKeyStream(p, p)
	return len(p), nil
}

// Inputs contain the labels of one garbling pass.
type Inputs struct {
	// Delta is the global Free-XOR offset.
	Delta Label
	// Input holds zero-labels for primary input wires in input order.
	Input []Label
	// Inner holds zero-labels for AND and INV gate outputs in gate
	// processing order.
	Inner []Label
}

// Generate draws labels from the random source. The draw order is
// delta, input labels, and inner labels. Changing it changes every
// fixed-seed test vector.
func Generate(rand io.Reader, input, inner int) (*Inputs, error) {
	if input < 0 || inner < 0 {
		return nil, errors.Newf("invalid label counts: input=%d, inner=%d",
			input, inner)
	}
	delta, err := New(rand)
	if err != nil {
		return nil, errors.Wrap(err, "drawing delta")
	}
	result := &Inputs{
		Delta: delta,
		Input: make([]Label, input),
		Inner: make([]Label, inner),
	}
	for i := 0; i < input; i++ {
		result.Input[i], err = New(rand)
		if err != nil {
			return nil, errors.Wrapf(err, "drawing input label %d", i)
		}
	}
	for i := 0; i < inner; i++ {
		result.Inner[i], err = New(rand)
		if err != nil {
			return nil, errors.Wrapf(err, "drawing inner label %d", i)
		}
	}
	return result, nil
}

// GenerateSeeded draws labels from a random stream created from the
// seed. The same seed always gives the same labels.
func GenerateSeeded(seed Seed, input, inner int) (*Inputs, error) {
	return Generate(NewRand(seed), input, inner)
}

// Wire returns the label pair for the primary input wire.
func (in *Inputs) Wire(input int) Wire {
	return NewWire(in.Input[input], in.Delta)
}
