//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package label

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// First 64 bytes of the ChaCha20 keystream for the all-zero key and
// nonce (RFC 8439, appendix A.1, test vector #1).
const zeroKeystream = "76b8e0ada0f13d90405d6ae55386bd28" +
	"bdd219b8a08ded1aa836efcc8b770dc7" +
	"da41597c5157488d7724e03fb8d84a37" +
	"6a43b8f41518a11cc387b669b2ee6586"

func TestZeroSeedStream(t *testing.T) {
	labels, err := GenerateSeeded(ZeroSeed, 2, 1)
	require.NoError(t, err)

	assert.Equal(t, zeroKeystream[0:32], labels.Delta.String())
	require.Len(t, labels.Input, 2)
	assert.Equal(t, zeroKeystream[32:64], labels.Input[0].String())
	assert.Equal(t, zeroKeystream[64:96], labels.Input[1].String())
	require.Len(t, labels.Inner, 1)
	assert.Equal(t, zeroKeystream[96:128], labels.Inner[0].String())
}

func TestDrawOrder(t *testing.T) {
	seed, err := ParseSeed(strings.Repeat("01", SeedSize))
	require.NoError(t, err)

	labels, err := GenerateSeeded(seed, 3, 4)
	require.NoError(t, err)

	var data [(1 + 3 + 4) * Size]byte
	_, err = io.ReadFull(NewRand(seed), data[:])
	require.NoError(t, err)

	var expected []Label
	for i := 0; i < len(data); i += Size {
		var l Label
		l.SetBytes(data[i : i+Size])
		expected = append(expected, l)
	}
	assert.Equal(t, expected[0], labels.Delta)
	assert.Equal(t, expected[1:4], labels.Input)
	assert.Equal(t, expected[4:], labels.Inner)
}

func TestDeterminism(t *testing.T) {
	a, err := GenerateSeeded(ZeroSeed, 5, 7)
	require.NoError(t, err)
	b, err := GenerateSeeded(ZeroSeed, 5, 7)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	var seed Seed
	seed[31] = 1
	c, err := GenerateSeeded(seed, 5, 7)
	require.NoError(t, err)
	assert.NotEqual(t, a.Delta, c.Delta)
}

func TestGenerateCounts(t *testing.T) {
	labels, err := GenerateSeeded(ZeroSeed, 0, 0)
	require.NoError(t, err)
	assert.Empty(t, labels.Input)
	assert.Empty(t, labels.Inner)

	_, err = GenerateSeeded(ZeroSeed, -1, 0)
	assert.Error(t, err)
}

func TestGenerateShortRead(t *testing.T) {
	_, err := Generate(strings.NewReader("too short"), 1, 0)
	assert.Error(t, err)
}

func TestParseSeed(t *testing.T) {
	seed, err := ParseSeed(strings.Repeat("00", SeedSize))
	require.NoError(t, err)
	assert.Equal(t, ZeroSeed, seed)

	_, err = ParseSeed("00")
	assert.Error(t, err)

	_, err = ParseSeed("xy")
	assert.Error(t, err)
}

func TestInputWire(t *testing.T) {
	labels, err := GenerateSeeded(ZeroSeed, 1, 0)
	require.NoError(t, err)

	w := labels.Wire(0)
	assert.Equal(t, labels.Input[0], w.L0)

	l1 := w.L0
	l1.Xor(labels.Delta)
	assert.Equal(t, l1, w.L1)
}
