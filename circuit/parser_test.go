//
// parser_test.go
//
// Copyright (c) 2019-2025 Markku Rossi
//
// All rights reserved.
//

package circuit

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var data = `1 1 0 0
3 1 1 1
AND 0 1 2
`

func TestParse(t *testing.T) {
	c, err := Parse(strings.NewReader(data))
	require.NoError(t, err)

	assert.Equal(t, 1, c.NumGates)
	assert.Equal(t, 1, c.NumAND)
	assert.Equal(t, 0, c.NumXOR)
	assert.Equal(t, 0, c.NumINV)
	assert.Equal(t, 3, c.NumWires)
	assert.Equal(t, 1, c.GarblerInputs)
	assert.Equal(t, 1, c.EvaluatorInputs)
	assert.Equal(t, 1, c.NumOutputs)
	assert.Equal(t, 2, c.InputWireCount())
	assert.Equal(t, 1, c.InnerLabelCount())
	assert.Equal(t, []Gate{
		{Input0: 0, Input1: 1, Output: 2, Op: AND},
	}, c.Gates)
}

func TestParseGates(t *testing.T) {
	c, err := Parse(strings.NewReader(adder))
	require.NoError(t, err)
	require.Len(t, c.Gates, 8)

	assert.Equal(t, Gate{Input0: 0, Input1: 2, Output: 4, Op: XOR}, c.Gates[0])
	assert.Equal(t, Gate{Input0: 0, Input1: 2, Output: 5, Op: AND}, c.Gates[1])
	assert.Equal(t, Gate{Input0: 10, Output: 11, Op: INV}, c.Gates[7])
	assert.Equal(t, []Wire{10}, c.Gates[7].Inputs())
	assert.Equal(t, Stats{XOR: 4, AND: 3, INV: 1}, c.Stats())
	assert.Equal(t, 3*4+1*2, c.Cost())
}

func TestParseWhitespace(t *testing.T) {
	input := "2 1 0 1\n\n  3   2 0 1  \n\n\tAND 0 1 2\nINV  2\t3"
	c, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 3, c.NumWires)
	assert.Equal(t, []Gate{
		{Input0: 0, Input1: 1, Output: 2, Op: AND},
		{Input0: 2, Output: 3, Op: INV},
	}, c.Gates)
}

func TestParseUnknownOperation(t *testing.T) {
	_, err := Parse(strings.NewReader("1 1 0 0\n3 1 1 1\nFOO 0 1 2\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedCircuit))
	assert.Contains(t, err.Error(), "FOO")

	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 3, perr.Line)
	assert.Equal(t, "FOO", perr.Token)
}

var malformedTests = []struct {
	name  string
	input string
	line  int
	token string
}{
	{
		name:  "empty",
		input: "",
		line:  0,
	},
	{
		name:  "short gate header",
		input: "1 1 0\n3 1 1 1\nAND 0 1 2\n",
		line:  1,
	},
	{
		name:  "invalid gate header field",
		input: "1 x 0 0\n3 1 1 1\nAND 0 1 2\n",
		line:  1,
		token: "x",
	},
	{
		name:  "missing wire header",
		input: "1 1 0 0\n",
		line:  1,
	},
	{
		name:  "negative wire count",
		input: "1 1 0 0\n-3 1 1 1\nAND 0 1 2\n",
		line:  2,
		token: "-3",
	},
	{
		name:  "missing operand",
		input: "1 1 0 0\n3 1 1 1\nAND 0 1\n",
		line:  3,
		token: "AND",
	},
	{
		name:  "trailing token",
		input: "1 0 0 1\n2 1 0 1\nINV 0 1 2\n",
		line:  3,
		token: "2",
	},
	{
		name:  "invalid wire",
		input: "1 0 1 0\n3 1 1 1\nXOR 0 one 2\n",
		line:  3,
		token: "one",
	},
	{
		name:  "truncated gates",
		input: "2 0 2 0\n4 1 1 1\nXOR 0 1 2\n",
		line:  3,
	},
	{
		name:  "lower case operation",
		input: "1 1 0 0\n3 1 1 1\nand 0 1 2\n",
		line:  3,
		token: "and",
	},
}

func TestParseMalformed(t *testing.T) {
	for _, test := range malformedTests {
		t.Run(test.name, func(t *testing.T) {
			c, err := Parse(strings.NewReader(test.input))
			require.Error(t, err)
			assert.Nil(t, c)
			assert.True(t, errors.Is(err, ErrMalformedCircuit), "%v", err)

			var perr *ParseError
			require.True(t, errors.As(err, &perr), "%v", err)
			assert.Equal(t, test.line, perr.Line)
			assert.Equal(t, test.token, perr.Token)
		})
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "adder.txt")
	require.NoError(t, os.WriteFile(path, []byte(adder), 0o644))

	c, err := ParseFile(path)
	require.NoError(t, err)
	assert.Len(t, c.Gates, 8)

	_, err = ParseFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestMarshalBristol(t *testing.T) {
	for _, input := range []string{data, notCircuit, adder, randomBristol(t)} {
		c, err := Parse(strings.NewReader(input))
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, c.MarshalBristol(&buf))

		parsed, err := Parse(&buf)
		require.NoError(t, err)
		assert.Equal(t, c, parsed)
	}
}

func TestMarshalBristolText(t *testing.T) {
	c, err := Parse(strings.NewReader(adder))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, c.MarshalBristol(&buf))
	assert.Equal(t, adder, buf.String())
}

func randomBristol(t *testing.T) string {
	var buf bytes.Buffer
	require.NoError(t, randomCircuit(42, 8, 200).MarshalBristol(&buf))
	return buf.String()
}
