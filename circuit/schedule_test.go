//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package circuit

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	for _, input := range []string{andCircuit, notCircuit, adder} {
		assert.NoError(t, parse(t, input).Validate())
	}
	assert.NoError(t, randomCircuit(7, 10, 1000).Validate())
}

var validateTests = []struct {
	name  string
	input string
	err   error
}{
	{
		name:  "valid",
		input: "1 1 0 0\n3 1 1 1\nAND 0 1 2\n",
		err:   nil,
	},
	{
		name:  "AND count",
		input: "1 2 0 0\n3 1 1 1\nAND 0 1 2\n",
		err:   ErrCountMismatch,
	},
	{
		name:  "XOR count",
		input: "1 0 0 0\n3 1 1 1\nXOR 0 1 2\n",
		err:   ErrCountMismatch,
	},
	{
		name:  "INV count",
		input: "1 0 0 0\n2 1 0 1\nINV 0 1\n",
		err:   ErrCountMismatch,
	},
	{
		name:  "unassigned input",
		input: "2 1 1 0\n4 1 1 1\nAND 0 2 3\nXOR 0 1 2\n",
		err:   ErrBrokenTopologicalOrder,
	},
	{
		name:  "input wire range",
		input: "1 0 0 1\n2 1 0 1\nINV 2 1\n",
		err:   ErrInvalidWire,
	},
	{
		name:  "output wire range",
		input: "1 0 0 1\n2 1 0 1\nINV 0 2\n",
		err:   ErrInvalidWire,
	},
	{
		name:  "reassigned wire",
		input: "2 0 2 0\n3 1 1 1\nXOR 0 1 2\nXOR 0 2 2\n",
		err:   ErrInvalidWire,
	},
	{
		name:  "assigned input",
		input: "1 0 0 1\n2 1 1 1\nINV 0 1\n",
		err:   ErrInvalidWire,
	},
	{
		name:  "too many inputs",
		input: "1 0 0 1\n2 2 1 1\nINV 0 1\n",
		err:   ErrInvalidWire,
	},
	{
		name:  "too many outputs",
		input: "1 0 0 1\n2 1 0 3\nINV 0 1\n",
		err:   ErrInvalidWire,
	},
}

func TestValidateErrors(t *testing.T) {
	for _, test := range validateTests {
		t.Run(test.name, func(t *testing.T) {
			err := parse(t, test.input).Validate()
			if test.err == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, test.err), "%v", err)
		})
	}
}

func TestValidateGateCount(t *testing.T) {
	c := parse(t, adder)
	c.Gates = c.Gates[:len(c.Gates)-1]

	err := c.Validate()
	assert.True(t, errors.Is(err, ErrCountMismatch), "%v", err)
}

func TestSchedule(t *testing.T) {
	s, err := parse(t, adder).schedule()
	require.NoError(t, err)

	assert.Equal(t, [][]int{
		{0, 1, 2, 3},
		{4, 5},
		{6},
		{7},
	}, s.Levels)
	assert.Equal(t, 3, s.NumAND)
	assert.Equal(t, 1, s.NumINV)

	// Inner labels and table slots follow gate order.
	assert.Equal(t, step{Level: 1, Inner: 0, Table: 0}, s.Steps[1])
	assert.Equal(t, step{Level: 1, Inner: 1, Table: 1}, s.Steps[3])
	assert.Equal(t, step{Level: 2, Inner: 2, Table: 2}, s.Steps[5])
	assert.Equal(t, step{Level: 4, Inner: 3, Table: 0}, s.Steps[7])
}
