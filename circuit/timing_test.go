//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package circuit

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFileSize(t *testing.T) {
	assert.Equal(t, "12B", FileSize(12).String())
	assert.Equal(t, "2kB", FileSize(2048).String())
	assert.Equal(t, "3MB", FileSize(3*1000*1000+1).String())
	assert.Equal(t, "4GB", FileSize(4*1000*1000*1000+1).String())
}

func TestTiming(t *testing.T) {
	timing := NewTiming()
	timing.Sample("Load", nil)
	sample := timing.Sample("Garble", []string{"14 ct"})
	sample.SubSample("AND", time.Now())

	assert.Len(t, timing.Samples, 2)
	assert.Equal(t, timing.Samples[0].End, timing.Samples[1].Start)

	var buf bytes.Buffer
	timing.Print(&buf, FileSize(2048))
	out := buf.String()
	assert.Contains(t, out, "Load")
	assert.Contains(t, out, "Garble")
	assert.Contains(t, out, "AND")
	assert.Contains(t, out, "14 ct")
	assert.Contains(t, out, "Total")
	assert.Contains(t, out, "2kB")

	buf.Reset()
	NewTiming().Print(&buf, 0)
	assert.Empty(t, buf.String())
}

func TestPrintStats(t *testing.T) {
	var buf bytes.Buffer
	parse(t, adder).PrintStats(&buf)

	out := buf.String()
	for _, item := range []string{"AND", "XOR", "INV", "Total", "Wires",
		"Garbler", "Evaluator", "Outputs", "Ciphertexts", "14"} {
		assert.Contains(t, out, item)
	}
}
