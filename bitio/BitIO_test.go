/*
Copyright 2011-2026 Frederic Langlet
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package bitio

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestWriteBitMSBFirst(t *testing.T) {
	var buf bytes.Buffer
	w := NewBitWriter(&buf)

	// 0xA5 = 1010 0101
	bits := []int{1, 0, 1, 0, 0, 1, 0, 1}

	for _, b := range bits {
		w.WriteBit(b)
	}

	require.NoError(t, w.Flush())
	assert.Equal(t, []byte{0xA5}, buf.Bytes())
	assert.Equal(t, uint64(8), w.BitsWritten())
}

func TestFlushZeroPads(t *testing.T) {
	var buf bytes.Buffer
	w := NewBitWriter(&buf)

	// 101 followed by flush should pad to 1010 0000 = 0xA0
	w.WriteBit(1)
	w.WriteBit(0)
	w.WriteBit(1)
	require.NoError(t, w.Flush())
	assert.Equal(t, []byte{0xA0}, buf.Bytes())
}

func TestFlushNoOpWhenEmpty(t *testing.T) {
	var buf bytes.Buffer
	w := NewBitWriter(&buf)
	require.NoError(t, w.Flush())
	assert.Empty(t, buf.Bytes())
}

func TestReadBitMSBFirst(t *testing.T) {
	r := NewBitReader(bytes.NewReader([]byte{0xA5}))
	want := []int{1, 0, 1, 0, 0, 1, 0, 1}

	for i, exp := range want {
		bit, eof := r.ReadBit()
		require.Falsef(t, eof, "unexpected EOF at bit %d", i)
		assert.Equal(t, exp, bit)
	}

	_, eof := r.ReadBit()
	assert.True(t, eof)
	assert.Equal(t, uint64(8), r.BitsRead())
}

func TestReadBitOrZeroSubstitutesZeroPastEOF(t *testing.T) {
	r := NewBitReader(bytes.NewReader(nil))

	for i := 0; i < 16; i++ {
		assert.Equal(t, 0, r.ReadBitOrZero())
	}
}

func TestRoundTripArbitraryBitSequence(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		bits := rapid.SliceOfN(rapid.IntRange(0, 1), 0, 4096).Draw(t, "bits")

		var buf bytes.Buffer
		w := NewBitWriter(&buf)

		for _, b := range bits {
			w.WriteBit(b)
		}

		require.NoError(t, w.Flush())

		r := NewBitReader(&buf)

		for i, exp := range bits {
			bit, eof := r.ReadBit()
			require.Falsef(t, eof, "premature EOF at bit %d", i)
			require.Equal(t, exp, bit)
		}
	})
}
