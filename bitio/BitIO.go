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

// Package bitio is the bit-level I/O adaptor: a byte-oriented sink or
// source wrapped to expose single-bit read/write. There are two
// distinct types, one per direction, rather than a single type exposing
// both WriteBit and ReadBit.
package bitio

import (
	"errors"
	"io"
)

// errSinkFailed is returned by Flush once a prior WriteBit has already
// observed a write failure from the sink.
var errSinkFailed = errors.New("bitio: sink failed")

// BitWriter wraps an io.Writer to expose single-bit writes, MSB-first
// within each emitted byte. The zero value is not usable; construct with
// NewBitWriter. A BitWriter borrows its sink for the duration of one
// encode call; the caller retains ownership and must call Flush before
// releasing the sink.
type BitWriter struct {
	sink        io.Writer
	buffer      byte
	inBuffer    uint // bits currently buffered, in [0..8)
	bitsWritten uint64
	failed      bool
}

// NewBitWriter creates a BitWriter over the given sink.
func NewBitWriter(sink io.Writer) *BitWriter {
	return &BitWriter{sink: sink}
}

// WriteBit shifts the buffer left by one and ORs in b&1; when the buffer
// holds 8 bits it is emitted as a byte and reset. A no-op once the sink
// has failed once — the failure itself surfaces via the sink's own error
// state, not via WriteBit's (void) signature.
func (this *BitWriter) WriteBit(b int) {
	if this.failed {
		return
	}

	this.buffer = (this.buffer << 1) | byte(b&1)
	this.inBuffer++
	this.bitsWritten++

	if this.inBuffer == 8 {
		if _, err := this.sink.Write([]byte{this.buffer}); err != nil {
			this.failed = true
			return
		}

		this.buffer = 0
		this.inBuffer = 0
	}
}

// Flush left-shifts the buffer by (8 - buffered) to zero-pad the
// low-order bits and emits one byte. No-op when the buffer is empty.
func (this *BitWriter) Flush() error {
	if this.failed {
		return errSinkFailed
	}

	if this.inBuffer == 0 {
		return nil
	}

	b := this.buffer << (8 - this.inBuffer)

	if _, err := this.sink.Write([]byte{b}); err != nil {
		this.failed = true
		return err
	}

	this.buffer = 0
	this.inBuffer = 0
	return nil
}

// BitsWritten returns the number of bits written so far, flushed or not.
func (this *BitWriter) BitsWritten() uint64 {
	return this.bitsWritten
}

// BitReader wraps an io.Reader to expose single-bit reads, MSB-first
// within each consumed byte.
type BitReader struct {
	source   io.Reader
	buffer   byte
	inBuffer uint // bits remaining to be consumed from buffer, in [0..8]
	bitsRead uint64
	atEOF    bool
}

// NewBitReader creates a BitReader over the given source.
func NewBitReader(source io.Reader) *BitReader {
	return &BitReader{source: source}
}

// ReadBit returns the next bit MSB-first, or eof=true once the source is
// exhausted and the buffer is empty.
func (this *BitReader) ReadBit() (bit int, eof bool) {
	if this.inBuffer == 0 {
		if this.atEOF {
			return 0, true
		}

		var b [1]byte

		if _, err := io.ReadFull(this.source, b[:]); err != nil {
			this.atEOF = true
			return 0, true
		}

		this.buffer = b[0]
		this.inBuffer = 8
	}

	this.inBuffer--
	bit = int((this.buffer >> this.inBuffer) & 1)
	this.bitsRead++
	return bit, false
}

// BitsRead returns the number of bits consumed so far.
func (this *BitReader) BitsRead() uint64 {
	return this.bitsRead
}

// ReadBitOrZero reads the next bit, substituting 0 on EOF. This is the
// decoder's bit-underrun policy: encoder flushing can finish several
// bits before the decoder's final renormalization shifts complete, and
// the padded zeros of the last byte (then synthetic zeros beyond it)
// must not fail the decode.
func (this *BitReader) ReadBitOrZero() int {
	bit, eof := this.ReadBit()

	if eof {
		return 0
	}

	return bit
}
