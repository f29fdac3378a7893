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

// Package arithc defines the top level interfaces shared by the bit I/O
// adaptor and the arithmetic coder core.
//
// The implementations live in sub-packages: bitio holds the bit-level
// reader/writer pair, entropy holds the frequency model, the header
// codec and the encoder/decoder state machines.
package arithc

// BitWriter is the write side of the bit I/O adaptor.
// A BitWriter borrows its underlying sink for the duration of one encode
// call; the caller retains ownership and must not use the sink directly
// while a BitWriter wraps it.
type BitWriter interface {
	// WriteBit writes the least significant bit of b to the sink.
	// Silently does nothing if the sink has already failed; the failure
	// itself is reported by the sink's own error state.
	WriteBit(b int)

	// Flush zero-pads any partially filled byte and emits it. No-op if
	// the buffer is empty. Must be called before the sink is released.
	Flush() error

	// BitsWritten returns the number of bits written so far, including
	// any not yet flushed to a full byte.
	BitsWritten() uint64
}

// BitReader is the read side of the bit I/O adaptor.
type BitReader interface {
	// ReadBit returns the next bit, MSB-first within each source byte,
	// or EOF when the source is exhausted.
	ReadBit() (bit int, eof bool)

	// BitsRead returns the number of bits consumed so far.
	BitsRead() uint64
}

// Listener is implemented by observers of encode/decode progress.
type Listener interface {
	// ProcessEvent is called whenever the Listener receives an event.
	ProcessEvent(evt *Event)
}
