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

package internal

import (
	"errors"
	"io"
)

// BufferStream is a closable, seekable in-memory byte stream used by
// tests to stand in for the os.File the CLI layer passes to Encode, which
// needs an io.ReadSeeker so the frequency pass can rewind for the second,
// encoding pass. Unlike bytes.Buffer, reading does not
// discard the underlying data, so Seek(0, io.SeekStart) can replay it.
type BufferStream struct {
	buf    []byte
	pos    int
	closed bool
}

// NewBufferStream creates a new instance of BufferStream, optionally
// seeded with initial content.
func NewBufferStream(initial []byte) *BufferStream {
	return &BufferStream{buf: initial}
}

// Write appends b to the stream and returns its length.
func (this *BufferStream) Write(b []byte) (int, error) {
	if this.closed {
		return 0, errors.New("stream closed")
	}

	this.buf = append(this.buf, b...)
	return len(b), nil
}

// Read copies from the current read offset into b, advancing the
// offset. Returns (0, io.EOF) once the offset reaches the end.
func (this *BufferStream) Read(b []byte) (int, error) {
	if this.closed {
		return 0, errors.New("stream closed")
	}

	if this.pos >= len(this.buf) {
		return 0, io.EOF
	}

	n := copy(b, this.buf[this.pos:])
	this.pos += n
	return n, nil
}

// Seek implements io.Seeker. Only io.SeekStart and io.SeekEnd with a
// zero offset are required by this package's callers, but the general
// form is implemented for interface completeness.
func (this *BufferStream) Seek(offset int64, whence int) (int64, error) {
	if this.closed {
		return 0, errors.New("stream closed")
	}

	var base int

	switch whence {
	case io.SeekStart:
		base = 0
	case io.SeekCurrent:
		base = this.pos
	case io.SeekEnd:
		base = len(this.buf)
	default:
		return 0, errors.New("invalid whence")
	}

	newPos := base + int(offset)

	if newPos < 0 || newPos > len(this.buf) {
		return 0, errors.New("seek out of range")
	}

	this.pos = newPos
	return int64(newPos), nil
}

// Close makes the stream unavailable for future reads or writes.
func (this *BufferStream) Close() error {
	this.closed = true
	return nil
}

// Len returns the total size of the stream's content.
func (this *BufferStream) Len() int {
	return len(this.buf)
}

// Bytes returns the full content written to the stream so far.
func (this *BufferStream) Bytes() []byte {
	return this.buf
}
