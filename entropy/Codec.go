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

package entropy

import (
	"bufio"
	"io"

	"github.com/gocompress/arithc"
	"github.com/gocompress/arithc/bitio"
)

// countingWriter tracks the number of bytes that have passed through it,
// so Encode can report the final codestream size to its listeners
// without a second stat call.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

func notify(listeners []arithc.Listener, evtType int, size int64) {
	if len(listeners) == 0 {
		return
	}

	evt := arithc.NewEvent(evtType, size, "")

	for _, l := range listeners {
		l.ProcessEvent(evt)
	}
}

// Encode ties the frequency model and the arithmetic coder together into
// the full encode data flow: a frequency pass over r, a header write,
// then a second pass over r driving the encoder state machine. r must
// support Seek back to its start for the second pass. Warnings carries
// any non-fatal diagnostics (currently always empty for encode; kept
// symmetric with Decode's signature for the CLI layer). Any listeners
// are notified of EVT_ENCODE_START (input byte count) and
// EVT_ENCODE_END (codestream byte count) around the operation.
func Encode(r io.ReadSeeker, w io.Writer, listeners ...arithc.Listener) (warnings []string, err error) {
	table, err := BuildFrequencyTable(r)

	if err != nil {
		return nil, err
	}

	notify(listeners, arithc.EVT_ENCODE_START, int64(table.Total))

	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, wrapErr(KindIO, err, "rewinding input for the encoding pass")
	}

	cw := &countingWriter{w: w}
	bw := bufio.NewWriter(cw)

	if err := table.WriteHeader(bw); err != nil {
		return nil, err
	}

	if table.Total == 0 {
		// Empty input: the header alone is the entire codestream.
		if err := bw.Flush(); err != nil {
			return nil, wrapErr(KindIO, err, "flushing header")
		}

		notify(listeners, arithc.EVT_ENCODE_END, cw.n)
		return nil, nil
	}

	bitWriter := bitio.NewBitWriter(bw)
	enc := NewEncoder(bitWriter)
	br := bufio.NewReaderSize(r, 64*1024)

	for {
		b, err := br.ReadByte()

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, wrapErr(KindIO, err, "reading input during the encoding pass")
		}

		freq, cumStart, ok := table.Freq(b)

		if !ok {
			return nil, newErr(KindInternal, "byte %d absent from the frequency table built on the same input", b)
		}

		enc.EncodeSymbol(cumStart, freq, table)
	}

	if err := enc.Finish(); err != nil {
		return nil, wrapErr(KindIO, err, "flushing the encoded payload")
	}

	if err := bw.Flush(); err != nil {
		return nil, wrapErr(KindIO, err, "flushing output")
	}

	notify(listeners, arithc.EVT_ENCODE_END, cw.n)
	return nil, nil
}

// Decode reads a codestream from r and writes the reconstructed bytes
// to w. It returns any non-fatal header warnings (a zero-frequency
// entry, or a sum/total mismatch). Any listeners are notified of
// EVT_DECODE_START and EVT_DECODE_END, both carrying the declared
// output byte count (the only length known up front from the header).
func Decode(r io.Reader, w io.Writer, listeners ...arithc.Listener) (warnings []string, err error) {
	table, declaredTotal, warnings, err := ReadHeader(r)

	if err != nil {
		return warnings, err
	}

	notify(listeners, arithc.EVT_DECODE_START, int64(declaredTotal))

	if declaredTotal == 0 {
		notify(listeners, arithc.EVT_DECODE_END, 0)
		return warnings, nil
	}

	bitReader := bitio.NewBitReader(r)
	dec := NewDecoder(bitReader)

	if err := dec.Init(); err != nil {
		return warnings, err
	}

	bw := bufio.NewWriterSize(w, 64*1024)
	var decoded uint64

	for ; decoded < declaredTotal; decoded++ {
		b, err := dec.DecodeSymbol(table)

		if err != nil {
			return warnings, err
		}

		if err := bw.WriteByte(b); err != nil {
			return warnings, wrapErr(KindIO, err, "writing decoded output")
		}
	}

	if decoded != declaredTotal {
		return warnings, newErr(KindCorrupt, "decoded %d bytes but expected %d", decoded, declaredTotal)
	}

	if err := bw.Flush(); err != nil {
		return warnings, wrapErr(KindIO, err, "flushing decoded output")
	}

	notify(listeners, arithc.EVT_DECODE_END, int64(decoded))
	return warnings, nil
}
