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
	"github.com/gocompress/arithc/bitio"
)

// Fixed-width code value constants, at the 32-bit code width.
const (
	CODE_VALUE_BITS = 32
	TOP_VALUE       = uint32(0xFFFFFFFF)
	FIRST_QTR       = TOP_VALUE/4 + 1 // 2^30
	HALF            = 2 * FIRST_QTR   // 2^31
	THIRD_QTR       = 3 * FIRST_QTR   // 3*2^30
)

// Encoder is the arithmetic encoder state machine. All state is created
// for a single Encode call and discarded at the end; there is no
// process-wide state.
type Encoder struct {
	low          uint32
	high         uint32
	bitsToFollow int
	w            *bitio.BitWriter
}

// NewEncoder creates an Encoder writing through w, with the interval
// initialized to its full range.
func NewEncoder(w *bitio.BitWriter) *Encoder {
	return &Encoder{low: 0, high: TOP_VALUE, w: w}
}

// outputBitPlusFollow writes bit, then bitsToFollow copies of its
// complement, then resets the counter — the standard E3 resolution: each
// deferred bit is the opposite of the next confirming bit.
func (e *Encoder) outputBitPlusFollow(bit int) {
	e.w.WriteBit(bit)

	for ; e.bitsToFollow > 0; e.bitsToFollow-- {
		e.w.WriteBit(1 - bit)
	}
}

// EncodeSymbol narrows [low, high] to the sub-interval of symbol s under
// table t, then runs the E1/E2/E3 renormalization loop. cumStart and
// freq are the symbol's cumulative start and frequency under t.
func (e *Encoder) EncodeSymbol(cumStart uint64, freq uint32, t *FrequencyTable) {
	rng := uint64(e.high) - uint64(e.low) + 1

	e.high = e.low + uint32(rng*(cumStart+uint64(freq))/t.Total) - 1
	e.low = e.low + uint32(rng*cumStart/t.Total)

	for {
		switch {
		case e.high < HALF:
			e.outputBitPlusFollow(0)
		case e.low >= HALF:
			e.outputBitPlusFollow(1)
			e.low -= HALF
			e.high -= HALF
		case e.low >= FIRST_QTR && e.high < THIRD_QTR:
			e.bitsToFollow++
			e.low -= FIRST_QTR
			e.high -= FIRST_QTR
		default:
			return
		}

		e.low <<= 1
		e.high = (e.high << 1) | 1
	}
}

// Finish emits the minimum closing bits that leave at least one code
// value inside the final interval on the decoder side, then flushes the
// bit writer. Must be called exactly once, after the last symbol.
func (e *Encoder) Finish() error {
	e.bitsToFollow++

	if e.low < FIRST_QTR {
		e.outputBitPlusFollow(0)
	} else {
		e.outputBitPlusFollow(1)
	}

	return e.w.Flush()
}

// Decoder is the arithmetic decoder state machine, the dual of Encoder.
type Decoder struct {
	low   uint32
	high  uint32
	value uint32
	r     *bitio.BitReader
}

// NewDecoder creates a Decoder reading through r. Init must be called
// once, after header parsing and before the first DecodeSymbol call.
func NewDecoder(r *bitio.BitReader) *Decoder {
	return &Decoder{low: 0, high: TOP_VALUE, r: r}
}

// Init primes value with the first CODE_VALUE_BITS bits of the payload,
// MSB-first. An EOF before the first bit (no payload at all) is fatal.
// A payload shorter than CODE_VALUE_BITS bits is padded with zero bits,
// the same underrun policy DecodeSymbol applies: for short inputs the
// encoder's closing bits end well before a full code value.
func (d *Decoder) Init() error {
	for i := 0; i < CODE_VALUE_BITS; i++ {
		bit, eof := d.r.ReadBit()

		if eof && i == 0 {
			return newErr(KindTruncated,
				"premature EOF initializing decoder (read %d of %d bits)", i, CODE_VALUE_BITS)
		}

		d.value = (d.value << 1) | uint32(bit)
	}

	return nil
}

// DecodeSymbol locates the symbol whose cumulative interval contains the
// scaled code value, narrows [low, high] (and value) to that symbol's
// sub-interval, then runs the decoder's renormalization loop, shifting
// one new bit into value per step (substituting zero past EOF once the
// payload is exhausted).
func (d *Decoder) DecodeSymbol(t *FrequencyTable) (byte, error) {
	rng := uint64(d.high) - uint64(d.low) + 1

	if rng == 0 {
		return 0, newErr(KindCorrupt, "decoder range collapsed to zero")
	}

	scaled := ((uint64(d.value)-uint64(d.low)+1)*t.Total - 1) / rng

	sym, err := t.Lookup(scaled)

	if err != nil {
		return 0, err
	}

	freq, cumStart, ok := t.Freq(sym)

	if !ok {
		return 0, newErr(KindInternal, "symbol %d returned by Lookup is absent from its own table", sym)
	}

	d.high = d.low + uint32(rng*(cumStart+uint64(freq))/t.Total) - 1
	d.low = d.low + uint32(rng*cumStart/t.Total)

	for {
		switch {
		case d.high < HALF:
			// no bit emitted, no state shift besides the common shift below
		case d.low >= HALF:
			d.low -= HALF
			d.high -= HALF
			d.value -= HALF
		case d.low >= FIRST_QTR && d.high < THIRD_QTR:
			d.low -= FIRST_QTR
			d.high -= FIRST_QTR
			d.value -= FIRST_QTR
		default:
			return sym, nil
		}

		d.low <<= 1
		d.high = (d.high << 1) | 1
		d.value = (d.value << 1) | uint32(d.r.ReadBitOrZero())
	}
}
