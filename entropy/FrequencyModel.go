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
	"encoding/binary"
	"fmt"
	"io"
)

const (
	// MAX_FREQ_SUM is the largest total byte count (equivalently,
	// largest frequency sum) this coder accepts.
	MAX_FREQ_SUM = uint64(1) << 28
)

// FrequencyTable is the static, order-0 byte-frequency model: a
// frequency per symbol, its cumulative start under ascending byte-value
// order, and an inverse lookup from cumulative start to symbol. Symbols
// absent from the input are absent from the table; a 256-slot array
// plus a sorted slice of the present symbols satisfies both the
// header's ascending-order iteration requirement and the decoder's
// greatest-key-less-or-equal lookup.
type FrequencyTable struct {
	freq    [256]uint32 // freq[s] == 0 means symbol s is absent
	cumOf   [256]uint64 // cumulative start of s, valid where freq[s] != 0
	symbols []byte      // present symbols, ascending
	cum     []uint64    // cum[i] is the cumulative start of symbols[i]
	Total   uint64      // sum of all frequencies; the arithmetic denominator
}

// BuildFrequencyTable performs the frequency pass: reads r to the end,
// counting occurrences of each byte value into
// 64-bit accumulators, then derives the cumulative table by iterating
// symbols in ascending byte order. It does not rewind r; the caller owns
// that (the second encoding pass needs an io.Seeker back to the start).
func BuildFrequencyTable(r io.Reader) (*FrequencyTable, error) {
	var counts [256]uint64
	br := bufio.NewReaderSize(r, 64*1024)

	for {
		b, err := br.ReadByte()

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, wrapErr(KindIO, err, "reading input during frequency pass")
		}

		counts[b]++
	}

	t := &FrequencyTable{}

	for s := 0; s < 256; s++ {
		if counts[s] == 0 {
			continue
		}

		if counts[s] > uint64(^uint32(0)) {
			return nil, newErr(KindTooLarge, "frequency count for byte %d exceeds 32 bits", s)
		}

		t.freq[s] = uint32(counts[s])
		t.symbols = append(t.symbols, byte(s))
	}

	cum := uint64(0)

	for _, s := range t.symbols {
		t.cum = append(t.cum, cum)
		t.cumOf[s] = cum
		cum += uint64(t.freq[s])
	}

	if cum != t.total() {
		return nil, newErr(KindInternal, "cumulative frequency mismatch (%d != %d)", cum, t.total())
	}

	t.Total = cum

	if t.Total > MAX_FREQ_SUM {
		return nil, newErr(KindTooLarge, "total byte count %d exceeds maximum %d", t.Total, MAX_FREQ_SUM)
	}

	return t, nil
}

func (t *FrequencyTable) total() uint64 {
	var sum uint64

	for _, s := range t.symbols {
		sum += uint64(t.freq[s])
	}

	return sum
}

// Freq returns the frequency and cumulative start for symbol s. The
// third return is false if s is absent from the table — an encoder
// calling this on a byte it just read is an internal-consistency bug,
// since the frequency pass is exact.
func (t *FrequencyTable) Freq(s byte) (freq uint32, cumStart uint64, ok bool) {
	if t.freq[s] == 0 {
		return 0, 0, false
	}

	return t.freq[s], t.cumOf[s], true
}

// Lookup finds the symbol whose half-open cumulative interval
// [cum, cum+freq) contains v. It is implemented as a binary search over
// the ascending cum slice for the greatest key <= v: a v of exactly 0
// against a table whose first key is 0 returns that symbol; only an
// empty table, or every key greater than v, is an error.
func (t *FrequencyTable) Lookup(v uint64) (byte, error) {
	if len(t.cum) == 0 {
		return 0, newErr(KindCorrupt, "symbol lookup against an empty frequency table")
	}

	// Greatest index i such that cum[i] <= v.
	lo, hi := 0, len(t.cum)-1

	if v < t.cum[0] {
		return 0, newErr(KindCorrupt, "scaled value %d is below the lowest cumulative boundary", v)
	}

	for lo < hi {
		mid := (lo + hi + 1) / 2

		if t.cum[mid] <= v {
			lo = mid
		} else {
			hi = mid - 1
		}
	}

	return t.symbols[lo], nil
}

// WriteHeader serializes the header: an 8-byte little-endian total byte
// count, a 4-byte little-endian symbol count
// K, then K {1-byte symbol, 4-byte little-endian frequency} records in
// ascending symbol order.
func (t *FrequencyTable) WriteHeader(w io.Writer) error {
	var hdr [12]byte
	binary.LittleEndian.PutUint64(hdr[0:8], t.Total)
	binary.LittleEndian.PutUint32(hdr[8:12], uint32(len(t.symbols)))

	if _, err := w.Write(hdr[:]); err != nil {
		return wrapErr(KindIO, err, "writing header")
	}

	rec := make([]byte, 5*len(t.symbols))

	for i, s := range t.symbols {
		rec[i*5] = s
		binary.LittleEndian.PutUint32(rec[i*5+1:i*5+5], t.freq[s])
	}

	if len(rec) > 0 {
		if _, err := w.Write(rec); err != nil {
			return wrapErr(KindIO, err, "writing frequency table")
		}
	}

	return nil
}

// ReadHeader parses the header. It returns the parsed table, the
// declared total byte count (the decode loop's termination signal,
// which may legitimately differ from the table's own frequency sum),
// and any non-fatal warnings encountered (a zero-frequency entry, or a
// sum/total mismatch).
func ReadHeader(r io.Reader) (table *FrequencyTable, declaredTotal uint64, warnings []string, err error) {
	var hdr [12]byte

	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, 0, nil, wrapErr(KindTruncated, err, "reading header")
	}

	declaredTotal = binary.LittleEndian.Uint64(hdr[0:8])
	numSymbols := binary.LittleEndian.Uint32(hdr[8:12])

	t := &FrequencyTable{}
	rec := make([]byte, 5)
	var sum uint64

	for i := uint32(0); i < numSymbols; i++ {
		if _, err := io.ReadFull(r, rec); err != nil {
			return nil, 0, nil, wrapErr(KindTruncated, err, "reading frequency table entry %d", i)
		}

		sym := rec[0]
		freq := binary.LittleEndian.Uint32(rec[1:5])

		if freq == 0 {
			warnings = append(warnings, fmt.Sprintf("symbol %d has zero frequency in header, skipped", sym))
			continue
		}

		t.freq[sym] = freq
		t.symbols = append(t.symbols, sym)
		sum += uint64(freq)
	}

	if sum != declaredTotal {
		if declaredTotal == 0 {
			return nil, 0, warnings, newErr(KindInconsistentHeader,
				"frequency sum %d is nonzero but declared total is zero", sum)
		}

		if sum == 0 {
			return nil, 0, warnings, newErr(KindInconsistentHeader,
				"frequency sum is zero but declared total is %d", declaredTotal)
		}

		warnings = append(warnings, fmt.Sprintf(
			"sum of header frequencies (%d) does not match declared total (%d)", sum, declaredTotal))
	}

	if sum > MAX_FREQ_SUM {
		return nil, 0, warnings, newErr(KindTooLarge, "frequency sum %d exceeds maximum %d", sum, MAX_FREQ_SUM)
	}

	cum := uint64(0)

	for _, s := range t.symbols {
		t.cum = append(t.cum, cum)
		t.cumOf[s] = cum
		cum += uint64(t.freq[s])
	}

	t.Total = sum
	return t, declaredTotal, warnings, nil
}

