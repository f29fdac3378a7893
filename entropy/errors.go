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

import "fmt"

// Kind classifies a CoderError into one of a small set of failure
// categories. The names are illustrative identifiers, not a stable wire
// format.
type Kind int

const (
	// KindIO wraps an underlying source/sink failure (open/read/write).
	KindIO Kind = iota

	// KindTruncated signals a header short read, or a decoder
	// initialization that hit EOF before reading any payload bit.
	KindTruncated

	// KindTooLarge signals the total byte count exceeds MAX_FREQ_SUM, or
	// a single frequency does not fit in 32 bits.
	KindTooLarge

	// KindInconsistentHeader signals a zero frequency sum with nonzero
	// total bytes, or the inverse.
	KindInconsistentHeader

	// KindCorrupt signals a decoder symbol lookup that fell below the
	// lowest cumulative boundary, a collapsed range, or a byte-count
	// mismatch at the end of decoding.
	KindCorrupt

	// KindInternal signals a cumulative-sum mismatch or a missing symbol
	// during the encoder's second pass — both indicate a bug, not a bad
	// input or a bad stream.
	KindInternal
)

func (k Kind) String() string {
	switch k {
	case KindIO:
		return "IO"
	case KindTruncated:
		return "Truncated"
	case KindTooLarge:
		return "TooLarge"
	case KindInconsistentHeader:
		return "InconsistentHeader"
	case KindCorrupt:
		return "Corrupt"
	case KindInternal:
		return "Internal"
	default:
		return "Unknown"
	}
}

// CoderError is the error type returned by every operation in this
// package. It carries a Kind plus a human-readable message and, where
// one exists, the underlying error (so callers can still errors.Is/As
// down to an *os.PathError or io.ErrUnexpectedEOF).
type CoderError struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *CoderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}

	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *CoderError) Unwrap() error {
	return e.Err
}

func newErr(kind Kind, msg string, args ...any) *CoderError {
	return &CoderError{Kind: kind, Msg: fmt.Sprintf(msg, args...)}
}

func wrapErr(kind Kind, err error, msg string, args ...any) *CoderError {
	return &CoderError{Kind: kind, Msg: fmt.Sprintf(msg, args...), Err: err}
}
