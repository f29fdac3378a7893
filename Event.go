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

package arithc

import (
	"fmt"
	"time"
)

const (
	EVT_ENCODE_START = 0 // Encoding starts
	EVT_ENCODE_END   = 1 // Encoding ends
	EVT_DECODE_START = 2 // Decoding starts
	EVT_DECODE_END   = 3 // Decoding ends
)

// Event describes a single encode/decode progress notification.
type Event struct {
	eventType int
	size      int64
	eventTime time.Time
	msg       string
}

// NewEvent creates an Event for the given type and payload size, timestamped now.
func NewEvent(evtType int, size int64, msg string) *Event {
	return &Event{eventType: evtType, size: size, eventTime: time.Now(), msg: msg}
}

// Type returns the event type (one of the EVT_* constants).
func (this *Event) Type() int {
	return this.eventType
}

// Size returns the byte count associated with the event: the input size
// for EVT_ENCODE_START, the codestream size for EVT_ENCODE_END, and the
// decoded output size (as declared in the header) for both
// EVT_DECODE_START and EVT_DECODE_END.
func (this *Event) Size() int64 {
	return this.size
}

// Time returns when the event was created.
func (this *Event) Time() time.Time {
	return this.eventTime
}

// String returns a human-readable description of the event.
func (this *Event) String() string {
	if len(this.msg) > 0 {
		return this.msg
	}

	t := ""

	switch this.eventType {
	case EVT_ENCODE_START:
		t = "ENCODE_START"
	case EVT_ENCODE_END:
		t = "ENCODE_END"
	case EVT_DECODE_START:
		t = "DECODE_START"
	case EVT_DECODE_END:
		t = "DECODE_END"
	}

	return fmt.Sprintf("{ \"type\":\"%s\", \"size\":%d, \"time\":%d }", t, this.size,
		this.eventTime.UnixNano()/1000000)
}
