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

package app

import (
	"github.com/gocompress/arithc"
	"github.com/gocompress/arithc/internal"
)

// reportResult logs a one-line per-file summary: input/output names,
// sizes, and a compression ratio. action is "encoded" or "decoded";
// original is always the uncompressed side's size regardless of
// direction.
func reportResult(action, inputName, outputName string, original, produced int64) {
	Logger.Info(action,
		"in", inputName,
		"out", outputName,
		"original", internal.FormatBytes(original),
		"produced", internal.FormatBytes(produced),
		"ratio", internal.FormatRatio(produced, original),
	)
}

// reportWarnings logs any non-fatal diagnostics a codestream header
// produced: a zero-frequency entry, or a frequency sum that does not
// match the declared total byte count.
func reportWarnings(inputName string, warnings []string) {
	for _, w := range warnings {
		Logger.Warn(w, "in", inputName)
	}
}

// progressListener adapts arithc.Listener to the CLI's logger, logging
// each encode/decode start/end event at debug level so --verbose runs
// show the two phases of a single file's operation.
type progressListener struct {
	name string
}

func (p *progressListener) ProcessEvent(evt *arithc.Event) {
	Logger.Debug("progress", "file", p.name, "event", evt.String(), "bytes", evt.Size())
}
