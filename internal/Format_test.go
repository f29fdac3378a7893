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
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatBytes(t *testing.T) {
	assert.Equal(t, "0 B", FormatBytes(0))
	assert.Equal(t, "512 B", FormatBytes(512))
	assert.Equal(t, "1.0 KiB", FormatBytes(1024))
	assert.Equal(t, "1.5 KiB", FormatBytes(1536))
	assert.Equal(t, "1.0 MiB", FormatBytes(1<<20))
}

func TestFormatRatio(t *testing.T) {
	assert.Equal(t, "n/a", FormatRatio(0, 0))
	assert.Equal(t, "50.00%", FormatRatio(50, 100))
	assert.Equal(t, "100.00%", FormatRatio(100, 100))
}

func TestIsReservedNameNonWindows(t *testing.T) {
	// On non-Windows platforms this is always false; the Windows-only
	// branch is exercised by inspection, not by this cross-platform test.
	if runtime.GOOS != "windows" {
		assert.False(t, IsReservedName("CON"))
	}
}
