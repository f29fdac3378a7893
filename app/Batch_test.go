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
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunBatchEncodeAndDecodeJobs(t *testing.T) {
	dir := t.TempDir()
	inA := filepath.Join(dir, "a.txt")
	inB := filepath.Join(dir, "b.txt")
	encA := filepath.Join(dir, "a.arc")
	decB := filepath.Join(dir, "b.decoded")

	require.NoError(t, os.WriteFile(inA, []byte("alpha alpha beta"), 0o644))
	require.NoError(t, os.WriteFile(inB, []byte("gamma gamma delta"), 0o644))

	encB := filepath.Join(dir, "b.arc")
	require.NoError(t, runEncode(inB, encB, false, false))

	jobs := fmt.Sprintf(`
- mode: encode
  input: %s
  output: %s
- mode: decode
  input: %s
  output: %s
`, inA, encA, encB, decB)

	jobsPath := filepath.Join(dir, "jobs.yaml")
	require.NoError(t, os.WriteFile(jobsPath, []byte(jobs), 0o644))

	require.NoError(t, runBatch(jobsPath, false, false, false))

	_, err := os.Stat(encA)
	require.NoError(t, err)

	got, err := os.ReadFile(decB)
	require.NoError(t, err)
	assert.Equal(t, "gamma gamma delta", string(got))
}

func TestRunBatchStopsOnFirstFailureWithoutKeepGoing(t *testing.T) {
	dir := t.TempDir()

	jobs := fmt.Sprintf(`
- mode: encode
  input: %s
  output: %s
- mode: encode
  input: %s
  output: %s
`, filepath.Join(dir, "missing.txt"), filepath.Join(dir, "out1.arc"),
		filepath.Join(dir, "missing.txt"), filepath.Join(dir, "out2.arc"))

	jobsPath := filepath.Join(dir, "jobs.yaml")
	require.NoError(t, os.WriteFile(jobsPath, []byte(jobs), 0o644))

	err := runBatch(jobsPath, false, false, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "job 0 failed")
}

func TestRunBatchRejectsEmptyJobList(t *testing.T) {
	dir := t.TempDir()
	jobsPath := filepath.Join(dir, "jobs.yaml")
	require.NoError(t, os.WriteFile(jobsPath, []byte("[]"), 0o644))

	err := runBatch(jobsPath, false, false, false)
	assert.Error(t, err)
}

func TestRunBatchRejectsUnknownMode(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(in, []byte("x"), 0o644))

	jobs := fmt.Sprintf(`
- mode: frobnicate
  input: %s
  output: %s
`, in, filepath.Join(dir, "out"))

	jobsPath := filepath.Join(dir, "jobs.yaml")
	require.NoError(t, os.WriteFile(jobsPath, []byte(jobs), 0o644))

	err := runBatch(jobsPath, false, false, false)
	assert.Error(t, err)
}
