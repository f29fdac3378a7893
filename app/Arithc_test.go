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
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmdEncodeDecodeSubcommands(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.txt")
	encoded := filepath.Join(dir, "out.arc")
	decoded := filepath.Join(dir, "roundtrip.txt")

	require.NoError(t, os.WriteFile(input, []byte("cobra wires the subcommands"), 0o644))

	root := NewRootCmd()
	root.SetArgs([]string{"encode", input, encoded})
	require.NoError(t, root.Execute())

	root = NewRootCmd()
	root.SetArgs([]string{"decode", encoded, decoded})
	require.NoError(t, root.Execute())

	got, err := os.ReadFile(decoded)
	require.NoError(t, err)
	assert.Equal(t, "cobra wires the subcommands", string(got))
}

func TestRootCmdRejectsWrongArgCount(t *testing.T) {
	root := NewRootCmd()
	root.SetArgs([]string{"encode", "onlyonearg"})
	assert.Error(t, root.Execute())
}

func TestRootCmdVerboseFlagRaisesLogLevel(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.txt")
	output := filepath.Join(dir, "out.arc")
	require.NoError(t, os.WriteFile(input, []byte("x"), 0o644))

	root := NewRootCmd()
	root.SetArgs([]string{"--verbose", "encode", input, output})
	require.NoError(t, root.Execute())
	assert.Equal(t, log.DebugLevel, Logger.GetLevel())
}
