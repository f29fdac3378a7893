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

	"github.com/spf13/cobra"

	"github.com/gocompress/arithc/entropy"
	"github.com/gocompress/arithc/internal"
)

func newDecodeCmd() *cobra.Command {
	var overwrite, stats bool

	cmd := &cobra.Command{
		Use:   "decode <input> <output>",
		Short: "Arithmetic-decode a file produced by encode",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(args[0], args[1], overwrite, stats)
		},
	}

	cmd.Flags().BoolVarP(&overwrite, "overwrite", "f", false, "overwrite the output file if it already exists")
	cmd.Flags().BoolVar(&stats, "stats", false, "print codestream size statistics")
	return cmd
}

// runDecode mirrors runEncode's file handling, in the opposite direction:
// the partial-output-on-failure guarantee applies here just as much,
// since a decode failure partway through a large file would otherwise
// leave a truncated reconstruction on disk.
func runDecode(inputName, outputName string, overwrite, stats bool) error {
	if internal.IsReservedName(outputName) {
		return fmt.Errorf("refusing to write to reserved name %q", outputName)
	}

	if !overwrite && internal.OutputExists(outputName) {
		return fmt.Errorf("output file %q already exists (use --overwrite)", outputName)
	}

	in, err := os.Open(inputName)

	if err != nil {
		return fmt.Errorf("opening input: %w", err)
	}

	defer in.Close()

	out, err := os.Create(outputName)

	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}

	warnings, decErr := entropy.Decode(in, out, &progressListener{name: inputName})

	if decErr != nil {
		out.Close()
		os.Remove(outputName)
		return decErr
	}

	if err := out.Close(); err != nil {
		os.Remove(outputName)
		return fmt.Errorf("closing output: %w", err)
	}

	reportWarnings(inputName, warnings)

	inInfo, err1 := os.Stat(inputName)
	outInfo, err2 := os.Stat(outputName)

	if err1 == nil && err2 == nil {
		reportResult("decoded", inputName, outputName, outInfo.Size(), inInfo.Size())

		if stats {
			Logger.Info("codestream statistics", "header+payload bytes", inInfo.Size())
		}
	}

	return nil
}
