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

func newEncodeCmd() *cobra.Command {
	var overwrite, stats bool

	cmd := &cobra.Command{
		Use:   "encode <input> <output>",
		Short: "Arithmetic-encode a file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEncode(args[0], args[1], overwrite, stats)
		},
	}

	cmd.Flags().BoolVarP(&overwrite, "overwrite", "f", false, "overwrite the output file if it already exists")
	cmd.Flags().BoolVar(&stats, "stats", false, "print codestream size statistics")
	return cmd
}

// runEncode implements the encode subcommand's file handling: reject
// reserved/existing output names up front, and delete a partial output
// on any failure — a failed run must not leave a corrupt file where a
// caller expects either the original absence or a complete codestream.
func runEncode(inputName, outputName string, overwrite, stats bool) error {
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

	warnings, encErr := entropy.Encode(in, out, &progressListener{name: inputName})

	if encErr != nil {
		out.Close()
		os.Remove(outputName)
		return encErr
	}

	if err := out.Close(); err != nil {
		os.Remove(outputName)
		return fmt.Errorf("closing output: %w", err)
	}

	reportWarnings(inputName, warnings)

	inInfo, err1 := os.Stat(inputName)
	outInfo, err2 := os.Stat(outputName)

	if err1 == nil && err2 == nil {
		reportResult("encoded", inputName, outputName, inInfo.Size(), outInfo.Size())

		if stats {
			Logger.Info("codestream statistics", "header+payload bytes", outInfo.Size())
		}
	}

	return nil
}
