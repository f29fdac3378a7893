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

// Package app wires the entropy and bitio packages to a cobra-based
// command line, with one subcommand per operation.
package app

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

const appHeader = "arithc — static-model arithmetic coder"

// Logger is the CLI's single package-level diagnostic logger, configured
// once in NewRootCmd and shared by every subcommand. The core packages
// (bitio, entropy) never print; this is the only place in the module
// that writes progress or warning lines.
var Logger = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})

// NewRootCmd builds the arithc root command and its encode/decode/batch
// subcommands.
func NewRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "arithc",
		Short:         appHeader,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				Logger.SetLevel(log.DebugLevel)
			} else {
				Logger.SetLevel(log.WarnLevel)
			}
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print per-file progress and header warnings")

	root.AddCommand(newEncodeCmd(), newDecodeCmd(), newBatchCmd())
	return root
}
