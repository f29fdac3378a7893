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
	"gopkg.in/yaml.v3"

	"github.com/gocompress/arithc/internal"
)

func newBatchCmd() *cobra.Command {
	var overwrite, stats, keepGoing bool

	cmd := &cobra.Command{
		Use:   "batch <jobs.yaml>",
		Short: "Run a fixed list of encode/decode jobs from a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(args[0], overwrite, stats, keepGoing)
		},
	}

	cmd.Flags().BoolVarP(&overwrite, "overwrite", "f", false, "overwrite output files that already exist")
	cmd.Flags().BoolVar(&stats, "stats", false, "print codestream size statistics for every job")
	cmd.Flags().BoolVar(&keepGoing, "keep-going", false, "run remaining jobs after one fails instead of stopping")
	return cmd
}

// runBatch iterates a fixed job list read from jobsPath: no directory
// scan, no globbing, just the entries named in the file, run in order.
func runBatch(jobsPath string, overwrite, stats, keepGoing bool) error {
	f, err := os.Open(jobsPath)

	if err != nil {
		return fmt.Errorf("opening job list: %w", err)
	}

	defer f.Close()

	var jobs []internal.Job

	if err := yaml.NewDecoder(f).Decode(&jobs); err != nil {
		return fmt.Errorf("parsing job list %q: %w", jobsPath, err)
	}

	if len(jobs) == 0 {
		return fmt.Errorf("job list %q contains no jobs", jobsPath)
	}

	var failures int

	for i, job := range jobs {
		Logger.Info("running job", "index", i, "mode", job.Mode, "input", job.Input, "output", job.Output)

		var jobErr error

		switch job.Mode {
		case "encode":
			jobErr = runEncode(job.Input, job.Output, overwrite, stats)
		case "decode":
			jobErr = runDecode(job.Input, job.Output, overwrite, stats)
		default:
			jobErr = fmt.Errorf("job %d: unknown mode %q (want encode or decode)", i, job.Mode)
		}

		if jobErr != nil {
			failures++
			Logger.Error("job failed", "index", i, "err", jobErr)

			if !keepGoing {
				return fmt.Errorf("job %d failed: %w", i, jobErr)
			}
		}
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d jobs failed", failures, len(jobs))
	}

	return nil
}
