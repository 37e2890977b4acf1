// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/spf13/cobra"

	"fillmore-labs.com/qualorder/internal/config"
	"fillmore-labs.com/qualorder/internal/report"
	"fillmore-labs.com/qualorder/internal/run"
	"fillmore-labs.com/qualorder/internal/typeshape"
)

var checkCmd = &cobra.Command{
	Use:   "check [paths...]",
	Short: "Check qualifier placement in the given files and directories",
	Args:  cobra.ArbitraryArgs,
	RunE:  runCheck,
}

func init() {
	f := checkCmd.Flags()

	f.String("align", "", "canonical qualifier position (none|left|right)")
	f.String("qualifier", "", "tracked qualifier (const|volatile|restrict)")
	f.Bool("fix", false, "rewrite files in place")
	f.Bool("quiet", false, "suppress the summary line")
	f.Bool("show-source", true, "echo the offending source line")
	f.Int("jobs", 0, "maximum concurrent file checks, 0 for one per CPU")
	f.String("config", config.DefaultFileName, "configuration file")
}

func runCheck(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		args = []string{"."}
	}

	setupColor(cmd)

	opts, err := buildOptions(cmd)
	if err != nil {
		return err
	}

	results, err := opts.Run(cmd.Context(), args)
	if err != nil {
		return err
	}

	printer := report.NewPrinter(cmd.OutOrStdout(), opts.Behavior)

	fixed := 0
	for _, res := range results {
		printer.File(res.Buffer, res.Findings)
		fixed += res.Fixed
	}

	printer.Summary()

	if printer.Count() > fixed {
		exitCode = 1
	}

	return nil
}

// buildOptions layers the configuration file under any explicitly set flags.
func buildOptions(cmd *cobra.Command) (*run.Options, error) {
	f := cmd.Flags()

	cfgPath, _ := f.GetString("config")

	file, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}

	opts, err := run.FromFile(file)
	if err != nil {
		return nil, err
	}

	if f.Changed("align") {
		s, _ := f.GetString("align")

		a, err := config.ParseAlignment(s)
		if err != nil {
			return nil, err
		}

		opts.Alignment = a
	}

	if f.Changed("qualifier") {
		s, _ := f.GetString("qualifier")

		q, ok := typeshape.ParseQualifier(s)
		if !ok {
			return nil, run.ErrUnknownQualifier
		}

		opts.Qualifier = q
	}

	if f.Changed("jobs") {
		opts.Jobs, _ = f.GetInt("jobs")
	}

	fix, _ := f.GetBool("fix")
	opts.Behavior.Set(config.ApplyFixes, fix)

	quiet, _ := f.GetBool("quiet")
	opts.Behavior.Set(config.Quiet, quiet)

	show, _ := f.GetBool("show-source")
	opts.Behavior.Set(config.ShowSource, show)

	return opts, nil
}
