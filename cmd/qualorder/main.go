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

// Qualorder checks and fixes the placement of type qualifiers in C-family
// source files.
package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"fillmore-labs.com/qualorder/internal/version"
)

var rootCmd = &cobra.Command{
	Use:           "qualorder",
	Short:         "Canonicalize type qualifier placement in C-family sources",
	Long:          `Qualorder reports declarations whose type qualifier is written on the wrong side of the type and can rewrite them in place.`,
	SilenceUsage:  true,
	SilenceErrors: false,
}

// exitCode is 1 when findings were reported, 0 otherwise; run errors exit 2.
var exitCode int

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(2)
	}

	os.Exit(exitCode)
}

// setupColor applies the --color persistent flag; "auto" keeps the library's
// terminal detection.
func setupColor(cmd *cobra.Command) {
	switch mode, _ := cmd.Flags().GetString("color"); mode {
	case "on":
		color.NoColor = false

	case "off":
		color.NoColor = true
	}
}
