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

package checker

import (
	"flag"

	"fillmore-labs.com/qualorder/internal/run"
	"fillmore-labs.com/qualorder/internal/typeshape"
)

// RegisterFlags binds a checker's option values to command line flag values.
// A nil flag set value defaults to the program's command line.
func (c *Checker) RegisterFlags(flags *flag.FlagSet) {
	if flags == nil {
		flags = flag.CommandLine
	}

	registerFlags(flags, c.options)
}

func registerFlags(flags *flag.FlagSet, o *run.Options) {
	flags.Var(&o.Alignment, "align", "canonical qualifier position (none|left|right)")
	flags.Func("qualifier", "tracked qualifier (const|volatile|restrict)", func(s string) error {
		q, ok := typeshape.ParseQualifier(s)
		if !ok {
			return run.ErrUnknownQualifier
		}

		o.Qualifier = q

		return nil
	})
	flags.IntVar(&o.Jobs, "jobs", o.Jobs, "maximum concurrent file checks, 0 for one per CPU")
}
