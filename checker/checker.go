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
	"context"

	"fillmore-labs.com/qualorder/internal/cdecl"
	"fillmore-labs.com/qualorder/internal/dispatch"
	"fillmore-labs.com/qualorder/internal/plan"
	"fillmore-labs.com/qualorder/internal/report"
	"fillmore-labs.com/qualorder/internal/run"
	"fillmore-labs.com/qualorder/internal/srctext"
)

// Public API constants for the qualorder checker.
const (
	name = "qualorder"
	doc  = `qualorder canonicalizes the position of type qualifiers in C-family declarations`
	url  = "https://pkg.go.dev/fillmore-labs.com/qualorder"
)

// Checker runs the qualifier placement check.
// It allows for programmatic configuration using [Option], which is useful
// for integrating the check into other tools; the command line interface is
// built on top of it.
type Checker struct {
	options *run.Options
}

// New creates a new [Checker].
func New(opts ...Option) *Checker {
	r := run.DefaultOptions()
	Options(opts).apply(r)

	return &Checker{options: r}
}

// Finding is one reported violation.
type Finding = report.Finding

// FileResult is the outcome of checking one file.
type FileResult = run.FileResult

// CheckSource analyzes one in-memory source file and returns its findings in
// source order. The source bytes are never mutated.
func (c *Checker) CheckSource(fileName string, src []byte) []Finding {
	b := srctext.NewBuffer(fileName, src)

	return report.Findings(b, c.plans(b))
}

// FixSource analyzes one in-memory source file and returns the rewritten
// contents with every non-conflicting fix applied, along with the findings.
func (c *Checker) FixSource(fileName string, src []byte) (string, []Finding) {
	b := srctext.NewBuffer(fileName, src)
	plans := c.plans(b)

	fixed, _ := report.Fix(b, plans)

	return fixed, report.Findings(b, plans)
}

// CheckFiles runs the check over files and directories, honoring the
// configured concurrency, and returns per-file results ordered by path.
func (c *Checker) CheckFiles(ctx context.Context, paths []string) ([]FileResult, error) {
	return c.options.Run(ctx, paths)
}

func (c *Checker) plans(b *srctext.Buffer) []plan.Plan {
	opts := dispatch.Options{
		Alignment: c.options.Alignment,
		Qualifier: c.options.Qualifier,
		Logger:    c.options.Logger,
	}

	var plans []plan.Plan
	for _, d := range cdecl.Parse(b) {
		plans = append(plans, dispatch.CheckDecl(b, opts, d)...)
	}

	return plans
}
