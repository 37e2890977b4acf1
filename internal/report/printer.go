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

package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"fillmore-labs.com/qualorder/internal/config"
	"fillmore-labs.com/qualorder/internal/srctext"
)

// Printer writes findings in a compiler-style diagnostic format.
type Printer struct {
	w        io.Writer
	behavior config.Behavior

	position *color.Color
	warning  *color.Color

	files    int
	findings int
}

// NewPrinter returns a [Printer] writing to w.
func NewPrinter(w io.Writer, behavior config.Behavior) *Printer {
	return &Printer{
		w:        w,
		behavior: behavior,
		position: color.New(color.Bold),
		warning:  color.New(color.FgYellow, color.Bold),
	}
}

// File prints the findings of one buffer, in order.
func (pr *Printer) File(b *srctext.Buffer, findings []Finding) {
	pr.files++
	pr.findings += len(findings)

	for _, f := range findings {
		fmt.Fprintf(pr.w, "%s %s %s\n",
			pr.position.Sprintf("%s:%d:%d:", f.File, f.Line, f.Col),
			pr.warning.Sprint("warning:"),
			f.Message)

		if pr.behavior.Enabled(config.ShowSource) {
			pr.sourceLine(b, f)
		}
	}
}

// sourceLine echoes the offending line with a column marker.
func (pr *Printer) sourceLine(b *srctext.Buffer, f Finding) {
	src := b.String()

	start := f.Plan.Anchor - (f.Col - 1)
	if start < 0 || start > len(src) {
		return
	}

	end := strings.IndexByte(src[start:], '\n')
	if end < 0 {
		end = len(src) - start
	}

	line := src[start : start+end]

	fmt.Fprintf(pr.w, "\t%s\n\t%s^\n", line, strings.Repeat(" ", f.Col-1))
}

// Summary prints the run totals unless quiet mode is enabled.
func (pr *Printer) Summary() {
	if pr.behavior.Enabled(config.Quiet) {
		return
	}

	noun := "findings"
	if pr.findings == 1 {
		noun = "finding"
	}

	fmt.Fprintf(pr.w, "%d %s in %d files\n", pr.findings, noun, pr.files)
}

// Count returns the number of findings printed so far.
func (pr *Printer) Count() int { return pr.findings }
