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

// Package report turns edit plans into user-facing findings: printed
// diagnostics or in-place fixes. Zero findings is the normal outcome of a
// clean run, never an error.
package report

import (
	"fillmore-labs.com/qualorder/internal/plan"
	"fillmore-labs.com/qualorder/internal/srctext"
)

// Finding is one reported violation with its resolved source position.
type Finding struct {
	File    string
	Line    int
	Col     int
	Message string
	Plan    plan.Plan
}

// NewFinding resolves a plan's anchor against its buffer.
func NewFinding(b *srctext.Buffer, p plan.Plan) Finding {
	line, col := b.Position(p.Anchor)

	return Finding{
		File:    b.Name(),
		Line:    line,
		Col:     col,
		Message: p.Message,
		Plan:    p,
	}
}

// Findings resolves all plans of one buffer in order.
func Findings(b *srctext.Buffer, plans []plan.Plan) []Finding {
	fs := make([]Finding, 0, len(plans))
	for _, p := range plans {
		fs = append(fs, NewFinding(b, p))
	}

	return fs
}
