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

// Package dispatch drives the qualifier placement check over the supported
// declaration shapes: plain variables, function return types, typedefs and
// template specialization arguments.
//
// Each declaration is analyzed start to finish with no shared state, so the
// caller may process declarations in any order or in parallel. Findings for
// template arguments are produced in left-to-right argument order.
package dispatch

import (
	"log/slog"

	"fillmore-labs.com/qualorder/internal/config"
	"fillmore-labs.com/qualorder/internal/plan"
	"fillmore-labs.com/qualorder/internal/srctext"
	"fillmore-labs.com/qualorder/internal/typeshape"
)

// Kind discriminates the supported declaration shapes.
type Kind uint8

const (
	// KindVariable is a plain variable declaration.
	KindVariable Kind = iota

	// KindFunction is a function declaration; only the return type is
	// checked.
	KindFunction

	// KindTypedef is a type alias declaration.
	KindTypedef
)

// Decl is one externally discovered declaration site.
type Decl struct {
	Kind Kind

	// Type is the declared type. For functions it is ignored in favor of
	// Return.
	Type typeshape.Node

	// Return is the function return type, set only for [KindFunction].
	Return typeshape.Node

	// Start is the declaration's start offset. For typedefs it points past
	// the typedef keyword, so a left-aligned fix stays inside the alias.
	Start int

	// NameStart is the offset where the declared name begins.
	NameStart int
}

// Options configure a check run.
type Options struct {
	// Alignment is the canonical qualifier position. AlignNone disables
	// the check.
	Alignment config.Alignment

	// Qualifier is the tracked qualifier keyword.
	Qualifier typeshape.Qualifier

	// Logger receives debug records for suppressed findings.
	// Nil means [slog.Default].
	Logger *slog.Logger
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}

	return slog.Default()
}

// CheckDecl analyzes one declaration site and returns a plan for every
// placement violation, including violations inside template specialization
// arguments. Unanalyzable declarations yield no plans and no error: an
// internal inconsistency only ever drops the current declaration.
func CheckDecl(b *srctext.Buffer, opts Options, d Decl) []plan.Plan {
	if opts.Alignment == config.AlignNone {
		return nil
	}

	typ := d.Type
	if d.Kind == KindFunction {
		// A function-shaped dispatch without a resolved return type is a
		// front-end contract violation, not a user code defect.
		typ = d.Return
	}

	if typ == nil {
		return nil
	}

	c := checker{b: b, opts: opts}

	var plans []plan.Plan
	c.walk(typ, d.Start, d.NameStart, srctext.MatchExact, &plans)

	return plans
}
