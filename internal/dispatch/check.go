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

package dispatch

import (
	"log/slog"

	"fillmore-labs.com/qualorder/internal/locate"
	"fillmore-labs.com/qualorder/internal/plan"
	"fillmore-labs.com/qualorder/internal/srctext"
	"fillmore-labs.com/qualorder/internal/typeshape"
)

type checker struct {
	b    *srctext.Buffer
	opts Options
}

// walk checks one (type, span) context and recurses into template
// specialization arguments.
func (c checker) walk(t typeshape.Node, declStart, nameStart int, mode srctext.MatchMode, plans *[]plan.Plan) {
	if p, ok := c.checkOne(t, declStart, nameStart, mode); ok {
		*plans = append(*plans, p)
	}

	inner, _, _ := typeshape.StripIndirections(t)

	if spec, ok := typeshape.StripElaboration(inner).(*typeshape.TemplateSpec); ok {
		c.walkArgs(spec, plans)
	}
}

// walkArgs visits the specialization arguments left to right. An argument's
// right boundary is the comma preceding the next argument, found by backward
// token search, or the closing angle bracket for the last one. Non-type
// arguments are never checked but still consume their boundary slot.
func (c checker) walkArgs(spec *typeshape.TemplateSpec, plans *[]plan.Plan) {
	left := spec.LAngle + 1

	for i, arg := range spec.Args {
		right, ok := c.argRight(spec, i)
		if !ok {
			c.opts.logger().Debug("template argument boundary not found",
				slog.String("template", spec.Name), slog.Int("argument", i))

			return // later boundaries derive from this one
		}

		if arg.Type != nil {
			c.walk(arg.Type, left, right, srctext.MatchAngleSuffix, plans)
		}

		left = c.b.SkipForward(right + 1)
	}
}

func (c checker) argRight(spec *typeshape.TemplateSpec, i int) (int, bool) {
	if i == len(spec.Args)-1 {
		return spec.RAngle, true
	}

	comma, ok := c.b.FindBackward(spec.Args[i+1].ArgSpan.Start, ",", srctext.MatchExact)
	if !ok {
		return 0, false
	}

	return comma.Start, true
}

// checkOne runs the resolve, locate and plan stages for a single context.
// Any inconsistency suppresses the finding instead of producing an edit.
func (c checker) checkOne(t typeshape.Node, declStart, nameStart int, mode srctext.MatchMode) (plan.Plan, bool) {
	sp := t.Span()
	if !sp.Valid() || sp.End > c.b.Len() || declStart < 0 || nameStart > c.b.Len() {
		return plan.Plan{}, false // not analyzable
	}

	switch typeshape.QualifierPresence(t, c.opts.Qualifier) {
	case typeshape.PresenceConfirmed:

	case typeshape.PresenceTextualOnly:
		c.opts.logger().Debug("qualifier appears only in the canonical spelling",
			slog.String("buffer", c.b.Name()), slog.Int("offset", sp.Start))

		return plan.Plan{}, false

	default:
		return plan.Plan{}, false
	}

	before := typeshape.RangeBeforeType(t, declStart)

	after, ok := typeshape.RangeAfterType(c.b, t, nameStart)
	if !ok {
		return plan.Plan{}, false
	}

	qual, ok := locate.Qualifier(c.b, before, after, c.opts.Qualifier.Spelling(), mode)
	if !ok {
		c.opts.logger().Debug("qualifier not found in source text",
			slog.String("buffer", c.b.Name()), slog.Int("offset", sp.Start),
			slog.String("qualifier", c.opts.Qualifier.Spelling()))

		return plan.Plan{}, false
	}

	return plan.Build(c.b, c.opts.Alignment, declStart, after, qual)
}
