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

package plan_test

import (
	"testing"

	"fillmore-labs.com/qualorder/internal/config"
	. "fillmore-labs.com/qualorder/internal/plan"
	"fillmore-labs.com/qualorder/internal/srctext"
)

func TestBuild(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name      string
		src       string
		align     config.Alignment
		declStart int
		after     srctext.Span
		qual      srctext.Span
		want      string // rewritten source, "" when no plan is expected
	}{
		{
			name:      "left_moves_qualifier",
			src:       "int const x = 5;",
			align:     config.AlignLeft,
			declStart: 0,
			after:     srctext.Span{Start: 3, End: 10},
			qual:      srctext.Span{Start: 4, End: 10},
			want:      "const int x = 5;",
		},
		{
			name:      "left_already_canonical",
			src:       "const int x = 5;",
			align:     config.AlignLeft,
			declStart: 0,
			after:     srctext.Span{Start: 9, End: 10},
			qual:      srctext.Span{Start: 0, End: 6},
			want:      "",
		},
		{
			name:      "right_moves_qualifier",
			src:       "const int x = 5;",
			align:     config.AlignRight,
			declStart: 0,
			after:     srctext.Span{Start: 9, End: 10},
			qual:      srctext.Span{Start: 0, End: 6},
			want:      "int const x = 5;",
		},
		{
			name:      "right_already_canonical",
			src:       "int const x = 5;",
			align:     config.AlignRight,
			declStart: 0,
			after:     srctext.Span{Start: 3, End: 10},
			qual:      srctext.Span{Start: 4, End: 10},
			want:      "",
		},
		{
			name:      "left_keeps_pointer_in_place",
			src:       "int const * p;",
			align:     config.AlignLeft,
			declStart: 0,
			after:     srctext.Span{Start: 3, End: 10},
			qual:      srctext.Span{Start: 4, End: 10},
			want:      "const int * p;",
		},
		{
			name:      "left_adds_missing_space",
			src:       "vector<int const, char> v;",
			align:     config.AlignLeft,
			declStart: 7,
			after:     srctext.Span{Start: 10, End: 16},
			qual:      srctext.Span{Start: 11, End: 16},
			want:      "vector<const int , char> v;",
		},
		{
			name:      "right_moves_trailing_comment_once",
			src:       "const /* x */ int y;",
			align:     config.AlignRight,
			declStart: 0,
			after:     srctext.Span{Start: 17, End: 18},
			qual:      srctext.Span{Start: 0, End: 14},
			want:      "int const /* x */ y;",
		},
		{
			name:      "none_never_plans",
			src:       "int const x = 5;",
			align:     config.AlignNone,
			declStart: 0,
			after:     srctext.Span{Start: 3, End: 10},
			qual:      srctext.Span{Start: 4, End: 10},
			want:      "",
		},
		{
			name:      "empty_qualifier_span",
			src:       "int const x = 5;",
			align:     config.AlignLeft,
			declStart: 0,
			after:     srctext.Span{Start: 3, End: 10},
			qual:      srctext.Span{Start: 4, End: 4},
			want:      "",
		},
		{
			name:      "qualifier_past_buffer",
			src:       "int const",
			align:     config.AlignLeft,
			declStart: 0,
			after:     srctext.Span{Start: 3, End: 12},
			qual:      srctext.Span{Start: 4, End: 12},
			want:      "",
		},
		{
			name:      "target_inside_qualifier",
			src:       "int const x;",
			align:     config.AlignRight,
			declStart: 0,
			after:     srctext.Span{Start: 5, End: 9},
			qual:      srctext.Span{Start: 4, End: 10},
			want:      "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b := srctext.NewBuffer("test.cc", []byte(tt.src))

			p, ok := Build(b, tt.align, tt.declStart, tt.after, tt.qual)
			if ok != (tt.want != "") {
				t.Fatalf("Expected plan=%v, got %v", tt.want != "", ok)
			}

			if !ok {
				return
			}

			if got, want := p.Anchor, tt.declStart; got != want {
				t.Errorf("Expected anchor %d, got %d", want, got)
			}

			if got, want := p.Message, Message; got != want {
				t.Errorf("Expected message %q, got %q", want, got)
			}

			out, err := Apply(tt.src, p.Edits)
			if err != nil {
				t.Fatalf("Expected edits to apply, got %v", err)
			}

			if got, want := out, tt.want; got != want {
				t.Errorf("Expected %q, got %q", want, got)
			}
		})
	}
}

func TestBuildIdempotent(t *testing.T) {
	t.Parallel()

	// A rewritten declaration must not produce a second plan: locate the
	// qualifier in the fixed text and run the same decision again.
	src := "int const x = 5;"
	b := srctext.NewBuffer("test.cc", []byte(src))

	p, ok := Build(b, config.AlignLeft, 0, srctext.Span{Start: 3, End: 10}, srctext.Span{Start: 4, End: 10})
	if !ok {
		t.Fatal("Expected a plan for the first pass")
	}

	fixed, err := Apply(src, p.Edits)
	if err != nil {
		t.Fatalf("Expected edits to apply, got %v", err)
	}

	if got, want := fixed, "const int x = 5;"; got != want {
		t.Fatalf("Expected %q, got %q", want, got)
	}

	fb := srctext.NewBuffer("test.cc", []byte(fixed))

	if _, ok := Build(fb, config.AlignLeft, 0, srctext.Span{Start: 9, End: 10}, srctext.Span{Start: 0, End: 6}); ok {
		t.Error("Expected no plan for canonical placement")
	}
}
