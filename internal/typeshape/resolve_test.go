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

package typeshape_test

import (
	"testing"

	"fillmore-labs.com/qualorder/internal/srctext"
	. "fillmore-labs.com/qualorder/internal/typeshape"
)

func TestStripIndirections(t *testing.T) {
	t.Parallel()

	named := &Named{Name: "int", TokenSpan: srctext.Span{Start: 0, End: 3}}
	chain := &Pointer{
		Pointee: &Pointer{Pointee: named, Sigil: 4},
		Sigil:   6,
	}

	tests := [...]struct {
		name      string
		node      Node
		inner     Node
		lastSigil int
		found     bool
	}{
		{"plain", named, named, 0, false},
		{"pointer_chain", chain, named, 4, true},
		{"reference", &Reference{Pointee: named, Sigil: 4}, named, 4, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			inner, lastSigil, found := StripIndirections(tt.node)
			if inner != tt.inner || lastSigil != tt.lastSigil || found != tt.found {
				t.Errorf("Expected (%v, %d, %v), got (%v, %d, %v)",
					tt.inner, tt.lastSigil, tt.found, inner, lastSigil, found)
			}
		})
	}
}

func TestQualifierPresence(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name string
		node Node
		qual Qualifier
		want Presence
	}{
		{
			name: "structural",
			node: &Named{Name: "int", Quals: Quals(0).Add(Const), Print: "const int"},
			qual: Const,
			want: PresenceConfirmed,
		},
		{
			name: "structural_behind_pointer",
			node: &Pointer{
				Pointee: &Named{Name: "int", Quals: Quals(0).Add(Const), Print: "const int"},
				Sigil:   10,
			},
			qual: Const,
			want: PresenceConfirmed,
		},
		{
			name: "structural_behind_elaboration",
			node: &Elaborated{
				Inner: &Named{Name: "T", Quals: Quals(0).Add(Volatile), Print: "volatile ns::T"},
			},
			qual: Volatile,
			want: PresenceConfirmed,
		},
		{
			name: "textual_only",
			node: &Named{Name: "int", Print: "const int"},
			qual: Const,
			want: PresenceTextualOnly,
		},
		{
			name: "absent",
			node: &Named{Name: "int", Print: "int"},
			qual: Const,
			want: PresenceAbsent,
		},
		{
			name: "other_qualifier",
			node: &Named{Name: "int", Quals: Quals(0).Add(Volatile), Print: "volatile int"},
			qual: Const,
			want: PresenceAbsent,
		},
		{
			name: "second_canonical_word",
			node: &Named{Name: "int", Quals: Quals(0).Add(Const).Add(Volatile), Print: "const volatile int"},
			qual: Volatile,
			want: PresenceConfirmed,
		},
		{
			name: "name_is_not_a_qualifier",
			node: &Named{Name: "constant", Print: "constant"},
			qual: Const,
			want: PresenceAbsent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got, want := QualifierPresence(tt.node, tt.qual), tt.want; got != want {
				t.Errorf("Expected presence %v, got %v", want, got)
			}
		})
	}
}

func TestRangeBeforeType(t *testing.T) {
	t.Parallel()

	node := &Named{Name: "int", TokenSpan: srctext.Span{Start: 8, End: 11}}

	if got, want := RangeBeforeType(node, 2), (srctext.Span{Start: 2, End: 8}); got != want {
		t.Errorf("Expected span %v, got %v", want, got)
	}
}

func TestRangeAfterType(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name      string
		src       string
		node      Node
		nameStart int
		want      srctext.Span
		ok        bool
	}{
		{
			// int const x
			name:      "plain_named",
			src:       "int const x;",
			node:      &Named{Name: "int", TokenSpan: srctext.Span{Start: 0, End: 3}},
			nameStart: 10,
			want:      srctext.Span{Start: 3, End: 10},
			ok:        true,
		},
		{
			// int const * p: region ends before the sigil
			name: "ends_at_innermost_sigil",
			src:  "int const * p;",
			node: &Pointer{
				Pointee: &Named{Name: "int", TokenSpan: srctext.Span{Start: 0, End: 3}},
				Sigil:   10,
			},
			nameStart: 12,
			want:      srctext.Span{Start: 3, End: 10},
			ok:        true,
		},
		{
			// int * const p: pointer-level qualifier lies past the sigil
			name: "pointer_level_excluded",
			src:  "int * const p;",
			node: &Pointer{
				Pointee: &Named{Name: "int", TokenSpan: srctext.Span{Start: 0, End: 3}},
				Sigil:   4,
			},
			nameStart: 12,
			want:      srctext.Span{Start: 3, End: 4},
			ok:        true,
		},
		{
			// vector<int> const v: region starts past the closing bracket
			name: "template_spec",
			src:  "vector<int> const v;",
			node: &TemplateSpec{
				Name:     "vector",
				NameSpan: srctext.Span{Start: 0, End: 6},
				LAngle:   6,
				RAngle:   10,
			},
			nameStart: 18,
			want:      srctext.Span{Start: 11, End: 18},
			ok:        true,
		},
		{
			// unsigned long const x: starts after the first builtin word
			name:      "multiword_builtin",
			src:       "unsigned long const x;",
			node:      &Named{Name: "unsigned long", TokenSpan: srctext.Span{Start: 0, End: 13}},
			nameStart: 20,
			want:      srctext.Span{Start: 8, End: 20},
			ok:        true,
		},
		{
			name:      "degenerate_span",
			src:       "int x;",
			node:      &Named{Name: "int", TokenSpan: srctext.Span{Start: 0, End: 3}},
			nameStart: 2,
			want:      srctext.Span{},
			ok:        false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b := srctext.NewBuffer("test.cc", []byte(tt.src))

			got, ok := RangeAfterType(b, tt.node, tt.nameStart)
			if ok != tt.ok {
				t.Fatalf("Expected ok=%v, got %v", tt.ok, ok)
			}

			if ok && got != tt.want {
				t.Errorf("Expected span %v, got %v", tt.want, got)
			}
		})
	}
}

func TestParseQualifier(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		spelling string
		want     Qualifier
		ok       bool
	}{
		{"const", Const, true},
		{"volatile", Volatile, true},
		{"restrict", Restrict, true},
		{"mutable", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.spelling, func(t *testing.T) {
			t.Parallel()

			got, ok := ParseQualifier(tt.spelling)
			if ok != tt.ok || got != tt.want {
				t.Errorf("Expected (%v, %v), got (%v, %v)", tt.want, tt.ok, got, ok)
			}
		})
	}
}
