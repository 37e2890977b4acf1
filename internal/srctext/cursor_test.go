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

package srctext_test

import (
	"testing"

	. "fillmore-labs.com/qualorder/internal/srctext"
)

func TestKindAt(t *testing.T) {
	t.Parallel()

	b := NewBuffer("test.cc", []byte(`int x = "s"; // done`))

	tests := [...]struct {
		name string
		off  int
		want TokenKind
	}{
		{"ident", 0, TokenIdent},
		{"whitespace", 3, TokenInvalid},
		{"punct", 6, TokenPunct},
		{"string", 8, TokenString},
		{"comment", 13, TokenComment},
		{"past_end", 99, TokenInvalid},
		{"negative", -1, TokenInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got, want := b.KindAt(tt.off), tt.want; got != want {
				t.Errorf("Expected kind %v at %d, got %v", want, tt.off, got)
			}
		})
	}
}

func TestEndOfToken(t *testing.T) {
	t.Parallel()

	b := NewBuffer("test.cc", []byte("const /* note */ int x2; // end"))

	tests := [...]struct {
		name string
		off  int
		want int
		ok   bool
	}{
		{"keyword", 0, 5, true},
		{"block_comment", 6, 16, true},
		{"ident_with_digit", 21, 23, true},
		{"punct", 23, 24, true},
		{"line_comment", 25, 31, true},
		{"whitespace", 5, 5, false},
		{"out_of_range", 99, 99, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := b.EndOfToken(tt.off)
			if ok != tt.ok {
				t.Fatalf("Expected ok=%v at %d, got %v", tt.ok, tt.off, ok)
			}

			if ok && got != tt.want {
				t.Errorf("Expected token end %d, got %d", tt.want, got)
			}
		})
	}
}

func TestSkipForward(t *testing.T) {
	t.Parallel()

	b := NewBuffer("test.cc", []byte("a  /* one */ /* two */\n\tb"))

	tests := [...]struct {
		name string
		off  int
		want int
	}{
		{"at_token", 0, 0},
		{"spaces_and_comments", 1, 24},
		{"within_whitespace", 22, 24},
		{"past_end", 99, 99},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got, want := b.SkipForward(tt.off), tt.want; got != want {
				t.Errorf("Expected offset %d, got %d", want, got)
			}
		})
	}
}

func TestFindForward(t *testing.T) {
	t.Parallel()

	src := "const int x = 0; // const"
	b := NewBuffer("test.cc", []byte(src))

	tests := [...]struct {
		name string
		sp   Span
		text string
		mode MatchMode
		want Span
		ok   bool
	}{
		{"at_start", Span{Start: 0, End: 16}, "const", MatchExact, Span{Start: 0, End: 5}, true},
		{"second_token", Span{Start: 0, End: 16}, "int", MatchExact, Span{Start: 6, End: 9}, true},
		{"punct", Span{Start: 0, End: 16}, "=", MatchExact, Span{Start: 12, End: 13}, true},
		{"not_in_span", Span{Start: 6, End: 9}, "const", MatchExact, Span{}, false},
		{"substring_no_match", Span{Start: 0, End: 16}, "cons", MatchExact, Span{}, false},
		{"suffix_mode_plain", Span{Start: 0, End: 16}, "int", MatchAngleSuffix, Span{Start: 6, End: 9}, true},
		{"empty_text", Span{Start: 0, End: 16}, "", MatchExact, Span{}, false},
		{"invalid_span", Span{Start: 5, End: 2}, "int", MatchExact, Span{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := b.FindForward(tt.sp, tt.text, tt.mode)
			if ok != tt.ok {
				t.Fatalf("Expected ok=%v, got %v", tt.ok, ok)
			}

			if got != tt.want {
				t.Errorf("Expected span %v, got %v", tt.want, got)
			}
		})
	}
}

func TestFindBackward(t *testing.T) {
	t.Parallel()

	src := "pair<int, char /* why */ > q"
	b := NewBuffer("test.cc", []byte(src))

	tests := [...]struct {
		name string
		from int
		text string
		want Span
		ok   bool
	}{
		{"comma_before_arg", 10, ",", Span{Start: 8, End: 9}, true},
		{"over_block_comment", 26, "char", Span{Start: 10, End: 14}, true},
		{"token_by_token", 14, "int", Span{Start: 5, End: 8}, true},
		{"missing", 14, "float", Span{}, false},
		{"from_start", 0, "int", Span{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := b.FindBackward(tt.from, tt.text, MatchExact)
			if ok != tt.ok {
				t.Fatalf("Expected ok=%v, got %v", tt.ok, ok)
			}

			if got != tt.want {
				t.Errorf("Expected span %v, got %v", tt.want, got)
			}
		})
	}
}

func TestPosition(t *testing.T) {
	t.Parallel()

	b := NewBuffer("test.cc", []byte("one\ntwo\n\nfour"))

	tests := [...]struct {
		name string
		off  int
		line int
		col  int
	}{
		{"first_byte", 0, 1, 1},
		{"line_end", 3, 1, 4},
		{"second_line", 4, 2, 1},
		{"empty_line", 8, 3, 1},
		{"last_line", 9, 4, 1},
		{"buffer_end", 13, 4, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			line, col := b.Position(tt.off)
			if line != tt.line || col != tt.col {
				t.Errorf("Expected %d:%d, got %d:%d", tt.line, tt.col, line, col)
			}
		})
	}
}

func TestSpaceAt(t *testing.T) {
	t.Parallel()

	b := NewBuffer("test.cc", []byte("a b"))

	tests := [...]struct {
		name string
		off  int
		want bool
	}{
		{"letter", 0, false},
		{"space", 1, true},
		{"before_start", -1, true},
		{"past_end", 3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got, want := b.SpaceAt(tt.off), tt.want; got != want {
				t.Errorf("Expected SpaceAt(%d)=%v, got %v", tt.off, want, got)
			}
		})
	}
}
