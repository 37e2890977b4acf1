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

package locate_test

import (
	"testing"

	. "fillmore-labs.com/qualorder/internal/locate"
	"fillmore-labs.com/qualorder/internal/srctext"
)

func TestQualifier(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name   string
		src    string
		before srctext.Span
		after  srctext.Span
		want   srctext.Span
		ok     bool
	}{
		{
			name:   "left_of_type",
			src:    "const int x;",
			before: srctext.Span{Start: 0, End: 6},
			after:  srctext.Span{Start: 9, End: 10},
			want:   srctext.Span{Start: 0, End: 6},
			ok:     true,
		},
		{
			name:   "right_of_type",
			src:    "int const x;",
			before: srctext.Span{Start: 0, End: 0},
			after:  srctext.Span{Start: 3, End: 10},
			want:   srctext.Span{Start: 4, End: 10},
			ok:     true,
		},
		{
			name:   "extends_past_trailing_comment",
			src:    "const /* x */ int y;",
			before: srctext.Span{Start: 0, End: 14},
			after:  srctext.Span{Start: 17, End: 18},
			want:   srctext.Span{Start: 0, End: 14},
			ok:     true,
		},
		{
			name:   "before_wins_over_after",
			src:    "const int const x;",
			before: srctext.Span{Start: 0, End: 6},
			after:  srctext.Span{Start: 9, End: 16},
			want:   srctext.Span{Start: 0, End: 6},
			ok:     true,
		},
		{
			name:   "missing_everywhere",
			src:    "int x;",
			before: srctext.Span{Start: 0, End: 0},
			after:  srctext.Span{Start: 3, End: 4},
			want:   srctext.Span{},
			ok:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b := srctext.NewBuffer("test.cc", []byte(tt.src))

			got, ok := Qualifier(b, tt.before, tt.after, "const", srctext.MatchExact)
			if ok != tt.ok {
				t.Fatalf("Expected ok=%v, got %v", tt.ok, ok)
			}

			if got != tt.want {
				t.Errorf("Expected span %v, got %v", tt.want, got)
			}
		})
	}
}
