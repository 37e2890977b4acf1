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

// Package srctext provides read-only token-level views over immutable source
// text addressed by byte offsets.
//
// All queries are pure and bounds-checked: walking off either end of the
// buffer yields an explicit failure instead of a panic, so callers can drop a
// single analysis instead of aborting a batch.
package srctext

import (
	"sort"
	"strings"
)

// Buffer is an immutable source text snapshot.
type Buffer struct {
	name  string
	src   string
	lines []int // lazily built offsets of line starts
}

// NewBuffer wraps source bytes in a [Buffer]. The bytes are copied into an
// immutable snapshot; later mutation of src does not affect the buffer.
func NewBuffer(name string, src []byte) *Buffer {
	return &Buffer{name: name, src: string(src)}
}

// Name returns the name the buffer was created with, usually a file path.
func (b *Buffer) Name() string { return b.name }

// Len returns the buffer size in bytes.
func (b *Buffer) Len() int { return len(b.src) }

// String returns the whole buffer contents.
func (b *Buffer) String() string { return b.src }

// InRange reports whether the offset addresses a byte of the buffer.
func (b *Buffer) InRange(off int) bool { return off >= 0 && off < len(b.src) }

// Text returns the bytes covered by the span, or "" when the span does not
// lie fully inside the buffer.
func (b *Buffer) Text(s Span) string {
	if !s.Valid() || s.End > len(b.src) {
		return ""
	}

	return b.src[s.Start:s.End]
}

// Position translates a byte offset into a 1-based line and column.
func (b *Buffer) Position(off int) (line, col int) {
	if b.lines == nil {
		b.lines = append(b.lines, 0)
		for i := 0; i < len(b.src); i++ {
			if b.src[i] == '\n' {
				b.lines = append(b.lines, i+1)
			}
		}
	}

	if off < 0 {
		off = 0
	} else if off > len(b.src) {
		off = len(b.src)
	}

	line = sort.SearchInts(b.lines, off+1) // first line starting past off
	col = off - b.lines[line-1] + 1

	return line, col
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}

func isWordByte(c byte) bool {
	return c == '_' || c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func hasBlockCommentEnd(s string) bool {
	return strings.HasSuffix(s, "*/")
}
