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

package cdecl

import "fillmore-labs.com/qualorder/internal/srctext"

// scanner walks the token stream of a buffer. Preprocessor lines are skipped
// wholesale; their contents are macro territory and not analyzable.
type scanner struct {
	b   *srctext.Buffer
	off int
}

// peek returns the next token without consuming it. At the end of the buffer
// the token kind is [srctext.TokenInvalid].
func (s *scanner) peek() token {
	for {
		off := s.b.SkipForward(s.off)
		if off >= s.b.Len() {
			s.off = off

			return token{kind: srctext.TokenInvalid, span: srctext.Span{Start: off, End: off}}
		}

		if s.b.Text(srctext.Span{Start: off, End: off + 1}) == "#" {
			s.off = s.skipLine(off)

			continue
		}

		kind := s.b.KindAt(off)

		end, ok := s.b.EndOfToken(off)
		if !ok || end <= off {
			s.off = off

			return token{kind: srctext.TokenInvalid, span: srctext.Span{Start: off, End: off}}
		}

		sp := srctext.Span{Start: off, End: end}

		return token{kind: kind, span: sp, text: s.b.Text(sp)}
	}
}

// next consumes and returns the next token.
func (s *scanner) next() token {
	t := s.peek()
	if t.kind != srctext.TokenInvalid {
		s.off = t.span.End
	}

	return t
}

// eof reports whether the scanner has run out of tokens.
func (s *scanner) eof() bool {
	return s.peek().kind == srctext.TokenInvalid
}

// pos returns the current scan offset for later restore.
func (s *scanner) pos() int { return s.off }

// restore rewinds the scanner to a previously saved offset.
func (s *scanner) restore(off int) { s.off = off }

// skipLine advances past the end of the line, honoring backslash
// continuations.
func (s *scanner) skipLine(off int) int {
	src := s.b.String()

	for ; off < len(src); off++ {
		if src[off] != '\n' {
			continue
		}

		if off > 0 && src[off-1] == '\\' {
			continue
		}

		if off > 1 && src[off-1] == '\r' && src[off-2] == '\\' {
			continue
		}

		return off + 1
	}

	return off
}

// doubleColon reports whether a `::` scope separator starts at the token.
func (s *scanner) doubleColon(t token) bool {
	return t.isPunct(':') && s.b.Text(srctext.Span{Start: t.span.Start, End: t.span.Start + 2}) == "::"
}
