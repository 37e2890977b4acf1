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

package srctext

// TokenKind classifies the raw token starting at a byte offset.
type TokenKind uint8

const (
	// TokenInvalid marks offsets that do not start a token, including
	// whitespace and out-of-buffer positions.
	TokenInvalid TokenKind = iota

	// TokenIdent is an identifier or keyword.
	TokenIdent

	// TokenNumber is a numeric literal.
	TokenNumber

	// TokenString is a string or character literal.
	TokenString

	// TokenComment is a line or block comment.
	TokenComment

	// TokenPunct is any single punctuation byte.
	TokenPunct
)

// MatchMode selects how token spellings are compared during searches.
type MatchMode uint8

const (
	// MatchExact requires the token spelling to equal the search text.
	MatchExact MatchMode = iota

	// MatchAngleSuffix additionally accepts a spelling that is the search
	// text followed by a single '>'. Searches adjacent to template
	// specializations need this, since a delimited slice of text may fuse
	// the closing angle bracket onto the last token.
	MatchAngleSuffix
)

// KindAt classifies the token starting at the given offset.
func (b *Buffer) KindAt(off int) TokenKind {
	if !b.InRange(off) {
		return TokenInvalid
	}

	switch c := b.src[off]; {
	case isSpace(c):
		return TokenInvalid

	case c == '/' && off+1 < len(b.src) && (b.src[off+1] == '/' || b.src[off+1] == '*'):
		return TokenComment

	case c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z':
		return TokenIdent

	case c >= '0' && c <= '9':
		return TokenNumber

	case c == '"' || c == '\'':
		return TokenString

	default:
		return TokenPunct
	}
}

// EndOfToken returns the exclusive end offset of the token starting at off.
// It reports false when off does not start a token.
func (b *Buffer) EndOfToken(off int) (int, bool) {
	switch b.KindAt(off) {
	case TokenIdent, TokenNumber:
		end := off
		for end < len(b.src) && isWordByte(b.src[end]) {
			end++
		}

		return end, true

	case TokenComment:
		if b.src[off+1] == '/' {
			end := off + 2
			for end < len(b.src) && b.src[end] != '\n' {
				end++
			}

			return end, true
		}

		for end := off + 2; end+1 < len(b.src); end++ {
			if b.src[end] == '*' && b.src[end+1] == '/' {
				return end + 2, true
			}
		}

		return len(b.src), true // unterminated block comment

	case TokenString:
		quote := b.src[off]
		for end := off + 1; end < len(b.src); end++ {
			switch b.src[end] {
			case '\\':
				end++
			case quote:
				return end + 1, true
			}
		}

		return len(b.src), true

	case TokenPunct:
		return off + 1, true

	default:
		return off, false
	}
}

// SkipForward advances past any run of whitespace and comments, stopping at
// the next real token or at the end of the buffer.
func (b *Buffer) SkipForward(off int) int {
	if off < 0 {
		off = 0
	}

	for {
		for off < len(b.src) && isSpace(b.src[off]) {
			off++
		}

		if b.KindAt(off) != TokenComment {
			return off
		}

		end, ok := b.EndOfToken(off)
		if !ok || end <= off {
			return off
		}

		off = end
	}
}

// SkipSpaces advances past whitespace only, leaving comments in place.
func (b *Buffer) SkipSpaces(off int) int {
	if off < 0 {
		off = 0
	}

	for off < len(b.src) && isSpace(b.src[off]) {
		off++
	}

	return off
}

// SpaceAt reports whether the byte at the offset is whitespace.
// Out-of-buffer offsets count as whitespace so insertion logic never adds a
// separating space at the buffer edges.
func (b *Buffer) SpaceAt(off int) bool {
	if !b.InRange(off) {
		return true
	}

	return isSpace(b.src[off])
}

// skipBackward moves left past whitespace and block comments, returning the
// exclusive end of the preceding token. Line comments cannot be recognized
// scanning backward and terminate the skip.
func (b *Buffer) skipBackward(off int) int {
	if off > len(b.src) {
		off = len(b.src)
	}

	for off > 0 {
		if isSpace(b.src[off-1]) {
			off--

			continue
		}

		if hasBlockCommentEnd(b.src[:off]) {
			start := lastBlockCommentStart(b.src[:off-2])
			if start < 0 {
				return off
			}

			off = start

			continue
		}

		break
	}

	return off
}

func lastBlockCommentStart(s string) int {
	for i := len(s) - 2; i >= 0; i-- {
		if s[i] == '/' && s[i+1] == '*' {
			return i
		}
	}

	return -1
}

// startOfTokenEndingAt returns the start offset of the token whose exclusive
// end is at off, or -1 when off does not follow a token.
func (b *Buffer) startOfTokenEndingAt(off int) int {
	if off <= 0 || off > len(b.src) {
		return -1
	}

	if !isWordByte(b.src[off-1]) {
		return off - 1 // single punctuation byte
	}

	start := off - 1
	for start > 0 && isWordByte(b.src[start-1]) {
		start--
	}

	return start
}

// FindForward scans the span left to right for a token spelled like text and
// returns its range. Tokens must start inside the span; whitespace and
// comments between tokens are skipped.
func (b *Buffer) FindForward(sp Span, text string, mode MatchMode) (Span, bool) {
	if !sp.Valid() || text == "" {
		return Span{}, false
	}

	for off := sp.Start; off < sp.End && off < len(b.src); {
		for off < len(b.src) && isSpace(b.src[off]) {
			off++
		}

		if off >= sp.End || off >= len(b.src) {
			break
		}

		end, ok := b.EndOfToken(off)
		if !ok || end <= off {
			return Span{}, false
		}

		if matchToken(b.src[off:end], text, mode) {
			return Span{Start: off, End: off + len(text)}, true
		}

		off = end
	}

	return Span{}, false
}

// FindBackward scans right to left from the given offset for a token spelled
// like text, stepping token by token until a match or the buffer start.
func (b *Buffer) FindBackward(from int, text string, mode MatchMode) (Span, bool) {
	if text == "" {
		return Span{}, false
	}

	for off := from; off > 0; {
		off = b.skipBackward(off)

		start := b.startOfTokenEndingAt(off)
		if start < 0 || start >= off {
			return Span{}, false
		}

		if matchToken(b.src[start:off], text, mode) {
			return Span{Start: start, End: start + len(text)}, true
		}

		off = start
	}

	return Span{}, false
}

func matchToken(tok, text string, mode MatchMode) bool {
	if tok == text {
		return true
	}

	return mode == MatchAngleSuffix && len(tok) == len(text)+1 && tok[len(tok)-1] == '>' && tok[:len(text)] == text
}
