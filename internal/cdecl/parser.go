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

// Package cdecl is a best-effort declaration front-end for C-family sources.
//
// It recognizes variable declarations, typedefs and function declarations at
// file and block scope and produces the structural type trees the check
// consumes. It is not a compiler: preprocessor lines are skipped, anything
// it cannot parse is stepped over statement by statement, and a missed
// declaration only means a missed finding, never a wrong one.
package cdecl

import (
	"fillmore-labs.com/qualorder/internal/dispatch"
	"fillmore-labs.com/qualorder/internal/srctext"
)

type parser struct {
	scanner
}

// Parse scans the buffer and returns every declaration site it recognizes,
// in source order.
func Parse(b *srctext.Buffer) []dispatch.Decl {
	p := &parser{scanner: scanner{b: b}}

	var decls []dispatch.Decl

	for !p.eof() {
		if d, ok := p.parseDecl(); ok {
			decls = append(decls, d)

			continue
		}

		p.skipStatement()
	}

	return decls
}

// parseDecl attempts to parse one declaration at the current position. On
// failure the scanner is rewound so the statement skipper sees the original
// tokens.
func (p *parser) parseDecl() (dispatch.Decl, bool) {
	save := p.pos()

	t := p.peek()
	if t.kind != srctext.TokenIdent || statementWords[t.text] {
		return dispatch.Decl{}, false
	}

	declStart := t.span.Start
	kind := dispatch.KindVariable

	if t.isIdent("typedef") {
		p.next()

		nt := p.peek()
		if nt.kind == srctext.TokenInvalid {
			p.restore(save)

			return dispatch.Decl{}, false
		}

		// Anchor past the keyword so a left-aligned fix stays inside the
		// alias: `typedef const T name;` rather than `const typedef ...`.
		kind, declStart = dispatch.KindTypedef, nt.span.Start
	}

	for {
		w := p.peek()
		if w.kind != srctext.TokenIdent || !storageWords[w.text] {
			break
		}

		p.next()
	}

	node, ok := p.parseType()
	if !ok {
		p.restore(save)

		return dispatch.Decl{}, false
	}

	name := p.peek()
	if !isTypeName(name) || elaborationWords[name.text] {
		p.restore(save)

		return dispatch.Decl{}, false
	}

	p.next()

	switch t := p.peek(); {
	case t.isPunct('('):
		if kind == dispatch.KindTypedef || !p.skipParens() {
			p.restore(save)

			return dispatch.Decl{}, false
		}

		return dispatch.Decl{
			Kind:      dispatch.KindFunction,
			Return:    node,
			Start:     declStart,
			NameStart: name.span.Start,
		}, true

	case t.isPunct('='), t.isPunct(','), t.isPunct(';'), t.isPunct('['), t.isPunct('{'):
		p.skipToSemicolon()

		return dispatch.Decl{
			Kind:      kind,
			Type:      node,
			Start:     declStart,
			NameStart: name.span.Start,
		}, true

	default:
		p.restore(save)

		return dispatch.Decl{}, false
	}
}

// skipStatement steps over one statement-ish token run: through the next
// `;`, or through a single brace so block contents are scanned for local
// declarations.
func (p *parser) skipStatement() {
	for {
		t := p.next()
		if t.kind == srctext.TokenInvalid {
			return
		}

		if t.isPunct(';') || t.isPunct('{') || t.isPunct('}') {
			return
		}
	}
}

// skipParens consumes a balanced parenthesis group starting at the current
// `(` token.
func (p *parser) skipParens() bool {
	if !p.peek().isPunct('(') {
		return false
	}

	p.next()

	depth := 1

	for !p.eof() {
		switch t := p.next(); {
		case t.isPunct('('):
			depth++

		case t.isPunct(')'):
			depth--
			if depth == 0 {
				return true
			}

		case t.isPunct('{'), t.isPunct('}'):
			return false
		}
	}

	return false
}

// skipToSemicolon consumes the declaration tail, through the terminating `;`
// at bracket depth zero. It stops before an unbalanced closing brace.
func (p *parser) skipToSemicolon() {
	depth := 0

	for !p.eof() {
		switch t := p.peek(); {
		case t.isPunct('('), t.isPunct('['), t.isPunct('{'):
			depth++

		case t.isPunct(')'), t.isPunct(']'):
			if depth > 0 {
				depth--
			}

		case t.isPunct('}'):
			if depth == 0 {
				return
			}

			depth--

		case t.isPunct(';'):
			if depth == 0 {
				p.next()

				return
			}
		}

		p.next()
	}
}
