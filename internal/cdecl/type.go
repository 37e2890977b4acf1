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

import (
	"strings"

	"fillmore-labs.com/qualorder/internal/srctext"
	"fillmore-labs.com/qualorder/internal/typeshape"
)

// parseType parses a type specifier: leading qualifiers, an optional
// elaboration keyword or scope prefix, the type name (possibly a template
// specialization), trailing qualifiers written before the first sigil, and
// any pointer or reference declarator levels.
//
// Qualifiers seen after a sigil belong to that indirection level, which this
// check does not track, so they are consumed without effect.
func (p *parser) parseType() (typeshape.Node, bool) {
	quals := p.parseQualifiers(0)

	elabStart := -1
	if t := p.peek(); t.kind == srctext.TokenIdent && elaborationWords[t.text] {
		elabStart = t.span.Start
		p.next()
	}

	t := p.peek()
	if !isTypeName(t) {
		return nil, false
	}

	p.next()

	var (
		scopeStart = t.span.Start
		nameSpan   = t.span
		nameText   = t.text
		scoped     = false
	)

	for p.doubleColon(p.peek()) {
		p.next() // ':'
		p.next() // ':'

		id := p.next()
		if id.kind != srctext.TokenIdent {
			return nil, false
		}

		nameSpan, nameText, scoped = id.span, id.text, true
	}

	if !scoped && builtinLead[nameText] {
		for {
			w := p.peek()
			if w.kind != srctext.TokenIdent || !builtinTail[w.text] {
				break
			}

			nameSpan.End = w.span.End
			nameText += " " + w.text
			p.next()
		}
	}

	var inner typeshape.Node

	if lt := p.peek(); lt.isPunct('<') {
		p.next()

		args, rangle, ok := p.parseTemplateArgs()
		if !ok {
			return nil, false
		}

		inner = &typeshape.TemplateSpec{
			Name:     nameText,
			Args:     args,
			NameSpan: nameSpan,
			LAngle:   lt.span.Start,
			RAngle:   rangle,
		}
	} else {
		inner = &typeshape.Named{Name: nameText, TokenSpan: nameSpan}
	}

	quals = p.parseQualifiers(quals)

	switch n := inner.(type) {
	case *typeshape.Named:
		n.Quals, n.Print = quals, canonicalPrint(quals, n.Name)

	case *typeshape.TemplateSpec:
		n.Quals, n.Print = quals, canonicalPrint(quals, n.Name)
	}

	if scoped || elabStart >= 0 {
		start := scopeStart
		if elabStart >= 0 {
			start = elabStart
		}

		inner = &typeshape.Elaborated{Inner: inner, Full: srctext.Span{Start: start, End: inner.Span().End}}
	}

	node := inner

	for {
		switch t := p.peek(); {
		case t.isPunct('*'):
			node = &typeshape.Pointer{Pointee: node, Sigil: t.span.Start}
			p.next()

		case t.isPunct('&'):
			node = &typeshape.Reference{Pointee: node, Sigil: t.span.Start}
			p.next()

		case t.kind == srctext.TokenIdent && isQualifierWord(t.text):
			p.next() // indirection-level qualifier, untracked

		default:
			return node, true
		}
	}
}

// parseQualifiers consumes any run of qualifier keywords into the set.
func (p *parser) parseQualifiers(quals typeshape.Quals) typeshape.Quals {
	for {
		t := p.peek()
		if t.kind != srctext.TokenIdent {
			return quals
		}

		q, ok := typeshape.ParseQualifier(t.text)
		if !ok {
			return quals
		}

		quals = quals.Add(q)
		p.next()
	}
}

// parseTemplateArgs parses the argument list after a consumed `<` and returns
// the arguments together with the offset of the closing `>`.
func (p *parser) parseTemplateArgs() ([]typeshape.Arg, int, bool) {
	var args []typeshape.Arg

	if t := p.peek(); t.isPunct('>') {
		p.next()

		return args, t.span.Start, true
	}

	for {
		argStart := p.peek().span.Start
		save := p.pos()

		node, ok := p.parseType()
		if ok {
			if t := p.peek(); !t.isPunct(',') && !t.isPunct('>') {
				ok = false
			}
		}

		if !ok {
			// Non-type argument: skip it with bracket-depth tracking so
			// nested commas and angle brackets cannot mis-delimit.
			p.restore(save)

			if !p.skipArg() {
				return nil, 0, false
			}

			node = nil
		}

		delim := p.peek()
		args = append(args, typeshape.Arg{Type: node, ArgSpan: srctext.Span{Start: argStart, End: delim.span.Start}})

		switch d := p.next(); {
		case d.isPunct('>'):
			return args, d.span.Start, true

		case d.isPunct(','):

		default:
			return nil, 0, false
		}
	}
}

// skipArg consumes a template argument it cannot type-parse, stopping before
// the `,` or `>` delimiting it at bracket depth zero.
func (p *parser) skipArg() bool {
	depth := 0

	for !p.eof() {
		switch t := p.peek(); {
		case t.isPunct('<'), t.isPunct('('), t.isPunct('['):
			depth++

		case t.isPunct(')'), t.isPunct(']'):
			if depth == 0 {
				return false
			}

			depth--

		case t.isPunct('>'):
			if depth == 0 {
				return true
			}

			depth--

		case t.isPunct(','):
			if depth == 0 {
				return true
			}

		case t.isPunct(';'), t.isPunct('{'), t.isPunct('}'):
			return false
		}

		p.next()
	}

	return false
}

func isTypeName(t token) bool {
	return t.kind == srctext.TokenIdent &&
		!statementWords[t.text] && !storageWords[t.text] && !isQualifierWord(t.text)
}

func isQualifierWord(s string) bool {
	_, ok := typeshape.ParseQualifier(s)

	return ok
}

func canonicalPrint(quals typeshape.Quals, name string) string {
	var sb strings.Builder

	for _, q := range [...]typeshape.Qualifier{typeshape.Const, typeshape.Volatile, typeshape.Restrict} {
		if quals.Has(q) {
			sb.WriteString(q.Spelling()) // ignore error
			sb.WriteByte(' ')            // ignore error
		}
	}

	sb.WriteString(name) // ignore error

	return sb.String()
}
