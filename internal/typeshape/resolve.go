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

package typeshape

import "fillmore-labs.com/qualorder/internal/srctext"

// StripIndirections unwraps the chain of [Pointer] and [Reference] wrappers
// around the innermost type. It returns the innermost node, the offset of the
// last (innermost, leftmost in source) sigil encountered and whether any
// indirection was stripped at all.
func StripIndirections(n Node) (inner Node, lastSigil int, found bool) {
	for {
		switch t := n.(type) {
		case *Pointer:
			n, lastSigil, found = t.Pointee, t.Sigil, true

		case *Reference:
			n, lastSigil, found = t.Pointee, t.Sigil, true

		default:
			return n, lastSigil, found
		}
	}
}

// StripElaboration unwraps a single [Elaborated] layer if present.
func StripElaboration(n Node) Node {
	if e, ok := n.(*Elaborated); ok {
		return e.Inner
	}

	return n
}

// Presence is the reconciled result of the structural and textual views of a
// qualifier on the innermost type.
type Presence uint8

//go:generate go tool stringer -type Presence -linecomment
const (
	// PresenceAbsent means neither view sees the qualifier.
	PresenceAbsent Presence = iota // absent

	// PresenceConfirmed means the structural qualifier set contains the
	// qualifier; the textual view may or may not agree.
	PresenceConfirmed // confirmed

	// PresenceTextualOnly means only the canonical spelling shows the
	// qualifier. A stray substring must not produce a finding, so callers
	// suppress the check for this declaration.
	PresenceTextualOnly // textual-only
)

// QualifierPresence reconciles the two independent derivations of "the
// innermost type carries q": the qualifier set attached by the type system
// and a token scan of the canonical printed spelling.
func QualifierPresence(n Node, q Qualifier) Presence {
	inner, _, _ := StripIndirections(n)

	qualified, ok := StripElaboration(inner).(Qualified)
	if !ok {
		return PresenceAbsent
	}

	structural := qualified.Qualifiers().Has(q)
	textual := canonicalQuals(qualified.Canonical()).Has(q)

	switch {
	case structural:
		return PresenceConfirmed

	case textual:
		return PresenceTextualOnly

	default:
		return PresenceAbsent
	}
}

// RangeBeforeType returns the candidate region for a qualifier written left
// of the type: from the declaration start up to the start of the unqualified
// type as written.
func RangeBeforeType(n Node, declStart int) srctext.Span {
	return srctext.Span{Start: declStart, End: n.Span().Start}
}

// RangeAfterType returns the candidate region for a qualifier written right
// of the type but left of any pointer or reference sigil.
//
// The region ends at the innermost sigil when the type has indirections and
// at the declared name otherwise. It starts after the closing angle bracket
// for template specializations, and right after the inner type's first token
// for other types. The asymmetry keeps `Type const *` in scope while leaving
// `Type * const` to the untracked pointer-level qualifiers.
func RangeAfterType(b *srctext.Buffer, n Node, nameStart int) (srctext.Span, bool) {
	inner, lastSigil, found := StripIndirections(n)

	end := nameStart
	if found {
		end = lastSigil
	}

	var start int

	switch t := StripElaboration(inner).(type) {
	case *TemplateSpec:
		start = t.RAngle + 1

	default:
		var ok bool
		if start, ok = b.EndOfToken(t.Span().Start); !ok {
			return srctext.Span{}, false
		}
	}

	sp := srctext.Span{Start: start, End: end}

	return sp, sp.Valid()
}
