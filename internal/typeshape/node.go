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

// Package typeshape models the structural shape of a declared type and
// resolves its innermost named type against the raw source text.
//
// A type is a chain of [Pointer] and [Reference] wrappers around an innermost
// [Named] or [TemplateSpec] node, optionally behind an [Elaborated] scope
// wrapper. Qualifier sets live only on the innermost nodes; indirection
// levels carry none.
package typeshape

import "fillmore-labs.com/qualorder/internal/srctext"

// Node is one structural type tree node. Implementations are [Named],
// [Pointer], [Reference], [Elaborated] and [TemplateSpec].
type Node interface {
	// Span returns the source range of the type as written, excluding
	// qualifiers.
	Span() srctext.Span

	typeNode()
}

// Qualified is implemented by nodes that can carry a qualifier set: the
// innermost [Named] and [TemplateSpec] nodes.
type Qualified interface {
	Node

	// Qualifiers returns the structural qualifier set.
	Qualifiers() Quals

	// Canonical returns the canonical printed spelling of the qualified
	// type, qualifiers first.
	Canonical() string
}

// Named is a plain named type, possibly a multi-word builtin.
type Named struct {
	// Name is the unqualified spelling as written.
	Name string

	// Quals is the qualifier set attached by the type system.
	Quals Quals

	// Print is the canonical printed form including qualifiers.
	Print string

	// TokenSpan covers the unqualified spelling in source.
	TokenSpan srctext.Span
}

// Span implements [Node].
func (n *Named) Span() srctext.Span { return n.TokenSpan }

// Qualifiers implements [Qualified].
func (n *Named) Qualifiers() Quals { return n.Quals }

// Canonical implements [Qualified].
func (n *Named) Canonical() string { return n.Print }

func (*Named) typeNode() {}

// Pointer wraps a pointee type with a single `*` level.
type Pointer struct {
	Pointee Node

	// Sigil is the byte offset of the `*`.
	Sigil int
}

// Span implements [Node].
func (n *Pointer) Span() srctext.Span {
	return srctext.Span{Start: n.Pointee.Span().Start, End: n.Sigil + 1}
}

func (*Pointer) typeNode() {}

// Reference wraps a pointee type with a single `&` level.
type Reference struct {
	Pointee Node

	// Sigil is the byte offset of the `&`.
	Sigil int
}

// Span implements [Node].
func (n *Reference) Span() srctext.Span {
	return srctext.Span{Start: n.Pointee.Span().Start, End: n.Sigil + 1}
}

func (*Reference) typeNode() {}

// Elaborated wraps a type written with a scope or elaboration prefix, such as
// `ns::T` or `struct T`.
type Elaborated struct {
	Inner Node

	// Full covers the prefix together with the inner type.
	Full srctext.Span
}

// Span implements [Node].
func (n *Elaborated) Span() srctext.Span { return n.Full }

func (*Elaborated) typeNode() {}

// TemplateSpec is a template specialization such as `vector<int>`.
type TemplateSpec struct {
	// Name is the template name as written.
	Name string

	// Args are the specialization arguments in source order.
	Args []Arg

	// Quals is the qualifier set attached to the specialized type.
	Quals Quals

	// Print is the canonical printed form including qualifiers.
	Print string

	// NameSpan covers the template name, LAngle and RAngle the brackets.
	NameSpan srctext.Span
	LAngle   int
	RAngle   int
}

// Span implements [Node].
func (n *TemplateSpec) Span() srctext.Span {
	return srctext.Span{Start: n.NameSpan.Start, End: n.RAngle + 1}
}

// Qualifiers implements [Qualified].
func (n *TemplateSpec) Qualifiers() Quals { return n.Quals }

// Canonical implements [Qualified].
func (n *TemplateSpec) Canonical() string { return n.Print }

func (*TemplateSpec) typeNode() {}

// Arg is one template specialization argument. Type is nil for non-type
// arguments, which occupy a slot but are never checked.
type Arg struct {
	Type Node

	// ArgSpan covers the argument text.
	ArgSpan srctext.Span
}
